// Package config loads the settings of the chart from a YAML file and from the
// environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/midbel/cycles"
)

const (
	EnvConfig   = "CYCLES_CONFIG"
	EnvAddr     = "CYCLES_ADDR"
	EnvLogLevel = "LOG_LEVEL"
	EnvMode     = "CYCLES_ENV"
)

type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

func (m Margin) Padding() cycles.Padding {
	return cycles.Padding{
		Top:    m.Top,
		Right:  m.Right,
		Bottom: m.Bottom,
		Left:   m.Left,
	}
}

type Chart struct {
	Title      string            `yaml:"title"`
	Width      float64           `yaml:"width"`
	Height     float64           `yaml:"height"`
	Margin     Margin            `yaml:"margin"`
	TickFormat string            `yaml:"tick-format"`
	TickStep   string            `yaml:"tick-step"`
	Ticks      int               `yaml:"ticks"`
	Grid       bool              `yaml:"grid"`
	Dimmed     float64           `yaml:"dimmed"`
	Stroke     string            `yaml:"stroke"`
	Shape      string            `yaml:"shape"`
	Kind       string            `yaml:"kind"`
	Colors     map[string]string `yaml:"colors"`
	Palette    []string          `yaml:"palette"`
}

// Style builds the renderer style described by the chart settings.
func (c Chart) Style() cycles.Style {
	s := cycles.DefaultStyle()
	if c.Stroke != "" {
		s.Stroke = c.Stroke
	}
	if c.Dimmed > 0 {
		s.Dimmed = c.Dimmed
	}
	if c.Shape != "" {
		s.Shape = c.Shape
	}
	if len(c.Palette) > 0 {
		s.Palette = cycles.Palette(c.Palette)
	}
	s.Colors = c.Colors
	return s
}

type Config struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log-level"`
	Mode     string `yaml:"mode"`
	Chart    Chart  `yaml:"chart"`
}

// Default gives the settings of a chart eighty pixels high with room on the
// right of the drawing area and daily ticks labelled by month and day.
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Mode:     "development",
		Chart: Chart{
			Width:  800,
			Height: 80,
			Margin: Margin{
				Right:  80,
				Bottom: 20,
			},
			TickFormat: "%m/%d",
			TickStep:   "every day",
			Ticks:      7,
			Dimmed:     cycles.DimmedOpacity,
			Stroke:     cycles.DefaultStroke,
			Shape:      "circle",
			Kind:       "duration",
		},
	}
}

// Load reads the optional .env file, then the YAML file given by file or by
// CYCLES_CONFIG and finally applies the environment overrides. Values in the
// environment are never replaced by the .env file.
func Load(file string) (Config, error) {
	cfg := Default()
	if err := LoadEnv(".env"); err != nil {
		return cfg, err
	}
	if file == "" {
		file = os.Getenv(EnvConfig)
	}
	if file != "" {
		r, err := os.Open(file)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		defer r.Close()
		if cfg, err = Decode(r, cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", file, err)
		}
	}
	if addr := os.Getenv(EnvAddr); addr != "" {
		cfg.Addr = addr
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if mode := os.Getenv(EnvMode); mode != "" {
		cfg.Mode = strings.ToLower(mode)
	}
	return cfg, cfg.Validate()
}

// LoadEnv adds the variables of file to the environment. A missing file is
// not an error.
func LoadEnv(file string) error {
	err := godotenv.Load(file)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: %s: %w", file, err)
}

// Decode reads YAML from r on top of the values already in cfg.
func Decode(r io.Reader, cfg Config) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	ch := c.Chart
	if ch.Width <= 0 || ch.Height <= 0 {
		return fmt.Errorf("config: chart dimension should be positive (%fx%f)", ch.Width, ch.Height)
	}
	if ch.Dimmed < 0 || ch.Dimmed > 1 {
		return fmt.Errorf("config: dimmed opacity should be between 0 and 1 (%f)", ch.Dimmed)
	}
	if _, err := cycles.ParseFormat(ch.TickFormat); err != nil {
		return fmt.Errorf("config: tick-format: %w", err)
	}
	if ch.TickStep != "" {
		if _, err := cycles.ParseStep(ch.TickStep); err != nil {
			return fmt.Errorf("config: tick-step: %w", err)
		}
	}
	switch ch.Kind {
	case "duration", "point", "":
	default:
		return fmt.Errorf("config: %s: unknown chart kind", ch.Kind)
	}
	return nil
}
