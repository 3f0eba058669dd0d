// Package render turns a set of cycles into a chart.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/midbel/cycles"
	"github.com/midbel/cycles/internal/config"
)

// Build creates the chart and the serie of cs for a container of the given
// width. A zero width uses the width of the settings, any other resizes the
// chart and the range of its serie.
func Build(cfg config.Chart, cs cycles.Cycles, width float64, focus *cycles.Focus) (cycles.Chart, cycles.Serie, error) {
	var (
		ch    cycles.Chart
		serie cycles.Serie
	)
	dom, err := cs.Extent()
	if err != nil {
		return ch, serie, err
	}
	ch = cycles.Chart{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Padding: cfg.Margin.Padding(),
	}
	serie = cycles.NewSerie(cfg.Title, cs, dom, ch.Range(), ch.DrawingHeight())
	if width > 0 && width != ch.Width {
		ch = ch.Resize(width)
		serie = serie.Resize(ch.DrawingWidth())
	}
	bottom, err := timeAxis(cfg, dom, serie.Range)
	if err != nil {
		return ch, serie, err
	}
	ch.Bottom = bottom
	ch.Left = cycles.NumberAxis{
		Orientation: cycles.OrientLeft,
		Scaler:      cycles.NumberScaler(cycles.NumberDomain(1, 0), cycles.NewRange(0, ch.DrawingHeight())),
	}

	style := cfg.Style()
	switch cfg.Kind {
	case "duration", "":
		serie.Renderer = style.Duration(cs, focus)
	case "point":
		serie.Renderer = style.Point(cs, focus)
	default:
		return ch, serie, fmt.Errorf("%s: unknown chart kind", cfg.Kind)
	}
	return ch, serie, nil
}

// SVG writes the chart of cs to w.
func SVG(w io.Writer, cfg config.Chart, cs cycles.Cycles, width float64, focus *cycles.Focus) error {
	ch, serie, err := Build(cfg, cs, width, focus)
	if err != nil {
		return err
	}
	return ch.Render(w, serie)
}

func timeAxis(cfg config.Chart, dom cycles.Domain[time.Time], rg cycles.Range) (cycles.TimeAxis, error) {
	format, err := cycles.TimeFormat(cfg.TickFormat)
	if err != nil {
		return cycles.TimeAxis{}, err
	}
	axis := cycles.TimeAxis{
		Orientation:    cycles.OrientBottom,
		Ticks:          cfg.Ticks,
		Scaler:         cycles.TimeScaler(dom, rg),
		Extent:         dom,
		Format:         format,
		TickSize:       cycles.TickSize,
		WithInnerTicks: true,
		WithLabelTicks: true,
		WithOuterTicks: cfg.Grid,
	}
	if cfg.TickStep != "" {
		axis.Step, err = cycles.ParseStep(cfg.TickStep)
	}
	return axis, err
}
