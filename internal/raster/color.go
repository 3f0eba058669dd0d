package raster

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/midbel/cycles"
)

// ParseColor understands every css color (names, hex, rgb(), hsl()...) plus
// "none" which is fully transparent.
func ParseColor(str string) (color.NRGBA, error) {
	str = strings.TrimSpace(str)
	if strings.EqualFold(str, "none") {
		return color.NRGBA{}, nil
	}
	c, err := csscolorparser.Parse(str)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%s: invalid color: %w", str, err)
	}
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// checkStyle reports the first color of s that can not be drawn.
func checkStyle(s cycles.Style) error {
	if _, err := ParseColor(s.Stroke); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	for arrival, str := range s.Colors {
		if _, err := ParseColor(str); err != nil {
			return fmt.Errorf("arrival %s: %w", arrival, err)
		}
	}
	for _, str := range s.Palette {
		if _, err := ParseColor(str); err != nil {
			return fmt.Errorf("palette: %w", err)
		}
	}
	return nil
}
