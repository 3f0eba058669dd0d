// Package raster draws cycles charts with gonum/plot for the formats that svg
// cannot cover (png, jpg, pdf, eps...).
package raster

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/midbel/cycles"
	"github.com/midbel/cycles/internal/config"
)

// Screen resolution used to convert the width and height of the chart, given in
// pixels, to the points of vg.
const dpi = 96

// Bars is a plot.Plotter drawing every cycle as a bar covering the height of
// the data area.
type Bars struct {
	Cycles cycles.Cycles
	Domain cycles.Domain[time.Time]
	Colors *cycles.ColorMap
	Focus  *cycles.Focus
	Dimmed float64
	Stroke color.Color
}

func (b Bars) Plot(c draw.Canvas, _ *plot.Plot) {
	rg := cycles.NewRange(float64(c.Min.X), float64(c.Max.X))
	line := draw.LineStyle{
		Color: b.Stroke,
		Width: vg.Points(0.5),
	}
	for _, cy := range b.Cycles {
		x1, x2, err := cycles.MapDuration(b.Domain, rg, cy.Start, cy.End)
		if err != nil {
			return
		}
		var (
			fill = colorOf(b.Colors, cy.Arrival)
			pts  = []vg.Point{
				{X: vg.Length(x1), Y: c.Min.Y},
				{X: vg.Length(x2), Y: c.Min.Y},
				{X: vg.Length(x2), Y: c.Max.Y},
				{X: vg.Length(x1), Y: c.Max.Y},
			}
		)
		alpha := b.Focus.Opacity(cy.Start, b.Dimmed)
		c.FillPolygon(fade(fill, alpha), c.ClipPolygonX(pts))
		if b.Stroke != nil {
			c.StrokeLines(line, c.ClipLinesX(append(pts, pts[0]))...)
		}
	}
}

// DataRange makes the x axis cover exactly the domain, in seconds since epoch.
func (b Bars) DataRange() (float64, float64, float64, float64) {
	fst, lst := b.Domain.Bounds()
	return unix(fst), unix(lst), 0, 1
}

type stepTicker struct {
	step time.Duration
}

func (s stepTicker) Ticks(min, max float64) []plot.Tick {
	var (
		dom  = cycles.TimeDomain(fromUnix(min), fromUnix(max))
		list []plot.Tick
	)
	for _, t := range cycles.EveryStep(dom, s.step) {
		list = append(list, plot.Tick{Value: unix(t)})
	}
	return list
}

// Plot creates the plot of cs.
func Plot(cfg config.Chart, cs cycles.Cycles, focus *cycles.Focus) (*plot.Plot, error) {
	dom, err := cs.Extent()
	if err != nil {
		return nil, err
	}
	layout, err := cycles.ParseFormat(cfg.TickFormat)
	if err != nil {
		return nil, err
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = cfg.Title
	p.HideY()

	ticks := plot.TimeTicks{
		Format: layout,
		Time:   plot.UTCUnixTime,
	}
	if cfg.TickStep != "" {
		step, err := cycles.ParseStep(cfg.TickStep)
		if err != nil {
			return nil, err
		}
		ticks.Ticker = stepTicker{step: step}
	}
	p.X.Tick.Marker = ticks

	style := cfg.Style()
	if err := checkStyle(style); err != nil {
		return nil, err
	}
	stroke, _ := ParseColor(style.Stroke)
	p.Add(Bars{
		Cycles: cs,
		Domain: dom,
		Colors: style.ColorMap(cs.Arrivals()),
		Focus:  focus,
		Dimmed: style.Dimmed,
		Stroke: stroke,
	})
	return p, nil
}

// Write renders the chart of cs in the given format (png, jpg, pdf, eps, tiff).
func Write(w io.Writer, format string, cfg config.Chart, cs cycles.Cycles, width float64, focus *cycles.Focus) error {
	p, err := Plot(cfg, cs, focus)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = cfg.Width
	}
	wt, err := p.WriterTo(pixels(width), pixels(cfg.Height), format)
	if err != nil {
		return fmt.Errorf("%s: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func pixels(n float64) vg.Length {
	return vg.Length(n) * vg.Inch / dpi
}

func unix(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func fromUnix(v float64) time.Time {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

func colorOf(cm *cycles.ColorMap, arrival string) color.NRGBA {
	str := cycles.DefaultColor
	if cm != nil {
		str = cm.Color(arrival)
	}
	c, err := ParseColor(str)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return c
}

func fade(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * alpha))
	return c
}
