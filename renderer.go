package cycles

import (
	"time"

	"github.com/midbel/svg"
)

const (
	DefaultStroke = "rgba(0,0,0,0.5)"
	DefaultColor  = "steelblue"
)

type Renderer interface {
	Render(Serie) svg.Element
}

// Bar is the geometry of a cycle drawn as a rectangle.
type Bar struct {
	Cycle

	X       float64
	Y       float64
	Width   float64
	Height  float64
	Color   string
	Opacity float64
}

// DurationRenderer draws every cycle as a rectangle going from the position of
// its start to the position of its end. When a cycle is focused, the others
// are drawn with the Dimmed opacity.
type DurationRenderer struct {
	Colors *ColorMap
	Stroke string
	Dimmed float64
	Focus  *Focus
}

func (r DurationRenderer) Bars(serie Serie) ([]Bar, error) {
	dim := r.Dimmed
	if dim <= 0 {
		dim = DimmedOpacity
	}
	bars := make([]Bar, 0, len(serie.Cycles))
	for _, c := range serie.Cycles {
		x1, x2, err := MapDuration(serie.Domain, serie.Range, c.Start, c.End)
		if err != nil {
			return nil, err
		}
		b := Bar{
			Cycle:   c,
			X:       x1,
			Width:   x2 - x1,
			Height:  serie.Height,
			Color:   r.color(c.Arrival),
			Opacity: r.Focus.Opacity(c.Start, dim),
		}
		bars = append(bars, b)
	}
	return bars, nil
}

func (r DurationRenderer) Render(serie Serie) svg.Element {
	grp := getBaseGroup("", "cycles", "duration")
	grp.Id = serie.Title

	bars, err := r.Bars(serie)
	if err != nil {
		return grp.AsElement()
	}
	stroke := r.Stroke
	if stroke == "" {
		stroke = DefaultStroke
	}
	for _, b := range bars {
		var el svg.Rect
		el.Title = cycleTitle(b.Cycle)
		el.Pos = svg.NewPos(b.X, b.Y)
		el.Dim = svg.NewDim(b.Width, b.Height)
		el.Fill = svg.NewFill(b.Color)
		el.Fill.Opacity = b.Opacity
		el.Stroke = svg.NewStroke(stroke, 1)
		el.Stroke.Opacity = b.Opacity
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

func (r DurationRenderer) color(arrival string) string {
	if r.Colors == nil {
		return DefaultColor
	}
	return r.Colors.Color(arrival)
}

// PointRenderer draws a mark at the start of every cycle, in the middle of the
// drawing area.
type PointRenderer struct {
	Colors *ColorMap
	Dimmed float64
	Focus  *Focus
	Point  PointFunc
}

func (r PointRenderer) Positions(serie Serie) ([]svg.Pos, error) {
	if err := CheckDomain(serie.Domain); err != nil {
		return nil, err
	}
	var (
		scale = serie.Scaler()
		list  = make([]svg.Pos, 0, len(serie.Cycles))
	)
	for _, c := range serie.Cycles {
		list = append(list, svg.NewPos(scale.Scale(c.Start), serie.Height/2))
	}
	return list, nil
}

func (r PointRenderer) Render(serie Serie) svg.Element {
	grp := getBaseGroup("", "cycles", "scatter")
	grp.Id = serie.Title

	pos, err := r.Positions(serie)
	if err != nil {
		return grp.AsElement()
	}
	var (
		point = r.Point
		dim   = r.Dimmed
	)
	if point == nil {
		point = GetCircle
	}
	if dim <= 0 {
		dim = DimmedOpacity
	}
	for i, c := range serie.Cycles {
		color := DefaultColor
		if r.Colors != nil {
			color = r.Colors.Color(c.Arrival)
		}
		var g svg.Group
		g.Fill = svg.NewFill(color)
		g.Fill.Opacity = r.Focus.Opacity(c.Start, dim)
		g.Append(point(pos[i], color))
		grp.Append(g.AsElement())
	}
	return grp.AsElement()
}

func cycleTitle(c Cycle) string {
	var (
		start = c.Start.UTC().Format(time.RFC3339)
		end   = c.End.UTC().Format(time.RFC3339)
	)
	if c.Arrival == "" {
		return start + " - " + end
	}
	return start + " - " + end + " (" + c.Arrival + ")"
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
