package cycles

import (
	"strconv"
	"time"

	"github.com/midbel/svg"
)

const (
	FontSize = 10.0
	TickSize = 5.0
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(float64, float64, float64, float64) svg.Element
}

// TimeAxis draws the ticks of a time scale. The ticks are, by order of
// precedence, the instants given in Domain, the instants aligned on Step or
// Ticks values evenly spread over the scale.
type TimeAxis struct {
	Orientation
	Ticks          int
	Step           time.Duration
	Scaler         Scaler[time.Time]
	Extent         Domain[time.Time]
	Domain         []time.Time
	Format         func(time.Time) string
	TickSize       float64
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
}

func (a TimeAxis) Values() []time.Time {
	switch {
	case len(a.Domain) > 0:
		return a.Domain
	case a.Step > 0 && a.Extent != nil:
		return EveryStep(a.Extent, a.Step)
	default:
		return a.Scaler.Values(a.Ticks)
	}
}

func (a TimeAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	d := domainLine(a.Orientation, length, svg.NewStroke("black", 1))
	g.Append(d.AsElement())

	var (
		data   = a.Values()
		font   = svg.NewFont(FontSize)
		format = a.Format
		ticksz = a.TickSize
	)
	if format == nil {
		format = func(t time.Time) string {
			return t.UTC().Format("01/02")
		}
	}
	if ticksz <= 0 {
		ticksz = TickSize
	}
	for i, t := range data {
		pos := a.Scaler.Scale(t)
		if pos < a.Scaler.Min() || pos > a.Scaler.Max() {
			continue
		}
		grp := svg.NewGroup(svg.WithTranslate(pos, 0))
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, 0, ticksz, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(t), ticksz, font)
			grp.Append(text.AsElement())
		}
		if a.WithOuterTicks && i < len(data)-1 {
			sk := d.Stroke
			sk.Opacity = 0.1
			tick := lineTick(a.Orientation, 0, -size, sk)
			grp.Append(tick.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

// NumberAxis draws a numeric scale. Without label nor ticks, only the domain
// line is drawn.
type NumberAxis struct {
	Orientation
	Ticks          int
	Scaler         Scaler[float64]
	Format         func(float64) string
	WithInnerTicks bool
	WithLabelTicks bool
}

func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	d := domainLine(a.Orientation, length, svg.NewStroke("black", 1))
	g.Append(d.AsElement())
	if !a.WithInnerTicks && !a.WithLabelTicks {
		return g.AsElement()
	}
	var (
		font   = svg.NewFont(FontSize)
		format = a.Format
	)
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	}
	for _, f := range a.Scaler.Values(a.Ticks) {
		var (
			pos = a.Scaler.Scale(f)
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, 0, TickSize, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(f), TickSize, font)
			grp.Append(text.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func domainLine(orient Orientation, length float64, stroke svg.Stroke) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = stroke
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

// tickText places the label right after the tick, its left edge aligned on the
// tick for horizontal axis.
func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "text-before-edge"
		anchor = "start"
		x, y   = 0.0, offset
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -offset, 0
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = offset, 0
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -offset
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
