package cycles

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding

	Left   Axis
	Right  Axis
	Top    Axis
	Bottom Axis
}

// DrawingWidth is the width left once the horizontal padding is removed. It is
// never negative.
func (c Chart) DrawingWidth() float64 {
	return math.Max(0, c.Width-c.Padding.Horizontal())
}

func (c Chart) DrawingHeight() float64 {
	return math.Max(0, c.Height-c.Padding.Vertical())
}

// Range is the pixel range on which the time domain is projected.
func (c Chart) Range() Range {
	return NewRange(0, c.DrawingWidth())
}

// Resize gives a copy of c with the given width. Axis keep their own scale and
// have to be rebuilt by the caller.
func (c Chart) Resize(width float64) Chart {
	x := c
	x.Width = width
	return x
}

func (c Chart) Render(w io.Writer, set ...Data) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true

	el.Append(c.drawAxis())
	for _, s := range set {
		ar := c.getArea()
		ar.Append(s.Render())
		el.Append(ar.AsElement())
	}
	if c.Title != "" && c.Padding.Top >= FontSize {
		el.Append(c.drawTitle())
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

func (c Chart) drawTitle() svg.Element {
	tx := svg.NewText(c.Title)
	tx.Pos = svg.NewPos(c.Padding.Left, c.Padding.Top/2)
	tx.Font = svg.NewFont(FontSize * 1.2)
	tx.Baseline = "middle"
	return tx.AsElement()
}

func (c Chart) drawAxis() svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	if c.Left != nil {
		el := c.Left.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Right != nil {
		el := c.Right.Render(c.DrawingHeight(), c.DrawingWidth(), c.Width-c.Padding.Right, c.Padding.Top)
		g.Append(el)
	}
	if c.Top != nil {
		el := c.Top.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Bottom != nil {
		el := c.Bottom.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
		g.Append(el)
	}
	return g.AsElement()
}
