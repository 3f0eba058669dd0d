package cycles

import (
	"time"

	"github.com/midbel/svg"
)

// Data is anything that can be drawn inside the drawing area of a chart.
type Data interface {
	Render() svg.Element
}

// Serie binds a set of cycles to the time domain and the pixel range they are
// drawn on. Height is the height of the drawing area.
type Serie struct {
	Title  string
	Domain Domain[time.Time]
	Range  Range
	Height float64
	Cycles Cycles

	Renderer Renderer
}

func NewSerie(title string, cs Cycles, dom Domain[time.Time], rg Range, height float64) Serie {
	return Serie{
		Title:  title,
		Domain: dom,
		Range:  rg,
		Height: height,
		Cycles: cs,
	}
}

func (s Serie) Scaler() Scaler[time.Time] {
	return TimeScaler(s.Domain, s.Range)
}

// Resize gives a copy of s drawn over a range of the given width.
func (s Serie) Resize(width float64) Serie {
	x := s
	x.Range = NewRange(0, width)
	return x
}

func (s Serie) Render() svg.Element {
	return s.Renderer.Render(s)
}
