package cycles

import (
	"github.com/midbel/svg"
)

var DefaultSize float64 = 6

type PointFunc func(svg.Pos, string) svg.Element

func GetCircle(pos svg.Pos, color string) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill(color)
	el.Radius = DefaultSize / 2
	return el.AsElement()
}

func GetSquare(pos svg.Pos, color string) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(color)

	return el.AsElement()
}

func GetDiamond(pos svg.Pos, color string) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(color)
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half

	return el.AsElement()
}

// Shape returns the PointFunc registered under name.
func Shape(name string) (PointFunc, bool) {
	switch name {
	case "circle", "":
		return GetCircle, true
	case "square":
		return GetSquare, true
	case "diamond":
		return GetDiamond, true
	default:
		return nil, false
	}
}
