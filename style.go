package cycles

// Style gathers the cosmetic settings shared by the cycle renderers.
type Style struct {
	Stroke  string
	Dimmed  float64
	Colors  map[string]string
	Palette Palette
	Shape   string
}

func DefaultStyle() Style {
	return Style{
		Stroke:  DefaultStroke,
		Dimmed:  DimmedOpacity,
		Palette: Category10,
		Shape:   "circle",
	}
}

func (s Style) ColorMap(arrivals []string) *ColorMap {
	cm := NewColorMap(s.Colors, s.Palette)
	cm.Prepare(arrivals)
	return cm
}

func (s Style) Duration(cs Cycles, focus *Focus) DurationRenderer {
	return DurationRenderer{
		Colors: s.ColorMap(cs.Arrivals()),
		Stroke: s.Stroke,
		Dimmed: s.Dimmed,
		Focus:  focus,
	}
}

func (s Style) Point(cs Cycles, focus *Focus) PointRenderer {
	point, ok := Shape(s.Shape)
	if !ok {
		point = GetCircle
	}
	return PointRenderer{
		Colors: s.ColorMap(cs.Arrivals()),
		Dimmed: s.Dimmed,
		Focus:  focus,
		Point:  point,
	}
}
