package cycles

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

type Palette []string

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return "black"
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// ColorMap resolves the color of an arrival category. Categories missing from
// the table get the next color of the fallback palette, always the same one for
// a given category.
type ColorMap struct {
	table    map[string]string
	fallback Palette
	assigned []string
}

func NewColorMap(table map[string]string, fallback Palette) *ColorMap {
	cm := ColorMap{
		table:    make(map[string]string),
		fallback: fallback,
	}
	for k, v := range table {
		cm.table[k] = v
	}
	if len(cm.fallback) == 0 {
		cm.fallback = Category10
	}
	return &cm
}

func (c *ColorMap) Color(arrival string) string {
	if col, ok := c.table[arrival]; ok {
		return col
	}
	col := c.fallback.At(len(c.assigned))
	c.assigned = append(c.assigned, arrival)
	c.table[arrival] = col
	return col
}

// Prepare assigns fallback colors in the order of arrivals so that the result
// does not depend on the order cycles are drawn.
func (c *ColorMap) Prepare(arrivals []string) {
	for _, a := range arrivals {
		c.Color(a)
	}
}
