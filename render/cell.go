package render

import (
	"math"
)

// Cell is one terminal position: a glyph over a foreground/background pair
// Equality is structural and drives the frame diff
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Ramp orders glyphs from sparse to dense ink coverage
const Ramp = "`'~!,-\":|\\;/(<>)]+[{}i731t2sy*ur5o=dea49p6q&8w€¥0$%@#"

var rampGlyphs = []rune(Ramp)

// RampIndex maps a weight in [0,1] onto the ramp
func RampIndex(weight float64) int {
	last := len(rampGlyphs) - 1
	idx := math.Round(weight*float64(last) - 0.5)
	if math.IsNaN(idx) || idx < 0 {
		return 0
	}
	if idx > float64(last) {
		return last
	}
	return int(idx)
}

// CellFromColor quantizes a color into a ramp glyph with decomposed fg/bg
func CellFromColor(c Color) Cell {
	fg, bg, weight := c.Decompose()
	return Cell{
		Rune: rampGlyphs[RampIndex(weight)],
		Fg:   fg,
		Bg:   bg,
	}
}
