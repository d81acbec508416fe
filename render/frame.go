package render

import (
	"math"
)

// Frame is one composited grid of cells in row-major order
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewFrame allocates a width x height frame filled with fill
func NewFrame(width, height int, fill Cell) Frame {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return Frame{Width: width, Height: height, Cells: cells}
}

// At returns the cell at (x, y); out-of-range positions return the zero Cell
func (f Frame) At(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Cell{}
	}
	return f.Cells[y*f.Width+x]
}

// Clone returns a deep copy
func (f Frame) Clone() Frame {
	cells := make([]Cell, len(f.Cells))
	copy(cells, f.Cells)
	return Frame{Width: f.Width, Height: f.Height, Cells: cells}
}

func (f Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// set writes c at (x, y), silently skipping out-of-range positions
func (f *Frame) set(x, y int, c Cell) {
	if !f.inBounds(x, y) {
		return
	}
	f.Cells[y*f.Width+x] = c
}

// index resolves fractional coordinates to a cell slot; negative or out-of-range is rejected
func (f *Frame) index(x, y float64) (int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || x < 0 || y < 0 {
		return 0, false
	}
	if x >= float64(f.Width) || y >= float64(f.Height) {
		return 0, false
	}
	return int(y)*f.Width + int(x), true
}

// truncIndex truncates toward zero, saturating negatives at 0
func truncIndex(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// span converts a fractional extent to a half-open index range clipped to [0, limit)
func span(start, length float64, limit int) (int, int) {
	lo := truncIndex(start)
	hi := min(truncIndex(start+length), limit)
	return lo, hi
}
