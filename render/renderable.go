package render

// Renderable is one queued paint operation
// The set of variants is closed: only this package can implement apply
type Renderable interface {
	apply(f *Frame)
}

// DialogPaint composites a bordered text panel
type DialogPaint struct {
	Box DialogBox
}

// RectanglePaint blends colors toward Cell by Alpha and replaces glyphs inside Rect
type RectanglePaint struct {
	Rect  Rectangle
	Cell  Cell
	Alpha float64
}

// CirclePaint replaces every cell within the circle with Cell
type CirclePaint struct {
	Circle Circle
	Cell   Cell
}

// Dialog queues a dialog box
func Dialog(box DialogBox) DialogPaint {
	return DialogPaint{Box: box}
}

// FillRectangle queues a translucent rectangle overlay
func FillRectangle(rect Rectangle, cell Cell, alpha float64) RectanglePaint {
	return RectanglePaint{Rect: rect, Cell: cell, Alpha: alpha}
}

// FillCircle queues a solid circle
func FillCircle(circle Circle, cell Cell) CirclePaint {
	return CirclePaint{Circle: circle, Cell: cell}
}

func (p DialogPaint) apply(f *Frame) {
	f.drawDialog(p.Box)
}

func (p RectanglePaint) apply(f *Frame) {
	f.drawRectangle(p.Rect, p.Cell, p.Alpha)
}

func (p CirclePaint) apply(f *Frame) {
	f.drawCircle(p.Circle, p.Cell)
}
