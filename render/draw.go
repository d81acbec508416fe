package render

import (
	"github.com/lixenwraith/ascii-read/vmath"
)

// Dialog chrome
const (
	dialogPanelAlpha = 0.7
	dialogHRuleAlpha = 0.9
	dialogVRuleAlpha = 1.0

	glyphHRule       = '─'
	glyphVRule       = '│'
	glyphTopLeft     = '╭'
	glyphTopRight    = '╮'
	glyphBottomLeft  = '╰'
	glyphBottomRight = '╯'
)

// drawRectangle blends fg/bg toward cell and replaces the glyph, clipped to the frame
func (f *Frame) drawRectangle(rect Rectangle, cell Cell, alpha float64) {
	x0, x1 := span(rect.Position.X, rect.Size.X, f.Width)
	y0, y1 := span(rect.Position.Y, rect.Size.Y, f.Height)

	for y := y0; y < y1; y++ {
		row := y * f.Width
		for x := x0; x < x1; x++ {
			dst := &f.Cells[row+x]
			dst.Rune = cell.Rune
			dst.Fg = dst.Fg.Shift(cell.Fg, alpha)
			dst.Bg = dst.Bg.Shift(cell.Bg, alpha)
		}
	}
}

// drawCircle replaces every cell whose aspect-corrected center lies within the radius
func (f *Frame) drawCircle(circle Circle, cell Cell) {
	center := vmath.ToSquare(circle.X, circle.Y)

	for y := 0; y < f.Height; y++ {
		row := y * f.Width
		for x := 0; x < f.Width; x++ {
			p := vmath.ToSquare(float64(x), float64(y))
			if p.Distance(center) <= circle.Radius {
				f.Cells[row+x] = cell
			}
		}
	}
}

// drawDialog paints the panel, its rules and corners, then lays out the text
func (f *Frame) drawDialog(d DialogBox) {
	width := d.Width + d.XPad
	height := d.Height + d.YPad

	mid := float64(f.Width) / 2
	left := mid - d.Width/2
	right := mid + width/2 + 1
	top := d.Position - 1
	bottom := d.Position + height

	shade := CellFromColor(Black)
	hRule := Cell{Rune: glyphHRule, Fg: White, Bg: shade.Bg}
	vRule := Cell{Rune: glyphVRule, Fg: White, Bg: shade.Bg}

	f.drawRectangle(NewRectangle(vmath.V2(left, d.Position), vmath.V2(width, height)), shade, dialogPanelAlpha)

	f.drawRectangle(NewRectangle(vmath.V2(left, top), vmath.V2(width, 1)), hRule, dialogHRuleAlpha)
	f.drawRectangle(NewRectangle(vmath.V2(left, bottom), vmath.V2(width, 1)), hRule, dialogHRuleAlpha)
	f.drawRectangle(NewRectangle(vmath.V2(left-1, d.Position), vmath.V2(1, height)), vRule, dialogVRuleAlpha)
	f.drawRectangle(NewRectangle(vmath.V2(right, d.Position), vmath.V2(1, height)), vRule, dialogVRuleAlpha)

	f.setCorner(left-1, top, glyphTopLeft)
	f.setCorner(right, top, glyphTopRight)
	f.setCorner(left-1, bottom, glyphBottomLeft)
	f.setCorner(right, bottom, glyphBottomRight)

	f.layoutText(d, left+d.XPad, d.Position+d.YPad)
}

func (f *Frame) setCorner(x, y float64, r rune) {
	if i, ok := f.index(x, y); ok {
		f.Cells[i] = Cell{Rune: r, Fg: White, Bg: Black}
	}
}

// layoutText writes one glyph per column from (x0, y), wrapping to x0 on newline
// Glyphs keep the background already painted beneath them
func (f *Frame) layoutText(d DialogBox, x0, y float64) {
	x := x0
	for _, r := range d.Text {
		if r == '\n' {
			y++
			x = x0
			continue
		}
		if i, ok := f.index(x, y); ok {
			f.Cells[i].Rune = r
			f.Cells[i].Fg = d.TextColor
		}
		x++
	}
}
