package render

import "github.com/gdamore/tcell/v2"

// ColorToTcell converts Color to tcell.Color
func ColorToTcell(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TcellToColor converts tcell.Color to Color
// Treats ColorDefault as the palette black
func TcellToColor(c tcell.Color) Color {
	if c == tcell.ColorDefault {
		return Black
	}
	r, g, b := c.RGB()
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// ScreenPresenter draws frames onto a tcell screen
// tcell keeps its own back buffer, so every cell is handed over and Show does the diffing
type ScreenPresenter struct {
	Screen tcell.Screen
}

// Present copies frame into the screen and shows it
func (p ScreenPresenter) Present(frame Frame) error {
	for y := 0; y < frame.Height; y++ {
		row := y * frame.Width
		for x := 0; x < frame.Width; x++ {
			cell := frame.Cells[row+x]
			style := tcell.StyleDefault.Foreground(ColorToTcell(cell.Fg)).Background(ColorToTcell(cell.Bg))
			p.Screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	p.Screen.Show()
	return nil
}
