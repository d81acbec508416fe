package render

import (
	"github.com/lixenwraith/ascii-read/vmath"
)

// Rectangle is axis-aligned in cell-grid coordinates
type Rectangle struct {
	Position vmath.Vector2
	Size     vmath.Vector2
}

// NewRectangle builds a rectangle from position and size vectors
func NewRectangle(position, size vmath.Vector2) Rectangle {
	return Rectangle{Position: position, Size: size}
}

// RectRaw builds a rectangle from integer cell coordinates
func RectRaw(x, y, width, height int) Rectangle {
	return Rectangle{
		Position: vmath.V2(float64(x), float64(y)),
		Size:     vmath.V2(float64(width), float64(height)),
	}
}

// Circle is centered at (X, Y) in cell coordinates; X is halved when measuring distance
type Circle struct {
	X, Y   float64
	Radius float64
}

// DialogBox describes a bordered text panel centered horizontally on the canvas
// Position is the top row of the panel interior
type DialogBox struct {
	Text      string
	Width     float64
	Height    float64
	Position  float64
	XPad      float64
	YPad      float64
	TextColor Color
}

// NewDialogBox returns a dialog with single-cell padding and white text
func NewDialogBox(text string, width, height, position float64) DialogBox {
	return DialogBox{
		Text:      text,
		Width:     width,
		Height:    height,
		Position:  position,
		XPad:      1,
		YPad:      1,
		TextColor: White,
	}
}
