package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// HSV returns hue in degrees [0,360) and saturation/value in [0,1]
func (c Color) HSV() (h, s, v float64) {
	return c.colorful().Hsv()
}

// ColorFromHSV converts hue/saturation/value back to RGB, truncating each channel
func ColorFromHSV(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(h, s, v))
}

// ParseHex accepts "#rgb" and "#rrggbb" notation
func ParseHex(s string) (Color, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "parse color %q", s)
	}
	return fromColorful(col), nil
}

// Hex formats c as "#rrggbb"
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// channelEpsilon absorbs float error at integer boundaries before truncation
const channelEpsilon = 1e-9

func fromColorful(col colorful.Color) Color {
	col = col.Clamped()
	return Color{
		R: clampChannel(col.R*255.0 + channelEpsilon),
		G: clampChannel(col.G*255.0 + channelEpsilon),
		B: clampChannel(col.B*255.0 + channelEpsilon),
	}
}
