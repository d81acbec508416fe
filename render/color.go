package render

import (
	"math"

	"github.com/lixenwraith/ascii-read/terminal"
)

// Color is an immutable 24-bit color; every transformation returns a new value
type Color struct {
	R, G, B uint8
}

// Swatches used by Simplify and the dialog chrome
var (
	Black   = Color{10, 10, 10}
	White   = Color{225, 225, 225}
	Red     = Color{225, 30, 30}
	Yellow  = Color{225, 225, 30}
	Magenta = Color{225, 30, 225}
	Green   = Color{30, 225, 30}
	Cyan    = Color{30, 225, 225}
	Blue    = Color{30, 30, 225}
)

// Simplify thresholds
const (
	simplifyDark  = 50
	simplifyLight = 205
	simplifyNear  = 64
)

// decomposeBlock is the posterize step used by Decompose
const decomposeBlock = 16

// decomposeShade is how far the background reference moves toward Black
const decomposeShade = 0.7

// RGB converts to the terminal representation
func (c Color) RGB() terminal.RGB {
	return terminal.RGB{R: c.R, G: c.G, B: c.B}
}

// Shift linearly interpolates each channel toward other, truncating the result
// power is clamped to [0,1]; 0 returns c and 1 returns other
func (c Color) Shift(other Color, power float64) Color {
	if power <= 0 {
		return c
	}
	if power >= 1 {
		return other
	}
	return Color{
		R: lerpChannel(c.R, other.R, power),
		G: lerpChannel(c.G, other.G, power),
		B: lerpChannel(c.B, other.B, power),
	}
}

// lerpChannel computes a + (b-a)*t so that a == b yields a exactly
func lerpChannel(a, b uint8, t float64) uint8 {
	return clampChannel(float64(a) + float64(int(b)-int(a))*t)
}

// clampChannel converts float to uint8 with truncation
func clampChannel(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Clamp adds offset to each channel then clamps to [min, max]
func (c Color) Clamp(min, max, offset int) Color {
	ch := func(v uint8) uint8 {
		n := int(v) + offset
		if n < min {
			n = min
		}
		if n > max {
			n = max
		}
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return Color{ch(c.R), ch(c.G), ch(c.B)}
}

// Blockify posterizes each channel down to a multiple of strength
func (c Color) Blockify(strength uint8) Color {
	if strength == 0 {
		return c
	}
	return Color{
		R: c.R / strength * strength,
		G: c.G / strength * strength,
		B: c.B / strength * strength,
	}
}

// Brightness is the unweighted mean of the three channels
func (c Color) Brightness() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3.0
}

// Distance returns the Euclidean distance in RGB space
func (c Color) Distance(other Color) float64 {
	dr := float64(c.R) - float64(other.R)
	dg := float64(c.G) - float64(other.G)
	db := float64(c.B) - float64(other.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Decompose splits c into the two reference colors of a cell and a ramp weight
// fg is the posterized color, bg is fg darkened toward Black, weight is brightness in [0,1]
func (c Color) Decompose() (fg, bg Color, weight float64) {
	fg = c.Blockify(decomposeBlock)
	bg = fg.Shift(Black, decomposeShade)
	weight = c.Brightness() / 255.0
	return fg, bg, weight
}

// Simplify snaps c to one of the eight swatches
func (c Color) Simplify() Color {
	r, g, b := int(c.R), int(c.G), int(c.B)

	if r < simplifyDark && g < simplifyDark && b < simplifyDark {
		return Black
	}
	if r > simplifyLight && g > simplifyLight && b > simplifyLight {
		return White
	}

	switch {
	case r >= g && r >= b:
		if r-g < simplifyNear {
			return Yellow
		}
		if r-b < simplifyNear {
			return Magenta
		}
		return Red
	case g >= r && g >= b:
		if g-b < simplifyNear {
			return Cyan
		}
		if g-r < simplifyNear {
			return Yellow
		}
		return Green
	default:
		if b-r < simplifyNear {
			return Magenta
		}
		if b-g < simplifyNear {
			return Cyan
		}
		return Blue
	}
}
