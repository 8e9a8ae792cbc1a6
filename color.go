package pyg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color is an 8-bit RGBA color. Arithmetic between colors saturates at the
// component bounds rather than wrapping.
type Color struct {
	R, G, B, A uint8
}

// Named colors.
var (
	ColorWhite       = Color{255, 255, 255, 255}
	ColorBlack       = Color{0, 0, 0, 255}
	ColorRed         = Color{255, 0, 0, 255}
	ColorGreen       = Color{0, 255, 0, 255}
	ColorBlue        = Color{0, 0, 255, 255}
	ColorYellow      = Color{255, 255, 0, 255}
	ColorCyan        = Color{0, 255, 255, 255}
	ColorMagenta     = Color{255, 0, 255, 255}
	ColorTransparent = Color{0, 0, 0, 0}
)

// RGB constructs an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// RGBA constructs a color with an explicit alpha.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func satSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// modulate multiplies two components as if they were in [0, 1].
func modulate(a, b uint8) uint8 {
	return uint8(uint16(a) * uint16(b) / 255)
}

// Add returns the component-wise saturating sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{satAdd(c.R, o.R), satAdd(c.G, o.G), satAdd(c.B, o.B), satAdd(c.A, o.A)}
}

// Sub returns the component-wise saturating difference of c and o.
func (c Color) Sub(o Color) Color {
	return Color{satSub(c.R, o.R), satSub(c.G, o.G), satSub(c.B, o.B), satSub(c.A, o.A)}
}

// Mul returns the component-wise modulation of c and o.
func (c Color) Mul(o Color) Color {
	return Color{modulate(c.R, o.R), modulate(c.G, o.G), modulate(c.B, o.B), modulate(c.A, o.A)}
}

func scaleComponent(v uint8, s float64) uint8 {
	f := float64(v) * s
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}

// Scale multiplies every component by s, clamping to [0, 255].
// Negative factors are treated as zero.
func (c Color) Scale(s float64) Color {
	if s < 0 {
		s = 0
	}
	return Color{
		scaleComponent(c.R, s),
		scaleComponent(c.G, s),
		scaleComponent(c.B, s),
		scaleComponent(c.A, s),
	}
}

// Lerp interpolates component-wise between c and o by t in [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	t = Clamp(t, 0, 1)
	lerp8 := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{lerp8(c.R, o.R), lerp8(c.G, o.G), lerp8(c.B, o.B), lerp8(c.A, o.A)}
}

// Grayscale returns the luminance-weighted gray equivalent, preserving alpha.
func (c Color) Grayscale() Color {
	y := uint8(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
	return Color{y, y, y, c.A}
}

// Inverted returns the color with R, G, and B inverted. Alpha is preserved.
func (c Color) Inverted() Color {
	return Color{255 - c.R, 255 - c.G, 255 - c.B, c.A}
}

// Normalized returns the components as floats in [0, 1].
func (c Color) Normalized() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// Hex formats the color as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("RGBA(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional) into a
// Color. A six-digit string gets full alpha.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, errors.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return Color{}, errors.Wrapf(err, "invalid hex color %q", s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
