package retained

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	Black     = RGBA(0, 0, 0, 1)
	White     = RGBA(1, 1, 1, 1)
	DarkGray  = RGBA(0.25, 0.25, 0.25, 1)
	Gray      = RGBA(0.5, 0.5, 0.5, 1)
	LightGray = RGBA(0.75, 0.75, 0.75, 1)
	Red       = RGBA(1, 0, 0, 1)
	Green     = RGBA(0, 1, 0, 1)
	Blue      = RGBA(0, 0, 1, 1)
	LightBlue = RGBA(0.5, 0.5, 1, 1)
	Yellow    = RGBA(1, 1, 0, 1)
	Pink      = RGBA(1, 0, 1, 1)
	Teal      = RGBA(0, 1, 1, 1)
	Clear     = RGBA(0, 0, 0, 0)
)

func RGBA(r, g, b, a float32) Color { return Color{R: r, G: g, B: b, A: a} }

// RGB returns an opaque color.
func RGB(r, g, b float32) Color { return Color{R: r, G: g, B: b, A: 1} }

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("failed to parse color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}
}

// Colorful converts to a go-colorful color. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string { return c.Colorful().Clamped().Hex() }

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Blend mixes c toward o by t in [0, 1], in linear RGB.
func (c Color) Blend(o Color, t float32) Color {
	mixed := FromColorful(c.Colorful().BlendLinearRgb(o.Colorful(), float64(t)))
	mixed.A = c.A + (o.A-c.A)*t
	return mixed
}

func (c Color) String() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s@%.2f", c.Hex(), c.A)
}
