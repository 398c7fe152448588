package tw

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/boxtree/retained"
)

// Theme holds the scales utility classes are built from.
type Theme struct {
	Colors      map[string]retained.Color
	Spacing     map[string]float32
	Radii       map[string]float32
	Breakpoints BreakpointConfig
}

// themeFile is the on-disk layout of a theme.
//
//	[breakpoints]
//	md = 700
//
//	[spacing]
//	huge = "10rem"
//
//	[colors]
//	brand = "#1da1f2"
type themeFile struct {
	Breakpoints map[string]float32 `toml:"breakpoints"`
	Spacing     map[string]string  `toml:"spacing"`
	Colors      map[string]string  `toml:"colors"`
	Radii       map[string]string  `toml:"radii"`
}

// DefaultTheme returns the built-in palette, spacing scale and radii.
func DefaultTheme() Theme {
	return Theme{
		Colors:      defaultColors(),
		Spacing:     defaultSpacing(),
		Radii:       defaultRadii(),
		Breakpoints: DefaultBreakpoints(),
	}
}

// LoadTheme reads a TOML theme and layers it over DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme parses TOML theme data and layers it over DefaultTheme.
func ParseTheme(data []byte) (Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}

	theme := DefaultTheme()
	for name, hex := range file.Colors {
		c, err := retained.ParseHex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("invalid theme color %q: %w", name, err)
		}
		theme.Colors[name] = c
	}
	for name, value := range file.Spacing {
		px, err := parseLength(value)
		if err != nil {
			return Theme{}, fmt.Errorf("invalid theme spacing %q: %w", name, err)
		}
		theme.Spacing[name] = px
	}
	for name, value := range file.Radii {
		px, err := parseLength(value)
		if err != nil {
			return Theme{}, fmt.Errorf("invalid theme radius %q: %w", name, err)
		}
		theme.Radii[name] = px
	}
	for name, px := range file.Breakpoints {
		switch name {
		case "sm":
			theme.Breakpoints.SM = px
		case "md":
			theme.Breakpoints.MD = px
		case "lg":
			theme.Breakpoints.LG = px
		case "xl":
			theme.Breakpoints.XL = px
		case "2xl":
			theme.Breakpoints.XXL = px
		default:
			return Theme{}, fmt.Errorf("unknown breakpoint %q", name)
		}
	}
	return theme, nil
}

// parseLength parses "12", "12px" or "1.5rem" into pixels.
func parseLength(value string) (float32, error) {
	v, ok := parseDimension(value)
	if !ok || v.Kind != retained.ValPx {
		return 0, fmt.Errorf("not a length: %q", value)
	}
	return v.Value, nil
}

// Clone returns a deep copy, so callers can extend a theme safely.
func (t Theme) Clone() Theme {
	t.Colors = maps.Clone(t.Colors)
	t.Spacing = maps.Clone(t.Spacing)
	t.Radii = maps.Clone(t.Radii)
	return t
}

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

var palettes = map[string][]string{
	"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"},
	"gray":   {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"},
	"orange": {"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"},
	"yellow": {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"},
	"teal":   {"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"},
	"indigo": {"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"},
	"pink":   {"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"},
}

func defaultColors() map[string]retained.Color {
	colors := map[string]retained.Color{
		"white":       retained.White,
		"black":       retained.Black,
		"transparent": retained.Clear,
	}
	for name, hexes := range palettes {
		for i, hex := range hexes {
			c, err := retained.ParseHex(hex)
			if err != nil {
				panic(fmt.Sprintf("tw: bad palette entry %s-%s: %v", name, shades[i], err))
			}
			colors[name+"-"+shades[i]] = c
		}
	}
	return colors
}

func defaultSpacing() map[string]float32 {
	spacing := map[string]float32{"px": 1}
	for _, step := range strings.Fields("0 0.5 1 1.5 2 2.5 3 3.5 4 5 6 7 8 9 10 11 12 14 16 20 24 28 32 36 40 44 48 52 56 60 64 72 80 96") {
		v, _ := parseDimension(step)
		spacing[step] = v.Value * 4
	}
	return spacing
}

func defaultRadii() map[string]float32 {
	return map[string]float32{
		"none": 0,
		"sm":   2,
		"":     4,
		"md":   6,
		"lg":   8,
		"xl":   12,
		"2xl":  16,
		"3xl":  24,
		"full": 9999,
	}
}
