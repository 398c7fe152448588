package tw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/boxtree/retained"
)

const customTheme = `
[breakpoints]
md = 700

[spacing]
huge = "10rem"
gutter = "18px"

[colors]
brand = "#1da1f2"

[radii]
pill = "20"
`

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte(customTheme))
	require.NoError(t, err)

	assert.Equal(t, float32(700), theme.Breakpoints.MD)
	assert.Equal(t, float32(640), theme.Breakpoints.SM, "defaults kept")
	assert.Equal(t, float32(160), theme.Spacing["huge"])
	assert.Equal(t, float32(16), theme.Spacing["4"])
	assert.Equal(t, "#1da1f2", theme.Colors["brand"].Hex())

	p := NewParser(theme)
	style := retained.DefaultStyle()
	p.Apply("bg-brand p-huge ml-gutter rounded-pill", &style)
	assert.Equal(t, theme.Colors["brand"], style.Color)
	assert.Equal(t, retained.Px(160), style.Padding.Top)
	assert.Equal(t, retained.Px(18), style.Margin.Left)
	assert.Equal(t, retained.Round(retained.Px(20)), style.Corners)

	style = retained.DefaultStyle()
	p.ApplyFor("w-4 md:w-8", 720, StateDefault, &style)
	assert.Equal(t, retained.Px(32), style.Width, "custom md breakpoint")
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "[colors\nbrand ="},
		{"bad color", "[colors]\nbrand = \"blue\""},
		{"bad spacing", "[spacing]\nwide = \"50%\""},
		{"unknown breakpoint", "[breakpoints]\nxs = 300"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTheme([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(customTheme), 0o644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Contains(t, theme.Colors, "brand")

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefaultThemeIsIsolated(t *testing.T) {
	a := DefaultTheme()
	a.Colors["brand"] = retained.Red
	assert.NotContains(t, DefaultTheme().Colors, "brand")

	b := a.Clone()
	b.Spacing["x"] = 1
	assert.NotContains(t, a.Spacing, "x")
}
