// Package termpaint draws a retained tree on a terminal through tcell and
// feeds terminal mouse events back into the tree's input mapping.
//
// Every terminal cell stands for a CellSize block of logical pixels. Shapes
// are rasterized by sampling cell centers: a cell takes the fill color when
// its center lies inside the shape.
package termpaint

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/agiangrant/boxtree/geom"
	"github.com/agiangrant/boxtree/retained"
)

// DefaultCellSize is the logical pixel size of one cell: a common 8x16
// terminal font.
var DefaultCellSize = geom.V(8, 16)

// Renderer replays draw commands onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	cell   geom.Vec2
	logger *slog.Logger

	// Background is blended under translucent fills on cells that still
	// carry the terminal's default color.
	Background retained.Color

	surface geom.Vec2 // Resize translation
	origin  geom.Vec2 // current Translation
	color   retained.Color
}

// NewRenderer returns a renderer for screen. A zero cell size falls back to
// DefaultCellSize; a nil logger discards.
func NewRenderer(screen tcell.Screen, cell geom.Vec2, logger *slog.Logger) *Renderer {
	if cell.X <= 0 || cell.Y <= 0 {
		cell = DefaultCellSize
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{
		screen:     screen,
		cell:       cell,
		logger:     logger,
		Background: retained.Black,
		color:      retained.White,
	}
}

// CellSize returns the logical pixel size of one cell.
func (r *Renderer) CellSize() geom.Vec2 { return r.cell }

// SurfaceSize returns the screen size in logical pixels.
func (r *Renderer) SurfaceSize() geom.Vec2 {
	w, h := r.screen.Size()
	return geom.V(float32(w)*r.cell.X, float32(h)*r.cell.Y)
}

// CellCenter returns the logical pixel position of the center of cell (x, y).
func (r *Renderer) CellCenter(x, y int) geom.Vec2 {
	return geom.V((float32(x)+0.5)*r.cell.X, (float32(y)+0.5)*r.cell.Y)
}

// Render replays cmds. It does not call Show.
func (r *Renderer) Render(cmds []retained.DrawCommand) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case retained.Resize:
			r.screen.Clear()
			r.surface = c.Translation
			r.origin = geom.Vec2{}
			r.color = retained.White
			r.logger.Debug("termpaint: frame", "size", c.Size, "scale", c.Scale)
		case retained.Translation:
			r.origin = c.Offset
		case retained.SetColor:
			r.color = c.Color
		case retained.Rect:
			r.fill(geom.Rect{Size: c.Size}, func(geom.Vec2) bool { return true })
		case retained.RoundedRect:
			r.fill(geom.Rect{Size: c.Size}, func(p geom.Vec2) bool {
				return insideRounded(p, c.Size, c.Corners)
			})
		case retained.Circle:
			d := geom.V(c.Radius, c.Radius)
			bounds := geom.Rect{Position: c.Center.Sub(d), Size: d.Scale(2)}
			r.fill(bounds, func(p geom.Vec2) bool {
				v := p.Sub(c.Center)
				return v.X*v.X+v.Y*v.Y <= c.Radius*c.Radius
			})
		case retained.Triangle:
			poly := []geom.Vec2{c.A, c.B, c.C}
			r.fill(bounds(poly), func(p geom.Vec2) bool { return insideConvex(p, poly) })
		case retained.Quad:
			poly := []geom.Vec2{c.A, c.B, c.C, c.D}
			r.fill(bounds(poly), func(p geom.Vec2) bool { return insideConvex(p, poly) })
		default:
			r.logger.Warn("termpaint: unknown draw command", "command", cmd)
		}
	}
}

// fill paints every cell whose center is inside local, a rect in the current
// translation's frame, and passes the inside test.
func (r *Renderer) fill(local geom.Rect, inside func(geom.Vec2) bool) {
	if r.color.A <= 0 || local.Size.X <= 0 || local.Size.Y <= 0 {
		return
	}
	offset := r.surface.Add(r.origin)
	area := local.Translate(offset)

	w, h := r.screen.Size()
	x0 := max(0, int(math32.Floor(area.X()/r.cell.X)))
	y0 := max(0, int(math32.Floor(area.Y()/r.cell.Y)))
	x1 := min(w, int(math32.Ceil(area.Max().X/r.cell.X)))
	y1 := min(h, int(math32.Ceil(area.Max().Y/r.cell.Y)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			center := r.CellCenter(x, y)
			if !area.Contains(center) || !inside(center.Sub(offset)) {
				continue
			}
			r.setCell(x, y)
		}
	}
}

func (r *Renderer) setCell(x, y int) {
	c := r.color
	if c.A < 1 {
		_, _, style, _ := r.screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		under, ok := FromTcell(bg)
		if !ok {
			under = r.Background
		}
		c = under.WithAlpha(1).Blend(c.WithAlpha(1), c.A)
	}
	r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(ToTcell(c)))
}

// ============================================================================
// Colors
// ============================================================================

// ToTcell converts c to a 24-bit terminal color. Alpha is dropped.
func ToTcell(c retained.Color) tcell.Color {
	r, g, b := c.Colorful().Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// FromTcell converts a terminal color back to an opaque color. It reports
// false for the default color and anything else without an RGB value.
func FromTcell(tc tcell.Color) (retained.Color, bool) {
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return retained.Color{}, false
	}
	return retained.FromColorful(colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}), true
}

// ============================================================================
// Shape Tests
// ============================================================================

func bounds(poly []geom.Vec2) geom.Rect {
	lo, hi := poly[0], poly[0]
	for _, p := range poly[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return geom.Rect{Position: lo, Size: hi.Sub(lo)}
}

// insideConvex accepts either winding.
func insideConvex(p geom.Vec2, poly []geom.Vec2) bool {
	var pos, neg bool
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		switch {
		case cross > 0:
			pos = true
		case cross < 0:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// insideRounded tests p against a size rect at the origin with rounded
// corners. Points in a corner's square must lie within its arc.
func insideRounded(p, size geom.Vec2, c geom.Corners) bool {
	arc := func(radius, cx, cy float32) bool {
		dx, dy := p.X-cx, p.Y-cy
		return dx*dx+dy*dy <= radius*radius
	}
	switch {
	case p.X < c.TopLeft && p.Y < c.TopLeft:
		return arc(c.TopLeft, c.TopLeft, c.TopLeft)
	case p.X > size.X-c.TopRight && p.Y < c.TopRight:
		return arc(c.TopRight, size.X-c.TopRight, c.TopRight)
	case p.X > size.X-c.BottomRight && p.Y > size.Y-c.BottomRight:
		return arc(c.BottomRight, size.X-c.BottomRight, size.Y-c.BottomRight)
	case p.X < c.BottomLeft && p.Y > size.Y-c.BottomLeft:
		return arc(c.BottomLeft, c.BottomLeft, size.Y-c.BottomLeft)
	}
	return true
}
