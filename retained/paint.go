package retained

import "github.com/agiangrant/boxtree/geom"

// ============================================================================
// Draw Commands
// ============================================================================

// DrawCommand is one recorded paint primitive. Backends type-switch over the
// concrete command types below. Geometry is relative to the most recent
// Translation command.
type DrawCommand interface {
	drawCommand()
}

type (
	// Translation moves the origin of later commands to an absolute position.
	Translation struct{ Offset geom.Vec2 }
	// SetColor sets the fill color of later commands.
	SetColor struct{ Color Color }
	// Circle fills a circle.
	Circle struct {
		Center geom.Vec2
		Radius float32
	}
	// Rect fills a rectangle at the origin.
	Rect struct{ Size geom.Vec2 }
	// RoundedRect fills a rectangle at the origin with rounded corners.
	RoundedRect struct {
		Size    geom.Vec2
		Corners geom.Corners
	}
	// Triangle fills a triangle.
	Triangle struct{ A, B, C geom.Vec2 }
	// Quad fills a convex quadrilateral given in winding order.
	Quad struct{ A, B, C, D geom.Vec2 }
	// Resize starts a frame: the surface size, its translation and the
	// device scale.
	Resize struct {
		Size        geom.Vec2
		Translation geom.Vec2
		Scale       float32
	}
)

func (Translation) drawCommand() {}
func (SetColor) drawCommand()    {}
func (Circle) drawCommand()      {}
func (Rect) drawCommand()        {}
func (RoundedRect) drawCommand() {}
func (Triangle) drawCommand()    {}
func (Quad) drawCommand()        {}
func (Resize) drawCommand()      {}

// ============================================================================
// Painter
// ============================================================================

// Painter records draw commands for a backend to replay.
type Painter struct {
	color       Color
	translation geom.Vec2
	commands    []DrawCommand
}

// PainterState is a saved color and translation.
type PainterState struct {
	color       Color
	translation geom.Vec2
}

// NewPainter returns an empty painter drawing in white.
func NewPainter() *Painter {
	return &Painter{color: White}
}

// Commands returns the commands recorded so far.
func (p *Painter) Commands() []DrawCommand { return p.commands }

// Reset drops recorded commands and restores the initial state. The backing
// array is kept for the next frame.
func (p *Painter) Reset() {
	p.commands = p.commands[:0]
	p.color = White
	p.translation = geom.Vec2{}
}

func (p *Painter) Color() Color { return p.color }

// Translation returns the current absolute origin.
func (p *Painter) Translation() geom.Vec2 { return p.translation }

// SetColor sets the color of later shapes.
func (p *Painter) SetColor(c Color) *Painter {
	p.color = c
	p.commands = append(p.commands, SetColor{Color: c})
	return p
}

// MoveTo moves the origin by offset, relative to the current origin.
func (p *Painter) MoveTo(offset geom.Vec2) *Painter {
	return p.setTranslation(p.translation.Add(offset))
}

func (p *Painter) setTranslation(t geom.Vec2) *Painter {
	p.translation = t
	p.commands = append(p.commands, Translation{Offset: t})
	return p
}

func (p *Painter) Circle(center geom.Vec2, radius float32) *Painter {
	p.commands = append(p.commands, Circle{Center: center, Radius: radius})
	return p
}

func (p *Painter) Rect(size geom.Vec2) *Painter {
	p.commands = append(p.commands, Rect{Size: size})
	return p
}

func (p *Painter) RoundedRect(size geom.Vec2, corners geom.Corners) *Painter {
	p.commands = append(p.commands, RoundedRect{Size: size, Corners: corners})
	return p
}

func (p *Painter) Triangle(a, b, c geom.Vec2) *Painter {
	p.commands = append(p.commands, Triangle{A: a, B: b, C: c})
	return p
}

func (p *Painter) Quad(a, b, c, d geom.Vec2) *Painter {
	p.commands = append(p.commands, Quad{A: a, B: b, C: c, D: d})
	return p
}

// Push saves the current color and translation.
func (p *Painter) Push() PainterState {
	return PainterState{color: p.color, translation: p.translation}
}

// Pop restores a saved state and re-emits it so the backend follows.
func (p *Painter) Pop(s PainterState) {
	p.SetColor(s.color)
	p.setTranslation(s.translation)
}

func (p *Painter) resize(size, translation geom.Vec2, scale float32) {
	p.commands = append(p.commands, Resize{Size: size, Translation: translation, Scale: scale})
}

// ============================================================================
// Paint Walk
// ============================================================================

// Paint records the whole tree into p, parents before children. Each widget
// paints inside its padding region; regions smaller than EPS on either axis
// are skipped but their children are still visited.
func (t *Tree) Paint(p *Painter) {
	p.resize(t.size, t.Translation, t.Scale)
	t.paintNode(t.rootID, p)
}

func (t *Tree) paintNode(id NodeID, p *Painter) {
	node := t.mustGet(id)

	region := node.raw.PaddingRegion()
	corners := node.raw.Corners
	if t.Round && t.Scale > 0 {
		unit := 1 / t.Scale
		region = region.Round(unit)
		corners = corners.Round(unit)
	}

	if region.Size.X > EPS && region.Size.Y > EPS {
		state := p.Push()
		p.setTranslation(region.Position)
		node.Widget.Paint(node.Style, p, Canvas{Size: region.Size, Corners: corners})
		p.Pop(state)
	}

	for _, child := range node.children {
		t.paintNode(child, p)
	}
}
