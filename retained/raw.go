package retained

import "github.com/agiangrant/boxtree/geom"

// Raw is the layout cache of a node, in pixels. Region is the margin box in
// global coordinates. Every field is overwritten by the layout pass that
// touches the node.
type Raw struct {
	Region  geom.Rect
	Margin  geom.Sides
	Padding geom.Sides
	MinSize geom.Vec2
	MaxSize geom.Vec2
	Corners geom.Corners
	Basis   float32
}

// PaddingRegion is Region inset by the margin. This is what gets painted and
// hit tested.
func (r Raw) PaddingRegion() geom.Rect { return r.Region.Inset(r.Margin) }

// ContentRegion is Region inset by margin and padding. Children are laid out
// inside it.
func (r Raw) ContentRegion() geom.Rect { return r.PaddingRegion().Inset(r.Padding) }

// Canvas returns the paint surface for the node.
func (r Raw) Canvas() Canvas {
	return Canvas{Size: r.PaddingRegion().Size, Corners: r.Corners}
}

// Canvas is the area a widget paints into. Its origin is the top-left corner
// of the node's padding region; widgets must stay within [0, Size].
type Canvas struct {
	Size    geom.Vec2
	Corners geom.Corners
}

// Center is the middle of the canvas.
func (c Canvas) Center() geom.Vec2 { return c.Size.Scale(0.5) }
