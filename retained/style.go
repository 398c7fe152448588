package retained

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/agiangrant/boxtree/geom"
)

// ============================================================================
// Values
// ============================================================================

// ValKind says how a Val resolves against its reference length.
type ValKind uint8

const (
	// ValAuto defers to the property's own fallback (fill, 0 or unbounded).
	ValAuto ValKind = iota
	// ValPx is an absolute pixel length.
	ValPx
	// ValPc is a fraction (0-1) of the parent's length on the same axis.
	ValPc
)

// Val is a style length. The zero value is Auto.
type Val struct {
	Kind  ValKind
	Value float32
}

// Auto is the zero Val.
var Auto = Val{}

// Px returns a pixel Val.
func Px(v float32) Val { return Val{Kind: ValPx, Value: v} }

// Pc returns a fractional Val, 0.5 being half of the parent.
func Pc(fraction float32) Val { return Val{Kind: ValPc, Value: fraction} }

func (v Val) IsAuto() bool { return v.Kind == ValAuto }

// Resolve converts v to pixels. Auto resolves to fallback.
func (v Val) Resolve(parent, fallback float32) float32 {
	switch v.Kind {
	case ValPx:
		return v.Value
	case ValPc:
		return v.Value * parent
	default:
		return fallback
	}
}

func (v Val) String() string {
	switch v.Kind {
	case ValPx:
		return fmt.Sprintf("%gpx", v.Value)
	case ValPc:
		return fmt.Sprintf("%g%%", v.Value*100)
	default:
		return "auto"
	}
}

// Edges holds a Val per side, used for margin and padding.
type Edges struct {
	Top    Val
	Right  Val
	Bottom Val
	Left   Val
}

// All returns Edges with v on every side.
func All(v Val) Edges { return Edges{v, v, v, v} }

// Symmetric returns Edges with vertical on top/bottom and horizontal on left/right.
func Symmetric(vertical, horizontal Val) Edges {
	return Edges{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// resolve converts Edges to pixels. Horizontal sides resolve against the
// parent width, vertical sides against the parent height. Auto and negative
// values become 0.
func (e Edges) resolve(parent geom.Vec2) geom.Sides {
	pos := func(v Val, ref float32) float32 { return math32.Max(v.Resolve(ref, 0), 0) }
	return geom.Sides{
		Top:    pos(e.Top, parent.Y),
		Right:  pos(e.Right, parent.X),
		Bottom: pos(e.Bottom, parent.Y),
		Left:   pos(e.Left, parent.X),
	}
}

// Radii holds a Val per corner. Fractions resolve against the smaller side
// of the node's padding region.
type Radii struct {
	TopLeft     Val
	TopRight    Val
	BottomRight Val
	BottomLeft  Val
}

// Round returns Radii with v on every corner.
func Round(v Val) Radii { return Radii{v, v, v, v} }

func (r Radii) resolve(size geom.Vec2) geom.Corners {
	side := math32.Max(size.MinElement(), 0)
	c := geom.Corners{
		TopLeft:     r.TopLeft.Resolve(side, 0),
		TopRight:    r.TopRight.Resolve(side, 0),
		BottomRight: r.BottomRight.Resolve(side, 0),
		BottomLeft:  r.BottomLeft.Resolve(side, 0),
	}
	return c.Clamp(side / 2)
}

// ============================================================================
// Flex enums
// ============================================================================

// FlexDirection determines the main axis for flex layout.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool { return d == FlexRow || d == FlexRowReverse }

// IsReverse reports whether children are laid out last to first.
func (d FlexDirection) IsReverse() bool { return d == FlexRowReverse || d == FlexColumnReverse }

func (d FlexDirection) String() string {
	switch d {
	case FlexRowReverse:
		return "row-reverse"
	case FlexColumn:
		return "column"
	case FlexColumnReverse:
		return "column-reverse"
	default:
		return "row"
	}
}

// JustifyContent controls placement along the main axis.
type JustifyContent uint8

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifyBetween
	JustifyAround
	JustifyEvenly
)

func (j JustifyContent) String() string {
	switch j {
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifyBetween:
		return "space-between"
	case JustifyAround:
		return "space-around"
	case JustifyEvenly:
		return "space-evenly"
	default:
		return "start"
	}
}

// AlignItems controls placement along the cross axis.
type AlignItems uint8

const (
	AlignStart AlignItems = iota
	AlignEnd
	AlignCenter
	AlignStretch
)

func (a AlignItems) String() string {
	switch a {
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	default:
		return "start"
	}
}

// AlignSelf overrides the parent's AlignItems for one child.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota // Use parent's AlignItems
	AlignSelfStart
	AlignSelfEnd
	AlignSelfCenter
	AlignSelfStretch
)

// Resolve returns the effective alignment given the parent's AlignItems.
func (a AlignSelf) Resolve(parent AlignItems) AlignItems {
	switch a {
	case AlignSelfStart:
		return AlignStart
	case AlignSelfEnd:
		return AlignEnd
	case AlignSelfCenter:
		return AlignCenter
	case AlignSelfStretch:
		return AlignStretch
	default:
		return parent
	}
}

// ============================================================================
// Style
// ============================================================================

// Style is the declarative layout and paint state of a node.
// Width and Height describe the padding box; margins sit outside it.
type Style struct {
	Width     Val
	Height    Val
	MinWidth  Val
	MinHeight Val
	MaxWidth  Val
	MaxHeight Val

	Margin  Edges
	Padding Edges
	Corners Radii
	Color   Color

	Direction FlexDirection
	Justify   JustifyContent
	Align     AlignItems
	AlignSelf AlignSelf

	Grow   float32
	Shrink float32
	Basis  Val
}

// DefaultStyle is the style every NewNode starts from before the widget
// applies its own defaults.
func DefaultStyle() Style {
	return Style{
		Color:  White,
		Shrink: 1,
	}
}

// Size returns the declared width and height.
func (s *Style) Size() (width, height Val) { return s.Width, s.Height }

// SetSize sets both declared dimensions.
func (s *Style) SetSize(width, height Val) {
	s.Width = width
	s.Height = height
}

// minSize resolves the min bounds; Auto is 0.
func (s *Style) minSize(parent geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: math32.Max(s.MinWidth.Resolve(parent.X, 0), 0),
		Y: math32.Max(s.MinHeight.Resolve(parent.Y, 0), 0),
	}
}

// maxSize resolves the max bounds; Auto is unbounded. Never below min.
func (s *Style) maxSize(parent, lo geom.Vec2) geom.Vec2 {
	inf := math32.Inf(1)
	return geom.Vec2{
		X: math32.Max(s.MaxWidth.Resolve(parent.X, inf), lo.X),
		Y: math32.Max(s.MaxHeight.Resolve(parent.Y, inf), lo.Y),
	}
}
