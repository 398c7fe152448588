package geom

import "github.com/chewxy/math32"

// Sides holds resolved pixel values for margin or padding.
type Sides struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// Uniform returns Sides with the same value on every edge.
func Uniform(v float32) Sides { return Sides{v, v, v, v} }

// Horizontal is Left + Right.
func (s Sides) Horizontal() float32 { return s.Left + s.Right }

// Vertical is Top + Bottom.
func (s Sides) Vertical() float32 { return s.Top + s.Bottom }

// Total returns the combined horizontal and vertical extents.
func (s Sides) Total() Vec2 { return Vec2{s.Horizontal(), s.Vertical()} }

// Add sums two Sides edge by edge.
func (s Sides) Add(o Sides) Sides {
	return Sides{s.Top + o.Top, s.Right + o.Right, s.Bottom + o.Bottom, s.Left + o.Left}
}

// Flip mirrors the sides across the main diagonal when flip is true:
// left <-> top and right <-> bottom. Applying it twice is the identity.
func (s Sides) Flip(flip bool) Sides {
	if !flip {
		return s
	}
	return Sides{Top: s.Left, Right: s.Bottom, Bottom: s.Right, Left: s.Top}
}

// Corners holds resolved pixel radii for a rounded rectangle.
type Corners struct {
	TopLeft     float32
	TopRight    float32
	BottomRight float32
	BottomLeft  float32
}

// Clamp limits every radius to [0, limit].
func (c Corners) Clamp(limit float32) Corners {
	limit = math32.Max(limit, 0)
	return Corners{
		TopLeft:     Clamp(c.TopLeft, 0, limit),
		TopRight:    Clamp(c.TopRight, 0, limit),
		BottomRight: Clamp(c.BottomRight, 0, limit),
		BottomLeft:  Clamp(c.BottomLeft, 0, limit),
	}
}

// Round snaps every radius to a multiple of unit.
func (c Corners) Round(unit float32) Corners {
	return Corners{
		TopLeft:     Round(c.TopLeft, unit),
		TopRight:    Round(c.TopRight, unit),
		BottomRight: Round(c.BottomRight, unit),
		BottomLeft:  Round(c.BottomLeft, unit),
	}
}
