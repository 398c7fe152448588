package geom

// Rect is an axis aligned rectangle: top-left position plus size.
type Rect struct {
	Position Vec2
	Size     Vec2
}

// R returns a Rect from x, y, width and height.
func R(x, y, width, height float32) Rect {
	return Rect{Position: Vec2{x, y}, Size: Vec2{width, height}}
}

func (r Rect) X() float32      { return r.Position.X }
func (r Rect) Y() float32      { return r.Position.Y }
func (r Rect) Width() float32  { return r.Size.X }
func (r Rect) Height() float32 { return r.Size.Y }
func (r Rect) Max() Vec2       { return r.Position.Add(r.Size) }
func (r Rect) Center() Vec2    { return r.Position.Add(r.Size.Scale(0.5)) }

// Contains reports whether p lies inside r. The top and left edges are
// inclusive, the bottom and right edges exclusive, so adjacent siblings never
// both claim a point.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Position.X && p.Y >= r.Position.Y &&
		p.X < r.Position.X+r.Size.X && p.Y < r.Position.Y+r.Size.Y
}

// Inset shrinks r by the given sides. Sizes never go negative.
func (r Rect) Inset(s Sides) Rect {
	out := Rect{
		Position: Vec2{r.Position.X + s.Left, r.Position.Y + s.Top},
		Size:     Vec2{r.Size.X - s.Left - s.Right, r.Size.Y - s.Top - s.Bottom},
	}
	out.Size = out.Size.Max(Vec2{})
	return out
}

// Translate moves r by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Position: r.Position.Add(d), Size: r.Size}
}

// Flip swaps the axes of both position and size when flip is true.
func (r Rect) Flip(flip bool) Rect {
	if !flip {
		return r
	}
	return Rect{Position: r.Position.Transpose(), Size: r.Size.Transpose()}
}

// Round snaps the rectangle's edges to multiples of unit. Edges are rounded
// rather than position and size independently so neighbours stay flush.
func (r Rect) Round(unit float32) Rect {
	lo := r.Position.Round(unit)
	hi := r.Max().Round(unit)
	return Rect{Position: lo, Size: hi.Sub(lo)}
}

// Eq compares two rectangles with a tolerance.
func (r Rect) Eq(o Rect, eps float32) bool {
	return r.Position.Eq(o.Position, eps) && r.Size.Eq(o.Size, eps)
}
