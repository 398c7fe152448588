// Package geom holds the pixel geometry shared by layout, hit testing and
// painting. Everything is float32 and value-typed.
package geom

import "github.com/chewxy/math32"

// Vec2 is a point or a size in pixels.
type Vec2 struct {
	X float32
	Y float32
}

// V returns a Vec2.
func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) MinElement() float32  { return math32.Min(v.X, v.Y) }
func (v Vec2) MaxElement() float32  { return math32.Max(v.X, v.Y) }
func (v Vec2) Max(o Vec2) Vec2      { return Vec2{math32.Max(v.X, o.X), math32.Max(v.Y, o.Y)} }
func (v Vec2) Min(o Vec2) Vec2      { return Vec2{math32.Min(v.X, o.X), math32.Min(v.Y, o.Y)} }
func (v Vec2) Transpose() Vec2      { return Vec2{v.Y, v.X} }
func (v Vec2) Eq(o Vec2, eps float32) bool {
	return math32.Abs(v.X-o.X) <= eps && math32.Abs(v.Y-o.Y) <= eps
}

// Flip swaps X and Y when flip is true.
// Column layouts are computed as rows on flipped values and flipped back.
func (v Vec2) Flip(flip bool) Vec2 {
	if flip {
		return v.Transpose()
	}
	return v
}

// Round snaps both components to the nearest multiple of unit.
func (v Vec2) Round(unit float32) Vec2 {
	return Vec2{Round(v.X, unit), Round(v.Y, unit)}
}

// Round snaps x to the nearest multiple of unit. A unit <= 0 returns x.
func Round(x, unit float32) float32 {
	if unit <= 0 {
		return x
	}
	return math32.Floor(x/unit+0.5) * unit
}

// Clamp restricts x to [lo, hi]. When lo > hi, lo wins.
func Clamp(x, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(x, hi))
}
