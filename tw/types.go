package tw

import "github.com/agiangrant/boxtree/retained"

// Partial is a set of style overrides. Nil fields leave the target alone, so
// partials from several classes can be merged and the last class wins.
type Partial struct {
	// Sizing
	Width     *retained.Val
	Height    *retained.Val
	MinWidth  *retained.Val
	MinHeight *retained.Val
	MaxWidth  *retained.Val
	MaxHeight *retained.Val

	// Spacing
	PaddingTop    *retained.Val
	PaddingRight  *retained.Val
	PaddingBottom *retained.Val
	PaddingLeft   *retained.Val
	MarginTop     *retained.Val
	MarginRight   *retained.Val
	MarginBottom  *retained.Val
	MarginLeft    *retained.Val

	// Paint
	Color  *retained.Color
	Radius *retained.Val

	// Flexbox
	Direction *retained.FlexDirection
	Justify   *retained.JustifyContent
	Align     *retained.AlignItems
	AlignSelf *retained.AlignSelf
	Grow      *float32
	Shrink    *float32
	Basis     *retained.Val
}

// Merge copies the non-nil fields of p into s.
func (s *Partial) Merge(p Partial) {
	mergeField(&s.Width, p.Width)
	mergeField(&s.Height, p.Height)
	mergeField(&s.MinWidth, p.MinWidth)
	mergeField(&s.MinHeight, p.MinHeight)
	mergeField(&s.MaxWidth, p.MaxWidth)
	mergeField(&s.MaxHeight, p.MaxHeight)

	mergeField(&s.PaddingTop, p.PaddingTop)
	mergeField(&s.PaddingRight, p.PaddingRight)
	mergeField(&s.PaddingBottom, p.PaddingBottom)
	mergeField(&s.PaddingLeft, p.PaddingLeft)
	mergeField(&s.MarginTop, p.MarginTop)
	mergeField(&s.MarginRight, p.MarginRight)
	mergeField(&s.MarginBottom, p.MarginBottom)
	mergeField(&s.MarginLeft, p.MarginLeft)

	mergeField(&s.Color, p.Color)
	mergeField(&s.Radius, p.Radius)

	mergeField(&s.Direction, p.Direction)
	mergeField(&s.Justify, p.Justify)
	mergeField(&s.Align, p.Align)
	mergeField(&s.AlignSelf, p.AlignSelf)
	mergeField(&s.Grow, p.Grow)
	mergeField(&s.Shrink, p.Shrink)
	mergeField(&s.Basis, p.Basis)
}

func mergeField[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// ApplyTo writes the set fields of p into style.
func (p Partial) ApplyTo(style *retained.Style) {
	applyField(&style.Width, p.Width)
	applyField(&style.Height, p.Height)
	applyField(&style.MinWidth, p.MinWidth)
	applyField(&style.MinHeight, p.MinHeight)
	applyField(&style.MaxWidth, p.MaxWidth)
	applyField(&style.MaxHeight, p.MaxHeight)

	applyField(&style.Padding.Top, p.PaddingTop)
	applyField(&style.Padding.Right, p.PaddingRight)
	applyField(&style.Padding.Bottom, p.PaddingBottom)
	applyField(&style.Padding.Left, p.PaddingLeft)
	applyField(&style.Margin.Top, p.MarginTop)
	applyField(&style.Margin.Right, p.MarginRight)
	applyField(&style.Margin.Bottom, p.MarginBottom)
	applyField(&style.Margin.Left, p.MarginLeft)

	applyField(&style.Color, p.Color)
	if p.Radius != nil {
		style.Corners = retained.Round(*p.Radius)
	}

	applyField(&style.Direction, p.Direction)
	applyField(&style.Justify, p.Justify)
	applyField(&style.Align, p.Align)
	applyField(&style.AlignSelf, p.AlignSelf)
	applyField(&style.Grow, p.Grow)
	applyField(&style.Shrink, p.Shrink)
	applyField(&style.Basis, p.Basis)
}

func applyField[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// IsEmpty reports whether p sets nothing.
func (p Partial) IsEmpty() bool { return p == Partial{} }

func ptr[T any](v T) *T { return &v }
