package retained

import (
	"context"
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/agiangrant/boxtree/geom"
)

// EPS absorbs float32 rounding in layout comparisons and paint culling.
const EPS float32 = 0.001

// ============================================================================
// Layout Pass
// ============================================================================
//
// Layout runs top-down one sibling group at a time. Each group is solved in a
// local frame whose main axis is always x: column directions transpose sizes
// and sides on the way in and transpose the results back on the way out.
//
//   prepare  resolve margin/padding/min/max/basis, pack at basis
//   grow     share slack by grow factor, capping at max   (fits)
//   shrink   shave overflow by width*shrink, capping at min (overflows)
//   justify  place along the main axis
//   align    place along the cross axis
//   commit   un-flip, translate to global space, recurse into content regions

// flexItem is one child's scratch state inside layoutGroup. All sizes are
// padding-box sizes in the local frame unless noted.
type flexItem struct {
	id   NodeID
	node *Node

	margin  geom.Sides // local frame
	padding geom.Sides // real frame
	min     geom.Vec2
	max     geom.Vec2
	basis   float32

	width     float32 // main size
	height    float32 // cross size
	crossAuto bool    // declared cross size is Auto
	x, y      float32 // margin-box position

	capped bool
	fair   float32 // shrink scratch
}

func (it *flexItem) fullWidth() float32  { return it.width + it.margin.Horizontal() }
func (it *flexItem) fullHeight() float32 { return it.height + it.margin.Vertical() }

// Resize lays out the whole tree for a surface of the given size. The root is
// treated as the single child of a row spanning (0, 0, size).
func (t *Tree) Resize(size geom.Vec2) {
	t.size = size
	t.layoutGroup([]NodeID{t.rootID}, geom.Rect{Size: size}, FlexRow, JustifyStart, AlignStart)
}

// Size returns the size given to the last Resize.
func (t *Tree) Size() geom.Vec2 { return t.size }

func (t *Tree) layoutChildrenOf(id NodeID) {
	node := t.mustGet(id)
	if len(node.children) == 0 {
		return
	}
	style := &node.Style
	t.layoutGroup(node.children, node.raw.ContentRegion(), style.Direction, style.Justify, style.Align)
}

// layoutGroup computes the regions of ids inside parent and recurses.
func (t *Tree) layoutGroup(ids []NodeID, parent geom.Rect, dir FlexDirection, justify JustifyContent, align AlignItems) {
	flip := !dir.IsRow()
	local := parent.Size.Flip(flip)

	// Items are stored in placement order, so reverse directions only
	// change how they are collected.
	items := acquireFlexItems(len(ids))
	defer releaseFlexItems(items)
	for i, id := range ids {
		j := i
		if dir.IsReverse() {
			j = len(ids) - 1 - i
		}
		items[j] = flexItem{id: id, node: t.mustGet(id)}
	}

	groupWidth := prepareGroup(items, parent.Size, flip)
	if groupWidth <= local.X+EPS {
		groupWidth = growGroup(items, local.X)
	} else {
		groupWidth = t.shrinkGroup(items, groupWidth, local.X)
	}
	justifyGroup(items, groupWidth, local.X, justify)
	alignGroup(items, local.Y, align)

	debug := t.logger.Enabled(context.Background(), slog.LevelDebug)
	for i := range items {
		it := &items[i]
		region := geom.Rect{
			Position: geom.V(it.x, it.y),
			Size:     geom.V(it.fullWidth(), it.fullHeight()),
		}
		raw := &it.node.raw
		raw.Region = region.Flip(flip).Translate(parent.Position)
		raw.Margin = it.margin.Flip(flip)
		raw.Padding = it.padding
		raw.MinSize = it.min.Flip(flip)
		raw.MaxSize = it.max.Flip(flip)
		raw.Basis = it.basis
		raw.Corners = it.node.Style.Corners.resolve(raw.PaddingRegion().Size)

		if debug {
			t.logger.Debug("layout",
				"node", it.id.String(),
				"widget", it.node.WidgetName(),
				"region", raw.Region,
				"basis", it.basis,
				"direction", dir.String())
		}
	}

	for i := range items {
		if items[i].node.HasChildren() {
			t.layoutChildrenOf(items[i].id)
		}
	}
}

// ============================================================================
// Prepare
// ============================================================================

// prepareGroup resolves each item's raw values against the parent content
// size and packs it at its basis. Returns the packed width including margins.
func prepareGroup(items []flexItem, parent geom.Vec2, flip bool) float32 {
	local := parent.Flip(flip)
	var groupWidth float32
	for i := range items {
		it := &items[i]
		style := &it.node.Style

		// Margin and padding resolve in the real frame, x sides against the
		// parent width and y sides against its height.
		it.margin = style.Margin.resolve(parent).Flip(flip)
		it.padding = style.Padding.resolve(parent)
		minSize := style.minSize(parent)
		it.min = minSize.Flip(flip)
		it.max = style.maxSize(parent, minSize).Flip(flip)

		mainVal, crossVal := style.Width, style.Height
		if flip {
			mainVal, crossVal = crossVal, mainVal
		}

		// basis: explicit basis, else declared main size, else fill
		fill := local.X - it.margin.Horizontal()
		basis := style.Basis.Resolve(local.X, mainVal.Resolve(local.X, fill))
		it.basis = geom.Clamp(math32.Max(basis, 0), it.min.X, it.max.X)
		it.width = it.basis

		it.crossAuto = crossVal.IsAuto()
		it.height = it.resolveCross(crossVal, local.Y)

		groupWidth += it.fullWidth()
	}
	return groupWidth
}

// resolveCross resolves a cross size. Auto fills the parent minus margins.
func (it *flexItem) resolveCross(v Val, parentCross float32) float32 {
	h := v.Resolve(parentCross, parentCross-it.margin.Vertical())
	return geom.Clamp(math32.Max(h, 0), it.min.Y, it.max.Y)
}

// ============================================================================
// Grow / Shrink
// ============================================================================

// growGroup shares the slack between items by grow factor. An item that would
// pass its max is capped there and the rest of the slack is shared again
// among the others, until a pass caps nobody. Returns the new group width.
func growGroup(items []flexItem, parentWidth float32) float32 {
	free := parentWidth
	for i := range items {
		items[i].capped = false
		free -= items[i].fullWidth()
	}

	for free > 0 {
		var growTotal float32
		for i := range items {
			if !items[i].capped {
				growTotal += math32.Max(items[i].node.Style.Grow, 0)
			}
		}
		growTotal = math32.Max(growTotal, 1)

		// Cap everything that would overshoot with this pass's share.
		share := free
		cappedAny := false
		for i := range items {
			it := &items[i]
			grow := math32.Max(it.node.Style.Grow, 0)
			if it.capped || grow == 0 {
				continue
			}
			if it.width+share*grow/growTotal > it.max.X {
				free -= it.max.X - it.width
				it.width = it.max.X
				it.capped = true
				cappedAny = true
			}
		}
		if cappedAny {
			continue
		}

		for i := range items {
			it := &items[i]
			if !it.capped {
				it.width += free * math32.Max(it.node.Style.Grow, 0) / growTotal
			}
		}
		break
	}

	return groupWidthOf(items)
}

// shrinkGroup closes an overflow. Each pass gives every uncapped item a fair
// shave of gap * widthShare * shrinkShare, then scales all shaves by one ratio
// so together they close the gap. Items that would drop below min are held at
// min and the remaining gap is retried on the others. The pass count is
// bounded; when it runs out the group is left overflowing.
func (t *Tree) shrinkGroup(items []flexItem, groupWidth, parentWidth float32) float32 {
	gap := groupWidth - parentWidth
	for i := range items {
		it := &items[i]
		it.capped = it.node.Style.Shrink <= 0 || it.width <= it.min.X
	}

	for pass := 0; gap > EPS; pass++ {
		if pass >= t.maxShrinkPasses {
			t.logger.Warn("shrink did not converge, group overflows",
				"passes", pass,
				"overflow", gap,
				"items", len(items))
			break
		}

		var widthTotal, shrinkTotal float32
		for i := range items {
			if !items[i].capped {
				widthTotal += items[i].width
				shrinkTotal += items[i].node.Style.Shrink
			}
		}
		if widthTotal <= EPS || shrinkTotal <= 0 {
			break
		}

		var fairTotal float32
		for i := range items {
			it := &items[i]
			if it.capped {
				continue
			}
			it.fair = gap * (it.width / widthTotal) * (it.node.Style.Shrink / shrinkTotal)
			fairTotal += it.fair
		}
		if fairTotal < EPS {
			break
		}

		ratio := gap / fairTotal
		for i := range items {
			it := &items[i]
			if it.capped {
				continue
			}
			shave := it.fair * ratio
			if it.width-shave <= it.min.X {
				shave = it.width - it.min.X
				it.capped = true
			}
			it.width -= shave
			gap -= shave
		}
	}

	return groupWidthOf(items)
}

func groupWidthOf(items []flexItem) float32 {
	var w float32
	for i := range items {
		w += items[i].fullWidth()
	}
	return w
}

// ============================================================================
// Justify / Align
// ============================================================================

// justifyGroup positions items along the main axis. Space distributions fall
// back to start (between) or center (around, evenly) when the group overflows.
func justifyGroup(items []flexItem, groupWidth, parentWidth float32, justify JustifyContent) {
	n := float32(len(items))
	remaining := parentWidth - groupWidth

	var offset, spacing float32
	switch justify {
	case JustifyEnd:
		offset = remaining
	case JustifyCenter:
		offset = remaining / 2
	case JustifyBetween:
		if len(items) > 1 && remaining > 0 {
			spacing = remaining / (n - 1)
		}
	case JustifyAround:
		if remaining >= 0 {
			spacing = remaining / n
			offset = spacing / 2
		} else {
			offset = remaining / 2
		}
	case JustifyEvenly:
		if remaining >= 0 {
			spacing = remaining / (n + 1)
			offset = spacing
		} else {
			offset = remaining / 2
		}
	}

	x := offset
	for i := range items {
		items[i].x = x
		x += items[i].fullWidth() + spacing
	}
}

// alignGroup positions each item along the cross axis using its AlignSelf or
// the parent's AlignItems.
func alignGroup(items []flexItem, parentHeight float32, align AlignItems) {
	for i := range items {
		it := &items[i]
		switch it.node.Style.AlignSelf.Resolve(align) {
		case AlignStretch:
			if it.crossAuto {
				it.height = it.resolveCross(Auto, parentHeight)
			}
			it.y = 0
		case AlignCenter:
			it.y = (parentHeight - it.fullHeight()) / 2
		case AlignEnd:
			it.y = parentHeight - it.fullHeight()
		default:
			it.y = 0
		}
	}
}
