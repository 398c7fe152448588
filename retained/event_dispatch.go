package retained

import (
	"fmt"

	"github.com/agiangrant/boxtree/geom"
)

// ============================================================================
// Bubbling Dispatch
// ============================================================================

// FireBubbleAt fires event at the topmost node under p. Nothing happens when
// no node is there.
func (t *Tree) FireBubbleAt(event Event, p geom.Vec2) error {
	id, ok := t.TouchingID(p)
	if !ok {
		return nil
	}
	return t.FireBubble(event, id)
}

// FireBubble delivers event to start and then to each parent up to the root.
// The start node sees no origin; every ancestor sees the start node as origin.
// A handler calling Stop ends the walk after its requests are applied.
func (t *Tree) FireBubble(event Event, start NodeID) error {
	return t.bubble(event, start, nil)
}

// bubble walks from start to the root. When origin is nil the start node is
// the origin for its ancestors; otherwise origin is used at every step.
func (t *Tree) bubble(event Event, start NodeID, origin *NodeOrigin) error {
	if t.dispatchDepth >= maxDispatchDepth {
		return fmt.Errorf("failed to fire %T at %s: %w", event, start, ErrDispatchTooDeep)
	}
	t.dispatchDepth++
	defer func() { t.dispatchDepth-- }()

	startNode, err := t.Get(start)
	if err != nil {
		return fmt.Errorf("failed to fire %T: %w", event, err)
	}
	ancestorOrigin := origin
	if ancestorOrigin == nil {
		ancestorOrigin = &NodeOrigin{ID: start, Name: startNode.name}
	}

	id := start
	for {
		node, ok := t.arena.get(id)
		if !ok {
			return nil
		}
		parentID := node.parentID

		ctl := newEventControl(event, origin)
		if err := t.deliver(id, ctl); err != nil {
			return err
		}
		if ctl.stop || parentID.IsZero() || !t.Contains(parentID) {
			return nil
		}
		origin = ancestorOrigin
		id = parentID
	}
}

// ============================================================================
// Global Dispatch
// ============================================================================

// FireGlobal delivers event once to every node, in storage order, with no
// origin and no bubbling. Nodes removed by earlier handlers are skipped.
// Outgoing events still bubble from each emitting node's owner.
func (t *Tree) FireGlobal(event Event) error {
	if t.dispatchDepth >= maxDispatchDepth {
		return fmt.Errorf("failed to fire %T globally: %w", event, ErrDispatchTooDeep)
	}
	t.dispatchDepth++
	defer func() { t.dispatchDepth-- }()

	ids := acquireIDSlice(t.arena.len())
	ids = append(ids[:0], t.arena.ids()...)
	defer releaseIDSlice(ids)

	for _, id := range ids {
		if !t.Contains(id) {
			continue
		}
		if err := t.deliver(id, newEventControl(event, nil)); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// Delivery
// ============================================================================

// deliver runs one node's handler and applies what it asked for. The handler
// gets a copy of the node's style, written back if the node survives.
func (t *Tree) deliver(id NodeID, ctl *EventControl) error {
	node := t.mustGet(id)
	style := node.Style
	name := node.name
	target := node.ancestorID
	if target.IsZero() {
		target = node.parentID
	}

	herr := node.Widget.Event(&style, newScope(t, id, id), ctl)
	if n, ok := t.arena.get(id); ok {
		n.Style = style
	}
	if herr != nil {
		return fmt.Errorf("failed to handle %T at %s: %w", ctl.event, id, herr)
	}

	if ctl.cursorIcon != nil {
		t.nextCursorIcon = *ctl.cursorIcon
		t.hasCursorIcon = true
	}
	if ctl.pressed {
		t.cursor.PressedID = id
	}
	if ctl.repaint {
		t.repaint = true
	}
	if ctl.focus {
		if err := t.Focus(id); err != nil {
			return err
		}
	}

	if len(ctl.outgoing) == 0 {
		return nil
	}
	if target.IsZero() || !t.Contains(target) {
		t.logger.Debug("dropping outgoing events with nowhere to bubble",
			"node", id.String(), "count", len(ctl.outgoing))
		return nil
	}
	origin := &NodeOrigin{ID: id, Name: name}
	for _, out := range ctl.outgoing {
		if err := t.bubble(out, target, origin); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// Focus
// ============================================================================

// Focused returns the node holding focus.
func (t *Tree) Focused() (NodeID, bool) {
	return t.cursor.FocusedID, !t.cursor.FocusedID.IsZero()
}

// Focus moves focus to id, firing UnfocusEvent on the previous holder and
// FocusEvent on id. Focusing the current holder is a no-op.
func (t *Tree) Focus(id NodeID) error {
	if !t.Contains(id) {
		return fmt.Errorf("failed to focus %s: %w", id, ErrNodeNotFound)
	}
	if t.cursor.FocusedID == id {
		return nil
	}
	if err := t.Blur(); err != nil {
		return err
	}
	t.cursor.FocusedID = id
	return t.FireBubble(FocusEvent{}, id)
}

// Blur clears focus, firing UnfocusEvent on the previous holder.
func (t *Tree) Blur() error {
	prev := t.cursor.FocusedID
	t.cursor.FocusedID = NodeID{}
	if prev.IsZero() || !t.Contains(prev) {
		return nil
	}
	return t.FireBubble(UnfocusEvent{}, prev)
}

// TakeRepaint reports whether a handler asked for a repaint since the last call.
func (t *Tree) TakeRepaint() bool {
	r := t.repaint
	t.repaint = false
	return r
}

// forget drops input state that refers to a destroyed node.
func (t *Tree) forget(id NodeID) {
	if t.cursor.PressedID == id {
		t.cursor.PressedID = NodeID{}
	}
	if t.cursor.FocusedID == id {
		t.cursor.FocusedID = NodeID{}
	}
}
