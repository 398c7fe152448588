package retained

import "github.com/agiangrant/boxtree/geom"

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

func (b MouseButton) String() string {
	if b == MouseButtonRight {
		return "right"
	}
	return "left"
}

// CursorIcon is a pointer shape a widget can request from the host.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorCrosshair
	CursorHand
	CursorArrow
	CursorMove
	CursorText
	CursorWait
	CursorHelp
	CursorProgress
	CursorNotAllowed
	CursorContextMenu
	CursorCell
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorNoDrop
	CursorGrab
	CursorGrabbing
	CursorAllScroll
	CursorZoomIn
	CursorZoomOut
	CursorEResize
	CursorNResize
	CursorNeResize
	CursorNwResize
	CursorSResize
	CursorSeResize
	CursorSwResize
	CursorWResize
	CursorEwResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorColResize
	CursorRowResize
)

var cursorIconNames = [...]string{
	"default", "crosshair", "hand", "arrow", "move", "text", "wait", "help",
	"progress", "not-allowed", "context-menu", "cell", "vertical-text",
	"alias", "copy", "no-drop", "grab", "grabbing", "all-scroll", "zoom-in",
	"zoom-out", "e-resize", "n-resize", "ne-resize", "nw-resize", "s-resize",
	"se-resize", "sw-resize", "w-resize", "ew-resize", "ns-resize",
	"nesw-resize", "nwse-resize", "col-resize", "row-resize",
}

func (c CursorIcon) String() string {
	if int(c) < len(cursorIconNames) {
		return cursorIconNames[c]
	}
	return "unknown"
}

// Cursor is the pointer state tracked by the tree.
type Cursor struct {
	Position     geom.Vec2
	Inside       bool
	LeftPressed  bool
	RightPressed bool
	PressedID    NodeID // Node that captured the pointer on press
	FocusedID    NodeID
}

// Cursor returns a copy of the pointer state.
func (t *Tree) Cursor() Cursor { return t.cursor }

// ============================================================================
// Input Mapping
// ============================================================================

// InputMapping turns raw host pointer input into tree events.
//
//	Idle -(EnterCursor)-> Hovering -(Press)-> Pressed
//	Pressed -(Release over the captured node)-> ReleaseEvent on it
//	Pressed -(Release elsewhere)-> capture dropped, no ReleaseEvent
//	Pressed -(ExitCursor)-> GuiExitEvent, then ReleaseEvent forced on the captured node
type InputMapping struct {
	tree *Tree
}

// Input returns the input mapping for t.
func (t *Tree) Input() InputMapping { return InputMapping{tree: t} }

// EnterCursor reports that the pointer entered the surface.
func (m InputMapping) EnterCursor() error {
	m.tree.cursor.Inside = true
	return m.tree.FireGlobal(GuiEnterEvent{})
}

// ExitCursor reports that the pointer left the surface. GuiExitEvent reaches
// every node, then a captured node is force-released by bubbling ReleaseEvent
// from it.
func (m InputMapping) ExitCursor() error {
	t := m.tree
	c := &t.cursor
	pressed := c.PressedID
	c.Inside = false
	c.LeftPressed = false
	c.RightPressed = false
	c.PressedID = NodeID{}
	if err := t.FireGlobal(GuiExitEvent{}); err != nil {
		return err
	}
	if pressed.IsZero() || !t.Contains(pressed) {
		return nil
	}
	return t.FireBubble(ReleaseEvent{}, pressed)
}

// MoveCursor moves the pointer. When the node under it changes, ExitEvent
// bubbles from the old node and then EnterEvent from the new one.
func (m InputMapping) MoveCursor(p geom.Vec2) error {
	t := m.tree
	prev, hadPrev := t.TouchingID(t.cursor.Position)
	next, hasNext := t.TouchingID(p)
	t.cursor.Position = p

	switch {
	case hadPrev && hasNext && prev == next:
		return nil
	case hadPrev && hasNext:
		if err := t.FireBubble(ExitEvent{}, prev); err != nil {
			return err
		}
		return t.FireBubble(EnterEvent{}, next)
	case hadPrev:
		return t.FireBubble(ExitEvent{}, prev)
	case hasNext:
		return t.FireBubble(EnterEvent{}, next)
	}
	return nil
}

// Press presses a button at the current pointer position and fires PressEvent
// there.
func (m InputMapping) Press(button MouseButton) error {
	t := m.tree
	switch button {
	case MouseButtonRight:
		t.cursor.RightPressed = true
	default:
		t.cursor.LeftPressed = true
	}
	return t.FireBubbleAt(PressEvent{}, t.cursor.Position)
}

// Release releases a button. A left release fires ReleaseEvent on the
// captured node only if it is still under the pointer. A right release fires
// ReleaseEvent globally.
func (m InputMapping) Release(button MouseButton) error {
	t := m.tree
	if button == MouseButtonRight {
		t.cursor.RightPressed = false
		return t.FireGlobal(ReleaseEvent{})
	}

	t.cursor.LeftPressed = false
	pressed := t.cursor.PressedID
	t.cursor.PressedID = NodeID{}
	if pressed.IsZero() {
		return nil
	}
	hit, ok := t.TouchingID(t.cursor.Position)
	if !ok || hit != pressed {
		return nil
	}
	return t.FireBubble(ReleaseEvent{}, pressed)
}

// TakeCursorIcon returns the cursor icon requested since the last call.
func (m InputMapping) TakeCursorIcon() (CursorIcon, bool) {
	t := m.tree
	icon, ok := t.nextCursorIcon, t.hasCursorIcon
	t.nextCursorIcon = CursorDefault
	t.hasCursorIcon = false
	return icon, ok
}
