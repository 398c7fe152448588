package retained

// ============================================================================
// Event Types
// ============================================================================

// Event is any value fired through the tree. Handlers recover the concrete
// type with Match or FromChild.
type Event any

// Built-in events fired by the input mapping and focus handling.
type (
	PressEvent   struct{}
	ReleaseEvent struct{}
	EnterEvent   struct{}
	ExitEvent    struct{}
	FocusEvent   struct{}
	UnfocusEvent struct{}

	// GuiEnterEvent and GuiExitEvent are fired globally when the cursor
	// enters or leaves the whole surface.
	GuiEnterEvent struct{}
	GuiExitEvent  struct{}
)

// NodeOrigin identifies the node an event started from.
type NodeOrigin struct {
	ID   NodeID
	Name Name
}

// ============================================================================
// Event Control
// ============================================================================

// EventControl is handed to a widget's Event method. It carries the event and
// its origin and collects the handler's requests, which the dispatcher applies
// once the handler returns.
type EventControl struct {
	event  Event
	origin *NodeOrigin

	outgoing   []Event
	stop       bool
	pressed    bool
	repaint    bool
	focus      bool
	cursorIcon *CursorIcon
}

func newEventControl(event Event, origin *NodeOrigin) *EventControl {
	return &EventControl{event: event, origin: origin}
}

// Event returns the raw event.
func (c *EventControl) Event() Event { return c.event }

// Origin returns where the event started. It is absent while the event is
// being delivered to the node it was fired at.
func (c *EventControl) Origin() (NodeOrigin, bool) {
	if c.origin == nil {
		return NodeOrigin{}, false
	}
	return *c.origin, true
}

// Stop ends propagation after the current handler.
func (c *EventControl) Stop() { c.stop = true }

// Stopped reports whether Stop was called.
func (c *EventControl) Stopped() bool { return c.stop }

// Press captures the pointer for the handling node, so a later release over
// the same node fires ReleaseEvent on it.
func (c *EventControl) Press() { c.pressed = true }

// Repaint asks the host to repaint.
func (c *EventControl) Repaint() { c.repaint = true }

// Focus moves keyboard focus to the handling node.
func (c *EventControl) Focus() { c.focus = true }

// SetCursorIcon requests a cursor icon for the next frame.
func (c *EventControl) SetCursorIcon(icon CursorIcon) { c.cursorIcon = &icon }

// Emit queues an event to be fired after the handler returns. It bubbles from
// the handling node's owner (or its parent when it has none) and carries the
// handling node as origin.
func (c *EventControl) Emit(event Event) { c.outgoing = append(c.outgoing, event) }

// Is reports whether the event is of type E.
func Is[E any](c *EventControl) bool {
	_, ok := c.event.(E)
	return ok
}

// Match returns the event as E.
func Match[E any](c *EventControl) (E, bool) {
	e, ok := c.event.(E)
	return e, ok
}

// FromChild returns the event as E when it bubbled up from a named node. A
// name of NoName accepts any named origin.
func FromChild[E any](c *EventControl, name Name) (E, NodeOrigin, bool) {
	var zero E
	e, ok := c.event.(E)
	if !ok || c.origin == nil || c.origin.Name == NoName {
		return zero, NodeOrigin{}, false
	}
	if name != NoName && c.origin.Name != name {
		return zero, NodeOrigin{}, false
	}
	return e, *c.origin, true
}
