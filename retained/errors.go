package retained

import "errors"

var (
	// ErrNodeNotFound is returned when an id is stale or was never issued.
	ErrNodeNotFound = errors.New("node not found")

	// ErrParentNotFound is returned by Insert when the parent id does not resolve.
	ErrParentNotFound = errors.New("parent node not found")

	// ErrNilNode is returned when a nil node or a node without a widget is inserted.
	ErrNilNode = errors.New("nil node")

	// ErrDispatchTooDeep is returned when outgoing events keep re-triggering
	// each other past the nesting limit.
	ErrDispatchTooDeep = errors.New("event dispatch nested too deeply")
)
