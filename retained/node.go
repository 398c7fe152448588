package retained

import (
	"fmt"
	"slices"
)

// Name is a small tag used to find nodes and to tell apart events coming from
// named descendants. NoName marks an unnamed node.
type Name uint16

const NoName Name = 0

// Node is one element of a Tree. It owns a widget, its style and the ids of
// its children. Structural fields are managed by the Tree.
type Node struct {
	Widget Widget
	Style  Style

	name       Name
	raw        Raw
	parentID   NodeID
	ancestorID NodeID
	children   []NodeID
}

// NewNode wraps w in a node whose style is DefaultStyle with w's defaults applied.
func NewNode(w Widget) *Node {
	n := &Node{Widget: w, Style: DefaultStyle()}
	if w != nil {
		w.Style(&n.Style)
	}
	return n
}

// WithName sets the node's name. Once the node is in a tree use Tree.SetName
// so the name index follows.
func (n *Node) WithName(name Name) *Node {
	n.name = name
	return n
}

// Name returns the node's name, NoName if unnamed.
func (n *Node) Name() Name { return n.name }

// WithStyle lets the caller adjust the style after the widget defaults.
func (n *Node) WithStyle(fn func(s *Style)) *Node {
	fn(&n.Style)
	return n
}

// Raw returns the layout cache from the most recent Resize.
func (n *Node) Raw() Raw { return n.raw }

// Parent returns the parent id; false for the root.
func (n *Node) Parent() (NodeID, bool) { return n.parentID, !n.parentID.IsZero() }

// Ancestor returns the id of the node whose widget spawned this one, if any.
func (n *Node) Ancestor() (NodeID, bool) { return n.ancestorID, !n.ancestorID.IsZero() }

// Children returns a copy of the child ids in insertion order.
func (n *Node) Children() []NodeID { return slices.Clone(n.children) }

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// WidgetName is the widget's type name, used in paths and debug dumps.
func (n *Node) WidgetName() string {
	if n.Widget == nil {
		return "<nil>"
	}
	if named, ok := n.Widget.(interface{ WidgetName() string }); ok {
		return named.WidgetName()
	}
	return fmt.Sprintf("%T", n.Widget)
}

func (n *Node) removeChild(id NodeID) bool {
	i := slices.Index(n.children, id)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	return true
}
