package retained

import (
	"fmt"
	"iter"
)

// Scope is the handle a widget gets while spawning descendants or handling an
// event. It is bound to an owner (the widget's node) and to the parent new
// nodes are inserted under. Every mutation goes through the Tree by id, so a
// handler never holds a second live reference to its own node.
//
// Nodes inserted through a Scope are owned by its owner: Get, GetNamed and
// Named only see nodes with the same owner.
type Scope struct {
	tree       *Tree
	ancestorID NodeID
	parentID   NodeID
}

func newScope(t *Tree, ancestorID, parentID NodeID) *Scope {
	return &Scope{tree: t, ancestorID: ancestorID, parentID: parentID}
}

// NodeID is the id of the owning widget's node.
func (s *Scope) NodeID() NodeID { return s.ancestorID }

// ParentID is where Insert places new nodes.
func (s *Scope) ParentID() NodeID { return s.parentID }

// Insert adds node under the scope's parent, owned by the scope's owner. The
// returned Scope inserts under the new node with the same owner.
func (s *Scope) Insert(node *Node) (*Scope, error) {
	id, err := s.tree.insert(s.parentID, node, s.ancestorID)
	if err != nil {
		return nil, err
	}
	return newScope(s.tree, s.ancestorID, id), nil
}

// InsertAncestor adds node like Insert, but the returned Scope makes the new
// node the owner of whatever is inserted through it.
func (s *Scope) InsertAncestor(node *Node) (*Scope, error) {
	id, err := s.tree.insert(s.parentID, node, s.ancestorID)
	if err != nil {
		return nil, err
	}
	return newScope(s.tree, id, id), nil
}

// Get returns a node owned by the scope's owner.
func (s *Scope) Get(id NodeID) (*Node, error) {
	node, err := s.tree.Get(id)
	if err != nil {
		return nil, err
	}
	if node.ancestorID != s.ancestorID {
		return nil, fmt.Errorf("failed to get %s outside the scope of %s: %w", id, s.ancestorID, ErrNodeNotFound)
	}
	return node, nil
}

// GetNamed returns the first owned node named name.
func (s *Scope) GetNamed(name Name) (*Node, error) {
	for node := range s.Named(name) {
		return node, nil
	}
	return nil, fmt.Errorf("failed to get node named %d in the scope of %s: %w", name, s.ancestorID, ErrNodeNotFound)
}

// Named iterates owned nodes named name.
func (s *Scope) Named(name Name) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for node := range s.tree.Named(name) {
			if node.ancestorID != s.ancestorID {
				continue
			}
			if !yield(node) {
				return
			}
		}
	}
}

// Remove removes a node and its subtree. The owner itself cannot be removed
// through its own scope.
func (s *Scope) Remove(id NodeID) (*Node, bool) {
	if id == s.ancestorID {
		return nil, false
	}
	return s.tree.Remove(id)
}
