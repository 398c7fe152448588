package retained

import "fmt"

// ============================================================================
// Generational Arena
// ============================================================================
//
// Nodes live in a slot table. A NodeID is the slot index plus the generation
// the slot had when the node was stored. Freeing a slot bumps its generation,
// so ids held past a Remove stop resolving instead of pointing at whatever
// reuses the slot.

// NodeID identifies a node in a Tree. The zero value never resolves.
type NodeID struct {
	index      uint32
	generation uint32
}

// IsZero reports whether id is the zero (invalid) id.
func (id NodeID) IsZero() bool { return id.generation == 0 }

func (id NodeID) String() string {
	if id.IsZero() {
		return "NodeID(none)"
	}
	return fmt.Sprintf("NodeID(%d#%d)", id.index, id.generation)
}

type slot struct {
	generation uint32 // odd = occupied, even = free
	node       *Node
}

type arena struct {
	slots []slot
	free  []uint32
	count int
}

func (a *arena) insert(n *Node) NodeID {
	var index uint32
	if k := len(a.free); k > 0 {
		index = a.free[k-1]
		a.free = a.free[:k-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}
	s := &a.slots[index]
	s.generation++
	s.node = n
	a.count++
	return NodeID{index: index, generation: s.generation}
}

func (a *arena) get(id NodeID) (*Node, bool) {
	if id.IsZero() || int(id.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[id.index]
	if s.generation != id.generation || s.node == nil {
		return nil, false
	}
	return s.node, true
}

func (a *arena) remove(id NodeID) (*Node, bool) {
	n, ok := a.get(id)
	if !ok {
		return nil, false
	}
	s := &a.slots[id.index]
	s.generation++
	s.node = nil
	a.free = append(a.free, id.index)
	a.count--
	return n, true
}

func (a *arena) len() int { return a.count }

// ids returns the live ids in slot order.
func (a *arena) ids() []NodeID {
	out := make([]NodeID, 0, a.count)
	for i := range a.slots {
		s := &a.slots[i]
		if s.node != nil {
			out = append(out, NodeID{index: uint32(i), generation: s.generation})
		}
	}
	return out
}
