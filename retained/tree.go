// Package retained is a retained-mode widget tree: generational node storage,
// flexbox layout, hit testing and bubbling event dispatch. Rendering goes
// through a Painter that records draw commands for a backend to replay.
//
// A Tree is not safe for concurrent use. The host loop owns it and drives
// Resize, Input and Paint from a single goroutine.
package retained

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/agiangrant/boxtree/geom"
)

const (
	defaultMaxShrinkPasses = 32
	maxDispatchDepth       = 64
)

// Tree stores nodes and drives layout, dispatch and painting.
type Tree struct {
	arena  arena
	rootID NodeID
	named  map[Name][]NodeID

	// Input state
	cursor         Cursor
	nextCursorIcon CursorIcon
	hasCursorIcon  bool
	repaint        bool
	dispatchDepth  int

	size geom.Vec2 // Size passed to the last Resize

	// Translation and Scale are forwarded to the backend on Paint.
	Translation geom.Vec2
	Scale       float32
	// Round snaps painted regions to device pixels (multiples of 1/Scale).
	Round bool

	logger          *slog.Logger
	maxShrinkPasses int
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger routes layout diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tree) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMaxShrinkPasses bounds the shrink redistribution loop per sibling group.
func WithMaxShrinkPasses(n int) Option {
	return func(t *Tree) {
		if n > 0 {
			t.maxShrinkPasses = n
		}
	}
}

// WithScale sets the device scale factor.
func WithScale(scale float32) Option {
	return func(t *Tree) {
		if scale > 0 {
			t.Scale = scale
		}
	}
}

// WithTranslation offsets the whole surface.
func WithTranslation(v geom.Vec2) Option {
	return func(t *Tree) { t.Translation = v }
}

// WithRounding toggles device-pixel rounding at paint time.
func WithRounding(round bool) Option {
	return func(t *Tree) { t.Round = round }
}

// New creates a tree rooted at root and spawns the root widget's descendants.
func New(root *Node, opts ...Option) (*Tree, error) {
	if root == nil || root.Widget == nil {
		return nil, fmt.Errorf("failed to create tree: %w", ErrNilNode)
	}
	t := &Tree{
		named:           make(map[Name][]NodeID),
		Scale:           1,
		Round:           true,
		logger:          slog.Default(),
		maxShrinkPasses: defaultMaxShrinkPasses,
	}
	for _, opt := range opts {
		opt(t)
	}

	root.parentID = NodeID{}
	root.ancestorID = NodeID{}
	root.children = nil
	t.rootID = t.arena.insert(root)
	t.index(root.name, t.rootID)

	if err := t.spawnDescendants(t.rootID); err != nil {
		return nil, fmt.Errorf("failed to spawn root descendants: %w", err)
	}
	return t, nil
}

// RootID returns the id of the root node.
func (t *Tree) RootID() NodeID { return t.rootID }

// Root returns the root node.
func (t *Tree) Root() *Node { return t.mustGet(t.rootID) }

// Len returns the number of live nodes.
func (t *Tree) Len() int { return t.arena.len() }

// Logger returns the tree's logger.
func (t *Tree) Logger() *slog.Logger { return t.logger }

// ============================================================================
// Insert / Remove / Lookup
// ============================================================================

// Insert appends node as the last child of parentID and spawns the widget's
// descendants. If spawning fails the new subtree is removed again.
func (t *Tree) Insert(parentID NodeID, node *Node) (NodeID, error) {
	return t.insert(parentID, node, NodeID{})
}

func (t *Tree) insert(parentID NodeID, node *Node, ancestorID NodeID) (NodeID, error) {
	if node == nil || node.Widget == nil {
		return NodeID{}, fmt.Errorf("failed to insert under %s: %w", parentID, ErrNilNode)
	}
	parent, ok := t.arena.get(parentID)
	if !ok {
		return NodeID{}, fmt.Errorf("failed to insert %s under %s: %w", node.WidgetName(), parentID, ErrParentNotFound)
	}

	node.parentID = parentID
	node.ancestorID = ancestorID
	node.children = nil
	id := t.arena.insert(node)
	parent.children = append(parent.children, id)
	t.index(node.name, id)

	if err := t.spawnDescendants(id); err != nil {
		t.Remove(id)
		return NodeID{}, fmt.Errorf("failed to spawn descendants of %s: %w", node.WidgetName(), err)
	}
	return id, nil
}

// Remove detaches id from its parent and destroys its subtree. It returns
// false for the root and for ids that do not resolve.
func (t *Tree) Remove(id NodeID) (*Node, bool) {
	if id == t.rootID {
		return nil, false
	}
	node, ok := t.arena.get(id)
	if !ok {
		return nil, false
	}
	parent := t.mustGet(node.parentID)
	if !parent.removeChild(id) {
		panic(fmt.Sprintf("retained: %s missing from the children of its parent %s", id, node.parentID))
	}
	t.destroy(id)
	node.parentID = NodeID{}
	node.children = nil
	return node, true
}

// destroy frees id and everything under it.
func (t *Tree) destroy(id NodeID) {
	node := t.mustGet(id)
	for _, child := range node.children {
		t.destroy(child)
	}
	t.unindex(node.name, id)
	t.arena.remove(id)
	t.forget(id)
}

// Get returns the node for id, or ErrNodeNotFound.
func (t *Tree) Get(id NodeID) (*Node, error) {
	node, ok := t.arena.get(id)
	if !ok {
		return nil, fmt.Errorf("failed to get %s: %w", id, ErrNodeNotFound)
	}
	return node, nil
}

// Contains reports whether id resolves to a live node.
func (t *Tree) Contains(id NodeID) bool {
	_, ok := t.arena.get(id)
	return ok
}

// mustGet is for ids that tree invariants guarantee to exist.
func (t *Tree) mustGet(id NodeID) *Node {
	node, ok := t.arena.get(id)
	if !ok {
		panic(fmt.Sprintf("retained: tree is inconsistent, %s does not resolve", id))
	}
	return node
}

func (t *Tree) spawnDescendants(id NodeID) error {
	node := t.mustGet(id)
	return node.Widget.Descendants(newScope(t, id, id))
}

// ============================================================================
// Name Index
// ============================================================================

func (t *Tree) index(name Name, id NodeID) {
	if name == NoName {
		return
	}
	t.named[name] = append(t.named[name], id)
}

func (t *Tree) unindex(name Name, id NodeID) {
	if name == NoName {
		return
	}
	ids := t.named[name]
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	}
	if len(ids) == 0 {
		delete(t.named, name)
		return
	}
	t.named[name] = ids
}

// SetName renames a node and keeps the name index in sync.
func (t *Tree) SetName(id NodeID, name Name) error {
	node, err := t.Get(id)
	if err != nil {
		return err
	}
	t.unindex(node.name, id)
	node.name = name
	t.index(name, id)
	return nil
}

// IDsWithName returns the ids of every live node named name, in insertion order.
func (t *Tree) IDsWithName(name Name) []NodeID {
	return slices.Clone(t.named[name])
}

// Named iterates the nodes named name. Ids are snapshotted first; nodes
// removed during iteration are skipped.
func (t *Tree) Named(name Name) iter.Seq[*Node] {
	ids := t.IDsWithName(name)
	return func(yield func(*Node) bool) {
		for _, id := range ids {
			node, ok := t.arena.get(id)
			if !ok {
				continue
			}
			if !yield(node) {
				return
			}
		}
	}
}

// ============================================================================
// Traversal
// ============================================================================

// Walk visits nodes depth first, parents before children. Returning false from
// fn skips the node's subtree.
func (t *Tree) Walk(fn func(id NodeID, node *Node, depth int) bool) {
	t.walk(t.rootID, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, *Node, int) bool) {
	node := t.mustGet(id)
	if !fn(id, node, depth) {
		return
	}
	for _, child := range node.Children() {
		if t.Contains(child) {
			t.walk(child, depth+1, fn)
		}
	}
}

// PathElem is one step of a Path.
type PathElem struct {
	ID     NodeID
	Name   Name
	Widget string
}

func (p PathElem) String() string {
	if p.Name == NoName {
		return p.Widget
	}
	return fmt.Sprintf("%s#%d", p.Widget, p.Name)
}

// Path lists the nodes from the root down to id.
func (t *Tree) Path(id NodeID) ([]PathElem, error) {
	path, err := t.ReversePath(id)
	if err != nil {
		return nil, err
	}
	slices.Reverse(path)
	return path, nil
}

// ReversePath lists the nodes from id up to the root.
func (t *Tree) ReversePath(id NodeID) ([]PathElem, error) {
	node, err := t.Get(id)
	if err != nil {
		return nil, err
	}
	var path []PathElem
	for {
		path = append(path, PathElem{ID: id, Name: node.name, Widget: node.WidgetName()})
		parentID, ok := node.Parent()
		if !ok {
			return path, nil
		}
		id = parentID
		node = t.mustGet(id)
	}
}

// FormatPath joins path elements with "/".
func FormatPath(path []PathElem) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, "/")
}

// ============================================================================
// Hit Testing
// ============================================================================

// TouchingID returns the topmost node whose padding region contains p.
// Children are searched last first, so later siblings win over earlier ones.
func (t *Tree) TouchingID(p geom.Vec2) (NodeID, bool) {
	return t.touching(t.rootID, p)
}

// Touching is TouchingID returning the node.
func (t *Tree) Touching(p geom.Vec2) (*Node, bool) {
	id, ok := t.TouchingID(p)
	if !ok {
		return nil, false
	}
	return t.mustGet(id), true
}

func (t *Tree) touching(id NodeID, p geom.Vec2) (NodeID, bool) {
	node := t.mustGet(id)
	for i := len(node.children) - 1; i >= 0; i-- {
		if hit, ok := t.touching(node.children[i], p); ok {
			return hit, true
		}
	}
	if node.raw.PaddingRegion().Contains(p) {
		return id, true
	}
	return NodeID{}, false
}
