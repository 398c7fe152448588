package tw

import (
	"fmt"

	"github.com/agiangrant/boxtree/retained"
)

// Builder helpers for common layout patterns.
// These describe a subtree that a Parser then inserts into a tree.

// Element describes one node to insert: its widget, classes, name and
// children.
type Element struct {
	Widget   retained.Widget // nil means a Box styled by Classes
	Classes  string
	Name     retained.Name
	Children []*Element
}

// Container creates a Box that lays its children out in a row.
func Container(classes string, children ...*Element) *Element {
	return &Element{Classes: classes, Children: children}
}

// Flex is Container under the name used for responsive layouts.
// Example: Flex("flex-col md:flex-row", sidebar, content)
func Flex(classes string, children ...*Element) *Element {
	return Container(classes, children...)
}

// VStack creates a container whose children are laid out top-to-bottom.
func VStack(classes string, children ...*Element) *Element {
	return Container(joinClasses("flex-col", classes), children...)
}

// HStack creates a container whose children are laid out left-to-right.
func HStack(classes string, children ...*Element) *Element {
	return Container(joinClasses("flex-row", classes), children...)
}

// Radio creates a radio button. classes adjust its margins and size.
func Radio(classes string) *Element {
	return &Element{Widget: &retained.RadioButton{}, Classes: classes}
}

// Widget wraps any widget; classes are applied over its own defaults.
func Widget(w retained.Widget, classes string, children ...*Element) *Element {
	return &Element{Widget: w, Classes: classes, Children: children}
}

// Named sets the element's name and returns it.
func (e *Element) Named(name retained.Name) *Element {
	e.Name = name
	return e
}

func joinClasses(a, b string) string {
	if b == "" {
		return a
	}
	return a + " " + b
}

// ============================================================================
// Mounting
// ============================================================================

// node builds the retained node for e alone. width picks responsive variants.
func (p *Parser) node(e *Element, width float32) *retained.Node {
	if e.Widget == nil {
		box := &Box{Classes: e.Classes, Parser: p, Viewport: width}
		return retained.NewNode(box).WithName(e.Name)
	}
	n := retained.NewNode(e.Widget).WithName(e.Name)
	if e.Classes != "" {
		n.WithStyle(func(s *retained.Style) {
			p.ApplyFor(e.Classes, width, StateDefault, s)
		})
	}
	return n
}

// SetViewport re-resolves responsive classes of every Box in tree for a new
// surface width. Call it before Tree.Resize. Classes on other widgets keep
// the width they were mounted at.
func SetViewport(tree *retained.Tree, width float32) (changed int) {
	tree.Walk(func(_ retained.NodeID, node *retained.Node, _ int) bool {
		if box, ok := node.Widget.(*Box); ok && box.SetViewport(width, &node.Style) {
			changed++
		}
		return true
	})
	return changed
}

// NewTree creates a tree whose root is e.
func (p *Parser) NewTree(e *Element, width float32, opts ...retained.Option) (*retained.Tree, error) {
	tree, err := retained.New(p.node(e, width), opts...)
	if err != nil {
		return nil, err
	}
	for _, child := range e.Children {
		if _, err := p.Mount(tree, tree.RootID(), child, width); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// Mount inserts e and its children under parent and returns e's id.
func (p *Parser) Mount(tree *retained.Tree, parent retained.NodeID, e *Element, width float32) (retained.NodeID, error) {
	id, err := tree.Insert(parent, p.node(e, width))
	if err != nil {
		return retained.NodeID{}, fmt.Errorf("failed to mount %q: %w", e.Classes, err)
	}
	for _, child := range e.Children {
		if _, err := p.Mount(tree, id, child, width); err != nil {
			return retained.NodeID{}, err
		}
	}
	return id, nil
}

// Spawn inserts e through scope, for widgets that build their descendants
// from elements. The new nodes are owned by the scope's owner.
func (p *Parser) Spawn(scope *retained.Scope, e *Element, width float32) error {
	child, err := scope.Insert(p.node(e, width))
	if err != nil {
		return fmt.Errorf("failed to spawn %q: %w", e.Classes, err)
	}
	for _, c := range e.Children {
		if err := p.Spawn(child, c, width); err != nil {
			return err
		}
	}
	return nil
}
