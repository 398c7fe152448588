package retained

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingEvent struct{ n int }

// delivery is one recorded handler call.
type delivery struct {
	at     NodeID
	event  Event
	origin NodeOrigin
	hasOrg bool
}

// recorder builds WidgetFunc nodes that log every event they handle.
type recorder struct {
	log []delivery
}

func (r *recorder) node(name Name, fn func(style *Style, scope *Scope, ctl *EventControl) error) *Node {
	return NewNode(&WidgetFunc{
		EventFn: func(style *Style, scope *Scope, ctl *EventControl) error {
			origin, ok := ctl.Origin()
			r.log = append(r.log, delivery{at: scope.NodeID(), event: ctl.Event(), origin: origin, hasOrg: ok})
			if fn != nil {
				return fn(style, scope, ctl)
			}
			return nil
		},
	}).WithName(name)
}

func (r *recorder) visited() []NodeID {
	ids := make([]NodeID, 0, len(r.log))
	for _, d := range r.log {
		ids = append(ids, d.at)
	}
	return ids
}

// chain builds root -> mid -> leaf with the given leaf handler.
func chain(t *testing.T, rec *recorder, leafFn func(*Style, *Scope, *EventControl) error) (tree *Tree, mid, leaf NodeID) {
	t.Helper()
	tree, err := New(rec.node(1, nil))
	require.NoError(t, err)
	mid = mustInsert(t, tree, tree.RootID(), rec.node(2, nil))
	leaf = mustInsert(t, tree, mid, rec.node(3, leafFn))
	return tree, mid, leaf
}

func TestFireBubble(t *testing.T) {
	t.Run("reaches every ancestor", func(t *testing.T) {
		rec := &recorder{}
		tree, mid, leaf := chain(t, rec, nil)
		require.NoError(t, tree.FireBubble(pingEvent{}, leaf))
		assert.Equal(t, []NodeID{leaf, mid, tree.RootID()}, rec.visited())

		assert.False(t, rec.log[0].hasOrg, "start node sees no origin")
		for _, d := range rec.log[1:] {
			require.True(t, d.hasOrg)
			assert.Equal(t, NodeOrigin{ID: leaf, Name: 3}, d.origin)
		}
	})

	t.Run("stop at the leaf", func(t *testing.T) {
		rec := &recorder{}
		tree, _, leaf := chain(t, rec, func(_ *Style, _ *Scope, ctl *EventControl) error {
			ctl.Stop()
			return nil
		})
		require.NoError(t, tree.FireBubble(pingEvent{}, leaf))
		assert.Equal(t, []NodeID{leaf}, rec.visited())
	})

	t.Run("unknown start", func(t *testing.T) {
		rec := &recorder{}
		tree, _, leaf := chain(t, rec, nil)
		tree.Remove(leaf)
		err := tree.FireBubble(pingEvent{}, leaf)
		assert.ErrorIs(t, err, ErrNodeNotFound)
		assert.Empty(t, rec.log)
	})

	t.Run("handler error stops the walk", func(t *testing.T) {
		rec := &recorder{}
		boom := errors.New("boom")
		tree, _, leaf := chain(t, rec, func(*Style, *Scope, *EventControl) error { return boom })
		err := tree.FireBubble(pingEvent{}, leaf)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, rec.log, 1)
	})
}

func TestOutgoingEventsBubbleFromParent(t *testing.T) {
	rec := &recorder{}
	tree, mid, leaf := chain(t, rec, func(_ *Style, _ *Scope, ctl *EventControl) error {
		if _, ok := Match[PressEvent](ctl); ok {
			ctl.Emit(pingEvent{n: 1})
			ctl.Stop()
		}
		return nil
	})
	require.NoError(t, tree.FireBubble(PressEvent{}, leaf))

	// The press stops at the leaf; the ping starts at its parent.
	require.Len(t, rec.log, 3)
	assert.Equal(t, []NodeID{leaf, mid, tree.RootID()}, rec.visited())
	assert.IsType(t, PressEvent{}, rec.log[0].event)
	for _, d := range rec.log[1:] {
		assert.Equal(t, pingEvent{n: 1}, d.event)
		require.True(t, d.hasOrg)
		assert.Equal(t, NodeOrigin{ID: leaf, Name: 3}, d.origin)
	}
}

func TestOutgoingEventsFromOwner(t *testing.T) {
	// A spawned child is owned by the root, so its outgoing events skip its
	// parent and start at the root.
	rec := &recorder{}
	var child NodeID
	root := rec.node(1, nil)
	root.Widget.(*WidgetFunc).SpawnFn = func(s *Scope) error {
		mid, err := s.Insert(rec.node(2, nil))
		if err != nil {
			return err
		}
		leaf, err := mid.Insert(rec.node(3, func(_ *Style, _ *Scope, ctl *EventControl) error {
			if Is[PressEvent](ctl) {
				ctl.Emit(pingEvent{})
				ctl.Stop()
			}
			return nil
		}))
		if err != nil {
			return err
		}
		child = leaf.ParentID()
		return nil
	}
	tree, err := New(root)
	require.NoError(t, err)

	require.NoError(t, tree.FireBubble(PressEvent{}, child))
	assert.Equal(t, []NodeID{child, tree.RootID()}, rec.visited())
}

func TestOutgoingEventsFromRootAreDropped(t *testing.T) {
	rec := &recorder{}
	tree, err := New(rec.node(1, func(_ *Style, _ *Scope, ctl *EventControl) error {
		if Is[PressEvent](ctl) {
			ctl.Emit(pingEvent{})
		}
		return nil
	}))
	require.NoError(t, err)
	require.NoError(t, tree.FireBubble(PressEvent{}, tree.RootID()))
	assert.Len(t, rec.log, 1)
}

func TestFireGlobal(t *testing.T) {
	t.Run("every node once without origin", func(t *testing.T) {
		rec := &recorder{}
		tree, mid, leaf := chain(t, rec, nil)
		require.NoError(t, tree.FireGlobal(pingEvent{}))
		assert.ElementsMatch(t, []NodeID{tree.RootID(), mid, leaf}, rec.visited())
		for _, d := range rec.log {
			assert.False(t, d.hasOrg)
		}
	})

	t.Run("skips nodes removed by earlier handlers", func(t *testing.T) {
		rec := &recorder{}
		var leaf NodeID
		tree, err := New(rec.node(1, func(_ *Style, scope *Scope, _ *EventControl) error {
			scope.Remove(leaf)
			return nil
		}))
		require.NoError(t, err)
		leaf = mustInsert(t, tree, tree.RootID(), rec.node(2, nil))

		require.NoError(t, tree.FireGlobal(pingEvent{}))
		assert.Equal(t, []NodeID{tree.RootID()}, rec.visited())
	})
}

func TestDispatchDepthIsBounded(t *testing.T) {
	// Every ping re-fires itself, which would never end.
	var tree *Tree
	root := NewNode(&WidgetFunc{
		EventFn: func(_ *Style, _ *Scope, ctl *EventControl) error {
			return tree.FireGlobal(ctl.Event())
		},
	})
	tree, err := New(root)
	require.NoError(t, err)

	err = tree.FireGlobal(pingEvent{})
	assert.ErrorIs(t, err, ErrDispatchTooDeep)
	assert.Zero(t, tree.dispatchDepth, "depth not unwound")
}

func TestHandlerStyleIsWrittenBack(t *testing.T) {
	tree := newTestTree(t)
	id := mustInsert(t, tree, tree.RootID(), NewNode(&WidgetFunc{
		EventFn: func(style *Style, _ *Scope, _ *EventControl) error {
			style.Color = Red
			style.Width = Px(42)
			return nil
		},
	}))
	require.NoError(t, tree.FireBubble(pingEvent{}, id))

	node, err := tree.Get(id)
	require.NoError(t, err)
	assert.Equal(t, Red, node.Style.Color)
	assert.Equal(t, Px(42), node.Style.Width)
}

func TestFocus(t *testing.T) {
	rec := &recorder{}
	tree, mid, leaf := chain(t, rec, func(_ *Style, _ *Scope, ctl *EventControl) error {
		if Is[PressEvent](ctl) {
			ctl.Focus()
			ctl.Stop()
		}
		return nil
	})

	require.NoError(t, tree.FireBubble(PressEvent{}, leaf))
	focused, ok := tree.Focused()
	require.True(t, ok)
	assert.Equal(t, leaf, focused)
	require.Len(t, rec.log, 4, "press, then focus bubbling to the root")
	assert.IsType(t, FocusEvent{}, rec.log[1].event)

	rec.log = nil
	require.NoError(t, tree.Focus(leaf))
	assert.Empty(t, rec.log, "refocusing the holder fires nothing")

	require.NoError(t, tree.Focus(mid))
	require.NotEmpty(t, rec.log)
	assert.IsType(t, UnfocusEvent{}, rec.log[0].event)
	assert.Equal(t, leaf, rec.log[0].at)

	tree.Remove(mid)
	_, ok = tree.Focused()
	assert.False(t, ok, "removing the holder clears focus")
}

func TestMatchAndFromChild(t *testing.T) {
	ctl := newEventControl(pingEvent{n: 7}, &NodeOrigin{ID: NodeID{index: 1, generation: 1}, Name: 4})

	e, ok := Match[pingEvent](ctl)
	require.True(t, ok)
	assert.Equal(t, 7, e.n)
	_, ok = Match[PressEvent](ctl)
	assert.False(t, ok)

	tests := []struct {
		name string
		want Name
		ok   bool
	}{
		{"exact name", 4, true},
		{"any name", NoName, true},
		{"other name", 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, origin, ok := FromChild[pingEvent](ctl, tt.want)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, Name(4), origin.Name)
			}
		})
	}

	t.Run("no origin", func(t *testing.T) {
		_, _, ok := FromChild[pingEvent](newEventControl(pingEvent{}, nil), NoName)
		assert.False(t, ok)
	})
}
