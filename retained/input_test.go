package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/boxtree/geom"
)

// inputFixture is a 200x100 root holding a radio button at (0, 0, 17, 17)
// and a recorded pane at (17, 0, 50, 100).
type inputFixture struct {
	tree  *Tree
	rec   *recorder
	radio *RadioButton
	radID NodeID
	pane  NodeID
}

func newInputFixture(t *testing.T) *inputFixture {
	t.Helper()
	f := &inputFixture{rec: &recorder{}, radio: &RadioButton{}}
	tree, err := New(f.rec.node(1, nil))
	require.NoError(t, err)
	f.tree = tree
	f.radID = mustInsert(t, tree, tree.RootID(), NewNode(f.radio))
	f.pane = mustInsert(t, tree, tree.RootID(), f.rec.node(2, nil).WithStyle(func(s *Style) {
		s.Width = Px(50)
	}))
	tree.Resize(geom.V(200, 100))
	return f
}

// started returns the events delivered to the node they were fired at.
func (f *inputFixture) started() []delivery {
	var out []delivery
	for _, d := range f.rec.log {
		if !d.hasOrg {
			out = append(out, d)
		}
	}
	return out
}

func TestMoveCursorEnterExit(t *testing.T) {
	f := newInputFixture(t)
	in := f.tree.Input()

	// The cursor starts at the origin, over the radio button.
	require.NoError(t, in.MoveCursor(geom.V(20, 50)))
	assert.Equal(t, []delivery{
		{at: f.tree.RootID(), event: ExitEvent{}, origin: NodeOrigin{ID: f.radID}, hasOrg: true},
		{at: f.pane, event: EnterEvent{}},
		{at: f.tree.RootID(), event: EnterEvent{}, origin: NodeOrigin{ID: f.pane, Name: 2}, hasOrg: true},
	}, f.rec.log)

	f.rec.log = nil
	require.NoError(t, in.MoveCursor(geom.V(30, 60)))
	assert.Empty(t, f.rec.log, "moving within a node fires nothing")

	require.NoError(t, in.MoveCursor(geom.V(500, 50)))
	got := f.started()
	require.Len(t, got, 1)
	assert.Equal(t, delivery{at: f.pane, event: ExitEvent{}}, got[0])
	assert.Equal(t, geom.V(500, 50), f.tree.Cursor().Position)
}

func TestEnterAndExitCursor(t *testing.T) {
	f := newInputFixture(t)
	in := f.tree.Input()

	require.NoError(t, in.EnterCursor())
	assert.True(t, f.tree.Cursor().Inside)
	assert.Len(t, f.rec.log, 2, "global enter reaches every recorded node")

	require.NoError(t, in.MoveCursor(geom.V(5, 5)))
	require.NoError(t, in.Press(MouseButtonLeft))
	require.Equal(t, f.radID, f.tree.Cursor().PressedID)

	require.NoError(t, in.ExitCursor())
	c := f.tree.Cursor()
	assert.False(t, c.Inside)
	assert.False(t, c.LeftPressed)
	assert.True(t, c.PressedID.IsZero(), "capture cleared after leaving the surface")
	assert.False(t, f.radio.Selected, "forced release after GuiExitEvent must not toggle")

	// Coming back and releasing does not complete the old click.
	require.NoError(t, in.EnterCursor())
	require.NoError(t, in.Release(MouseButtonLeft))
	assert.False(t, f.radio.Selected)
}

func TestExitCursorForceReleasesCapture(t *testing.T) {
	rec := &recorder{}
	tree, err := New(rec.node(1, nil))
	require.NoError(t, err)
	grabber := mustInsert(t, tree, tree.RootID(), rec.node(2, func(_ *Style, _ *Scope, ctl *EventControl) error {
		if _, ok := ctl.Event().(PressEvent); ok {
			ctl.Press()
		}
		return nil
	}).WithStyle(func(s *Style) { s.Width = Px(50) }))
	tree.Resize(geom.V(200, 100))

	in := tree.Input()
	require.NoError(t, in.EnterCursor())
	require.NoError(t, in.MoveCursor(geom.V(5, 5)))
	require.NoError(t, in.Press(MouseButtonLeft))
	require.Equal(t, grabber, tree.Cursor().PressedID)
	require.NoError(t, in.ExitCursor())

	var seen []Event
	for _, d := range rec.log {
		if d.at == grabber && !d.hasOrg {
			seen = append(seen, d.event)
		}
	}
	assert.Equal(t, []Event{GuiEnterEvent{}, PressEvent{}, GuiExitEvent{}, ReleaseEvent{}}, seen)
	assert.True(t, tree.Cursor().PressedID.IsZero())

	last := rec.log[len(rec.log)-1]
	assert.Equal(t, tree.RootID(), last.at, "forced release bubbles to the root")
	assert.Equal(t, ReleaseEvent{}, last.event)

	// Without a capture, leaving fires no release.
	rec.log = nil
	require.NoError(t, in.EnterCursor())
	require.NoError(t, in.ExitCursor())
	for _, d := range rec.log {
		assert.NotEqual(t, ReleaseEvent{}, d.event)
	}
}

func TestRadioButtonClick(t *testing.T) {
	tests := []struct {
		name     string
		releaseP geom.Vec2
		selected bool
	}{
		{"release on the button", geom.V(10, 10), true},
		{"release elsewhere", geom.V(100, 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInputFixture(t)
			in := f.tree.Input()

			require.NoError(t, in.MoveCursor(geom.V(5, 5)))
			require.NoError(t, in.Press(MouseButtonLeft))
			assert.True(t, f.tree.Cursor().LeftPressed)
			require.NoError(t, in.MoveCursor(tt.releaseP))
			require.NoError(t, in.Release(MouseButtonLeft))

			assert.Equal(t, tt.selected, f.radio.Selected)
			assert.Equal(t, tt.selected, f.tree.TakeRepaint())
			assert.False(t, f.tree.TakeRepaint(), "repaint flag not cleared")
			assert.True(t, f.tree.Cursor().PressedID.IsZero())

			// A later global release must not complete the abandoned click.
			require.NoError(t, in.Release(MouseButtonRight))
			assert.Equal(t, tt.selected, f.radio.Selected)
		})
	}
}

func TestReleaseStopsAtRadioButton(t *testing.T) {
	f := newInputFixture(t)
	in := f.tree.Input()
	require.NoError(t, in.MoveCursor(geom.V(5, 5)))
	require.NoError(t, in.Press(MouseButtonLeft))
	f.rec.log = nil
	require.NoError(t, in.Release(MouseButtonLeft))

	assert.True(t, f.radio.Selected)
	assert.Empty(t, f.rec.log, "release bubbled past the button")
}

func TestRightReleaseIsGlobal(t *testing.T) {
	f := newInputFixture(t)
	in := f.tree.Input()
	require.NoError(t, in.MoveCursor(geom.V(100, 50)))
	require.NoError(t, in.Press(MouseButtonRight))
	assert.True(t, f.tree.Cursor().RightPressed)

	f.rec.log = nil
	require.NoError(t, in.Release(MouseButtonRight))
	assert.False(t, f.tree.Cursor().RightPressed)
	assert.ElementsMatch(t, []NodeID{f.tree.RootID(), f.pane}, f.rec.visited())
	for _, d := range f.rec.log {
		assert.Equal(t, ReleaseEvent{}, d.event)
	}
	assert.False(t, f.radio.Selected)
}

func TestCursorIcon(t *testing.T) {
	f := newInputFixture(t)
	in := f.tree.Input()

	_, ok := in.TakeCursorIcon()
	assert.False(t, ok)

	// Leave the button the cursor starts over, then come back.
	require.NoError(t, in.MoveCursor(geom.V(100, 50)))
	icon, ok := in.TakeCursorIcon()
	require.True(t, ok)
	assert.Equal(t, CursorDefault, icon)

	require.NoError(t, in.MoveCursor(geom.V(5, 5)))
	assert.True(t, f.radio.Hovered)
	icon, ok = in.TakeCursorIcon()
	require.True(t, ok)
	assert.Equal(t, CursorHand, icon)
	assert.Equal(t, "hand", icon.String())

	_, ok = in.TakeCursorIcon()
	assert.False(t, ok, "icon request not consumed")

	require.NoError(t, in.MoveCursor(geom.V(100, 50)))
	assert.False(t, f.radio.Hovered)
	icon, ok = in.TakeCursorIcon()
	require.True(t, ok)
	assert.Equal(t, CursorDefault, icon)
}
