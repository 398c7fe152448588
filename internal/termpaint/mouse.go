package termpaint

import (
	"github.com/gdamore/tcell/v2"

	"github.com/agiangrant/boxtree/retained"
)

// Mouse turns tcell mouse reports into input mapping calls. tcell reports the
// full button mask on every event, so presses and releases are found by
// comparing against the previous mask.
type Mouse struct {
	renderer    *Renderer
	prevButtons tcell.ButtonMask
	inside      bool
}

// NewMouse returns a mapper that converts cells through r.
func NewMouse(r *Renderer) *Mouse { return &Mouse{renderer: r} }

// Handle forwards one mouse event. The pointer is placed at the center of
// the reported cell.
func (m *Mouse) Handle(ev *tcell.EventMouse, in retained.InputMapping) error {
	if !m.inside {
		m.inside = true
		if err := in.EnterCursor(); err != nil {
			return err
		}
	}

	x, y := ev.Position()
	if err := in.MoveCursor(m.renderer.CellCenter(x, y)); err != nil {
		return err
	}

	buttons := ev.Buttons()
	prev := m.prevButtons
	m.prevButtons = buttons

	for _, b := range []struct {
		mask   tcell.ButtonMask
		button retained.MouseButton
	}{
		{tcell.ButtonPrimary, retained.MouseButtonLeft},
		{tcell.ButtonSecondary, retained.MouseButtonRight},
	} {
		down := buttons&b.mask != 0
		wasDown := prev&b.mask != 0
		var err error
		switch {
		case down && !wasDown:
			err = in.Press(b.button)
		case !down && wasDown:
			err = in.Release(b.button)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Leave reports that the pointer left the terminal, e.g. on focus loss.
func (m *Mouse) Leave(in retained.InputMapping) error {
	if !m.inside {
		return nil
	}
	m.inside = false
	m.prevButtons = tcell.ButtonNone
	return in.ExitCursor()
}
