package retained

// ============================================================================
// Radio Button
// ============================================================================

var (
	radioBackground = LightGray
	radioUnselected = DarkGray
	radioSelected   = Black
)

// RadioButton toggles on a completed click: press captures the pointer and a
// release over the same button flips Selected.
type RadioButton struct {
	BaseWidget
	Selected bool
	Hovered  bool
	armed    bool // pressed and waiting for the matching release
}

func (*RadioButton) WidgetName() string { return "RadioButton" }

func (*RadioButton) Style(style *Style) {
	style.Width = Px(17)
	style.Height = Px(17)
}

func (r *RadioButton) Event(_ *Style, _ *Scope, ctl *EventControl) error {
	switch ctl.Event().(type) {
	case EnterEvent:
		r.Hovered = true
		ctl.SetCursorIcon(CursorHand)
	case ExitEvent:
		// Dragging off cancels a pending click.
		r.Hovered = false
		r.armed = false
		ctl.SetCursorIcon(CursorDefault)
	case GuiExitEvent:
		r.Hovered = false
		r.armed = false
	case PressEvent:
		r.armed = true
		ctl.Press()
	case ReleaseEvent:
		if !r.armed {
			return nil
		}
		r.armed = false
		r.Selected = !r.Selected
		ctl.Stop()
		ctl.Repaint()
	}
	return nil
}

// Paint draws three concentric circles: outline, background and dot.
func (r *RadioButton) Paint(_ Style, p *Painter, canvas Canvas) {
	prev := p.Color()
	defer p.SetColor(prev)

	center := canvas.Center()
	outer := center.MinElement()
	inner := outer * 0.75
	dot := inner * 0.75

	color := radioUnselected
	if r.Selected {
		color = radioSelected
	}
	p.SetColor(color)
	p.Circle(center, outer)
	p.SetColor(radioBackground)
	p.Circle(center, inner)
	p.SetColor(color)
	p.Circle(center, dot)
}
