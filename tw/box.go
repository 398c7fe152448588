package tw

import "github.com/agiangrant/boxtree/retained"

// Box is a pane styled by a class string. hover:, focus: and active:
// variants are applied as the pointer and focus move over it.
type Box struct {
	retained.BaseWidget
	Classes string
	Parser  *Parser // nil means Default()
	// Viewport is the width responsive variants are resolved against. Zero
	// applies base classes only.
	Viewport float32

	computed ComputedStyles
	base     retained.Style
	state    State
}

// NewBox returns a Box for classes using the default theme.
func NewBox(classes string) *Box { return &Box{Classes: classes} }

func (*Box) WidgetName() string { return "Box" }

func (b *Box) parser() *Parser {
	if b.Parser != nil {
		return b.Parser
	}
	return Default()
}

// Style applies the classes for the viewport and remembers the result, so
// state variants can be undone. Without a bg- class the box is transparent.
func (b *Box) Style(style *retained.Style) {
	p := b.parser()
	style.Color = retained.Clear
	b.computed = p.Parse(b.Classes)
	b.computed.ResolveForWidth(b.Viewport, p.theme.Breakpoints).ApplyTo(style)
	b.base = *style
}

// SetViewport re-resolves the classes for width into style, keeping the
// current interaction state. It reports false when width is unchanged.
func (b *Box) SetViewport(width float32, style *retained.Style) bool {
	if width == b.Viewport {
		return false
	}
	b.Viewport = width
	*style = retained.DefaultStyle()
	b.Style(style)
	if b.state != StateDefault {
		b.computed.ResolveForWidthWithState(width, b.parser().theme.Breakpoints, b.state).ApplyTo(style)
	}
	return true
}

// State returns the interaction state the box is drawn in.
func (b *Box) State() State { return b.state }

func (b *Box) Event(style *retained.Style, _ *retained.Scope, ctl *retained.EventControl) error {
	// Events that bubbled up from descendants do not change our state.
	if _, fromChild := ctl.Origin(); fromChild {
		return nil
	}

	next := b.state
	switch ctl.Event().(type) {
	case retained.EnterEvent:
		next = StateHover
	case retained.ExitEvent, retained.GuiExitEvent:
		next = StateDefault
	case retained.PressEvent:
		next = StateActive
		ctl.Press()
		if b.computed.HasState(StateFocus) {
			ctl.Focus()
		}
	case retained.ReleaseEvent:
		if b.state == StateActive {
			next = StateHover
		}
	case retained.FocusEvent:
		// Hover and press outrank focus while they last.
		if b.state == StateDefault {
			next = StateFocus
		}
	case retained.UnfocusEvent:
		if b.state == StateFocus {
			next = StateDefault
		}
	default:
		return nil
	}
	if next == b.state {
		return nil
	}

	b.state = next
	*style = b.base
	b.computed.ResolveForWidthWithState(b.Viewport, b.parser().theme.Breakpoints, next).ApplyTo(style)
	ctl.Repaint()
	return nil
}

func (*Box) Paint(style retained.Style, p *retained.Painter, canvas retained.Canvas) {
	retained.PaintPane(style, p, canvas)
}
