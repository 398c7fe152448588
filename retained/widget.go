package retained

import "github.com/agiangrant/boxtree/geom"

// ============================================================================
// Widget Contract
// ============================================================================

// Widget is the behavior attached to a node.
type Widget interface {
	// Style applies the widget's default style. Called once by NewNode.
	Style(style *Style)

	// Descendants spawns the widget's built-in children. Called right after
	// the node is inserted.
	Descendants(scope *Scope) error

	// Event handles an event. style is a copy of the node's style and is
	// written back when the handler returns.
	Event(style *Style, scope *Scope, ctl *EventControl) error

	// Paint draws the widget into canvas. The painter is already translated
	// to the top-left corner of the node's padding region.
	Paint(style Style, p *Painter, canvas Canvas)
}

// BaseWidget implements every Widget method as a no-op. Embed it and override
// what is needed.
type BaseWidget struct{}

func (BaseWidget) Style(*Style)                              {}
func (BaseWidget) Descendants(*Scope) error                  { return nil }
func (BaseWidget) Event(*Style, *Scope, *EventControl) error { return nil }
func (BaseWidget) Paint(Style, *Painter, Canvas)             {}

// Pane paints its style color as a rounded rectangle over its padding region.
type Pane struct {
	BaseWidget
}

func (Pane) WidgetName() string { return "Pane" }

func (Pane) Paint(style Style, p *Painter, canvas Canvas) {
	PaintPane(style, p, canvas)
}

// PaintPane fills canvas with style.Color, using the resolved corner radii.
func PaintPane(style Style, p *Painter, canvas Canvas) {
	p.SetColor(style.Color)
	if canvas.Corners == (geom.Corners{}) {
		p.Rect(canvas.Size)
		return
	}
	p.RoundedRect(canvas.Size, canvas.Corners)
}

// WidgetFunc adapts plain functions into a Widget. Nil fields are no-ops.
type WidgetFunc struct {
	Name    string
	StyleFn func(style *Style)
	SpawnFn func(scope *Scope) error
	EventFn func(style *Style, scope *Scope, ctl *EventControl) error
	PaintFn func(style Style, p *Painter, canvas Canvas)
}

func (w *WidgetFunc) WidgetName() string {
	if w.Name == "" {
		return "WidgetFunc"
	}
	return w.Name
}

func (w *WidgetFunc) Style(style *Style) {
	if w.StyleFn != nil {
		w.StyleFn(style)
	}
}

func (w *WidgetFunc) Descendants(scope *Scope) error {
	if w.SpawnFn != nil {
		return w.SpawnFn(scope)
	}
	return nil
}

func (w *WidgetFunc) Event(style *Style, scope *Scope, ctl *EventControl) error {
	if w.EventFn != nil {
		return w.EventFn(style, scope, ctl)
	}
	return nil
}

func (w *WidgetFunc) Paint(style Style, p *Painter, canvas Canvas) {
	if w.PaintFn != nil {
		w.PaintFn(style, p, canvas)
	}
}
