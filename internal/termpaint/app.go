package termpaint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/agiangrant/boxtree/geom"
	"github.com/agiangrant/boxtree/retained"
	"github.com/agiangrant/boxtree/tw"
)

// App runs a tree on a terminal screen: resize events relayout, mouse events
// go through the input mapping and the tree is redrawn whenever a handler
// asks for a repaint.
type App struct {
	Screen   tcell.Screen
	Tree     *retained.Tree
	Renderer *Renderer
	Mouse    *Mouse

	painter *retained.Painter
	icon    retained.CursorIcon
	logger  *slog.Logger
}

// NewApp wires a renderer and a mouse mapper for tree onto an initialized
// screen.
func NewApp(screen tcell.Screen, tree *retained.Tree, cell geom.Vec2, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := NewRenderer(screen, cell, logger)
	return &App{
		Screen:   screen,
		Tree:     tree,
		Renderer: r,
		Mouse:    NewMouse(r),
		painter:  retained.NewPainter(),
		logger:   logger,
	}
}

// CursorIcon returns the last icon a widget asked for. Terminals cannot
// change the pointer shape, so it is only tracked.
func (a *App) CursorIcon() retained.CursorIcon { return a.icon }

// Layout resizes the tree to the screen and draws it. Class-styled boxes
// re-resolve their responsive variants for the new width first.
func (a *App) Layout() {
	size := a.Renderer.SurfaceSize()
	if n := tw.SetViewport(a.Tree, size.X); n > 0 {
		a.logger.Debug("termpaint: restyled for viewport", "width", size.X, "boxes", n)
	}
	a.Tree.Resize(size)
	a.Draw()
}

// Draw paints the tree and shows the frame.
func (a *App) Draw() {
	a.painter.Reset()
	a.Tree.Paint(a.painter)
	a.Renderer.Render(a.painter.Commands())
	a.Screen.Show()
}

// Handle processes one terminal event. It reports true when the user asked
// to quit.
func (a *App) Handle(ev tcell.Event) (quit bool, err error) {
	in := a.Tree.Input()
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.Screen.Sync()
		a.Layout()
		return false, nil
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return true, nil
		}
		return false, nil
	case *tcell.EventFocus:
		if !ev.Focused {
			err = a.Mouse.Leave(in)
		}
	case *tcell.EventMouse:
		err = a.Mouse.Handle(ev, in)
	default:
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to dispatch input: %w", err)
	}

	if icon, ok := in.TakeCursorIcon(); ok && icon != a.icon {
		a.icon = icon
		a.logger.Debug("termpaint: cursor icon", "icon", icon)
	}
	if a.Tree.TakeRepaint() {
		a.Draw()
	}
	return false, nil
}

// Run lays out the tree and handles events until ctx is done, the user quits
// or dispatch fails.
func (a *App) Run(ctx context.Context) error {
	a.Screen.EnableMouse()
	a.Screen.EnableFocus()
	a.Screen.HideCursor()
	a.Layout()

	events := make(chan tcell.Event, 32)
	stop := make(chan struct{})
	go a.Screen.ChannelEvents(events, stop)
	defer close(stop)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := a.Handle(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}
