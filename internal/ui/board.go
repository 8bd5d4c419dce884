package ui

import (
	"fmt"

	"SketchBoard/internal/sketch"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing surface. It turns desktop mouse input into
// editor events and draws the editor's shapes. All methods must run on the
// Fyne main goroutine; remote input gets there through fyne.Do.
type BoardWidget struct {
	widget.BaseWidget

	// OnToolChange fires when the tool changes, including from remote input.
	OnToolChange func(state.Tool)

	editor    *state.Editor
	gen       *sketch.Generator
	tool      state.Tool
	last      fyne.Position
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

// NewBoardWidget wraps editor; gen must be the backend editor was built with.
func NewBoardWidget(editor *state.Editor, gen *sketch.Generator) *BoardWidget {
	b := &BoardWidget{
		editor:    editor,
		gen:       gen,
		tool:      state.ToolLine,
		statusBar: widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Editor() *state.Editor          { return b.editor }
func (b *BoardWidget) Generator() *sketch.Generator   { return b.gen }
func (b *BoardWidget) Tool() state.Tool               { return b.tool }
func (b *BoardWidget) Shapes() []state.Shape          { return b.editor.Shapes() }
func (b *BoardWidget) StatusBar() *widget.Label       { return b.statusBar }
func (b *BoardWidget) Interaction() state.Interaction { return b.editor.Interaction() }

// SetTool switches the tool used by the next pointer-down.
func (b *BoardWidget) SetTool(t state.Tool) {
	if t == b.tool {
		return
	}
	b.tool = t
	if b.OnToolChange != nil {
		b.OnToolChange(t)
	}
	b.updateStatus()
}

// LocalSource names this machine's mouse as a gesture source.
const LocalSource = "local"

// HandleRemote applies an event from the pointer bridge. tool, when set,
// switches the tool first. While another source owns the running gesture
// the whole event is refused with state.ErrGestureOwned.
func (b *BoardWidget) HandleRemote(source string, ev state.Event, tool *state.Tool) error {
	if !b.editor.Accepts(source) {
		return state.ErrGestureOwned
	}
	if tool != nil {
		b.SetTool(*tool)
	}
	return b.handle(source, ev)
}

func (b *BoardWidget) handle(source string, ev state.Event) error {
	before := b.editor.Version()
	if _, err := b.editor.HandleFrom(source, ev, b.tool); err != nil {
		return err
	}
	b.updateStatus()
	// hovering only changes the cursor; skip the redraw then
	if b.editor.Version() != before || ev.Kind != state.EventMove {
		b.Refresh()
	}
	return nil
}

// local feeds mouse input; it is dropped while a remote device draws.
func (b *BoardWidget) local(kind state.EventKind, p fyne.Position) {
	b.last = p
	b.handle(LocalSource, event(kind, p))
}

func (b *BoardWidget) updateStatus() {
	ix := b.editor.Interaction()
	b.statusBar.SetText(fmt.Sprintf("Tool: %s | %s | %d shapes", b.tool, ix.Mode, len(b.editor.Shapes())))
}

func event(kind state.EventKind, p fyne.Position) state.Event {
	return state.Event{Kind: kind, X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.local(state.EventDown, e.Position)
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.local(state.EventUp, e.Position)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.local(state.EventMove, e.Position)
}

// DragEnd can arrive without a matching MouseUp; a second up is a no-op.
func (b *BoardWidget) DragEnd() {
	b.local(state.EventUp, b.last)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.local(state.EventMove, e.Position)
}

// Cursor maps the editor's cursor hint to a desktop cursor. Drawing tools
// always show the crosshair while idle, whatever the last hover left.
func (b *BoardWidget) Cursor() desktop.Cursor {
	ix := b.editor.Interaction()
	if _, drawing := b.tool.Kind(); (drawing && ix.Mode == state.ModeIdle) || ix.Mode == state.ModeDrawing {
		return desktop.CrosshairCursor
	}
	switch ix.Cursor {
	case state.CursorMove:
		return desktop.PointerCursor
	case state.CursorResizeDiagonal, state.CursorResizeAntiDiagonal:
		// Fyne has no diagonal resize cursors
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}
