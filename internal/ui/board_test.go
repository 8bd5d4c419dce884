package ui

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"SketchBoard/internal/sketch"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
)

func newTestBoard(t *testing.T) *BoardWidget {
	t.Helper()
	test.NewTempApp(t)
	gen := sketch.NewGenerator(sketch.Options{Roughness: 0})
	return NewBoardWidget(state.NewEditor(gen), gen)
}

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}, Button: button}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func inkLines(r fyne.WidgetRenderer) int {
	n := 0
	for _, o := range r.Objects() {
		if l, ok := o.(*canvas.Line); ok && l.StrokeColor == inkColor {
			n++
		}
	}
	return n
}

func TestBoardDrawsRectangle(t *testing.T) {
	board := newTestBoard(t)
	board.SetTool(state.ToolRectangle)

	board.MouseDown(mouse(50, 80, desktop.MouseButtonPrimary))
	board.Dragged(drag(10, 10))
	board.MouseUp(mouse(10, 10, desktop.MouseButtonPrimary))

	shapes := board.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(shapes))
	}
	if shapes[0].Coords() != (state.Coords{X1: 10, Y1: 10, X2: 50, Y2: 80}) {
		t.Errorf("expected normalized rectangle, got %+v", shapes[0].Coords())
	}
	if board.Interaction().Mode != state.ModeIdle {
		t.Errorf("expected idle after mouse up")
	}

	r := test.WidgetRenderer(board)
	if n := inkLines(r); n != 4 {
		t.Errorf("expected 4 ink lines for an exact rectangle, got %d", n)
	}
	if !strings.Contains(board.StatusBar().Text, "1 shapes") {
		t.Errorf("unexpected status %q", board.StatusBar().Text)
	}
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	board := newTestBoard(t)
	board.MouseDown(mouse(5, 5, desktop.MouseButtonSecondary))
	if len(board.Shapes()) != 0 {
		t.Errorf("secondary button must not draw")
	}
}

func TestBoardDragEndFinishesGesture(t *testing.T) {
	board := newTestBoard(t)
	board.SetTool(state.ToolLine)
	board.MouseDown(mouse(100, 0, desktop.MouseButtonPrimary))
	board.Dragged(drag(0, 0))
	board.DragEnd()

	if board.Interaction().Mode != state.ModeIdle {
		t.Fatalf("expected idle after drag end")
	}
	if got := board.Shapes()[0].Coords(); got != (state.Coords{X1: 0, Y1: 0, X2: 100, Y2: 0}) {
		t.Errorf("expected normalized line, got %+v", got)
	}
	// the trailing MouseUp the driver may still send changes nothing
	v := board.Editor().Version()
	board.MouseUp(mouse(0, 0, desktop.MouseButtonPrimary))
	if board.Editor().Version() != v {
		t.Errorf("duplicate up must be a no-op")
	}
}

func TestBoardMoveShowsHandles(t *testing.T) {
	board := newTestBoard(t)
	board.SetTool(state.ToolRectangle)
	board.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	board.Dragged(drag(40, 40))
	board.MouseUp(mouse(40, 40, desktop.MouseButtonPrimary))

	board.SetTool(state.ToolSelection)
	board.MouseDown(mouse(20, 20, desktop.MouseButtonPrimary))
	if board.Interaction().Mode != state.ModeMoving {
		t.Fatalf("expected moving, got %v", board.Interaction().Mode)
	}
	r := test.WidgetRenderer(board).(*boardRenderer)
	if len(r.handles) != 4 {
		t.Errorf("expected 4 handle markers while moving, got %d", len(r.handles))
	}
	board.Dragged(drag(30, 30))
	board.MouseUp(mouse(30, 30, desktop.MouseButtonPrimary))
	if got := board.Shapes()[0].Coords(); got != (state.Coords{X1: 10, Y1: 10, X2: 50, Y2: 50}) {
		t.Errorf("expected moved rectangle, got %+v", got)
	}
	if len(r.handles) != 0 {
		t.Errorf("handles should go away after mouse up")
	}
}

func TestBoardCursor(t *testing.T) {
	board := newTestBoard(t)
	board.SetTool(state.ToolRectangle)
	if board.Cursor() != desktop.CrosshairCursor {
		t.Errorf("drawing tools use the crosshair")
	}
	board.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	board.Dragged(drag(40, 40))
	board.MouseUp(mouse(40, 40, desktop.MouseButtonPrimary))

	board.SetTool(state.ToolSelection)
	board.MouseMoved(mouse(20, 20, desktop.MouseButtonPrimary))
	if board.Cursor() != desktop.PointerCursor {
		t.Errorf("expected move cursor over the body")
	}
	board.MouseMoved(mouse(200, 200, desktop.MouseButtonPrimary))
	if board.Cursor() != desktop.DefaultCursor {
		t.Errorf("expected default cursor over empty paper")
	}
}

func TestRemoteToolChangeSyncsSelector(t *testing.T) {
	board := newTestBoard(t)
	radio := NewToolSelector(board)
	if radio.Selected != "Line" {
		t.Fatalf("expected Line preselected, got %q", radio.Selected)
	}

	tool := state.ToolRectangle
	for _, ev := range []state.Event{
		{Kind: state.EventDown, X: 1, Y: 1},
		{Kind: state.EventMove, X: 9, Y: 9},
		{Kind: state.EventUp, X: 9, Y: 9},
	} {
		if err := board.HandleRemote("phone", ev, &tool); err != nil {
			t.Fatalf("HandleRemote(%v): %v", ev.Kind, err)
		}
	}

	if radio.Selected != "Rectangle" {
		t.Errorf("selector not synced, shows %q", radio.Selected)
	}
	if s := board.Shapes(); len(s) != 1 || s[0].Kind != state.KindRectangle {
		t.Errorf("expected one rectangle from remote input, got %+v", s)
	}

	radio.SetSelected("Selection")
	if board.Tool() != state.ToolSelection {
		t.Errorf("selector should drive the board tool")
	}
}

func TestLocalMouseCannotHijackRemoteGesture(t *testing.T) {
	board := newTestBoard(t)
	line := state.ToolLine
	if err := board.HandleRemote("phone", state.Event{Kind: state.EventDown, X: 0, Y: 0}, &line); err != nil {
		t.Fatalf("remote down: %v", err)
	}

	board.MouseMoved(mouse(300, 300, desktop.MouseButtonPrimary))
	board.MouseDown(mouse(300, 300, desktop.MouseButtonPrimary))
	board.MouseUp(mouse(300, 300, desktop.MouseButtonPrimary))
	if got := board.Shapes()[0].Coords(); got != (state.Coords{}) {
		t.Errorf("local mouse moved the remote shape to %+v", got)
	}
	if board.Interaction().Mode != state.ModeDrawing {
		t.Fatalf("remote gesture should still run")
	}

	rect := state.ToolRectangle
	err := board.HandleRemote("tablet", state.Event{Kind: state.EventMove, X: 5, Y: 5}, &rect)
	if !errors.Is(err, state.ErrGestureOwned) {
		t.Errorf("expected ErrGestureOwned for a second device, got %v", err)
	}
	if board.Tool() != state.ToolLine {
		t.Errorf("a refused event must not switch tools")
	}

	board.HandleRemote("phone", state.Event{Kind: state.EventMove, X: 80, Y: 0}, nil)
	board.HandleRemote("phone", state.Event{Kind: state.EventUp, X: 80, Y: 0}, nil)
	if got := board.Shapes()[0].Coords(); got != (state.Coords{X2: 80}) {
		t.Errorf("unexpected line %+v", got)
	}

	board.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	if len(board.Shapes()) != 2 {
		t.Errorf("local mouse should draw once the board is idle")
	}
}

func TestCursorFollowsToolSwitch(t *testing.T) {
	board := newTestBoard(t)
	board.SetTool(state.ToolRectangle)
	board.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	board.Dragged(drag(40, 40))
	board.MouseUp(mouse(40, 40, desktop.MouseButtonPrimary))

	board.SetTool(state.ToolSelection)
	board.MouseMoved(mouse(20, 20, desktop.MouseButtonPrimary))
	if board.Cursor() != desktop.PointerCursor {
		t.Fatalf("expected move cursor over the body")
	}
	board.SetTool(state.ToolLine)
	if board.Cursor() != desktop.CrosshairCursor {
		t.Errorf("switching to a drawing tool should show the crosshair at once")
	}
}

type memWriter struct {
	bytes.Buffer
	uri    fyne.URI
	closed bool
}

func (w *memWriter) URI() fyne.URI { return w.uri }
func (w *memWriter) Close() error  { w.closed = true; return nil }

func TestExportTo(t *testing.T) {
	board := newTestBoard(t)
	board.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	board.Dragged(drag(30, 30))
	board.MouseUp(mouse(30, 30, desktop.MouseButtonPrimary))

	w := &memWriter{uri: storage.NewFileURI("/tmp/board.png")}
	if err := board.ExportTo(w); err != nil {
		t.Fatalf("ExportTo: %v", err)
	}
	if !w.closed {
		t.Errorf("writer should be closed")
	}
	if _, err := png.Decode(&w.Buffer); err != nil {
		t.Errorf("export is not a png: %v", err)
	}

	bad := &memWriter{uri: storage.NewFileURI("/tmp/board.svg")}
	if err := board.ExportTo(bad); err == nil {
		t.Errorf("expected error for svg")
	}
}
