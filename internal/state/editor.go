package state

import (
	"errors"
	"fmt"
	"log"
)

// ErrGestureOwned is returned by HandleFrom when another source is in the
// middle of a gesture.
var ErrGestureOwned = errors.New("another pointer owns the running gesture")

// Mode is the phase of the current pointer gesture.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeMoving
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModeMoving:
		return "moving"
	case ModeResizing:
		return "resizing"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// EventKind is the pointer transition carried by an Event.
type EventKind int

const (
	EventDown EventKind = iota
	EventMove
	EventUp
)

func (k EventKind) String() string {
	switch k {
	case EventDown:
		return "down"
	case EventMove:
		return "move"
	case EventUp:
		return "up"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// ParseEventKind accepts "down", "move" and "up".
func ParseEventKind(s string) (EventKind, error) {
	for _, k := range []EventKind{EventDown, EventMove, EventUp} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown pointer event %q", s)
}

// Event is a single pointer event in board coordinates.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Selection is captured when a gesture starts: the shape as it was, the
// handle that was grabbed and where the pointer sat relative to (x1, y1).
type Selection struct {
	Shape    Shape
	Position Position
	OffsetX  float64
	OffsetY  float64
}

// Interaction is the editor's ephemeral state between events.
type Interaction struct {
	Mode      Mode
	Selection *Selection
	Cursor    Cursor
}

// Editor owns the shape collection and turns pointer events into shape
// changes. Events must be delivered one at a time.
type Editor struct {
	Session string
	Verbose bool

	// OnChange receives a copy of the collection after each mutation.
	OnChange func(shapes []Shape)

	backend Backend
	store   *Store
	ix      Interaction
	owner   string
}

// NewEditor returns an idle editor with an empty collection and a fresh
// session id. b may be nil when nothing needs to be drawn.
func NewEditor(b Backend) *Editor {
	return &Editor{
		Session: NewSessionID(),
		backend: b,
		store:   NewStore(),
	}
}

func (e *Editor) Interaction() Interaction { return e.ix }
func (e *Editor) Shapes() []Shape          { return e.store.All() }
func (e *Editor) Version() uint64          { return e.store.Version() }

// Owner is the source driving the running gesture, empty while Idle.
func (e *Editor) Owner() string { return e.owner }

// Accepts reports whether events from source may reach the editor now.
func (e *Editor) Accepts(source string) bool {
	return e.ix.Mode == ModeIdle || e.owner == source
}

// HandleFrom is Handle for editors fed by several pointers. The source whose
// pointer-down leaves Idle owns the gesture until its pointer-up; events
// from any other source are refused with ErrGestureOwned meanwhile.
func (e *Editor) HandleFrom(source string, ev Event, tool Tool) (Interaction, error) {
	if !e.Accepts(source) {
		if e.Verbose {
			e.logf("refused %s from %s, gesture owned by %s", ev.Kind, source, e.owner)
		}
		return e.ix, ErrGestureOwned
	}
	ix := e.Handle(ev, tool)
	if ix.Mode == ModeIdle {
		e.owner = ""
	} else {
		e.owner = source
	}
	return ix, nil
}

// Handle runs one pointer event against the tool currently selected and
// returns the resulting interaction state.
func (e *Editor) Handle(ev Event, tool Tool) Interaction {
	prev := e.ix.Mode
	switch ev.Kind {
	case EventDown:
		e.ix = e.pointerDown(e.ix, tool, ev.X, ev.Y)
	case EventMove:
		e.ix = e.pointerMove(e.ix, tool, ev.X, ev.Y)
	case EventUp:
		e.ix = e.pointerUp(e.ix)
	}
	if e.Verbose && prev != e.ix.Mode {
		e.logf("%s -> %s on %s at (%.1f, %.1f)", prev, e.ix.Mode, ev.Kind, ev.X, ev.Y)
	}
	return e.ix
}

func (e *Editor) pointerDown(ix Interaction, tool Tool, x, y float64) Interaction {
	if ix.Mode != ModeIdle {
		// a gesture is already running; only pointer-up ends it
		return ix
	}
	kind, drawing := tool.Kind()
	if !drawing {
		s, pos, ok := FindShapeAt(x, y, e.store.All())
		if !ok {
			return ix
		}
		ix.Selection = &Selection{
			Shape:    s,
			Position: pos,
			OffsetX:  x - s.X1,
			OffsetY:  y - s.Y1,
		}
		ix.Cursor = CursorForPosition(pos)
		if pos == PositionInside {
			ix.Mode = ModeMoving
		} else {
			ix.Mode = ModeResizing
		}
		return ix
	}

	s := NewShape(e.backend, e.store.NextID(), x, y, x, y, kind)
	e.store.Append(s)
	if e.Verbose {
		e.logf("new %s #%d at (%.1f, %.1f)", kind, s.ID, x, y)
	}
	e.changed()
	ix.Selection = &Selection{Shape: s}
	ix.Mode = ModeDrawing
	return ix
}

func (e *Editor) pointerMove(ix Interaction, tool Tool, x, y float64) Interaction {
	if tool == ToolSelection && ix.Mode == ModeIdle {
		_, pos, _ := FindShapeAt(x, y, e.store.All())
		ix.Cursor = CursorForPosition(pos)
		return ix
	}
	if ix.Mode == ModeIdle {
		// drawing tools show no hit hints
		ix.Cursor = CursorDefault
		return ix
	}
	if ix.Selection == nil {
		return ix
	}
	id := ix.Selection.Shape.ID
	cur, ok := e.store.At(id)
	if !ok {
		return ix
	}

	var c Coords
	switch ix.Mode {
	case ModeDrawing:
		c = Coords{X1: cur.X1, Y1: cur.Y1, X2: x, Y2: y}
	case ModeMoving:
		w, h := ix.Selection.Shape.Size()
		nx, ny := x-ix.Selection.OffsetX, y-ix.Selection.OffsetY
		c = Coords{X1: nx, Y1: ny, X2: nx + w, Y2: ny + h}
	case ModeResizing:
		c = ResizeCoordinates(x, y, ix.Selection.Position, cur.Coords())
	default:
		return ix
	}
	e.replace(id, c, cur.Kind)
	return ix
}

func (e *Editor) pointerUp(ix Interaction) Interaction {
	if ix.Selection != nil && (ix.Mode == ModeDrawing || ix.Mode == ModeResizing) {
		if cur, ok := e.store.At(ix.Selection.Shape.ID); ok {
			n := Normalize(cur)
			e.replace(cur.ID, n, cur.Kind)
			if e.Verbose {
				e.logf("%s #%d settled at (%.1f, %.1f)-(%.1f, %.1f)", cur.Kind, cur.ID, n.X1, n.Y1, n.X2, n.Y2)
			}
		}
	}
	return Interaction{Mode: ModeIdle, Cursor: ix.Cursor}
}

func (e *Editor) replace(id int, c Coords, kind Kind) {
	e.store.Replace(NewShape(e.backend, id, c.X1, c.Y1, c.X2, c.Y2, kind))
	e.changed()
}

func (e *Editor) changed() {
	if e.OnChange != nil {
		e.OnChange(e.store.All())
	}
}

func (e *Editor) logf(format string, args ...any) {
	log.Printf("[BOARD %s] %s", ShortSession(e.Session), fmt.Sprintf(format, args...))
}
