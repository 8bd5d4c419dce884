package state

import (
	"fmt"
	"strings"

	"SketchBoard/internal/geometry"
)

// Kind is the geometric type of a shape.
type Kind int

const (
	KindLine Kind = iota
	KindRectangle
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Tool is the externally selected tool. Selection picks existing shapes,
// the others draw a new shape of the matching Kind.
type Tool int

const (
	ToolSelection Tool = iota
	ToolLine
	ToolRectangle
)

var toolNames = []string{"selection", "line", "rectangle"}

func (t Tool) String() string {
	if t >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// Kind returns the shape kind drawn by t, or false for ToolSelection.
func (t Tool) Kind() (Kind, bool) {
	switch t {
	case ToolLine:
		return KindLine, true
	case ToolRectangle:
		return KindRectangle, true
	}
	return 0, false
}

// ParseTool accepts the lower case tool names used by the CLI and the
// remote bridge.
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

// RenderHandle is whatever the rendering backend needs to draw a shape.
// The core never looks inside it.
type RenderHandle any

// Backend builds render handles from shape geometry. Width and height of
// rectangles may be negative while a gesture is still in progress.
type Backend interface {
	MakeRenderHandle(kind Kind, x1, y1, x2, y2 float64) RenderHandle
}

// Coords are the two control points of a shape.
type Coords struct {
	X1, Y1, X2, Y2 float64
}

// Shape is a line or rectangle on the board. Shapes are values: changing
// geometry means building a new Shape with NewShape so Handle follows.
type Shape struct {
	ID     int
	Kind   Kind
	X1, Y1 float64
	X2, Y2 float64
	Handle RenderHandle
}

// NewShape builds a shape and asks b for its render handle. A nil backend
// leaves the handle empty, which is what headless callers want.
func NewShape(b Backend, id int, x1, y1, x2, y2 float64, kind Kind) Shape {
	s := Shape{ID: id, Kind: kind, X1: x1, Y1: y1, X2: x2, Y2: y2}
	if b != nil {
		s.Handle = b.MakeRenderHandle(kind, x1, y1, x2, y2)
	}
	return s
}

// Coords returns the shape's corner coordinates.
func (s Shape) Coords() Coords {
	return Coords{X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2}
}

func (s Shape) P1() geometry.Point { return geometry.Pt(s.X1, s.Y1) }
func (s Shape) P2() geometry.Point { return geometry.Pt(s.X2, s.Y2) }

// Size returns x2-x1 and y2-y1 without taking absolute values.
func (s Shape) Size() (float64, float64) {
	return s.X2 - s.X1, s.Y2 - s.Y1
}
