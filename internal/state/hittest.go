package state

import "SketchBoard/internal/geometry"

// Position says where on a shape the cursor is: one of the resize handles,
// the body, or nowhere.
type Position int

const (
	PositionNone Position = iota
	PositionTopLeft
	PositionTopRight
	PositionBottomLeft
	PositionBottomRight
	PositionStart
	PositionEnd
	PositionInside
)

var positionNames = [...]string{"none", "tl", "tr", "bl", "br", "start", "end", "inside"}

func (p Position) String() string {
	if p >= 0 && int(p) < len(positionNames) {
		return positionNames[p]
	}
	return "invalid"
}

// IsHandle reports whether p is a resize handle rather than the body.
func (p Position) IsHandle() bool {
	return p != PositionNone && p != PositionInside && p >= 0 && int(p) < len(positionNames)
}

func nearPoint(x, y, px, py float64, pos Position) Position {
	if geometry.Near(geometry.Pt(x, y), geometry.Pt(px, py)) {
		return pos
	}
	return PositionNone
}

// ClassifyPosition hit-tests a single shape. Handles win over the body and
// are tried in the order tl, tr, bl, br for rectangles and start, end for
// lines.
func ClassifyPosition(x, y float64, s Shape) Position {
	p := geometry.Pt(x, y)
	switch s.Kind {
	case KindRectangle:
		handles := [...]Position{
			nearPoint(x, y, s.X1, s.Y1, PositionTopLeft),
			nearPoint(x, y, s.X2, s.Y1, PositionTopRight),
			nearPoint(x, y, s.X1, s.Y2, PositionBottomLeft),
			nearPoint(x, y, s.X2, s.Y2, PositionBottomRight),
		}
		for _, h := range handles {
			if h != PositionNone {
				return h
			}
		}
		// min/max so inverted corners mid-gesture still hit
		if geometry.PointInRectangle(p, s.P1(), s.P2()) {
			return PositionInside
		}
	case KindLine:
		if pos := nearPoint(x, y, s.X1, s.Y1, PositionStart); pos != PositionNone {
			return pos
		}
		if pos := nearPoint(x, y, s.X2, s.Y2, PositionEnd); pos != PositionNone {
			return pos
		}
		if geometry.PointOnSegment(p, s.P1(), s.P2()) {
			return PositionInside
		}
	}
	return PositionNone
}

// FindShapeAt returns the first shape in collection order that the point
// hits. Earlier shapes win where shapes overlap.
func FindShapeAt(x, y float64, shapes []Shape) (Shape, Position, bool) {
	for _, s := range shapes {
		if pos := ClassifyPosition(x, y, s); pos != PositionNone {
			return s, pos, true
		}
	}
	return Shape{}, PositionNone, false
}

// Cursor is an advisory pointer shape for the UI.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResizeDiagonal     // nwse
	CursorResizeAntiDiagonal // nesw
)

func (c Cursor) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorResizeDiagonal:
		return "nwse-resize"
	case CursorResizeAntiDiagonal:
		return "nesw-resize"
	}
	return "default"
}

// CursorForPosition is the advisory cursor hint shown over pos.
func CursorForPosition(pos Position) Cursor {
	switch pos {
	case PositionNone:
		return CursorDefault
	case PositionTopLeft, PositionBottomRight, PositionStart, PositionEnd:
		return CursorResizeDiagonal
	case PositionTopRight, PositionBottomLeft:
		return CursorResizeAntiDiagonal
	}
	return CursorMove
}
