package state

import "math"

// Rect is an axis aligned box on the board.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Union returns the smallest box covering r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Pad grows r by padding on every side.
func (r Rect) Pad(padding float64) Rect {
	return Rect{MinX: r.MinX - padding, MinY: r.MinY - padding, MaxX: r.MaxX + padding, MaxY: r.MaxY + padding}
}

// ShapeBounds is the box spanned by a shape's control points.
func ShapeBounds(s Shape) Rect {
	return Rect{
		MinX: math.Min(s.X1, s.X2),
		MinY: math.Min(s.Y1, s.Y2),
		MaxX: math.Max(s.X1, s.X2),
		MaxY: math.Max(s.Y1, s.Y2),
	}
}

// Bounds covers every shape plus padding. It returns false for an empty
// collection. Exporters use it to fit the drawing onto the page.
func Bounds(shapes []Shape, padding float64) (Rect, bool) {
	if len(shapes) == 0 {
		return Rect{}, false
	}
	r := ShapeBounds(shapes[0])
	for _, s := range shapes[1:] {
		r = r.Union(ShapeBounds(s))
	}
	return r.Pad(padding), true
}
