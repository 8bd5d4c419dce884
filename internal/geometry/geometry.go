package geometry

import "math"

const (
	// HandleTolerance is the clickable half-size of a resize handle.
	HandleTolerance = 5.0
	// SegmentTolerance is how far dist(a,p)+dist(p,b) may exceed dist(a,b)
	// while p still counts as lying on the segment a-b.
	SegmentTolerance = 1.0
)

// Point is a position on the canvas. Shapes and pointer events share the
// same coordinate space.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Near reports whether p lies within HandleTolerance of q on both axes.
func Near(p, q Point) bool {
	return math.Abs(p.X-q.X) <= HandleTolerance && math.Abs(p.Y-q.Y) <= HandleTolerance
}

// PointOnSegment uses the collapsed-triangle test: p is on a-b when going
// through p is no longer than going straight, within SegmentTolerance.
func PointOnSegment(p, a, b Point) bool {
	offset := Distance(a, b) - (Distance(a, p) + Distance(p, b))
	return math.Abs(offset) < SegmentTolerance
}

// PointInRectangle reports whether p falls inside the box spanned by two
// opposite corners, in any order. Edges are inclusive.
func PointInRectangle(p, c1, c2 Point) bool {
	minX, maxX := math.Min(c1.X, c2.X), math.Max(c1.X, c2.X)
	minY, maxY := math.Min(c1.Y, c2.Y), math.Max(c1.Y, c2.Y)
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
