package state

import "math"

// Normalize returns the canonical corner order of s. Rectangles become
// top-left/bottom-right. Lines start at the endpoint with the smaller x,
// and with the smaller y when both x are equal.
//
// Only run this once a gesture is finished: during a drag the handle names
// refer to the corners as currently labelled, inverted or not.
func Normalize(s Shape) Coords {
	switch s.Kind {
	case KindRectangle:
		return Coords{
			X1: math.Min(s.X1, s.X2),
			Y1: math.Min(s.Y1, s.Y2),
			X2: math.Max(s.X1, s.X2),
			Y2: math.Max(s.Y1, s.Y2),
		}
	case KindLine:
		if s.X1 > s.X2 || (s.X1 == s.X2 && s.Y1 > s.Y2) {
			return Coords{X1: s.X2, Y1: s.Y2, X2: s.X1, Y2: s.Y1}
		}
	}
	return s.Coords()
}
