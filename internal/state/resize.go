package state

import "fmt"

// ResizeCoordinates moves the control point named by pos to (x, y) and
// keeps the opposite one where it is. Positions that are not handles mean
// the caller broke the hit-tester contract, so it panics.
func ResizeCoordinates(x, y float64, pos Position, c Coords) Coords {
	switch pos {
	case PositionTopLeft, PositionStart:
		return Coords{X1: x, Y1: y, X2: c.X2, Y2: c.Y2}
	case PositionTopRight:
		return Coords{X1: c.X1, Y1: y, X2: x, Y2: c.Y2}
	case PositionBottomLeft:
		return Coords{X1: x, Y1: c.Y1, X2: c.X2, Y2: y}
	case PositionBottomRight, PositionEnd:
		return Coords{X1: c.X1, Y1: c.Y1, X2: x, Y2: y}
	}
	panic(fmt.Sprintf("state: no resize rule for position %v", pos))
}
