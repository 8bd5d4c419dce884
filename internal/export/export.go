// Package export draws a board onto surfaces that are not the live canvas.
package export

import (
	"math"

	"SketchBoard/internal/sketch"
	"SketchBoard/internal/state"
)

// Padding is the blank margin around the drawing, in board units.
const Padding = 20.0

// drawableOf returns the shape's own handle when it is a sketch drawable
// and builds one with gen otherwise (headless editors keep no handles).
func drawableOf(s state.Shape, gen *sketch.Generator) *sketch.Drawable {
	if d, ok := s.Handle.(*sketch.Drawable); ok && d != nil {
		return d
	}
	return gen.MakeRenderHandle(s.Kind, s.X1, s.Y1, s.X2, s.Y2).(*sketch.Drawable)
}

// fit maps board coordinates into a w x h target, keeping aspect ratio and
// never enlarging past maxScale.
type fit struct {
	originX, originY float64
	scale            float64
	offX, offY       float64
}

func newFit(b state.Rect, w, h, maxScale float64) fit {
	scale := maxScale
	if b.Width() > 0 {
		scale = math.Min(scale, w/b.Width())
	}
	if b.Height() > 0 {
		scale = math.Min(scale, h/b.Height())
	}
	return fit{originX: b.MinX, originY: b.MinY, scale: scale}
}

func (f fit) apply(x, y float64) (float64, float64) {
	return f.offX + (x-f.originX)*f.scale, f.offY + (y-f.originY)*f.scale
}
