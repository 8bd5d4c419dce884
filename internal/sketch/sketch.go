// Package sketch turns shape geometry into hand-drawn looking strokes.
//
// A Drawable is the render handle the board keeps per shape. It is plain
// data: a few jittered polylines that any surface (Fyne canvas, PDF page,
// PNG image) can trace. The jitter is seeded from the shape's coordinates,
// so rebuilding a handle for unchanged geometry gives the same strokes and
// a redraw does not make shapes wobble.
package sketch

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"

	"SketchBoard/internal/geometry"
	"SketchBoard/internal/state"
)

// Options tune the generator.
type Options struct {
	// Roughness scales every random offset. 0 draws exact straight strokes.
	Roughness float64
	// Bowing scales how far the middle of a stroke sags sideways.
	Bowing float64
	// Passes is how many times each edge is traced.
	Passes int
	// Seed mixes into the per-shape seed; change it to get another look.
	Seed uint64
}

// DefaultOptions is a light sketch look: two passes at roughness 1.
func DefaultOptions() Options {
	return Options{Roughness: 1, Bowing: 1, Passes: 2}
}

// maxOffset caps the endpoint jitter, in board units.
const maxOffset = 2.0

// Drawable is the render handle produced for a shape.
type Drawable struct {
	Kind    state.Kind
	Strokes [][]geometry.Point
}

// Segments calls fn for each consecutive pair of points in every stroke.
func (d *Drawable) Segments(fn func(a, b geometry.Point)) {
	if d == nil {
		return
	}
	for _, s := range d.Strokes {
		for i := 1; i < len(s); i++ {
			fn(s[i-1], s[i])
		}
	}
}

// Generator builds Drawables. It implements state.Backend.
type Generator struct {
	opts Options
}

var _ state.Backend = (*Generator)(nil)

// NewGenerator clamps opts to at least one pass and non-negative roughness.
func NewGenerator(opts Options) *Generator {
	if opts.Passes < 1 {
		opts.Passes = 1
	}
	if opts.Roughness < 0 {
		opts.Roughness = 0
	}
	return &Generator{opts: opts}
}

func (g *Generator) Options() Options { return g.opts }

// MakeRenderHandle returns a *Drawable for the shape's current geometry.
func (g *Generator) MakeRenderHandle(kind state.Kind, x1, y1, x2, y2 float64) state.RenderHandle {
	if kind == state.KindRectangle {
		return g.Rectangle(x1, y1, x2-x1, y2-y1)
	}
	return g.Line(x1, y1, x2, y2)
}

// Line traces a single edge from (x1,y1) to (x2,y2).
func (g *Generator) Line(x1, y1, x2, y2 float64) *Drawable {
	rng := g.rng(state.KindLine, x1, y1, x2, y2)
	d := &Drawable{Kind: state.KindLine}
	d.Strokes = g.edge(rng, d.Strokes, geometry.Pt(x1, y1), geometry.Pt(x2, y2))
	return d
}

// Rectangle takes the top-left corner plus width and height. Negative
// extents are fine and simply grow the other way.
func (g *Generator) Rectangle(x, y, w, h float64) *Drawable {
	rng := g.rng(state.KindRectangle, x, y, x+w, y+h)
	corners := [4]geometry.Point{
		geometry.Pt(x, y),
		geometry.Pt(x+w, y),
		geometry.Pt(x+w, y+h),
		geometry.Pt(x, y+h),
	}
	d := &Drawable{Kind: state.KindRectangle}
	for i := range corners {
		d.Strokes = g.edge(rng, d.Strokes, corners[i], corners[(i+1)%4])
	}
	return d
}

func (g *Generator) edge(rng *rand.Rand, strokes [][]geometry.Point, a, b geometry.Point) [][]geometry.Point {
	if g.opts.Roughness == 0 {
		return append(strokes, []geometry.Point{a, b})
	}
	length := geometry.Distance(a, b)
	off := g.opts.Roughness * math.Min(maxOffset, length/10)
	// unit normal for the sideways bow
	var nx, ny float64
	if length > 0 {
		nx, ny = -(b.Y-a.Y)/length, (b.X-a.X)/length
	}
	for range g.opts.Passes {
		bow := g.opts.Bowing * g.opts.Roughness * length / 200 * (rng.Float64()*2 - 1)
		stroke := make([]geometry.Point, 0, 4)
		stroke = append(stroke, jitter(rng, a, off))
		for _, t := range [2]float64{0.5 - 0.2*rng.Float64(), 0.5 + 0.2*rng.Float64()} {
			m := geometry.Pt(a.X+(b.X-a.X)*t+nx*bow, a.Y+(b.Y-a.Y)*t+ny*bow)
			stroke = append(stroke, jitter(rng, m, off))
		}
		stroke = append(stroke, jitter(rng, b, off))
		strokes = append(strokes, stroke)
	}
	return strokes
}

func jitter(rng *rand.Rand, p geometry.Point, off float64) geometry.Point {
	if off == 0 {
		return p
	}
	return geometry.Pt(p.X+off*(rng.Float64()*2-1), p.Y+off*(rng.Float64()*2-1))
}

func (g *Generator) rng(kind state.Kind, coords ...float64) *rand.Rand {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(kind))
	h.Write(buf[:])
	for _, c := range coords {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
		h.Write(buf[:])
	}
	return rand.New(rand.NewPCG(g.opts.Seed, h.Sum64()))
}
