package sketch

import (
	"math"
	"reflect"
	"testing"

	"SketchBoard/internal/geometry"
	"SketchBoard/internal/state"
)

func TestExactStrokesWithoutRoughness(t *testing.T) {
	g := NewGenerator(Options{Roughness: 0, Passes: 3})
	d := g.Line(0, 0, 100, 0)
	want := [][]geometry.Point{{geometry.Pt(0, 0), geometry.Pt(100, 0)}}
	if !reflect.DeepEqual(d.Strokes, want) {
		t.Errorf("expected one exact stroke, got %v", d.Strokes)
	}

	r := g.Rectangle(10, 10, 40, 70)
	if len(r.Strokes) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(r.Strokes))
	}
	if r.Strokes[1][0] != geometry.Pt(50, 10) || r.Strokes[1][1] != geometry.Pt(50, 80) {
		t.Errorf("unexpected right edge %v", r.Strokes[1])
	}
}

func TestHandleIsStableForSameGeometry(t *testing.T) {
	g := NewGenerator(DefaultOptions())
	a := g.MakeRenderHandle(state.KindRectangle, 10, 10, 50, 80)
	b := g.MakeRenderHandle(state.KindRectangle, 10, 10, 50, 80)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same geometry should give the same strokes")
	}
	c := g.MakeRenderHandle(state.KindRectangle, 10, 10, 50, 81)
	if reflect.DeepEqual(a, c) {
		t.Errorf("different geometry should give different strokes")
	}
}

func TestSeedChangesLook(t *testing.T) {
	a := NewGenerator(Options{Roughness: 1, Passes: 2, Seed: 1}).Line(0, 0, 100, 100)
	b := NewGenerator(Options{Roughness: 1, Passes: 2, Seed: 2}).Line(0, 0, 100, 100)
	if reflect.DeepEqual(a, b) {
		t.Errorf("different seeds should jitter differently")
	}
}

func TestRoughStrokesStayClose(t *testing.T) {
	g := NewGenerator(DefaultOptions())
	d := g.MakeRenderHandle(state.KindRectangle, 50, 80, 10, 10).(*Drawable)
	if d.Kind != state.KindRectangle {
		t.Errorf("expected rectangle drawable, got %v", d.Kind)
	}
	if len(d.Strokes) != 8 {
		t.Errorf("expected 4 edges x 2 passes, got %d", len(d.Strokes))
	}
	// endpoints jitter by at most maxOffset; bowing adds length/200 at most
	slack := maxOffset + 70.0/200
	d.Segments(func(a, b geometry.Point) {
		for _, p := range []geometry.Point{a, b} {
			if p.X < 10-slack || p.X > 50+slack || p.Y < 10-slack || p.Y > 80+slack {
				t.Errorf("point %v strays too far from the rectangle", p)
			}
		}
	})
}

func TestZeroLengthLine(t *testing.T) {
	g := NewGenerator(DefaultOptions())
	d := g.Line(5, 5, 5, 5)
	d.Segments(func(a, b geometry.Point) {
		if math.IsNaN(a.X) || math.IsNaN(b.Y) || a != geometry.Pt(5, 5) || b != geometry.Pt(5, 5) {
			t.Errorf("zero length line should stay on its point, got %v %v", a, b)
		}
	})
}

func TestNilDrawableSegments(t *testing.T) {
	var d *Drawable
	d.Segments(func(a, b geometry.Point) {
		t.Errorf("nil drawable has no segments")
	})
}
