package ui

import (
	"image/color"

	"SketchBoard/internal/geometry"
	"SketchBoard/internal/sketch"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	gridSize    = 50
	handleSize  = 8
	strokeWidth = 1.5
)

var (
	paperColor  = color.NRGBA{R: 245, G: 246, B: 248, A: 255}
	gridColor   = color.NRGBA{R: 220, G: 220, B: 220, A: 100}
	inkColor    = color.NRGBA{A: 255}
	handleColor = color.NRGBA{R: 40, G: 110, B: 230, A: 255}
)

// boardRenderer keeps canvas objects per shape and rebuilds them only when
// the editor's collection version moves.
type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	grid       []fyne.CanvasObject
	strokes    []fyne.CanvasObject
	handles    []fyne.CanvasObject
	gridFor    fyne.Size
	version    uint64
	built      bool
}

func newBoardRenderer(b *BoardWidget) *boardRenderer {
	r := &boardRenderer{board: b, background: canvas.NewRectangle(paperColor)}
	r.rebuild()
	return r
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 1+len(r.grid)+len(r.strokes)+len(r.handles))
	objects = append(objects, r.background)
	objects = append(objects, r.grid...)
	objects = append(objects, r.strokes...)
	return append(objects, r.handles...)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if size != r.gridFor {
		r.grid = createGrid(size)
		r.gridFor = size
	}
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}

func (r *boardRenderer) rebuild() {
	ed := r.board.editor
	if !r.built || ed.Version() != r.version {
		r.strokes = r.strokes[:0]
		for _, s := range ed.Shapes() {
			r.strokes = appendStrokes(r.strokes, s)
		}
		r.version = ed.Version()
		r.built = true
	}
	r.handles = r.handles[:0]
	if sel := ed.Interaction().Selection; sel != nil {
		shapes := ed.Shapes()
		if sel.Shape.ID < len(shapes) {
			r.handles = appendHandles(r.handles, shapes[sel.Shape.ID])
		}
	}
}

func appendStrokes(objs []fyne.CanvasObject, s state.Shape) []fyne.CanvasObject {
	d, ok := s.Handle.(*sketch.Drawable)
	if !ok {
		return objs
	}
	d.Segments(func(a, b geometry.Point) {
		l := canvas.NewLine(inkColor)
		l.StrokeWidth = strokeWidth
		l.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
		l.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
		objs = append(objs, l)
	})
	return objs
}

// appendHandles marks the grab points of the shape being edited.
func appendHandles(objs []fyne.CanvasObject, s state.Shape) []fyne.CanvasObject {
	points := []geometry.Point{s.P1(), s.P2()}
	if s.Kind == state.KindRectangle {
		points = append(points, geometry.Pt(s.X2, s.Y1), geometry.Pt(s.X1, s.Y2))
	}
	for _, p := range points {
		h := canvas.NewRectangle(color.Transparent)
		h.StrokeColor = handleColor
		h.StrokeWidth = 1
		h.Resize(fyne.NewSize(handleSize, handleSize))
		h.Move(fyne.NewPos(float32(p.X)-handleSize/2, float32(p.Y)-handleSize/2))
		objs = append(objs, h)
	}
	return objs
}

func createGrid(size fyne.Size) []fyne.CanvasObject {
	var lines []fyne.CanvasObject
	for x := float32(0); x < size.Width; x += gridSize {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, size.Height)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	for y := float32(0); y < size.Height; y += gridSize {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	return lines
}
