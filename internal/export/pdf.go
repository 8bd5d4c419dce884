package export

import (
	"fmt"
	"io"
	"log"
	"os"

	"SketchBoard/internal/geometry"
	"SketchBoard/internal/sketch"
	"SketchBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 10.0      // mm
	pxToMM     = 25.4 / 96 // one board unit is one 96 dpi pixel
)

// WritePDF renders shapes onto a single landscape A4 page. The drawing is
// scaled down when it does not fit, never up.
func WritePDF(w io.Writer, shapes []state.Shape, gen *sketch.Generator, session string) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle("SketchBoard "+session, false)
	p.SetCreator("SketchBoard", false)
	p.AddPage()
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.4)
	p.SetLineCapStyle("round")

	if b, ok := state.Bounds(shapes, Padding); ok {
		pageW, pageH := p.GetPageSize()
		f := newFit(b, pageW-2*pageMargin, pageH-2*pageMargin, pxToMM)
		f.offX, f.offY = pageMargin, pageMargin
		for _, s := range shapes {
			drawableOf(s, gen).Segments(func(a, b geometry.Point) {
				x1, y1 := f.apply(a.X, a.Y)
				x2, y2 := f.apply(b.X, b.Y)
				p.Line(x1, y1, x2, y2)
			})
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// SavePDF writes the PDF to path.
func SavePDF(path string, shapes []state.Shape, gen *sketch.Generator, session string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WritePDF(f, shapes, gen, session); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %d shapes to %s", len(shapes), path)
	return nil
}
