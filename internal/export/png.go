package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"SketchBoard/internal/geometry"
	"SketchBoard/internal/sketch"
	"SketchBoard/internal/state"

	"golang.org/x/image/vector"
)

const (
	// MaxImageSize bounds either side of an exported image in pixels.
	MaxImageSize = 4096
	minImageSize = 64
	strokeWidth  = 2.0
)

// RenderImage rasterizes shapes at one pixel per board unit onto a white
// background, shrinking to MaxImageSize when needed.
func RenderImage(shapes []state.Shape, gen *sketch.Generator) *image.RGBA {
	b, ok := state.Bounds(shapes, Padding)
	if !ok {
		img := image.NewRGBA(image.Rect(0, 0, minImageSize, minImageSize))
		draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
		return img
	}
	f := newFit(b, MaxImageSize, MaxImageSize, 1)
	w := min(MaxImageSize, max(minImageSize, int(math.Ceil(b.Width()*f.scale))))
	h := min(MaxImageSize, max(minImageSize, int(math.Ceil(b.Height()*f.scale))))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	ink := image.NewUniform(color.Black)
	var z vector.Rasterizer
	for _, s := range shapes {
		drawableOf(s, gen).Segments(func(a, b geometry.Point) {
			x1, y1 := f.apply(a.X, a.Y)
			x2, y2 := f.apply(b.X, b.Y)
			// rasterize only the segment's own box
			r := segmentBox(x1, y1, x2, y2, strokeWidth).Intersect(img.Bounds())
			if r.Empty() {
				return
			}
			ox, oy := float64(r.Min.X), float64(r.Min.Y)
			z.Reset(r.Dx(), r.Dy())
			strokeSegment(&z, x1-ox, y1-oy, x2-ox, y2-oy, strokeWidth/2)
			z.Draw(img, r, ink, image.Point{})
		})
	}
	return img
}

// segmentBox is the pixel box covering a-b grown by pad on every side.
func segmentBox(x1, y1, x2, y2, pad float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(min(x1, x2)-pad)),
		int(math.Floor(min(y1, y2)-pad)),
		int(math.Ceil(max(x1, x2)+pad)),
		int(math.Ceil(max(y1, y2)+pad)),
	)
}

// strokeSegment adds a quad of half width hw around a-b. Degenerate
// segments become a small square so dots stay visible.
func strokeSegment(z *vector.Rasterizer, x1, y1, x2, y2, hw float64) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	var nx, ny float64
	if l == 0 {
		dx, dy, nx, ny = hw, 0, 0, hw
	} else {
		nx, ny = -dy/l*hw, dx/l*hw
		dx, dy = 0, 0
	}
	z.MoveTo(float32(x1-dx+nx), float32(y1-dy+ny))
	z.LineTo(float32(x2+dx+nx), float32(y2+dy+ny))
	z.LineTo(float32(x2+dx-nx), float32(y2+dy-ny))
	z.LineTo(float32(x1-dx-nx), float32(y1-dy-ny))
	z.ClosePath()
}

// WritePNG encodes RenderImage's output as PNG.
func WritePNG(w io.Writer, shapes []state.Shape, gen *sketch.Generator) error {
	if err := png.Encode(w, RenderImage(shapes, gen)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the board to a PNG file at path.
func SavePNG(path string, shapes []state.Shape, gen *sketch.Generator) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WritePNG(f, shapes, gen); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %d shapes to %s", len(shapes), path)
	return nil
}
