package fractal

import (
	"fmt"
	"image"

	newton "github.com/marben/dist_newton"
)

// Buffer is the row-major color grid of a finished or in-progress render.
// Its size is fixed at allocation.
type Buffer struct {
	Width  int
	Height int
	Pix    []newton.RGB
}

// NewBuffer allocates a black width x height buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]newton.RGB, width*height),
	}
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At returns the color at (x, y).
func (b *Buffer) At(x, y int) newton.RGB {
	return b.Pix[y*b.Width+x]
}

// Set stores c at (x, y).
func (b *Buffer) Set(x, y int, c newton.RGB) {
	b.Pix[y*b.Width+x] = c
}

// DrawTile copies a rendered tile into place.
func (b *Buffer) DrawTile(t newton.TileImage) error {
	r := t.Rect
	if !r.In(b.Bounds()) {
		return fmt.Errorf("tile %v outside %v", r, b.Bounds())
	}
	if len(t.Pix) != r.Dx()*r.Dy() {
		return fmt.Errorf("tile %v has %d pixels, want %d", r, len(t.Pix), r.Dx()*r.Dy())
	}
	w := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := t.Pix[(y-r.Min.Y)*w : (y-r.Min.Y+1)*w]
		copy(b.Pix[y*b.Width+r.Min.X:], row)
	}
	return nil
}
