// Package framebuffer provides the shared pixel buffer the scan engine draws
// into and the canvas reads from.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
)

// ErrDimensionMismatch is returned when a write falls outside the buffer,
// which happens when the window was resized without reallocating.
var ErrDimensionMismatch = errors.New("buffer dimension mismatch")

// Black is the colour a freshly allocated buffer is cleared to.
var Black = color.RGBA{A: 255}

// Buffer is a window-sized RGBA image guarded by a single mutex. Every read
// and write goes through a method that takes the lock for exactly the span of
// the access.
type Buffer struct {
	mu  sync.Mutex
	img *image.RGBA
}

// New allocates a black buffer of w x h pixels.
func New(w, h int) *Buffer {
	return &Buffer{img: newBlack(w, h)}
}

func newBlack(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Black), image.Point{}, draw.Src)
	return img
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := b.img.Bounds()
	return r.Dx(), r.Dy()
}

// SetPixel writes one pixel.
func (b *Buffer) SetPixel(x, y int, c color.RGBA) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !(image.Point{X: x, Y: y}).In(b.img.Rect) {
		return fmt.Errorf("pixel (%d,%d) outside %v: %w", x, y, b.img.Rect, ErrDimensionMismatch)
	}
	b.img.SetRGBA(x, y, c)
	return nil
}

// At returns the colour of one pixel, or transparent black outside the buffer.
func (b *Buffer) At(x, y int) color.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.img.RGBAAt(x, y)
}

// Region returns a private copy of r clipped to the buffer. The copy's
// bounds start at the origin.
func (b *Buffer) Region(r image.Rectangle) *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyRegion(b.img, r)
}

// Snapshot returns a private copy of the whole buffer.
func (b *Buffer) Snapshot() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyRegion(b.img, b.img.Rect)
}

// copyRegion must be called with the guard held.
func copyRegion(src *image.RGBA, r image.Rectangle) *image.RGBA {
	r = r.Intersect(src.Rect)
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, src, r, draw.Src, nil)
	return dst
}

// Update runs fn with the live image under one acquisition of the guard. fn
// must not retain img and must not call other Buffer methods.
func (b *Buffer) Update(fn func(img *image.RGBA)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.img)
}

// Reallocate replaces the backing image with a black one of w x h pixels.
func (b *Buffer) Reallocate(w, h int) {
	img := newBlack(w, h)
	b.mu.Lock()
	b.img = img
	b.mu.Unlock()
}
