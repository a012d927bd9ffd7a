package zoom

import (
	"image"
	"image/color"
	"testing"

	"fractal-explorer/internal/framebuffer"
	"fractal-explorer/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coded fills a w x h buffer so every pixel's colour encodes its position.
func coded(t *testing.T, w, h int) *framebuffer.Buffer {
	t.Helper()
	buf := framebuffer.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(t, buf.SetPixel(x, y, code(x, y)))
		}
	}
	return buf
}

func code(x, y int) color.RGBA {
	return color.RGBA{R: uint8(x), G: uint8(y), B: 1, A: 255}
}

func TestMagnifyDoublesTopLeftQuadrant(t *testing.T) {
	buf := coded(t, 4, 4)
	Magnify(buf, geometry.NewRect(0, 0, 2, 2))

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, code(x/2, y/2), buf.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestMagnifyOffsetRegion(t *testing.T) {
	buf := coded(t, 8, 8)
	Magnify(buf, geometry.NewRect(4, 2, 4, 4))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, code(4+x/2, 2+y/2), buf.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestMagnifyFullWindowLeavesFrame(t *testing.T) {
	buf := coded(t, 6, 5)
	Magnify(buf, geometry.NewRect(0, 0, 6, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, code(x, y), buf.At(x, y))
		}
	}
}

func TestShrinkIntoBottomRight(t *testing.T) {
	buf := coded(t, 4, 4)
	Shrink(buf, geometry.NewRect(2, 2, 2, 2))

	assert.Equal(t, code(0, 0), buf.At(2, 2))
	assert.Equal(t, code(2, 0), buf.At(3, 2))
	assert.Equal(t, code(0, 2), buf.At(2, 3))
	assert.Equal(t, code(2, 2), buf.At(3, 3))

	// Outside the footprint nothing moves.
	for _, p := range []image.Point{{0, 0}, {1, 1}, {3, 0}, {0, 3}, {1, 2}} {
		assert.Equal(t, code(p.X, p.Y), buf.At(p.X, p.Y), "pixel %v", p)
	}
}

func TestShrinkReadsFromSnapshot(t *testing.T) {
	// Footprint overlaps the area being sampled.
	buf := coded(t, 8, 8)
	Shrink(buf, geometry.NewRect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, code(2*x, 2*y), buf.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestPreseedClipsDragOutsideBuffer(t *testing.T) {
	buf := coded(t, 4, 4)
	assert.NotPanics(t, func() {
		Preseed(buf, In, geometry.NewRect(2, 2, 6, 6))
		Preseed(buf, Out, geometry.NewRect(-3, -3, 5, 5))
		Preseed(buf, Out, geometry.NewRect(10, 10, 2, 2))
	})
}

func TestPreseedIgnoresDegenerateDrag(t *testing.T) {
	buf := coded(t, 4, 4)
	Preseed(buf, In, geometry.NewRect(1, 1, 0, 2))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, code(x, y), buf.At(x, y))
		}
	}
}

func TestShrinkFractionalDragCoversPartialColumn(t *testing.T) {
	buf := coded(t, 40, 40)
	// Right and bottom edges fall at 20.5, so column and row 20 are written.
	Shrink(buf, geometry.NewRect(10.5, 10.5, 10, 10))

	assert.Equal(t, code(38, 18), buf.At(20, 15))
	assert.Equal(t, code(18, 38), buf.At(15, 20))
	assert.Equal(t, code(0, 0), buf.At(10, 10), "source index clamped at the left edge")
	assert.Equal(t, code(21, 15), buf.At(21, 15))
	assert.Equal(t, code(9, 15), buf.At(9, 15))
}
