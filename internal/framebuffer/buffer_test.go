package framebuffer

import (
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 255, A: 255}

func TestNewIsBlack(t *testing.T) {
	b := New(4, 3)
	w, h := b.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.Equal(t, Black, b.At(x, y))
		}
	}
}

func TestSetPixel(t *testing.T) {
	b := New(10, 10)
	require.NoError(t, b.SetPixel(3, 7, red))
	assert.Equal(t, red, b.At(3, 7))
}

func TestSetPixelOutOfRange(t *testing.T) {
	b := New(10, 10)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		err := b.SetPixel(p.X, p.Y, red)
		assert.ErrorIs(t, err, ErrDimensionMismatch, "point %v", p)
	}
}

func TestRegionIsPrivateCopy(t *testing.T) {
	b := New(10, 10)
	require.NoError(t, b.SetPixel(5, 5, red))

	snap := b.Region(image.Rect(4, 4, 8, 8))
	assert.Equal(t, image.Rect(0, 0, 4, 4), snap.Bounds())
	assert.Equal(t, red, snap.RGBAAt(1, 1))

	require.NoError(t, b.SetPixel(5, 5, Black))
	assert.Equal(t, red, snap.RGBAAt(1, 1), "snapshot changed after live write")
}

func TestRegionClipped(t *testing.T) {
	b := New(10, 10)
	snap := b.Region(image.Rect(8, 8, 20, 20))
	assert.Equal(t, image.Rect(0, 0, 2, 2), snap.Bounds())
}

func TestSnapshot(t *testing.T) {
	b := New(6, 4)
	require.NoError(t, b.SetPixel(5, 3, red))
	snap := b.Snapshot()
	assert.Equal(t, image.Rect(0, 0, 6, 4), snap.Bounds())
	assert.Equal(t, red, snap.RGBAAt(5, 3))
}

func TestUpdate(t *testing.T) {
	b := New(3, 3)
	b.Update(func(img *image.RGBA) {
		img.SetRGBA(1, 1, red)
	})
	assert.Equal(t, red, b.At(1, 1))
}

func TestReallocate(t *testing.T) {
	b := New(3, 3)
	require.NoError(t, b.SetPixel(1, 1, red))

	b.Reallocate(5, 2)
	w, h := b.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, Black, b.At(1, 1))
	assert.ErrorIs(t, b.SetPixel(1, 2, red), ErrDimensionMismatch)
}

func TestConcurrentWritesAndSnapshots(t *testing.T) {
	b := New(64, 64)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				_ = b.SetPixel(x, y, red)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			snap := b.Snapshot()
			for _, px := range []color.RGBA{snap.RGBAAt(0, 0), snap.RGBAAt(63, 63)} {
				assert.Contains(t, []color.RGBA{red, Black}, px)
			}
		}
	}()
	wg.Wait()
	assert.Equal(t, red, b.At(63, 63))
}
