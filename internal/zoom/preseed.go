package zoom

import (
	"image"

	"fractal-explorer/internal/framebuffer"
	"fractal-explorer/pkg/geometry"

	"golang.org/x/image/draw"
)

// Preseed writes a best-effort resample of the current frame so the old view
// stays visible while the next scan pass fills in. It only affects what is
// on screen, never the math bounds.
func Preseed(buf *framebuffer.Buffer, dir Direction, drag geometry.Rect) {
	if drag.IsDegenerate() {
		return
	}
	switch dir {
	case In:
		Magnify(buf, drag)
	case Out:
		Shrink(buf, drag)
	}
}

// Magnify blows the dragged part of the frame up to fill the whole buffer.
// Each source pixel becomes a block of ratio x ratio pixels, one wider and
// taller than the truncated ratio so that no gaps appear.
func Magnify(buf *framebuffer.Buffer, drag geometry.Rect) {
	buf.Update(func(img *image.RGBA) {
		bounds := img.Bounds()
		src := drag.Pixels().Intersect(bounds)
		if src.Empty() {
			return
		}

		// Read from a private copy; the blocks overwrite the source area.
		tmp := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
		draw.Copy(tmp, image.Point{}, img, src, draw.Src, nil)

		hr := float64(bounds.Dx()) / drag.Width
		vr := float64(bounds.Dy()) / drag.Height
		bw, bh := int(hr)+1, int(vr)+1
		offX, offY := src.Min.X-drag.Pixels().Min.X, src.Min.Y-drag.Pixels().Min.Y

		for i := 0; i < src.Dx(); i++ {
			for j := 0; j < src.Dy(); j++ {
				x := bounds.Min.X + int(float64(i+offX)*hr)
				y := bounds.Min.Y + int(float64(j+offY)*vr)
				block := image.Rect(x, y, x+bw, y+bh).Intersect(bounds)
				if block.Empty() {
					continue
				}
				draw.Draw(img, block, image.NewUniform(tmp.RGBAAt(i, j)), image.Point{}, draw.Src)
			}
		}
	})
}

// Shrink scales the whole frame down into the dragged footprint with
// nearest-neighbour sampling. Pixels outside the footprint are untouched.
func Shrink(buf *framebuffer.Buffer, drag geometry.Rect) {
	buf.Update(func(img *image.RGBA) {
		bounds := img.Bounds()
		dst := drag.Pixels().Intersect(bounds)
		if dst.Empty() {
			return
		}

		tmp := image.NewRGBA(bounds)
		draw.Copy(tmp, bounds.Min, img, bounds, draw.Src, nil)

		hr := float64(bounds.Dx()) / drag.Width
		vr := float64(bounds.Dy()) / drag.Height

		for i := dst.Min.X; i < dst.Max.X; i++ {
			sx := clamp(bounds.Min.X+int((float64(i)-drag.X)*hr), bounds.Min.X, bounds.Max.X-1)
			for j := dst.Min.Y; j < dst.Max.Y; j++ {
				sy := clamp(bounds.Min.Y+int((float64(j)-drag.Y)*vr), bounds.Min.Y, bounds.Max.Y-1)
				img.SetRGBA(i, j, tmp.RGBAAt(sx, sy))
			}
		}
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
