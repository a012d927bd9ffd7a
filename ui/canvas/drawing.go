package canvas

import (
	"image"
	"image/color"

	"fractal-explorer/pkg/colorutil"
)

const (
	indicatorX      = 2
	indicatorY      = 2
	indicatorRadius = 5
)

// drawSelectionRect draws a dashed yellow outline around rect.
func drawSelectionRect(output *image.RGBA, rect image.Rectangle) {
	col := colorutil.Yellow

	x1, y1 := rect.Min.X, rect.Min.Y
	x2, y2 := rect.Max.X, rect.Max.Y

	// Dashed outline (alternate pixel pairs)
	for x := x1; x <= x2; x++ {
		dash(output, x, y1, col)
		dash(output, x, y2, col)
	}
	for y := y1; y <= y2; y++ {
		dash(output, x1, y, col)
		dash(output, x2, y, col)
	}
}

func dash(output *image.RGBA, x, y int, col color.RGBA) {
	if (x+y)%4 < 2 && (image.Point{X: x, Y: y}).In(output.Bounds()) {
		output.SetRGBA(x, y, col)
	}
}

// drawScanIndicator draws a red dot with a black rim in the upper left corner.
func drawScanIndicator(output *image.RGBA) {
	bounds := output.Bounds()

	cx := float64(indicatorX + indicatorRadius)
	cy := float64(indicatorY + indicatorRadius)
	r := float64(indicatorRadius)
	r2 := r * r
	innerR2 := (r - 1) * (r - 1) // 1 pixel rim

	for y := indicatorY; y <= indicatorY+2*indicatorRadius; y++ {
		for x := indicatorX; x <= indicatorX+2*indicatorRadius; x++ {
			if !(image.Point{X: x, Y: y}).In(bounds) {
				continue
			}
			// Distance from center squared
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist2 := dx*dx + dy*dy

			switch {
			case dist2 < innerR2:
				output.SetRGBA(x, y, colorutil.Red)
			case dist2 <= r2:
				output.SetRGBA(x, y, colorutil.Black)
			}
		}
	}
}
