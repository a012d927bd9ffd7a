// Package palette maps escape-time iteration counts to display colors.
package palette

import (
	"image/color"

	"fractal-explorer/pkg/colorutil"

	"gonum.org/v1/gonum/floats"
)

// DefaultCycle is the number of iterations for one trip around the hue wheel.
const DefaultCycle = 256

// Wheel cycles through the hue wheel at high saturation. Consecutive counts
// get neighbouring hues, so colors only jump where the escape count does.
type Wheel struct {
	table []color.RGBA
}

// NewWheel builds a wheel that completes one revolution every cycle counts,
// starting at hue offset degrees. A cycle below 2 selects DefaultCycle.
func NewWheel(cycle int, offset float64) *Wheel {
	if cycle < 2 {
		cycle = DefaultCycle
	}

	// cycle+1 evenly spaced hues from offset to offset+360; the last one
	// coincides with the first and is dropped.
	hues := floats.Span(make([]float64, cycle+1), offset, offset+360)[:cycle]
	table := make([]color.RGBA, cycle)
	for i, h := range hues {
		table[i] = colorutil.HSVToRGB(h, 0.85, 1)
	}
	return &Wheel{table: table}
}

// Cycle returns the number of distinct colors on the wheel.
func (w *Wheel) Cycle() int {
	return len(w.table)
}

// ColorFor returns the color for an iteration count. Negative counts (points
// that never escaped) are black.
func (w *Wheel) ColorFor(count int) color.RGBA {
	if count < 0 {
		return colorutil.Black
	}
	return w.table[count%len(w.table)]
}
