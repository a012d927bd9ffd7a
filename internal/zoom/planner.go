// Package zoom turns a drag rectangle in screen space into new math bounds
// and pre-seeds the pixel buffer with a resampled image of the old view.
package zoom

import (
	"errors"
	"fmt"

	"fractal-explorer/pkg/geometry"
)

// ErrDegenerateDrag is returned for a drag with zero width or height.
var ErrDegenerateDrag = errors.New("drag rectangle has zero width or height")

// Direction selects how a drag rectangle is interpreted.
type Direction int

const (
	// In makes the dragged region the new full view.
	In Direction = iota
	// Out shrinks the current full view into the dragged region.
	Out
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Plan computes the math bounds for a zoom in direction dir.
func Plan(dir Direction, drag, window, mathBounds geometry.Rect) (geometry.Rect, error) {
	switch dir {
	case In:
		return ZoomIn(drag, window, mathBounds)
	case Out:
		return ZoomOut(drag, window, mathBounds)
	default:
		return geometry.Rect{}, fmt.Errorf("unknown zoom direction %v", dir)
	}
}

// ZoomIn returns the math image of drag under the current bounds: the
// dragged region becomes the whole view.
//
// All four edges are computed from the same mathBounds value.
func ZoomIn(drag, window, mathBounds geometry.Rect) (geometry.Rect, error) {
	if drag.IsDegenerate() {
		return geometry.Rect{}, ErrDegenerateDrag
	}
	return edges(
		[4]float64{drag.Left(), drag.Right(), drag.Top(), drag.Bottom()},
		window, mathBounds)
}

// ZoomOut returns the bounds under which the current view lands exactly on
// drag: the window corners are mapped from the drag's screen range into the
// current math range. ZoomOut undoes ZoomIn for the same drag.
func ZoomOut(drag, window, mathBounds geometry.Rect) (geometry.Rect, error) {
	if drag.IsDegenerate() {
		return geometry.Rect{}, ErrDegenerateDrag
	}
	return edges(
		[4]float64{window.Left(), window.Right(), window.Top(), window.Bottom()},
		drag, mathBounds)
}

// edges maps screen positions {minX, maxX, minY, maxY} from the src frame
// into mathBounds and builds the resulting rectangle.
func edges(screen [4]float64, src, mathBounds geometry.Rect) (geometry.Rect, error) {
	minX, err := geometry.Map(screen[0], src.Left(), src.Right(), mathBounds.Left(), mathBounds.Right())
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("min x: %w", err)
	}
	maxX, err := geometry.Map(screen[1], src.Left(), src.Right(), mathBounds.Left(), mathBounds.Right())
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("max x: %w", err)
	}
	minY, err := geometry.Map(screen[2], src.Top(), src.Bottom(), mathBounds.Top(), mathBounds.Bottom())
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("min y: %w", err)
	}
	maxY, err := geometry.Map(screen[3], src.Top(), src.Bottom(), mathBounds.Top(), mathBounds.Bottom())
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("max y: %w", err)
	}
	return geometry.NewRect(minX, minY, maxX-minX, maxY-minY), nil
}
