// Package viewport pairs the screen-space window with the region of the
// complex plane it currently displays.
package viewport

import (
	"fmt"
	"math"
	"sync"

	"fractal-explorer/internal/logging"
	"fractal-explorer/pkg/geometry"
)

var (
	// DefaultWindow is the pixel size of the drawing area.
	DefaultWindow = geometry.NewRect(0, 0, 800, 790)

	// DefaultMath frames the whole Mandelbrot set.
	DefaultMath = geometry.NewRect(-2, -1.5, 3, 3)
)

// Viewport holds the window bounds (screen space) and math bounds (complex
// plane). The two are always read together under one lock so a reader never
// sees a window from one zoom and math bounds from another.
type Viewport struct {
	mu     sync.RWMutex
	window geometry.Rect
	math   geometry.Rect
}

// New creates a viewport. A zero window or math rectangle selects the
// corresponding default.
func New(window, mathBounds geometry.Rect) (*Viewport, error) {
	if window == (geometry.Rect{}) {
		window = DefaultWindow
	}
	if mathBounds == (geometry.Rect{}) {
		mathBounds = DefaultMath
	}
	if err := validate(window); err != nil {
		return nil, fmt.Errorf("window bounds: %w", err)
	}
	if err := validate(mathBounds); err != nil {
		return nil, fmt.Errorf("math bounds: %w", err)
	}
	return &Viewport{window: window, math: mathBounds}, nil
}

// validate rejects rectangles that would make the per-axis mapping undefined.
func validate(r geometry.Rect) error {
	if !r.IsDegenerate() {
		return nil
	}
	if r.Width == 0 || !finite(r.X) || !finite(r.Width) {
		return &geometry.DegenerateRangeError{Min: r.Left(), Max: r.Right()}
	}
	return &geometry.DegenerateRangeError{Min: r.Top(), Max: r.Bottom()}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WindowBounds returns the screen-space rectangle.
func (v *Viewport) WindowBounds() geometry.Rect {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.window
}

// MathBounds returns the complex-plane rectangle.
func (v *Viewport) MathBounds() geometry.Rect {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.math
}

// Bounds returns window and math bounds as one consistent pair.
func (v *Viewport) Bounds() (window, mathBounds geometry.Rect) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.window, v.math
}

// SetMathBounds replaces the math bounds. A degenerate rectangle is rejected
// and the previous bounds are kept.
func (v *Viewport) SetMathBounds(r geometry.Rect) error {
	if err := validate(r); err != nil {
		return fmt.Errorf("set math bounds: %w", err)
	}
	v.mu.Lock()
	v.math = r
	v.mu.Unlock()

	logging.Logger().Debug("math bounds changed",
		"x", r.X, "y", r.Y, "width", r.Width, "height", r.Height)
	return nil
}

// SetWindowBounds replaces the window bounds. The pixel buffer must be
// reallocated at the new size before the next scan pass.
func (v *Viewport) SetWindowBounds(r geometry.Rect) error {
	if err := validate(r); err != nil {
		return fmt.Errorf("set window bounds: %w", err)
	}
	v.mu.Lock()
	v.window = r
	v.mu.Unlock()

	logging.Logger().Debug("window bounds changed", "width", r.Width, "height", r.Height)
	return nil
}

// ScreenToMath converts a window position to its point in the complex plane.
// This is the only place screen coordinates become math coordinates.
func (v *Viewport) ScreenToMath(sp geometry.Point2D) (geometry.Point2D, error) {
	v.mu.RLock()
	window, mathBounds := v.window, v.math
	v.mu.RUnlock()
	return geometry.MapRect(sp, window, mathBounds)
}

// ScreenToComplex maps pixel (x, y) of the window, counted from its top-left
// corner, to c = x + iy. Window and math bounds are read together.
func (v *Viewport) ScreenToComplex(x, y int) (complex128, error) {
	v.mu.RLock()
	window, mathBounds := v.window, v.math
	v.mu.RUnlock()

	sp := geometry.NewPoint2D(window.X+float64(x), window.Y+float64(y))
	p, err := geometry.MapRect(sp, window, mathBounds)
	if err != nil {
		return 0, err
	}
	return p.Complex(), nil
}
