package geometry

import (
	"errors"
	"fmt"
)

// ErrDegenerateRange is matched by every *DegenerateRangeError.
var ErrDegenerateRange = errors.New("degenerate range")

// DegenerateRangeError reports a mapping whose source range has zero width.
// It usually means a zero-area rectangle was let through upstream.
type DegenerateRangeError struct {
	Min, Max float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("cannot map within a zero range: min and max are both %g", e.Min)
}

// Is lets errors.Is(err, ErrDegenerateRange) match.
func (e *DegenerateRangeError) Is(target error) bool {
	return target == ErrDegenerateRange
}

// Map places value at the same relative position within [dstMin, dstMax]
// that it has within [srcMin, srcMax]. value may lie outside the source
// range; the result is extrapolated, never clamped.
func Map(value, srcMin, srcMax, dstMin, dstMax float64) (float64, error) {
	if srcMin == srcMax {
		return 0, &DegenerateRangeError{Min: srcMin, Max: srcMax}
	}
	return dstMin + (dstMax-dstMin)*(value-srcMin)/(srcMax-srcMin), nil
}

// MapRect maps p from the coordinate frame of src into that of dst, one axis
// at a time.
func MapRect(p Point2D, src, dst Rect) (Point2D, error) {
	x, err := Map(p.X, src.Left(), src.Right(), dst.Left(), dst.Right())
	if err != nil {
		return Point2D{}, fmt.Errorf("x axis: %w", err)
	}
	y, err := Map(p.Y, src.Top(), src.Bottom(), dst.Top(), dst.Bottom())
	if err != nil {
		return Point2D{}, fmt.Errorf("y axis: %w", err)
	}
	return Point2D{X: x, Y: y}, nil
}
