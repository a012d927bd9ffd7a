// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"image"
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
// The same type is used for screen (pixel) and mathematical coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Complex returns the point as a complex number (X real, Y imaginary).
func (p Point2D) Complex() complex128 {
	return complex(p.X, p.Y)
}

// Rect represents a rectangle with floating-point coordinates.
// X, Y is the top-left corner; Width and Height are non-negative when the
// rectangle was built with RectFromCorners.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners builds a normalized rectangle from two arbitrary corners,
// so the result is the same whichever way a drag went.
func RectFromCorners(p1, p2 Point2D) Rect {
	return Rect{
		X:      math.Min(p1.X, p2.X),
		Y:      math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// IsDegenerate reports whether the rectangle has a zero or non-finite extent
// on either axis. Such a rectangle cannot serve as a mapping range.
func (r Rect) IsDegenerate() bool {
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return r.Width == 0 || r.Height == 0
}

// Pixels returns the integer image rectangle covering r: the origin is
// truncated and the right and bottom edges are rounded up, so every pixel
// column i with int(r.X) <= i < r.Right() is included.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())))
}
