// Package escape implements escape-time evaluation for points of the
// complex plane.
package escape

// NotEscaped is returned for points still bounded after MaxIterations.
const NotEscaped = -1

// DefaultMaxIterations is used when Mandelbrot.MaxIterations is not positive.
const DefaultMaxIterations = 500

// bailout is |z|^2 beyond which the orbit is known to diverge.
const bailout = 4.0

// Mandelbrot iterates z -> z*z + c from z = 0.
type Mandelbrot struct {
	MaxIterations int
}

// Evaluate returns the number of iterations before |z| exceeds 2, or
// NotEscaped if that never happens within the iteration cap.
func (m Mandelbrot) Evaluate(c complex128) int {
	limit := m.MaxIterations
	if limit <= 0 {
		limit = DefaultMaxIterations
	}

	cr, ci := real(c), imag(c)
	var zr, zi float64
	for n := 0; n < limit; n++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > bailout {
			return n
		}
	}
	return NotEscaped
}
