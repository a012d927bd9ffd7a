package canvas

import "fractal-explorer/pkg/geometry"

// selection is the rubber-band box, in frame pixels.
type selection struct {
	active     bool
	start, end geometry.Point2D
}

func (s *selection) begin(p geometry.Point2D) {
	s.active = true
	s.start = p
	s.end = p
}

func (s *selection) clear() {
	*s = selection{}
}

// moved reports whether the box has both a width and a height.
func (s *selection) moved() bool {
	return s.start.X != s.end.X && s.start.Y != s.end.Y
}

func (s *selection) rect() geometry.Rect {
	if !s.active {
		return geometry.Rect{}
	}
	return geometry.RectFromCorners(s.start, s.end)
}
