package implicit

import (
	"fmt"

	"github.com/gucio321/desmosify/pkg/geom"
)

// Line returns the equation of the segment from p0 to p1.
//
// Lines are emitted as the squared line (y - m·x - h)² = 0, which expands to
// m²x² - 2m·xy + y² + 2mh·x - 2h·y + h² = 0, restricted to the segment's x span.
// When the slope or any derived coefficient is not finite (vertical or nearly vertical lines)
// the equation x - x0 = 0 restricted to the segment's y span is returned instead.
func Line(p0, p1 geom.Point) (Conic, error) {
	if !p0.IsFinite() || !p1.IsFinite() {
		return Conic{}, fmt.Errorf("%w: line %v - %v has a non-finite end point", ErrInvalidSegment, p0, p1)
	}

	if p0 == p1 {
		return Conic{}, fmt.Errorf("%w: line %v - %v has zero length", ErrInvalidSegment, p0, p1)
	}

	m := (p1.Y - p0.Y) / (p1.X - p0.X)
	h := p0.Y - m*p0.X

	result := Conic{
		Kind:    Linear,
		A:       m * m,
		B:       -2 * m,
		C:       1,
		D:       2 * m * h,
		E:       -2 * h,
		F:       h * h,
		XDomain: Span(p0.X, p1.X),
	}

	if isFinite(m, h) && result.IsFinite() {
		return result, nil
	}

	return vertical(p0, p1), nil
}

func vertical(p0, p1 geom.Point) Conic {
	return Conic{
		Kind:   Linear,
		D:      1,
		F:      -p0.X,
		YRange: Span(p0.Y, p1.Y),
	}
}
