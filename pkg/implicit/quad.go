package implicit

import (
	"fmt"
	"math"

	"github.com/gucio321/desmosify/pkg/geom"
)

// DefaultEpsilon is the magnitude below which a unit-scale coefficient counts as zero.
const DefaultEpsilon = 1e-9

var defaultImplicitizer = Implicitizer{Epsilon: DefaultEpsilon}

// Implicitizer builds conic equations out of segments.
type Implicitizer struct {
	// Epsilon is the magnitude below which all coefficients of a quadratic, computed with
	// its control points scaled to a unit box, must fall for it to be treated as degenerate.
	Epsilon float64
}

// Quad calls (Implicitizer).Quad with DefaultEpsilon.
func Quad(p0, p1, p2 geom.Point) (Conic, error) {
	return defaultImplicitizer.Quad(p0, p1, p2)
}

// Line calls Line; it exists so that Implicitizer covers every segment kind.
func (im Implicitizer) Line(p0, p1 geom.Point) (Conic, error) {
	return Line(p0, p1)
}

// Quad returns the equation of the quadratic Bézier with control points p0, p1, p2.
//
// With the curve written as X = Ax·t + Bx·t², Y = Ay·t + By·t² (X = x - x0, Y = y - y0)
// and Δ = By·Ax - Bx·Ay, the parameter satisfies Δ·t = By·X - Bx·Y, which gives
//
//	(By·X - Bx·Y)² + Δ·(Ay·X - Ax·Y) = 0
//
// Eliminating t through x alone yields Bx times this equation and through y alone By times
// it. The coefficients are computed with the control points translated to p0 and scaled by
// the extent of their hull, so Epsilon does not depend on where the curve is or how large
// it is. When all of them are within Epsilon of zero p1 lies halfway between p0 and p2 and
// the line from p0 to p2 is returned instead.
func (im Implicitizer) Quad(p0, p1, p2 geom.Point) (Conic, error) {
	if !p0.IsFinite() || !p1.IsFinite() || !p2.IsFinite() {
		return Conic{}, fmt.Errorf("%w: quadratic %v %v %v has a non-finite control point", ErrInvalidSegment, p0, p1, p2)
	}

	extent := hullExtent(p0, p1, p2)
	if math.IsInf(extent, 0) {
		return Conic{}, fmt.Errorf("%w: quadratic %v %v %v overflows", ErrInvalidSegment, p0, p1, p2)
	}

	if extent == 0 {
		return im.Line(p0, p2)
	}

	p := params(p0, p1, p2, extent)
	unit := [5]float64{
		p.by * p.by,
		-2 * p.bx * p.by,
		p.bx * p.bx,
		p.delta * p.ay,
		-p.delta * p.ax,
	}

	if im.vanishes(unit[:]...) {
		return im.Line(p0, p2)
	}

	result := parabolic(p0, p1, p2)
	result.A, result.B, result.C, result.D, result.E, result.F = shift(
		unit[0], unit[1], unit[2],
		unit[3]*extent, unit[4]*extent,
		p0.X, p0.Y,
	)

	if !result.IsFinite() {
		return Conic{}, fmt.Errorf("%w: quadratic %v %v %v overflows", ErrInvalidSegment, p0, p1, p2)
	}

	return result, nil
}

// vanishes reports whether every value is within epsilon of zero.
func (im Implicitizer) vanishes(values ...float64) bool {
	for _, v := range values {
		if !(math.Abs(v) <= im.Epsilon) {
			return false
		}
	}

	return true
}

// hullExtent is the largest coordinate distance of p1 and p2 from p0.
func hullExtent(p0, p1, p2 geom.Point) float64 {
	result := 0.0
	for _, p := range []geom.Point{p1, p2} {
		d := p.Sub(p0)
		result = max(result, math.Abs(d.X), math.Abs(d.Y))
	}

	return result
}

type bezierParams struct {
	ax, ay float64
	bx, by float64
	delta  float64
}

// params writes the quadratic as p0 + extent·(A·t + B·t²).
func params(p0, p1, p2 geom.Point, extent float64) bezierParams {
	d1, d2 := p1.Sub(p0), p2.Sub(p0)
	u1 := geom.Pt(d1.X/extent, d1.Y/extent)
	u2 := geom.Pt(d2.X/extent, d2.Y/extent)

	ax, ay := 2*u1.X, 2*u1.Y
	bx, by := u2.X-2*u1.X, u2.Y-2*u1.Y

	return bezierParams{
		ax: ax, ay: ay,
		bx: bx, by: by,
		delta: by*ax - bx*ay,
	}
}

func parabolic(p0, p1, p2 geom.Point) Conic {
	return Conic{
		Kind:    Parabolic,
		XDomain: Span(p0.X, p1.X, p2.X),
		YRange:  Span(p0.Y, p1.Y, p2.Y),
	}
}

// shift expands α·X² + β·XY + γ·Y² + δ·X + ε·Y = 0 with X = x - x0 and Y = y - y0
// into coefficients over x and y.
func shift(alpha, beta, gamma, delta, epsilon, x0, y0 float64) (a, b, c, d, e, f float64) {
	a, b, c = alpha, beta, gamma
	d = delta - 2*alpha*x0 - beta*y0
	e = epsilon - beta*x0 - 2*gamma*y0
	f = alpha*x0*x0 + beta*x0*y0 + gamma*y0*y0 - delta*x0 - epsilon*y0

	return a, b, c, d, e, f
}
