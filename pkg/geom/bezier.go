package geom

import (
	"math"

	"honnef.co/go/curve"
)

// Quad is a quadratic Bézier segment.
type Quad struct {
	P0, P1, P2 Point
}

// Cubic is a cubic Bézier segment.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// Curve returns q as a honnef.co/go/curve quadratic.
func (q Quad) Curve() curve.QuadBez {
	return curve.QuadBez{P0: curve.Point(q.P0), P1: curve.Point(q.P1), P2: curve.Point(q.P2)}
}

// QuadFromCurve is the inverse of Quad.Curve.
func QuadFromCurve(q curve.QuadBez) Quad {
	return Quad{Point(q.P0), Point(q.P1), Point(q.P2)}
}

func (q Quad) Eval(t float64) Point {
	return Point(q.Curve().Eval(t))
}

// Curve returns c as a honnef.co/go/curve cubic.
func (c Cubic) Curve() curve.CubicBez {
	return curve.CubicBez{P0: curve.Point(c.P0), P1: curve.Point(c.P1), P2: curve.Point(c.P2), P3: curve.Point(c.P3)}
}

func (c Cubic) Eval(t float64) Point {
	return Point(c.Curve().Eval(t))
}

// Bezier evaluates a Bézier curve of any degree given its control points.
// refer: http://zobaczycmatematyke.krk.pl/025-Zolkos-Krakow/bezier.html
func Bezier(t float64, points ...Point) Point {
	var result Point

	n := len(points) - 1
	for i, p := range points {
		d := binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
		result.X += p.X * d
		result.Y += p.Y * d
	}

	return result
}

func binomial(n, k int) float64 {
	return float64(factorial(n)) / float64(factorial(k)*factorial(n-k))
}

func factorial(n int) int {
	if n == 0 {
		return 1
	}

	return n * factorial(n-1)
}
