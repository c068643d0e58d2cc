// Package flatten approximates cubic Bézier segments with chains of quadratic ones.
package flatten

import (
	"math"

	"honnef.co/go/curve"

	"github.com/gucio321/desmosify/pkg/geom"
)

const (
	// DefaultTolerance is the maximum deviation used when the caller has no preference.
	DefaultTolerance = 0.3
	// MaxSegments caps the number of quadratics produced for one cubic.
	// Flattening stops there even when the tolerance is not met yet.
	MaxSegments = 256

	samplesPerPiece = 16
)

// Flatten converts a cubic into quadratics whose concatenation stays within tolerance of it.
//
// The cubic is split into n pieces of equal parameter length and every piece is replaced by
// the quadratic curve.CubicBez.Quadratics fits to it. n starts at the piece count Quadratics
// picks for tolerance and grows until the sampled deviation of every piece fits, but never
// past MaxSegments.
//
// The result is never empty. Its first start point is c.P0 and its last end point is c.P3,
// bit for bit, and every junction point is shared by both neighbours.
func Flatten(c geom.Cubic, tolerance float64) []geom.Quad {
	cb := c.Curve()

	for n := estimate(cb, tolerance); n < MaxSegments; n++ {
		quads := split(cb, n)
		if fits(cb, quads, tolerance) {
			return pin(c, quads)
		}
	}

	return pin(c, split(cb, MaxSegments))
}

// estimate counts the quadratics curve.CubicBez.Quadratics produces for tolerance, up to MaxSegments.
func estimate(c curve.CubicBez, tolerance float64) int {
	if !(tolerance > 0) {
		return MaxSegments
	}

	n := 0
	for range c.Quadratics(tolerance) {
		if n++; n >= MaxSegments {
			break
		}
	}

	return n
}

// split cuts c into n pieces of equal parameter length. Neighbouring pieces evaluate their
// shared junction at the same parameter, so they agree exactly.
func split(c curve.CubicBez, n int) []geom.Quad {
	result := make([]geom.Quad, 0, n)
	for i := range n {
		piece := c.Subsegment(float64(i)/float64(n), float64(i+1)/float64(n))
		// an infinite accuracy keeps the piece in one quadratic
		for q := range piece.Quadratics(math.Inf(1)) {
			result = append(result, geom.QuadFromCurve(q.Segment))
		}
	}

	return result
}

func pin(c geom.Cubic, quads []geom.Quad) []geom.Quad {
	quads[0].P0 = c.P0
	quads[len(quads)-1].P2 = c.P3

	return quads
}

// fits samples every quadratic against the matching stretch of the cubic.
// Parametric distance never underestimates the geometric one, so this is conservative.
func fits(c curve.CubicBez, quads []geom.Quad, tolerance float64) bool {
	n := float64(len(quads))
	for i, q := range quads {
		t0 := float64(i) / n
		qb := q.Curve()
		for s := 1; s < samplesPerPiece; s++ {
			u := float64(s) / samplesPerPiece
			if deviation := qb.Eval(u).Distance(c.Eval(t0 + u/n)); deviation > tolerance {
				return false
			}
		}
	}

	return true
}
