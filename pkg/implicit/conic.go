// Package implicit converts line and quadratic Bézier segments into implicit conic equations
// of the form a·x² + b·xy + c·y² + d·x + e·y + f = 0, each restricted to the bounding box of
// the segment it came from.
package implicit

import (
	"fmt"
	"math"
)

// Kind tells what kind of segment a Conic was built from.
type Kind int

const (
	// Linear equations come from lines. They carry XDomain, or YRange for vertical lines.
	Linear Kind = iota // linear
	// Parabolic equations come from quadratic Béziers. They carry both XDomain and YRange.
	Parabolic // parabolic
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Parabolic:
		return "parabolic"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Interval is a closed interval [Min, Max].
type Interval struct {
	Min, Max float64
}

// Span returns the smallest interval containing all values.
func Span(values ...float64) *Interval {
	result := &Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		result.Min = min(result.Min, v)
		result.Max = max(result.Max, v)
	}

	return result
}

func (i Interval) Contains(v float64) bool {
	return i.Min <= v && v <= i.Max
}

// Conic is the equation A·x² + B·xy + C·y² + D·x + E·y + F = 0 restricted to XDomain and YRange.
// A nil XDomain or YRange means the equation is not restricted along that axis.
type Conic struct {
	A, B, C, D, E, F float64

	Kind    Kind
	XDomain *Interval
	YRange  *Interval
}

// Eval substitutes (x, y) into the equation and returns the residual.
func (c Conic) Eval(x, y float64) float64 {
	return c.A*x*x + c.B*x*y + c.C*y*y + c.D*x + c.E*y + c.F
}

// Coefficients returns A, B, C, D, E and F in this order.
func (c Conic) Coefficients() [6]float64 {
	return [6]float64{c.A, c.B, c.C, c.D, c.E, c.F}
}

// IsFinite reports whether no coefficient nor bound is NaN or infinite.
func (c Conic) IsFinite() bool {
	for _, v := range c.Coefficients() {
		if !isFinite(v) {
			return false
		}
	}

	for _, i := range []*Interval{c.XDomain, c.YRange} {
		if i != nil && (!isFinite(i.Min) || !isFinite(i.Max)) {
			return false
		}
	}

	return true
}

// Contains reports whether (x, y) lies inside the domain and range restrictions.
func (c Conic) Contains(x, y float64) bool {
	if c.XDomain != nil && !c.XDomain.Contains(x) {
		return false
	}

	if c.YRange != nil && !c.YRange.Contains(y) {
		return false
	}

	return true
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
