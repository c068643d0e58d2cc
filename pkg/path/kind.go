package path

import "fmt"

// Kind tells what a Command draws.
type Kind int

const (
	// Move starts a new subpath (SVG M/m).
	Move Kind = iota
	// Line draws a straight line (SVG L/l).
	Line
	// HorizontalLine draws a line keeping Y (SVG H/h).
	HorizontalLine
	// VerticalLine draws a line keeping X (SVG V/v).
	VerticalLine
	// CubicCurve draws a cubic Bézier (SVG C/c).
	CubicCurve
	// SmoothCubicCurve draws a cubic Bézier whose first control point mirrors the previous one (SVG S/s).
	SmoothCubicCurve
	// QuadraticCurve draws a quadratic Bézier (SVG Q/q).
	QuadraticCurve
	// SmoothQuadraticCurve draws a quadratic Bézier whose control point mirrors the previous one (SVG T/t).
	SmoothQuadraticCurve
	// Arc draws an elliptical arc (SVG A/a). Arcs are not converted.
	Arc
	// Close draws a line back to the start of the subpath (SVG Z/z).
	Close
)

var kindInfo = []struct {
	name   string
	letter byte
	arity  int
}{
	Move:                 {"move", 'M', 2},
	Line:                 {"line", 'L', 2},
	HorizontalLine:       {"horizontal-line", 'H', 1},
	VerticalLine:         {"vertical-line", 'V', 1},
	CubicCurve:           {"cubic-curve", 'C', 6},
	SmoothCubicCurve:     {"smooth-cubic-curve", 'S', 4},
	QuadraticCurve:       {"quadratic-curve", 'Q', 4},
	SmoothQuadraticCurve: {"smooth-quadratic-curve", 'T', 2},
	Arc:                  {"arc", 'A', 7},
	Close:                {"close", 'Z', 0},
}

func (k Kind) known() bool {
	return k >= 0 && int(k) < len(kindInfo)
}

func (k Kind) String() string {
	if !k.known() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindInfo[k].name
}

// Letter returns the upper-case SVG path-data letter of k, or 0 for unknown kinds.
func (k Kind) Letter() byte {
	if !k.known() {
		return 0
	}

	return kindInfo[k].letter
}

// Arity returns the number of numeric arguments k takes, or -1 for unknown kinds.
func (k Kind) Arity() int {
	if !k.known() {
		return -1
	}

	return kindInfo[k].arity
}

// KindByLetter maps upper-case SVG path-data letters to kinds.
var KindByLetter = func() map[byte]Kind {
	m := make(map[byte]Kind)
	for i := Move; i <= Close; i++ {
		m[i.Letter()] = i
	}
	return m
}()
