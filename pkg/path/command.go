// Package path turns an ordered list of drawing commands into implicit conic equations.
//
// It works in two passes. Normalize walks the commands once, tracks the current point and
// produces absolute Segments. Implicitize then converts every segment on its own: cubics are
// flattened into quadratics first, lines and quadratics go straight to the implicitizer.
package path

import (
	"fmt"
	"strings"

	"github.com/gucio321/desmosify/pkg/geom"
)

// Command is a single path-data command.
// Args are laid out the way SVG path data lays them out (x y pairs, H/V take a single value,
// arcs take rx ry rotation large-arc sweep x y).
type Command struct {
	Kind     Kind
	Relative bool
	Args     []float64
}

// Abs is a shorthand for an absolute command.
func Abs(kind Kind, args ...float64) Command {
	return Command{Kind: kind, Args: args}
}

// Rel is a shorthand for a relative command.
func Rel(kind Kind, args ...float64) Command {
	return Command{Kind: kind, Relative: true, Args: args}
}

// String returns the command in SVG path-data syntax.
func (c Command) String() string {
	letter := c.Kind.Letter()
	if letter == 0 {
		return c.Kind.String()
	}

	if c.Relative {
		letter += 'a' - 'A'
	}

	var sb strings.Builder
	sb.WriteByte(letter)
	for _, arg := range c.Args {
		fmt.Fprintf(&sb, " %g", arg)
	}

	return sb.String()
}

func (c Command) point(current geom.Point, i int) geom.Point {
	p := geom.Pt(c.Args[i], c.Args[i+1])
	if c.Relative {
		return current.Add(p)
	}

	return p
}
