package path

import (
	"context"
	"errors"
	"fmt"

	"github.com/kpango/glg"
	"golang.org/x/sync/errgroup"

	"github.com/gucio321/desmosify/pkg/flatten"
	"github.com/gucio321/desmosify/pkg/geom"
	"github.com/gucio321/desmosify/pkg/implicit"
)

// Normalizer converts commands into conic equations.
type Normalizer struct {
	tolerance    float64
	implicitizer implicit.Implicitizer
	workers      int
	strict       bool
	transform    func(geom.Point) geom.Point
}

// Result is what Process produces.
type Result struct {
	Segments    []Segment
	Equations   []implicit.Conic
	Diagnostics []Diagnostic
}

// NewNormalizer creates a Normalizer with default settings:
// flatten.DefaultTolerance, implicit.DefaultEpsilon, one worker, invalid segments skipped.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		tolerance:    flatten.DefaultTolerance,
		implicitizer: implicit.Implicitizer{Epsilon: implicit.DefaultEpsilon},
		workers:      1,
	}
}

// SetTolerance sets the maximum deviation allowed when flattening cubics.
func (n *Normalizer) SetTolerance(tolerance float64) *Normalizer {
	n.tolerance = tolerance
	return n
}

// SetEpsilon sets the threshold for degenerate quadratics.
func (n *Normalizer) SetEpsilon(epsilon float64) *Normalizer {
	n.implicitizer.Epsilon = epsilon
	return n
}

// SetWorkers sets how many goroutines Implicitize may use.
func (n *Normalizer) SetWorkers(workers int) *Normalizer {
	n.workers = max(workers, 1)
	return n
}

// Strict makes Implicitize reject the whole path on the first invalid segment
// instead of skipping it.
func (n *Normalizer) Strict(strict bool) *Normalizer {
	n.strict = strict
	return n
}

// SetTransform sets a function applied to every point between Normalize and Implicitize.
func (n *Normalizer) SetTransform(fn func(geom.Point) geom.Point) *Normalizer {
	n.transform = fn
	return n
}

// Process runs Normalize, the optional transform and Implicitize.
func (n *Normalizer) Process(ctx context.Context, cmds []Command) (*Result, error) {
	segments, diagnostics := n.Normalize(cmds)

	if n.transform != nil {
		for i, s := range segments {
			segments[i] = s.Map(n.transform)
		}
	}

	equations, implicitDiagnostics, err := n.Implicitize(ctx, segments)
	diagnostics = append(diagnostics, implicitDiagnostics...)
	if err != nil {
		return nil, err
	}

	return &Result{
		Segments:    segments,
		Equations:   equations,
		Diagnostics: diagnostics,
	}, nil
}

// Normalize walks cmds in order, resolves relative and smooth commands against the current
// point and returns absolute segments. H and V become lines, S and T become full curves and
// Z becomes a ClosePath back to the start of the subpath.
// Commands that cannot be converted are skipped and reported; arcs still move the current point.
func (n *Normalizer) Normalize(cmds []Command) ([]Segment, []Diagnostic) {
	var (
		segments    []Segment
		diagnostics []Diagnostic
		current     geom.Point
		start       geom.Point
		// last control points, for S and T
		cubicControl, quadControl *geom.Point
	)

	skip := func(i int, cmd Command, err error) {
		d := Diagnostic{Index: i, Subject: cmd.String(), Err: err}
		glg.Warnf("Skipping command %s", d)
		diagnostics = append(diagnostics, d)
	}

	for i, cmd := range cmds {
		if arity := cmd.Kind.Arity(); arity >= 0 && len(cmd.Args) != arity {
			skip(i, cmd, fmt.Errorf("%w: %s takes %d, got %d", ErrArgumentCount, cmd.Kind, arity, len(cmd.Args)))
			continue
		}

		var nextCubicControl, nextQuadControl *geom.Point

		switch cmd.Kind {
		case Move:
			p := cmd.point(current, 0)
			segments = append(segments, MoveTo{p})
			current, start = p, p
		case Line:
			p := cmd.point(current, 0)
			segments = append(segments, LineTo{current, p})
			current = p
		case HorizontalLine:
			p := geom.Pt(cmd.Args[0], current.Y)
			if cmd.Relative {
				p.X += current.X
			}

			segments = append(segments, LineTo{current, p})
			current = p
		case VerticalLine:
			p := geom.Pt(current.X, cmd.Args[0])
			if cmd.Relative {
				p.Y += current.Y
			}

			segments = append(segments, LineTo{current, p})
			current = p
		case CubicCurve, SmoothCubicCurve:
			args := 0
			c1 := current
			if cmd.Kind == CubicCurve {
				c1 = cmd.point(current, 0)
				args = 2
			} else if cubicControl != nil {
				c1 = cubicControl.Reflect(current)
			}

			c2 := cmd.point(current, args)
			p := cmd.point(current, args+2)
			segments = append(segments, CubicTo{current, c1, c2, p})
			current = p
			nextCubicControl = &c2
		case QuadraticCurve, SmoothQuadraticCurve:
			args := 0
			c := current
			if cmd.Kind == QuadraticCurve {
				c = cmd.point(current, 0)
				args = 2
			} else if quadControl != nil {
				c = quadControl.Reflect(current)
			}

			p := cmd.point(current, args)
			segments = append(segments, QuadTo{current, c, p})
			current = p
			nextQuadControl = &c
		case Close:
			segments = append(segments, ClosePath{current, start})
			current = start
		case Arc:
			skip(i, cmd, ErrUnsupportedCommand)
			current = cmd.point(current, 5)
		default:
			skip(i, cmd, ErrUnsupportedCommand)
		}

		cubicControl, quadControl = nextCubicControl, nextQuadControl
	}

	return segments, diagnostics
}

// Implicitize converts segments into equations, keeping their order. A cubic yields one equation
// per flattened quadratic, MoveTo and zero-length ClosePath yield nothing.
//
// Segments failing with implicit.ErrInvalidSegment are skipped and reported, or abort the
// conversion in strict mode.
func (n *Normalizer) Implicitize(ctx context.Context, segments []Segment) ([]implicit.Conic, []Diagnostic, error) {
	results := make([][]implicit.Conic, len(segments))
	errs := make([]error, len(segments))

	if n.workers <= 1 {
		for i, s := range segments {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}

			results[i], errs[i] = n.implicitize(s)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(n.workers)
		for i, s := range segments {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				results[i], errs[i] = n.implicitize(s)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	var (
		equations   []implicit.Conic
		diagnostics []Diagnostic
	)

	for i, err := range errs {
		if err == nil {
			equations = append(equations, results[i]...)
			continue
		}

		if n.strict || !errors.Is(err, implicit.ErrInvalidSegment) {
			return nil, diagnostics, fmt.Errorf("cant implicitize segment %d: %w", i, err)
		}

		d := Diagnostic{Index: i, Subject: fmt.Sprintf("%T", segments[i]), Err: err}
		glg.Warnf("Skipping segment %s", d)
		diagnostics = append(diagnostics, d)
	}

	return equations, diagnostics, nil
}

func (n *Normalizer) implicitize(s Segment) ([]implicit.Conic, error) {
	switch s := s.(type) {
	case MoveTo:
		return nil, nil
	case LineTo:
		return one(n.implicitizer.Line(s.P0, s.P1))
	case ClosePath:
		if s.P0 == s.SubpathStart {
			return nil, nil
		}

		return one(n.implicitizer.Line(s.P0, s.SubpathStart))
	case QuadTo:
		return one(n.implicitizer.Quad(s.P0, s.P1, s.P2))
	case CubicTo:
		quads := flatten.Flatten(s.Cubic(), n.tolerance)
		result := make([]implicit.Conic, 0, len(quads))
		for _, q := range quads {
			c, err := n.implicitizer.Quad(q.P0, q.P1, q.P2)
			if err != nil {
				return nil, err
			}

			result = append(result, c)
		}

		return result, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedCommand, s)
}

func one(c implicit.Conic, err error) ([]implicit.Conic, error) {
	if err != nil {
		return nil, err
	}

	return []implicit.Conic{c}, nil
}
