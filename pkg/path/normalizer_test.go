package path

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/desmosify/pkg/flatten"
	"github.com/gucio321/desmosify/pkg/geom"
	"github.com/gucio321/desmosify/pkg/implicit"
)

func TestNormalizeAbsoluteAndRelative(t *testing.T) {
	cmds := []Command{
		Abs(Move, 1, 1),
		Rel(Line, 2, 0),
		Abs(VerticalLine, 4),
		Rel(HorizontalLine, -2),
		Abs(Close),
	}

	segments, diagnostics := NewNormalizer().Normalize(cmds)
	assert.Empty(t, diagnostics)

	want := []Segment{
		MoveTo{geom.Pt(1, 1)},
		LineTo{geom.Pt(1, 1), geom.Pt(3, 1)},
		LineTo{geom.Pt(3, 1), geom.Pt(3, 4)},
		LineTo{geom.Pt(3, 4), geom.Pt(1, 4)},
		ClosePath{geom.Pt(1, 4), geom.Pt(1, 1)},
	}
	if d := cmp.Diff(want, segments); d != "" {
		t.Error(d)
	}
}

func TestNormalizeCurves(t *testing.T) {
	cmds := []Command{
		Rel(Move, 10, 10),
		Rel(CubicCurve, 0, 5, 10, 5, 10, 0),
		Rel(SmoothCubicCurve, 10, -5, 10, 0),
		Abs(QuadraticCurve, 40, 20, 50, 10),
		Rel(SmoothQuadraticCurve, 10, 0),
	}

	segments, diagnostics := NewNormalizer().Normalize(cmds)
	assert.Empty(t, diagnostics)

	want := []Segment{
		MoveTo{geom.Pt(10, 10)},
		CubicTo{geom.Pt(10, 10), geom.Pt(10, 15), geom.Pt(20, 15), geom.Pt(20, 10)},
		CubicTo{geom.Pt(20, 10), geom.Pt(20, 5), geom.Pt(30, 5), geom.Pt(30, 10)},
		QuadTo{geom.Pt(30, 10), geom.Pt(40, 20), geom.Pt(50, 10)},
		QuadTo{geom.Pt(50, 10), geom.Pt(60, 0), geom.Pt(60, 10)},
	}
	if d := cmp.Diff(want, segments); d != "" {
		t.Error(d)
	}
}

func TestNormalizeSmoothWithoutPredecessor(t *testing.T) {
	segments, _ := NewNormalizer().Normalize([]Command{
		Abs(Move, 0, 0),
		Abs(Line, 5, 0),
		Abs(SmoothQuadraticCurve, 10, 5),
	})

	require.Len(t, segments, 3)
	assert.Equal(t, QuadTo{geom.Pt(5, 0), geom.Pt(5, 0), geom.Pt(10, 5)}, segments[2])
}

func TestNormalizeContinuity(t *testing.T) {
	cmds := []Command{
		Abs(Move, 0, 0),
		Rel(Line, 1, 2),
		Rel(CubicCurve, 1, 1, 2, 2, 3, 0),
		Rel(QuadraticCurve, 1, 1, 2, 0),
		Rel(VerticalLine, 3),
		Abs(Close),
		Rel(Move, 5, 5),
		Rel(Line, 1, 0),
	}

	segments, _ := NewNormalizer().Normalize(cmds)
	for i := 1; i < len(segments); i++ {
		if _, ok := segments[i].(MoveTo); ok {
			continue
		}

		assert.Equal(t, segments[i-1].End(), segments[i].Start(), "segment %d", i)
	}

	// relative move after close starts from the subpath start
	assert.Equal(t, MoveTo{geom.Pt(5, 5)}, segments[6])
}

func TestNormalizeSkipsUnsupported(t *testing.T) {
	cmds := []Command{
		Abs(Move, 0, 0),
		Rel(Arc, 5, 5, 0, 0, 1, 10, 0),
		Rel(Line, 0, 10),
		{Kind: Kind(42), Args: []float64{1}},
		Abs(Line, 1, 2, 3),
	}

	segments, diagnostics := NewNormalizer().Normalize(cmds)

	require.Len(t, diagnostics, 3)
	assert.Equal(t, 1, diagnostics[0].Index)
	assert.ErrorIs(t, diagnostics[0].Err, ErrUnsupportedCommand)
	assert.Equal(t, 3, diagnostics[1].Index)
	assert.ErrorIs(t, diagnostics[1].Err, ErrUnsupportedCommand)
	assert.Equal(t, 4, diagnostics[2].Index)
	assert.ErrorIs(t, diagnostics[2].Err, ErrArgumentCount)

	// the arc still moved the pen
	require.Len(t, segments, 2)
	assert.Equal(t, LineTo{geom.Pt(10, 0), geom.Pt(10, 10)}, segments[1])
}

func TestImplicitizeSquare(t *testing.T) {
	res, err := NewNormalizer().Process(context.Background(), []Command{
		Abs(Move, 0, 0),
		Abs(Line, 4, 0),
		Abs(Line, 4, 4),
		Abs(Line, 0, 4),
		Abs(Close),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	require.Len(t, res.Equations, 4)

	assert.Equal(t, &implicit.Interval{Min: 0, Max: 4}, res.Equations[0].XDomain)
	// the right edge is vertical
	assert.Equal(t, [6]float64{0, 0, 0, 1, 0, -4}, res.Equations[1].Coefficients())
	// closing edge goes from (0, 4) back to (0, 0)
	assert.Equal(t, &implicit.Interval{Min: 0, Max: 4}, res.Equations[3].YRange)
}

func TestImplicitizeCubicUsesFlattener(t *testing.T) {
	cubic := CubicTo{geom.Pt(0, 0), geom.Pt(10, 30), geom.Pt(40, 30), geom.Pt(50, 0)}

	equations, diagnostics, err := NewNormalizer().
		SetTolerance(0.1).
		Implicitize(context.Background(), []Segment{MoveTo{cubic.P0}, cubic})
	require.NoError(t, err)
	assert.Empty(t, diagnostics)

	quads := flatten.Flatten(cubic.Cubic(), 0.1)
	require.Len(t, equations, len(quads))
	for i, q := range quads {
		for _, p := range []geom.Point{q.P0, q.P2, q.Eval(0.5)} {
			c := equations[i]
			assert.InDelta(t, 0, c.Eval(p.X, p.Y)/coefficientScale(c), 1e-9)
		}
	}
}

func TestProcessDecimalCoordinates(t *testing.T) {
	upright := func(p geom.Point) geom.Point {
		return geom.Pt(p.X*10, -p.Y*10)
	}

	res, err := NewNormalizer().SetTransform(upright).Process(context.Background(), []Command{
		Abs(Move, 10.01, 0),
		Abs(QuadraticCurve, 20.02, 5, 30.03, 0),
		Abs(Move, 10.01, 20),
		Abs(CubicCurve, 16.68, 10, 23.36, 10, 30.03, 20),
	})
	require.NoError(t, err)
	require.Len(t, res.Segments, 4)

	quad, ok := res.Segments[1].(QuadTo)
	require.True(t, ok)
	cubic, ok := res.Segments[3].(CubicTo)
	require.True(t, ok)

	pieces := append([]geom.Quad{quad.Quad()}, flatten.Flatten(cubic.Cubic(), flatten.DefaultTolerance)...)
	require.Len(t, res.Equations, len(pieces))

	for i, q := range pieces {
		c := res.Equations[i]
		assert.Equal(t, implicit.Parabolic, c.Kind)
		for _, ts := range []float64{0, 0.3, 0.5, 0.8, 1} {
			p := q.Eval(ts)
			assert.InDelta(t, 0, c.Eval(p.X, p.Y)/coefficientScale(c), 1e-9, "piece %d at t=%g", i, ts)
		}
	}
}

func TestImplicitizeInvalidSegment(t *testing.T) {
	segments := []Segment{
		MoveTo{geom.Pt(1, 1)},
		LineTo{geom.Pt(1, 1), geom.Pt(1, 1)},
		LineTo{geom.Pt(1, 1), geom.Pt(2, 3)},
		ClosePath{geom.Pt(1, 1), geom.Pt(1, 1)},
	}

	equations, diagnostics, err := NewNormalizer().Implicitize(context.Background(), segments)
	require.NoError(t, err)
	assert.Len(t, equations, 1)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, 1, diagnostics[0].Index)
	assert.ErrorIs(t, diagnostics[0].Err, implicit.ErrInvalidSegment)

	_, _, err = NewNormalizer().Strict(true).Implicitize(context.Background(), segments)
	assert.ErrorIs(t, err, implicit.ErrInvalidSegment)
}

func TestImplicitizeParallelKeepsOrder(t *testing.T) {
	var cmds []Command
	cmds = append(cmds, Abs(Move, 0, 0))
	for i := range 50 {
		cmds = append(cmds,
			Rel(Line, 3, float64(i%7)),
			Rel(QuadraticCurve, 2, 5, 4, float64(i%3)),
			Rel(CubicCurve, 1, 4, 6, -4, 8, 1),
		)
	}

	sequential, err := NewNormalizer().Process(context.Background(), cmds)
	require.NoError(t, err)

	parallel, err := NewNormalizer().SetWorkers(8).Process(context.Background(), cmds)
	require.NoError(t, err)

	if d := cmp.Diff(sequential.Equations, parallel.Equations); d != "" {
		t.Error(d)
	}
}

func TestImplicitizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewNormalizer().Implicitize(ctx, []Segment{LineTo{geom.Pt(0, 0), geom.Pt(1, 1)}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessTransform(t *testing.T) {
	flip := func(p geom.Point) geom.Point { return geom.Pt(p.X*10, -p.Y*10) }

	res, err := NewNormalizer().SetTransform(flip).Process(context.Background(), []Command{
		Abs(Move, 0, 0),
		Abs(Line, 1, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, LineTo{geom.Pt(0, 0), geom.Pt(10, -10)}, res.Segments[1])
	require.Len(t, res.Equations, 1)
	assert.Equal(t, &implicit.Interval{Min: 0, Max: 10}, res.Equations[0].XDomain)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "M 1 2", Abs(Move, 1, 2).String())
	assert.Equal(t, "q 1 2 3.5 4", Rel(QuadraticCurve, 1, 2, 3.5, 4).String())
	assert.Equal(t, "z", Rel(Close).String())
	assert.Equal(t, "Kind(42)", Command{Kind: 42}.String())
	assert.Equal(t, Close, KindByLetter['Z'])
}

func coefficientScale(c implicit.Conic) float64 {
	result := 0.0
	for _, v := range c.Coefficients() {
		result = max(result, math.Abs(v))
	}

	return result
}
