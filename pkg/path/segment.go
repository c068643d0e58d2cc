package path

import "github.com/gucio321/desmosify/pkg/geom"

// Segment is an absolute piece of a path. It is one of MoveTo, LineTo, QuadTo, CubicTo
// and ClosePath. Start always equals the End of the previous segment of the same path.
type Segment interface {
	Start() geom.Point
	End() geom.Point
	// Map returns a copy of the segment with fn applied to every point.
	Map(fn func(geom.Point) geom.Point) Segment

	isSegment()
}

var (
	_ Segment = MoveTo{}
	_ Segment = LineTo{}
	_ Segment = QuadTo{}
	_ Segment = CubicTo{}
	_ Segment = ClosePath{}
)

type MoveTo struct {
	P geom.Point
}

func (s MoveTo) Start() geom.Point { return s.P }
func (s MoveTo) End() geom.Point   { return s.P }
func (MoveTo) isSegment()          {}

func (s MoveTo) Map(fn func(geom.Point) geom.Point) Segment {
	return MoveTo{fn(s.P)}
}

type LineTo struct {
	P0, P1 geom.Point
}

func (s LineTo) Start() geom.Point { return s.P0 }
func (s LineTo) End() geom.Point   { return s.P1 }
func (LineTo) isSegment()          {}

func (s LineTo) Map(fn func(geom.Point) geom.Point) Segment {
	return LineTo{fn(s.P0), fn(s.P1)}
}

type QuadTo struct {
	P0, P1, P2 geom.Point
}

func (s QuadTo) Start() geom.Point { return s.P0 }
func (s QuadTo) End() geom.Point   { return s.P2 }
func (QuadTo) isSegment()          {}

func (s QuadTo) Map(fn func(geom.Point) geom.Point) Segment {
	return QuadTo{fn(s.P0), fn(s.P1), fn(s.P2)}
}

func (s QuadTo) Quad() geom.Quad {
	return geom.Quad{P0: s.P0, P1: s.P1, P2: s.P2}
}

type CubicTo struct {
	P0, P1, P2, P3 geom.Point
}

func (s CubicTo) Start() geom.Point { return s.P0 }
func (s CubicTo) End() geom.Point   { return s.P3 }
func (CubicTo) isSegment()          {}

func (s CubicTo) Map(fn func(geom.Point) geom.Point) Segment {
	return CubicTo{fn(s.P0), fn(s.P1), fn(s.P2), fn(s.P3)}
}

func (s CubicTo) Cubic() geom.Cubic {
	return geom.Cubic{P0: s.P0, P1: s.P1, P2: s.P2, P3: s.P3}
}

// ClosePath is the implicit line from P0 back to the first point of the subpath.
type ClosePath struct {
	P0, SubpathStart geom.Point
}

func (s ClosePath) Start() geom.Point { return s.P0 }
func (s ClosePath) End() geom.Point   { return s.SubpathStart }
func (ClosePath) isSegment()          {}

func (s ClosePath) Map(fn func(geom.Point) geom.Point) Segment {
	return ClosePath{fn(s.P0), fn(s.SubpathStart)}
}

// Sample returns points along s: both ends for straight segments and steps+1 evenly
// spaced points for curves. MoveTo yields only its point.
func Sample(s Segment, steps int) []geom.Point {
	var controls []geom.Point

	switch s := s.(type) {
	case MoveTo:
		return []geom.Point{s.P}
	case QuadTo:
		controls = []geom.Point{s.P0, s.P1, s.P2}
	case CubicTo:
		controls = []geom.Point{s.P0, s.P1, s.P2, s.P3}
	default:
		return []geom.Point{s.Start(), s.End()}
	}

	steps = max(steps, 1)
	result := make([]geom.Point, steps+1)
	for i := range result {
		result[i] = geom.Bezier(float64(i)/float64(steps), controls...)
	}

	return result
}
