// Package desmosify turns SVG paths into Desmos equations.
package desmosify

import (
	"context"
	"errors"

	"github.com/gucio321/desmosify/pkg/flatten"
	"github.com/gucio321/desmosify/pkg/geom"
	"github.com/gucio321/desmosify/pkg/implicit"
	"github.com/gucio321/desmosify/pkg/ingest"
	"github.com/gucio321/desmosify/pkg/path"
	"github.com/gucio321/desmosify/pkg/profile"
	"github.com/kpango/glg"
)

var ErrEmpty = errors.New("no path commands to convert")

type Converter struct {
	scale     float64
	flipY     bool
	tolerance float64
	epsilon   float64
	workers   int
	strict    bool
	commands  []path.Command
}

func NewConverter(commands ...path.Command) *Converter {
	return &Converter{
		scale:     1.0,
		tolerance: flatten.DefaultTolerance,
		epsilon:   implicit.DefaultEpsilon,
		workers:   1,
		commands:  commands,
	}
}

// Parse reads an SVG document through rustyoz/svg.
func Parse(data []byte) (*Converter, error) {
	commands, err := ingest.FromSVG(data)
	if err != nil {
		return nil, err
	}

	return NewConverter(commands...), nil
}

// ParseDocument reads the d attribute of every <path> in an SVG document.
// Unlike Parse it keeps quadratic, smooth and relative commands.
func ParseDocument(data []byte) (*Converter, error) {
	commands, err := ingest.FromDocument(data)
	if err != nil {
		return nil, err
	}

	return NewConverter(commands...), nil
}

// ParsePathData reads a single path data string like "M 0 0 L 4 0".
func ParsePathData(d string) (*Converter, error) {
	commands, err := ingest.ParsePathData(d)
	if err != nil {
		return nil, err
	}

	return NewConverter(commands...), nil
}

func (c *Converter) Scale(scale float64) *Converter {
	c.scale = scale
	return c
}

// FlipY negates y so that the drawing is upright on a graph.
func (c *Converter) FlipY(flip bool) *Converter {
	c.flipY = flip
	return c
}

func (c *Converter) Tolerance(tolerance float64) *Converter {
	c.tolerance = tolerance
	return c
}

func (c *Converter) Epsilon(epsilon float64) *Converter {
	c.epsilon = epsilon
	return c
}

func (c *Converter) Workers(workers int) *Converter {
	c.workers = workers
	return c
}

func (c *Converter) Strict(strict bool) *Converter {
	c.strict = strict
	return c
}

// Profile applies scale, flip and tolerance from p.
func (c *Converter) Profile(p *profile.Profile) *Converter {
	return c.Scale(p.Scale).FlipY(p.FlipY).Tolerance(p.Tolerance)
}

func (c *Converter) Commands() []path.Command {
	return c.commands
}

func (c *Converter) transform(p geom.Point) geom.Point {
	if c.flipY {
		p.Y = -p.Y
	}

	return p.Mul(c.scale)
}

// Convert produces the equations. Segments in the result are already scaled and flipped.
func (c *Converter) Convert(ctx context.Context) (*path.Result, error) {
	if len(c.commands) == 0 {
		return nil, ErrEmpty
	}

	n := path.NewNormalizer().
		SetTolerance(c.tolerance).
		SetEpsilon(c.epsilon).
		SetWorkers(c.workers).
		Strict(c.strict)

	if c.scale != 1 || c.flipY {
		n.SetTransform(c.transform)
	}

	glg.Debugf("converting %d commands (scale %g, tolerance %g, %d workers)", len(c.commands), c.scale, c.tolerance, c.workers)

	result, err := n.Process(ctx, c.commands)
	if err != nil {
		return nil, err
	}

	glg.Infof("%d segments converted into %d equations", len(result.Segments), len(result.Equations))

	if len(result.Diagnostics) > 0 {
		glg.Warnf("%d segments were skipped", len(result.Diagnostics))
	}

	return result, nil
}
