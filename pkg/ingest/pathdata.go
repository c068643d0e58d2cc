// Package ingest reads drawing commands out of SVG documents and SVG path data.
package ingest

import (
	"fmt"
	"strconv"

	"github.com/gucio321/desmosify/pkg/path"
)

// ParsePathData parses the value of an SVG path "d" attribute.
// Relative commands stay relative; resolving them is the job of path.Normalizer.
// Repeated argument groups after a command letter repeat the command, except after
// moveto where they become lineto, as SVG requires.
func ParsePathData(d string) ([]path.Command, error) {
	s := &scanner{data: d}

	var (
		result   []path.Command
		kind     path.Kind
		relative bool
		started  bool
	)

	for {
		s.skipSeparators()
		c, ok := s.peek()
		if !ok {
			break
		}

		if isLetter(c) {
			k, known := path.KindByLetter[upper(c)]
			if !known {
				return nil, fmt.Errorf("%w: unknown command %q at %d", ErrSyntax, c, s.pos)
			}

			s.pos++
			kind, relative, started = k, c != upper(c), true

			if kind == path.Close {
				result = append(result, path.Command{Kind: kind, Relative: relative})
				continue
			}
		} else if !started || kind == path.Close {
			return nil, fmt.Errorf("%w: number without command at %d", ErrSyntax, s.pos)
		}

		cmd, err := s.arguments(kind, relative)
		if err != nil {
			return nil, err
		}

		result = append(result, cmd)

		if kind == path.Move {
			kind = path.Line
		}
	}

	return result, nil
}

// scanner is a read cursor over an immutable path-data string.
type scanner struct {
	data string
	pos  int
}

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}

	return s.data[s.pos], true
}

func (s *scanner) skipSeparators() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) arguments(kind path.Kind, relative bool) (path.Command, error) {
	args := make([]float64, kind.Arity())
	for i := range args {
		var err error

		// large-arc and sweep flags may be written without separators ("a1 1 0 011 1")
		if kind == path.Arc && (i == 3 || i == 4) {
			args[i], err = s.flag()
		} else {
			args[i], err = s.number()
		}

		if err != nil {
			return path.Command{}, fmt.Errorf("cant parse argument %d of %s: %w", i+1, kind, err)
		}
	}

	return path.Command{Kind: kind, Relative: relative, Args: args}, nil
}

// number reads [sign] digits [. digits] [e [sign] digits]. "1.5.5" reads as 1.5 then .5.
func (s *scanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos

	s.sign()
	digits := s.digits()
	if c, ok := s.peek(); ok && c == '.' {
		s.pos++
		digits += s.digits()
	}

	if digits == 0 {
		return 0, fmt.Errorf("%w: expected number at %d", ErrSyntax, start)
	}

	if c, ok := s.peek(); ok && (c == 'e' || c == 'E') {
		mark := s.pos
		s.pos++
		s.sign()
		if s.digits() == 0 {
			// not an exponent, leave it for the next token
			s.pos = mark
		}
	}

	v, err := strconv.ParseFloat(s.data[start:s.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return v, nil
}

func (s *scanner) flag() (float64, error) {
	s.skipSeparators()
	c, ok := s.peek()
	if !ok || (c != '0' && c != '1') {
		return 0, fmt.Errorf("%w: expected flag at %d", ErrSyntax, s.pos)
	}

	s.pos++

	return float64(c - '0'), nil
}

func (s *scanner) sign() {
	if c, ok := s.peek(); ok && (c == '+' || c == '-') {
		s.pos++
	}
}

func (s *scanner) digits() int {
	n := 0
	for c, ok := s.peek(); ok && c >= '0' && c <= '9'; c, ok = s.peek() {
		s.pos++
		n++
	}

	return n
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z' && c != 'e') || (c >= 'A' && c <= 'Z' && c != 'E')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
