package desmos

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gucio321/desmosify/pkg/implicit"
)

// Builder collects equations and writes them out, one Desmos expression per line.
type Builder struct {
	format  Format
	records []Record
}

// NewBuilder creates new Builder with DefaultFormat.
func NewBuilder() *Builder {
	return &Builder{
		format: DefaultFormat,
	}
}

// SetPrecision sets the number of decimal places; -1 means shortest exact.
func (b *Builder) SetPrecision(precision int) *Builder {
	b.format.Precision = precision
	return b
}

// Compact drops zero terms and unit coefficients from equations pushed afterwards.
func (b *Builder) Compact(compact bool) *Builder {
	b.format.Compact = compact
	return b
}

// Push renders and appends equations.
func (b *Builder) Push(equations ...implicit.Conic) *Builder {
	for _, c := range equations {
		b.records = append(b.records, b.format.Record(c))
	}

	return b
}

func (b *Builder) Len() int {
	return len(b.records)
}

// String returns all expressions separated by new lines.
func (b *Builder) String() string {
	lines := make([]string, len(b.records))
	for i, r := range b.records {
		lines[i] = r.String()
	}

	return strings.Join(lines, "\n")
}

// JSON returns the records as an indented JSON array.
func (b *Builder) JSON() ([]byte, error) {
	records := b.records
	if records == nil {
		records = []Record{}
	}

	data, err := json.MarshalIndent(records, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("unable to encode equations: %w", err)
	}

	return data, nil
}

// WriteTo writes String() to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Output formats accepted by Encode.
const (
	OutputLaTeX = "latex"
	OutputJSON  = "json"
)

// Encode writes all equations to w as LaTeX lines or as a JSON array.
func (b *Builder) Encode(w io.Writer, output string) error {
	var err error

	switch output {
	case OutputLaTeX, "":
		if _, err = b.WriteTo(w); err == nil {
			_, err = io.WriteString(w, "\n")
		}
	case OutputJSON:
		var data []byte
		if data, err = b.JSON(); err != nil {
			return err
		}

		_, err = w.Write(data)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}

	if err != nil {
		return fmt.Errorf("unable to write equations: %w", err)
	}

	return nil
}
