package desmos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gucio321/desmosify/pkg/implicit"
)

func TestEquation(t *testing.T) {
	c := implicit.Conic{A: 64, D: -128, E: 64}

	assert.Equal(t, "64x^2 + 0xy + 0y^2 - 128x + 64y + 0 = 0", DefaultFormat.Equation(c))
}

func TestEquationLeadingSign(t *testing.T) {
	c := implicit.Conic{A: -1, B: 2, C: -1, F: 0.5}

	assert.Equal(t, "-1x^2 + 2xy - 1y^2 + 0x + 0y + 0.5 = 0", DefaultFormat.Equation(c))
}

func TestEquationRoundedSign(t *testing.T) {
	f := Format{Precision: 2}

	assert.Equal(t, "0x^2 + 0xy + 1y^2 + 0x + 0y + 0 = 0", f.Equation(implicit.Conic{A: -0.001, C: 1}))
	assert.Equal(t, "1x^2 + 0xy + 0y^2 + 0x + 0y + 0 = 0", f.Equation(implicit.Conic{A: 1, E: -0.004}))
	assert.Equal(t, "y^2 = 0", Format{Precision: 2, Compact: true}.Equation(implicit.Conic{A: -0.001, C: 1}))
	assert.Equal(t, "-0.01x + 1 = 0", Format{Precision: 2, Compact: true}.Equation(implicit.Conic{D: -0.006, F: 1}))
}

func TestEquationCompact(t *testing.T) {
	f := Format{Precision: -1, Compact: true}

	tests := []struct {
		name string
		c    implicit.Conic
		want string
	}{
		{"horizontal line", implicit.Conic{C: 1}, "y^2 = 0"},
		{"diagonal", implicit.Conic{A: 1, B: -2, C: 1}, "x^2 - 2xy + y^2 = 0"},
		{"vertical", implicit.Conic{D: 1, F: -2}, "x - 2 = 0"},
		{"negative leading", implicit.Conic{A: -3, E: 1}, "-3x^2 + y = 0"},
		{"unit constant", implicit.Conic{C: 1, F: -1}, "y^2 - 1 = 0"},
		{"empty", implicit.Conic{}, "0 = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Equation(tt.c))
		})
	}
}

func TestRecord(t *testing.T) {
	tests := []struct {
		name string
		c    implicit.Conic
		want Record
		line string
	}{
		{
			name: "linear",
			c:    implicit.Conic{C: 1, Kind: implicit.Linear, XDomain: &implicit.Interval{Min: 0, Max: 4}},
			want: Record{Type: "linear", Equation: "0x^2 + 0xy + 1y^2 + 0x + 0y + 0 = 0", Domain: `0 \leq x \leq 4`},
			line: `0x^2 + 0xy + 1y^2 + 0x + 0y + 0 = 0\left\{0 \leq x \leq 4\right\}`,
		},
		{
			name: "vertical",
			c:    implicit.Conic{D: 1, F: -2, Kind: implicit.Linear, YRange: &implicit.Interval{Min: 0, Max: 5}},
			want: Record{Type: "linear", Equation: "0x^2 + 0xy + 0y^2 + 1x + 0y - 2 = 0", Domain: `0 \leq y \leq 5`},
			line: `0x^2 + 0xy + 0y^2 + 1x + 0y - 2 = 0\left\{0 \leq y \leq 5\right\}`,
		},
		{
			name: "parabolic",
			c: implicit.Conic{
				A: 64, D: -128, E: 64, Kind: implicit.Parabolic,
				XDomain: &implicit.Interval{Min: 0, Max: 2},
				YRange:  &implicit.Interval{Min: 0, Max: 1},
			},
			want: Record{
				Type:     "parabolic",
				Equation: "64x^2 + 0xy + 0y^2 - 128x + 64y + 0 = 0",
				Domain:   `0 \leq x \leq 2`,
				Range:    `0 \leq y \leq 1`,
			},
			line: `64x^2 + 0xy + 0y^2 - 128x + 64y + 0 = 0\left\{0 \leq x \leq 2\right\}\left\{0 \leq y \leq 1\right\}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultFormat.Record(tt.c)
			assert.Equal(t, tt.want, r)
			assert.Equal(t, tt.line, r.String())
		})
	}
}
