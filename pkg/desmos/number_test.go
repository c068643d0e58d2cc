package desmos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{"zero", 0, -1, "0"},
		{"negative zero", math.Copysign(0, -1), -1, "0"},
		{"integer", 64, -1, "64"},
		{"negative", -128, -1, "-128"},
		{"fraction", 0.25, -1, "0.25"},
		{"large plain", 1e20, -1, "100000000000000000000"},
		{"large", 1.5e21, -1, `1.5\cdot10^{21}`},
		{"small plain", 1e-6, -1, "0.000001"},
		{"small", 1.5e-7, -1, `1.5\cdot10^{-7}`},
		{"negative small", -2e-9, -1, `-2\cdot10^{-9}`},
		{"rounded", 3.14159, 2, "3.14"},
		{"trailing zeros", 2.5, 3, "2.5"},
		{"rounds to integer", 1.999, 2, "2"},
		{"rounds to zero", -0.001, 2, "0"},
		{"rounded exponent", 1.23456e-8, 2, `1.23\cdot10^{-8}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.value, tt.precision))
		})
	}
}
