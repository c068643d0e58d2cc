package desmos

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numbers at least this large or smaller than expMin are written in scientific notation,
// the way JavaScript's Number.prototype.toString does it.
const (
	expMax = 1e21
	expMin = 1e-6
)

// Number renders v for Desmos. precision is the number of decimal places (or significant
// mantissa decimals in scientific notation); -1 means the shortest exact representation.
// Scientific notation is written as 1.5\cdot10^{-7}.
func Number(v float64, precision int) string {
	abs := math.Abs(v)
	if abs == 0 {
		return "0"
	}

	if abs >= expMax || abs < expMin {
		s := strconv.FormatFloat(v, 'e', precision, 64)
		mantissa, exponent, _ := strings.Cut(s, "e")
		e, _ := strconv.Atoi(exponent)
		return fmt.Sprintf(`%s\cdot10^{%d}`, trimZeros(mantissa), e)
	}

	return trimZeros(strconv.FormatFloat(v, 'f', precision, 64))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}

	return s
}
