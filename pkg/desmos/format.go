// Package desmos renders conic equations as Desmos-flavoured LaTeX.
package desmos

import (
	"fmt"
	"strings"

	"github.com/gucio321/desmosify/pkg/implicit"
)

// Format controls how equations are written.
type Format struct {
	// Precision is passed to Number.
	Precision int
	// Compact drops zero terms and unit coefficients.
	Compact bool
}

// DefaultFormat writes every term with the shortest exact numbers.
var DefaultFormat = Format{Precision: -1}

var termVariables = [6]string{"x^2", "xy", "y^2", "x", "y", ""}

// Equation writes c as "a x^2 + b xy + c y^2 + d x + e y + f = 0" with signs folded into the operators.
func (f Format) Equation(c implicit.Conic) string {
	var sb strings.Builder

	for i, v := range c.Coefficients() {
		variable := termVariables[i]
		number := f.Number(v)
		if f.Compact && number == "0" {
			continue
		}

		// the sign follows the rendered number so rounding never leaves "-0"
		magnitude, negative := strings.CutPrefix(number, "-")

		switch {
		case sb.Len() == 0 && negative:
			sb.WriteString("-")
		case sb.Len() == 0:
		case negative:
			sb.WriteString(" - ")
		default:
			sb.WriteString(" + ")
		}

		if !f.Compact || magnitude != "1" || variable == "" {
			sb.WriteString(magnitude)
		}

		sb.WriteString(variable)
	}

	if sb.Len() == 0 {
		sb.WriteString("0")
	}

	sb.WriteString(" = 0")

	return sb.String()
}

func (f Format) Number(v float64) string {
	return Number(v, f.Precision)
}

// Restriction writes "min \leq axis \leq max".
func (f Format) Restriction(axis string, i implicit.Interval) string {
	return fmt.Sprintf(`%s \leq %s \leq %s`, f.Number(i.Min), axis, f.Number(i.Max))
}

// Record holds the rendered parts of one equation.
type Record struct {
	Type     string `json:"type"`
	Equation string `json:"equation"`
	Domain   string `json:"domain,omitempty"`
	Range    string `json:"range,omitempty"`
}

func (f Format) Record(c implicit.Conic) Record {
	result := Record{
		Type:     c.Kind.String(),
		Equation: f.Equation(c),
	}

	if c.XDomain != nil {
		result.Domain = f.Restriction("x", *c.XDomain)
	}

	if c.YRange != nil {
		if c.XDomain == nil {
			// vertical lines are restricted along y only
			result.Domain = f.Restriction("y", *c.YRange)
		} else {
			result.Range = f.Restriction("y", *c.YRange)
		}
	}

	return result
}

// String writes the record as a single Desmos expression.
func (r Record) String() string {
	result := r.Equation
	for _, restriction := range []string{r.Domain, r.Range} {
		if restriction != "" {
			result += `\left\{` + restriction + `\right\}`
		}
	}

	return result
}
