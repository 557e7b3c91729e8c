package adc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelly-tou/scum-code/errs"
)

// EvalRatio evaluates a tick ratio expression from a capture file.
//
// Time constant columns record divisions of counter ticks as text, e.g.
// "52/13" for 52 ticks over 13 reference ticks. An expression is a number or
// a chain of divisions evaluated left to right: "a/b/c" is (a/b)/c. Plain
// numeric cells evaluate to themselves.
//
// Returns errs.ErrInvalidRatio for empty expressions, malformed numbers, or
// zero denominators.
func EvalRatio(expr string) (float64, error) {
	parts := strings.Split(expr, "/")

	value := 0.0
	for i, part := range parts {
		operand, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errs.ErrInvalidRatio, expr)
		}

		if i == 0 {
			value = operand
			continue
		}
		if operand == 0 {
			return 0, fmt.Errorf("%w: zero denominator in %q", errs.ErrInvalidRatio, expr)
		}
		value /= operand
	}

	return value, nil
}
