package amountexpr

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Result is the outcome of evaluating an amount expression. Exactly one of
// two shapes occurs: Err is nil and Value holds the rounded amount, or Err
// describes the rejection and Value is zero. Expression always carries the
// original input as typed.
type Result struct {
	Value      float64
	Expression string
	Err        error
}

// Ok reports whether the expression evaluated to an accepted amount.
func (r Result) Ok() bool {
	return r.Err == nil
}

// simpleNumber matches an unsigned decimal number with no operators or
// parentheses: digits with at most one dot and at least one digit.
var simpleNumber = regexp.MustCompile(`^(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)

// IsSimpleNumber reports whether the trimmed input is purely an unsigned
// decimal number, i.e. whether Eval can skip the expression pipeline.
func IsSimpleNumber(input string) bool {
	return simpleNumber.MatchString(strings.TrimSpace(input))
}

// HasOperators reports whether input contains any arithmetic operator.
// Callers use it to decide whether to show a computed-result hint.
func HasOperators(input string) bool {
	return strings.ContainsAny(input, "+-*/")
}

// Eval evaluates an amount expression: the four binary operators, unary
// sign, and parentheses over decimal numbers. The result is rounded to two
// decimal places with ties to the even cent and must lie in
// [0, MaxAmount].
func Eval(input string) Result {
	r := Result{Expression: input}
	s := strings.TrimSpace(input)
	if s == "" {
		r.Err = ErrEmptyExpression
		return r
	}
	var v float64
	if IsSimpleNumber(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			r.Err = &LexError{Col: 1, Text: s, Kind: "number"}
			return r
		}
		v = f
	} else {
		f, err := evalExpr(s)
		if err != nil {
			r.Err = err
			return r
		}
		v = f
	}
	v = Round(v)
	if err := validateAmount(v); err != nil {
		r.Err = err
		return r
	}
	r.Value = v
	return r
}

// verifyTolerance absorbs float64 rounding when comparing a re-evaluated
// expression against a stored amount.
const verifyTolerance = 0.001

// Verify re-evaluates a stored expression and reports whether it still
// comes out to the stored amount. Backends use it as a round-trip
// integrity check on expression/amount pairs.
func Verify(expr string, stored float64) bool {
	r := Eval(expr)
	return r.Ok() && math.Abs(r.Value-stored) < verifyTolerance
}
