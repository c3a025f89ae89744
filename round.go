package amountexpr

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest accepted amount, inclusive.
const MaxAmount = 999999999.99

// tieEpsilon distinguishes a genuine half-cent tie from floating-point
// noise. 0.135 scales to 13.500000000000002, which must still count as a
// tie; 13.4 must not.
const tieEpsilon = 1e-7

// Round rounds v to two decimal places with ties going to the nearest even
// cent (banker's rounding).
func Round(v float64) float64 {
	scaled := v * 100
	floor := math.Floor(scaled)
	frac := scaled - floor
	if math.Abs(frac-0.5) < tieEpsilon {
		// A true tie at the cent boundary: keep the floor if it is the
		// even cent, otherwise go one up.
		cents := floor
		if math.Mod(cents, 2) != 0 {
			cents++
		}
		return cents / 100
	}
	return math.Round(scaled) / 100
}

// validateAmount enforces the accepted range on a rounded value. Only
// negative and above-maximum values are rejected; zero and sub-cent
// positives pass.
func validateAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &NotFiniteError{Value: v}
	}
	if v < 0 {
		return &NegativeAmountError{Value: v}
	}
	if v > MaxAmount {
		return &MaxAmountError{Value: v}
	}
	return nil
}

// FormatAmount renders a rounded amount with exactly two decimal places.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// NegativeAmountError reports a result that rounded below zero.
type NegativeAmountError struct {
	// Value is the rejected rounded value.
	Value float64
}

func (err *NegativeAmountError) Error() string {
	return "amount cannot be negative"
}

// MaxAmountError reports a result above MaxAmount.
type MaxAmountError struct {
	// Value is the rejected rounded value.
	Value float64
}

func (err *MaxAmountError) Error() string {
	return "amount exceeds the maximum of " + strconv.FormatFloat(MaxAmount, 'f', 2, 64)
}

// NotFiniteError reports an arithmetic result that overflowed float64.
// Division by zero is caught in the parser, but a product of huge operands
// can still reach Inf.
type NotFiniteError struct {
	// Value is the rejected value.
	Value float64
}

func (err *NotFiniteError) Error() string {
	return "expression does not evaluate to a finite amount"
}
