package amountexpr

import (
	"errors"
	"strconv"
)

// ErrEmptyExpression is the failure for input that is empty after trimming.
var ErrEmptyExpression = errors.New("empty expression")

// ExpectedNumberError is an error indicating a token where the grammar
// requires a number. It implements InputError.
type ExpectedNumberError struct {
	// Col is the position of the token.
	Col int
	// Found describes the token that appeared instead of a number.
	Found string
}

func (err *ExpectedNumberError) Error() string {
	return errpos(err.Col, "expected number, found "+err.Found)
}

func (err *ExpectedNumberError) Pos() int {
	return err.Col
}

// BracketError is an error indicating a parenthesized group that was never
// closed. It implements InputError.
type BracketError struct {
	// Col is the position where the closing parenthesis was required.
	Col int
	// Found describes the token that appeared instead.
	Found string
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "missing closing parenthesis, found "+err.Found)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingTokenError is an error indicating tokens left over after a
// complete expression. It implements InputError.
type TrailingTokenError struct {
	// Col is the position of the first leftover token.
	Col int
	// Token describes the leftover token.
	Token string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "unexpected "+err.Token+" after expression")
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a divisor that evaluated to
// zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error arising
// from tokenizing or parsing implements InputError. Positions count runes
// in the whitespace-stripped input, starting at 1.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ExpectedNumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
