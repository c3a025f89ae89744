// Package amountexpr resolves shorthand arithmetic typed into a monetary
// amount field.
//
// An input like "50+40*2" evaluates with the usual precedence and grouping
// rules, is rounded to two decimal places with ties going to the even cent,
// and must land in [0, 999999999.99]. A plain number skips the expression
// machinery entirely, so the common case of typing "12.50" costs no more
// than a float conversion.
//
// Every rejected input produces a descriptive error value carried in the
// Result; the evaluator never panics and a successful value is never Inf
// or NaN.
package amountexpr
