// Package calc implements the expression evaluator of a scientific calculator.
//
// Expressions are what you would type on a calculator keypad: numbers, the
// operators + - * / ^, parentheses, the functions sin, cos, tan, log, ln, and
// sqrt, and the root glyph √, which takes the square root of everything
// written after it. "2+3*4" is 14, "2^3^2" is 2^(3^2), and "√9+7" is 4.
//
// Every failure, whether a malformed expression, a division by zero, or an
// argument outside a function's domain, is reported as ErrNotANumber by
// Evaluate. Parse and Expr.Eval return more detailed errors which still
// satisfy errors.Is(err, ErrNotANumber).
//
package calc
