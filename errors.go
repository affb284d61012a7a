package calc

import (
	"errors"
	"strconv"
)

// ErrNotANumber is the error returned by Evaluate for every expression that
// cannot be evaluated. All other errors of this package satisfy
// errors.Is(err, ErrNotANumber).
var ErrNotANumber = errors.New("calc: not a number")

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket, or of the end of input for an
	// unclosed bracket.
	Col int
	// Left is the opening bracket, if it was not closed.
	Left string
	// Right is the closing bracket, if it was not opened.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == ErrNotANumber
}

// SyntaxError is an error indicating a subexpression which is neither a
// number nor any combination of subexpressions. It implements InputError.
type SyntaxError struct {
	// Col is the position of the start of the subexpression.
	Col int
	// Text is the subexpression.
	Text string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "invalid expression "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

func (err *SyntaxError) Is(target error) bool {
	return target == ErrNotANumber
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LexError)(nil)
)
