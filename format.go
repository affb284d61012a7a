package calc

import (
	"math"
	"strconv"
)

// ErrorText is the display text for an expression that cannot be evaluated.
const ErrorText = "Error"

// DefaultDigits is the number of significant digits Display shows.
const DefaultDigits = 10

// Display formats the result of Evaluate for a calculator screen. If err is
// non-nil or v is not finite, the result is ErrorText.
func Display(v float64, err error) string {
	if err != nil {
		return ErrorText
	}
	return FormatFloat(v, DefaultDigits)
}

// FormatFloat formats v with at most the given number of significant digits,
// using exponent notation for very large or small magnitudes. Trailing zeros
// are removed, and negative zero is formatted as 0. The result evaluates back
// to v rounded to digits. NaN and infinities format as ErrorText.
func FormatFloat(v float64, digits int) string {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return ErrorText
	case v == 0:
		return "0"
	}
	if digits <= 0 {
		digits = DefaultDigits
	}
	return strconv.FormatFloat(v, 'g', digits, 64)
}
