// Package keypad implements the input buffer of a calculator keypad.
//
// A Pad holds the text of the calculator's display. Pressing keys appends to
// the text, edits it, wraps it in a function call, or replaces it with the
// value of the expression it holds.
package keypad

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/zephyrtronium/calc"
)

// Keys with special behavior.
const (
	// Clear empties the buffer.
	Clear = "C"
	// Delete removes the last character of the buffer.
	Delete = "Del"
	// Equals replaces the buffer with the value of its expression.
	Equals = "="
)

// DefaultMaxLen is the default limit on the length of the buffer in bytes.
const DefaultMaxLen = 512

// ErrFull is returned when a key press would make the buffer too long.
var ErrFull = errors.New("keypad: buffer full")

// Pad is a calculator keypad and the buffer it edits. It is not safe to use a
// Pad concurrently.
type Pad struct {
	buf    string
	max    int
	digits int
	wraps  map[string]bool
	last   float64
	err    error
}

// Option is an option used when creating a pad.
type Option interface {
	padOption()
}

type (
	maxlenopt int
	digitsopt int
)

func (maxlenopt) padOption() {}
func (digitsopt) padOption() {}

// MaxLen sets the limit on the length of the buffer in bytes.
func MaxLen(n int) Option {
	return maxlenopt(n)
}

// Digits sets the number of significant digits shown for results.
func Digits(n int) Option {
	return digitsopt(n)
}

// New creates a pad with an empty buffer.
func New(opts ...Option) *Pad {
	p := Pad{
		max:    DefaultMaxLen,
		digits: calc.DefaultDigits,
		wraps:  map[string]bool{string(calc.Root): true},
	}
	for _, k := range calc.Funcs() {
		p.wraps[k] = true
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case maxlenopt:
			p.max = int(opt)
		case digitsopt:
			p.digits = int(opt)
		default:
			panic("keypad: unknown option type")
		}
	}
	if p.max <= 0 {
		panic("keypad: invalid buffer length " + strconv.Itoa(p.max))
	}
	return &p
}

// Press handles a key press. Clear, Delete, and Equals are as described by
// their constants. Function keys, those named by calc.Funcs and the root
// glyph, wrap the buffer in a call, so that pressing sin with "2*3" in the
// buffer leaves "sin(2*3)". Any other key is appended to the buffer.
//
// If the result would be longer than the pad's limit, the buffer is unchanged
// and the error is ErrFull.
func (p *Pad) Press(key string) error {
	switch {
	case key == Clear:
		p.buf = ""
		return nil
	case key == Delete:
		_, sz := utf8.DecodeLastRuneInString(p.buf)
		p.buf = p.buf[:len(p.buf)-sz]
		return nil
	case key == Equals:
		p.last, p.err = calc.Evaluate(p.buf)
		if p.err != nil {
			return p.SetText(calc.ErrorText)
		}
		return p.SetText(calc.FormatFloat(p.last, p.digits))
	case p.wraps[key]:
		return p.SetText(key + "(" + p.buf + ")")
	default:
		return p.SetText(p.buf + key)
	}
}

// Text returns the contents of the buffer.
func (p *Pad) Text() string {
	return p.buf
}

// SetText replaces the contents of the buffer. If s is longer than the pad's
// limit, the buffer is unchanged and the error is ErrFull.
func (p *Pad) SetText(s string) error {
	if len(s) > p.max {
		return ErrFull
	}
	p.buf = s
	return nil
}

// Last returns the result of the most recent Equals press. Before any press,
// the result is 0 with no error. The error is calc.ErrNotANumber if the
// expression could not be evaluated.
func (p *Pad) Last() (float64, error) {
	return p.last, p.err
}

// Keys returns the layout of the keypad's buttons, row by row.
func Keys() [][]string {
	return [][]string{
		{"7", "8", "9", "/", string(calc.Root)},
		{"4", "5", "6", "*", "^"},
		{"1", "2", "3", "-", "log"},
		{"0", ".", Equals, "+", "ln"},
		{Clear, Delete, "sin", "cos", "tan"},
		{"(", ")"},
	}
}
