package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/keypad"
)

type mode int

const (
	exprMode mode = iota
	keysMode
)

type config struct {
	mode    mode
	digits  int
	echo    bool
	verbose bool
	// prompt is printed before reading each line.
	prompt string
}

// runner evaluates input lines and writes results. In keys mode, one keypad
// is used for all input, so the buffer carries across lines.
type runner struct {
	out io.Writer
	cfg config
	pad *keypad.Pad
}

func newRunner(out io.Writer, cfg config) *runner {
	return &runner{
		out: out,
		cfg: cfg,
		pad: keypad.New(keypad.Digits(cfg.digits)),
	}
}

// flusher is implemented by buffered outputs, so prompts show before reading.
type flusher interface {
	Flush() error
}

// run processes each line of in.
func (r *runner) run(in io.Reader) error {
	scan := bufio.NewScanner(in)
	for {
		if r.cfg.prompt != "" {
			io.WriteString(r.out, r.cfg.prompt)
			if f, ok := r.out.(flusher); ok {
				f.Flush()
			}
		}
		if !scan.Scan() {
			if r.cfg.prompt != "" {
				io.WriteString(r.out, "\n")
			}
			break
		}
		line := scan.Text()
		var err error
		switch r.cfg.mode {
		case keysMode:
			err = r.keys(line)
		default:
			err = r.expr(line)
		}
		if err != nil {
			return err
		}
	}
	return scan.Err()
}

// expr evaluates a line as an expression.
func (r *runner) expr(line string) error {
	e, err := calc.Parse(line)
	if err == nil && r.cfg.echo {
		if _, err := fmt.Fprintf(r.out, "%v : ", e); err != nil {
			return err
		}
	}
	var v float64
	if err == nil {
		v, err = e.Eval()
	}
	if err != nil {
		msg := calc.ErrorText
		if r.cfg.verbose {
			msg = err.Error()
		}
		_, err := fmt.Fprintln(r.out, msg)
		return err
	}
	_, err = fmt.Fprintln(r.out, calc.FormatFloat(v, r.cfg.digits))
	return err
}

// keys presses each whitespace-separated key on the line and prints the
// buffer afterward.
func (r *runner) keys(line string) error {
	for _, k := range strings.Fields(line) {
		src := r.pad.Text()
		if err := r.pad.Press(k); err != nil {
			if !errors.Is(err, keypad.ErrFull) {
				return err
			}
			log.Printf("key %q ignored: %v", k, err)
			continue
		}
		if k == keypad.Equals && r.cfg.verbose {
			if err := reason(src); err != nil {
				log.Printf("%s: %v", src, err)
			}
		}
	}
	_, err := fmt.Fprintln(r.out, r.pad.Text())
	return err
}

// reason returns the detailed error from evaluating src, if any.
func reason(src string) error {
	e, err := calc.Parse(src)
	if err != nil {
		return err
	}
	_, err = e.Eval()
	return err
}
