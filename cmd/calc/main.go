package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		cfg    config
		keyset bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.IntVar(&cfg.digits, "digits", calc.DefaultDigits, "significant digits of results")
	flag.BoolVar(&cfg.echo, "echo", false, "print parse trees")
	flag.BoolVar(&cfg.verbose, "v", false, "print the reason an expression fails instead of "+calc.ErrorText)
	flag.BoolVar(&keyset, "keys", false, "treat input lines as key presses on a calculator keypad")
	flag.Parse()
	if cfg.digits <= 0 {
		log.Fatalf("digits (%d) must be positive", cfg.digits)
	}
	if keyset {
		cfg.mode = keysMode
	}

	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	var ins []input
	if f != nil {
		in := input{src: f}
		if f == os.Stdin && isTerminal(f) {
			in.prompt = "> "
		}
		ins = append(ins, in)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, input{src: strings.NewReader(arg)})
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	r := newRunner(w, cfg)
	for _, in := range ins {
		r.cfg.prompt = in.prompt
		if err := r.run(in.src); err != nil {
			w.Flush()
			log.Fatal(err)
		}
	}
}

// input is a source of lines and the prompt to print before reading each.
type input struct {
	src    io.Reader
	prompt string
}

// isTerminal determines whether the given file is a terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
