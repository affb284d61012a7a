package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calc"
)

// near reports whether a and b are equal within a relative tolerance.
func near(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"empty", "", 0},
		{"blank", "   ", 0},
		{"num", "3.14", 3.14},
		{"neg", "-2", -2},
		{"plus", "+2", 2},
		{"trim", "  42\t", 42},
		{"exp", "1e5", 1e5},
		{"exp-neg", "1e-05", 1e-5},
		{"exp-pos", "1.5e+20", 1.5e20},
		{"add", "2+3", 5},
		{"prec", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"both-parens", "(1+2)*(3+4)", 21},
		{"sub-chain", "10-3-2", 5},
		{"div-chain", "8/4/2", 1},
		{"mixed-chain", "1-2+3", 2},
		{"pow", "2^10", 1024},
		{"pow-right", "2^3^2", 512},
		{"pow-paren", "(2^3)^2", 64},
		{"sign-mul", "2*-3", -6},
		{"sign-pow", "2^-1", 0.5},
		{"neg-base", "-2^2", 4},
		{"sub-neg", "2--3", 5},
		{"spaces", " 2 * ( 3 + 4 ) ", 14},
		{"sin", "sin(0)", 0},
		{"cos", "cos(0)", 1},
		{"tan", "tan(0)", 0},
		{"sqrt", "sqrt(9)", 3},
		{"log", "log(100)", 2},
		{"log-1000", "log(1000)", 3},
		{"ln", "ln(1)", 0},
		{"ln-e", "ln(2.718281828459045)", 1},
		{"call-expr", "sqrt(3*3+4*4)", 5},
		{"call-sum", "sin(0)+cos(0)", 1},
		{"call-nested", "sqrt(sqrt(16))", 2},
		{"root", "√9", 3},
		{"root-rest", "√9+7", 4},
		{"root-rhs", "2+√9", 5},
		{"root-paren", "(√9)+7", 10},
		{"root-root", "√√16", 2},
		{"empty-parens", "()", 0},
		{"empty-call", "cos()", 1},
		{"empty-rhs", "2+", 2},
		{"intermediate-inf", "1/10^400", 0},
		{"pow-zero", "0^0", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Evaluate(c.src)
			if err != nil {
				t.Fatalf("evaluating %q gave error %v", c.src, err)
			}
			if !near(r, c.r) {
				t.Errorf("wrong result for %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvaluateFails(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"div-zero", "10/0"},
		{"div-neg-zero", "1/-0"},
		{"div-zero-expr", "1/(2-2)"},
		{"div-empty", "1/()"},
		{"trailing-garbage", "2a"},
		{"trailing-sign", "2++"},
		{"unclosed", "(1+2"},
		{"unclosed-deep", "((((((1"},
		{"unopened", "1)"},
		{"negative-depth", ")))((("},
		{"sqrt-neg", "sqrt(-1)"},
		{"root-neg", "√-4"},
		{"log-neg", "log(-1)"},
		{"ln-neg", "ln(-1)"},
		{"ln-zero", "ln(0)"},
		{"pow-neg-frac", "-8^0.5"},
		{"overflow", "10^400"},
		{"overflow-literal", "1e400"},
		{"inf-minus-inf", "10^400-10^400"},
		{"unknown-func", "foo(2)"},
		{"call-space", "sin (0)"},
		{"neg-paren", "-(2)"},
		{"sign-space", "- 2"},
		{"juxtaposed", "2 3"},
		{"propagates", "(10/0)^0"},
		{"invalid-rune", "2%3"},
		{"comma", "1,5"},
		{"lone-dot", "."},
		{"exp-missing", "1e"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Evaluate(c.src)
			if err != calc.ErrNotANumber {
				t.Errorf("evaluating %q: want ErrNotANumber, got %v", c.src, err)
			}
			if !math.IsNaN(r) {
				t.Errorf("evaluating %q: want NaN, got %g", c.src, r)
			}
		})
	}
}

func TestEvalDomainError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		fn   string
		x    float64
	}{
		{"div", "1/0", "/", 0},
		{"sqrt", "sqrt(-1)", "sqrt", -1},
		{"root", "√-4", "√", -4},
		{"log", "log(-1)", "log", -1},
		{"ln", "ln(-2)", "ln", -2},
		{"pow", "-8^0.5", "^", -8},
		{"inner", "1+sqrt(-9)*2", "sqrt", -9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := calc.Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			_, err = e.Eval()
			var derr *calc.DomainError
			if !errors.As(err, &derr) {
				t.Fatalf("evaluating %q: want DomainError, got %#v", c.src, err)
			}
			if derr.Func != c.fn || derr.X != c.x {
				t.Errorf("evaluating %q: want %s at %g, got %+v", c.src, c.fn, c.x, derr)
			}
			if !errors.Is(err, calc.ErrNotANumber) {
				t.Errorf("evaluating %q: %v is not ErrNotANumber", c.src, err)
			}
			if err.Error() == "" {
				t.Errorf("evaluating %q: empty error message", c.src)
			}
		})
	}
}

func TestEvalRangeError(t *testing.T) {
	for _, src := range []string{"10^400", "-10^400", "ln(0)", "1e400", "0^-1"} {
		e, err := calc.Parse(src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", src, err)
			continue
		}
		_, err = e.Eval()
		var rerr *calc.RangeError
		if !errors.As(err, &rerr) {
			t.Errorf("evaluating %q: want RangeError, got %#v", src, err)
			continue
		}
		if !math.IsInf(rerr.X, 0) {
			t.Errorf("evaluating %q: RangeError has finite value %g", src, rerr.X)
		}
		if !errors.Is(err, calc.ErrNotANumber) {
			t.Errorf("evaluating %q: %v is not ErrNotANumber", src, err)
		}
	}
}

func TestEvaluatePure(t *testing.T) {
	// Failures must not affect later evaluations.
	srcs := []string{"2+3", "10/0", "2+3", "(1+2", "2+3"}
	for _, src := range srcs {
		r, err := calc.Evaluate(src)
		switch src {
		case "2+3":
			if err != nil || r != 5 {
				t.Errorf("evaluating %q after others gave %g, %v", src, r, err)
			}
		default:
			if err == nil {
				t.Errorf("evaluating %q succeeded with %g", src, r)
			}
		}
	}
}

func TestEvaluateLong(t *testing.T) {
	// Deep nesting and long sums must terminate without trouble.
	src := ""
	for i := 0; i < 256; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < 256; i++ {
		src += ")"
	}
	if r, err := calc.Evaluate(src); err != nil || r != 1 {
		t.Errorf("deep nesting gave %g, %v", r, err)
	}
	src = "1"
	for i := 0; i < 1000; i++ {
		src += "+1"
	}
	if r, err := calc.Evaluate(src); err != nil || r != 1001 {
		t.Errorf("long sum gave %g, %v", r, err)
	}
	if _, err := calc.Evaluate(src[:len(src)-1] + "("); err == nil {
		t.Error("unclosed long sum succeeded")
	}
}
