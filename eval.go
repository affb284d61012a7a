package calc

import (
	"math"
	"strconv"
)

// Eval evaluates the expression. If an argument to a function or operator is
// outside its domain, the error is a *DomainError. If the result overflows,
// the error is a *RangeError. Intermediate infinities are allowed as long as
// the final result is finite, so "1/10^400" is 0.
func (e *Expr) Eval() (float64, error) {
	r, err := e.n.eval()
	if err != nil {
		return math.NaN(), err
	}
	if math.IsInf(r, 0) {
		return math.NaN(), &RangeError{X: r}
	}
	return r, nil
}

// eval computes the node's value.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeEmpty:
		return 0, nil
	case nodeCall, nodeRoot:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		var r float64
		if n.kind == nodeRoot {
			r = math.Sqrt(x)
		} else {
			r = n.fn(x)
		}
		if math.IsNaN(r) {
			return 0, &DomainError{X: x, Arg: 1, Func: n.name}
		}
		return r, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return n.binary(l, r)
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// binary applies a binary operator node to its evaluated operands.
func (n *node) binary(l, r float64) (float64, error) {
	var v float64
	switch n.kind {
	case nodeAdd:
		v = l + r
	case nodeSub:
		v = l - r
	case nodeMul:
		v = l * r
	case nodeDiv:
		if r == 0 {
			return 0, &DomainError{X: r, Arg: 2, Func: n.name}
		}
		v = l / r
	case nodePow:
		v = math.Pow(l, r)
		if math.IsNaN(v) {
			// Only a negative base with a non-integer exponent gets here.
			return 0, &DomainError{X: l, Arg: 1, Func: n.name}
		}
	default:
		panic("calc: invalid binary node " + n.kind.String())
	}
	if math.IsNaN(v) {
		// inf-inf, 0*inf, inf/inf
		return 0, &DomainError{X: r, Arg: 2, Func: n.name}
	}
	return v, nil
}

// Evaluate parses and evaluates an expression. If the expression cannot be
// evaluated for any reason, the result is NaN and the error is ErrNotANumber.
// The empty expression evaluates to 0.
func Evaluate(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return math.NaN(), ErrNotANumber
	}
	r, err := e.Eval()
	if err != nil {
		return math.NaN(), ErrNotANumber
	}
	return r, nil
}

// RangeError is an error returned when the result of an expression is too
// large in magnitude to represent.
type RangeError struct {
	// X is the infinite result.
	X float64
}

func (err *RangeError) Error() string {
	return "result out of range: " + strconv.FormatFloat(err.X, 'g', -1, 64)
}

func (err *RangeError) Is(target error) bool {
	return target == ErrNotANumber
}
