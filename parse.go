package calc

import (
	"errors"
	"strconv"
	"strings"
)

// Expr = Empty | '(' Expr ')' | Root Expr | Call | Add | Sub | Mul | Div | Pow | Num
// Call = funcname '(' Expr ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr
// Num = [ '+' | '-' ] num
//
// The alternatives are tried in that order on each subexpression. A Root
// takes the whole rest of its subexpression as its operand, so "√9+7" is the
// square root of 16. Among the binary operators, the lowest precedence group
// is split first: {+, -}, then {*, /}, then {^}. Splits only happen outside
// parentheses. A + or - at the start of a subexpression or following another
// operator or an open parenthesis is a sign, not a binary operator.

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression so it can be evaluated. Errors returned from
// Parse implement InputError.
func Parse(src string) (*Expr, error) {
	toks, eof, err := lex(strings.NewReader(src)).all()
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks}
	if err := p.brackets(eof); err != nil {
		return nil, err
	}
	n, err := p.parse(0, len(toks))
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// String creates a string representation of the parsed expression, with
// parentheses grouping each term. The result parses to an equivalent
// expression.
func (e *Expr) String() string {
	return e.n.String()
}

// parser parses ranges of a token list. Every range it examines contains
// balanced parentheses.
type parser struct {
	toks []lexToken
	// match holds the index of the matching parenthesis for each parenthesis
	// token and -1 for other tokens.
	match []int
}

// group is a precedence group of binary operators.
type group struct {
	// ops is the operators in the group.
	ops string
	// right indicates right-associativity.
	right bool
}

// groups lists precedence groups from least to most binding.
var groups = [...]group{
	{"+-", false},
	{"*/", false},
	{"^", true},
}

// brackets matches parentheses. eof is the EOF token, used for positions of
// unclosed brackets.
func (p *parser) brackets(eof lexToken) error {
	p.match = make([]int, len(p.toks))
	var stack []int
	for i, tok := range p.toks {
		p.match[i] = -1
		switch tok.kind {
		case tokenOpen:
			stack = append(stack, i)
		case tokenClose:
			if len(stack) == 0 {
				return &BracketError{Col: tok.pos, Right: tok.text}
			}
			k := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			p.match[i] = k
			p.match[k] = i
		}
	}
	if len(stack) != 0 {
		// Report the innermost unclosed bracket.
		return &BracketError{Col: eof.pos, Left: p.toks[stack[len(stack)-1]].text}
	}
	return nil
}

// parse parses the tokens in [lo, hi).
func (p *parser) parse(lo, hi int) (*node, error) {
	if lo >= hi {
		return &node{kind: nodeEmpty}, nil
	}
	switch tok := p.toks[lo]; tok.kind {
	case tokenOpen:
		if p.match[lo] == hi-1 {
			// (expr)
			return p.parse(lo+1, hi-1)
		}
	case tokenRoot:
		arg, err := p.parse(lo+1, hi)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeRoot, name: tok.text, left: arg}, nil
	case tokenIdent:
		if fn := funcs[tok.text]; fn != nil && p.iscall(lo, hi) {
			arg, err := p.parse(lo+2, hi-1)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeCall, name: tok.text, fn: fn, left: arg}, nil
		}
		// Unknown names and names not followed by an argument fall through.
	}
	for _, g := range groups {
		k := p.split(lo, hi, g)
		if k < 0 {
			continue
		}
		left, err := p.parse(lo, k)
		if err != nil {
			return nil, err
		}
		right, err := p.parse(k+1, hi)
		if err != nil {
			return nil, err
		}
		op := p.toks[k].text
		return &node{kind: binops[op], name: op, left: left, right: right}, nil
	}
	return p.parsenum(lo, hi)
}

// iscall returns whether the tokens in [lo, hi) are a name immediately
// followed by a single parenthesized argument.
func (p *parser) iscall(lo, hi int) bool {
	if lo+1 >= hi {
		return false
	}
	open := p.toks[lo+1]
	return open.kind == tokenOpen && !open.space && p.match[lo+1] == hi-1
}

// split finds the index of the operator at which to split [lo, hi) for the
// given precedence group, or -1 if there is none. Left-associative groups
// split at their last operator outside parentheses, right-associative ones at
// their first.
func (p *parser) split(lo, hi int, g group) int {
	if g.right {
		for i := lo; i < hi; i++ {
			switch tok := p.toks[i]; tok.kind {
			case tokenOpen:
				i = p.match[i]
			case tokenOp:
				if p.splits(lo, i, g) {
					return i
				}
			}
		}
		return -1
	}
	for i := hi - 1; i >= lo; i-- {
		switch tok := p.toks[i]; tok.kind {
		case tokenClose:
			i = p.match[i]
		case tokenOp:
			if p.splits(lo, i, g) {
				return i
			}
		}
	}
	return -1
}

// splits returns whether the operator at i is a binary operator of g in a
// subexpression beginning at lo.
func (p *parser) splits(lo, i int, g group) bool {
	tok := p.toks[i]
	if !strings.Contains(g.ops, tok.text) {
		return false
	}
	if tok.text != "+" && tok.text != "-" {
		return true
	}
	return !p.issign(lo, i)
}

// issign returns whether the + or - at i is a sign in a subexpression
// beginning at lo.
func (p *parser) issign(lo, i int) bool {
	if i == lo {
		return true
	}
	prev := p.toks[i-1]
	return prev.kind == tokenOp || prev.kind == tokenOpen
}

// parsenum parses [lo, hi) as a number with an optional sign. The sign must
// not be separated from the number by whitespace.
func (p *parser) parsenum(lo, hi int) (*node, error) {
	i := lo
	sign := ""
	if tok := p.toks[i]; tok.kind == tokenOp && (tok.text == "+" || tok.text == "-") {
		if i+1 < hi && !p.toks[i+1].space {
			sign = tok.text
			i++
		}
	}
	tok := p.toks[i]
	if i != hi-1 || tok.kind != tokenNum {
		return nil, p.syntaxerr(lo, hi)
	}
	text := sign + tok.text
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// The lexer only produces valid literals, so this is a bug.
		panic("calc: invalid number: " + text + " (" + err.Error() + ")")
	}
	// Out-of-range literals become infinities. Only an infinite final result
	// is an error.
	return &node{kind: nodeNum, name: text, num: v}, nil
}

// syntaxerr creates an error for a range that matches no rule.
func (p *parser) syntaxerr(lo, hi int) error {
	var b strings.Builder
	for i := lo; i < hi; i++ {
		if i > lo && p.toks[i].space {
			b.WriteByte(' ')
		}
		b.WriteString(p.toks[i].text)
	}
	return &SyntaxError{Col: p.toks[lo].pos, Text: b.String()}
}
