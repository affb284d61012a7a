package calc

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	name string
	num  float64
	fn   func(float64) float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // num, name is the literal with its sign
	nodeEmpty // empty subexpression, evaluates to 0

	nodeCall // name is the function, left is the argument
	nodeRoot // square root of left

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

// binops maps operator text to binary node kinds.
var binops = map[string]nodeKind{
	"+": nodeAdd,
	"-": nodeSub,
	"*": nodeMul,
	"/": nodeDiv,
	"^": nodePow,
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the node wrapped in parentheses. The result parses back to an
// equivalent tree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNum:
		b.WriteString(n.name)
	case nodeEmpty:
		// Nothing. "()" is an empty subexpression.
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b)
	case nodeRoot:
		b.WriteRune(Root)
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.name)
		b.WriteByte(' ')
		n.right.fmt(b)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
