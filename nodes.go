package curry

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Nodes are never
// modified after parsing.
type node struct {
	kind nodeKind
	op   Op

	// val is the value of a nodeConst, and name is its source text.
	val  float32
	name string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeVar    // push x
	nodeConst  // push val
	nodeUnary  // evaluate left, apply op
	nodeBinary // evaluate left, evaluate right, apply op
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeVar:
		return "Var"
	case nodeConst:
		return "Const"
	case nodeUnary:
		return "Unary"
	case nodeBinary:
		return "Binary"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op identifies an operator in a compiled expression.
type Op int8

const (
	OpNone Op = iota

	// Unary operators.
	Neg // -a
	Not // ~a: 1 if a is exactly 0, else 0
	Sin
	Cos
	Ln

	// Binary operators.
	Add
	Sub
	Mul
	Div
	Pow
	Lt
	Le
	Gt
	Ge
	Eq
	Ne // a ~= b
	And
	Or
)

var opnames = [...]string{
	OpNone: "",
	Neg:    "-",
	Not:    "~",
	Sin:    "sin",
	Cos:    "cos",
	Ln:     "ln",
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Pow:    "^",
	Lt:     "<",
	Le:     "<=",
	Gt:     ">",
	Ge:     ">=",
	Eq:     "==",
	Ne:     "~=",
	And:    "&&",
	Or:     "||",
}

// String returns the operator as it is written in expressions.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opnames) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opnames[op]
}

// Unary reports whether op is a prefix operator.
func (op Op) Unary() bool {
	return Neg <= op && op <= Ln
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n fully parenthesized. The output compiles to an equivalent
// expression.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeVar:
		b.WriteByte('x')
	case nodeConst:
		b.WriteString(n.name)
	case nodeUnary:
		b.WriteString(n.op.String())
		n.left.fmt(b)
	case nodeBinary:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.op.String())
		b.WriteByte(' ')
		n.right.fmt(b)
	default:
		panic("curry: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
