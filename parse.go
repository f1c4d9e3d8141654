package curry

import (
	"strconv"
	"strings"
)

// Or   = And { '||' And }
// And  = Cmp { '&&' Cmp }
// Cmp  = Sum { ('<' | '<=' | '>' | '>=' | '==' | '~=') Sum }
// Sum  = Sign { ('+' | '-') Sign }
// Sign = ('+' | '-' | '~') Sign | Prod
// Prod = Pow { ('*' | '/') Pow }
// Pow  = Call { '^' Call }
// Call = ('sin' | 'cos' | 'ln') Call | Atom
// Atom = 'x' | digits | 'e' | 'pi' | '(' Or ')'

// Expr is a compiled expression of one variable, x. An Expr is immutable, so
// it is safe to evaluate concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Compile parses an expression. Spaces in src are ignored. The given options
// are applied in order.
func Compile(src string, opts ...CompileOption) (*Expr, error) {
	var p compilectx
	for _, opt := range opts {
		p = opt.compileOption(p)
	}
	c := normalize(src)
	n, err := parseOr(c)
	if err != nil {
		return nil, err
	}
	if !c.eof() && !p.trailing {
		return nil, c.errorf("operator or end of input")
	}
	return &Expr{n: n}, nil
}

// String creates a fully parenthesized representation of the compiled
// expression. Compiling the result gives an equivalent expression.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

// level is a single rule of the grammar.
type level func(c *cursor) (*node, error)

// binary parses a left-associative chain of next-level operands joined by
// operators in ops.
func binary(c *cursor, next level, ops tokens) (*node, error) {
	n, err := next(c)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops.match(c)
		if !ok {
			return n, nil
		}
		rhs, err := next(c)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBinary, op: op, left: n, right: rhs}
	}
}

// unary parses any number of prefix operators in ops followed by a next-level
// operand. self is the level calling unary. A prefix that maps to OpNone is
// consumed without creating a node.
func unary(c *cursor, self, next level, ops tokens) (*node, error) {
	op, ok := ops.match(c)
	if !ok {
		return next(c)
	}
	n, err := self(c)
	if err != nil {
		return nil, err
	}
	if op == OpNone {
		return n, nil
	}
	return &node{kind: nodeUnary, op: op, left: n}, nil
}

func parseOr(c *cursor) (*node, error) {
	return binary(c, parseAnd, orOps)
}

func parseAnd(c *cursor) (*node, error) {
	return binary(c, parseCmp, andOps)
}

func parseCmp(c *cursor) (*node, error) {
	return binary(c, parseSum, cmpOps)
}

func parseSum(c *cursor) (*node, error) {
	return binary(c, parseSign, sumOps)
}

func parseSign(c *cursor) (*node, error) {
	return unary(c, parseSign, parseProd, signOps)
}

func parseProd(c *cursor) (*node, error) {
	return binary(c, parsePow, prodOps)
}

func parsePow(c *cursor) (*node, error) {
	return binary(c, parseCall, powOps)
}

func parseCall(c *cursor) (*node, error) {
	return unary(c, parseCall, parseAtom, callOps)
}

// parseAtom parses a variable, number, named constant, or parenthesized
// subexpression.
func parseAtom(c *cursor) (*node, error) {
	if c.eof() {
		return nil, c.errorf("operand")
	}
	switch h := c.head(); {
	case h == 'x':
		c.advance(1)
		return &node{kind: nodeVar}, nil
	case isdigit(h):
		start := c.pos
		for !c.eof() && isdigit(c.head()) {
			c.advance(1)
		}
		text := c.text[start:c.pos]
		// Only ErrRange is possible here, in which case v is +Inf.
		v, _ := strconv.ParseFloat(text, 32)
		return &node{kind: nodeConst, val: float32(v), name: text}, nil
	case h == 'e':
		c.advance(1)
		return &node{kind: nodeConst, val: E, name: "e"}, nil
	case c.prefix(2) == "pi":
		c.advance(2)
		return &node{kind: nodeConst, val: Pi, name: "pi"}, nil
	case h == '(':
		c.advance(1)
		n, err := parseOr(c)
		if err != nil {
			return nil, err
		}
		if c.eof() || c.head() != ')' {
			return nil, c.errorf(`")"`)
		}
		c.advance(1)
		return n, nil
	}
	return nil, c.errorf("operand")
}

func isdigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// token is an operator spelling and the operator it denotes.
type token struct {
	text string
	op   Op
}

// tokens is the set of operators recognized by one grammar level. Earlier
// entries take priority, so longer spellings must precede their prefixes.
type tokens []token

// match consumes the first token in ts that appears at the cursor. Single
// characters are matched exactly, and longer tokens are matched without regard
// to case.
func (ts tokens) match(c *cursor) (Op, bool) {
	if c.eof() {
		return OpNone, false
	}
	for _, t := range ts {
		if len(t.text) == 1 {
			if c.head() != t.text[0] {
				continue
			}
		} else if c.prefix(len(t.text)) != t.text {
			continue
		}
		c.advance(len(t.text))
		return t.op, true
	}
	return OpNone, false
}

var (
	orOps   = tokens{{"||", Or}}
	andOps  = tokens{{"&&", And}}
	cmpOps  = tokens{{"<=", Le}, {"<", Lt}, {">=", Ge}, {">", Gt}, {"==", Eq}, {"~=", Ne}}
	sumOps  = tokens{{"+", Add}, {"-", Sub}}
	signOps = tokens{{"+", OpNone}, {"-", Neg}, {"~", Not}}
	prodOps = tokens{{"*", Mul}, {"/", Div}}
	powOps  = tokens{{"^", Pow}}
	callOps = tokens{{"sin", Sin}, {"cos", Cos}, {"ln", Ln}}
)
