package curry

import "math"

// Eval evaluates the expression with the variable x set to the given value.
// Results outside the domain of an operation, such as 1/0 or ln(-1), are
// infinities or NaN as usual for floating-point arithmetic.
func (e *Expr) Eval(x float32) float32 {
	return e.n.eval(x)
}

// eval computes the node's value. The left operand is always evaluated
// before the right.
func (n *node) eval(x float32) float32 {
	switch n.kind {
	case nodeVar:
		return x
	case nodeConst:
		return n.val
	case nodeUnary:
		return unop(n.op, n.left.eval(x))
	case nodeBinary:
		l := n.left.eval(x)
		r := n.right.eval(x)
		return binop(n.op, l, r)
	default:
		panic("curry: invalid AST node " + n.kind.String())
	}
}

// unop applies a unary operator.
func unop(op Op, a float32) float32 {
	switch op {
	case Neg:
		return -a
	case Not:
		return truth(a == 0)
	case Sin:
		return float32(math.Sin(float64(a)))
	case Cos:
		return float32(math.Cos(float64(a)))
	case Ln:
		return float32(math.Log(float64(a)))
	default:
		panic("curry: invalid unary operator " + op.String())
	}
}

// binop applies a binary operator.
func binop(op Op, a, b float32) float32 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	case Pow:
		return float32(math.Pow(float64(a), float64(b)))
	case Lt:
		return truth(a < b)
	case Le:
		return truth(a <= b)
	case Gt:
		return truth(a > b)
	case Ge:
		return truth(a >= b)
	case Eq:
		return truth(a == b)
	case Ne:
		return truth(a != b)
	case And:
		return truth(a != 0 && b != 0)
	case Or:
		return truth(a != 0 || b != 0)
	default:
		panic("curry: invalid binary operator " + op.String())
	}
}

// truth converts a boolean to 0 or 1.
func truth(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// EvalString is a shortcut to compile an expression and evaluate it at x.
func EvalString(src string, x float32) (float32, error) {
	e, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(x), nil
}
