package graphcalc

import "math"

// Negate is the postfix spelling of unary minus. It is distinct from binary
// subtraction and never appears in formulas.
const Negate = "neg"

type opclass int8

const (
	opNone opclass = iota
	// opBinary pops two operands.
	opBinary
	// opUnary pops one operand. Functions are unary operators too.
	opUnary
)

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// class is the number of operands the operator takes.
	class opclass
	// bin is the operation for binary operators.
	bin func(l, r float64) float64
	// un is the operation for unary operators.
	un func(x float64) float64
}

// lookupOp gets the operator for a token text. The second result is false if
// there is no such operator. Unary minus must be looked up as Negate; "-" is
// always subtraction here.
func lookupOp(text string) (operator, bool) {
	switch text {
	case "+":
		return operator{0, false, opBinary, add, nil}, true
	case "-":
		return operator{0, false, opBinary, sub, nil}, true
	case "*":
		return operator{5, false, opBinary, mul, nil}, true
	case "/":
		return operator{5, false, opBinary, div, nil}, true
	case Negate:
		return operator{5, true, opUnary, nil, neg}, true
	case "tan":
		return operator{5, true, opUnary, nil, math.Tan}, true
	case "sin":
		return operator{5, true, opUnary, nil, math.Sin}, true
	case "cos":
		return operator{5, true, opUnary, nil, math.Cos}, true
	case "sqrt":
		return operator{5, true, opUnary, nil, math.Sqrt}, true
	case "log":
		return operator{5, true, opUnary, nil, math.Log10}, true
	case "ln":
		return operator{5, true, opUnary, nil, math.Log}, true
	case "^":
		return operator{10, true, opBinary, math.Pow, nil}, true
	default:
		return operator{}, false
	}
}

// isFunc reports whether a name is a function, i.e. a unary operator that is
// written as a word.
func isFunc(name string) bool {
	op, ok := lookupOp(name)
	return ok && op.class == opUnary && name != Negate
}

func add(l, r float64) float64 { return l + r }
func sub(l, r float64) float64 { return l - r }
func mul(l, r float64) float64 { return l * r }
func div(l, r float64) float64 { return l / r }
func neg(x float64) float64    { return -x }
