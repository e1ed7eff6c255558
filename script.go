package graphcalc

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Knetic/govaluate"
)

// Script is a formula evaluated by govaluate instead of the RPN evaluator.
// It is compiled to postfix exactly as by Compile and then written back out
// as fully parenthesized infix, so both backends group operators the same
// way. Like Expr, a Script is safe to evaluate concurrently.
type Script struct {
	raw      string
	src      string
	variable string
	expr     *govaluate.EvaluableExpression
	// err is the error every evaluation returns when the postfix does not
	// leave exactly one value.
	err error
}

// scriptfuncs are the functions available to scripts. They match the RPN
// functions.
var scriptfuncs = map[string]govaluate.ExpressionFunction{
	"sin":  monadic(math.Sin),
	"cos":  monadic(math.Cos),
	"tan":  monadic(math.Tan),
	"sqrt": monadic(math.Sqrt),
	"log":  monadic(math.Log10),
	"ln":   monadic(math.Log),
}

func monadic(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("want 1 argument, got %d", len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("argument %v is %T, not a number", args[0], args[0])
		}
		return f(x), nil
	}
}

// CompileScript prepares a formula for the scripted backend. If the formula
// is malformed, the error implements InputError, as for Compile. Postfix
// that cannot evaluate to one value compiles, and every evaluation returns
// the same *EvalError the RPN evaluator would.
func CompileScript(raw string, opts ...Option) (*Script, error) {
	c := newConfig(opts)
	norm := normalize(raw, c.variable, true)
	postfix, err := ToPostfix(tokenize(norm, c.variable))
	if err != nil {
		return nil, err
	}
	s := Script{raw: raw, variable: c.variable}
	s.src, err = infix(postfix, norm, c.strict)
	if err != nil {
		var ee *EvalError
		if !errors.As(err, &ee) {
			return nil, err
		}
		s.err = err
		return &s, nil
	}
	s.expr, err = govaluate.NewEvaluableExpressionWithFunctions(s.src, scriptfuncs)
	if err != nil {
		return nil, &ScriptError{Src: s.src, Err: err}
	}
	return &s, nil
}

// infix writes postfix as fully parenthesized govaluate source. Stack
// underflow and leftover operands are handled as EvalAt handles them, and
// the resulting *EvalError is returned in place of the source. A malformed
// number is a *LexError.
func infix(postfix []Token, norm string, strict bool) (string, error) {
	stack := make([]string, 0, len(postfix))
	for i := range postfix {
		tok := &postfix[i]
		switch tok.Kind {
		case TokenNum:
			v, err := parseNum(tok)
			if err != nil {
				return "", err
			}
			if math.IsInf(v, 0) {
				stack = append(stack, Infinity)
			} else {
				stack = append(stack, strconv.FormatFloat(v, 'f', -1, 64))
			}
		case TokenVar:
			stack = append(stack, tok.Text)
		default:
			op, ok := lookupOp(tok.Text)
			if !ok {
				panic("graphcalc: unresolved operator in postfix: " + tok.String())
			}
			switch op.class {
			case opUnary:
				if len(stack) == 0 {
					if strict {
						return "", &EvalError{Col: tok.Pos, Op: tok.Text, Have: 0, Want: 1}
					}
					continue
				}
				v := &stack[len(stack)-1]
				if tok.Text == Negate {
					*v = "(-" + *v + ")"
				} else {
					*v = tok.Text + "(" + *v + ")"
				}
			case opBinary:
				if len(stack) < 2 {
					return "", &EvalError{Col: tok.Pos, Op: tok.Text, Have: len(stack), Want: 2}
				}
				r := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				l := &stack[len(stack)-1]
				text := tok.Text
				if text == "^" {
					text = "**"
				}
				*l = "(" + *l + " " + text + " " + r + ")"
			default:
				panic("graphcalc: invalid operator class in " + tok.String())
			}
		}
	}
	switch {
	case len(stack) == 0:
		return "", &EvalError{Col: len([]rune(norm)) + 1, Have: 0, Want: 1}
	case len(stack) > 1 && strict:
		return "", &EvalError{Col: len([]rune(norm)) + 1, Have: len(stack), Want: 1}
	}
	return stack[len(stack)-1], nil
}

// EvalAt evaluates the script with the free variable bound to x. The error,
// if any, is an *EvalError for postfix that does not give one value, or a
// *ScriptError from the engine.
func (s *Script) EvalAt(x float64) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	params := map[string]interface{}{
		s.variable: x,
		Infinity:   math.Inf(1),
	}
	v, err := s.expr.Evaluate(params)
	if err != nil {
		return 0, &ScriptError{Src: s.src, Err: err}
	}
	switch v := v.(type) {
	case float64:
		return v, nil
	default:
		return 0, &ScriptError{Src: s.src, Err: fmt.Errorf("result %v is %T, not a number", v, v)}
	}
}

// Raw returns the formula as it was given to CompileScript.
func (s *Script) Raw() string {
	return s.raw
}

// String returns the source handed to the scripting engine, or the empty
// string if the formula does not evaluate to one value.
func (s *Script) String() string {
	return s.src
}

// ScriptError is an error from compiling or evaluating a formula with the
// scripted backend.
type ScriptError struct {
	// Src is the translated formula.
	Src string
	// Err is the engine's error.
	Err error
}

func (err *ScriptError) Error() string {
	return "script " + fmt.Sprintf("%q", err.Src) + ": " + err.Err.Error()
}

func (err *ScriptError) Unwrap() error {
	return err.Err
}
