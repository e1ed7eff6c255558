package graphcalc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Expr is a compiled formula. An Expr is immutable, so it is safe to evaluate
// concurrently.
type Expr struct {
	// raw is the formula as given to Compile.
	raw string
	// norm is the normalized formula.
	norm string
	// postfix is the compiled token sequence.
	postfix []Token
	// code is postfix with number literals parsed and operators resolved.
	code []instr
	// strict is whether evaluation is strict.
	strict bool
}

// instr is a postfix token prepared for evaluation.
type instr struct {
	kind TokenKind
	num  float64
	op   operator
	// tok is the token the instruction came from, for error messages.
	tok *Token
}

// Compile normalizes, tokenizes, and converts a formula to postfix. Each call
// compiles the formula anew; there is no caching between calls. If the
// formula is malformed, the error implements InputError.
func Compile(raw string, opts ...Option) (*Expr, error) {
	c := newConfig(opts)
	norm := normalize(raw, c.variable, true)
	postfix, err := ToPostfix(tokenize(norm, c.variable))
	if err != nil {
		return nil, err
	}
	e := Expr{
		raw:     raw,
		norm:    norm,
		postfix: postfix,
		code:    make([]instr, len(postfix)),
		strict:  c.strict,
	}
	for i := range postfix {
		tok := &e.postfix[i]
		in := instr{kind: tok.Kind, tok: tok}
		switch tok.Kind {
		case TokenNum:
			v, err := parseNum(tok)
			if err != nil {
				return nil, err
			}
			in.num = v
		case TokenVar:
			// Bound at evaluation.
		case TokenOp, TokenFunc:
			op, ok := lookupOp(tok.Text)
			if !ok {
				panic("graphcalc: unresolved operator in postfix: " + tok.String())
			}
			in.op = op
		default:
			panic("graphcalc: invalid postfix token " + tok.String())
		}
		e.code[i] = in
	}
	return &e, nil
}

// parseNum parses a number token. Out of range literals are ±Inf or ±0.
func parseNum(tok *Token) (float64, error) {
	if tok.Text == Infinity {
		return math.Inf(1), nil
	}
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &LexError{Text: tok.Text, Kind: "number", Col: tok.Pos}
	}
	return v, nil
}

// EvalAt evaluates the formula with the free variable bound to x. Arithmetic
// follows IEEE-754, so domain errors like sqrt(-1) give NaN rather than an
// error. The error, if any, is an *EvalError.
func (e *Expr) EvalAt(x float64) (float64, error) {
	var buf [16]float64
	stack := buf[:0]
	for _, in := range e.code {
		switch in.kind {
		case TokenNum:
			stack = append(stack, in.num)
		case TokenVar:
			stack = append(stack, x)
		default:
			switch in.op.class {
			case opUnary:
				if len(stack) == 0 {
					if e.strict {
						return 0, &EvalError{Col: in.tok.Pos, Op: in.tok.Text, Have: 0, Want: 1}
					}
					// Legacy behavior: nothing to apply to.
					continue
				}
				v := &stack[len(stack)-1]
				*v = in.op.un(*v)
			case opBinary:
				if len(stack) < 2 {
					return 0, &EvalError{Col: in.tok.Pos, Op: in.tok.Text, Have: len(stack), Want: 2}
				}
				r := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				l := &stack[len(stack)-1]
				*l = in.op.bin(*l, r)
			default:
				panic("graphcalc: invalid operator class in " + in.tok.String())
			}
		}
	}
	switch {
	case len(stack) == 0:
		return 0, &EvalError{Col: len([]rune(e.norm)) + 1, Have: 0, Want: 1}
	case len(stack) > 1 && e.strict:
		return 0, &EvalError{Col: len([]rune(e.norm)) + 1, Have: len(stack), Want: 1}
	}
	return stack[len(stack)-1], nil
}

// Raw returns the formula as it was given to Compile.
func (e *Expr) Raw() string {
	return e.raw
}

// Normalized returns the formula after implicit multiplication was made
// explicit.
func (e *Expr) Normalized() string {
	return e.norm
}

// Postfix returns a copy of the compiled token sequence.
func (e *Expr) Postfix() []Token {
	return append(([]Token)(nil), e.postfix...)
}

// Strict returns whether the expression was compiled with the Strict option.
func (e *Expr) Strict() bool {
	return e.strict
}

// String returns the postfix form of the expression with tokens separated by
// spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.postfix {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// EvalError is an error from evaluating postfix that does not leave exactly
// one value, e.g. from the formula "2+".
type EvalError struct {
	// Col is the position of the operator that lacked operands, or one past
	// the end of the normalized formula if the error is in the final stack.
	Col int
	// Op is the operator that lacked operands. It is empty if the error is in
	// the final stack.
	Op string
	// Have is the number of values that were on the stack.
	Have int
	// Want is the number of values that were needed.
	Want int
}

func (err *EvalError) Error() string {
	if err.Op == "" {
		if err.Have == 0 {
			return errpos(err.Col, "invalid expression: no value")
		}
		return errpos(err.Col, "invalid expression: "+strconv.Itoa(err.Have)+" values left")
	}
	return errpos(err.Col, "invalid expression: "+strconv.Quote(err.Op)+" needs "+strconv.Itoa(err.Want)+" operands, have "+strconv.Itoa(err.Have))
}
