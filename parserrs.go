package graphcalc

import "strconv"

// LexError indicates a token that is not a number, the variable, a known
// function, an operator, or a parenthesis. It implements InputError.
type LexError struct {
	// Text is the invalid token.
	Text string
	// Kind is the type of token that was expected. This may be "number" or
	// the empty string if no kind of token could be decided.
	Kind string
	// Col is the position of the token.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a binary operator in a position where
// an operand is required, e.g. the * in 2+*3. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the misplaced operator.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" is missing its left operand")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, or empty if a close parenthesis has no
	// opening one.
	Left string
	// Right is the closing parenthesis, or empty if an open parenthesis is
	// never closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating a formula with no tokens.
type EmptyExpressionError struct {
	// Col is the position where a token was expected.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from compiling a malformed formula implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the rune column in the
	// normalized formula of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
