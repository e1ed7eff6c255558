package graphcalc

import (
	"strconv"
	"strings"
)

// Evaluator is a function of one variable that may fail to evaluate.
// Both *Expr and *Script are Evaluators, so the solver and sampler work with
// either backend.
type Evaluator interface {
	EvalAt(x float64) (float64, error)
}

// EvaluatorFunc adapts an ordinary function to an Evaluator.
type EvaluatorFunc func(x float64) (float64, error)

// EvalAt calls f(x).
func (f EvaluatorFunc) EvalAt(x float64) (float64, error) {
	return f(x)
}

// Backend selects how formulas are evaluated.
type Backend int8

const (
	// RPN compiles formulas to postfix with this package's own parser.
	RPN Backend = iota
	// Scripted hands formulas to a general expression engine.
	Scripted
)

func (b Backend) String() string {
	switch b {
	case RPN:
		return "rpn"
	case Scripted:
		return "script"
	default:
		return "Backend(" + strconv.Itoa(int(b)) + ")"
	}
}

// ParseBackend gets a backend by the name its String method returns, ignoring
// case.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rpn", "":
		return RPN, nil
	case "script", "scripted":
		return Scripted, nil
	default:
		return 0, &BackendError{Name: name}
	}
}

// New compiles a formula with the given backend. Both backends accept the
// same formulas and group operators the same way.
func New(b Backend, raw string, opts ...Option) (Evaluator, error) {
	switch b {
	case RPN:
		return Compile(raw, opts...)
	case Scripted:
		return CompileScript(raw, opts...)
	default:
		return nil, &BackendError{Name: b.String()}
	}
}

// BackendError is an error indicating an unknown evaluation backend.
type BackendError struct {
	// Name is the requested backend.
	Name string
}

func (err *BackendError) Error() string {
	return "unknown backend " + strconv.Quote(err.Name)
}
