package graphcalc

import (
	"errors"
	"math"
	"strconv"
)

// Default solver parameters.
const (
	DefaultStep      = 1e-6
	DefaultTolerance = 1e-8
	DefaultMaxIter   = 500
)

// ErrNotFound is the error that every failed search matches with errors.Is.
var ErrNotFound = errors.New("not found")

// Solver holds the parameters for numeric derivatives and Newton's method.
// Zero fields use the defaults. The zero Solver is ready to use.
type Solver struct {
	// Step is the finite difference step h.
	Step float64
	// Tolerance is how close to zero the searched quantity must be.
	Tolerance float64
	// MaxIter is the maximum number of Newton iterations.
	MaxIter int
}

func (s Solver) withDefaults() Solver {
	if !(s.Step > 0) {
		s.Step = DefaultStep
	}
	if !(s.Tolerance > 0) {
		s.Tolerance = DefaultTolerance
	}
	if s.MaxIter <= 0 {
		s.MaxIter = DefaultMaxIter
	}
	return s
}

// Derivative estimates f'(x) as (f(x+h) - f(x)) / h.
func (s Solver) Derivative(f Evaluator, x float64) (float64, error) {
	h := s.withDefaults().Step
	a, err := f.EvalAt(x + h)
	if err != nil {
		return 0, err
	}
	b, err := f.EvalAt(x)
	if err != nil {
		return 0, err
	}
	return (a - b) / h, nil
}

// SecondDerivative estimates f''(x) as (f(x+h) - 2f(x) + f(x-h)) / h².
func (s Solver) SecondDerivative(f Evaluator, x float64) (float64, error) {
	h := s.withDefaults().Step
	a, err := f.EvalAt(x + h)
	if err != nil {
		return 0, err
	}
	b, err := f.EvalAt(x)
	if err != nil {
		return 0, err
	}
	c, err := f.EvalAt(x - h)
	if err != nil {
		return 0, err
	}
	return (a - 2*b + c) / (h * h), nil
}

// Zero searches for a zero of f near guess using Newton's method on f. It
// succeeds with (x, f(x)) once |f(x)| is within the tolerance. If the
// iteration limit is reached, the derivative vanishes, or an iterate is not
// finite, the result is a *SolveError matching ErrNotFound.
func (s Solver) Zero(f Evaluator, guess float64) (Point, error) {
	s = s.withDefaults()
	dg := func(x float64) (float64, error) { return s.Derivative(f, x) }
	x, n, err := s.newton("zero", f.EvalAt, dg, guess)
	if err != nil {
		return Point{}, err
	}
	return point("zero", f, guess, x, n)
}

// Extremum searches for a local extremum of f near guess using Newton's
// method on f'. It succeeds with (x, f(x)) once |f'(x)| is within the
// tolerance. Failures are as for Zero.
func (s Solver) Extremum(f Evaluator, guess float64) (Point, error) {
	s = s.withDefaults()
	g := func(x float64) (float64, error) { return s.Derivative(f, x) }
	dg := func(x float64) (float64, error) { return s.SecondDerivative(f, x) }
	x, n, err := s.newton("extremum", g, dg, guess)
	if err != nil {
		return Point{}, err
	}
	return point("extremum", f, guess, x, n)
}

// newton iterates x <- x - g(x)/dg(x) until |g(x)| is within tolerance.
// s must already have defaults applied. The second result is the number of
// iterations used.
func (s Solver) newton(op string, g, dg func(float64) (float64, error), guess float64) (float64, int, error) {
	x := guess
	for i := 1; ; i++ {
		y, err := g(x)
		if err != nil {
			return 0, i, &SolveError{Op: op, Guess: guess, X: x, Iter: i, Err: err}
		}
		if math.Abs(y) <= s.Tolerance {
			return x, i, nil
		}
		if i >= s.MaxIter {
			return 0, i, &SolveError{Op: op, Guess: guess, X: x, Iter: i}
		}
		d, err := dg(x)
		if err != nil {
			return 0, i, &SolveError{Op: op, Guess: guess, X: x, Iter: i, Err: err}
		}
		if d == 0 || math.IsNaN(d) {
			return 0, i, &SolveError{Op: op, Guess: guess, X: x, Iter: i}
		}
		x -= y / d
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, i, &SolveError{Op: op, Guess: guess, X: x, Iter: i}
		}
	}
}

// point evaluates f at a found x. A non-finite value means nothing was found.
func point(op string, f Evaluator, guess, x float64, n int) (Point, error) {
	y, err := f.EvalAt(x)
	if err != nil {
		return Point{}, &SolveError{Op: op, Guess: guess, X: x, Iter: n, Err: err}
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return Point{}, &SolveError{Op: op, Guess: guess, X: x, Iter: n}
	}
	return Point{X: x, Y: y}, nil
}

// FindZero searches for a zero of f near guess with the default solver.
func FindZero(f Evaluator, guess float64) (Point, error) {
	return Solver{}.Zero(f, guess)
}

// FindExtremum searches for a local extremum of f near guess with the default
// solver.
func FindExtremum(f Evaluator, guess float64) (Point, error) {
	return Solver{}.Extremum(f, guess)
}

// SolveError is an error from a search that did not converge. It matches
// ErrNotFound. If the search stopped because the function could not be
// evaluated, the evaluation error is available through Unwrap.
type SolveError struct {
	// Op is "zero" or "extremum".
	Op string
	// Guess is the starting point.
	Guess float64
	// X is the last iterate.
	X float64
	// Iter is the number of iterations performed.
	Iter int
	// Err is the evaluation error that stopped the search, if any.
	Err error
}

func (err *SolveError) Error() string {
	r := "no " + err.Op + " found from guess " + fmtFloat(err.Guess) + " after " + strconv.Itoa(err.Iter) + " iterations"
	if err.Err != nil {
		r += ": " + err.Err.Error()
	}
	return r
}

func (err *SolveError) Is(target error) bool {
	return target == ErrNotFound
}

func (err *SolveError) Unwrap() error {
	return err.Err
}
