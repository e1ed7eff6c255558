package graphcalc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/graphcalc"
)

func mustCompile(t testing.TB, src string, opts ...graphcalc.Option) *graphcalc.Expr {
	t.Helper()
	e, err := graphcalc.Compile(src, opts...)
	if err != nil {
		t.Fatalf("%q failed to compile: %v", src, err)
	}
	return e
}

func TestDerivative(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    float64
		d1   float64
		d2   float64
	}{
		{"line", "3x+1", 2, 3, 0},
		{"square", "x^2", 3, 6, 2},
		{"cube", "x^3", 1, 3, 6},
		{"sin", "sin(x)", 0, 1, 0},
		{"const", "5", 7, 0, 0},
	}
	var s graphcalc.Solver
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := mustCompile(t, c.src)
			d1, err := s.Derivative(e, c.x)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(d1-c.d1) > 1e-4 {
				t.Errorf("f'(%g) of %q: want %g, got %g", c.x, c.src, c.d1, d1)
			}
			d2, err := s.SecondDerivative(e, c.x)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(d2-c.d2) > 5e-2 {
				t.Errorf("f''(%g) of %q: want %g, got %g", c.x, c.src, c.d2, d2)
			}
		})
	}
}

func TestFindZero(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		guess float64
		x     float64
	}{
		{"line", "x-5", 0, 5},
		{"at-guess", "x", 0, 0},
		{"square", "x^2-4", 1, 2},
		{"square-neg", "x^2-4", -1, -2},
		{"sin", "sin(x)", 3, math.Pi},
		{"implicit", "2x+6", 10, -3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := graphcalc.FindZero(mustCompile(t, c.src), c.guess)
			if err != nil {
				t.Fatalf("no zero of %q from %g: %v", c.src, c.guess, err)
			}
			if math.Abs(p.X-c.x) > 1e-6 {
				t.Errorf("zero of %q from %g: want x=%g, got %g", c.src, c.guess, c.x, p.X)
			}
			if math.Abs(p.Y) > graphcalc.DefaultTolerance {
				t.Errorf("zero of %q from %g: f(%g) = %g", c.src, c.guess, p.X, p.Y)
			}
		})
	}
}

func TestFindExtremum(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		guess float64
		x, y  float64
	}{
		{"parabola", "x*x", 1, 0, 0},
		{"shifted", "(x-3)^2+1", 0, 3, 1},
		{"max", "4-x^2", 2, 0, 4},
		{"sin", "sin(x)", 1, math.Pi / 2, 1},
		{"inflection", "x^3", 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := graphcalc.FindExtremum(mustCompile(t, c.src), c.guess)
			if err != nil {
				t.Fatalf("no extremum of %q from %g: %v", c.src, c.guess, err)
			}
			if math.Abs(p.X-c.x) > 1e-5 {
				t.Errorf("extremum of %q from %g: want x=%g, got %g", c.src, c.guess, c.x, p.X)
			}
			if math.Abs(p.Y-c.y) > 1e-8 {
				t.Errorf("extremum of %q from %g: want y=%g, got %g", c.src, c.guess, c.y, p.Y)
			}
		})
	}
}

func TestSolveNotFound(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		guess float64
		zero  bool
	}{
		{"const-zero", "5", 0, true},
		{"no-root", "x^2+1", 0.5, true},
		{"line-extremum", "x", 0, false},
		{"nan", "sqrt(x)-1", -4, true},
		{"inf", "1/x", 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var (
				p   graphcalc.Point
				err error
			)
			if c.zero {
				p, err = graphcalc.FindZero(mustCompile(t, c.src), c.guess)
			} else {
				p, err = graphcalc.FindExtremum(mustCompile(t, c.src), c.guess)
			}
			if !errors.Is(err, graphcalc.ErrNotFound) {
				t.Fatalf("search on %q from %g: want ErrNotFound, got %v at %v", c.src, c.guess, err, p)
			}
			if p != (graphcalc.Point{}) {
				t.Errorf("failed search gave point %v", p)
			}
			var se *graphcalc.SolveError
			if !errors.As(err, &se) {
				t.Fatalf("%#v is not a *SolveError", err)
			}
			if se.Guess != c.guess {
				t.Errorf("wrong guess in error: want %g, got %g", c.guess, se.Guess)
			}
		})
	}
}

func TestSolverMaxIter(t *testing.T) {
	s := graphcalc.Solver{MaxIter: 1}
	_, err := s.Zero(mustCompile(t, "x-5"), 0)
	var se *graphcalc.SolveError
	if !errors.As(err, &se) {
		t.Fatalf("want *SolveError, got %#v", err)
	}
	if se.Iter != 1 || se.Op != "zero" {
		t.Errorf("wrong error %#v", se)
	}
	if !errors.Is(err, graphcalc.ErrNotFound) {
		t.Error("SolveError does not match ErrNotFound")
	}
}

func TestSolverTolerance(t *testing.T) {
	s := graphcalc.Solver{Tolerance: 0.5}
	p, err := s.Zero(mustCompile(t, "x-5"), 4.75)
	if err != nil {
		t.Fatal(err)
	}
	if p.X != 4.75 {
		t.Errorf("search moved to %g despite a loose tolerance", p.X)
	}
}

func TestSolveEvalError(t *testing.T) {
	_, err := graphcalc.FindZero(mustCompile(t, "2+"), 0)
	if !errors.Is(err, graphcalc.ErrNotFound) {
		t.Errorf("%v does not match ErrNotFound", err)
	}
	var ee *graphcalc.EvalError
	if !errors.As(err, &ee) {
		t.Errorf("%v does not wrap the evaluation error", err)
	}

	sentinel := errors.New("sentinel")
	f := graphcalc.EvaluatorFunc(func(x float64) (float64, error) {
		if x > 1 {
			return 0, sentinel
		}
		return x - 2, nil
	})
	_, err = graphcalc.FindZero(f, 0)
	if !errors.Is(err, sentinel) || !errors.Is(err, graphcalc.ErrNotFound) {
		t.Errorf("wrong error %v", err)
	}
}
