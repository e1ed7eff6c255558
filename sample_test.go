package graphcalc_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/zephyrtronium/graphcalc"
)

func TestSample(t *testing.T) {
	cases := []struct {
		name           string
		src            string
		min, max, step float64
		want           []graphcalc.Point
	}{
		{"ident", "x", 0, 2, 1, []graphcalc.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}},
		{"square", "x^2", -1, 1, 0.5, []graphcalc.Point{{X: -1, Y: 1}, {X: -0.5, Y: 0.25}, {X: 0, Y: 0}, {X: 0.5, Y: 0.25}, {X: 1, Y: 1}}},
		{"partial", "2x", 0, 2.5, 1, []graphcalc.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 4}}},
		{"single", "x+1", 3, 3, 1, []graphcalc.Point{{X: 3, Y: 4}}},
		{"nan", "sqrt(x)", -1, 0, 1, []graphcalc.Point{{X: -1, Y: math.NaN()}, {X: 0, Y: 0}}},
		{"empty", "x", 1, 0, 1, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pts, err := graphcalc.Sample(mustCompile(t, c.src), c.min, c.max, c.step)
			if err != nil {
				t.Fatal(err)
			}
			if len(pts) != len(c.want) {
				t.Fatalf("wrong number of points: want %v, got %v", c.want, pts)
			}
			for i, p := range pts {
				w := c.want[i]
				if p.X != w.X || (p.Y != w.Y && !(math.IsNaN(p.Y) && math.IsNaN(w.Y))) {
					t.Errorf("point %d: want %v, got %v", i, w, p)
				}
			}
		})
	}
}

func TestSampleCount(t *testing.T) {
	pts, err := graphcalc.Sample(mustCompile(t, "x"), graphcalc.DefaultTableMin, graphcalc.DefaultTableMax, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 501 {
		t.Errorf("want 501 points, got %d", len(pts))
	}
	// Points are computed by multiplication, so the last one lands on max.
	if x := pts[len(pts)-1].X; math.Abs(x-graphcalc.DefaultTableMax) > 1e-9 {
		t.Errorf("last point at %g", x)
	}
}

func TestSampleRangeErrors(t *testing.T) {
	cases := []struct {
		name           string
		min, max, step float64
	}{
		{"zero-step", 0, 1, 0},
		{"neg-step", 0, 1, -1},
		{"nan-step", 0, 1, math.NaN()},
		{"inf-step", 0, 1, math.Inf(1)},
		{"nan-min", math.NaN(), 1, 1},
		{"inf-max", 0, math.Inf(1), 1},
		{"too-many", 0, 1e9, 1},
	}
	e := mustCompile(t, "x")
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pts, err := graphcalc.Sample(e, c.min, c.max, c.step)
			if pts != nil {
				t.Errorf("got points %v", pts)
			}
			var re *graphcalc.RangeError
			if !errors.As(err, &re) {
				t.Fatalf("want *RangeError, got %#v", err)
			}
		})
	}
}

func TestSampleEvalError(t *testing.T) {
	sentinel := errors.New("sentinel")
	f := graphcalc.EvaluatorFunc(func(x float64) (float64, error) {
		if x >= 2 {
			return 0, sentinel
		}
		return x, nil
	})
	pts, err := graphcalc.Sample(f, 0, 5, 1)
	if pts != nil {
		t.Errorf("got points %v", pts)
	}
	want := &graphcalc.SampleError{X: 2, Err: sentinel}
	if !reflect.DeepEqual(err, want) {
		t.Errorf("want %#v, got %#v", want, err)
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("%v does not wrap the evaluation error", err)
	}
}
