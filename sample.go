package graphcalc

import (
	"math"
	"strconv"
)

// MaxSamples is the largest number of points Sample produces.
const MaxSamples = 1 << 20

// Point is a point on the graph of a function.
type Point struct {
	X, Y float64
}

// Sample evaluates f at min, min+step, min+2*step, and so on up to max. The
// result has floor((max-min)/step)+1 points, or none if max < min. The
// sample points are computed by multiplication rather than accumulation, so
// they do not drift.
//
// Sample fails with a *RangeError if step is not positive, the bounds are not
// finite, or there would be more than MaxSamples points. An error from f is
// returned in a *SampleError.
func Sample(f Evaluator, min, max, step float64) ([]Point, error) {
	switch {
	case !(step > 0) || math.IsInf(step, 0):
		return nil, &RangeError{Min: min, Max: max, Step: step, Reason: "step must be positive"}
	case math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0):
		return nil, &RangeError{Min: min, Max: max, Step: step, Reason: "bounds must be finite"}
	case max < min:
		return nil, nil
	}
	q := math.Floor((max - min) / step)
	if q >= MaxSamples {
		return nil, &RangeError{Min: min, Max: max, Step: step, Reason: "too many samples"}
	}
	n := int(q) + 1
	pts := make([]Point, n)
	for i := range pts {
		x := min + float64(i)*step
		y, err := f.EvalAt(x)
		if err != nil {
			return nil, &SampleError{X: x, Err: err}
		}
		pts[i] = Point{X: x, Y: y}
	}
	return pts, nil
}

// RangeError is an error indicating invalid sampling parameters.
type RangeError struct {
	Min, Max, Step float64
	// Reason describes what is wrong.
	Reason string
}

func (err *RangeError) Error() string {
	return "invalid range [" + fmtFloat(err.Min) + ", " + fmtFloat(err.Max) + "] by " + fmtFloat(err.Step) + ": " + err.Reason
}

// SampleError is an error from evaluating a function at a sample point.
type SampleError struct {
	// X is the sample point.
	X float64
	// Err is the evaluation error.
	Err error
}

func (err *SampleError) Error() string {
	return "at x = " + fmtFloat(err.X) + ": " + err.Err.Error()
}

func (err *SampleError) Unwrap() error {
	return err.Err
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
