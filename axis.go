package graphcalc

import "math"

// Default graph window and table of values ranges.
const (
	DefaultMinX = -10
	DefaultMaxX = 10
	DefaultMinY = -10
	DefaultMaxY = 10

	DefaultTableMin  = -25
	DefaultTableMax  = 25
	DefaultTableStep = 1
)

// MaxTicks is the largest number of ticks RadianTicks produces.
const MaxTicks = 10000

// Bounds is the visible region of a graph.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// DefaultBounds returns the default graph window.
func DefaultBounds() Bounds {
	return Bounds{MinX: DefaultMinX, MaxX: DefaultMaxX, MinY: DefaultMinY, MaxY: DefaultMaxY}
}

// Validate checks that each axis has a positive extent.
func (b Bounds) Validate() error {
	if b.MinX < b.MaxX && b.MinY < b.MaxY {
		return nil
	}
	return &BoundsError{Bounds: b}
}

// BoundsError is an error indicating an empty or inverted graph window.
type BoundsError struct {
	Bounds Bounds
}

func (err *BoundsError) Error() string {
	b := err.Bounds
	return "invalid bounds x [" + fmtFloat(b.MinX) + ", " + fmtFloat(b.MaxX) + "] y [" + fmtFloat(b.MinY) + ", " + fmtFloat(b.MaxY) + "]: min must be less than max"
}

// Tick is a labeled position on an axis measured in radians.
type Tick struct {
	// X is the position.
	X float64
	// Frac is the position as a multiple of π.
	Frac Fraction
}

// Label returns the tick label, e.g. 3π/2.
func (t Tick) Label() string {
	return t.Frac.PiString()
}

// RadianTicks returns the nonzero multiples of step·π that lie in
// [minX, maxX], in increasing order. Each multiple is reduced to lowest
// terms, so with a step of 1/2 the ticks read π/2, π, 3π/2, and so on.
// step must be a positive fraction.
func RadianTicks(minX, maxX float64, step Fraction) ([]Tick, error) {
	if step.Den == 0 {
		return nil, ErrZeroDenominator
	}
	step, _ = Reduce(step.Num, step.Den)
	if step.Num <= 0 {
		return nil, &ScaleError{Text: step.String(), Reason: "must be positive"}
	}
	if err := (Bounds{MinX: minX, MaxX: maxX, MinY: 0, MaxY: 1}).Validate(); err != nil {
		return nil, err
	}
	unit := step.Float64() * math.Pi
	lo, hi := math.Ceil(minX/unit), math.Floor(maxX/unit)
	if hi-lo >= MaxTicks {
		return nil, &ScaleError{Text: step.String(), Reason: "too many ticks"}
	}
	var ticks []Tick
	for k := int(lo); k <= int(hi); k++ {
		if k == 0 {
			continue
		}
		f, err := Reduce(k*step.Num, step.Den)
		if err != nil {
			return nil, err
		}
		ticks = append(ticks, Tick{X: float64(k) * unit, Frac: f})
	}
	return ticks, nil
}

// LinearTicks returns the nonzero multiples of the scale's value that lie in
// [min, max], in increasing order.
func LinearTicks(min, max float64, s Scale) ([]float64, error) {
	if !(s.Value > 0) || math.IsInf(s.Value, 0) {
		return nil, &ScaleError{Text: fmtFloat(s.Value), Reason: "must be positive"}
	}
	if err := (Bounds{MinX: min, MaxX: max, MinY: 0, MaxY: 1}).Validate(); err != nil {
		return nil, err
	}
	lo, hi := math.Ceil(min/s.Value), math.Floor(max/s.Value)
	if hi-lo >= MaxTicks {
		return nil, &ScaleError{Text: fmtFloat(s.Value), Reason: "too many ticks"}
	}
	var ticks []float64
	for k := int(lo); k <= int(hi); k++ {
		if k != 0 {
			ticks = append(ticks, float64(k)*s.Value)
		}
	}
	return ticks, nil
}
