package graphcalc

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ErrZeroDenominator is returned when reducing a fraction with a zero
// denominator.
var ErrZeroDenominator = errors.New("zero denominator")

// ErrFractionRange is returned when a reduced fraction cannot have a positive
// denominator because negating a term would overflow.
var ErrFractionRange = errors.New("fraction out of range")

// Fraction is a ratio of integers. Fractions returned by this package are in
// lowest terms with a positive denominator.
type Fraction struct {
	Num, Den int
}

// Reduce divides a numerator and denominator by their greatest common
// divisor. The sign is carried by the numerator, so Reduce(3, -6) is -1/2.
// Reduce(0, n) is 0/1 for any nonzero n. If the denominator would be
// math.MinInt or the numerator would have to negate math.MinInt, the error
// is ErrFractionRange.
func Reduce(num, den int) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	g := gcd(abs(num), abs(den))
	num, den = num/g, den/g
	if den < 0 {
		if den == math.MinInt || num == math.MinInt {
			return Fraction{}, ErrFractionRange
		}
		num, den = -num, -den
	}
	return Fraction{Num: num, Den: den}, nil
}

// gcd computes the greatest common divisor of non-negative integers with
// Euclid's algorithm.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Float64 returns the value of the fraction.
func (f Fraction) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

func (f Fraction) String() string {
	if f.Den == 1 {
		return strconv.Itoa(f.Num)
	}
	return strconv.Itoa(f.Num) + "/" + strconv.Itoa(f.Den)
}

// PiString formats the fraction as a multiple of π, e.g. π/2, -3π/4, or 2π.
func (f Fraction) PiString() string {
	var b strings.Builder
	switch f.Num {
	case 0:
		return "0"
	case 1:
	case -1:
		b.WriteByte('-')
	default:
		b.WriteString(strconv.Itoa(f.Num))
	}
	b.WriteString("π")
	if f.Den != 1 {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(f.Den))
	}
	return b.String()
}

// Scale is an axis increment entered as text.
type Scale struct {
	// Value is the increment.
	Value float64
	// Frac is the increment as a reduced fraction.
	Frac Fraction
	// Precision is the number of decimals to show on axis labels: the number
	// of digits after the point for decimal scales, or 2 for fractions.
	Precision int
}

// Label formats an axis position to the scale's precision.
func (s Scale) Label(x float64) string {
	return strconv.FormatFloat(x, 'f', s.Precision, 64)
}

var scaleText = regexp.MustCompile(`^[0-9/.]*$`)

// ParseScale parses an axis increment, either a fraction like "1/4" or a
// decimal like "0.25". The increment must be positive.
func ParseScale(s string) (Scale, error) {
	if s == "" || !scaleText.MatchString(s) {
		return Scale{}, &ScaleError{Text: s, Reason: "want a fraction or decimal"}
	}
	if k := strings.IndexByte(s, '/'); k >= 0 {
		num, err := strconv.Atoi(s[:k])
		if err != nil {
			return Scale{}, &ScaleError{Text: s, Reason: "invalid numerator"}
		}
		den, err := strconv.Atoi(s[k+1:])
		if err != nil {
			return Scale{}, &ScaleError{Text: s, Reason: "invalid denominator"}
		}
		f, err := Reduce(num, den)
		if err != nil {
			return Scale{}, &ScaleError{Text: s, Reason: err.Error()}
		}
		if f.Num <= 0 {
			return Scale{}, &ScaleError{Text: s, Reason: "must be positive"}
		}
		return Scale{Value: float64(num) / float64(den), Frac: f, Precision: 2}, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Scale{}, &ScaleError{Text: s, Reason: "invalid decimal"}
	}
	if r.Sign() <= 0 {
		return Scale{}, &ScaleError{Text: s, Reason: "must be positive"}
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Scale{}, &ScaleError{Text: s, Reason: "too many digits"}
	}
	f, err := Reduce(int(r.Num().Int64()), int(r.Denom().Int64()))
	if err != nil {
		return Scale{}, &ScaleError{Text: s, Reason: err.Error()}
	}
	v, _ := r.Float64()
	p := 0
	if k := strings.IndexByte(s, '.'); k >= 0 {
		p = len(s) - k - 1
	}
	return Scale{Value: v, Frac: f, Precision: p}, nil
}

// ScaleError is an error indicating an invalid axis increment.
type ScaleError struct {
	// Text is the increment as given.
	Text string
	// Reason describes what is wrong.
	Reason string
}

func (err *ScaleError) Error() string {
	return "invalid scale " + strconv.Quote(err.Text) + ": " + err.Reason
}
