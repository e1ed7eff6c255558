package graphcalc

import (
	"regexp"
	"strings"
	"sync"
)

var (
	// digitLetter matches 4x -> 4*x and 2sin -> 2*sin.
	digitLetter = regexp.MustCompile(`([0-9])([a-z])`)
	// letterDigit matches x4 -> x*4.
	letterDigit = regexp.MustCompile(`([a-z])([0-9])`)
	// closeLetter matches )4 -> )*4 and )x -> )*x.
	closeLetter = regexp.MustCompile(`\)([0-9a-z])`)
)

// Normalize rewrites a formula so that implicit multiplication is explicit and
// scientific notation is spelled as a power of ten, e.g. "2x(x+1)E3" becomes
// "2*x*(x+1)*10^3". It never fails; malformed formulas are reported when they
// are compiled.
func Normalize(raw string, opts ...Option) string {
	c := newConfig(opts)
	return normalize(raw, c.variable, true)
}

// normalize applies the implicit multiplication rules in order. If sci is
// true, E is also replaced by *10^.
func normalize(s, variable string, sci bool) string {
	s = digitLetter.ReplaceAllString(s, "$1*$2")
	s = letterDigit.ReplaceAllString(s, "$1*$2")
	s = openAfter(variable).ReplaceAllString(s, "$1*(")
	s = closeLetter.ReplaceAllString(s, ")*$1")
	if sci {
		s = strings.ReplaceAll(s, "E", "*10^")
	}
	return s
}

// openAfter returns the pattern for an opening parenthesis that follows a
// digit, the variable, or a closing parenthesis. Function names are not
// matched, so sin(x) keeps its argument list. variable must be a single
// lowercase letter.
func openAfter(variable string) *regexp.Regexp {
	k := variable[0] - 'a'
	openAfterOnce[k].Do(func() {
		openAfterRe[k] = regexp.MustCompile(`([0-9)]|\b` + variable + `)\(`)
	})
	return openAfterRe[k]
}

// Patterns for openAfter, one per possible variable.
var (
	openAfterOnce [26]sync.Once
	openAfterRe   [26]*regexp.Regexp
)
