package graphcalc

import "strconv"

// DefaultVariable is the free variable of a formula unless changed with the
// Variable option.
const DefaultVariable = "x"

// Option is an option for compiling a formula.
type Option interface {
	option(config) config
}

type (
	varopt    string
	strictopt bool
)

// config holds the settings that compiling a formula depends on.
type config struct {
	// variable is the name of the free variable.
	variable string
	// strict makes stack underflow on unary operators and leftover operands
	// evaluation errors instead of being ignored.
	strict bool
}

func newConfig(opts []Option) config {
	c := config{variable: DefaultVariable}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}

// Variable sets the letter used as the free variable. It must be a single
// lowercase ASCII letter, because implicit multiplication is resolved on
// lowercase letters.
func Variable(r rune) Option {
	if r < 'a' || r > 'z' {
		panic("graphcalc: invalid variable " + strconv.QuoteRune(r))
	}
	return varopt(string(r))
}

func (o varopt) option(c config) config {
	c.variable = string(o)
	return c
}

// Strict makes evaluation reject malformed postfix that the legacy evaluator
// tolerates. In legacy mode, a negation or function applied to an empty
// operand stack does nothing, and operands left over at the end are ignored
// in favor of the topmost one. In strict mode both are evaluation errors.
func Strict() Option {
	return strictopt(true)
}

func (o strictopt) option(c config) config {
	c.strict = bool(o)
	return c
}
