// Package graphcalc compiles and evaluates functions of one variable for
// graphing.
//
// A formula like "2x^2 - 3(x+1)" is normalized so that implicit
// multiplication is explicit, split into tokens, and converted to postfix
// once by Compile. The compiled Expr can then be evaluated at as many sample
// points as needed, and passed to the numeric solver to search for zeros and
// extrema with Newton's method.
//
// Arithmetic follows IEEE-754 float64 semantics: division by zero and
// out-of-domain function arguments produce infinities and NaNs rather than
// errors.
package graphcalc
