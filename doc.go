// Package fvalues provides String, a string that remembers where each
// piece of its text came from.
//
// A String is made of parts. A Literal part is text written as is; an
// FValue part records the source text of an interpolated expression, the
// value it evaluated to and the text it was formatted as. Concatenating the
// parts' text always gives the string's text.
//
// Strings are built from the call site:
//
//	env := eval.Env{"numbers": numbers, "ndigits": ndigits}
//	s, err := fvalues.F(env, fmt.Sprintf("approximately %.*f", ndigits, numbers[0]))
//
// F finds its own call in the caller's Go source and takes the
// fmt.Sprintf apart: each verb becomes an FValue whose source is the
// argument's text and whose value is that text evaluated against env. The
// env must bind the names the arguments use, to the same values; arguments
// are evaluated a second time, so they should be free of side effects.
// When the source cannot be found, F warns and the whole text becomes one
// Literal.
//
// Expand does the same for $[expr] templates without needing the source,
// and Concat joins two strings recording the operands' source. Flatten,
// Trim and friends transform a String while keeping its provenance.
//
// # Related Packages
//
//   - github.com/signadot/fvalues/callsite - Call site resolution
//   - github.com/signadot/fvalues/eval - Expression evaluation
//   - github.com/signadot/fvalues/syntax - Interpolation syntax
//   - github.com/signadot/fvalues/encode - Rendering Strings with their parts
package fvalues
