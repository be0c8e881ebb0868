// Package syntax holds the syntax nodes that interpolated strings are
// decomposed from.
//
// Nodes come from two places: Go source recovered at a call site (FromGo,
// Operand), where fmt.Sprintf with a constant format is the interpolation
// construct, and $[expr] templates (ParseTemplate).
//
// # Related Packages
//
//   - github.com/signadot/fvalues/callsite - Go source lookup for call sites
//   - github.com/signadot/fvalues/eval - Evaluation of sub-expression source
package syntax
