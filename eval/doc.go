// Package eval evaluates the source text of interpolated sub-expressions
// against an Env of named bindings, and renders the results.
//
// Expressions use the expr-lang language (github.com/expr-lang/expr).
// Compiled programs are cached by source text.
//
// # Related Packages
//
//   - github.com/signadot/fvalues/syntax - Sub-expression nodes
package eval
