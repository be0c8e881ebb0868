package fvalues

import (
	"errors"
	"fmt"
	"sync"

	"github.com/signadot/fvalues/callsite"
	"github.com/signadot/fvalues/eval"
	"github.com/signadot/fvalues/syntax"

	"golang.org/x/tools/go/ast/astutil"
)

// syntax of resolved sites, keyed by *callsite.Site
var (
	fNodes      sync.Map
	concatNodes sync.Map
)

// F makes a String from s, recording which parts of it were formatted from
// expressions.
//
// F must be called directly with the expression building s, so that it can
// be found in the caller's source:
//
//	s, err := fvalues.F(env, fmt.Sprintf("%s has %d items", name, n))
//
// Each argument of a fmt.Sprintf with a constant format becomes an FValue
// whose value is the argument's source evaluated against env. Constant
// strings become Literals. Any other expression becomes one FValue holding
// s.
//
// If the source cannot be found, a *NoSourceAvailableWarning is passed to
// the warning handler and the result has s as its only part. If the values
// evaluated against env do not format to s, the *InconsistentPartsError is
// passed to the warning handler and the result is one FValue holding s.
func F(env eval.Env, s string) (String, error) {
	return fromCallSite(env, s)
}

// MustF is F, panicking on error.
func MustF(env eval.Env, s string) String {
	res, err := fromCallSite(env, s)
	if err != nil {
		panic(err)
	}
	return res
}

func fromCallSite(env eval.Env, s string) (String, error) {
	site, err := resolver().Resolve(2, "F", "MustF")
	if err != nil {
		if errors.Is(err, callsite.ErrAmbiguous) {
			return String{}, fmt.Errorf("%w: %w", ErrAmbiguousInvocation, err)
		}
		warn(&NoSourceAvailableWarning{Err: err})
		return literalString(s), nil
	}
	n, err := fNode(site)
	if err != nil {
		return String{}, err
	}
	parts, err := decompose(n, env, s)
	if err != nil {
		return String{}, err
	}
	if err := checkParts(s, parts); err != nil {
		// the env disagrees with what Go computed
		warn(err)
		arg := astutil.Unparen(site.Call.Args[1])
		return newString(s, []Part{FValue{Source: site.Text(arg), Value: s, Formatted: s}}), nil
	}
	return newString(s, parts), nil
}

func fNode(site *callsite.Site) (syntax.Node, error) {
	if n, ok := fNodes.Load(site); ok {
		return n.(syntax.Node), nil
	}
	call := site.Call
	if len(call.Args) != 2 || call.Ellipsis.IsValid() {
		return nil, fmt.Errorf("%w: %s:%d: expected 2 arguments", ErrAmbiguousInvocation, site.File, site.Line)
	}
	n := syntax.FromGo(call.Args[1], site.Text)
	fNodes.Store(site, n)
	return n, nil
}

func literalString(s string) String {
	if s == "" {
		return String{}
	}
	return newString(s, []Part{Literal(s)})
}

// Expand makes a String from a template in which $[expr] and .[expr] are
// replaced by the value of expr evaluated against env. A backslash escapes
// the next character inside an expression.
func Expand(env eval.Env, tmpl string) (String, error) {
	j, err := syntax.ParseTemplate(tmpl)
	if err != nil {
		return String{}, err
	}
	parts, err := decompose(j, env, nil)
	if err != nil {
		return String{}, err
	}
	return newString(joinParts(parts), parts), nil
}

// MustExpand is Expand, panicking on error.
func MustExpand(env eval.Env, tmpl string) String {
	res, err := Expand(env, tmpl)
	if err != nil {
		panic(err)
	}
	return res
}
