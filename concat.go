package fvalues

import (
	"github.com/signadot/fvalues/callsite"
	"github.com/signadot/fvalues/debug"
	"github.com/signadot/fvalues/syntax"
)

// Operand is what can be concatenated.
type Operand interface {
	string | String
}

// Concat returns left followed by right.
//
// When the call can be found in the caller's source, a constant string
// operand becomes a Literal and any other operand an FValue whose source is
// the operand's expression. Otherwise the result has two parts, each
// operand as a whole: a String as a String part, a string as a Literal.
func Concat[L, R Operand](left L, right R) String {
	return concat(any(left), any(right))
}

func concat(left, right any) String {
	text := operandText(left) + operandText(right)
	site, err := resolver().Resolve(2, "Concat")
	if err == nil {
		var parts []Part
		parts, err = concatParts(site, left, right)
		if err == nil {
			if err = checkParts(text, parts); err == nil {
				return newString(text, parts)
			}
		}
	}
	if debug.Parts() {
		debug.Logf("concat %q: opaque operands: %v\n", text, err)
	}
	return newString(text, []Part{asPart(left), asPart(right)})
}

func concatParts(site *callsite.Site, left, right any) ([]Part, error) {
	ns, err := concatNode(site)
	if err != nil {
		return nil, err
	}
	l, err := decompose(ns[0], nil, left)
	if err != nil {
		return nil, err
	}
	r, err := decompose(ns[1], nil, right)
	if err != nil {
		return nil, err
	}
	return append(l, r...), nil
}

func concatNode(site *callsite.Site) ([2]syntax.Node, error) {
	if ns, ok := concatNodes.Load(site); ok {
		return ns.([2]syntax.Node), nil
	}
	call := site.Call
	if len(call.Args) != 2 || call.Ellipsis.IsValid() {
		return [2]syntax.Node{}, ErrAmbiguousInvocation
	}
	ns := [2]syntax.Node{
		syntax.Operand(call.Args[0], site.Text),
		syntax.Operand(call.Args[1], site.Text),
	}
	concatNodes.Store(site, ns)
	return ns, nil
}

func operandText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case String:
		return x.text
	}
	return ""
}

func asPart(v any) Part {
	if s, ok := v.(String); ok {
		return s
	}
	return Literal(operandText(v))
}
