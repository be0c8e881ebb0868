package fvalues

import (
	"fmt"

	"github.com/signadot/fvalues/eval"
	"github.com/signadot/fvalues/syntax"
)

// decompose turns the syntax of an interpolated string into parts.
// Embedded sub-expressions are evaluated against env. fallback is the
// already known value of the node, used when it is an *syntax.Expr; it
// must be a string or a String.
func decompose(n syntax.Node, env eval.Env, fallback any) ([]Part, error) {
	switch x := n.(type) {
	case *syntax.Str:
		if x.Value == "" {
			return nil, nil
		}
		return []Part{Literal(x.Value)}, nil
	case *syntax.Joined:
		var res []Part
		for _, c := range x.Values {
			ps, err := decompose(c, env, nil)
			if err != nil {
				return nil, err
			}
			res = append(res, ps...)
		}
		return res, nil
	case *syntax.FormattedValue:
		p, err := formatValue(x, env)
		if err != nil {
			return nil, err
		}
		return []Part{p}, nil
	case *syntax.Expr:
		var text string
		switch v := fallback.(type) {
		case string:
			text = v
		case String:
			text = v.text
		default:
			return nil, fmt.Errorf("%w: %s has no known value", ErrEvaluation, x.Source)
		}
		return []Part{FValue{Source: x.Source, Value: fallback, Formatted: text}}, nil
	}
	return nil, fmt.Errorf("unexpected node %T", n)
}

func formatValue(n *syntax.FormattedValue, env eval.Env) (FValue, error) {
	stars := make([]any, len(n.Args))
	for i, src := range n.Args {
		v, err := eval.Eval(src, env)
		if err != nil {
			return FValue{}, &EvaluationError{Source: src, Err: err}
		}
		stars[i] = v
	}
	v, err := eval.Eval(n.Source, env)
	if err != nil {
		return FValue{}, &EvaluationError{Source: n.Source, Err: err}
	}
	text, err := eval.Format(n.Directive, stars, v)
	if err != nil {
		return FValue{}, &EvaluationError{Source: n.Source, Err: err}
	}
	return FValue{Source: n.Source, Value: v, Formatted: text}, nil
}
