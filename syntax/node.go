package syntax

import (
	"strconv"
	"strings"
)

// Node is one of *Str, *Joined, *FormattedValue or *Expr.
type Node interface {
	node()
	String() string
}

// Str is a plain string literal.
type Str struct {
	Value string
}

// Joined is an interpolation sequence: literal segments and embedded
// sub-expressions, in order.
type Joined struct {
	Values []Node
}

// FormattedValue is an embedded sub-expression.
type FormattedValue struct {
	// Source is the exact text of the sub-expression, without the
	// directive.
	Source string
	// Directive is a fmt verb with sequential argument use, such as
	// "%.*f". Empty means the default rendering.
	Directive string
	// Args are the sources of the '*' width and precision arguments
	// Directive consumes before the value, in order.
	Args []string
}

// Expr is any other expression. Its value is known to the caller, only
// its source text is recorded.
type Expr struct {
	Source string
}

func (*Str) node()            {}
func (*Joined) node()         {}
func (*FormattedValue) node() {}
func (*Expr) node()           {}

func (n *Str) String() string {
	return strconv.Quote(n.Value)
}

func (n *Joined) String() string {
	buf := &strings.Builder{}
	buf.WriteString("joined(")
	for i, v := range n.Values {
		if i != 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(v.String())
	}
	buf.WriteByte(')')
	return buf.String()
}

func (n *FormattedValue) String() string {
	buf := &strings.Builder{}
	buf.WriteByte('{')
	buf.WriteString(n.Source)
	if n.Directive != "" {
		buf.WriteByte(':')
		buf.WriteString(n.Directive)
	}
	for _, a := range n.Args {
		buf.WriteString(" *")
		buf.WriteString(a)
	}
	buf.WriteByte('}')
	return buf.String()
}

func (n *Expr) String() string {
	return "expr(" + n.Source + ")"
}

// Join concatenates nodes into one interpolation sequence, merging
// adjacent string literals and inlining nested sequences.
func Join(nodes ...Node) *Joined {
	res := &Joined{}
	for _, n := range nodes {
		switch x := n.(type) {
		case *Joined:
			for _, v := range x.Values {
				res.add(v)
			}
		default:
			res.add(x)
		}
	}
	return res
}

func (j *Joined) add(n Node) {
	s, ok := n.(*Str)
	if !ok {
		j.Values = append(j.Values, n)
		return
	}
	if s.Value == "" {
		return
	}
	if k := len(j.Values); k > 0 {
		if prev, ok := j.Values[k-1].(*Str); ok {
			j.Values[k-1] = &Str{Value: prev.Value + s.Value}
			return
		}
	}
	j.Values = append(j.Values, s)
}
