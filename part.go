package fvalues

import (
	"fmt"
	"reflect"
)

// Part is one piece of a String: a Literal, an FValue, or a String used
// as an opaque unit.
type Part interface {
	// Text is the text the part contributes to the string.
	Text() string
	isPart()
}

// Literal is text that was written as is.
type Literal string

func (l Literal) Text() string {
	return string(l)
}

func (Literal) isPart() {}

// FValue is text produced by formatting the value of an expression.
type FValue struct {
	// Source is the expression as written.
	Source string
	// Value is what the expression evaluated to. It may be a String.
	Value any
	// Formatted is the text Value was rendered as.
	Formatted string
}

func (v FValue) Text() string {
	return v.Formatted
}

func (FValue) isPart() {}

func (v FValue) String() string {
	return fmt.Sprintf("FValue(source=%q, value=%#v, formatted=%q)", v.Source, v.Value, v.Formatted)
}

func partEqual(a, b Part) bool {
	switch x := a.(type) {
	case Literal:
		y, ok := b.(Literal)
		return ok && x == y
	case FValue:
		y, ok := b.(FValue)
		return ok && x.Source == y.Source && x.Formatted == y.Formatted && valueEqual(x.Value, y.Value)
	case String:
		y, ok := b.(String)
		return ok && x.Equal(y)
	}
	return false
}

func valueEqual(a, b any) bool {
	if x, ok := a.(String); ok {
		y, ok := b.(String)
		return ok && x.Equal(y)
	}
	return reflect.DeepEqual(a, b)
}
