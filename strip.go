package fvalues

import (
	"strings"
	"unicode"
)

type trimFunc func(string) string

func trimLeftSpace(v string) string {
	return strings.TrimLeftFunc(v, unicode.IsSpace)
}

func trimRightSpace(v string) string {
	return strings.TrimRightFunc(v, unicode.IsSpace)
}

// TrimSpace removes leading and trailing white space. Parts left empty are
// dropped, and the boundary parts are trimmed in place: an FValue keeps its
// source and value.
func (s String) TrimSpace() String {
	return s.trim(trimLeftSpace, trimRightSpace)
}

func (s String) TrimLeftSpace() String {
	return s.trim(trimLeftSpace, nil)
}

func (s String) TrimRightSpace() String {
	return s.trim(nil, trimRightSpace)
}

// Trim removes leading and trailing characters contained in cutset, as
// TrimSpace does for white space.
func (s String) Trim(cutset string) String {
	return s.trim(
		func(v string) string { return strings.TrimLeft(v, cutset) },
		func(v string) string { return strings.TrimRight(v, cutset) },
	)
}

func (s String) TrimLeft(cutset string) String {
	return s.trim(func(v string) string { return strings.TrimLeft(v, cutset) }, nil)
}

func (s String) TrimRight(cutset string) String {
	return s.trim(nil, func(v string) string { return strings.TrimRight(v, cutset) })
}

func (s String) trim(left, right trimFunc) String {
	text := s.text
	parts := s.Parts()
	if left != nil {
		text = left(text)
		parts = trimParts(parts, left, nil)
	}
	if right != nil {
		text = right(text)
		parts = trimParts(parts, nil, right)
	}
	if text == "" {
		return String{}
	}
	return newString(text, dropEmpty(parts))
}

// trimParts trims the first part with left, or the last one with right,
// removing parts until one is left non-empty.
func trimParts(parts []Part, left, right trimFunc) []Part {
	for len(parts) > 0 {
		i := 0
		if right != nil {
			i = len(parts) - 1
		}
		p := trimPart(parts[i], left, right)
		if p.Text() != "" {
			parts[i] = p
			break
		}
		parts = append(parts[:i], parts[i+1:]...)
	}
	return parts
}

func trimPart(p Part, left, right trimFunc) Part {
	f := left
	if f == nil {
		f = right
	}
	switch x := p.(type) {
	case Literal:
		return Literal(f(string(x)))
	case FValue:
		x.Formatted = f(x.Formatted)
		return x
	case String:
		return x.trim(left, right)
	}
	return p
}

func dropEmpty(parts []Part) []Part {
	var res []Part
	for _, p := range parts {
		if p.Text() != "" {
			res = append(res, p)
		}
	}
	return res
}
