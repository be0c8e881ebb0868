package fvalues

import (
	"slices"
	"strings"

	"github.com/signadot/fvalues/debug"
)

// String is an immutable string together with the parts it was made of.
// The zero value is the empty string with no parts.
type String struct {
	text  string
	parts []Part
}

// New makes a String from explicit parts, which must concatenate to text.
// Otherwise it returns an *InconsistentPartsError.
func New(text string, parts []Part) (String, error) {
	if err := checkParts(text, parts); err != nil {
		return String{}, err
	}
	return newString(text, slices.Clone(parts)), nil
}

// MustNew is New, panicking on error.
func MustNew(text string, parts []Part) String {
	s, err := New(text, parts)
	if err != nil {
		panic(err)
	}
	return s
}

// newString assumes the parts are consistent and owned by the result.
func newString(text string, parts []Part) String {
	if len(parts) == 0 {
		parts = nil
	}
	if debug.Parts() {
		debug.Logf("string %q parts %v\n", text, parts)
	}
	return String{text: text, parts: parts}
}

func (s String) String() string {
	return s.text
}

// Text returns the string's text, so that a String can be used as a Part.
func (s String) Text() string {
	return s.text
}

func (String) isPart() {}

func (s String) Len() int {
	return len(s.text)
}

// Parts returns a copy of the string's parts.
func (s String) Parts() []Part {
	if len(s.parts) == 0 {
		return nil
	}
	res := make([]Part, len(s.parts))
	copy(res, s.parts)
	return res
}

// Equal reports whether s and o have the same text and the same parts.
func (s String) Equal(o String) bool {
	if s.text != o.text || len(s.parts) != len(o.parts) {
		return false
	}
	for i := range s.parts {
		if !partEqual(s.parts[i], o.parts[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of s whose parts, and the Strings nested in them,
// are copies too. Other values held by parts are shared.
func (s String) Clone() String {
	if s.parts == nil {
		return String{text: s.text}
	}
	parts := make([]Part, len(s.parts))
	for i, p := range s.parts {
		switch x := p.(type) {
		case String:
			parts[i] = x.Clone()
		case FValue:
			if v, ok := x.Value.(String); ok {
				x.Value = v.Clone()
			}
			parts[i] = x
		default:
			parts[i] = p
		}
	}
	return String{text: s.text, parts: parts}
}

func joinParts(parts []Part) string {
	buf := &strings.Builder{}
	for _, p := range parts {
		buf.WriteString(p.Text())
	}
	return buf.String()
}

func checkParts(text string, parts []Part) error {
	joined := joinParts(parts)
	if joined != text {
		return &InconsistentPartsError{Text: text, Joined: joined}
	}
	return nil
}
