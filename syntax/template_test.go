package syntax

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type templateTest struct {
	in  string
	out *Joined
}

func str(v string) *Str { return &Str{Value: v} }

func fv(src string) *FormattedValue { return &FormattedValue{Source: src} }

func TestParseTemplate(t *testing.T) {
	tests := []templateTest{
		{
			in:  "abc",
			out: &Joined{Values: []Node{str("abc")}},
		},
		{
			in:  "",
			out: &Joined{},
		},
		{
			in:  "$[",
			out: &Joined{Values: []Node{str("$[")}},
		},
		{
			in:  "$[x]",
			out: &Joined{Values: []Node{fv("x")}},
		},
		{
			in:  " $[x]",
			out: &Joined{Values: []Node{str(" "), fv("x")}},
		},
		{
			in:  ".[x]",
			out: &Joined{Values: []Node{fv("x")}},
		},
		{
			in:  "$[x",
			out: &Joined{Values: []Node{str("$[x")}},
		},
		{
			in:  "some $[stuff] $[here]",
			out: &Joined{Values: []Node{str("some "), fv("stuff"), str(" "), fv("here")}},
		},
		{
			in:  "some $[ stuff ] $[here] trailing",
			out: &Joined{Values: []Node{str("some "), fv("stuff"), str(" "), fv("here"), str(" trailing")}},
		},
		{
			in:  "$abc",
			out: &Joined{Values: []Node{str("$abc")}},
		},
		{
			in:  `$[a\]b]!`,
			out: &Joined{Values: []Node{fv("a]b"), str("!")}},
		},
		{
			in:  "x $[a $[b]",
			out: &Joined{Values: []Node{str("x $[a "), fv("b")}},
		},
		{
			in:  "$[1 + 2]",
			out: &Joined{Values: []Node{fv("1 + 2")}},
		},
	}
	for i := range tests {
		tc := &tests[i]
		got, err := ParseTemplate(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.out, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", tc.in, diff)
		}
	}
}

func TestParseTemplateEmptyExpr(t *testing.T) {
	_, err := ParseTemplate("a $[ ] b")
	if !errors.Is(err, ErrTemplate) {
		t.Fatalf("got %v want %v", err, ErrTemplate)
	}
}

func TestParseTemplateCached(t *testing.T) {
	a, err := ParseTemplate("hello $[name]")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseTemplate("hello $[name]")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("template parsed twice")
	}
}
