package fvalues

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fvalues/callsite"
	"github.com/signadot/fvalues/eval"
)

func TestF(t *testing.T) {
	numbers := []float64{1.23456789, 2, 3}
	ndigits := 2
	env := eval.Env{"numbers": numbers, "ndigits": ndigits}
	s, err := F(env, fmt.Sprintf("number is approximately equal to %.*f, "+"rounded to ndigits = %d places.", ndigits, numbers[0], ndigits))
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "number is approximately equal to 1.23, rounded to ndigits = 2 places." {
		t.Errorf("got %q", s)
	}
	want := []Part{
		Literal("number is approximately equal to "),
		FValue{Source: "numbers[0]", Value: 1.23456789, Formatted: "1.23"},
		Literal(", rounded to ndigits = "),
		FValue{Source: "ndigits", Value: 2, Formatted: "2"},
		Literal(" places."),
	}
	if diff := cmp.Diff(want, s.Parts()); diff != "" {
		t.Errorf("parts (-want +got):\n%s", diff)
	}
}

func TestFArguments(t *testing.T) {
	name := "bob"
	v := "abc"
	tests := []struct {
		name string
		got  func() (String, error)
		want []Part
	}{
		{
			name: "constant",
			got:  func() (String, error) { return F(nil, "plain") },
			want: []Part{Literal("plain")},
		},
		{
			name: "empty",
			got:  func() (String, error) { return F(nil, "") },
		},
		{
			name: "source segment",
			got:  func() (String, error) { return F(nil, fmt.Sprintf("%d", (1)+2)) },
			want: []Part{FValue{Source: "(1)+2", Value: 3, Formatted: "3"}},
		},
		{
			name: "percent",
			got:  func() (String, error) { return F(eval.Env{"name": name}, fmt.Sprintf("100%% %v", name)) },
			want: []Part{Literal("100% "), FValue{Source: "name", Value: "bob", Formatted: "bob"}},
		},
		{
			name: "variable",
			got:  func() (String, error) { return F(nil, v) },
			want: []Part{FValue{Source: "v", Value: "abc", Formatted: "abc"}},
		},
		{
			name: "call",
			got:  func() (String, error) { return F(nil, strings.ToUpper(v)) },
			want: []Part{FValue{Source: "strings.ToUpper(v)", Value: "ABC", Formatted: "ABC"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.got()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, s.Parts()); diff != "" {
				t.Errorf("parts (-want +got):\n%s", diff)
			}
			if joinParts(s.Parts()) != s.String() {
				t.Errorf("parts %v do not make up %q", s.Parts(), s)
			}
		})
	}
}

func TestFEvaluationError(t *testing.T) {
	missing := 1
	_, err := F(eval.Env{}, fmt.Sprintf("%d", missing))
	if !errors.Is(err, ErrEvaluation) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, eval.ErrUndefined) {
		t.Errorf("got %v", err)
	}
	var ee *EvaluationError
	if !errors.As(err, &ee) || ee.Source != "missing" {
		t.Errorf("got %v", err)
	}
}

func TestFInconsistentEnv(t *testing.T) {
	var warnings []error
	defer SetWarningHandler(func(w error) { warnings = append(warnings, w) })()

	a, b, x := 7, 2, 1
	tests := []struct {
		name string
		got  func() (String, error)
		want []Part
	}{
		{
			name: "integer division",
			got:  func() (String, error) { return F(eval.Env{"a": a, "b": b}, fmt.Sprintf("%d", a/b)) },
			want: []Part{FValue{Source: `fmt.Sprintf("%d", a/b)`, Value: "3", Formatted: "3"}},
		},
		{
			name: "different binding",
			got:  func() (String, error) { return F(eval.Env{"x": 2}, fmt.Sprintf("x=%d", x)) },
			want: []Part{FValue{Source: `fmt.Sprintf("x=%d", x)`, Value: "x=1", Formatted: "x=1"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings = nil
			s, err := tt.got()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, s.Parts()); diff != "" {
				t.Errorf("parts (-want +got):\n%s", diff)
			}
			if len(warnings) != 1 || !errors.Is(warnings[0], ErrInconsistentParts) {
				t.Errorf("got warnings %v", warnings)
			}
		})
	}
}

func errOf(_ String, err error) error {
	return err
}

func TestFAmbiguous(t *testing.T) {
	errs := []error{errOf(F(nil, "x")), errOf(F(nil, "y"))}
	for _, err := range errs {
		if !errors.Is(err, ErrAmbiguousInvocation) {
			t.Errorf("got %v", err)
		}
		if !errors.Is(err, callsite.ErrAmbiguous) {
			t.Errorf("got %v", err)
		}
	}
}

func TestMustFPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	undefined := 0
	MustF(nil, fmt.Sprintf("%d", undefined))
}

type noSource struct{}

func (noSource) Resolve(int, ...string) (*callsite.Site, error) {
	return nil, fmt.Errorf("%w: test", callsite.ErrNoSource)
}

func TestFNoSource(t *testing.T) {
	defer SetResolver(noSource{})()
	var warnings []error
	defer SetWarningHandler(func(w error) { warnings = append(warnings, w) })()

	x := 1
	s, err := F(nil, fmt.Sprintf("a %d", x))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Part{Literal("a 1")}, s.Parts()); diff != "" {
		t.Errorf("parts (-want +got):\n%s", diff)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings", len(warnings))
	}
	var w *NoSourceAvailableWarning
	if !errors.As(warnings[0], &w) || !errors.Is(w, callsite.ErrNoSource) {
		t.Errorf("got %v", warnings[0])
	}

	c := Concat(s, "b")
	if diff := cmp.Diff([]Part{s, Literal("b")}, c.Parts()); diff != "" {
		t.Errorf("concat parts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Part{Literal("a 1"), Literal("b")}, c.Flatten().Parts()); diff != "" {
		t.Errorf("flattened parts (-want +got):\n%s", diff)
	}
	if len(warnings) != 1 {
		t.Errorf("concat warned: %v", warnings)
	}
}

func TestFCached(t *testing.T) {
	r := callsite.NewSourceResolver()
	defer SetResolver(r)()
	for i := 0; i < 30000; i++ {
		s := MustF(eval.Env{"i": i}, fmt.Sprintf("%d", i))
		if len(s.Parts()) != 1 {
			t.Fatalf("got %v", s.Parts())
		}
	}
	st := r.Stats()
	if st.Parses != 1 || st.Sites != 1 {
		t.Errorf("got %+v", st)
	}
}

func BenchmarkF(b *testing.B) {
	env := eval.Env{"n": 0}
	for i := 0; i < b.N; i++ {
		n := i
		env["n"] = n
		MustF(env, fmt.Sprintf("n=%d", n))
	}
}

func TestExpand(t *testing.T) {
	s, err := Expand(eval.Env{"name": "bob", "n": 2}, `hi $[name], .[n * 2]!`)
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "hi bob, 4!" {
		t.Errorf("got %q", s)
	}
	want := []Part{
		Literal("hi "),
		FValue{Source: "name", Value: "bob", Formatted: "bob"},
		Literal(", "),
		FValue{Source: "n * 2", Value: 4, Formatted: "4"},
		Literal("!"),
	}
	if diff := cmp.Diff(want, s.Parts()); diff != "" {
		t.Errorf("parts (-want +got):\n%s", diff)
	}
	if _, err := Expand(nil, "$[nope]"); !errors.Is(err, ErrEvaluation) {
		t.Errorf("got %v", err)
	}
}

func TestNew(t *testing.T) {
	s, err := New("ab", []Part{Literal("a"), FValue{Source: "x", Value: "b", Formatted: "b"}})
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Errorf("got %d", s.Len())
	}
	_, err = New("abc", []Part{Literal("ab")})
	var ie *InconsistentPartsError
	if !errors.As(err, &ie) || !errors.Is(err, ErrInconsistentParts) {
		t.Fatalf("got %v", err)
	}
	if got := ie.Diff(); got != "ab{+c+}" {
		t.Errorf("got diff %q", got)
	}
}

func TestClone(t *testing.T) {
	s := Concat(MustF(nil, "hello "), "world")
	c := s.Clone()
	if !c.Equal(s) {
		t.Errorf("clone %v != %v", c.Parts(), s.Parts())
	}
	if &c.parts[0] == &s.parts[0] {
		t.Error("clone shares parts")
	}
	if !(String{}).Clone().Equal(String{}) {
		t.Error("empty clone")
	}
}
