package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fvalues"
	"github.com/signadot/fvalues/format"
)

func testString(t *testing.T) fvalues.String {
	t.Helper()
	inner := fvalues.MustNew("hi ", []fvalues.Part{fvalues.Literal("hi ")})
	return fvalues.MustNew("hi bob!", []fvalues.Part{
		fvalues.FValue{Source: "greeting", Value: inner, Formatted: "hi "},
		fvalues.FValue{Source: "name", Value: "bob", Formatted: "bob"},
		fvalues.Literal("!"),
	})
}

func TestEncodeText(t *testing.T) {
	s := testString(t)
	if got := MustString(s); got != "hi bob!" {
		t.Errorf("got %q", got)
	}
	if got := MustString(s, EncodeSources(true)); got != "{greeting}hi {name}bob!" {
		t.Errorf("got %q", got)
	}
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			ValueColor: func(v string, _ ...any) string { return "<" + v + ">" },
		},
	}
	if got := MustString(s, EncodeColors(colors)); got != "<hi ><bob>!" {
		t.Errorf("got %q", got)
	}
	if got := MustString(s, EncodeColors(colors), EncodeColors(nil)); got != "hi bob!" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(testString(t), buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	want := `{"text":"hi bob!","parts":[` +
		`{"kind":"fvalue","text":"hi ","source":"greeting","value":{"text":"hi ","parts":[{"kind":"literal","text":"hi "}]}},` +
		`{"kind":"fvalue","text":"bob","source":"name","value":"bob"},` +
		`{"kind":"literal","text":"!"}]}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	s := fvalues.MustNew("ab", []fvalues.Part{fvalues.Literal("a"), fvalues.Literal("b")})
	if err := Encode(s, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"text: ab", "kind: literal", "text: a\n", "text: b\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q not in %q", want, got)
		}
	}
}

func TestNewRecord(t *testing.T) {
	s := fvalues.MustNew("x", []fvalues.Part{fvalues.MustNew("x", []fvalues.Part{fvalues.Literal("x")})})
	want := &Record{
		Text: "x",
		Parts: []PartRecord{{
			Kind:  "string",
			Text:  "x",
			Parts: []PartRecord{{Kind: "literal", Text: "x"}},
		}},
	}
	if diff := cmp.Diff(want, NewRecord(s)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := NewRecord(fvalues.String{}); got.Parts != nil {
		t.Errorf("got %v", got.Parts)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if got := FormatFromOpts(EncodeSources(true)); got != format.TextFormat {
		t.Errorf("got %v", got)
	}
	if got := FormatFromOpts(EncodeFormat(format.JSONFormat), EncodeSources(true)); got != format.JSONFormat {
		t.Errorf("got %v", got)
	}
}
