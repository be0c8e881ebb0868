package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("got %v want %v", got, f)
		}
	}
	if f, err := ParseFormat("t"); err != nil || !f.IsText() {
		t.Errorf("got %v %v", f, err)
	}
	if f, err := ParseFormat("y"); err != nil || !f.IsYAML() {
		t.Errorf("got %v %v", f, err)
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestUnmarshalText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil {
		t.Fatal(err)
	}
	if !f.IsJSON() {
		t.Errorf("got %v", f)
	}
	if _, err := Format(7).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}
