package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
	"github.com/signadot/fvalues"
)

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"name=bob", "user.role=admin", "user.tags=[a, b]"} {
		if err := envFunc(env, a); err != nil {
			t.Fatal(err)
		}
	}
	want := map[string]any{
		"name": "bob",
		"user": map[string]any{"role": "admin", "tags": []any{"a", "b"}},
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := envFunc(env, "name"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
	if err := envFunc(env, "name.x=1"); err == nil {
		t.Error("expected error")
	}
}

func TestEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(file, []byte("name: bob\n"), 0644); err != nil {
		t.Fatal(err)
	}
	env := map[string]any{}
	if err := envFile(env, file); err != nil {
		t.Fatal(err)
	}
	if env["name"] != "bob" {
		t.Errorf("got %v", env)
	}
}

func TestTrimFunc(t *testing.T) {
	s := fvalues.MustNew("xx hi xx", []fvalues.Part{fvalues.Literal("xx hi xx")})
	tests := []struct {
		cfg  TrimConfig
		want string
	}{
		{cfg: TrimConfig{}, want: "xx hi xx"},
		{cfg: TrimConfig{Cutset: "x"}, want: " hi "},
		{cfg: TrimConfig{Cutset: "x", Left: true}, want: " hi xx"},
		{cfg: TrimConfig{Cutset: "x", Right: true}, want: "xx hi "},
	}
	for _, tt := range tests {
		if got := tt.cfg.trimFunc()(s).String(); got != tt.want {
			t.Errorf("%+v: got %q want %q", tt.cfg, got, tt.want)
		}
	}
	sp := fvalues.MustNew(" a ", []fvalues.Part{fvalues.Literal(" a ")})
	if got := (&TrimConfig{Left: true}).trimFunc()(sp).String(); got != "a " {
		t.Errorf("got %q", got)
	}
}
