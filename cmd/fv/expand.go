package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/fvalues"
	"github.com/signadot/fvalues/encode"

	"github.com/scott-cotton/cli"
)

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		return err
	}
	return expandEach(cfg, cc, args, func(s fvalues.String) fvalues.String { return s })
}

// expandEach expands the templates in args, or stdin if there are none, and
// writes the results of f on them.
func expandEach(cfg *ExpandConfig, cc *cli.Context, args []string, f func(fvalues.String) fvalues.String) error {
	if len(args) == 0 {
		in, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
		args = []string{strings.TrimSuffix(string(in), "\n")}
	}
	opts := cfg.MainConfig.encOpts(cc.Out)
	for i, tmpl := range args {
		s, err := fvalues.Expand(cfg.Env, tmpl)
		if err != nil {
			return fmt.Errorf("error expanding template %d: %w", i, err)
		}
		if err := encode.Encode(f(s), cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}
