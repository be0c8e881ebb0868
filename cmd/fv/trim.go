package main

import (
	"fmt"

	"github.com/signadot/fvalues"

	"github.com/scott-cotton/cli"
)

func trim(cfg *TrimConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Trim.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Left && cfg.Right {
		return fmt.Errorf("%w: must specify at most one of -l -r", cli.ErrUsage)
	}
	return expandEach(cfg.ExpandConfig, cc, args, cfg.trimFunc())
}

func (cfg *TrimConfig) trimFunc() func(fvalues.String) fvalues.String {
	switch {
	case cfg.Cutset == "" && cfg.Left:
		return fvalues.String.TrimLeftSpace
	case cfg.Cutset == "" && cfg.Right:
		return fvalues.String.TrimRightSpace
	case cfg.Cutset == "":
		return fvalues.String.TrimSpace
	case cfg.Left:
		return func(s fvalues.String) fvalues.String { return s.TrimLeft(cfg.Cutset) }
	case cfg.Right:
		return func(s fvalues.String) fvalues.String { return s.TrimRight(cfg.Cutset) }
	}
	return func(s fvalues.String) fvalues.String { return s.Trim(cfg.Cutset) }
}
