package main

import (
	"fmt"

	"github.com/signadot/fvalues/eval"

	"github.com/scott-cotton/cli"
)

func funcs(cfg *FuncsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Funcs.Parse(cc, args); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "available expression functions:\n")
	for _, f := range eval.Funcs() {
		fmt.Fprintf(cc.Out, "\t- %s\n", f)
	}
	return nil
}
