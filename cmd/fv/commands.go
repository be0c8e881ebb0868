package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "fv").
		WithSynopsis("fv [opts] command [opts]").
		WithDescription("fv shows where the parts of an expanded string come from.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fvMain(cfg, cc, args)
		}).
		WithSubs(
			ExpandCommand(cfg),
			TrimCommand(cfg),
			FuncsCommand(cfg))
}

func envOpts(env map[string]any) []*cli.Opt {
	return []*cli.Opt{
		&cli.Opt{
			Name:        "e",
			Description: "bind a value, parsed as yaml",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(env)), "(path=val)"),
		},
		&cli.Opt{
			Name:        "f",
			Description: "bind the values of a yaml file",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envFileOptTypeFunc(env)), "(filepath)"),
		},
	}
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func envFileOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFile(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExpandConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, envOpts(cfg.Env)...)
	cmd := cli.NewCommand("expand").
		WithAliases("x").
		WithSynopsis("expand [-e path=val]... [-f env.yaml] [templates]").
		WithDescription("expand $[expr] templates and show their parts").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return expand(cfg, cc, args)
		})
	cfg.Expand = cmd
	return cmd
}

func TrimCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TrimConfig{ExpandConfig: &ExpandConfig{MainConfig: mainCfg, Env: map[string]any{}}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, envOpts(cfg.Env)...)
	cmd := cli.NewCommand("trim").
		WithAliases("t").
		WithSynopsis("trim [-l|-r] [-cutset chars] [-e path=val]... [templates]").
		WithDescription("expand templates, trim them and show their parts").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return trim(cfg, cc, args)
		})
	cfg.Trim = cmd
	return cmd
}

func FuncsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FuncsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("funcs").
		WithSynopsis("funcs").
		WithDescription("list the functions available in expressions").
		WithRun(func(cc *cli.Context, args []string) error {
			return funcs(cfg, cc, args)
		})
	cfg.Funcs = cmd
	return cmd
}
