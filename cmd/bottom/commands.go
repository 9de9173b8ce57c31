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
			Name:        "F",
			Aliases:     []string{"framing"},
			Description: "framing: current/c, legacy/l",
			Type:        cli.NamedFuncOpt(cfg.framingFunc(), "(framing)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "bottom").
		WithSynopsis("bottom [opts] command [opts]").
		WithDescription("bottom encodes bytes as emoji and back.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bottomMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			TableCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			LSPCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [-s string] [-wrap n] [files]").
		WithDescription("encode files, stdin or a string as a token stream").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bottomEncode(cfg, cc, args)
		})
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "dec").
		WithSynopsis("decode [-raw] [-s tokens] [files]").
		WithDescription("decode token streams from files, stdin or a string").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bottomDecode(cfg, cc, args)
		})
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
		})
	return cli.NewCommandAt(&cfg.Table, "table").
		WithAliases("t").
		WithSynopsis("table [-where expr] [-O format]").
		WithDescription("print the glyph table, optionally filtered by an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bottomTable(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-s string] [-tokens] [files]").
		WithDescription("check that inputs survive an encode/decode round trip").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bottomCheck(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff [-r] <from> <to>").
		WithDescription("decode two token files and diff their contents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bottomDiff(cfg, cc, args)
		})
}

func LSPCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LSPConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.LSP, "lsp").
		WithSynopsis("lsp [-gops]").
		WithDescription("run the bottom language server on stdio").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bottomLSP(cfg, cc, args)
		})
}
