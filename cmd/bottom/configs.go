package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/bottom/codec"
	"github.com/signadot/bottom/config"
	"github.com/signadot/bottom/encode"
	"github.com/signadot/bottom/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='configuration file (yaml), default $BOTTOM_CONFIG'"`
	Color      string `cli:"name=color desc='color output: auto, always or never'"`

	Framing *codec.Framing

	// Conf is loaded by bottomMain before any subcommand runs.
	Conf *config.Config

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) framingFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := codec.ParseFraming(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Framing = &f
		return f, nil
	})
}

func (cfg *MainConfig) loadConfig() error {
	var (
		c   *config.Config
		err error
	)
	if cfg.ConfigFile != "" {
		c, err = config.Load(cfg.ConfigFile)
	} else {
		c, err = config.LoadEnv()
	}
	if err != nil {
		return err
	}
	if cfg.Color != "" {
		c.Color = config.ColorMode(cfg.Color)
	}
	if cfg.Framing != nil {
		c.Framing = cfg.Framing.String()
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Conf = c
	return nil
}

func (cfg *MainConfig) conf() *config.Config {
	if cfg.Conf == nil {
		return config.Default()
	}
	return cfg.Conf
}

// encFraming is the framing used for output token streams.
func (cfg *MainConfig) encFraming() codec.Framing {
	return cfg.conf().FramingValue()
}

// decoder sniffs the framing of its input unless -F was given.
func (cfg *MainConfig) decoder() *codec.Decoder {
	if cfg.Framing != nil {
		return codec.NewDecoder(codec.DecodeFraming(*cfg.Framing))
	}
	return codec.NewDecoder()
}

// useColor reports whether output to w should be colored.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch cfg.conf().Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFraming(cfg.encFraming()),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type EncodeConfig struct {
	*MainConfig
	String string `cli:"name=s desc='encode the given string instead of files'"`
	Wrap   int    `cli:"name=wrap desc='start a new line every n bytes'"`

	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Raw    bool   `cli:"name=raw desc='write decoded bytes as is'"`
	String string `cli:"name=s desc='decode the given tokens instead of files'"`

	Decode *cli.Command
}

type TableConfig struct {
	*MainConfig
	Where  string `cli:"name=where desc='expression selecting table rows'"`
	Format format.Format

	Table *cli.Command
}

func (cfg *TableConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = f
		return f, nil
	})
}

type CheckConfig struct {
	*MainConfig
	String string `cli:"name=s desc='check the given string instead of files'"`
	Tokens bool   `cli:"name=tokens desc='inputs are token streams which should be canonical'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type LSPConfig struct {
	*MainConfig
	Gops bool `cli:"name=gops desc='start a gops agent'"`

	LSP *cli.Command
}
