package main

import (
	"fmt"

	"github.com/signadot/bottom/encode"

	"github.com/scott-cotton/cli"
)

func bottomEncode(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.String != "" && len(args) != 0 {
		return fmt.Errorf("%w: cannot use -s with files", cli.ErrUsage)
	}
	if cfg.Wrap < 0 {
		return fmt.Errorf("%w: -wrap must not be negative", cli.ErrUsage)
	}
	wrap := cfg.Wrap
	if wrap == 0 {
		wrap = cfg.conf().Wrap
	}
	opts := append(cfg.encOpts(cc.Out),
		encode.EncodeWrap(wrap),
		encode.EncodeNewline(true))
	if cfg.String != "" {
		return encode.Encode([]byte(cfg.String), cc.Out, opts...)
	}
	return eachInput(cc.In, args, func(_ string, data []byte) error {
		return encode.Encode(data, cc.Out, opts...)
	})
}
