package main

import (
	"fmt"
	"io"

	"github.com/signadot/bottom/codec"

	"github.com/scott-cotton/cli"
)

func bottomDecode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.String != "" && len(args) != 0 {
		return fmt.Errorf("%w: cannot use -s with files", cli.ErrUsage)
	}
	dec := cfg.decoder()
	if cfg.String != "" {
		return decodeTo(cc.Out, dec, []byte(cfg.String), cfg.Raw)
	}
	return eachInput(cc.In, args, func(_ string, data []byte) error {
		return decodeTo(cc.Out, dec, data, cfg.Raw)
	})
}

// decodeTo writes the decoding of data to w. Unless raw is set the result is
// made valid UTF-8 and terminated by a newline.
func decodeTo(w io.Writer, dec *codec.Decoder, data []byte, raw bool) error {
	tokens := tokensOf(data)
	if raw {
		p, err := dec.DecodeBytes(tokens)
		if err != nil {
			return err
		}
		_, err = w.Write(p)
		return err
	}
	s, err := dec.DecodeString(tokens)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
