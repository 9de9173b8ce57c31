package main

import (
	"fmt"
	"io"

	"github.com/signadot/bottom/codec"
	"github.com/signadot/bottom/libdiff"

	"github.com/scott-cotton/cli"
)

func bottomDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	var texts [2]string
	for i, file := range args {
		data, err := readInput(cc.In, file)
		if err != nil {
			return err
		}
		texts[i], err = decodeText(cfg.decoder(), data)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
	}
	ds := libdiff.DiffString(texts[0], texts[1])
	if cfg.Reverse {
		ds = ds.Reverse()
	}
	if ds.Equal() {
		return nil
	}
	if err := writeDiff(cc.Out, ds, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func decodeText(dec *codec.Decoder, data []byte) (string, error) {
	return dec.DecodeString(tokensOf(data))
}

func writeDiff(w io.Writer, ds libdiff.Diffs, colors bool) error {
	if err := ds.Write(w, colors); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
