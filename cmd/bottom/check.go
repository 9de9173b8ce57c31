package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/bottom/codec"
	"github.com/signadot/bottom/libdiff"

	"github.com/scott-cotton/cli"
)

func bottomCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.String != "" && len(args) != 0 {
		return fmt.Errorf("%w: cannot use -s with files", cli.ErrUsage)
	}
	colors := cfg.useColor(cc.Out)
	failed := 0
	check := func(name string, data []byte) error {
		var (
			ds  libdiff.Diffs
			err error
		)
		if cfg.Tokens {
			ds, err = checkTokens(cfg.decoder(), data)
		} else {
			ds, err = checkRoundTrip(cfg.encFraming(), data)
		}
		if err != nil {
			return err
		}
		return report(cc.Out, name, ds, colors, &failed)
	}
	if cfg.String != "" {
		err = check("-s", []byte(cfg.String))
	} else {
		err = eachInput(cc.In, args, check)
	}
	if err != nil {
		return err
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkRoundTrip encodes data with framing f, decodes it back and diffs the
// result against data.
func checkRoundTrip(f codec.Framing, data []byte) (libdiff.Diffs, error) {
	tokens := codec.NewEncoder(codec.EncodeFraming(f)).EncodeBytes(data)
	back, err := codec.NewDecoder(codec.DecodeFraming(f)).DecodeBytes(tokens)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(back, data) {
		return libdiff.Diffs{{Op: libdiff.Equal, Text: string(data)}}, nil
	}
	return libdiff.DiffString(string(data), string(back)), nil
}

// checkTokens decodes a token stream then encodes it again with the framing
// it was decoded with, diffing the canonical result against the input.
func checkTokens(dec *codec.Decoder, data []byte) (libdiff.Diffs, error) {
	tokens := tokensOf(data)
	p, err := dec.DecodeBytes(tokens)
	if err != nil {
		return nil, err
	}
	enc := codec.NewEncoder(codec.EncodeFraming(dec.Framing(tokens)))
	return libdiff.DiffString(tokens, enc.EncodeBytes(p)), nil
}

func report(w io.Writer, name string, ds libdiff.Diffs, colors bool, failed *int) error {
	if ds.Equal() {
		_, err := fmt.Fprintf(w, "%s: ok\n", name)
		return err
	}
	*failed++
	if _, err := fmt.Fprintf(w, "%s: %d bytes differ\n", name, ds.Size()); err != nil {
		return err
	}
	if err := ds.Write(w, colors); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
