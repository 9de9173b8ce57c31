package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/bottom/encode"
	"github.com/signadot/bottom/eval"
	"github.com/signadot/bottom/format"
	"github.com/signadot/bottom/glyph"

	"github.com/scott-cotton/cli"
)

func bottomTable(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: table takes no arguments", cli.ErrUsage)
	}
	var colors *encode.Colors
	if cfg.Format.IsText() && cfg.useColor(cc.Out) {
		colors = encode.NewColors()
	}
	return writeTable(cc.Out, cfg.Where, cfg.Format, colors)
}

func writeTable(w io.Writer, where string, f format.Format, colors *encode.Colors) error {
	t := glyph.Default()
	es := t.Entries()
	if where != "" {
		var err error
		es, err = eval.FilterEntries(where, t)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if !f.IsText() || colors == nil {
		return format.Write(w, f, es)
	}
	var sb strings.Builder
	for _, e := range es {
		fmt.Fprintf(&sb, "%3d 0x%02x %-6s ", e.Byte, e.Byte, e.Char())
		for _, s := range e.Symbols {
			sb.WriteString(colors.Color(encode.Colorable{Value: s.Value, Attr: encode.SymbolColor}, s.Text))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
