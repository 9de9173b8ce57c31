package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/bottom/glyph"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var (
	ErrNotBool   = errors.New("filter result is not a boolean")
	ErrBadFilter = errors.New("bad filter")
)

// Env is what a filter expression sees for each table entry.
type Env struct {
	Byte      int
	Glyph     string
	Symbols   int
	Runes     int
	Width     int
	Printable bool
	Char      string
}

func envOf(e glyph.Entry) Env {
	return Env{
		Byte:      int(e.Byte),
		Glyph:     e.Glyph,
		Symbols:   len(e.Symbols),
		Runes:     e.Runes(),
		Width:     len(e.Glyph),
		Printable: e.Printable(),
		Char:      e.Char(),
	}
}

type Filter struct {
	src string
	prg *vm.Program
}

// Compile compiles src, an expr expression over Env.
func Compile(src string, t *glyph.Table) (*Filter, error) {
	opts := append([]expr.Option{expr.Env(Env{})}, exprOpts(t)...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadFilter, src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) Match(e glyph.Entry) (bool, error) {
	res, err := expr.Run(f.prg, envOf(e))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q on byte %d: %w", f.src, e.Byte, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T", ErrNotBool, f.src, res)
	}
	return b, nil
}

// FilterEntries returns the entries of t for which src is true.
func FilterEntries(src string, t *glyph.Table) (glyph.Entries, error) {
	f, err := Compile(src, t)
	if err != nil {
		return nil, err
	}
	res := glyph.Entries{}
	for _, e := range t.Entries() {
		ok, err := f.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, e)
		}
	}
	return res, nil
}
