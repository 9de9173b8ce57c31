package glyph

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

var (
	ErrNoUnit      = errors.New("symbol set has no unit symbol")
	ErrNoZero      = errors.New("symbol set has no zero symbol")
	ErrDuplicate   = errors.New("duplicate glyph")
	ErrForbidden   = errors.New("glyph contains forbidden text")
	ErrBadSymbol   = errors.New("bad symbol")
	errInvalidSize = errors.New("table does not have 256 entries")
)

// Table is a bijection between the 256 byte values and their glyphs. A Table
// is never modified after Generate returns it and may be shared freely.
type Table struct {
	glyphs  [256]string
	symbols [256][]Symbol
	bytes   map[string]byte
}

var defaultTable = MustGenerate(symbols, Marker, LegacyMarker)

// Default returns the table used by the codec.
func Default() *Table {
	return defaultTable
}

// Generate builds a table from syms. Every byte value v > 0 is written
// greedily with the largest symbols first and 0 is written with the symbol
// of value 0. No glyph may contain any of the forbidden strings.
func Generate(syms []Symbol, forbidden ...string) (*Table, error) {
	var (
		zero  *Symbol
		units []Symbol
	)
	for i := range syms {
		s := &syms[i]
		if s.Text == "" || s.Value < 0 || s.Value > 255 {
			return nil, fmt.Errorf("%w: %+v", ErrBadSymbol, *s)
		}
		if s.Value == 0 {
			zero = s
			continue
		}
		units = append(units, *s)
	}
	if zero == nil {
		return nil, ErrNoZero
	}
	slices.SortStableFunc(units, func(a, b Symbol) int { return b.Value - a.Value })
	if len(units) == 0 || units[len(units)-1].Value != 1 {
		return nil, ErrNoUnit
	}

	t := &Table{bytes: make(map[string]byte, 256)}
	for i := range 256 {
		var parts []Symbol
		if i == 0 {
			parts = []Symbol{*zero}
		} else {
			rem := i
			for _, u := range units {
				for rem >= u.Value {
					parts = append(parts, u)
					rem -= u.Value
				}
			}
		}
		var sb strings.Builder
		for _, p := range parts {
			sb.WriteString(p.Text)
		}
		g := sb.String()
		for _, f := range forbidden {
			if f != "" && strings.Contains(g, f) {
				return nil, fmt.Errorf("%w: byte %d glyph %q contains %q", ErrForbidden, i, g, f)
			}
		}
		if prev, ok := t.bytes[g]; ok {
			return nil, fmt.Errorf("%w: %q for bytes %d and %d", ErrDuplicate, g, prev, i)
		}
		t.glyphs[i] = g
		t.symbols[i] = parts
		t.bytes[g] = byte(i)
	}
	if len(t.bytes) != 256 {
		return nil, errInvalidSize
	}
	return t, nil
}

// MustGenerate is like Generate but panics on error.
func MustGenerate(syms []Symbol, forbidden ...string) *Table {
	t, err := Generate(syms, forbidden...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Glyph(b byte) string {
	return t.glyphs[b]
}

// Byte returns the byte whose glyph is exactly g.
func (t *Table) Byte(g string) (byte, bool) {
	b, ok := t.bytes[g]
	return b, ok
}

// Symbols returns the base symbols making up the glyph of b. The result must
// not be modified.
func (t *Table) Symbols(b byte) []Symbol {
	return t.symbols[b]
}

func (t *Table) Len() int {
	return len(t.bytes)
}

// All iterates the table in byte order.
func (t *Table) All() iter.Seq2[byte, string] {
	return func(yield func(byte, string) bool) {
		for i := range 256 {
			if !yield(byte(i), t.glyphs[i]) {
				return
			}
		}
	}
}
