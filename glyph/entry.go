package glyph

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Entry describes one row of a Table.
type Entry struct {
	Byte    byte     `json:"byte" yaml:"byte"`
	Glyph   string   `json:"glyph" yaml:"glyph"`
	Symbols []Symbol `json:"-" yaml:"-"`
}

func (e Entry) Runes() int {
	return utf8.RuneCountInString(e.Glyph)
}

// Printable reports whether the byte is a printable ASCII character.
func (e Entry) Printable() bool {
	return e.Byte < utf8.RuneSelf && unicode.IsPrint(rune(e.Byte))
}

// Char is the byte as a quoted Go character literal.
func (e Entry) Char() string {
	if e.Byte >= utf8.RuneSelf {
		return fmt.Sprintf("'\\x%02x'", e.Byte)
	}
	return fmt.Sprintf("%q", rune(e.Byte))
}

func (e Entry) String() string {
	return fmt.Sprintf("%3d 0x%02x %-6s %s", e.Byte, e.Byte, e.Char(), e.Glyph)
}

// Entries returns all 256 rows in byte order.
func (t *Table) Entries() Entries {
	res := make(Entries, 0, 256)
	for b, g := range t.All() {
		res = append(res, Entry{Byte: b, Glyph: g, Symbols: t.Symbols(b)})
	}
	return res
}

// Entries is a list of table rows.
type Entries []Entry

func (es Entries) String() string {
	var sb strings.Builder
	for _, e := range es {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
