package token

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// PosDoc maps byte offsets in a document to lines and columns. Columns count
// UTF-16 code units, as editors speaking LSP do.
type PosDoc struct {
	d string
	n []int
}

func NewPosDoc(d string) *PosDoc {
	p := &PosDoc{d: d}
	for i := 0; i < len(d); i++ {
		if d[i] == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) lineStart(line int) int {
	switch {
	case line <= 0:
		return 0
	case line > len(p.n):
		return len(p.d)
	default:
		return p.n[line-1] + 1
	}
}

func (p *PosDoc) LineCol(off int) (int, int) {
	off = min(max(off, 0), len(p.d))
	line := sort.Search(len(p.n), func(i int) bool {
		return p.n[i] >= off
	})
	return line, utf16Len(p.d[p.lineStart(line):off])
}

// Offset is the inverse of LineCol. Positions past the end of a line map to
// the end of that line.
func (p *PosDoc) Offset(line, col int) int {
	start := p.lineStart(line)
	end := len(p.d)
	if line >= 0 && line < len(p.n) {
		end = p.n[line]
	}
	c := 0
	for i, r := range p.d[start:end] {
		if c >= col {
			return start + i
		}
		c += runeLen16(r)
	}
	return end
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := p.D.d[max(0, p.I-8):min(p.I+8, len(p.D.d))]
	sample = strconv.QuoteToASCII(strings.ToValidUTF8(sample, "?"))
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeLen16(r)
	}
	return n
}

func runeLen16(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
