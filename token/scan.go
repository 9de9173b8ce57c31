package token

import (
	"github.com/signadot/bottom/codec"
)

const (
	hugRune      = '\U0001FAC2'
	heartRune    = '\U0001F496'
	sparklesRune = '\u2728'
	pleadingRune = '\U0001F97A'
	commaRune    = ','
	zeroRune     = '\u2764'
	vs16Rune     = '\uFE0F'
	leftRune     = '\U0001F449'
	rightRune    = '\U0001F448'
	zwspRune     = '\u200B'
)

// Kind classifies a rune of a token stream.
type Kind int

const (
	NotToken Kind = iota
	SymbolKind
	MarkerKind
)

func KindOf(r rune) Kind {
	switch r {
	case hugRune, heartRune, sparklesRune, pleadingRune, commaRune, zeroRune, vs16Rune:
		return SymbolKind
	case leftRune, rightRune, zwspRune:
		return MarkerKind
	}
	return NotToken
}

// Span is a run of token stream text inside a larger document.
type Span struct {
	Start, End *Pos
	Text       string
}

func (s *Span) Decode() (string, error) {
	return codec.DecodeString(s.Text)
}

// Contains reports whether the zero based line and UTF-16 column fall
// inside the span. The end column is included so that a cursor placed
// right after a span still hits it.
func (s *Span) Contains(line, col int) bool {
	sl, sc := s.Start.LineCol()
	el, ec := s.End.LineCol()
	if line < sl || line > el {
		return false
	}
	if line == sl && col < sc {
		return false
	}
	if line == el && col > ec {
		return false
	}
	return true
}

// Scan returns the maximal runs of token stream characters in src which
// contain at least one marker character. Runs never cross lines.
func Scan(src string) []Span {
	doc := NewPosDoc(src)
	var (
		res       []Span
		start     = -1
		hasMarker bool
	)
	flush := func(end int) {
		if start >= 0 && hasMarker {
			res = append(res, Span{
				Start: doc.Pos(start),
				End:   doc.Pos(end),
				Text:  src[start:end],
			})
		}
		start = -1
		hasMarker = false
	}
	for i, r := range src {
		k := KindOf(r)
		if k == NotToken {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		if k == MarkerKind {
			hasMarker = true
		}
	}
	flush(len(src))
	return res
}
