package glyph

import (
	"slices"
	"strings"
)

// Base symbols. A glyph is a sequence of these whose values sum to the byte
// it represents.
const (
	Hug      = "\U0001FAC2" // 🫂
	Heart    = "\U0001F496" // 💖
	Sparkles = "\u2728"     // ✨
	Pleading = "\U0001F97A" // 🥺
	Comma    = ","

	// Zero is ❤️ and only ever stands for the byte 0.
	Zero = "\u2764\uFE0F"
)

// Framing markers. No glyph may contain either of them.
const (
	Marker       = "\U0001F449\U0001F448" // 👉👈
	LegacyMarker = "\u200B"               // zero width space
)

type Symbol struct {
	Value int
	Text  string
}

var symbols = []Symbol{
	{Value: 200, Text: Hug},
	{Value: 50, Text: Heart},
	{Value: 10, Text: Sparkles},
	{Value: 5, Text: Pleading},
	{Value: 1, Text: Comma},
	{Value: 0, Text: Zero},
}

// Symbols returns the base symbol set, largest value first.
func Symbols() []Symbol {
	return slices.Clone(symbols)
}

// Decompose splits g into base symbols of the default set.
func Decompose(g string) ([]Symbol, bool) {
	return decompose(symbols, g)
}

func decompose(syms []Symbol, g string) ([]Symbol, bool) {
	if g == "" {
		return nil, false
	}
	var res []Symbol
outer:
	for g != "" {
		for _, s := range syms {
			if rest, ok := strings.CutPrefix(g, s.Text); ok {
				res = append(res, s)
				g = rest
				continue outer
			}
		}
		return nil, false
	}
	return res, true
}
