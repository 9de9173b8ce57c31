package codec

import (
	"strings"
	"unicode/utf8"
)

// lossyString converts p to a string, replacing every maximal ill-formed
// subsequence with one U+FFFD.
func lossyString(p []byte) string {
	if utf8.Valid(p) {
		return string(p)
	}
	var sb strings.Builder
	sb.Grow(len(p) + 8)
	for len(p) > 0 {
		r, n := utf8.DecodeRune(p)
		if r != utf8.RuneError || n > 1 {
			sb.Write(p[:n])
			p = p[n:]
			continue
		}
		sb.WriteRune(utf8.RuneError)
		p = p[illFormedLen(p):]
	}
	return sb.String()
}

// illFormedLen returns the length of the maximal prefix of p which is either
// a truncated well formed sequence or a single bad byte.
func illFormedLen(p []byte) int {
	lo, hi := byte(0x80), byte(0xbf)
	var need int
	switch c := p[0]; {
	case c >= 0xc2 && c <= 0xdf:
		need = 1
	case c == 0xe0:
		need, lo = 2, 0xa0
	case c == 0xed:
		need, hi = 2, 0x9f
	case c >= 0xe1 && c <= 0xef:
		need = 2
	case c == 0xf0:
		need, lo = 3, 0x90
	case c == 0xf4:
		need, hi = 3, 0x8f
	case c >= 0xf1 && c <= 0xf3:
		need = 3
	default:
		return 1
	}
	n := 1
	for n <= need && n < len(p) {
		if p[n] < lo || p[n] > hi {
			break
		}
		lo, hi = 0x80, 0xbf
		n++
	}
	return n
}
