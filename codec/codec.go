package codec

import (
	"strings"

	"github.com/signadot/bottom/glyph"
)

var (
	table = glyph.Default()

	// framed glyphs indexed by byte, per framing
	frames = map[Framing]*[256]string{
		CurrentFraming: buildFrames(CurrentFraming),
		LegacyFraming:  buildFrames(LegacyFraming),
	}

	defaultEncoder = NewEncoder()
	defaultDecoder = NewDecoder()
)

func buildFrames(f Framing) *[256]string {
	res := &[256]string{}
	m := f.Marker()
	for b, g := range table.All() {
		res[b] = g + m
	}
	return res
}

// EncodeByte returns the glyph of b followed by the current marker.
func EncodeByte(b byte) string {
	return frames[CurrentFraming][b]
}

// DecodeByte returns the byte whose glyph is s. s may carry a single trailing
// current marker, as returned by EncodeByte. Matching is exact.
func DecodeByte(s string) (byte, error) {
	if b, ok := table.Byte(s); ok {
		return b, nil
	}
	if g, ok := strings.CutSuffix(s, glyph.Marker); ok {
		if b, ok := table.Byte(g); ok {
			return b, nil
		}
	}
	return 0, &GlyphError{Segment: s}
}

// EncodeString encodes the UTF-8 bytes of text, one glyph per byte.
func EncodeString(text string) string {
	return defaultEncoder.EncodeString(text)
}

func EncodeBytes(p []byte) string {
	return defaultEncoder.EncodeBytes(p)
}

// DecodeString decodes tokens, detecting its framing with Sniff. Byte
// sequences which are not valid UTF-8 are replaced with U+FFFD.
func DecodeString(tokens string) (string, error) {
	return defaultDecoder.DecodeString(tokens)
}

func DecodeBytes(tokens string) ([]byte, error) {
	return defaultDecoder.DecodeBytes(tokens)
}
