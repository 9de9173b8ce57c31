package bottom

import "github.com/signadot/bottom/codec"

// Encode returns the token stream of the UTF-8 bytes of text.
func Encode(text string) string {
	return codec.EncodeString(text)
}

// Decode reverses Encode. It also accepts streams framed with the legacy
// zero width space separator. The error, if any, is a *codec.GlyphError
// naming the first segment which is not a glyph.
func Decode(tokens string) (string, error) {
	return codec.DecodeString(tokens)
}
