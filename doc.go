// Package bottom encodes text as a stream of emoji glyphs and back.
//
// Every byte of the input becomes one glyph, a short run of the symbols
// 🫂 (200), 💖 (50), ✨ (10), 🥺 (5) and , (1) whose values add up to the
// byte, or ❤️ for 0. Each glyph is followed by 👉👈.
//
// # Usage
//
//	tokens := bottom.Encode("hi")
//	// 💖💖,,,,👉👈💖💖🥺👉👈
//	text, err := bottom.Decode(tokens)
//
// Older encoders separated glyphs with U+200B instead of 👉👈. Decode detects
// such streams by their first marker character. Use the codec package to
// choose the framing explicitly or to work with raw bytes.
//
// # Related Packages
//
//   - github.com/signadot/bottom/codec - byte and string codec, framing
//   - github.com/signadot/bottom/glyph - the glyph table
//   - github.com/signadot/bottom/encode - writing token streams with color and wrapping
package bottom
