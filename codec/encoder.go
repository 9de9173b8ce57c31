package codec

import (
	"strings"

	"github.com/signadot/bottom/debug"
)

type EncodeOption func(*Encoder)

// EncodeFraming selects the framing of produced token streams. Legacy
// framing is only useful for consumers that predate the current marker.
func EncodeFraming(f Framing) EncodeOption {
	return func(e *Encoder) { e.framing = f }
}

// Encoder turns bytes into token streams. The zero value is not usable, use
// NewEncoder.
type Encoder struct {
	framing Framing
	frames  *[256]string
}

func NewEncoder(opts ...EncodeOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	e.frames = frames[e.framing]
	if e.frames == nil {
		e.framing = CurrentFraming
		e.frames = frames[CurrentFraming]
	}
	return e
}

func (e *Encoder) Framing() Framing {
	return e.framing
}

// EncodeByte returns the framed glyph of b.
func (e *Encoder) EncodeByte(b byte) string {
	return e.frames[b]
}

func (e *Encoder) EncodeString(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 16)
	for i := 0; i < len(text); i++ {
		sb.WriteString(e.frames[text[i]])
	}
	if debug.Encode() {
		debug.Logf("encoded %d bytes with %s framing\n", len(text), e.framing)
	}
	return sb.String()
}

func (e *Encoder) EncodeBytes(p []byte) string {
	var sb strings.Builder
	sb.Grow(len(p) * 16)
	for _, b := range p {
		sb.WriteString(e.frames[b])
	}
	if debug.Encode() {
		debug.Logf("encoded %d bytes with %s framing\n", len(p), e.framing)
	}
	return sb.String()
}
