package codec

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedGlyph = errors.New("unrecognized glyph")
	ErrBadFraming        = errors.New("bad framing")
)

// GlyphError reports a segment of a token stream that is not in the glyph
// table. Index is the position of the segment in the stream.
type GlyphError struct {
	Segment string
	Index   int
}

func (e *GlyphError) Unwrap() error {
	return ErrUnrecognizedGlyph
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("cannot decode glyph %q at segment %d", e.Segment, e.Index)
}
