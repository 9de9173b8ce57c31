package encode

import "github.com/signadot/bottom/codec"

type EncodeOption func(*EncState)

func EncodeFraming(f codec.Framing) EncodeOption {
	return func(es *EncState) { es.framing = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWrap starts a new line after every n bytes. Streams with line
// breaks must have them removed before decoding.
func EncodeWrap(n int) EncodeOption {
	return func(es *EncState) { es.wrap = n }
}

// EncodeNewline terminates the output with a newline.
func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}

// FramingFromOpts extracts the framing from encode options.
func FramingFromOpts(opts ...EncodeOption) codec.Framing {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.framing
}
