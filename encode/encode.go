package encode

import (
	"bufio"
	"io"

	"github.com/signadot/bottom/codec"
	"github.com/signadot/bottom/glyph"
)

type EncState struct {
	framing codec.Framing
	wrap    int
	newline bool

	Color func(Colorable, string) string
}

// Encode writes the token stream of p to w.
func Encode(p []byte, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	enc := codec.NewEncoder(codec.EncodeFraming(es.framing))
	for i, b := range p {
		if es.wrap > 0 && i > 0 && i%es.wrap == 0 {
			bw.WriteByte('\n')
		}
		if es.Color == nil {
			bw.WriteString(enc.EncodeByte(b))
			continue
		}
		es.writeColored(bw, enc.Framing(), b)
	}
	if es.newline {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (es *EncState) writeColored(w *bufio.Writer, f codec.Framing, b byte) {
	for _, s := range glyph.Default().Symbols(b) {
		w.WriteString(es.Color(Colorable{Value: s.Value, Attr: SymbolColor}, s.Text))
	}
	attr := MarkerColor
	if f == codec.LegacyFraming {
		attr = LegacyMarkerColor
	}
	w.WriteString(es.Color(Colorable{Attr: attr}, f.Marker()))
}
