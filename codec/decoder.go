package codec

import (
	"strings"

	"github.com/signadot/bottom/debug"
)

type DecodeOption func(*Decoder)

// DecodeFraming makes the decoder split on the marker of f instead of
// guessing the framing from the input.
func DecodeFraming(f Framing) DecodeOption {
	return func(d *Decoder) {
		d.framing = f
		d.sniff = false
	}
}

// DecodeSniff restores framing detection, which is the default.
func DecodeSniff() DecodeOption {
	return func(d *Decoder) { d.sniff = true }
}

// Decoder turns token streams back into bytes.
type Decoder struct {
	framing Framing
	sniff   bool
}

func NewDecoder(opts ...DecodeOption) *Decoder {
	d := &Decoder{sniff: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Framing returns the framing that would be used to decode tokens.
func (d *Decoder) Framing(tokens string) Framing {
	if !d.sniff {
		return d.framing
	}
	f := Sniff(tokens)
	if debug.Sniff() {
		debug.Logf("sniffed %s framing\n", f)
	}
	return f
}

// DecodeBytes strips one trailing marker from tokens, splits the rest on the
// marker and maps every segment to its byte. The first segment not in the
// table is reported as a *GlyphError. The empty string decodes to no bytes.
func (d *Decoder) DecodeBytes(tokens string) ([]byte, error) {
	if tokens == "" {
		return []byte{}, nil
	}
	marker := d.Framing(tokens).Marker()
	body, _ := strings.CutSuffix(tokens, marker)
	res := make([]byte, 0, strings.Count(body, marker)+1)
	i := 0
	for seg := range strings.SplitSeq(body, marker) {
		b, ok := table.Byte(seg)
		if !ok {
			if debug.Decode() {
				debug.Logf("segment %d not a glyph: %s\n", i, seg)
			}
			return nil, &GlyphError{Segment: seg, Index: i}
		}
		res = append(res, b)
		i++
	}
	return res, nil
}

// DecodeString is DecodeBytes followed by a lossy conversion to text.
func (d *Decoder) DecodeString(tokens string) (string, error) {
	p, err := d.DecodeBytes(tokens)
	if err != nil {
		return "", err
	}
	return lossyString(p), nil
}
