package eval

import (
	"fmt"

	"github.com/signadot/bottom/codec"
	"github.com/signadot/bottom/glyph"

	"github.com/expr-lang/expr"
)

func exprOpts(t *glyph.Table) []expr.Option {
	return []expr.Option{
		expr.Function("glyph", func(params ...any) (any, error) {
			b, err := byteParam(params[0])
			if err != nil {
				return nil, err
			}
			return t.Glyph(b), nil
		},
			new(func(int) string)),
		expr.Function("encode", func(params ...any) (any, error) {
			return codec.EncodeString(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("hex", func(params ...any) (any, error) {
			b, err := byteParam(params[0])
			if err != nil {
				return nil, err
			}
			return fmt.Sprintf("%02x", b), nil
		},
			new(func(int) string)),
	}
}

func byteParam(p any) (byte, error) {
	i, ok := p.(int)
	if !ok || i < 0 || i > 255 {
		return 0, fmt.Errorf("%v is not a byte", p)
	}
	return byte(i), nil
}
