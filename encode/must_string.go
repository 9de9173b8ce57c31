package encode

import (
	"bytes"
)

func MustString(p []byte, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(p, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
