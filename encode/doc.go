// Package encode writes token streams to an io.Writer.
//
// Unlike codec.EncodeBytes, Encode can color each base symbol for terminal
// display, emit the legacy framing, and break long streams into lines.
//
//	err := encode.Encode(data, os.Stdout,
//		encode.EncodeColors(encode.NewColors()),
//		encode.EncodeWrap(16))
package encode
