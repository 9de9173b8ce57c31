// Package eval selects glyph table entries with expr expressions.
//
// The expression is evaluated once per entry against Env, for example
//
//	Printable && Symbols > 4
//	Byte >= 0x80 && hex(Byte) startsWith "f"
//	Glyph contains glyph(5)
package eval
