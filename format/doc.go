// Package format names the output formats of bottom reports and writes
// values in them.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	err = format.Write(os.Stdout, f, table.Entries())
package format
