// Package token finds bottom token streams embedded in arbitrary text and
// tracks their positions.
//
// A span is a maximal run of base symbols and framing markers on one line.
// Runs without any marker character are not reported, so ordinary commas in
// prose are ignored unless they touch a marker.
package token
