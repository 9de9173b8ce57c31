package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/bottom/codec"
)

type spanInfo struct {
	Text                       string
	Line, Col, EndLine, EndCol int
}

func infos(spans []Span) []spanInfo {
	var res []spanInfo
	for _, s := range spans {
		l, c := s.Start.LineCol()
		el, ec := s.End.LineCol()
		res = append(res, spanInfo{s.Text, l, c, el, ec})
	}
	return res
}

func TestScan(t *testing.T) {
	hi := codec.EncodeString("hi")
	src := "say " + hi + " and, again\n\tx" + codec.EncodeString("!") + "\nno, markers, here"
	got := infos(Scan(src))
	want := []spanInfo{
		// 💖💖,,,,👉👈💖💖🥺👉👈 is 2+2+4+4 + 2+2+2+4 UTF-16 units
		{Text: hi, Line: 0, Col: 4, EndLine: 0, EndCol: 26},
		{Text: codec.EncodeString("!"), Line: 1, Col: 2, EndLine: 1, EndCol: 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestScanDecode(t *testing.T) {
	spans := Scan("a " + codec.EncodeString("ok") + " b ✨✨✨✨✨👉👈🦀")
	if len(spans) != 2 {
		t.Fatalf("got %d spans", len(spans))
	}
	text, err := spans[0].Decode()
	if err != nil || text != "ok" {
		t.Errorf("got %q, %v", text, err)
	}
	if _, err := spans[1].Decode(); err == nil {
		t.Error("five ✨ is not a glyph")
	}
}

func TestSpanContains(t *testing.T) {
	spans := Scan("ab" + codec.EncodeString("x"))
	if len(spans) != 1 {
		t.Fatalf("got %d spans", len(spans))
	}
	s := spans[0]
	_, ec := s.End.LineCol()
	for _, tt := range []struct {
		line, col int
		want      bool
	}{
		{0, 1, false},
		{0, 2, true},
		{0, ec, true},
		{0, ec + 1, false},
		{1, 2, false},
	} {
		if got := s.Contains(tt.line, tt.col); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v", tt.line, tt.col, got)
		}
	}
}

func TestPosDocOffset(t *testing.T) {
	src := "a💖b\n✨c\n"
	doc := NewPosDoc(src)
	for off := range len(src) + 1 {
		l, c := doc.LineCol(off)
		back := doc.Offset(l, c)
		// offsets inside a multi byte rune map to the start of the next rune
		if back < off {
			t.Errorf("offset %d -> (%d,%d) -> %d", off, l, c, back)
		}
	}
	if got := doc.Offset(0, 3); got != 5 {
		t.Errorf("got %d", got)
	}
	if got := doc.Offset(1, 1); got != len("a💖b\n✨") {
		t.Errorf("got %d", got)
	}
	if got := doc.Offset(0, 99); got != len("a💖b") {
		t.Errorf("got %d", got)
	}
	if got := doc.Offset(9, 0); got != len(src) {
		t.Errorf("got %d", got)
	}
}
