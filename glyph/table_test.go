package glyph

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableKnownGlyphs(t *testing.T) {
	tab := Default()
	tests := []struct {
		b    byte
		want string
	}{
		{0, Zero},
		{1, ","},
		{'h', Heart + Heart + ",,,,"},
		{'T', Heart + Sparkles + Sparkles + Sparkles + ",,,,"},
		{'s', Heart + Heart + Sparkles + Pleading},
		{200, Hug},
		{0xf0, Hug + Sparkles + Sparkles + Sparkles + Sparkles},
		{255, Hug + Heart + Pleading},
	}
	for _, tt := range tests {
		if got := tab.Glyph(tt.b); got != tt.want {
			t.Errorf("Glyph(%d) = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestTableBijective(t *testing.T) {
	tab := Default()
	if tab.Len() != 256 {
		t.Fatalf("inverse has %d entries", tab.Len())
	}
	seen := map[string]byte{}
	n := 0
	for b, g := range tab.All() {
		n++
		if g == "" {
			t.Errorf("byte %d has an empty glyph", b)
		}
		if prev, ok := seen[g]; ok {
			t.Errorf("bytes %d and %d share %q", prev, b, g)
		}
		seen[g] = b
		back, ok := tab.Byte(g)
		if !ok || back != b {
			t.Errorf("Byte(%q) = %d, %v; want %d", g, back, ok, b)
		}
	}
	if n != 256 {
		t.Errorf("forward has %d entries", n)
	}
}

func TestTableMarkerFree(t *testing.T) {
	for b, g := range Default().All() {
		if strings.Contains(g, Marker) || strings.Contains(g, LegacyMarker) {
			t.Errorf("glyph of %d contains a marker: %q", b, g)
		}
	}
}

func TestTableDeterministic(t *testing.T) {
	a := MustGenerate(Symbols(), Marker, LegacyMarker)
	b := MustGenerate(Symbols(), Marker, LegacyMarker)
	if diff := cmp.Diff(a.Entries(), b.Entries()); diff != "" {
		t.Errorf("tables differ (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Entries(), Default().Entries()); diff != "" {
		t.Errorf("regenerated table differs from default:\n%s", diff)
	}
}

func TestByteUnknown(t *testing.T) {
	tab := Default()
	for _, g := range []string{"", "a", Heart + Heart + ",,,,,,", Zero + Zero, Marker, " " + Heart} {
		if b, ok := tab.Byte(g); ok {
			t.Errorf("Byte(%q) = %d, want no match", g, b)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name      string
		syms      []Symbol
		forbidden []string
		want      error
	}{
		{"no zero", []Symbol{{1, "a"}}, nil, ErrNoZero},
		{"no unit", []Symbol{{2, "a"}, {0, "z"}}, nil, ErrNoUnit},
		{"empty text", []Symbol{{1, ""}, {0, "z"}}, nil, ErrBadSymbol},
		{"forbidden", []Symbol{{1, "a"}, {0, "z"}}, []string{"aa"}, ErrForbidden},
		{"duplicate", []Symbol{{2, "b"}, {1, "bb"}, {0, "z"}}, nil, ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.syms, tt.forbidden...)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecompose(t *testing.T) {
	tab := Default()
	for b := range tab.All() {
		got, ok := Decompose(tab.Glyph(b))
		if !ok {
			t.Fatalf("could not decompose glyph of %d", b)
		}
		if diff := cmp.Diff(tab.Symbols(b), got); diff != "" {
			t.Errorf("byte %d (-want +got):\n%s", b, diff)
		}
		sum := 0
		for _, s := range got {
			sum += s.Value
		}
		if sum != int(b) {
			t.Errorf("symbols of %d sum to %d", b, sum)
		}
	}
	if _, ok := Decompose("x"); ok {
		t.Error("decomposed a non-glyph")
	}
}

func TestEntryChar(t *testing.T) {
	tab := Default()
	es := tab.Entries()
	if len(es) != 256 {
		t.Fatalf("got %d entries", len(es))
	}
	if got := es['A'].Char(); got != "'A'" {
		t.Errorf("got %s", got)
	}
	if got := es[0xf0].Char(); got != `'\xf0'` {
		t.Errorf("got %s", got)
	}
	if !es['~'].Printable() || es['\n'].Printable() || es[0xf0].Printable() {
		t.Error("Printable mismatch")
	}
}
