package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffString(t *testing.T) {
	tests := []struct {
		from, to string
		want     Diffs
		rendered string
	}{
		{"same", "same", Diffs{{Equal, "same"}}, "same"},
		{"Test", "Text", Diffs{{Equal, "Te"}, {Delete, "s"}, {Insert, "x"}, {Equal, "t"}}, "Te[-s-]{+x+}t"},
		{"", "new", Diffs{{Insert, "new"}}, "{+new+}"},
		{"old", "", Diffs{{Delete, "old"}}, "[-old-]"},
	}
	for _, tt := range tests {
		got := DiffString(tt.from, tt.to)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q -> %q (-want +got):\n%s", tt.from, tt.to, diff)
		}
		if s := got.String(); s != tt.rendered {
			t.Errorf("rendered %q want %q", s, tt.rendered)
		}
		if got.Equal() != (tt.from == tt.to) {
			t.Errorf("%q -> %q: Equal() = %v", tt.from, tt.to, got.Equal())
		}
	}
}

func TestDiffsSize(t *testing.T) {
	ds := DiffString("がんばれ", "がんばって")
	if ds.Equal() {
		t.Fatal("no difference found")
	}
	if ds.Size() == 0 {
		t.Error("zero size for a real difference")
	}
}

func TestReverse(t *testing.T) {
	ds := DiffString("Test", "Text")
	want := Diffs{{Equal, "Te"}, {Insert, "s"}, {Delete, "x"}, {Equal, "t"}}
	if diff := cmp.Diff(want, ds.Reverse()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ds, ds.Reverse().Reverse()); diff != "" {
		t.Errorf("double reverse (-want +got):\n%s", diff)
	}
}
