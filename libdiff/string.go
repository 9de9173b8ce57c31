package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "="
	}
}

type Diff struct {
	Op   Op
	Text string
}

type Diffs []Diff

// DiffString computes a character level diff turning from into to.
func DiffString(from, to string) Diffs {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := make(Diffs, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffEqual:
			op = Equal
		}
		res = append(res, Diff{Op: op, Text: diff.Text})
	}
	return res
}

func (ds Diffs) Equal() bool {
	for _, d := range ds {
		if d.Op != Equal {
			return false
		}
	}
	return true
}

// Size is the number of bytes inserted or deleted.
func (ds Diffs) Size() int {
	n := 0
	for _, d := range ds {
		if d.Op != Equal {
			n += len(d.Text)
		}
	}
	return n
}

// Write renders ds inline, marking deletions with [-...-] and insertions
// with {+...+}, or with red and green when colors is set.
func (ds Diffs) Write(w io.Writer, colors bool) error {
	var sb strings.Builder
	for _, d := range ds {
		switch d.Op {
		case Equal:
			sb.WriteString(d.Text)
		case Delete:
			if colors {
				sb.WriteString(color.New(color.FgRed, color.CrossedOut).Sprint(d.Text))
			} else {
				sb.WriteString("[-" + d.Text + "-]")
			}
		case Insert:
			if colors {
				sb.WriteString(color.GreenString("%s", d.Text))
			} else {
				sb.WriteString("{+" + d.Text + "+}")
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (ds Diffs) String() string {
	var sb strings.Builder
	ds.Write(&sb, false)
	return sb.String()
}
