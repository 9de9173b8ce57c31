package encode

import (
	"strings"

	"github.com/signadot/bottom/glyph"

	"github.com/fatih/color"
)

// Colorable identifies one part of a token stream. Value is the value of
// a base symbol and is ignored for markers.
type Colorable struct {
	Value int
	Attr  ColorAttr
}

type ColorAttr int

const (
	SymbolColor ColorAttr = iota
	MarkerColor
	LegacyMarkerColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	able := Colorable{Attr: SymbolColor}
	for _, s := range glyph.Symbols() {
		able.Value = s.Value
		switch s.Value {
		case 200:
			colors.Map[able] = color.RGB(196, 128, 236).SprintfFunc()
		case 50:
			colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		case 10:
			colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
		case 5:
			colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		case 1:
			colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		case 0:
			colors.Map[able] = color.RedString
		}
	}
	colors.Map[Colorable{Attr: MarkerColor}] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[Colorable{Attr: LegacyMarkerColor}] = color.RGB(74, 92, 138).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(able Colorable, s string) string {
	return c.Get(able)(s)
}

func (c *Colors) Get(able Colorable) func(string, ...any) string {
	if able.Attr != SymbolColor {
		able.Value = 0
	}
	f := c.Map[able]
	if f == nil {
		return c.Default
	}
	return f
}
