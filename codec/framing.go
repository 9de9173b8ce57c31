package codec

import (
	"fmt"

	"github.com/signadot/bottom/glyph"
)

// Framing is the convention used to delimit glyphs in a token stream.
type Framing int

const (
	// CurrentFraming follows every glyph with 👉👈.
	CurrentFraming Framing = iota
	// LegacyFraming follows every glyph with a zero width space.
	LegacyFraming
)

const (
	currentLead = '\U0001F449'
	legacyLead  = '\u200B'
)

func ParseFraming(v string) (Framing, error) {
	f, ok := map[string]Framing{
		"c":       CurrentFraming,
		"current": CurrentFraming,
		"l":       LegacyFraming,
		"legacy":  LegacyFraming,
		"zwsp":    LegacyFraming,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFraming, v)
}

func (f Framing) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Framing) MarshalText() ([]byte, error) {
	switch f {
	case CurrentFraming:
		return []byte("current"), nil
	case LegacyFraming:
		return []byte("legacy"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a framing>", f)
	}
}

func (f *Framing) UnmarshalText(d []byte) error {
	pf, err := ParseFraming(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Marker returns the separator and terminator of f.
func (f Framing) Marker() string {
	if f == LegacyFraming {
		return glyph.LegacyMarker
	}
	return glyph.Marker
}

func AllFramings() []Framing {
	return []Framing{CurrentFraming, LegacyFraming}
}

// Sniff guesses the framing of tokens from the first marker character found
// in it. Streams without any marker are taken to be current.
func Sniff(tokens string) Framing {
	for _, r := range tokens {
		switch r {
		case legacyLead:
			return LegacyFraming
		case currentLead:
			return CurrentFraming
		}
	}
	return CurrentFraming
}
