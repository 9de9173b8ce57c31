package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Write writes v to w in format f. The text format prints v with %v, so
// report types should implement fmt.Stringer.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case TextFormat:
		_, err := fmt.Fprint(w, v)
		return err
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case YAMLFormat:
		d, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}
