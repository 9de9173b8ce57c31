package lsp

import (
	"context"

	"github.com/signadot/bottom/codec"

	"go.lsp.dev/protocol"
)

var legacyDecoder = codec.NewDecoder(codec.DecodeFraming(codec.LegacyFraming))

// Formatting rewrites every legacy framed span that decodes cleanly with the
// current marker. Spans that do not decode are left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc), nil
}

func formatEdits(doc *document) []protocol.TextEdit {
	edits := []protocol.TextEdit{}
	for i := range doc.spans {
		sp := &doc.spans[i]
		if sp.err != nil || sp.framing != codec.LegacyFraming {
			continue
		}
		p, err := legacyDecoder.DecodeBytes(sp.Text)
		if err != nil {
			continue
		}
		edits = append(edits, protocol.TextEdit{
			Range:   spanRange(sp),
			NewText: codec.EncodeBytes(p),
		})
	}
	return edits
}
