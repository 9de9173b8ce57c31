package lsp

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	pos := params.Position
	sp := doc.spanAt(int(pos.Line), int(pos.Character))
	if sp == nil {
		return nil, nil
	}

	r := spanRange(sp)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(sp, s.cfg.LSP.HoverMax),
		},
		Range: &r,
	}, nil
}

func buildHoverText(sp *span, maxRunes int) string {
	var sb strings.Builder
	if sp.err != nil {
		fmt.Fprintf(&sb, "**bottom** (%s framing): %s", sp.framing, sp.err)
		return sb.String()
	}
	fmt.Fprintf(&sb, "**bottom** (%s framing, %d bytes)\n\n", sp.framing, len(sp.text))
	sb.WriteString("```text\n")
	sb.WriteString(truncate(sp.text, maxRunes))
	sb.WriteString("\n```")
	return sb.String()
}

// truncate cuts s after n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j] + "…"
		}
		i++
	}
	return s
}
