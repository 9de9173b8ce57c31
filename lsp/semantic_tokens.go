package lsp

import (
	"context"
	"unicode/utf16"

	"github.com/signadot/bottom/token"

	"go.lsp.dev/protocol"
)

// indices into semanticLegend.TokenTypes
const (
	numberType uint32 = iota
	operatorType
	commentType
)

// Glyph symbols show as numbers and markers as operators. A span which does
// not decode is shown as a comment.
func mapKindToSemanticTokenType(k token.Kind, valid bool) uint32 {
	if !valid {
		return commentType
	}
	if k == token.MarkerKind {
		return operatorType
	}
	return numberType
}

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType uint32
}

// spanTokens splits a span into runs of the same kind. Spans never cross
// lines so every run is on the span's start line.
func spanTokens(sp *span) []tokenInfo {
	line, col := sp.Start.LineCol()
	valid := sp.err == nil
	var (
		res []tokenInfo
		cur *tokenInfo
	)
	c := uint32(col)
	for _, r := range sp.Text {
		typ := mapKindToSemanticTokenType(token.KindOf(r), valid)
		n := uint32(utf16.RuneLen(r))
		if cur == nil || cur.tokenType != typ {
			res = append(res, tokenInfo{line: uint32(line), character: c, tokenType: typ})
			cur = &res[len(res)-1]
		}
		cur.length += n
		c += n
	}
	return res
}

// collectSemanticTokens returns the delta encoded tokens of every span whose
// line lies within [first, last].
func (s *Server) collectSemanticTokens(doc *document, first, last uint32) []uint32 {
	tokens := []uint32{}
	var prevLine, prevChar uint32
	for i := range doc.spans {
		for _, ti := range spanTokens(&doc.spans[i]) {
			if ti.line < first || ti.line > last {
				continue
			}
			deltaLine := ti.line - prevLine
			deltaChar := ti.character
			if deltaLine == 0 {
				deltaChar = ti.character - prevChar
			}
			tokens = append(tokens, deltaLine, deltaChar, ti.length, ti.tokenType, 0)
			prevLine = ti.line
			prevChar = ti.character
		}
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc, 0, ^uint32(0)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	r := params.Range
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc, r.Start.Line, r.End.Line),
	}, nil
}
