package lsp

import (
	"context"
	"sync"

	"github.com/signadot/bottom/codec"
	"github.com/signadot/bottom/debug"
	"github.com/signadot/bottom/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	pos     *token.PosDoc
	spans   []span
}

// span is a scanned token stream together with its decoding.
type span struct {
	token.Span
	framing codec.Framing
	text    string
	err     error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		pos:     token.NewPosDoc(content),
	}
	for _, ts := range token.Scan(content) {
		sp := span{Span: ts, framing: codec.Sniff(ts.Text)}
		sp.text, sp.err = ts.Decode()
		doc.spans = append(doc.spans, sp)
	}
	if debug.LSP() {
		debug.Logf("%s v%d: %d spans\n", uri, version, len(doc.spans))
	}
	return doc
}

// spanAt returns the span under the cursor, or nil.
func (d *document) spanAt(line, col int) *span {
	for i := range d.spans {
		if d.spans[i].Contains(line, col) {
			return &d.spans[i]
		}
	}
	return nil
}

func spanRange(sp *span) protocol.Range {
	sl, sc := sp.Start.LineCol()
	el, ec := sp.End.LineCol()
	return protocol.Range{
		Start: protocol.Position{Line: uint32(sl), Character: uint32(sc)},
		End:   protocol.Position{Line: uint32(el), Character: uint32(ec)},
	}
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument reports one error for every span that does not decode.
func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for i := range doc.spans {
		sp := &doc.spans[i]
		if sp.err == nil {
			continue
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanRange(sp),
			Severity: protocol.DiagnosticSeverityError,
			Message:  sp.err.Error(),
			Source:   s.cfg.LSP.Source,
		})
	}
	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r == (protocol.Range{}) {
			content = change.Text
			continue
		}
		pd := token.NewPosDoc(content)
		start := pd.Offset(int(r.Start.Line), int(r.Start.Character))
		end := pd.Offset(int(r.End.Line), int(r.End.Character))
		if start <= end {
			content = content[:start] + change.Text + content[end:]
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}
