package lsp

import (
	"context"
	"strings"
	"testing"

	"github.com/signadot/bottom/config"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const (
	testURI = "file:///tmp/notes.txt"
	testDoc = "say 💖💖,,,,👉👈💖💖🥺👉👈 ok\n✨✨✨✨✨👉👈\n"
)

func openDoc(t *testing.T, s *Server, text string) {
	t.Helper()
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:     testURI,
			Version: 1,
			Text:    text,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestValidateDocument(t *testing.T) {
	s := NewServer(nil)
	openDoc(t, s, testDoc)
	diags := s.validateDocument(s.docs.get(testURI))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	d := diags[0]
	want := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 0},
		End:   protocol.Position{Line: 1, Character: 9},
	}
	if diff := cmp.Diff(want, d.Range); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}
	if d.Source != "bottom" || d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("got source %q severity %v", d.Source, d.Severity)
	}
	if !strings.Contains(d.Message, "segment 0") {
		t.Errorf("message %q", d.Message)
	}
}

func TestDiagnosticSource(t *testing.T) {
	cfg := config.Default()
	cfg.LSP.Source = "emoji"
	s := NewServer(cfg)
	openDoc(t, s, "✨✨✨✨✨👉👈")
	diags := s.validateDocument(s.docs.get(testURI))
	if len(diags) != 1 || diags[0].Source != "emoji" {
		t.Errorf("got %+v", diags)
	}
}

func TestDidChange(t *testing.T) {
	ctx := context.Background()
	s := NewServer(nil)
	openDoc(t, s, testDoc)

	// replace the broken second line
	err := s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{
			Range: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 0},
				End:   protocol.Position{Line: 1, Character: 5},
			},
			Text: "💖",
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(testURI)
	if doc.version != 2 {
		t.Errorf("version %d", doc.version)
	}
	if diags := s.validateDocument(doc); len(diags) != 0 {
		t.Errorf("got %+v", diags)
	}
	if len(doc.spans) != 2 || doc.spans[1].text != "2" {
		t.Errorf("spans %+v", doc.spans)
	}

	err = s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                3,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "plain"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if doc := s.docs.get(testURI); doc.content != "plain" || len(doc.spans) != 0 {
		t.Errorf("got %q with %d spans", doc.content, len(doc.spans))
	}

	if err := s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}); err != nil {
		t.Fatal(err)
	}
	if s.docs.get(testURI) != nil {
		t.Error("document still open")
	}
}

func hoverAt(t *testing.T, s *Server, line, col uint32) *protocol.Hover {
	t.Helper()
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: line, Character: col},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestHover(t *testing.T) {
	s := NewServer(nil)
	openDoc(t, s, testDoc)

	h := hoverAt(t, s, 0, 10)
	if h == nil {
		t.Fatal("no hover")
	}
	want := "**bottom** (current framing, 2 bytes)\n\n```text\nhi\n```"
	if h.Contents.Value != want {
		t.Errorf("got %q", h.Contents.Value)
	}
	if h.Range == nil || h.Range.Start.Character != 4 || h.Range.End.Character != 26 {
		t.Errorf("range %+v", h.Range)
	}

	if h := hoverAt(t, s, 0, 2); h != nil {
		t.Errorf("hover outside span: %+v", h)
	}
	h = hoverAt(t, s, 1, 3)
	if h == nil || !strings.Contains(h.Contents.Value, "cannot decode glyph") {
		t.Errorf("got %+v", h)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 3, "hel…"},
		{"hello", 5, "hello"},
		{"がんばれ", 2, "がん…"},
		{"", 1, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSemanticTokens(t *testing.T) {
	ctx := context.Background()
	s := NewServer(nil)
	openDoc(t, s, testDoc)

	res, err := s.SemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{
		0, 4, 8, numberType, 0,
		0, 8, 4, operatorType, 0,
		0, 4, 6, numberType, 0,
		0, 6, 4, operatorType, 0,
		1, 0, 9, commentType, 0,
	}
	if diff := cmp.Diff(want, res.Data); diff != "" {
		t.Errorf("full (-want +got):\n%s", diff)
	}

	res, err = s.SemanticTokensRange(ctx, &protocol.SemanticTokensRangeParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
		Range: protocol.Range{
			Start: protocol.Position{Line: 1},
			End:   protocol.Position{Line: 1, Character: 9},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint32{1, 0, 9, commentType, 0}, res.Data); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}
}

func TestFormattingLegacy(t *testing.T) {
	s := NewServer(nil)
	openDoc(t, s, "x 💖💖,,,,\u200b💖💖🥺\u200b\n"+testDoc)
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 2},
			End:   protocol.Position{Line: 0, Character: 18},
		},
		NewText: "💖💖,,,,👉👈💖💖🥺👉👈",
	}}
	if diff := cmp.Diff(want, edits); diff != "" {
		t.Errorf("edits (-want +got):\n%s", diff)
	}
}

func TestInitialize(t *testing.T) {
	res, err := NewServer(nil).Initialize(context.Background(), &protocol.InitializeParams{})
	if err != nil {
		t.Fatal(err)
	}
	if res.ServerInfo.Name != lsName {
		t.Errorf("name %q", res.ServerInfo.Name)
	}
	if res.Capabilities.SemanticTokensProvider == nil {
		t.Error("semantic tokens not advertised")
	}
}
