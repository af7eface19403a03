package lsp_test

import (
	"context"
	"strings"
	"testing"

	"go.lsp.dev/protocol"
)

func hoverAt(t *testing.T, text string, offset int) *protocol.Hover {
	t.Helper()

	server, _ := newTestServer(t)
	uri := openDoc(t, server, text)

	result, err := server.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     position(text, offset),
		},
	})
	if err != nil {
		t.Fatalf("Hover() error: %v", err)
	}

	return result
}

func TestHover_Property(t *testing.T) {
	t.Parallel()

	text := "a { vertical-align: middle; }\n"
	result := hoverAt(t, text, strings.Index(text, "vertical")+3)

	if result == nil {
		t.Fatal("expected hover result")
	}

	content := result.Contents.Value

	if !strings.Contains(content, "vertical-align") {
		t.Errorf("hover %q missing property name", content)
	}

	if !strings.Contains(content, "baseline") {
		t.Errorf("hover %q missing keyword values", content)
	}
}

func TestHover_CustomProperty(t *testing.T) {
	t.Parallel()

	text := ":root { --main-color: #333; }\na { color: var(--main-color); }\n"

	// Hover on the reference inside var()
	offset := strings.LastIndex(text, "--main-color") + 3
	result := hoverAt(t, text, offset)

	if result == nil {
		t.Fatal("expected hover result")
	}

	content := result.Contents.Value

	if !strings.Contains(content, "--main-color") || !strings.Contains(content, "#333") {
		t.Errorf("hover %q missing custom property value", content)
	}
}

func TestHover_NamedColor(t *testing.T) {
	t.Parallel()

	text := "a { color: rebeccapurple; }\n"
	result := hoverAt(t, text, strings.Index(text, "rebecca")+2)

	if result == nil {
		t.Fatal("expected hover result")
	}

	if !strings.Contains(result.Contents.Value, "#663399") {
		t.Errorf("hover %q missing hex value", result.Contents.Value)
	}
}

func TestHover_AtRule(t *testing.T) {
	t.Parallel()

	text := "@media screen { }\n"
	result := hoverAt(t, text, 3)

	if result == nil {
		t.Fatal("expected hover result")
	}

	if !strings.Contains(result.Contents.Value, "@media") {
		t.Errorf("hover %q missing at-rule name", result.Contents.Value)
	}
}

func TestHover_NothingToShow(t *testing.T) {
	t.Parallel()

	text := "a { whatsit: blob; }\n"
	result := hoverAt(t, text, strings.Index(text, "whatsit")+2)

	if result != nil {
		t.Errorf("expected no hover for unknown property, got %+v", result)
	}
}
