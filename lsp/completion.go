package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/rlch/cssls"
	"github.com/rlch/cssls/completion"
)

// Completion handles textDocument/completion requests.
func (s *Server) Completion(_ context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	s.logger.Debug("Completion",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	content, tree := doc.Content, doc.Tree
	offset := OffsetAt(content, params.Position)

	coreDoc := &cssls.Document{URI: string(params.TextDocument.URI), Text: content}

	items := s.engine.Complete(coreDoc, tree, offset)
	s.logger.Debug("Completion results", zap.Int("count", len(items)))

	out := make([]protocol.CompletionItem, 0, len(items))

	for _, it := range items {
		item := protocol.CompletionItem{
			Label:  it.Label,
			Kind:   completionItemKind(it.Kind),
			Detail: it.Detail,
			TextEdit: &protocol.TextEdit{
				Range:   RangeAt(content, it.Start, it.End),
				NewText: it.InsertText(),
			},
		}

		if docText := s.engine.Documentation(it); docText != "" {
			item.Documentation = &protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: docText,
			}
		}

		out = append(out, item)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        out,
	}, nil
}

// completionItemKind maps the engine's candidate kinds onto LSP kinds.
func completionItemKind(kind completion.CandidateKind) protocol.CompletionItemKind {
	switch kind {
	case completion.CandidateKeyword:
		return protocol.CompletionItemKindKeyword
	case completion.CandidateFunction:
		return protocol.CompletionItemKindFunction
	case completion.CandidateColor:
		return protocol.CompletionItemKindColor
	case completion.CandidateVariable:
		return protocol.CompletionItemKindVariable
	case completion.CandidateUnit:
		return protocol.CompletionItemKindUnit
	default:
		return protocol.CompletionItemKindText
	}
}
