package lsp

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/rlch/cssls"
	"github.com/rlch/cssls/completion"
)

// Hover handles textDocument/hover requests.
func (s *Server) Hover(_ context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	s.logger.Debug("Hover",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	content, tree := doc.Content, doc.Tree
	offset := OffsetAt(content, params.Position)

	node := cssls.NodeAt(tree, offset)
	if node == nil {
		return nil, nil //nolint:nilnil
	}

	text, rng := s.hoverContent(content, tree, node)
	if text == "" {
		return nil, nil //nolint:nilnil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: rng,
	}, nil
}

// hoverContent generates hover markdown for a node.
func (s *Server) hoverContent(content string, tree *cssls.Node, node *cssls.Node) (string, *protocol.Range) {
	switch node.Kind {
	case cssls.KindProperty:
		name := node.Text(content)

		if cssls.IsCustomProperty(name) {
			return s.hoverCustomProperty(content, tree, name), rangePtr(RangeAt(content, node.Start, node.End))
		}

		spec, ok := cssls.LookupProperty(name)
		if !ok {
			return "", nil
		}

		return hoverProperty(spec), rangePtr(RangeAt(content, node.Start, node.End))

	case cssls.KindIdentifier:
		name := node.Text(content)

		if cssls.IsCustomProperty(name) {
			return s.hoverCustomProperty(content, tree, name), rangePtr(RangeAt(content, node.Start, node.End))
		}

		if hex, ok := cssls.LookupNamedColor(name); ok && hex != "" {
			return "**" + name + "** `" + hex + "`", rangePtr(RangeAt(content, node.Start, node.End))
		}

	case cssls.KindAtRule:
		for _, at := range cssls.AtRules {
			if at.Name == "@"+node.Name {
				return "**" + at.Name + "**\n\n" + at.Doc, rangePtr(RangeAt(content, node.Start, node.Start+1+len(node.Name)))
			}
		}
	}

	return "", nil
}

func hoverProperty(spec *cssls.PropertySpec) string {
	var b strings.Builder

	b.WriteString("**" + spec.Name + "**\n\n")
	b.WriteString(spec.Doc)

	if len(spec.Keywords) > 0 {
		b.WriteString("\n\nValues: `" + strings.Join(spec.Keywords, "` | `") + "`")
	}

	if len(spec.Units) > 0 {
		names := make([]string, 0, len(spec.Units))
		for _, cat := range spec.Units {
			names = append(names, cat.String())
		}

		b.WriteString("\n\nAccepts: " + strings.Join(names, ", "))
	}

	return b.String()
}

func (s *Server) hoverCustomProperty(content string, tree *cssls.Node, name string) string {
	coreDoc := &cssls.Document{Text: content}

	table := completion.Collect(coreDoc, tree)

	value, ok := table.Get(name)
	if !ok {
		return "**" + name + "** (undeclared custom property)"
	}

	return "**" + name + "**\n\nValue: `" + value + "`"
}

func rangePtr(r protocol.Range) *protocol.Range {
	return &r
}
