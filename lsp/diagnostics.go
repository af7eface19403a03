package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/rlch/cssls"
)

// publishDiagnostics converts parser diagnostics to LSP format and
// publishes them.
func (s *Server) publishDiagnostics(ctx context.Context, doc *Document) {
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.Diags))

	for _, d := range doc.Diags {
		diagnostics = append(diagnostics, convertDiagnostic(doc.Content, d))
	}

	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     uint32(doc.Version), //nolint:gosec // LSP version numbers are always non-negative
		Diagnostics: diagnostics,
	})
	if err != nil {
		s.logger.Error("Failed to publish diagnostics", zap.Error(err))
	}
}

// convertDiagnostic converts a cssls.Diagnostic to an LSP protocol.Diagnostic.
func convertDiagnostic(content string, d cssls.Diagnostic) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    RangeAt(content, d.Start, d.End),
		Severity: convertSeverity(d.Severity),
		Code:     d.Code,
		Source:   "cssls",
		Message:  d.Message,
	}
}

// convertSeverity converts parser severity to LSP severity.
func convertSeverity(sev cssls.DiagnosticSeverity) protocol.DiagnosticSeverity {
	switch sev {
	case cssls.SeverityError:
		return protocol.DiagnosticSeverityError
	case cssls.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case cssls.SeverityInformation:
		return protocol.DiagnosticSeverityInformation
	case cssls.SeverityHint:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}
