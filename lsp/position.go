package lsp

import (
	"strings"

	"go.lsp.dev/protocol"
)

// OffsetAt converts an LSP line/character position to a byte offset into
// content. Positions past the end of a line or document clamp instead of
// failing, since clients race ahead of the synced content while typing.
func OffsetAt(content string, pos protocol.Position) int {
	lines := strings.SplitAfter(content, "\n")

	offset := 0
	for i := 0; i < int(pos.Line) && i < len(lines); i++ {
		offset += len(lines[i])
	}

	if int(pos.Line) < len(lines) {
		line := lines[pos.Line]
		col := int(pos.Character)

		// Keep the offset on this line: the trailing newline belongs to
		// the next position.
		limit := len(line)
		if strings.HasSuffix(line, "\n") {
			limit--
		}

		if col > limit {
			col = limit
		}

		offset += col
	}

	if offset > len(content) {
		offset = len(content)
	}

	return offset
}

// PositionAt converts a byte offset into content to an LSP position.
func PositionAt(content string, offset int) protocol.Position {
	if offset > len(content) {
		offset = len(content)
	}

	if offset < 0 {
		offset = 0
	}

	prefix := content[:offset]
	line := strings.Count(prefix, "\n")

	lastNL := strings.LastIndexByte(prefix, '\n')
	col := offset - lastNL - 1

	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(col), //nolint:gosec // column is never negative
	}
}

// RangeAt converts a byte range to an LSP range.
func RangeAt(content string, start, end int) protocol.Range {
	return protocol.Range{
		Start: PositionAt(content, start),
		End:   PositionAt(content, end),
	}
}
