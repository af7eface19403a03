// Package completion implements the context-aware completion engine for
// CSS documents: it classifies the cursor location against the syntax
// tree, generates candidates from the language data and the document's
// own symbols, and pairs each candidate with an exact text edit.
package completion

import (
	"strings"

	"github.com/rlch/cssls"
)

// ContextKind indicates what kind of construct the cursor is inside.
type ContextKind string

const (
	ContextNone              ContextKind = "none"
	ContextSelector          ContextKind = "selector"
	ContextAtRuleName        ContextKind = "at-rule-name"
	ContextPropertyName      ContextKind = "property-name"
	ContextPropertyValue     ContextKind = "property-value"
	ContextNumericUnit       ContextKind = "numeric-unit"
	ContextColorValue        ContextKind = "color-value"
	ContextVariableReference ContextKind = "variable-reference"
	ContextVariableDeclArg   ContextKind = "variable-declaration-argument"
)

// Context holds the classification of a cursor position.
type Context struct {
	Kind ContextKind

	// Node is the enclosing syntax node.
	Node *cssls.Node

	// Offset is the request cursor offset.
	Offset int

	// WordStart and WordEnd delimit the current word: the maximal
	// identifier/number-like token touching the cursor. The range is
	// empty (WordStart == WordEnd == Offset) when the cursor touches no
	// token. Candidates replace exactly this range.
	WordStart int
	WordEnd   int

	// Property is the canonical name of the property whose value is
	// being completed. Empty outside value contexts, and empty when the
	// property is not in the knowledge base.
	Property string
}

// Word returns the full current word.
func (c *Context) Word(src string) string {
	return src[c.WordStart:c.WordEnd]
}

// TypedPrefix returns the part of the current word before the cursor,
// used for candidate filtering.
func (c *Context) TypedPrefix(src string) string {
	return src[c.WordStart:c.Offset]
}

// Resolve classifies the cursor position. It never fails: positions the
// grammar cannot explain produce ContextNone.
func Resolve(doc *cssls.Document, tree *cssls.Node, offset int) Context {
	src := doc.Text

	ctx := Context{
		Kind:      ContextNone,
		Offset:    offset,
		WordStart: offset,
		WordEnd:   offset,
	}

	ctx.WordStart, ctx.WordEnd = currentWord(src, offset)

	node := cssls.NodeAt(tree, offset)
	if node == nil {
		node = tree
	}

	ctx.Node = node

	switch node.Kind {
	case cssls.KindStylesheet:
		ctx.Kind = ContextSelector

	case cssls.KindSelector:
		ctx.Kind = ContextSelector

	case cssls.KindRuleset:
		// Between the selector and '{' is still selector territory;
		// past the '{' the cursor is at a fresh property position.
		if blockOpenBefore(src, node, offset) {
			ctx.Kind = ContextPropertyName
		} else {
			ctx.Kind = ContextSelector
		}

	case cssls.KindAtRule:
		classifyAtRule(src, node, offset, &ctx)

	case cssls.KindProperty:
		ctx.Kind = ContextPropertyName

	case cssls.KindDeclaration:
		classifyDeclaration(src, node, offset, &ctx)

	case cssls.KindValue, cssls.KindIdentifier, cssls.KindNumericLiteral,
		cssls.KindHexColor, cssls.KindFunctionCall, cssls.KindString:
		decl := cssls.Ancestor(node, cssls.KindDeclaration)
		if decl == nil {
			return ctx
		}

		classifyValuePosition(src, decl, node, offset, &ctx)
	}

	return ctx
}

// classifyAtRule handles a cursor inside an at-rule that has no deeper
// node at the position.
func classifyAtRule(src string, node *cssls.Node, offset int, ctx *Context) {
	nameEnd := node.Start + 1 + len(node.Name)
	if offset <= nameEnd {
		ctx.Kind = ContextAtRuleName

		return
	}

	if blockOpenBefore(src, node, offset) {
		if cssls.AtRuleHasRuleBody(node.Name) {
			ctx.Kind = ContextSelector
		} else {
			ctx.Kind = ContextPropertyName
		}

		return
	}

	// At-rule prelude (media queries, import targets): unsupported.
	ctx.Kind = ContextNone
}

// classifyDeclaration handles a cursor inside a declaration that has no
// deeper node at the position.
func classifyDeclaration(src string, decl *cssls.Node, offset int, ctx *Context) {
	// Exactly past the terminating ';' the value is closed; nothing to
	// offer until the next token starts.
	if decl.Semi >= 0 && offset > decl.Semi {
		ctx.Kind = ContextNone

		return
	}

	// Up to and including the ':' the cursor still completes the
	// property name; immediately after it the value begins.
	if decl.Colon < 0 || offset <= decl.Colon {
		ctx.Kind = ContextPropertyName

		return
	}

	classifyValuePosition(src, decl, decl, offset, ctx)
}

// classifyValuePosition distinguishes the value-side context variants.
func classifyValuePosition(src string, decl, node *cssls.Node, offset int, ctx *Context) {
	if decl.Semi >= 0 && offset > decl.Semi {
		ctx.Kind = ContextNone

		return
	}

	if prop := decl.PropertyNode(); prop != nil {
		name := prop.Text(src)
		if _, ok := cssls.LookupProperty(name); ok {
			ctx.Property = name
		}
	}

	// Inside the argument list of var() the call syntax is already
	// present, so variables are inserted bare.
	if fc := enclosingCall(node, offset); fc != nil && fc.Name == cssls.VarFunction {
		ctx.Kind = ContextVariableDeclArg

		return
	}

	word := ctx.Word(src)

	switch {
	case strings.HasPrefix(word, "--"):
		ctx.Kind = ContextVariableReference

	case strings.HasPrefix(word, "#"):
		ctx.Kind = ContextColorValue

	default:
		if prefix, rest := SplitNumeric(word); prefix != "" && rest != "" {
			ctx.Kind = ContextNumericUnit
		} else {
			ctx.Kind = ContextPropertyValue
		}
	}
}

// enclosingCall returns the nearest function-call node whose argument
// list contains offset, walking up from node.
func enclosingCall(node *cssls.Node, offset int) *cssls.Node {
	for cur := node; cur != nil; cur = cur.Parent {
		if cur.Kind != cssls.KindFunctionCall {
			continue
		}

		// Past "name(" means inside the argument list.
		if offset > cur.Start+len(cur.Name) {
			return cur
		}
	}

	return nil
}

// blockOpenBefore reports whether a '{' occurs between the node's start
// and the cursor.
func blockOpenBefore(src string, node *cssls.Node, offset int) bool {
	end := offset
	if end > len(src) {
		end = len(src)
	}

	start := node.Start
	if start < 0 {
		start = 0
	}

	return strings.Contains(src[start:end], "{")
}

// currentWord scans left and right from offset over identifier/number
// characters, then absorbs a leading '#' or '@' marker.
func currentWord(src string, offset int) (start, end int) {
	start, end = offset, offset

	for start > 0 && cssls.IsWordRune(rune(src[start-1])) {
		start--
	}

	if start > 0 && (src[start-1] == '#' || src[start-1] == '@') {
		start--
	}

	for end < len(src) && cssls.IsWordRune(rune(src[end])) {
		end++
	}

	return start, end
}

// SplitNumeric splits a word into its leading numeric part and the rest.
// "10cm" becomes ("10", "cm"); "bold" becomes ("", "bold").
func SplitNumeric(word string) (prefix, rest string) {
	i := 0
	for i < len(word) && (word[i] >= '0' && word[i] <= '9' || word[i] == '.') {
		i++
	}

	return word[:i], word[i:]
}

// IsNumericWord reports whether the word consists solely of digits and dots.
func IsNumericWord(word string) bool {
	if word == "" {
		return false
	}

	prefix, rest := SplitNumeric(word)

	return prefix != "" && rest == ""
}
