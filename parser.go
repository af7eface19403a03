package cssls

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DiagnosticSeverity mirrors the LSP severity levels.
type DiagnosticSeverity int

const (
	SeverityError DiagnosticSeverity = iota + 1
	SeverityWarning
	SeverityInformation
	SeverityHint
)

// Diagnostic is a parse problem with a character range into the document.
type Diagnostic struct {
	Start    int
	End      int
	Severity DiagnosticSeverity
	Code     string
	Message  string
}

// Parse builds a syntax tree for src. It is total: malformed or
// in-progress input produces a best-effort tree plus diagnostics, never
// an error. The tree always spans the whole document.
func Parse(src string) (*Node, []Diagnostic) {
	p := &parser{src: src, tokens: scanTokens(src)}

	root := &Node{Kind: KindStylesheet, Start: 0, End: len(src), Colon: -1, Semi: -1}
	p.parseRuleList(root, false)

	return root, p.diags
}

type parser struct {
	src    string
	tokens []lexer.Token
	i      int
	diags  []Diagnostic
}

func (p *parser) eof() bool {
	return p.i >= len(p.tokens)
}

func (p *parser) cur() lexer.Token {
	if p.eof() {
		return lexer.Token{Type: tEOF, Pos: lexer.Position{Offset: len(p.src)}}
	}

	return p.tokens[p.i]
}

func (p *parser) is(typ lexer.TokenType) bool {
	return p.cur().Type == typ
}

func (p *parser) advance() lexer.Token {
	tok := p.cur()
	if !p.eof() {
		p.i++
	}

	return tok
}

func tokEnd(tok lexer.Token) int {
	return tok.Pos.Offset + len(tok.Value)
}

func (p *parser) errorf(start, end int, code, msg string) {
	p.diags = append(p.diags, Diagnostic{
		Start:    start,
		End:      end,
		Severity: SeverityError,
		Code:     code,
		Message:  msg,
	})
}

// newNode creates a node with punctuation offsets zeroed out.
func newNode(kind NodeKind, start, end int) *Node {
	return &Node{Kind: kind, Start: start, End: end, Colon: -1, Semi: -1}
}

// parseRuleList parses rulesets and at-rules until EOF, or until a
// closing brace when nested is true.
func (p *parser) parseRuleList(parent *Node, nested bool) {
	for !p.eof() {
		switch {
		case p.is(tRBrace):
			if nested {
				return
			}

			tok := p.advance()
			p.errorf(tok.Pos.Offset, tokEnd(tok), "unexpected-brace", "unexpected '}'")

		case p.is(tAtKeyword):
			p.parseAtRule(parent)

		case p.is(tSemi):
			p.advance()

		default:
			p.parseRuleset(parent)
		}
	}
}

// atRuleRuleBodies lists at-rules whose block contains nested rules
// rather than declarations.
var atRuleRuleBodies = map[string]bool{
	"media":     true,
	"supports":  true,
	"keyframes": true,
	"document":  true,
	"layer":     true,
}

// AtRuleHasRuleBody reports whether the named at-rule's block contains
// nested rules (like @media) rather than declarations (like @font-face).
func AtRuleHasRuleBody(name string) bool {
	return atRuleRuleBodies[name]
}

func (p *parser) parseAtRule(parent *Node) {
	tok := p.advance()

	node := newNode(KindAtRule, tok.Pos.Offset, tokEnd(tok))
	node.Name = tok.Value[1:]
	parent.append(node)

	// Prelude tokens up to the block or terminator.
	for !p.eof() && !p.is(tLBrace) && !p.is(tSemi) && !p.is(tRBrace) {
		node.End = tokEnd(p.advance())
	}

	switch {
	case p.is(tSemi):
		node.End = tokEnd(p.advance())

	case p.is(tLBrace):
		p.advance()

		if AtRuleHasRuleBody(node.Name) {
			p.parseRuleList(node, true)
		} else {
			p.parseDeclarationList(node)
		}

		if p.is(tRBrace) {
			node.End = tokEnd(p.advance())
		} else {
			node.End = len(p.src)
			p.errorf(node.Start, node.End, "missing-brace", "missing '}'")
		}
	}
}

func (p *parser) parseRuleset(parent *Node) {
	start := p.cur().Pos.Offset

	node := newNode(KindRuleset, start, start)
	parent.append(node)

	selector := newNode(KindSelector, start, start)
	node.append(selector)

	for !p.eof() && !p.is(tLBrace) && !p.is(tRBrace) && !p.is(tSemi) {
		selector.End = tokEnd(p.advance())
	}

	node.End = selector.End

	if !p.is(tLBrace) {
		p.errorf(selector.Start, selector.End, "missing-block", "expected '{'")

		if p.is(tSemi) {
			node.End = tokEnd(p.advance())
		}

		return
	}

	p.advance() // {
	p.parseDeclarationList(node)

	if p.is(tRBrace) {
		node.End = tokEnd(p.advance())
	} else {
		node.End = len(p.src)
		p.errorf(node.Start, node.End, "missing-brace", "missing '}'")
	}
}

func (p *parser) parseDeclarationList(parent *Node) {
	for !p.eof() && !p.is(tRBrace) {
		switch {
		case p.is(tSemi):
			p.advance()

		case p.is(tAtKeyword):
			p.parseAtRule(parent)

		case p.is(tIdent):
			p.parseDeclaration(parent)

		default:
			tok := p.advance()
			p.errorf(tok.Pos.Offset, tokEnd(tok), "unexpected-token",
				"unexpected '"+tok.Value+"' in declaration block")
		}
	}

	// Extend the enclosing node over trailing space so a cursor between
	// the last declaration and the closing brace still resolves into it.
	if !p.eof() {
		parent.End = p.cur().Pos.Offset
	} else {
		parent.End = len(p.src)
	}
}

func (p *parser) parseDeclaration(parent *Node) {
	ident := p.advance()

	decl := newNode(KindDeclaration, ident.Pos.Offset, tokEnd(ident))
	parent.append(decl)

	property := newNode(KindProperty, ident.Pos.Offset, tokEnd(ident))
	decl.append(property)

	if !p.is(tColon) {
		p.errorf(property.Start, property.End, "missing-colon", "expected ':' after property name")

		return
	}

	colon := p.advance()
	decl.Colon = colon.Pos.Offset
	decl.End = tokEnd(colon)

	value := newNode(KindValue, tokEnd(colon), tokEnd(colon))
	decl.append(value)

	p.parseValueItems(value)

	// The value region reaches to the terminator so a cursor after the
	// last item (or after a lone ':') still resolves into the value.
	stop := p.cur().Pos.Offset
	if p.eof() {
		stop = len(p.src)
	}

	if stop > value.End {
		value.End = stop
	}

	decl.End = value.End

	if p.is(tSemi) {
		semi := p.advance()
		decl.Semi = semi.Pos.Offset
		decl.End = tokEnd(semi)
	}
}

// parseValueItems parses value items until a terminator, appending child
// nodes to parent and extending its range.
func (p *parser) parseValueItems(parent *Node) {
	for !p.eof() && !p.is(tSemi) && !p.is(tRBrace) && !p.is(tLBrace) && !p.is(tRParen) {
		switch p.cur().Type {
		case tNumber, tDimension:
			tok := p.advance()
			parent.append(newNode(KindNumericLiteral, tok.Pos.Offset, tokEnd(tok)))

		case tHash:
			tok := p.advance()
			parent.append(newNode(KindHexColor, tok.Pos.Offset, tokEnd(tok)))

		case tString:
			tok := p.advance()
			parent.append(newNode(KindString, tok.Pos.Offset, tokEnd(tok)))

		case tIdent:
			if p.peekType(1) == tLParen {
				p.parseFunctionCall(parent)
			} else {
				tok := p.advance()
				parent.append(newNode(KindIdentifier, tok.Pos.Offset, tokEnd(tok)))
			}

		default:
			// Commas, operators, stray brackets: part of the value text
			// but not modeled as nodes.
			p.advance()
		}

		if n := len(parent.Children); n > 0 && parent.Children[n-1].End > parent.End {
			parent.End = parent.Children[n-1].End
		}
	}
}

func (p *parser) peekType(n int) lexer.TokenType {
	if p.i+n >= len(p.tokens) {
		return tEOF
	}

	return p.tokens[p.i+n].Type
}

func (p *parser) parseFunctionCall(parent *Node) {
	ident := p.advance()

	node := newNode(KindFunctionCall, ident.Pos.Offset, tokEnd(ident))
	node.Name = ident.Value
	parent.append(node)

	lparen := p.advance()
	node.End = tokEnd(lparen)

	p.parseValueItems(node)

	switch {
	case p.is(tRParen):
		node.End = tokEnd(p.advance())

	case p.eof():
		node.End = len(p.src)

	default:
		// Unclosed call: reach to the terminator so a cursor inside the
		// argument list still resolves into the call.
		if p.cur().Pos.Offset > node.End {
			node.End = p.cur().Pos.Offset
		}
	}
}
