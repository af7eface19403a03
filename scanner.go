package cssls

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token type constants - negative values as per participle convention.
const (
	tEOF        lexer.TokenType = lexer.EOF
	tComment    lexer.TokenType = -(iota + 2) //nolint:mnd // participle convention
	tIdent                                    // identifiers, including -- custom properties
	tAtKeyword                                // @media, @import, and a bare @
	tHash                                     // #fff, #header
	tNumber                                   // 12, 1.5, .5
	tDimension                                // 10px, 50%, 1.5em
	tString                                   // quoted strings
	tColon                                    // :
	tSemi                                     // ;
	tComma                                    // ,
	tLBrace                                   // {
	tRBrace                                   // }
	tLParen                                   // (
	tRParen                                   // )
	tLBracket                                 // [
	tRBracket                                 // ]
	tDelim                                    // any other punctuation
	tWhitespace                               // spaces, tabs, newlines
)

// scanner tokenizes CSS source. It never fails: unexpected characters
// become tDelim tokens so the parser can keep going over in-progress input.
type scanner struct {
	input  string
	offset int
	line   int
	col    int
}

func newScanner(input string) *scanner {
	return &scanner{input: input, line: 1, col: 1}
}

// scanTokens runs the scanner to EOF, dropping whitespace and comments.
// Token positions carry byte offsets into the input.
func scanTokens(input string) []lexer.Token {
	s := newScanner(input)

	var tokens []lexer.Token

	for {
		tok := s.next()
		if tok.Type == tEOF {
			return tokens
		}

		if tok.Type == tWhitespace || tok.Type == tComment {
			continue
		}

		tokens = append(tokens, tok)
	}
}

// next returns the next token.
func (s *scanner) next() lexer.Token {
	if s.eof() {
		return lexer.EOFToken(s.pos())
	}

	start := s.pos()
	r := s.peek()

	// Whitespace
	if isSpace(r) {
		for !s.eof() && isSpace(s.peek()) {
			s.advance()
		}

		return s.token(tWhitespace, start)
	}

	// Comment
	if r == '/' && s.peekAt(1) == '*' {
		return s.scanComment(start)
	}

	// String
	if r == '"' || r == '\'' {
		return s.scanString(start, r)
	}

	// Hash: hex color or id selector
	if r == '#' {
		s.advance()

		for !s.eof() && isNameContinue(s.peek()) {
			s.advance()
		}

		return s.token(tHash, start)
	}

	// At-keyword. A bare '@' with no name yet is still an at-keyword
	// token so completion can classify it.
	if r == '@' {
		s.advance()

		for !s.eof() && isNameContinue(s.peek()) {
			s.advance()
		}

		return s.token(tAtKeyword, start)
	}

	// Number or dimension
	if isDigit(r) || (r == '.' && isDigit(s.peekAt(1))) {
		return s.scanNumeric(start)
	}

	// Identifier, including -- custom property names and -vendor prefixes
	if isNameStart(r) || (r == '-' && (isNameStart(s.peekAt(1)) || s.peekAt(1) == '-')) {
		s.advance()

		for !s.eof() && isNameContinue(s.peek()) {
			s.advance()
		}

		return s.token(tIdent, start)
	}

	// Punctuation
	s.advance()

	switch r {
	case ':':
		return s.token(tColon, start)
	case ';':
		return s.token(tSemi, start)
	case ',':
		return s.token(tComma, start)
	case '{':
		return s.token(tLBrace, start)
	case '}':
		return s.token(tRBrace, start)
	case '(':
		return s.token(tLParen, start)
	case ')':
		return s.token(tRParen, start)
	case '[':
		return s.token(tLBracket, start)
	case ']':
		return s.token(tRBracket, start)
	}

	return s.token(tDelim, start)
}

func (s *scanner) scanComment(start lexer.Position) lexer.Token {
	s.advance() // /
	s.advance() // *

	for !s.eof() {
		if s.peek() == '*' && s.peekAt(1) == '/' {
			s.advance()
			s.advance()

			return s.token(tComment, start)
		}

		s.advance()
	}

	// Unterminated comment runs to EOF; tolerated.
	return s.token(tComment, start)
}

func (s *scanner) scanString(start lexer.Position, quote rune) lexer.Token {
	s.advance() // opening quote

	for !s.eof() {
		ch := s.peek()
		if ch == '\\' && s.peekAt(1) != 0 {
			s.advance()
			s.advance()

			continue
		}

		if ch == quote {
			s.advance()

			return s.token(tString, start)
		}

		if ch == '\n' {
			// Unterminated string ends at newline; tolerated.
			return s.token(tString, start)
		}

		s.advance()
	}

	return s.token(tString, start)
}

// scanNumeric scans a number and, if letters or '%' follow directly,
// extends it into a dimension token ("10px", "50%").
func (s *scanner) scanNumeric(start lexer.Position) lexer.Token {
	for !s.eof() && isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.advance()

		for !s.eof() && isDigit(s.peek()) {
			s.advance()
		}
	}

	if s.peek() == '%' {
		s.advance()

		return s.token(tDimension, start)
	}

	if isNameStart(s.peek()) {
		for !s.eof() && isNameContinue(s.peek()) {
			s.advance()
		}

		return s.token(tDimension, start)
	}

	return s.token(tNumber, start)
}

func (s *scanner) pos() lexer.Position {
	return lexer.Position{Offset: s.offset, Line: s.line, Column: s.col}
}

func (s *scanner) eof() bool {
	return s.offset >= len(s.input)
}

func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s.input[s.offset:])

	return r
}

func (s *scanner) peekAt(n int) rune {
	off := s.offset + n
	if off >= len(s.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s.input[off:])

	return r
}

func (s *scanner) advance() rune {
	if s.eof() {
		return 0
	}

	r, size := utf8.DecodeRuneInString(s.input[s.offset:])
	s.offset += size

	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	return r
}

func (s *scanner) token(typ lexer.TokenType, start lexer.Position) lexer.Token {
	return lexer.Token{
		Type:  typ,
		Value: s.input[start.Offset:s.offset],
		Pos:   start,
	}
}

// Character helpers.

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameContinue(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsWordRune reports whether r can be part of a completion current word:
// the identifier and number characters plus '.' and '%'. The '#' and '@'
// leaders are handled separately by the word scan.
func IsWordRune(r rune) bool {
	return isNameContinue(r) || isDigit(r) || r == '.' || r == '%'
}

// IsHexColor reports whether text looks like a hex color literal.
func IsHexColor(text string) bool {
	if !strings.HasPrefix(text, "#") || len(text) < 4 {
		return false
	}

	for _, r := range text[1:] {
		if !isHexDigit(r) {
			return false
		}
	}

	n := len(text) - 1

	return n == 3 || n == 4 || n == 6 || n == 8
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
