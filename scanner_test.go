package cssls

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/google/go-cmp/cmp"
)

func TestScanTokens(t *testing.T) {
	t.Parallel()

	type tok struct {
		Type  lexer.TokenType
		Value string
	}

	project := func(tokens []lexer.Token) []tok {
		out := make([]tok, 0, len(tokens))
		for _, tk := range tokens {
			out = append(out, tok{Type: tk.Type, Value: tk.Value})
		}

		return out
	}

	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "declaration",
			input: "color: red;",
			want: []tok{
				{tIdent, "color"}, {tColon, ":"}, {tIdent, "red"}, {tSemi, ";"},
			},
		},
		{
			name:  "dimensions and numbers",
			input: "margin: 10px 1.5em 50% .5 0",
			want: []tok{
				{tIdent, "margin"}, {tColon, ":"},
				{tDimension, "10px"}, {tDimension, "1.5em"}, {tDimension, "50%"},
				{tNumber, ".5"}, {tNumber, "0"},
			},
		},
		{
			name:  "hex colors and id selectors",
			input: "#fff #header",
			want:  []tok{{tHash, "#fff"}, {tHash, "#header"}},
		},
		{
			name:  "at keywords",
			input: "@media @",
			want:  []tok{{tAtKeyword, "@media"}, {tAtKeyword, "@"}},
		},
		{
			name:  "custom property name",
			input: "--main-color: blue",
			want:  []tok{{tIdent, "--main-color"}, {tColon, ":"}, {tIdent, "blue"}},
		},
		{
			name:  "vendor prefix",
			input: "-webkit-transform",
			want:  []tok{{tIdent, "-webkit-transform"}},
		},
		{
			name:  "comments dropped",
			input: "a /* comment */ b",
			want:  []tok{{tIdent, "a"}, {tIdent, "b"}},
		},
		{
			name:  "unterminated comment tolerated",
			input: "a /* trailing",
			want:  []tok{{tIdent, "a"}},
		},
		{
			name:  "strings",
			input: `content: "hi" 'there'`,
			want: []tok{
				{tIdent, "content"}, {tColon, ":"},
				{tString, `"hi"`}, {tString, `'there'`},
			},
		},
		{
			name:  "unterminated string stops at newline",
			input: "content: \"oops\ncolor",
			want: []tok{
				{tIdent, "content"}, {tColon, ":"},
				{tString, `"oops`}, {tIdent, "color"},
			},
		},
		{
			name:  "function call punctuation",
			input: "var(--x)",
			want: []tok{
				{tIdent, "var"}, {tLParen, "("}, {tIdent, "--x"}, {tRParen, ")"},
			},
		},
		{
			name:  "unknown runes become delims",
			input: "a > b",
			want:  []tok{{tIdent, "a"}, {tDelim, ">"}, {tIdent, "b"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := project(scanTokens(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scanTokens(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestScanTokens_Offsets(t *testing.T) {
	t.Parallel()

	input := "a { color: red; }"
	tokens := scanTokens(input)

	for _, tk := range tokens {
		end := tk.Pos.Offset + len(tk.Value)
		if got := input[tk.Pos.Offset:end]; got != tk.Value {
			t.Errorf("token %q claims offset %d, but source has %q there", tk.Value, tk.Pos.Offset, got)
		}
	}
}

func TestIsHexColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"#fff", true},
		{"#ffcc00", true},
		{"#ffcc00aa", true},
		{"#abcd", true},
		{"#ff", false},
		{"#fffff", false},
		{"#header", false},
		{"fff", false},
		{"#", false},
	}

	for _, tt := range tests {
		if got := IsHexColor(tt.text); got != tt.want {
			t.Errorf("IsHexColor(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
