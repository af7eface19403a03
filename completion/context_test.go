package completion_test

import (
	"strings"
	"testing"

	"github.com/rlch/cssls"
	"github.com/rlch/cssls/completion"
)

// cursor splits a marked input like "a { col|or }" into source text and
// cursor offset.
func cursor(t *testing.T, marked string) (string, int) {
	t.Helper()

	offset := strings.Index(marked, "|")
	if offset < 0 {
		t.Fatalf("input %q has no cursor marker", marked)
	}

	return marked[:offset] + marked[offset+1:], offset
}

func resolveAt(t *testing.T, marked string) (completion.Context, string) {
	t.Helper()

	src, offset := cursor(t, marked)
	doc := &cssls.Document{URI: "file:///test.css", Text: src}
	tree, _ := cssls.Parse(src)

	return completion.Resolve(doc, tree, offset), src
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		want         completion.ContextKind
		wantWord     string
		wantProperty string
	}{
		{
			name:  "empty document",
			input: "|",
			want:  completion.ContextSelector,
		},
		{
			name:     "top level word",
			input:    "di|",
			want:     completion.ContextSelector,
			wantWord: "di",
		},
		{
			name:     "inside selector",
			input:    "a|.cls {}",
			want:     completion.ContextSelector,
			wantWord: "a.cls",
		},
		{
			name:  "between rules",
			input: "a {} |",
			want:  completion.ContextSelector,
		},
		{
			name:     "at rule name",
			input:    "@med|ia screen {}",
			want:     completion.ContextAtRuleName,
			wantWord: "@media",
		},
		{
			name:     "bare at sign",
			input:    "@|",
			want:     completion.ContextAtRuleName,
			wantWord: "@",
		},
		{
			name:     "media prelude is unsupported",
			input:    "@media scr|een {}",
			want:     completion.ContextNone,
			wantWord: "screen",
		},
		{
			name:  "inside media block",
			input: "@media screen { | }",
			want:  completion.ContextSelector,
		},
		{
			name:  "inside font-face block",
			input: "@font-face { | }",
			want:  completion.ContextPropertyName,
		},
		{
			name:  "fresh declaration position",
			input: "a { | }",
			want:  completion.ContextPropertyName,
		},
		{
			name:     "partial property name",
			input:    "a { col| }",
			want:     completion.ContextPropertyName,
			wantWord: "col",
		},
		{
			name:     "property name before colon",
			input:    "a { col|or: red; }",
			want:     completion.ContextPropertyName,
			wantWord: "color",
		},
		{
			name:         "value after colon",
			input:        "a { color: |}",
			want:         completion.ContextPropertyValue,
			wantProperty: "color",
		},
		{
			name:         "partial value keyword",
			input:        "a { color: re|d; }",
			want:         completion.ContextPropertyValue,
			wantWord:     "red",
			wantProperty: "color",
		},
		{
			name:         "value just before semicolon",
			input:        "a { color: red|; }",
			want:         completion.ContextPropertyValue,
			wantWord:     "red",
			wantProperty: "color",
		},
		{
			name:  "after semicolon",
			input: "a { color: red;| }",
			want:  completion.ContextNone,
		},
		{
			name:         "numeric unit",
			input:        "a { width: 10c|m; }",
			want:         completion.ContextNumericUnit,
			wantWord:     "10cm",
			wantProperty: "width",
		},
		{
			name:         "bare number is a value position",
			input:        "a { width: 10|; }",
			want:         completion.ContextPropertyValue,
			wantWord:     "10",
			wantProperty: "width",
		},
		{
			name:         "hash starts a color",
			input:        "a { color: #|; }",
			want:         completion.ContextColorValue,
			wantWord:     "#",
			wantProperty: "color",
		},
		{
			name:         "double dash starts a variable reference",
			input:        "a { width: --|",
			want:         completion.ContextVariableReference,
			wantWord:     "--",
			wantProperty: "width",
		},
		{
			name:         "inside var argument list",
			input:        "a { width: var(|) }",
			want:         completion.ContextVariableDeclArg,
			wantProperty: "width",
		},
		{
			name:         "partial name inside var",
			input:        "a { width: var(--m|) }",
			want:         completion.ContextVariableDeclArg,
			wantWord:     "--m",
			wantProperty: "width",
		},
		{
			name:     "unknown property leaves Property empty",
			input:    "a { whatsit: ba|r; }",
			want:     completion.ContextPropertyValue,
			wantWord: "bar",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, src := resolveAt(t, tt.input)

			if ctx.Kind != tt.want {
				t.Errorf("Resolve(%q) kind = %v, want %v", tt.input, ctx.Kind, tt.want)
			}

			if got := ctx.Word(src); got != tt.wantWord {
				t.Errorf("Resolve(%q) word = %q, want %q", tt.input, got, tt.wantWord)
			}

			if ctx.Property != tt.wantProperty {
				t.Errorf("Resolve(%q) property = %q, want %q", tt.input, ctx.Property, tt.wantProperty)
			}
		})
	}
}

func TestTypedPrefix(t *testing.T) {
	t.Parallel()

	ctx, src := resolveAt(t, "a { color: bot|tom; }")

	if got := ctx.Word(src); got != "bottom" {
		t.Errorf("Word = %q, want %q", got, "bottom")
	}

	if got := ctx.TypedPrefix(src); got != "bot" {
		t.Errorf("TypedPrefix = %q, want %q", got, "bot")
	}
}

func TestSplitNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word       string
		wantPrefix string
		wantRest   string
	}{
		{"10cm", "10", "cm"},
		{"1.5em", "1.5", "em"},
		{"10", "10", ""},
		{"bold", "", "bold"},
		{"", "", ""},
	}

	for _, tt := range tests {
		prefix, rest := completion.SplitNumeric(tt.word)
		if prefix != tt.wantPrefix || rest != tt.wantRest {
			t.Errorf("SplitNumeric(%q) = %q, %q; want %q, %q",
				tt.word, prefix, rest, tt.wantPrefix, tt.wantRest)
		}
	}
}
