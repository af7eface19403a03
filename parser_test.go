package cssls_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rlch/cssls"
)

// flatten projects a tree into "kind text" lines in document order, which
// keeps expected trees readable without spelling out offsets.
func flatten(src string, root *cssls.Node) []string {
	var out []string

	cssls.Visit(root, func(n *cssls.Node) {
		out = append(out, n.Kind.String()+" "+n.Text(src))
	})

	return out
}

func TestParse_Structure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple ruleset",
			input: "a { color: red; }",
			want: []string{
				"stylesheet a { color: red; }",
				"ruleset a { color: red; }",
				"selector a",
				"declaration color: red;",
				"property color",
				"value  red",
				"identifier red",
			},
		},
		{
			name:  "media query with nested ruleset",
			input: "@media screen { a { color: red } }",
			want: []string{
				"stylesheet @media screen { a { color: red } }",
				"at-rule @media screen { a { color: red } }",
				"ruleset a { color: red }",
				"selector a",
				"declaration color: red ",
				"property color",
				"value  red ",
				"identifier red",
			},
		},
		{
			name:  "font-face has declaration body",
			input: "@font-face { src: url(a.woff2); }",
			want: []string{
				"stylesheet @font-face { src: url(a.woff2); }",
				"at-rule @font-face { src: url(a.woff2); }",
				"declaration src: url(a.woff2);",
				"property src",
				"value  url(a.woff2)",
				"function-call url(a.woff2)",
				"identifier a",
				"identifier woff2",
			},
		},
		{
			name:  "import without block",
			input: `@import "reset.css";`,
			want: []string{
				`stylesheet @import "reset.css";`,
				`at-rule @import "reset.css";`,
			},
		},
		{
			name:  "value item kinds",
			input: "a { border: 1px solid #fff; }",
			want: []string{
				"stylesheet a { border: 1px solid #fff; }",
				"ruleset a { border: 1px solid #fff; }",
				"selector a",
				"declaration border: 1px solid #fff;",
				"property border",
				"value  1px solid #fff",
				"numeric-literal 1px",
				"identifier solid",
				"hex-color #fff",
			},
		},
		{
			name:  "var reference",
			input: "a{width:var(--w)}",
			want: []string{
				"stylesheet a{width:var(--w)}",
				"ruleset a{width:var(--w)}",
				"selector a",
				"declaration width:var(--w)",
				"property width",
				"value var(--w)",
				"function-call var(--w)",
				"identifier --w",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, diags := cssls.Parse(tt.input)
			if len(diags) != 0 {
				t.Fatalf("Parse(%q) diagnostics = %v, want none", tt.input, diags)
			}

			if diff := cmp.Diff(tt.want, flatten(tt.input, tree)); diff != "" {
				t.Errorf("Parse(%q) tree mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_Tolerance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantCodes []string
	}{
		{
			name:      "missing colon",
			input:     "a { color }",
			wantCodes: []string{"missing-colon"},
		},
		{
			name:      "missing closing brace",
			input:     "a { color: red",
			wantCodes: []string{"missing-brace"},
		},
		{
			name:      "missing semicolon is tolerated",
			input:     "a { color: red }",
			wantCodes: nil,
		},
		{
			name:      "selector without block",
			input:     "a;",
			wantCodes: []string{"missing-block"},
		},
		{
			name:      "stray closing brace",
			input:     "}",
			wantCodes: []string{"unexpected-brace"},
		},
		{
			name:      "number where property expected",
			input:     "a { 5 }",
			wantCodes: []string{"unexpected-token"},
		},
		{
			name:      "unclosed function call",
			input:     "a { width: var(--w; }",
			wantCodes: nil,
		},
		{
			name:      "empty document",
			input:     "",
			wantCodes: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, diags := cssls.Parse(tt.input)
			if tree == nil {
				t.Fatalf("Parse(%q) returned nil tree", tt.input)
			}

			if tree.Start != 0 || tree.End != len(tt.input) {
				t.Errorf("Parse(%q) root spans [%d, %d), want [0, %d)",
					tt.input, tree.Start, tree.End, len(tt.input))
			}

			var codes []string
			for _, d := range diags {
				codes = append(codes, d.Code)
			}

			if diff := cmp.Diff(tt.wantCodes, codes); diff != "" {
				t.Errorf("Parse(%q) diagnostic codes mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_DeclarationOffsets(t *testing.T) {
	t.Parallel()

	input := "a { color: red; }"
	tree, _ := cssls.Parse(input)

	decl := cssls.NodeAt(tree, 6) // inside "color"
	decl = cssls.Ancestor(decl, cssls.KindDeclaration)

	if decl == nil {
		t.Fatal("no declaration found")
	}

	if input[decl.Colon] != ':' {
		t.Errorf("Colon offset %d points at %q", decl.Colon, input[decl.Colon])
	}

	if input[decl.Semi] != ';' {
		t.Errorf("Semi offset %d points at %q", decl.Semi, input[decl.Semi])
	}

	if got := decl.PropertyNode().Text(input); got != "color" {
		t.Errorf("PropertyNode text = %q, want %q", got, "color")
	}

	if decl.ValueNode() == nil {
		t.Error("ValueNode() = nil, want value node")
	}
}

func TestParse_MissingPunctuationOffsets(t *testing.T) {
	t.Parallel()

	input := "a { color }"
	tree, _ := cssls.Parse(input)

	decl := cssls.Ancestor(cssls.NodeAt(tree, 6), cssls.KindDeclaration)
	if decl == nil {
		t.Fatal("no declaration found")
	}

	if decl.Colon != -1 || decl.Semi != -1 {
		t.Errorf("Colon, Semi = %d, %d; want -1, -1", decl.Colon, decl.Semi)
	}
}

func TestNodeAt(t *testing.T) {
	t.Parallel()

	input := "a { color: red; }"
	tree, _ := cssls.Parse(input)

	tests := []struct {
		name   string
		offset int
		want   cssls.NodeKind
	}{
		{"inside selector", 0, cssls.KindSelector},
		{"inside property", 6, cssls.KindProperty},
		{"end of property", 9, cssls.KindProperty},
		{"inside value identifier", 12, cssls.KindIdentifier},
		{"after value identifier", 14, cssls.KindIdentifier},
		{"past end", 100, cssls.KindStylesheet},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node := cssls.NodeAt(tree, tt.offset)
			if tt.offset > len(input) {
				if node != nil {
					t.Fatalf("NodeAt(%d) = %v, want nil", tt.offset, node.Kind)
				}

				return
			}

			if node == nil {
				t.Fatalf("NodeAt(%d) = nil", tt.offset)
			}

			if node.Kind != tt.want {
				t.Errorf("NodeAt(%d) kind = %v, want %v", tt.offset, node.Kind, tt.want)
			}
		})
	}
}
