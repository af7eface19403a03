package completion_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rlch/cssls"
	"github.com/rlch/cssls/completion"
)

func parseDoc(src string) (*cssls.Document, *cssls.Node) {
	doc := &cssls.Document{URI: "file:///test.css", Text: src}
	tree, _ := cssls.Parse(src)

	return doc, tree
}

func TestCollect(t *testing.T) {
	t.Parallel()

	src := `:root {
  --main-color: #333;
  --spacing: 8px;
}
.card {
  --main-color: #444;
  color: var(--main-color);
}`

	doc, tree := parseDoc(src)
	table := completion.Collect(doc, tree)

	if diff := cmp.Diff([]string{"--main-color", "--spacing"}, table.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	// Redeclaration keeps the first position but the later value.
	if got, _ := table.Get("--main-color"); got != "#444" {
		t.Errorf("Get(--main-color) = %q, want %q", got, "#444")
	}

	if got, _ := table.Get("--spacing"); got != "8px" {
		t.Errorf("Get(--spacing) = %q, want %q", got, "8px")
	}

	if _, ok := table.Get("--missing"); ok {
		t.Error("Get(--missing) reported a value")
	}
}

func TestCollect_SkipsMalformed(t *testing.T) {
	t.Parallel()

	src := `:root {
  --broken
  --empty: ;
  --good: 1px;
}`

	doc, tree := parseDoc(src)
	table := completion.Collect(doc, tree)

	if diff := cmp.Diff([]string{"--good"}, table.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_SeesDeclarationsAfterCursor(t *testing.T) {
	t.Parallel()

	// The declaration appears after the rule that would reference it;
	// collection is position-independent.
	src := `.card { width: 0 }
:root { --late: 4px; }`

	doc, tree := parseDoc(src)
	table := completion.Collect(doc, tree)

	if got, ok := table.Get("--late"); !ok || got != "4px" {
		t.Errorf("Get(--late) = %q, %v; want %q, true", got, ok, "4px")
	}
}

func TestCollectUsedColors(t *testing.T) {
	t.Parallel()

	src := `a { color: #123456; }
b { background-color: #123456; border-color: #abc; }
#header { color: red; }`

	doc, tree := parseDoc(src)

	got := completion.CollectUsedColors(doc, tree, len(src))
	want := []string{"#123456", "#abc"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CollectUsedColors mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectUsedColors_ExcludesCursorLiteral(t *testing.T) {
	t.Parallel()

	marked := `a { color: #123456; }
b { color: #12|; }`

	src, offset := cursor(t, marked)
	doc, tree := parseDoc(src)

	got := completion.CollectUsedColors(doc, tree, offset)

	if diff := cmp.Diff([]string{"#123456"}, got); diff != "" {
		t.Errorf("CollectUsedColors mismatch (-want +got):\n%s", diff)
	}
}
