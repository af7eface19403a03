package completion

import (
	"strings"

	"github.com/rlch/cssls"
)

// CustomProperties maps declared custom-property names to their value
// text, preserving first-declaration order for stable candidate output.
// On duplicate names the later declaration's value wins.
type CustomProperties struct {
	names  []string
	values map[string]string
}

// Names returns the declared names in document order.
func (t *CustomProperties) Names() []string {
	if t == nil {
		return nil
	}

	return t.names
}

// Get returns the last-declared value text for name.
func (t *CustomProperties) Get(name string) (string, bool) {
	if t == nil {
		return "", false
	}

	v, ok := t.values[name]

	return v, ok
}

// Len returns the number of distinct declared names.
func (t *CustomProperties) Len() int {
	if t == nil {
		return 0
	}

	return len(t.names)
}

func (t *CustomProperties) put(name, value string) {
	if _, seen := t.values[name]; !seen {
		t.names = append(t.names, name)
	}

	t.values[name] = value
}

// Collect scans every declaration in the document for custom properties,
// regardless of position relative to the cursor: declarations after the
// cursor are visible to completions before them. Malformed declarations
// are silently skipped. A fresh table is built per request; nothing is
// cached across requests.
func Collect(doc *cssls.Document, tree *cssls.Node) *CustomProperties {
	table := &CustomProperties{values: make(map[string]string)}

	cssls.Visit(tree, func(n *cssls.Node) {
		if n.Kind != cssls.KindDeclaration || n.Colon < 0 {
			return
		}

		prop := n.PropertyNode()
		if prop == nil {
			return
		}

		name := prop.Text(doc.Text)
		if !cssls.IsCustomProperty(name) {
			return
		}

		value := n.ValueNode()
		if value == nil {
			return
		}

		text := strings.TrimSpace(value.Text(doc.Text))
		if text == "" {
			return
		}

		table.put(name, text)
	})

	return table
}

// CollectUsedColors returns the distinct hex color literals used as
// declaration values anywhere in the document, in first-use order. The
// literal the cursor currently touches is excluded so a half-typed color
// does not suggest itself.
func CollectUsedColors(doc *cssls.Document, tree *cssls.Node, cursor int) []string {
	var colors []string

	seen := make(map[string]bool)

	cssls.Visit(tree, func(n *cssls.Node) {
		if n.Kind != cssls.KindHexColor {
			return
		}

		if cssls.Ancestor(n, cssls.KindValue) == nil {
			return
		}

		if n.Contains(cursor) {
			return
		}

		text := n.Text(doc.Text)
		if !cssls.IsHexColor(text) || seen[text] {
			return
		}

		seen[text] = true

		colors = append(colors, text)
	})

	return colors
}
