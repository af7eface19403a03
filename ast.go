// Package cssls provides an error-tolerant CSS scanner, parser, and the
// static language data consumed by the completion engine.
package cssls

// NodeKind identifies the syntactic construct a Node represents.
type NodeKind int

const (
	KindStylesheet NodeKind = iota
	KindRuleset
	KindSelector
	KindAtRule
	KindDeclaration
	KindProperty
	KindValue
	KindNumericLiteral
	KindHexColor
	KindFunctionCall
	KindIdentifier
	KindString
)

var nodeKindNames = map[NodeKind]string{
	KindStylesheet:     "stylesheet",
	KindRuleset:        "ruleset",
	KindSelector:       "selector",
	KindAtRule:         "at-rule",
	KindDeclaration:    "declaration",
	KindProperty:       "property",
	KindValue:          "value",
	KindNumericLiteral: "numeric-literal",
	KindHexColor:       "hex-color",
	KindFunctionCall:   "function-call",
	KindIdentifier:     "identifier",
	KindString:         "string",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}

	return "unknown"
}

// Node is a parsed construct with a half-open character range into the
// document. Parent is a non-owning back-reference used only for upward
// context lookup.
type Node struct {
	Kind     NodeKind
	Start    int
	End      int
	Parent   *Node
	Children []*Node

	// Name holds the bare name for at-rule and function-call nodes
	// (without the leading '@' or trailing '(').
	Name string

	// Colon and Semi hold the offsets of the ':' and ';' punctuation for
	// declaration nodes, or -1 when absent.
	Colon int
	Semi  int
}

// Text returns the source text this node spans.
func (n *Node) Text(src string) string {
	if n.Start < 0 || n.End > len(src) || n.Start > n.End {
		return ""
	}

	return src[n.Start:n.End]
}

// Contains reports whether offset falls within the node's range.
// The end offset is included so that a cursor sitting immediately after
// the last character of a construct still resolves to it.
func (n *Node) Contains(offset int) bool {
	return n.Start <= offset && offset <= n.End
}

// append adds child to the node, setting the parent back-reference.
func (n *Node) append(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// NodeAt returns the deepest node whose range contains offset.
// When sibling ranges touch at a boundary, the later sibling wins: a
// cursor between two constructs belongs to the one it is about to extend.
func NodeAt(root *Node, offset int) *Node {
	if root == nil || !root.Contains(offset) {
		return nil
	}

	node := root

	for {
		var next *Node

		for _, child := range node.Children {
			if child.Contains(offset) {
				next = child
			}
		}

		if next == nil {
			return node
		}

		node = next
	}
}

// Ancestor walks up the parent chain looking for a node of the given kind.
// Returns nil if no such ancestor exists.
func Ancestor(n *Node, kind NodeKind) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == kind {
			return cur
		}
	}

	return nil
}

// Visit walks the tree in document order, calling fn for every node.
func Visit(root *Node, fn func(*Node)) {
	if root == nil {
		return
	}

	fn(root)

	for _, child := range root.Children {
		Visit(child, fn)
	}
}

// PropertyNode returns the property child of a declaration node, or nil.
func (n *Node) PropertyNode() *Node {
	if n.Kind != KindDeclaration {
		return nil
	}

	for _, child := range n.Children {
		if child.Kind == KindProperty {
			return child
		}
	}

	return nil
}

// ValueNode returns the value child of a declaration node, or nil.
func (n *Node) ValueNode() *Node {
	if n.Kind != KindDeclaration {
		return nil
	}

	for _, child := range n.Children {
		if child.Kind == KindValue {
			return child
		}
	}

	return nil
}

// Document is an immutable text snapshot with a stable identifier.
// The completion core references it for the duration of one request and
// never mutates it.
type Document struct {
	URI  string
	Text string
}
