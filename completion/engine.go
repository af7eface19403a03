package completion

import (
	"sort"
	"strings"

	"github.com/rlch/cssls"
)

// Item is one ranked completion result: a candidate plus the exact text
// edit that applies it. The edit replaces the half-open range
// [Start, End) with the candidate's insert text; when no current word
// exists the range is empty and the edit is a pure insertion.
type Item struct {
	Candidate

	Start int
	End   int
}

// Engine produces completion results for CSS documents. It holds only
// immutable configuration, so a single Engine serves concurrent requests
// for different documents without synchronization.
type Engine struct {
	cfg *cssls.Config

	// extraColorNames keeps config-supplied colors in a deterministic
	// order; extraColors maps them to hex values.
	extraColorNames []string
	extraColors     map[string]string
}

// NewEngine creates an engine. A nil config uses defaults.
func NewEngine(cfg *cssls.Config) *Engine {
	e := &Engine{cfg: cfg}

	if cfg != nil && len(cfg.CustomData.Colors) > 0 {
		e.extraColors = cfg.CustomData.Colors
		for name := range cfg.CustomData.Colors {
			e.extraColorNames = append(e.extraColorNames, name)
		}

		sort.Strings(e.extraColorNames)
	}

	return e
}

func (e *Engine) extraAtRules() []string {
	if e.cfg == nil {
		return nil
	}

	return e.cfg.CustomData.AtRules
}

// Complete resolves the cursor context and returns the ordered,
// deduplicated completion items. It is side-effect-free on the document
// and total: any input degrades to a reduced result, never an error.
func (e *Engine) Complete(doc *cssls.Document, tree *cssls.Node, offset int) []Item {
	ctx := Resolve(doc, tree, offset)

	var cands []Candidate

	switch ctx.Kind {
	case ContextNone:
		return nil

	case ContextSelector:
		cands = e.selectorCandidates()

	case ContextAtRuleName:
		cands = e.atRuleCandidates()

	case ContextPropertyName:
		cands = e.propertyCandidates()

	case ContextPropertyValue:
		cands = e.valueCandidates(&ctx, doc, tree, Collect(doc, tree))

	case ContextNumericUnit:
		cands = e.unitCandidates(&ctx, doc)

	case ContextColorValue:
		cands = e.usedColorCandidates(doc, tree, ctx.Offset)

	case ContextVariableReference:
		cands = variableCandidates(Collect(doc, tree), true)

	case ContextVariableDeclArg:
		cands = variableCandidates(Collect(doc, tree), false)
	}

	return buildItems(cands, &ctx, doc.Text)
}

// buildItems filters by typed prefix, collapses duplicate labels of the
// same kind (first generated wins), and anchors each survivor to the
// current-word range.
func buildItems(cands []Candidate, ctx *Context, src string) []Item {
	prefix := ctx.TypedPrefix(src)

	type key struct {
		label string
		kind  CandidateKind
	}

	seen := make(map[key]bool, len(cands))

	items := make([]Item, 0, len(cands))

	for _, c := range cands {
		if prefix != "" && !strings.HasPrefix(c.Label, prefix) {
			continue
		}

		k := key{label: c.Label, kind: c.Kind}
		if seen[k] {
			continue
		}

		seen[k] = true

		items = append(items, Item{
			Candidate: c,
			Start:     ctx.WordStart,
			End:       ctx.WordEnd,
		})
	}

	return items
}

// Documentation renders markdown documentation for an item on demand.
func (e *Engine) Documentation(it Item) string {
	var b strings.Builder

	b.WriteString("`")
	b.WriteString(it.Label)
	b.WriteString("`")

	switch it.Kind {
	case CandidateVariable:
		b.WriteString(" — custom property")

		if it.Detail != "" {
			b.WriteString("\n\nValue: `" + it.Detail + "`")
		}

	case CandidateColor:
		if it.Detail != "" {
			b.WriteString("\n\n" + it.Detail)
		}

	case CandidateUnit:
		if it.Detail != "" {
			b.WriteString(" — " + it.Detail + " value")
		}

	default:
		if it.Detail != "" {
			b.WriteString(" — " + it.Detail)
		}
	}

	if it.Doc != "" {
		b.WriteString("\n\n" + it.Doc)
	}

	return b.String()
}
