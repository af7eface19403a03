package completion

import (
	"strings"

	"github.com/rlch/cssls"
)

// CandidateKind classifies what a candidate inserts.
type CandidateKind int

const (
	CandidateKeyword CandidateKind = iota
	CandidateFunction
	CandidateColor
	CandidateVariable
	CandidateUnit
)

func (k CandidateKind) String() string {
	switch k {
	case CandidateKeyword:
		return "keyword"
	case CandidateFunction:
		return "function"
	case CandidateColor:
		return "color"
	case CandidateVariable:
		return "variable"
	case CandidateUnit:
		return "unit-value"
	default:
		return "unknown"
	}
}

// Candidate is one completion suggestion before ranking.
type Candidate struct {
	// Label is the text shown and matched against.
	Label string

	// Insert is the text written by the edit. Empty means the label is
	// inserted verbatim.
	Insert string

	Kind   CandidateKind
	Detail string
	Doc    string
}

// InsertText returns the text the candidate's edit writes.
func (c Candidate) InsertText() string {
	if c.Insert != "" {
		return c.Insert
	}

	return c.Label
}

// Generator invocation order determines dedup winners and output order,
// so it is part of the observable contract: knowledge-base keywords and
// colors come before document-derived reused values, and variables sit
// between them.

// selectorCandidates emits at-rule names and common tag-name selectors.
func (e *Engine) selectorCandidates() []Candidate {
	cands := e.atRuleCandidates()

	if e.cfg.TagSelectorsEnabled() {
		for _, tag := range cssls.TagNames {
			cands = append(cands, Candidate{
				Label:  tag,
				Kind:   CandidateKeyword,
				Detail: "element",
			})
		}
	}

	return cands
}

// atRuleCandidates emits the known at-rule names, each inserted with its
// leading marker.
func (e *Engine) atRuleCandidates() []Candidate {
	cands := make([]Candidate, 0, len(cssls.AtRules))

	for _, at := range cssls.AtRules {
		cands = append(cands, Candidate{
			Label:  at.Name,
			Kind:   CandidateKeyword,
			Detail: "at-rule",
			Doc:    at.Doc,
		})
	}

	for _, name := range e.extraAtRules() {
		if !strings.HasPrefix(name, "@") {
			name = "@" + name
		}

		cands = append(cands, Candidate{
			Label:  name,
			Kind:   CandidateKeyword,
			Detail: "at-rule",
		})
	}

	return cands
}

// propertyCandidates emits every property known to the knowledge base.
func (e *Engine) propertyCandidates() []Candidate {
	cands := make([]Candidate, 0, len(cssls.Properties))

	for i := range cssls.Properties {
		spec := &cssls.Properties[i]
		cands = append(cands, Candidate{
			Label:  spec.Name,
			Kind:   CandidateKeyword,
			Detail: "property",
			Doc:    spec.Doc,
		})
	}

	return cands
}

// valueCandidates emits candidates for a value position. The sequence is
// fixed: schema keywords, named colors, color functions, unit values,
// variables, then colors reused from the document.
func (e *Engine) valueCandidates(ctx *Context, doc *cssls.Document, tree *cssls.Node, table *CustomProperties) []Candidate {
	word := ctx.Word(doc.Text)

	spec, known := cssls.LookupProperty(ctx.Property)
	if !known {
		// Unknown property: degrade to what the word itself implies.
		var cands []Candidate

		if IsNumericWord(word) {
			cands = append(cands, unitExpansions(word, allUnitCategories())...)
		}

		if strings.HasPrefix(word, "#") || word == "" {
			cands = append(cands, e.usedColorCandidates(doc, tree, ctx.Offset)...)
		}

		return cands
	}

	var cands []Candidate

	for _, kw := range spec.Keywords {
		cands = append(cands, Candidate{
			Label:  kw,
			Kind:   CandidateKeyword,
			Detail: spec.Name + " value",
		})
	}

	if spec.AllowsColor {
		cands = append(cands, e.namedColorCandidates()...)
		cands = append(cands, colorFunctionCandidates()...)
	}

	if len(spec.Units) > 0 {
		if IsNumericWord(word) {
			cands = append(cands, unitExpansions(word, spec.Units)...)
		} else {
			cands = append(cands, unitExamples(spec.Units)...)
		}
	}

	cands = append(cands, variableCandidates(table, true)...)

	if spec.AllowsColor {
		cands = append(cands, e.usedColorCandidates(doc, tree, ctx.Offset)...)
	}

	return cands
}

func (e *Engine) namedColorCandidates() []Candidate {
	cands := make([]Candidate, 0, len(cssls.NamedColors))

	for _, c := range cssls.NamedColors {
		cands = append(cands, Candidate{
			Label:  c.Name,
			Kind:   CandidateColor,
			Detail: c.Hex,
		})
	}

	for _, name := range e.extraColorNames {
		cands = append(cands, Candidate{
			Label:  name,
			Kind:   CandidateColor,
			Detail: e.extraColors[name],
		})
	}

	return cands
}

func colorFunctionCandidates() []Candidate {
	cands := make([]Candidate, 0, len(cssls.ColorFunctions))

	for _, fn := range cssls.ColorFunctions {
		cands = append(cands, Candidate{
			Label:  fn.Name,
			Insert: fn.Insert,
			Kind:   CandidateFunction,
			Doc:    fn.Doc,
		})
	}

	return cands
}

// unitExpansions pairs an already-typed numeric prefix with every unit
// suffix the property accepts.
func unitExpansions(prefix string, categories []cssls.UnitCategory) []Candidate {
	var cands []Candidate

	for _, cat := range categories {
		for _, suffix := range cat.Suffixes() {
			cands = append(cands, Candidate{
				Label:  prefix + suffix,
				Kind:   CandidateUnit,
				Detail: cat.String(),
			})
		}
	}

	return cands
}

// unitExamples emits representative numeric-with-unit values when no
// number has been typed yet.
func unitExamples(categories []cssls.UnitCategory) []Candidate {
	var cands []Candidate

	for _, cat := range categories {
		for _, example := range cat.RepresentativeExamples() {
			cands = append(cands, Candidate{
				Label:  example,
				Kind:   CandidateUnit,
				Detail: cat.String(),
			})
		}
	}

	return cands
}

func allUnitCategories() []cssls.UnitCategory {
	return []cssls.UnitCategory{
		cssls.UnitLength,
		cssls.UnitPercentage,
		cssls.UnitAngle,
		cssls.UnitTime,
		cssls.UnitFrequency,
		cssls.UnitResolution,
	}
}

// variableCandidates emits every collected custom property. In a bare
// value position the insert text wraps the name in the var() reference
// call; inside an already-open var() argument list the bare name is
// inserted.
func variableCandidates(table *CustomProperties, wrapped bool) []Candidate {
	cands := make([]Candidate, 0, table.Len())

	for _, name := range table.Names() {
		value, _ := table.Get(name)

		c := Candidate{
			Label:  name,
			Kind:   CandidateVariable,
			Detail: value,
		}

		if wrapped {
			c.Insert = "var(" + name + ")"
		}

		cands = append(cands, c)
	}

	return cands
}

// usedColorCandidates emits every hex color literal already used as a
// declaration value elsewhere in the document.
func (e *Engine) usedColorCandidates(doc *cssls.Document, tree *cssls.Node, cursor int) []Candidate {
	colors := CollectUsedColors(doc, tree, cursor)

	cands := make([]Candidate, 0, len(colors))

	for _, hex := range colors {
		cands = append(cands, Candidate{
			Label:  hex,
			Kind:   CandidateColor,
			Detail: "used in this document",
		})
	}

	return cands
}

// unitCandidates handles the numeric-unit context: the numeric prefix is
// preserved and each accepted unit suffix completes it.
func (e *Engine) unitCandidates(ctx *Context, doc *cssls.Document) []Candidate {
	prefix, _ := SplitNumeric(ctx.Word(doc.Text))

	spec, known := cssls.LookupProperty(ctx.Property)
	if !known {
		return unitExpansions(prefix, allUnitCategories())
	}

	if len(spec.Units) == 0 {
		return nil
	}

	return unitExpansions(prefix, spec.Units)
}
