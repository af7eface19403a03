package cssls

import "strings"

// UnitCategory is a named group of interchangeable measurement suffixes
// associated with a property's accepted value grammar.
type UnitCategory int

const (
	UnitLength UnitCategory = iota
	UnitPercentage
	UnitAngle
	UnitTime
	UnitFrequency
	UnitResolution
)

// unitSuffixes resolves each category to its fixed list of suffixes.
// Order matters: it is the order unit candidates are generated in.
var unitSuffixes = map[UnitCategory][]string{
	UnitLength:     {"px", "em", "rem", "ex", "ch", "vw", "vh", "vmin", "vmax", "cm", "mm", "in", "pt", "pc", "q"},
	UnitPercentage: {"%"},
	UnitAngle:      {"deg", "rad", "grad", "turn"},
	UnitTime:       {"s", "ms"},
	UnitFrequency:  {"hz", "khz"},
	UnitResolution: {"dpi", "dpcm", "dppx"},
}

// Suffixes returns the unit suffixes belonging to the category.
func (c UnitCategory) Suffixes() []string {
	return unitSuffixes[c]
}

func (c UnitCategory) String() string {
	switch c {
	case UnitLength:
		return "length"
	case UnitPercentage:
		return "percentage"
	case UnitAngle:
		return "angle"
	case UnitTime:
		return "time"
	case UnitFrequency:
		return "frequency"
	case UnitResolution:
		return "resolution"
	default:
		return "unknown"
	}
}

// representativeExamples are the numeric-with-unit examples offered per
// category when the cursor has not typed a number yet.
var representativeExamples = map[UnitCategory][]string{
	UnitLength:     {"0", "1px", "1em"},
	UnitPercentage: {"100%"},
	UnitAngle:      {"45deg"},
	UnitTime:       {"0.5s"},
	UnitFrequency:  {"440hz"},
	UnitResolution: {"96dpi"},
}

// RepresentativeExamples returns the example values for the category.
func (c UnitCategory) RepresentativeExamples() []string {
	return representativeExamples[c]
}

// PropertySpec describes the accepted value grammar of one property.
type PropertySpec struct {
	Name string

	// Keywords the property accepts, in presentation order.
	Keywords []string

	// Units lists the unit categories valid for the property's
	// dimensional values.
	Units []UnitCategory

	// AllowsBareNumber is true when a unitless number is a valid value.
	AllowsBareNumber bool

	// AllowsColor is true when color values are valid.
	AllowsColor bool

	Doc string
}

// lengthPercent is the most common unit pairing.
var lengthPercent = []UnitCategory{UnitLength, UnitPercentage}

// Properties is the property knowledge base, in completion order.
// Initialized once at process start; read-only thereafter.
var Properties = []PropertySpec{
	{Name: "display", Keywords: []string{"block", "inline", "inline-block", "flex", "inline-flex", "grid", "inline-grid", "flow-root", "table", "table-row", "table-cell", "list-item", "contents", "none"}, Doc: "Sets the inner and outer display type of an element."},
	{Name: "position", Keywords: []string{"static", "relative", "absolute", "fixed", "sticky"}, Doc: "Chooses the positioning scheme used to lay out an element."},
	{Name: "top", Keywords: []string{"auto"}, Units: lengthPercent, Doc: "Offset from the top edge of the containing block."},
	{Name: "right", Keywords: []string{"auto"}, Units: lengthPercent, Doc: "Offset from the right edge of the containing block."},
	{Name: "bottom", Keywords: []string{"auto"}, Units: lengthPercent, Doc: "Offset from the bottom edge of the containing block."},
	{Name: "left", Keywords: []string{"auto"}, Units: lengthPercent, Doc: "Offset from the left edge of the containing block."},
	{Name: "float", Keywords: []string{"left", "right", "none", "inline-start", "inline-end"}, Doc: "Places an element on the left or right side of its container."},
	{Name: "clear", Keywords: []string{"none", "left", "right", "both", "inline-start", "inline-end"}, Doc: "Moves an element below preceding floats."},
	{Name: "z-index", Keywords: []string{"auto"}, AllowsBareNumber: true, Doc: "Stacking order of a positioned element."},
	{Name: "overflow", Keywords: []string{"visible", "hidden", "clip", "scroll", "auto"}, Doc: "Behavior when content overflows the element's box."},
	{Name: "overflow-x", Keywords: []string{"visible", "hidden", "clip", "scroll", "auto"}, Doc: "Horizontal overflow behavior."},
	{Name: "overflow-y", Keywords: []string{"visible", "hidden", "clip", "scroll", "auto"}, Doc: "Vertical overflow behavior."},
	{Name: "visibility", Keywords: []string{"visible", "hidden", "collapse"}, Doc: "Shows or hides an element without changing layout."},
	{Name: "box-sizing", Keywords: []string{"content-box", "border-box"}, Doc: "How width and height are computed relative to padding and border."},

	{Name: "width", Keywords: []string{"auto", "min-content", "max-content", "fit-content"}, Units: lengthPercent, Doc: "Preferred width of the element's box."},
	{Name: "height", Keywords: []string{"auto", "min-content", "max-content", "fit-content"}, Units: lengthPercent, Doc: "Preferred height of the element's box."},
	{Name: "min-width", Keywords: []string{"auto", "min-content", "max-content"}, Units: lengthPercent, Doc: "Minimum width constraint."},
	{Name: "min-height", Keywords: []string{"auto", "min-content", "max-content"}, Units: lengthPercent, Doc: "Minimum height constraint."},
	{Name: "max-width", Keywords: []string{"none", "min-content", "max-content"}, Units: lengthPercent, Doc: "Maximum width constraint."},
	{Name: "max-height", Keywords: []string{"none", "min-content", "max-content"}, Units: lengthPercent, Doc: "Maximum height constraint."},

	{Name: "margin", Keywords: []string{"auto"}, Units: lengthPercent, Doc: "Shorthand for the four margin widths."},
	{Name: "margin-top", Keywords: []string{"auto"}, Units: lengthPercent, Doc: "Top margin width."},
	{Name: "margin-right", Keywords: []string{"auto"}, Units: lengthPercent, Doc: "Right margin width."},
	{Name: "margin-bottom", Keywords: []string{"auto"}, Units: lengthPercent, Doc: "Bottom margin width."},
	{Name: "margin-left", Keywords: []string{"auto"}, Units: lengthPercent, Doc: "Left margin width."},
	{Name: "padding", Units: lengthPercent, Doc: "Shorthand for the four padding widths."},
	{Name: "padding-top", Units: lengthPercent, Doc: "Top padding width."},
	{Name: "padding-right", Units: lengthPercent, Doc: "Right padding width."},
	{Name: "padding-bottom", Units: lengthPercent, Doc: "Bottom padding width."},
	{Name: "padding-left", Units: lengthPercent, Doc: "Left padding width."},

	{Name: "border", Units: []UnitCategory{UnitLength}, AllowsColor: true, Doc: "Shorthand for border width, style, and color."},
	{Name: "border-width", Keywords: []string{"thin", "medium", "thick"}, Units: []UnitCategory{UnitLength}, Doc: "Width of the four borders."},
	{Name: "border-style", Keywords: []string{"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset"}, Doc: "Line style of the four borders."},
	{Name: "border-color", AllowsColor: true, Doc: "Color of the four borders."},
	{Name: "border-radius", Units: lengthPercent, Doc: "Rounds the corners of the border box."},
	{Name: "outline-color", Keywords: []string{"invert"}, AllowsColor: true, Doc: "Color of the focus outline."},
	{Name: "outline-style", Keywords: []string{"auto", "none", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset"}, Doc: "Line style of the focus outline."},
	{Name: "outline-width", Keywords: []string{"thin", "medium", "thick"}, Units: []UnitCategory{UnitLength}, Doc: "Width of the focus outline."},

	{Name: "color", AllowsColor: true, Doc: "Foreground text color."},
	{Name: "background", AllowsColor: true, Keywords: []string{"none"}, Doc: "Shorthand for the background properties."},
	{Name: "background-color", Keywords: []string{"transparent"}, AllowsColor: true, Doc: "Background color of the element."},
	{Name: "background-repeat", Keywords: []string{"repeat", "repeat-x", "repeat-y", "no-repeat", "space", "round"}, Doc: "Tiling behavior of the background image."},
	{Name: "background-position", Keywords: []string{"left", "center", "right", "top", "bottom"}, Units: lengthPercent, Doc: "Initial position of the background image."},
	{Name: "background-size", Keywords: []string{"auto", "cover", "contain"}, Units: lengthPercent, Doc: "Size of the background image."},
	{Name: "background-attachment", Keywords: []string{"scroll", "fixed", "local"}, Doc: "Whether the background scrolls with content."},

	{Name: "font-family", Keywords: []string{"serif", "sans-serif", "monospace", "cursive", "fantasy", "system-ui"}, Doc: "Prioritized list of font family names."},
	{Name: "font-size", Keywords: []string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "smaller", "larger"}, Units: lengthPercent, Doc: "Size of the font."},
	{Name: "font-style", Keywords: []string{"normal", "italic", "oblique"}, Doc: "Selects normal, italic, or oblique faces."},
	{Name: "font-weight", Keywords: []string{"normal", "bold", "bolder", "lighter"}, AllowsBareNumber: true, Doc: "Weight (boldness) of the font."},
	{Name: "line-height", Keywords: []string{"normal"}, Units: lengthPercent, AllowsBareNumber: true, Doc: "Height of a line box."},
	{Name: "letter-spacing", Keywords: []string{"normal"}, Units: []UnitCategory{UnitLength}, Doc: "Spacing between text characters."},
	{Name: "word-spacing", Keywords: []string{"normal"}, Units: lengthPercent, Doc: "Spacing between words."},

	{Name: "text-align", Keywords: []string{"left", "right", "center", "justify", "start", "end"}, Doc: "Horizontal alignment of inline content."},
	{Name: "text-decoration", Keywords: []string{"none", "underline", "overline", "line-through"}, AllowsColor: true, Doc: "Shorthand for text decoration lines."},
	{Name: "text-transform", Keywords: []string{"none", "capitalize", "uppercase", "lowercase"}, Doc: "Capitalization of text."},
	{Name: "text-indent", Units: lengthPercent, Doc: "Indentation of the first line."},
	{Name: "text-overflow", Keywords: []string{"clip", "ellipsis"}, Doc: "Rendering of overflowed inline content."},
	{Name: "vertical-align", Keywords: []string{"baseline", "sub", "super", "top", "text-top", "middle", "bottom", "text-bottom"}, Units: lengthPercent, Doc: "Vertical alignment of an inline or table-cell box."},
	{Name: "white-space", Keywords: []string{"normal", "pre", "nowrap", "pre-wrap", "pre-line", "break-spaces"}, Doc: "How whitespace inside the element is handled."},
	{Name: "word-break", Keywords: []string{"normal", "break-all", "keep-all", "break-word"}, Doc: "Where line breaks may occur within words."},

	{Name: "flex-direction", Keywords: []string{"row", "row-reverse", "column", "column-reverse"}, Doc: "Main axis direction of a flex container."},
	{Name: "flex-wrap", Keywords: []string{"nowrap", "wrap", "wrap-reverse"}, Doc: "Whether flex items wrap onto multiple lines."},
	{Name: "justify-content", Keywords: []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly", "start", "end"}, Doc: "Distribution of items along the main axis."},
	{Name: "align-items", Keywords: []string{"stretch", "flex-start", "flex-end", "center", "baseline", "start", "end"}, Doc: "Default cross-axis alignment of flex items."},
	{Name: "align-self", Keywords: []string{"auto", "stretch", "flex-start", "flex-end", "center", "baseline"}, Doc: "Cross-axis alignment of a single flex item."},
	{Name: "align-content", Keywords: []string{"stretch", "flex-start", "flex-end", "center", "space-between", "space-around"}, Doc: "Distribution of flex lines along the cross axis."},
	{Name: "flex-grow", AllowsBareNumber: true, Doc: "Growth factor of a flex item."},
	{Name: "flex-shrink", AllowsBareNumber: true, Doc: "Shrink factor of a flex item."},
	{Name: "flex-basis", Keywords: []string{"auto", "content"}, Units: lengthPercent, Doc: "Initial main size of a flex item."},
	{Name: "gap", Units: lengthPercent, Doc: "Gutters between rows and columns."},
	{Name: "order", AllowsBareNumber: true, Doc: "Layout order of a flex or grid item."},

	{Name: "opacity", AllowsBareNumber: true, Units: []UnitCategory{UnitPercentage}, Doc: "Transparency of the element."},
	{Name: "cursor", Keywords: []string{"auto", "default", "pointer", "text", "move", "wait", "help", "crosshair", "not-allowed", "grab", "grabbing"}, Doc: "Mouse cursor shown over the element."},
	{Name: "transition-duration", Units: []UnitCategory{UnitTime}, Doc: "Length of time a transition takes."},
	{Name: "transition-delay", Units: []UnitCategory{UnitTime}, Doc: "Delay before a transition starts."},
	{Name: "transition-property", Keywords: []string{"none", "all"}, Doc: "Properties to which transitions apply."},
	{Name: "transition-timing-function", Keywords: []string{"ease", "linear", "ease-in", "ease-out", "ease-in-out", "step-start", "step-end"}, Doc: "Acceleration curve of a transition."},
	{Name: "animation-duration", Units: []UnitCategory{UnitTime}, Doc: "Length of one animation cycle."},
	{Name: "animation-delay", Units: []UnitCategory{UnitTime}, Doc: "Delay before the animation starts."},
	{Name: "animation-direction", Keywords: []string{"normal", "reverse", "alternate", "alternate-reverse"}, Doc: "Direction the animation plays in."},
	{Name: "animation-iteration-count", Keywords: []string{"infinite"}, AllowsBareNumber: true, Doc: "Number of times the animation repeats."},
	{Name: "transform", Keywords: []string{"none"}, Doc: "Applies a 2D or 3D transformation."},
	{Name: "transform-origin", Keywords: []string{"left", "center", "right", "top", "bottom"}, Units: lengthPercent, Doc: "Origin point of transformations."},
	{Name: "rotate", Keywords: []string{"none"}, Units: []UnitCategory{UnitAngle}, Doc: "Rotation transform of the element."},

	{Name: "list-style-type", Keywords: []string{"disc", "circle", "square", "decimal", "lower-roman", "upper-roman", "lower-alpha", "upper-alpha", "none"}, Doc: "Marker style of list items."},
	{Name: "list-style-position", Keywords: []string{"inside", "outside"}, Doc: "Position of the list marker box."},
	{Name: "table-layout", Keywords: []string{"auto", "fixed"}, Doc: "Algorithm used to lay out table cells."},
	{Name: "border-collapse", Keywords: []string{"collapse", "separate"}, Doc: "Whether table borders are collapsed."},
	{Name: "caption-side", Keywords: []string{"top", "bottom"}, Doc: "Position of the table caption box."},
	{Name: "pointer-events", Keywords: []string{"auto", "none"}, Doc: "Whether the element can be the target of pointer events."},
	{Name: "user-select", Keywords: []string{"auto", "text", "none", "contain", "all"}, Doc: "Whether the user can select text."},
	{Name: "content", Keywords: []string{"normal", "none", "open-quote", "close-quote"}, Doc: "Generated content of ::before and ::after."},
	{Name: "box-shadow", Keywords: []string{"none", "inset"}, Units: []UnitCategory{UnitLength}, AllowsColor: true, Doc: "Drop shadows around the element's box."},
	{Name: "text-shadow", Keywords: []string{"none"}, Units: []UnitCategory{UnitLength}, AllowsColor: true, Doc: "Drop shadows behind text."},
	{Name: "image-resolution", Units: []UnitCategory{UnitResolution}, Doc: "Intrinsic resolution of an image."},
	{Name: "pitch", Keywords: []string{"x-low", "low", "medium", "high", "x-high"}, Units: []UnitCategory{UnitFrequency}, Doc: "Average speaking pitch of a voice."},
}

// propertyIndex maps property name to its spec. Built once at init;
// never mutated, so concurrent reads need no synchronization.
var propertyIndex = func() map[string]*PropertySpec {
	idx := make(map[string]*PropertySpec, len(Properties))
	for i := range Properties {
		idx[Properties[i].Name] = &Properties[i]
	}

	return idx
}()

// LookupProperty returns the PropertySpec for a canonical property name.
func LookupProperty(name string) (*PropertySpec, bool) {
	spec, ok := propertyIndex[name]

	return spec, ok
}

// IsCustomProperty reports whether name follows the custom-property
// naming convention.
func IsCustomProperty(name string) bool {
	return strings.HasPrefix(name, "--")
}

// VarFunction is the reference-function used to read a custom property.
const VarFunction = "var"
