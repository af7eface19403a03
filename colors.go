package cssls

// NamedColor is one entry in the CSS named-color table.
type NamedColor struct {
	Name string
	Hex  string
}

// NamedColors is the named-color table in completion order.
var NamedColors = []NamedColor{
	{"aliceblue", "#f0f8ff"},
	{"antiquewhite", "#faebd7"},
	{"aqua", "#00ffff"},
	{"aquamarine", "#7fffd4"},
	{"azure", "#f0ffff"},
	{"beige", "#f5f5dc"},
	{"bisque", "#ffe4c4"},
	{"black", "#000000"},
	{"blanchedalmond", "#ffebcd"},
	{"blue", "#0000ff"},
	{"blueviolet", "#8a2be2"},
	{"brown", "#a52a2a"},
	{"burlywood", "#deb887"},
	{"cadetblue", "#5f9ea0"},
	{"chartreuse", "#7fff00"},
	{"chocolate", "#d2691e"},
	{"coral", "#ff7f50"},
	{"cornflowerblue", "#6495ed"},
	{"cornsilk", "#fff8dc"},
	{"crimson", "#dc143c"},
	{"cyan", "#00ffff"},
	{"darkblue", "#00008b"},
	{"darkcyan", "#008b8b"},
	{"darkgoldenrod", "#b8860b"},
	{"darkgray", "#a9a9a9"},
	{"darkgreen", "#006400"},
	{"darkgrey", "#a9a9a9"},
	{"darkkhaki", "#bdb76b"},
	{"darkmagenta", "#8b008b"},
	{"darkolivegreen", "#556b2f"},
	{"darkorange", "#ff8c00"},
	{"darkorchid", "#9932cc"},
	{"darkred", "#8b0000"},
	{"darksalmon", "#e9967a"},
	{"darkseagreen", "#8fbc8f"},
	{"darkslateblue", "#483d8b"},
	{"darkslategray", "#2f4f4f"},
	{"darkslategrey", "#2f4f4f"},
	{"darkturquoise", "#00ced1"},
	{"darkviolet", "#9400d3"},
	{"deeppink", "#ff1493"},
	{"deepskyblue", "#00bfff"},
	{"dimgray", "#696969"},
	{"dimgrey", "#696969"},
	{"dodgerblue", "#1e90ff"},
	{"firebrick", "#b22222"},
	{"floralwhite", "#fffaf0"},
	{"forestgreen", "#228b22"},
	{"fuchsia", "#ff00ff"},
	{"gainsboro", "#dcdcdc"},
	{"ghostwhite", "#f8f8ff"},
	{"gold", "#ffd700"},
	{"goldenrod", "#daa520"},
	{"gray", "#808080"},
	{"green", "#008000"},
	{"greenyellow", "#adff2f"},
	{"grey", "#808080"},
	{"honeydew", "#f0fff0"},
	{"hotpink", "#ff69b4"},
	{"indianred", "#cd5c5c"},
	{"indigo", "#4b0082"},
	{"ivory", "#fffff0"},
	{"khaki", "#f0e68c"},
	{"lavender", "#e6e6fa"},
	{"lavenderblush", "#fff0f5"},
	{"lawngreen", "#7cfc00"},
	{"lemonchiffon", "#fffacd"},
	{"lightblue", "#add8e6"},
	{"lightcoral", "#f08080"},
	{"lightcyan", "#e0ffff"},
	{"lightgoldenrodyellow", "#fafad2"},
	{"lightgray", "#d3d3d3"},
	{"lightgreen", "#90ee90"},
	{"lightgrey", "#d3d3d3"},
	{"lightpink", "#ffb6c1"},
	{"lightsalmon", "#ffa07a"},
	{"lightseagreen", "#20b2aa"},
	{"lightskyblue", "#87cefa"},
	{"lightslategray", "#778899"},
	{"lightslategrey", "#778899"},
	{"lightsteelblue", "#b0c4de"},
	{"lightyellow", "#ffffe0"},
	{"lime", "#00ff00"},
	{"limegreen", "#32cd32"},
	{"linen", "#faf0e6"},
	{"magenta", "#ff00ff"},
	{"maroon", "#800000"},
	{"mediumaquamarine", "#66cdaa"},
	{"mediumblue", "#0000cd"},
	{"mediumorchid", "#ba55d3"},
	{"mediumpurple", "#9370db"},
	{"mediumseagreen", "#3cb371"},
	{"mediumslateblue", "#7b68ee"},
	{"mediumspringgreen", "#00fa9a"},
	{"mediumturquoise", "#48d1cc"},
	{"mediumvioletred", "#c71585"},
	{"midnightblue", "#191970"},
	{"mintcream", "#f5fffa"},
	{"mistyrose", "#ffe4e1"},
	{"moccasin", "#ffe4b5"},
	{"navajowhite", "#ffdead"},
	{"navy", "#000080"},
	{"oldlace", "#fdf5e6"},
	{"olive", "#808000"},
	{"olivedrab", "#6b8e23"},
	{"orange", "#ffa500"},
	{"orangered", "#ff4500"},
	{"orchid", "#da70d6"},
	{"palegoldenrod", "#eee8aa"},
	{"palegreen", "#98fb98"},
	{"paleturquoise", "#afeeee"},
	{"palevioletred", "#db7093"},
	{"papayawhip", "#ffefd5"},
	{"peachpuff", "#ffdab9"},
	{"peru", "#cd853f"},
	{"pink", "#ffc0cb"},
	{"plum", "#dda0dd"},
	{"powderblue", "#b0e0e6"},
	{"purple", "#800080"},
	{"rebeccapurple", "#663399"},
	{"red", "#ff0000"},
	{"rosybrown", "#bc8f8f"},
	{"royalblue", "#4169e1"},
	{"saddlebrown", "#8b4513"},
	{"salmon", "#fa8072"},
	{"sandybrown", "#f4a460"},
	{"seagreen", "#2e8b57"},
	{"seashell", "#fff5ee"},
	{"sienna", "#a0522d"},
	{"silver", "#c0c0c0"},
	{"skyblue", "#87ceeb"},
	{"slateblue", "#6a5acd"},
	{"slategray", "#708090"},
	{"slategrey", "#708090"},
	{"snow", "#fffafa"},
	{"springgreen", "#00ff7f"},
	{"steelblue", "#4682b4"},
	{"tan", "#d2b48c"},
	{"teal", "#008080"},
	{"thistle", "#d8bfd8"},
	{"tomato", "#ff6347"},
	{"turquoise", "#40e0d0"},
	{"violet", "#ee82ee"},
	{"wheat", "#f5deb3"},
	{"white", "#ffffff"},
	{"whitesmoke", "#f5f5f5"},
	{"yellow", "#ffff00"},
	{"yellowgreen", "#9acd32"},
	{"transparent", ""},
	{"currentColor", ""},
}

// namedColorIndex maps name to hex for hover lookups.
var namedColorIndex = func() map[string]string {
	idx := make(map[string]string, len(NamedColors))
	for _, c := range NamedColors {
		idx[c.Name] = c.Hex
	}

	return idx
}()

// LookupNamedColor returns the hex value for a named color.
func LookupNamedColor(name string) (string, bool) {
	hex, ok := namedColorIndex[name]

	return hex, ok
}

// ColorFunction is a color-constructing function offered in value position.
type ColorFunction struct {
	Name   string
	Insert string
	Doc    string
}

// ColorFunctions are offered for any color-accepting property.
var ColorFunctions = []ColorFunction{
	{Name: "rgb", Insert: "rgb()", Doc: "Creates a color from red, green, and blue channels."},
	{Name: "hsl", Insert: "hsl()", Doc: "Creates a color from hue, saturation, and lightness."},
}

// AtRule is a known at-rule offered in selector position.
type AtRule struct {
	Name string // includes the leading '@'
	Doc  string
}

// AtRules is the at-rule table in completion order.
var AtRules = []AtRule{
	{"@media", "Applies rules conditionally based on media queries."},
	{"@supports", "Applies rules conditionally based on feature support."},
	{"@import", "Imports rules from another stylesheet."},
	{"@charset", "Declares the character encoding of the stylesheet."},
	{"@namespace", "Declares an XML namespace for selectors."},
	{"@keyframes", "Defines the intermediate steps of an animation."},
	{"@font-face", "Declares a downloadable font."},
	{"@page", "Styles for printed pages."},
	{"@layer", "Declares a cascade layer."},
}

// TagNames are the common element selectors offered at the top level.
var TagNames = []string{
	"html", "body", "div", "span", "a", "p",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "ol", "li", "table", "tr", "td", "th",
	"form", "input", "button", "label", "select", "textarea",
	"img", "header", "footer", "nav", "main", "section", "article", "aside",
	"pre", "code", "blockquote", "strong", "em",
}
