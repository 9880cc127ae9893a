package ttml

import "strings"

const fontStyleItalic = "italic"

// Style is the subset of styling that survives into subtitle markup.
// Empty fields are unset.
type Style struct {
	Color     string
	FontStyle string
}

func (s Style) Italic() bool {
	return s.FontStyle == fontStyleItalic
}

// overlay copies every set field of o over s
func (s Style) overlay(o Style) Style {
	if o.Color != "" {
		s.Color = o.Color
	}
	if o.FontStyle != "" {
		s.FontStyle = o.FontStyle
	}
	return s
}

// Catalog maps style ids to their declarations.
type Catalog map[string]Style

// Effective merges the named styles referenced by n, in listed order, and
// then the inline attributes of n. The result applies to n only.
func (c Catalog) Effective(n *Node) Style {
	var st Style
	for _, name := range strings.Fields(n.Style) {
		if named, ok := c[name]; ok {
			st = st.overlay(named)
		}
	}
	return st.overlay(Style{
		Color:     normalizeColor(n.Color),
		FontStyle: n.FontStyle,
	})
}

// Missing lists style references of n that the catalog does not define.
func (c Catalog) Missing(n *Node) []string {
	var missing []string
	for _, name := range strings.Fields(n.Style) {
		if _, ok := c[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// white and black are player defaults and produce no markup
var defaultColors = map[string]struct{}{
	"white":     {},
	"black":     {},
	"#fff":      {},
	"#000":      {},
	"#ffffff":   {},
	"#000000":   {},
	"#ffffffff": {},
	"#000000ff": {},
}

func normalizeColor(color string) string {
	color = strings.TrimSpace(color)
	if _, ok := defaultColors[strings.ToLower(color)]; ok {
		return ""
	}
	return color
}
