package ttml

import (
	"strings"
	"time"
)

// Renderer produces the visible marked-up text of a document at a given
// instant. It only reads the document and its timeline.
type Renderer struct {
	doc      *Document
	timeline Timeline
}

func NewRenderer(doc *Document, timeline Timeline) *Renderer {
	return &Renderer{doc: doc, timeline: timeline}
}

// Snapshot renders the whole body at t, with blank line runs limited to
// one and surrounding whitespace removed.
func (r *Renderer) Snapshot(t time.Duration) string {
	if !r.doc.HasBody() {
		return ""
	}
	text := r.Render(r.doc.Root, t)
	text = blankLinesRegex.ReplaceAllLiteralString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Render renders the subtree rooted at id as it is visible at t.
func (r *Renderer) Render(id NodeID, t time.Duration) string {
	if !r.timeline[id].Contains(t) {
		return ""
	}

	n := r.doc.Node(id)
	st := r.doc.Styles.Effective(n)

	var sb strings.Builder
	if st.Color != "" {
		sb.WriteString(`<font color="`)
		sb.WriteString(st.Color)
		sb.WriteString(`">`)
	}
	if st.Italic() {
		sb.WriteString("<i>")
	}

	sb.WriteString(collapseEdges(n.Text))
	for _, child := range n.Children {
		sb.WriteString(r.Render(child, t))
		sb.WriteString(collapseEdges(r.doc.Node(child).Tail))
	}

	if st.Italic() {
		sb.WriteString("</i>")
	}
	if st.Color != "" {
		sb.WriteString("</font>")
	}

	out := Cleanup(sb.String())
	if n.Kind.Block() {
		out += "\n"
	}
	return out
}
