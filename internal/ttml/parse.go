package ttml

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse reads a timed text document. Namespace prefixes are ignored, only
// local names of elements and attributes are looked at.
func Parse(src []byte, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}

	xml := etree.NewDocument()
	xml.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if err := xml.ReadFromBytes(bytes.TrimPrefix(src, utf8BOM)); err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}

	root := xml.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	if root.Tag != "tt" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	p := &parser{
		doc: &Document{Root: NoNode, Styles: Catalog{}},
		log: log,
	}

	if v := root.SelectAttr("tickRate"); v != nil {
		rate, err := strconv.Atoi(v.Value)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("tickRate %q: %w", v.Value, ErrConfiguration)
		}
		p.doc.TickRate = rate
	}

	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "head":
			p.parseHead(child)
		case "body":
			if p.doc.Root != NoNode {
				log.Warn("Extra body element, ignoring")
				continue
			}
			p.doc.Root = p.parseElement(child, KindBody, NoNode)
		default:
			log.Debug("Unexpected tag in tt, ignoring", zap.String("tag", child.Tag))
		}
	}

	for i := range p.doc.Nodes {
		n := &p.doc.Nodes[i]
		if missing := p.doc.Styles.Missing(n); len(missing) > 0 {
			log.Warn("Unknown style reference, ignoring",
				zap.Stringer("tag", n.Kind),
				zap.Strings("styles", missing),
			)
		}
	}

	log.Debug("Document parsed",
		zap.Int("nodes", len(p.doc.Nodes)),
		zap.Int("styles", len(p.doc.Styles)),
		zap.Int("tick_rate", p.doc.TickRate),
	)
	return p.doc, nil
}

type parser struct {
	doc *Document
	log *zap.Logger
}

func (p *parser) parseHead(el *etree.Element) {
	for _, child := range el.ChildElements() {
		if child.Tag != "styling" {
			continue
		}
		for _, style := range child.ChildElements() {
			if style.Tag != "style" {
				continue
			}
			p.parseStyle(style)
		}
	}
}

func (p *parser) parseStyle(el *etree.Element) {
	var (
		id string
		st Style
	)
	for _, attr := range el.Attr {
		switch attr.Key {
		case "id":
			id = attr.Value
		case "color":
			st.Color = normalizeColor(attr.Value)
		case "fontStyle":
			st.FontStyle = attr.Value
		}
	}
	if id == "" {
		p.log.Warn("Style without id, ignoring")
		return
	}
	p.doc.Styles[id] = st
}

func (p *parser) parseElement(
	el *etree.Element,
	kind Kind,
	parent NodeID,
) NodeID {
	n := Node{
		Kind:   kind,
		Parent: parent,
		Text:   el.Text(),
	}
	for _, attr := range el.Attr {
		switch attr.Key {
		case "begin":
			n.Begin = attr.Value
		case "end":
			n.End = attr.Value
		case "dur":
			n.Dur = attr.Value
		case "style":
			n.Style = attr.Value
		case "color":
			n.Color = attr.Value
		case "fontStyle":
			n.FontStyle = attr.Value
		}
	}
	id := p.doc.add(n)

	prev := NoNode
	for _, child := range el.ChildElements() {
		childKind, ok := kindNames[child.Tag]
		if !ok || childKind == KindBody {
			// keep surrounding text in place, drop the element itself
			p.log.Debug("Skipping element",
				zap.String("parent", el.Tag),
				zap.String("tag", child.Tag),
			)
			if prev == NoNode {
				p.doc.Nodes[id].Text += child.Tail()
			} else {
				p.doc.Nodes[prev].Tail += child.Tail()
			}
			continue
		}

		cid := p.parseElement(child, childKind, id)
		p.doc.Nodes[cid].Tail = child.Tail()
		p.doc.Nodes[id].Children = append(p.doc.Nodes[id].Children, cid)
		prev = cid
	}
	return id
}
