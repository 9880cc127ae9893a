package ttml

// Kind is the content element a node was built from.
type Kind int

const (
	KindBody Kind = iota
	KindDiv
	KindP
	KindSpan
	KindBr
)

var kindNames = map[string]Kind{
	"body": KindBody,
	"div":  KindDiv,
	"p":    KindP,
	"span": KindSpan,
	"br":   KindBr,
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// Block kinds end with a line break when rendered.
func (k Kind) Block() bool {
	return k == KindDiv || k == KindP || k == KindBr
}

// NodeID indexes Document.Nodes.
type NodeID int

const NoNode NodeID = -1

// Node is one content element of the body. Attribute fields hold the raw
// declared value and are empty when the attribute is absent.
type Node struct {
	Kind     Kind
	Parent   NodeID
	Children []NodeID

	Begin     string
	End       string
	Dur       string
	Style     string
	Color     string
	FontStyle string

	// Text precedes the first child, Tail follows the node inside its parent.
	Text string
	Tail string
}

// Document is a parsed timed text document. Nodes form an arena, the body
// is always at Root when present.
type Document struct {
	Nodes    []Node
	Root     NodeID
	Styles   Catalog
	TickRate int
}

func (d *Document) Node(id NodeID) *Node {
	return &d.Nodes[id]
}

// HasBody reports whether the document carried a body element.
func (d *Document) HasBody() bool {
	return d.Root != NoNode && len(d.Nodes) > 0
}

func (d *Document) add(n Node) NodeID {
	d.Nodes = append(d.Nodes, n)
	return NodeID(len(d.Nodes) - 1)
}
