package ttml

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Interval is the resolved presentation window of a node. End is only
// meaningful when Bounded is set, an unbounded node never ends.
type Interval struct {
	Begin   time.Duration
	End     time.Duration
	Bounded bool
}

// Contains reports whether the node is visible at t.
func (iv Interval) Contains(t time.Duration) bool {
	if t < iv.Begin {
		return false
	}
	return !iv.Bounded || t < iv.End
}

// Timeline holds the resolved interval of every node, indexed by NodeID.
// It is computed from a Document and never stored back into it.
type Timeline []Interval

// Resolve walks the body once and computes absolute intervals. A child
// inherits its parent's begin as the base of its own offsets.
func Resolve(doc *Document) (Timeline, error) {
	tl := make(Timeline, len(doc.Nodes))
	if !doc.HasBody() {
		return tl, nil
	}
	if err := resolveNode(doc, tl, doc.Root, 0); err != nil {
		return nil, err
	}
	return tl, nil
}

func resolveNode(
	doc *Document,
	tl Timeline,
	id NodeID,
	base time.Duration,
) error {
	n := doc.Node(id)
	iv := Interval{Begin: base}

	if n.Begin != "" {
		begin, err := ParseTime(n.Begin, base, doc.TickRate)
		if err != nil {
			return attrError("begin", n, err)
		}
		// a clock begin may precede the parent, the parent then hides the node
		iv.Begin = begin
	}

	if n.End != "" {
		end, err := ParseTime(n.End, base, doc.TickRate)
		if err != nil {
			return attrError("end", n, err)
		}
		iv.End = end
		iv.Bounded = true
	}

	if n.Dur != "" {
		dur, err := ParseTime(n.Dur, 0, doc.TickRate)
		if err != nil {
			return attrError("dur", n, err)
		}
		end := iv.Begin + dur
		if !iv.Bounded || end < iv.End {
			iv.End = end
		}
		iv.Bounded = true
	}

	if iv.Bounded && iv.End < iv.Begin {
		return fmt.Errorf(
			"%s ends at %v before it begins at %v: %w",
			n.Kind, iv.End, iv.Begin, ErrMalformed,
		)
	}

	tl[id] = iv
	for _, child := range n.Children {
		if err := resolveNode(doc, tl, child, iv.Begin); err != nil {
			return err
		}
	}
	return nil
}

func attrError(attr string, n *Node, err error) error {
	var te *TimeError
	if errors.As(err, &te) {
		te.Attr = attr
	}
	return fmt.Errorf("%s: %w", n.Kind, err)
}

// Boundaries returns every distinct begin and bounded end, ascending.
// These are the only instants where rendered content can change.
func (tl Timeline) Boundaries() []time.Duration {
	out := make([]time.Duration, 0, len(tl)*2)
	for _, iv := range tl {
		out = append(out, iv.Begin)
		if iv.Bounded {
			out = append(out, iv.End)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
