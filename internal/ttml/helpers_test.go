package ttml

import (
	"fmt"
	"testing"

	"go.uber.org/zap/zaptest"
)

// wraps body content in a document with a small style catalog
func testDocument(rootAttrs, body string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<tt xmlns="http://www.w3.org/ns/ttml" xmlns:tts="http://www.w3.org/ns/ttml#styling" xmlns:ttp="http://www.w3.org/ns/ttml#parameter"%s>
  <head>
    <styling>
      <style xml:id="s1" tts:color="white"/>
      <style xml:id="yellow" tts:color="yellow"/>
      <style xml:id="it" tts:fontStyle="italic"/>
      <style xml:id="red" tts:color="#FF0000"/>
    </styling>
  </head>
  <body>
%s
  </body>
</tt>`, rootAttrs, body)
}

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse([]byte(src), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func mustResolve(t *testing.T, doc *Document) Timeline {
	t.Helper()
	tl, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return tl
}

// returns ids of nodes of the given kind in document order
func nodesOfKind(doc *Document, kind Kind) []NodeID {
	var ids []NodeID
	for i := range doc.Nodes {
		if doc.Nodes[i].Kind == kind {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}
