package ttml

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParseDocument(t *testing.T) {
	doc := mustParse(t, testDocument(` ttp:tickRate="1000"`, `    <div begin="1s">
      <p begin="0s" end="2s" style="yellow it" tts:color="lime" tts:fontStyle="normal">Hello <span>big</span> world</p>
      <p dur="3s">Second<br/>line</p>
    </div>`))

	if doc.TickRate != 1000 {
		t.Errorf("TickRate = %d, want 1000", doc.TickRate)
	}
	if !doc.HasBody() {
		t.Fatal("expected body")
	}
	if got := doc.Node(doc.Root).Kind; got != KindBody {
		t.Errorf("root kind = %v, want body", got)
	}

	divs := nodesOfKind(doc, KindDiv)
	ps := nodesOfKind(doc, KindP)
	if len(divs) != 1 || len(ps) != 2 {
		t.Fatalf("expected 1 div and 2 p, got %d and %d", len(divs), len(ps))
	}
	if len(nodesOfKind(doc, KindSpan)) != 1 || len(nodesOfKind(doc, KindBr)) != 1 {
		t.Fatal("expected one span and one br")
	}

	if got := doc.Node(divs[0]).Begin; got != "1s" {
		t.Errorf("div begin = %q, want 1s", got)
	}

	p := doc.Node(ps[0])
	if p.Begin != "0s" || p.End != "2s" || p.Dur != "" {
		t.Errorf("p timing = %q/%q/%q", p.Begin, p.End, p.Dur)
	}
	if p.Style != "yellow it" || p.Color != "lime" || p.FontStyle != "normal" {
		t.Errorf("p styling = %q/%q/%q", p.Style, p.Color, p.FontStyle)
	}
	if p.Text != "Hello " {
		t.Errorf("p text = %q, want %q", p.Text, "Hello ")
	}
	if p.Parent != divs[0] {
		t.Errorf("p parent = %d, want %d", p.Parent, divs[0])
	}

	span := doc.Node(p.Children[0])
	if span.Text != "big" || span.Tail != " world" {
		t.Errorf("span text/tail = %q/%q", span.Text, span.Tail)
	}

	if got := doc.Node(ps[1]).Dur; got != "3s" {
		t.Errorf("second p dur = %q, want 3s", got)
	}
}

func TestParseStyles(t *testing.T) {
	doc := mustParse(t, testDocument("", ""))

	want := Catalog{
		"s1":     {},
		"yellow": {Color: "yellow"},
		"it":     {FontStyle: "italic"},
		"red":    {Color: "#FF0000"},
	}
	if len(doc.Styles) != len(want) {
		t.Fatalf("expected %d styles, got %d", len(want), len(doc.Styles))
	}
	for id, st := range want {
		if got := doc.Styles[id]; got != st {
			t.Errorf("style %q = %+v, want %+v", id, got, st)
		}
	}
}

func TestParseSkipsUnknownElements(t *testing.T) {
	doc := mustParse(t, testDocument("", `    <div>
      <p>Keep <metadata>drop</metadata>this</p>
    </div>`))

	p := doc.Node(nodesOfKind(doc, KindP)[0])
	if len(p.Children) != 0 {
		t.Errorf("expected no children, got %d", len(p.Children))
	}
	if p.Text != "Keep this" {
		t.Errorf("p text = %q, want %q", p.Text, "Keep this")
	}
}

func TestParseByteOrderMark(t *testing.T) {
	src := "\xef\xbb\xbf" + testDocument("", `<p>Hi</p>`)
	doc := mustParse(t, src)
	if len(nodesOfKind(doc, KindP)) != 1 {
		t.Error("expected one paragraph")
	}
}

func TestParseWithoutBody(t *testing.T) {
	doc := mustParse(t, `<tt xmlns="http://www.w3.org/ns/ttml"><head/></tt>`)
	if doc.HasBody() {
		t.Error("expected no body")
	}
}

func TestParseErrors(t *testing.T) {
	log := zaptest.NewLogger(t)

	if _, err := Parse([]byte("<tt><body>"), log); err == nil {
		t.Error("expected error for truncated document")
	}

	_, err := Parse([]byte(`<html><body/></html>`), log)
	if err == nil || !strings.Contains(err.Error(), "unexpected root element") {
		t.Errorf("expected root element error, got %v", err)
	}

	for _, rate := range []string{"abc", "0", "-5", "2.5"} {
		src := `<tt xmlns:ttp="http://www.w3.org/ns/ttml#parameter" ttp:tickRate="` + rate + `"><body/></tt>`
		if _, err := Parse([]byte(src), log); !errors.Is(err, ErrConfiguration) {
			t.Errorf("tickRate %q: expected ErrConfiguration, got %v", rate, err)
		}
	}
}
