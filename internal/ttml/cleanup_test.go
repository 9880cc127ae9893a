package ttml

import "testing"

func TestCleanupPasses(t *testing.T) {
	tests := []struct {
		name string
		pass func(string) string
		in   string
		want string
	}{
		{"open tag at start", trimAfterOpenTag, "<i>  hi", "<i>hi"},
		{"open tag after text", trimAfterOpenTag, "a<i> hi", "a<i> hi"},
		{"open tag after space", trimAfterOpenTag, " <i> hi", " <i>hi"},
		{"adjacent open tags", trimAfterOpenTag, ` <font color="red"> <i>  x`, ` <font color="red"><i>x`},
		{"close tag at end", trimBeforeCloseTag, "hi  </i>", "hi</i>"},
		{"close tag before text", trimBeforeCloseTag, "hi </i>x", "hi </i>x"},
		{"close tag before space", trimBeforeCloseTag, "hi </i> x", "hi</i> x"},
		{"spaces around newline", trimAroundNewline, "a  \n  b", "a\nb"},
		{"blank line kept", trimAroundNewline, "a\n\n  b", "a\n\nb"},
		{"nested font", collapseNestedFont,
			`<font color="red">  <font color="blue">hi</font>  </font>`,
			`  <font color="blue">hi</font>  `},
		{"nested font with italic", collapseNestedFont,
			`<font color="red"><font color="blue"><i>hi</i></font></font>`,
			`<font color="blue"><i>hi</i></font>`},
		{"nested font with text outside", collapseNestedFont,
			`<font color="red">a<font color="blue">hi</font></font>`,
			`<font color="red">a<font color="blue">hi</font></font>`},
		{"close tag after newline", moveCloseTagBeforeNewline, "a\n</i>", "a</i>\n"},
		{"close tag after newlines", moveCloseTagBeforeNewline, "a\n\n</font>", "a</font>\n"},
		{"blank font", dropBlankFont, `<font color="red">  </font>`, "  "},
		{"empty font", dropBlankFont, `x<font color="red"></font>y`, "xy"},
		{"italic left alone", dropBlankFont, `<i> </i>`, `<i> </i>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pass(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<font color="red"> <font color="blue">hi</font> </font>`, `<font color="blue">hi</font>`},
		{`<font color="red"><font color="yellow"><font color="lime">x</font></font></font>`, `<font color="lime">x</font>`},
		{`<font color="red">a <font color="yellow">b</font></font>`, `<font color="red">a <font color="yellow">b</font></font>`},
		{"a\n</i></font>", "a</i></font>\n"},
		{" <i> Hello \n world </i> ", " <i>Hello\nworld</i> "},
		{`<font color="red"><i>` + "\n" + `</i></font>`, `<font color="red"><i></i></font>` + "\n"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Cleanup(tt.in)
			if got != tt.want {
				t.Errorf("Cleanup(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Cleanup(got); again != got {
				t.Errorf("Cleanup is not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestCollapseEdges(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"word":           "word",
		"\n    text\n  ": " text ",
		"  a  b  ":       " a  b ",
		" \n\t ":         " ",
		"tail\n":         "tail ",
		"\tlead":         " lead",
	}
	for in, want := range tests {
		if got := collapseEdges(in); got != want {
			t.Errorf("collapseEdges(%q) = %q, want %q", in, got, want)
		}
	}
}
