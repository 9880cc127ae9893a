package subtitle

import "testing"

func TestVTTText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`<font color="Yellow">hi</font>`, "<c.yellow>hi</c>"},
		{`<font color="#FF0000">hi</font>`, "hi"},
		{`<font color="red">a <font color="#00FF00">b</font> c</font>`, "<c.red>a b c</c>"},
		{`<i>x</i></font>`, "<i>x</i>"},
	}
	for _, tt := range tests {
		if got := vttText(tt.in); got != tt.want {
			t.Errorf("vttText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestASSText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"one\ntwo", `one\Ntwo`},
		{`<font color="#FF8000">hi</font>`, `{\c&H0080FF&}hi{\c}`},
		{`<font color="red"><i>hi</i></font>`, `{\i1}hi{\i0}`},
	}
	for _, tt := range tests {
		if got := assText(tt.in); got != tt.want {
			t.Errorf("assText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
