package subtitle

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	fontTagRegex   = regexp.MustCompile(`<font color="([^"]*)">|</font>`)
	colorNameRegex = regexp.MustCompile(`^[A-Za-z]+$`)
	hexColorRegex  = regexp.MustCompile(`^#([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)
)

// rewrites <font> pairs; open returns the replacement for an opening tag
// and false when the pair should be dropped
func rewriteFonts(
	text string,
	open func(color string) (string, bool),
	closeTag string,
) string {
	var (
		sb      strings.Builder
		emitted []bool
		last    int
	)
	for _, m := range fontTagRegex.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(text[last:m[0]])
		last = m[1]

		if m[2] >= 0 {
			repl, ok := open(text[m[2]:m[3]])
			if ok {
				sb.WriteString(repl)
			}
			emitted = append(emitted, ok)
			continue
		}

		// unbalanced closing tags are dropped
		if len(emitted) == 0 {
			continue
		}
		if emitted[len(emitted)-1] {
			sb.WriteString(closeTag)
		}
		emitted = emitted[:len(emitted)-1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// WebVTT has no font element, named colors map to class spans
func vttText(text string) string {
	return rewriteFonts(text, func(color string) (string, bool) {
		if !colorNameRegex.MatchString(color) {
			return "", false
		}
		return "<c." + strings.ToLower(color) + ">", true
	}, "</c>")
}

// ASS override tags, colors are written as &HBBGGRR&
func assText(text string) string {
	text = rewriteFonts(text, func(color string) (string, bool) {
		m := hexColorRegex.FindStringSubmatch(color)
		if m == nil {
			return "", false
		}
		return fmt.Sprintf(`{\c&H%s%s%s&}`,
			strings.ToUpper(m[3]),
			strings.ToUpper(m[2]),
			strings.ToUpper(m[1]),
		), true
	}, `{\c}`)
	text = strings.ReplaceAll(text, "<i>", `{\i1}`)
	text = strings.ReplaceAll(text, "</i>", `{\i0}`)
	return strings.ReplaceAll(text, "\n", `\N`)
}
