package ttml

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cleanup passes run in this exact order. Reordering them changes the output
// for adjacent tags and whitespace.
var cleanupPasses = []func(string) string{
	trimAfterOpenTag,
	trimBeforeCloseTag,
	trimAroundNewline,
	collapseNestedFont,
	moveCloseTagBeforeNewline,
	dropBlankFont,
}

var (
	openTagSpaceRegex  = regexp.MustCompile(`(<font color="[^"]*">|<i>)[^\S\n]+`)
	closeTagSpaceRegex = regexp.MustCompile(`[^\S\n]+(</font>|</i>)`)
	newlineSpaceRegex  = regexp.MustCompile(`\n[^\S\n]+`)
	spaceNewlineRegex  = regexp.MustCompile(`[^\S\n]+\n`)
	nestedFontRegex    = regexp.MustCompile(
		`<font color="[^"]*">(\s*)(<font color="[^"]*">(?:[^<]|</?i>)*</font>)(\s*)</font>`,
	)
	newlineCloseRegex = regexp.MustCompile(`\n+(</font>|</i>)`)
	blankFontRegex    = regexp.MustCompile(`<font color="[^"]*">(\s*)</font>`)
)

// Cleanup normalizes rendered markup. The pass chain is repeated until the
// text stops changing, so Cleanup(Cleanup(s)) == Cleanup(s).
func Cleanup(s string) string {
	for {
		next := s
		for _, pass := range cleanupPasses {
			next = pass(next)
		}
		if next == s {
			return s
		}
		s = next
	}
}

// removes spaces after an opening tag that starts the string or follows
// whitespace
func trimAfterOpenTag(s string) string {
	return replaceGuarded(openTagSpaceRegex, s, func(prev, _ rune) bool {
		return prev == utf8.RuneError || unicode.IsSpace(prev)
	}, 1)
}

// removes spaces before a closing tag that ends the string or precedes
// whitespace
func trimBeforeCloseTag(s string) string {
	return replaceGuarded(closeTagSpaceRegex, s, func(_, next rune) bool {
		return next == utf8.RuneError || unicode.IsSpace(next)
	}, 1)
}

func trimAroundNewline(s string) string {
	s = newlineSpaceRegex.ReplaceAllLiteralString(s, "\n")
	return spaceNewlineRegex.ReplaceAllLiteralString(s, "\n")
}

// <font A>ws<font B>text</font>ws</font> keeps only the inner wrapper
func collapseNestedFont(s string) string {
	return nestedFontRegex.ReplaceAllString(s, "$1$2$3")
}

// text\n</i> becomes text</i>\n
func moveCloseTagBeforeNewline(s string) string {
	return newlineCloseRegex.ReplaceAllString(s, "$1\n")
}

func dropBlankFont(s string) string {
	return blankFontRegex.ReplaceAllString(s, "$1")
}

// replaceGuarded replaces every match of re with its group-th submatch when
// guard accepts the runes just outside the match in the original string.
// utf8.RuneError stands for the string boundary.
func replaceGuarded(
	re *regexp.Regexp,
	s string,
	guard func(prev, next rune) bool,
	group int,
) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		prev, next := utf8.RuneError, utf8.RuneError
		if m[0] > 0 {
			prev, _ = utf8.DecodeLastRuneInString(s[:m[0]])
		}
		if m[1] < len(s) {
			next, _ = utf8.DecodeRuneInString(s[m[1]:])
		}
		if !guard(prev, next) {
			continue
		}
		sb.WriteString(s[last:m[0]])
		sb.WriteString(s[m[2*group]:m[2*group+1]])
		last = m[1]
	}
	sb.WriteString(s[last:])
	return sb.String()
}

// collapseEdges shrinks leading and trailing whitespace runs to one space
func collapseEdges(s string) string {
	if s == "" {
		return s
	}
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	if len(trimmed) < len(s) {
		trimmed = " " + trimmed
	}
	end := strings.TrimRightFunc(trimmed, unicode.IsSpace)
	if len(end) < len(trimmed) {
		end += " "
	}
	return end
}
