package internal

import (
	"regexp"
	"strings"
)

// entityPattern matches an ampersand that already starts a character entity,
// either named (&amp;), decimal (&#38;) or hexadecimal (&#x26;).
var entityPattern = regexp.MustCompile(`^&(?:[a-zA-Z][a-zA-Z0-9]{1,31}|#[0-9]{1,7}|#[xX][0-9a-fA-F]{1,6});`)

// EscapeHTML escapes &, < and > for safe embedding in markup. An ampersand
// that already starts a character entity is left untouched, so escaping text
// that went through a previous escape pass does not double-escape it.
func EscapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			if entityPattern.MatchString(s[i:]) {
				b.WriteByte('&')
			} else {
				b.WriteString("&amp;")
			}
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// EscapeAttr escapes a string for use inside a double-quoted attribute value.
func EscapeAttr(s string) string {
	return strings.ReplaceAll(EscapeHTML(s), `"`, "&quot;")
}

var (
	codePattern   = regexp.MustCompile("`([^`\n]+)`")
	boldPattern   = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*\n]+)\*`)
	underPattern  = regexp.MustCompile(`\b_([^_\n]+)_\b`)
)

// FormatInline renders a leaf text span: the text is escaped, math substrings
// are wrapped with semantic tags, and markdown-style emphasis markers are
// converted to markup. Math spans are protected with placeholders while the
// emphasis patterns run, so an asterisk used as a multiplication sign is never
// mistaken for an emphasis marker.
func FormatInline(s string) string {
	out := EscapeHTML(s)
	out, saved := Math.replace(out)
	out = codePattern.ReplaceAllString(out, "<code>$1</code>")
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicPattern.ReplaceAllString(out, "<em>$1</em>")
	out = underPattern.ReplaceAllString(out, "<em>$1</em>")
	return restore(out, saved)
}
