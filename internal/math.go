package internal

import (
	"fmt"
	"regexp"
	"strings"
)

// MathFormatter wraps arithmetic, algebraic, comparison and fraction
// substrings with semantic markup. It holds only compiled patterns, so a
// single instance is safe for concurrent use by every rendering path.
type MathFormatter struct {
	arithmetic *regexp.Regexp
	algebraic  *regexp.Regexp
	comparison *regexp.Regexp
	fraction   *regexp.Regexp
}

// Math is the shared formatter instance reused by every text-rendering path.
var Math = NewMathFormatter()

// NewMathFormatter compiles the math detection patterns. The patterns operate
// on already-escaped text, which is why comparisons match &lt; and &gt;
// instead of raw angle brackets.
func NewMathFormatter() *MathFormatter {
	return &MathFormatter{
		arithmetic: regexp.MustCompile(`\b\d+(?:\s*[+×÷*-]\s*\d+)+\s*=\s*\d+\b`),
		algebraic:  regexp.MustCompile(`\b\d*[a-z]\s*[+-]\s*\d+\s*=\s*\d+\b`),
		comparison: regexp.MustCompile(`\b\d+(?:\.\d+)?\s*(?:&lt;=?|&gt;=?|≤|≥|≠)\s*\d+(?:\.\d+)?\b`),
		fraction:   regexp.MustCompile(`\b(\d{1,3})\s*/\s*(\d{1,3})\b`),
	}
}

// Format wraps every detected math substring in escaped text with its
// semantic tag.
func (m *MathFormatter) Format(escaped string) string {
	out, saved := m.replace(escaped)
	return restore(out, saved)
}

// replace swaps detected math substrings for NUL-delimited placeholders and
// returns the wrapped markup for each. Input text cannot contain NUL bytes;
// the orchestrator strips them on entry.
func (m *MathFormatter) replace(escaped string) (string, []string) {
	var saved []string
	protect := func(markup string) string {
		saved = append(saved, markup)
		return fmt.Sprintf("\x00%d\x00", len(saved)-1)
	}

	out := m.arithmetic.ReplaceAllStringFunc(escaped, func(s string) string {
		return protect(`<span class="math math-expression">` + s + `</span>`)
	})
	out = m.algebraic.ReplaceAllStringFunc(out, func(s string) string {
		return protect(`<span class="math math-algebraic">` + s + `</span>`)
	})
	out = m.comparison.ReplaceAllStringFunc(out, func(s string) string {
		return protect(`<span class="math math-comparison">` + s + `</span>`)
	})
	out = m.fraction.ReplaceAllStringFunc(out, func(s string) string {
		parts := m.fraction.FindStringSubmatch(s)
		return protect(fmt.Sprintf(
			`<span class="math math-fraction"><sup>%s</sup>&frasl;<sub>%s</sub></span>`,
			parts[1], parts[2]))
	})

	return out, saved
}

func restore(s string, saved []string) string {
	for i, markup := range saved {
		s = strings.Replace(s, fmt.Sprintf("\x00%d\x00", i), markup, 1)
	}
	return s
}
