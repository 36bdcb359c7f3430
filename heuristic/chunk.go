package heuristic

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultMaxSentences bounds paragraph chunks when the caller does not ask
// for a different limit.
const DefaultMaxSentences = 4

const (
	protectedDot      = "\x01"
	protectedEllipsis = "\x02"
)

var (
	ellipsisPattern = regexp.MustCompile(`\.\.\.`)
	decimalPattern  = regexp.MustCompile(`(\d)\.(\d)`)
	abbrevPattern   = buildAbbrevPattern(abbreviations)
	terminatorRun   = regexp.MustCompile(`[.!?]+`)
)

func buildAbbrevPattern(abbrevs []string) *regexp.Regexp {
	escaped := make([]string, len(abbrevs))
	for i, a := range abbrevs {
		escaped[i] = regexp.QuoteMeta(a)
	}
	return regexp.MustCompile(`\b(` + strings.Join(escaped, "|") + `)\.`)
}

// SplitSentences splits a paragraph into sentences. Periods belonging to
// abbreviations, decimal numbers and ellipses are protected before splitting
// and restored verbatim afterwards.
func SplitSentences(text string) []string {
	protected := ellipsisPattern.ReplaceAllString(text, protectedEllipsis)
	protected = decimalPattern.ReplaceAllString(protected, "$1"+protectedDot+"$2")
	protected = abbrevPattern.ReplaceAllStringFunc(protected, func(m string) string {
		return strings.ReplaceAll(m, ".", protectedDot)
	})

	var sentences []string
	start := 0
	for _, m := range terminatorRun.FindAllStringIndex(protected, -1) {
		end := m[1]
		if !startsNewSentence(protected, end) {
			continue
		}
		sentence := strings.TrimSpace(protected[start:end])
		if sentence != "" {
			sentences = append(sentences, unprotect(sentence))
		}
		start = end
	}
	if tail := strings.TrimSpace(protected[start:]); tail != "" {
		sentences = append(sentences, unprotect(tail))
	}

	return sentences
}

// startsNewSentence reports whether the text after a terminator run at pos
// looks like the beginning of a new sentence: whitespace followed by an
// uppercase letter or a digit, or the end of the text.
func startsNewSentence(text string, pos int) bool {
	rest := text[pos:]
	if strings.TrimSpace(rest) == "" {
		return true
	}
	if rest == "" || !unicode.IsSpace(rune(rest[0])) {
		return false
	}
	trimmed := strings.TrimLeft(rest, " \t\n")
	if trimmed == "" {
		return true
	}
	first := []rune(trimmed)[0]
	return unicode.IsUpper(first) || unicode.IsDigit(first)
}

func unprotect(s string) string {
	s = strings.ReplaceAll(s, protectedDot, ".")
	return strings.ReplaceAll(s, protectedEllipsis, "...")
}

// ChunkParagraph splits a paragraph into sentence-aligned chunks of at most
// maxSentences sentences each. A paragraph already within the limit is
// returned unchanged as a single chunk.
func ChunkParagraph(text string, maxSentences int) []string {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	sentences := SplitSentences(text)
	if len(sentences) <= maxSentences {
		return []string{text}
	}

	var chunks []string
	for start := 0; start < len(sentences); start += maxSentences {
		end := start + maxSentences
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, strings.Join(sentences[start:end], " "))
	}

	return chunks
}
