package heuristic

import (
	"regexp"
	"strings"
)

// TextAnalysis is a read-only snapshot of structural signals over raw text.
// It is computed fresh on every call and never cached, since content varies
// per document.
type TextAnalysis struct {
	Length        int
	WordCount     int
	SentenceCount int
	NewlineCount  int
	NewlineRatio  float64

	HasBullets         bool
	HasPageMarkers     bool
	HasMetadataFields  bool
	HasSectionKeywords bool
	LooksLikeMarkdown  bool

	// NeedsRestoration reports that the text is long enough to matter yet
	// nearly flat, so line-break restoration should run before assembly.
	NeedsRestoration bool
}

const (
	restorationNewlineRatio = 0.002
	restorationMinLength    = 100
)

var (
	sentenceEndPattern  = regexp.MustCompile(`[.!?](\s|$)`)
	bulletGlyphPattern  = regexp.MustCompile(`[•·▪‣◦]|(^|\n)\s*[-*+]\s`)
	pageMarkerPattern   = regexp.MustCompile(`(?i)---\s*page\s*\d+\s*---|\bpage\s+\d+\s+of\s+\d+\b`)
	metadataPattern     = regexp.MustCompile(`(?i)\b(grade|subject|topic|duration)\s*:`)
	markdownHeadPattern = regexp.MustCompile(`(?m)^#{1,6}\s`)
	markdownFencePattern = regexp.MustCompile("(?m)^```")
)

var sectionKeywordPattern = compileKeywordPattern(SectionKeywords)

func compileKeywordPattern(keywords []string) *regexp.Regexp {
	escaped := make([]string, len(keywords))
	for i, kw := range keywords {
		escaped[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
}

// Analyze computes structural signals over raw text, including the
// needs-restoration verdict: a newline ratio below 0.002 on text longer than
// 100 characters means the extraction step flattened the line structure.
func Analyze(text string) TextAnalysis {
	a := TextAnalysis{
		Length:        len(text),
		WordCount:     len(strings.Fields(text)),
		SentenceCount: len(sentenceEndPattern.FindAllString(text, -1)),
		NewlineCount:  strings.Count(text, "\n"),
	}

	if a.Length > 0 {
		a.NewlineRatio = float64(a.NewlineCount) / float64(a.Length)
	}

	a.HasBullets = bulletGlyphPattern.MatchString(text)
	a.HasPageMarkers = pageMarkerPattern.MatchString(text)
	a.HasMetadataFields = metadataPattern.MatchString(text)
	a.HasSectionKeywords = sectionKeywordPattern.MatchString(text)
	a.LooksLikeMarkdown = markdownHeadPattern.MatchString(text) ||
		len(markdownFencePattern.FindAllString(text, -1)) >= 2

	a.NeedsRestoration = a.NewlineRatio < restorationNewlineRatio && a.Length > restorationMinLength

	return a
}
