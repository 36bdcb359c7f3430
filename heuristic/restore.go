package heuristic

import (
	"regexp"
	"sort"
	"strings"
)

const boundaryBucketWidth = 10

// minimum confidence for a boundary to produce a break
const restoreConfidenceFloor = 0.7

// RestoreLineBreaks rewrites a near-flat block of text into
// paragraph/section-delimited text using detected boundaries, then applies the
// structural normalization passes. This is a one-shot heuristic; applying it
// twice is not guaranteed to be a no-op.
func RestoreLineBreaks(text string, boundaries []SentenceBoundary) string {
	// Descending index order keeps earlier indices valid while inserting.
	sorted := make([]SentenceBoundary, len(boundaries))
	copy(sorted, boundaries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Index > sorted[j].Index
	})

	// Boundaries landing in the same 10-character bucket would insert
	// duplicate adjacent breaks; only the first one per bucket wins.
	processed := make(map[int]bool)

	for _, b := range sorted {
		if b.Confidence <= restoreConfidenceFloor {
			continue
		}
		bucket := b.Index / boundaryBucketWidth
		if processed[bucket] {
			continue
		}
		processed[bucket] = true

		var br string
		switch b.Type {
		case BoundarySection:
			br = "\n\n\n"
		case BoundaryParagraph, BoundaryQuestion:
			br = "\n\n"
		default:
			br = "\n"
		}

		pos := b.Index
		if pos < len(text) && isTerminator(text[pos]) {
			pos++
		}
		if pos > len(text) {
			pos = len(text)
		}
		text = text[:pos] + br + strings.TrimLeft(text[pos:], " \t")
	}

	return Normalize(text)
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?' || c == ':'
}

var (
	pageMarkerBreak = regexp.MustCompile(`(?i)\s*(---\s*page\s*\d+\s*---|\bpage\s+\d+\s+of\s+\d+)\s*`)
	bulletBreak     = regexp.MustCompile(`\s([•·▪‣◦])\s*`)
	numberedBreak   = regexp.MustCompile(`\s(\d{1,2}[.)])\s+([A-Z])`)
	letteredBreak   = regexp.MustCompile(`\s([a-z][.)])\s+([A-Z])`)
	metadataBreak   = regexp.MustCompile(`(?i)\s(grade level|grade|subject|topic|duration)\s*:`)
	stepHeaderBreak = regexp.MustCompile(`(?i)\s((?:step|example|problem|part)\s+\d+\s*:)`)
	excessNewlines  = regexp.MustCompile(`\n{4,}`)
)

// sectionKeywordBreak pushes a known section-header keyword (and its trailing
// colon) onto its own line, separating it from any content that follows the
// colon on the same line.
var sectionKeywordBreak = regexp.MustCompile(`(?i)(^|\s)(` + alternation(SectionKeywords) + `)\s*:\s*`)

// Normalize applies the fixed sequence of structural passes used after
// boundary-driven insertion, and is also useful on its own for text that
// already has line breaks: page markers, bullets, numbered and lettered list
// markers, metadata fields and step headers each forced onto their own line,
// section keywords onto their own paragraph, then whitespace cleanup.
func Normalize(text string) string {
	text = pageMarkerBreak.ReplaceAllString(text, "\n\n$1\n\n")
	text = bulletBreak.ReplaceAllString(text, "\n$1 ")
	text = numberedBreak.ReplaceAllString(text, "\n$1 $2")
	text = letteredBreak.ReplaceAllString(text, "\n$1 $2")
	text = metadataBreak.ReplaceAllString(text, "\n$1:")
	text = stepHeaderBreak.ReplaceAllString(text, "\n\n$1 ")
	text = sectionKeywordBreak.ReplaceAllString(text, "$1\n\n$2:\n")

	text = excessNewlines.ReplaceAllString(text, "\n\n\n")
	text = strings.Trim(text, "\n \t")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	// Trimming lines can create fresh blank runs; cap them at two again.
	return excessNewlines.ReplaceAllString(text, "\n\n\n")
}
