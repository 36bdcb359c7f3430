package heuristic

import (
	"regexp"
	"strings"
)

// BoundaryType classifies the semantic weight of a detected boundary.
type BoundaryType string

const (
	BoundarySentence  BoundaryType = "sentence"
	BoundaryParagraph BoundaryType = "paragraph"
	BoundarySection   BoundaryType = "section"
	BoundaryQuestion  BoundaryType = "question"
)

// SentenceBoundary is a candidate break position in the original text. No
// boundary is authoritative on its own; the restorer resolves overlaps.
type SentenceBoundary struct {
	// Index points at the terminating punctuation mark when one exists,
	// otherwise at the first character of the matched phrase.
	Index       int
	Confidence  float64
	Type        BoundaryType
	SectionName string
}

const (
	sentenceConfidence  = 0.85
	questionConfidence  = 0.88
	paragraphConfidence = 0.90
	sectionConfidence   = 0.95
)

var sentenceBreakPattern = regexp.MustCompile(`[.!?]\s+[A-Z]`)

var (
	transitionPattern = regexp.MustCompile(`[.!?]\s*(?i:` + alternation(transitionPhrases) + `)`)
	sectionPattern    = regexp.MustCompile(`(?:([.!?:])\s*)?(?i:\b(` + alternation(SectionKeywords) + `)\b)`)
	questionPattern   = regexp.MustCompile(`[.!?]\s*(?i:` + alternation(questionStarters) + `)`)
)

func alternation(phrases []string) string {
	escaped := make([]string, len(phrases))
	for i, p := range phrases {
		escaped[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(escaped, "|")
}

// DetectBoundaries applies four independent signal scans over normalized text
// and unions their hits. Matches carry character indexes into the input.
func DetectBoundaries(text string) []SentenceBoundary {
	var boundaries []SentenceBoundary

	for _, m := range sentenceBreakPattern.FindAllStringIndex(text, -1) {
		boundaries = append(boundaries, SentenceBoundary{
			Index:      m[0],
			Confidence: sentenceConfidence,
			Type:       BoundarySentence,
		})
	}

	for _, m := range transitionPattern.FindAllStringIndex(text, -1) {
		boundaries = append(boundaries, SentenceBoundary{
			Index:      m[0],
			Confidence: paragraphConfidence,
			Type:       BoundaryParagraph,
		})
	}

	for _, m := range sectionPattern.FindAllStringSubmatchIndex(text, -1) {
		idx := m[0]
		if m[2] >= 0 {
			// Break after the preceding punctuation when there is one.
			idx = m[2]
		} else {
			idx = m[4]
		}
		boundaries = append(boundaries, SentenceBoundary{
			Index:       idx,
			Confidence:  sectionConfidence,
			Type:        BoundarySection,
			SectionName: text[m[4]:m[5]],
		})
	}

	for _, m := range questionPattern.FindAllStringIndex(text, -1) {
		boundaries = append(boundaries, SentenceBoundary{
			Index:      m[0],
			Confidence: questionConfidence,
			Type:       BoundaryQuestion,
		})
	}

	return boundaries
}
