package heuristic_test

import (
	"strings"
	"testing"

	"github.com/studycraft/go-eduformat/heuristic"
)

func findBoundary(boundaries []heuristic.SentenceBoundary, bt heuristic.BoundaryType) (heuristic.SentenceBoundary, bool) {
	for _, b := range boundaries {
		if b.Type == bt {
			return b, true
		}
	}
	return heuristic.SentenceBoundary{}, false
}

func TestDetectBoundaries(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		verificationFunc func(t *testing.T, boundaries []heuristic.SentenceBoundary)
	}{
		{
			name: "Sentence boundary at period before capital",
			text: "The cat sat down. The dog ran away.",
			verificationFunc: func(t *testing.T, boundaries []heuristic.SentenceBoundary) {
				b, ok := findBoundary(boundaries, heuristic.BoundarySentence)
				if !ok {
					t.Fatal("Expected a sentence boundary")
				}
				if b.Index != strings.Index("The cat sat down. The dog ran away.", ".") {
					t.Errorf("Expected index at the first period, got %d", b.Index)
				}
				if b.Confidence != 0.85 {
					t.Errorf("Expected confidence 0.85, got %f", b.Confidence)
				}
			},
		},
		{
			name: "Transition phrase raises a paragraph boundary",
			text: "It was cold outside. However, we kept walking.",
			verificationFunc: func(t *testing.T, boundaries []heuristic.SentenceBoundary) {
				b, ok := findBoundary(boundaries, heuristic.BoundaryParagraph)
				if !ok {
					t.Fatal("Expected a paragraph boundary")
				}
				if b.Confidence != 0.90 {
					t.Errorf("Expected confidence 0.90, got %f", b.Confidence)
				}
			},
		},
		{
			name: "Section keyword raises a section boundary with its name",
			text: "That completes the opening drill. Learning Objectives Students will compare fractions.",
			verificationFunc: func(t *testing.T, boundaries []heuristic.SentenceBoundary) {
				b, ok := findBoundary(boundaries, heuristic.BoundarySection)
				if !ok {
					t.Fatal("Expected a section boundary")
				}
				if b.Confidence != 0.95 {
					t.Errorf("Expected confidence 0.95, got %f", b.Confidence)
				}
				if !strings.EqualFold(b.SectionName, "Learning Objectives") {
					t.Errorf("Expected section name Learning Objectives, got %q", b.SectionName)
				}
			},
		},
		{
			name: "Question starter raises a question boundary",
			text: "Add the two numbers. What is the sum of both?",
			verificationFunc: func(t *testing.T, boundaries []heuristic.SentenceBoundary) {
				b, ok := findBoundary(boundaries, heuristic.BoundaryQuestion)
				if !ok {
					t.Fatal("Expected a question boundary")
				}
				if b.Confidence != 0.88 {
					t.Errorf("Expected confidence 0.88, got %f", b.Confidence)
				}
			},
		},
		{
			name: "No boundaries in a single flat sentence",
			text: "one short run of lowercase words with no punctuation",
			verificationFunc: func(t *testing.T, boundaries []heuristic.SentenceBoundary) {
				if len(boundaries) != 0 {
					t.Errorf("Expected no boundaries, got %d", len(boundaries))
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.verificationFunc(t, heuristic.DetectBoundaries(tc.text))
		})
	}
}
