package heuristic_test

import (
	"strings"
	"testing"

	"github.com/studycraft/go-eduformat/heuristic"
)

func TestClassifySemantic(t *testing.T) {
	tests := []struct {
		name             string
		line             string
		expectMatch      bool
		verificationFunc func(t *testing.T, fragment string)
	}{
		{
			name:        "Tip callout",
			line:        "Tip: Remember to carry the remainder.",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `callout-tip`) {
					t.Errorf("Expected tip callout, got %q", fragment)
				}
				if !strings.Contains(fragment, "Remember to carry the remainder.") {
					t.Errorf("Expected body text in %q", fragment)
				}
			},
		},
		{
			name:        "Note callout from alternate phrasing",
			line:        "Keep in mind: fractions must share a denominator.",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `callout-note`) {
					t.Errorf("Expected note callout, got %q", fragment)
				}
			},
		},
		{
			name:        "Warning callout",
			line:        "Warning: Never divide by zero.",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `callout-warning`) {
					t.Errorf("Expected warning callout, got %q", fragment)
				}
			},
		},
		{
			name:        "Key concept callout",
			line:        "Key Concept: A fraction names equal parts of a whole.",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `callout-key-concept`) {
					t.Errorf("Expected key-concept callout, got %q", fragment)
				}
			},
		},
		{
			name:        "Rule callout",
			line:        "Rule: Multiply both the numerator and the denominator.",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `callout-rule`) {
					t.Errorf("Expected rule callout, got %q", fragment)
				}
			},
		},
		{
			name:        "Formula callout renders math inside code",
			line:        "Formula: x + 5 = 12",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `<code class="formula">`) {
					t.Errorf("Expected formula code markup, got %q", fragment)
				}
				if !strings.Contains(fragment, "math-algebraic") {
					t.Errorf("Expected algebraic math markup, got %q", fragment)
				}
			},
		},
		{
			name:        "Example callout",
			line:        "Example: 1/2 + 1/4 = 3/4",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `callout-example`) {
					t.Errorf("Expected example callout, got %q", fragment)
				}
			},
		},
		{
			name:        "Slide marker becomes a titled heading",
			line:        "--- Slide 3: Adding Fractions ---",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `data-slide="3"`) {
					t.Errorf("Expected slide number attribute, got %q", fragment)
				}
				if !strings.Contains(fragment, "Adding Fractions") {
					t.Errorf("Expected slide title, got %q", fragment)
				}
			},
		},
		{
			name:        "Colon definition",
			line:        "Numerator: the number above the fraction bar.",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `callout-definition`) {
					t.Errorf("Expected definition callout, got %q", fragment)
				}
				if !strings.Contains(fragment, `<dfn class="definition-term">Numerator</dfn>`) {
					t.Errorf("Expected dfn term, got %q", fragment)
				}
			},
		},
		{
			name:        "Verb-phrase definition",
			line:        "Denominator refers to the number below the bar.",
			expectMatch: true,
			verificationFunc: func(t *testing.T, fragment string) {
				if !strings.Contains(fragment, `callout-definition`) {
					t.Errorf("Expected definition callout, got %q", fragment)
				}
			},
		},
		{
			name:        "Pronoun subject is not a definition",
			line:        "This means we carry the one.",
			expectMatch: false,
		},
		{
			name:        "Section header keyword is not a definition",
			line:        "Learning Objectives: Students will add fractions.",
			expectMatch: false,
		},
		{
			name:        "Metadata field is not a definition",
			line:        "Grade: 4",
			expectMatch: false,
		},
		{
			name:        "Numbered step label is not a definition",
			line:        "Step 1: Mix the batter",
			expectMatch: false,
		},
		{
			name:        "Numbered example label is not a definition",
			line:        "Example 2: Add the fractions",
			expectMatch: false,
		},
		{
			name:        "Numbered question label is not a definition",
			line:        "Question 3: What is a common denominator?",
			expectMatch: false,
		},
		{
			name:        "Long clause before colon is not a definition",
			line:        "After the class reviewed every problem from yesterday afternoon: homework.",
			expectMatch: false,
		},
		{
			name:        "Plain sentence",
			line:        "The students worked quietly on their sheets.",
			expectMatch: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fragment, ok := heuristic.ClassifySemantic(tc.line, true)
			if ok != tc.expectMatch {
				t.Fatalf("Expected match=%v, got %v (fragment %q)", tc.expectMatch, ok, fragment)
			}
			if tc.verificationFunc != nil {
				tc.verificationFunc(t, fragment)
			}
		})
	}
}

func TestClassifySemanticIconToggle(t *testing.T) {
	withIcons, ok := heuristic.ClassifySemantic("Tip: Check your work.", true)
	if !ok {
		t.Fatal("Expected tip match")
	}
	withoutIcons, ok := heuristic.ClassifySemantic("Tip: Check your work.", false)
	if !ok {
		t.Fatal("Expected tip match")
	}

	if !strings.Contains(withIcons, "💡") {
		t.Errorf("Expected icon when enabled, got %q", withIcons)
	}
	if strings.Contains(withoutIcons, "💡") {
		t.Errorf("Expected no icon when disabled, got %q", withoutIcons)
	}
}
