package heuristic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/studycraft/go-eduformat/internal"
)

// SemanticMatcher recognizes one kind of semantic block from a line's surface
// phrasing and renders it whole. Matchers are evaluated in a fixed order with
// first-match-wins, so earlier entries must be strictly more specific.
type SemanticMatcher struct {
	Kind    string
	pattern *regexp.Regexp
	render  func(groups []string, includeIcons bool) string
}

// Match reports whether the line belongs to this matcher's kind, returning
// the rendered fragment when it does.
func (m SemanticMatcher) Match(line string, includeIcons bool) (string, bool) {
	groups := m.pattern.FindStringSubmatch(line)
	if groups == nil {
		return "", false
	}
	return m.render(groups, includeIcons), true
}

func callout(kind, icon, label, body string, includeIcons bool) string {
	if !includeIcons {
		icon = ""
	}
	return internal.RenderCallout(internal.Callout{
		Kind:  kind,
		Icon:  icon,
		Label: label,
		Body:  body,
	})
}

func calloutMatcher(kind, icon, label, prefixes string) SemanticMatcher {
	return SemanticMatcher{
		Kind:    kind,
		pattern: regexp.MustCompile(`(?i)^(?:` + prefixes + `)\s*[:\-–]\s*(.+)$`),
		render: func(groups []string, includeIcons bool) string {
			return callout(kind, icon, label, internal.FormatInline(groups[1]), includeIcons)
		},
	}
}

var slidePattern = regexp.MustCompile(`(?i)^-{2,}\s*slide\s*(\d+)\s*:?\s*(.*?)\s*-{2,}$`)

var definitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([^:]{1,60}):\s+(.+)$`),
	regexp.MustCompile(`^([^-–]{1,60})\s+[-–]\s+(.+)$`),
	regexp.MustCompile(`(?i)^(.{1,60}?)\s+(?:is defined as|means|refers to)\s+(.+)$`),
}

// SemanticMatchers is the prioritized matcher cascade of the heuristic path.
// Order is load-bearing: a line matching an earlier kind is consumed whole
// and never reaches later matchers or the generic paragraph handling.
var SemanticMatchers = []SemanticMatcher{
	{
		Kind:    "slide",
		pattern: slidePattern,
		render: func(groups []string, _ bool) string {
			title := internal.FormatInline(groups[2])
			if title == "" {
				title = "Slide " + groups[1]
			}
			return fmt.Sprintf(`<h2 class="slide-title" data-slide="%s">%s</h2>`, groups[1], title)
		},
	},
	calloutMatcher("tip", "💡", "Tip", `tip|hint|pro tip`),
	calloutMatcher("note", "📝", "Note", `note|remember|keep in mind`),
	calloutMatcher("warning", "⚠️", "Warning", `warning|caution|important|be careful|watch out`),
	calloutMatcher("key-concept", "🔑", "Key Concept", `key concepts?|key ideas?|main ideas?|big ideas?`),
	calloutMatcher("rule", "📏", "Rule", `rule|law|principle|property`),
	{
		Kind:    "formula",
		pattern: regexp.MustCompile(`(?i)^(?:formula|equation)\s*[:\-–]\s*(.+)$`),
		render: func(groups []string, includeIcons bool) string {
			body := `<code class="formula">` + internal.Math.Format(internal.EscapeHTML(groups[1])) + `</code>`
			return callout("formula", "🧮", "Formula", body, includeIcons)
		},
	},
	calloutMatcher("example", "✏️", "Example", `example|for example|e\.g\.|sample problem`),
}

// ClassifySemantic runs the line through the matcher cascade and returns the
// rendered fragment of the first matching kind. The definition matcher runs
// last because its colon/dash split is the least specific rule.
func ClassifySemantic(line string, includeIcons bool) (string, bool) {
	for _, m := range SemanticMatchers {
		if fragment, ok := m.Match(line, includeIcons); ok {
			return fragment, true
		}
	}
	return matchDefinition(line, includeIcons)
}

// matchDefinition splits a line into term and definition on a colon, a dash,
// or a defining verb phrase. A candidate term longer than 40 characters or 4
// words is rejected, which keeps ordinary sentences out; so are known section
// headers and metadata fields, which belong to later classifier stages.
func matchDefinition(line string, includeIcons bool) (string, bool) {
	for _, p := range definitionPatterns {
		groups := p.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		term := strings.TrimSpace(groups[1])
		def := strings.TrimSpace(groups[2])
		if !acceptableTerm(term) || def == "" {
			continue
		}
		body := `<dfn class="definition-term">` + internal.FormatInline(term) + `</dfn> — ` +
			internal.FormatInline(def)
		return callout("definition", "📖", "Definition", body, includeIcons), true
	}
	return "", false
}

var metadataFieldNames = map[string]bool{
	"grade": true, "grade level": true, "subject": true,
	"topic": true, "duration": true, "time": true,
}

// Pronoun subjects produce false definitions ("This means we carry the one").
var pronounTerms = map[string]bool{
	"this": true, "that": true, "it": true, "which": true,
	"he": true, "she": true, "they": true, "we": true, "you": true,
}

// Numbered labels ("Step 1", "Example 2") are heading material, never terms:
// normalization isolates those lines so the header classifier can pick them
// up, and a definition match here would consume them first.
var numberedLabelPattern = regexp.MustCompile(
	`(?i)^(?:step|example|part|section|chapter|lesson|unit|question|problem|exercise)\s+\d+$`)

func acceptableTerm(term string) bool {
	if term == "" || len(term) > 40 || len(strings.Fields(term)) > 4 {
		return false
	}
	lower := strings.ToLower(term)
	if metadataFieldNames[lower] || pronounTerms[lower] {
		return false
	}
	if numberedLabelPattern.MatchString(term) {
		return false
	}
	for _, kw := range SectionKeywords {
		if strings.EqualFold(kw, term) {
			return false
		}
	}
	return true
}
