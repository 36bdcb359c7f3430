package eduformat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash"
	"golang.org/x/net/html"

	"github.com/studycraft/go-eduformat/internal"
)

// rewriteTextSegments streams markup through the HTML tokenizer and applies
// transform to text tokens only, leaving tags and attributes untouched. The
// transform receives raw (already escaped) text and must return valid markup.
func rewriteTextSegments(markup string, transform func(string) string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var out strings.Builder

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// Reading from a string, the only error is io.EOF.
			if out.Len() == 0 {
				return markup
			}
			return out.String()
		}
		raw := string(z.Raw())
		if tt == html.TextToken {
			out.WriteString(transform(raw))
			continue
		}
		out.WriteString(raw)
	}
}

// highlightVocabulary wraps every whole-word occurrence of each vocabulary
// term in a span carrying its definition. Matching is case-insensitive and
// runs only over text segments, so terms inside tag names or attributes are
// never touched. Each term gets its own tokenizer pass: a definition attribute
// inserted by an earlier term is a tag token by the time the next term runs,
// so one term never matches inside another term's attribute value.
func highlightVocabulary(markup string, terms []VocabularyTerm) string {
	for _, t := range terms {
		word := strings.TrimSpace(t.Term)
		if word == "" {
			continue
		}
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(internal.EscapeHTML(word)) + `\b`)
		if err != nil {
			continue
		}
		def := internal.EscapeAttr(t.Definition)

		markup = rewriteTextSegments(markup, func(text string) string {
			return pattern.ReplaceAllStringFunc(text, func(m string) string {
				return `<span class="vocab-term" data-definition="` + def + `">` + m + `</span>`
			})
		})
	}
	return markup
}

// markExercises tags the first occurrence of each exercise question with a
// reference span so downstream consumers can link formatted text back to the
// exercise it came from. An exercise without an ID gets a stable hash-derived
// one.
func markExercises(markup string, exercises []Exercise) string {
	for _, ex := range exercises {
		question := strings.TrimSpace(ex.Question)
		if question == "" {
			continue
		}
		id := ex.ID
		if id == "" {
			id = fmt.Sprintf("ex-%x", xxhash.Sum64String(question))
		}
		openTag := fmt.Sprintf(`<span class="exercise-ref" data-exercise-id="%s" data-exercise-type="%s">`,
			internal.EscapeAttr(id), internal.EscapeAttr(ex.Type))

		escaped := internal.EscapeHTML(question)
		marked := false
		markup = rewriteTextSegments(markup, func(text string) string {
			if marked {
				return text
			}
			idx := strings.Index(text, escaped)
			if idx < 0 {
				return text
			}
			marked = true
			return text[:idx] + openTag + escaped + `</span>` + text[idx+len(escaped):]
		})
		if marked {
			continue
		}

		// Inline math and emphasis formatting split the question across
		// spans, so no single text token holds it. The question's own inline
		// rendering is then a literal substring of the markup, and a needle
		// carrying tags cannot sit inside an attribute value.
		formatted := internal.FormatInline(question)
		if formatted != escaped {
			markup = strings.Replace(markup, formatted, openTag+formatted+`</span>`, 1)
		}
	}
	return markup
}

// structureChapters inserts a chapter-start marker span before the first
// occurrence of each chapter title. Markers are anchors, not headings: the
// heading structure of the document stays whatever the classifier produced.
func structureChapters(markup string, chapters []Chapter) string {
	for _, ch := range chapters {
		title := strings.TrimSpace(ch.Title)
		if title == "" {
			continue
		}
		escaped := internal.EscapeHTML(title)
		marker := fmt.Sprintf(`<span class="chapter-start" data-chapter="%d" id="chapter-%d"></span>`,
			ch.Number, ch.Number)

		inserted := false
		markup = rewriteTextSegments(markup, func(text string) string {
			if inserted {
				return text
			}
			idx := indexFold(text, escaped)
			if idx < 0 {
				return text
			}
			inserted = true
			return text[:idx] + marker + text[idx:]
		})
	}
	return markup
}

// indexFold is a case-insensitive strings.Index.
func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}
