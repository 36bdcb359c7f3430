package heuristic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/studycraft/go-eduformat/internal"
)

// AssembleOptions configures the line-to-markup state machine. Zero values
// select the defaults.
type AssembleOptions struct {
	// IncludeIcons controls the decorative glyphs on semantic callouts.
	IncludeIcons bool
	// MaxSentences bounds paragraph chunk length; zero means the default.
	MaxSentences int
}

var (
	dividerPattern      = regexp.MustCompile(`^[-=*_]{3,}$`)
	questionLinePattern = regexp.MustCompile(`(?i)^(?:what|how|why|when|where|which|who|can you|do you)\b.*\?$`)
	metadataLinePattern = regexp.MustCompile(`(?i)^(grade level|grade|subject|topic|duration|time)\s*:\s*(.+)$`)
)

// assembler accumulates paragraph and list state while walking lines.
type assembler struct {
	out       strings.Builder
	paragraph []string
	inList    bool
	listKind  ListKind
	listItems []string
	opts      AssembleOptions
}

// Assemble walks normalized lines, applies the classifier cascade in priority
// order and emits structured markup, flushing open lists and paragraphs at
// boundaries. The check order is a deliberate precedence chain: semantic
// blocks before generic headers, headers before list items, list items before
// metadata lines.
func Assemble(text string, opts AssembleOptions) string {
	a := &assembler{opts: opts}
	lines := strings.Split(text, "\n")

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		next := ""
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}
		a.feed(line, next)
	}

	a.flushList()
	a.flushParagraph()
	return a.out.String()
}

func (a *assembler) feed(line, next string) {
	if line == "" {
		a.flushList()
		a.flushParagraph()
		return
	}

	if dividerPattern.MatchString(line) {
		a.flushList()
		a.flushParagraph()
		a.emit(`<hr class="section-break"/>`)
		return
	}

	if fragment, ok := ClassifySemantic(line, a.opts.IncludeIcons); ok {
		a.flushList()
		a.flushParagraph()
		a.emit(fragment)
		return
	}

	if h, ok := MatchHeader(line, next); ok {
		a.flushList()
		a.flushParagraph()
		a.emit(renderHeading(h.Level, h.Text))
		return
	}

	if item, ok := MatchListItem(line); ok {
		a.flushParagraph()
		if a.inList && a.listKind != item.Kind {
			a.flushList()
		}
		a.inList = true
		a.listKind = item.Kind
		a.listItems = append(a.listItems, internal.FormatInline(item.Text))
		return
	}

	if questionLinePattern.MatchString(line) {
		a.flushParagraph()
		a.emit(`<p class="question"><strong>` + internal.FormatInline(line) + `</strong></p>`)
		return
	}

	if m := metadataLinePattern.FindStringSubmatch(line); m != nil {
		a.flushParagraph()
		a.emit(fmt.Sprintf(`<p class="doc-meta"><span class="meta-field">%s:</span> %s</p>`,
			internal.FormatInline(titleCaser.String(strings.ToLower(m[1]))),
			internal.FormatInline(m[2])))
		return
	}

	a.paragraph = append(a.paragraph, line)
}

func (a *assembler) flushParagraph() {
	if len(a.paragraph) == 0 {
		return
	}
	joined := strings.Join(a.paragraph, " ")
	a.paragraph = nil

	for _, chunk := range ChunkParagraph(joined, a.opts.MaxSentences) {
		a.emit("<p>" + internal.FormatInline(chunk) + "</p>")
	}
}

func (a *assembler) flushList() {
	if !a.inList {
		return
	}
	openTag, closeTag := listTags(a.listKind)
	a.emit(openTag)
	for _, item := range a.listItems {
		a.emit("<li>" + item + "</li>")
	}
	a.emit(closeTag)

	a.inList = false
	a.listItems = nil
}

func (a *assembler) emit(fragment string) {
	if a.out.Len() > 0 {
		a.out.WriteByte('\n')
	}
	a.out.WriteString(fragment)
}

func listTags(kind ListKind) (string, string) {
	switch kind {
	case ListNumbered:
		return `<ol class="content-list">`, `</ol>`
	case ListLettered:
		return `<ol class="content-list" type="a">`, `</ol>`
	default:
		return `<ul class="content-list">`, `</ul>`
	}
}

// renderHeading emits a heading with a deterministic anchor derived from the
// normalized text, so repeated renders of the same document keep stable
// deep-link targets.
func renderHeading(level int, text string) string {
	return fmt.Sprintf(`<h%d id="%s">%s</h%d>`, level, HeadingAnchor(text), internal.FormatInline(text), level)
}

// HeadingAnchor returns the stable anchor ID for a heading's text.
func HeadingAnchor(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	return fmt.Sprintf("h-%x", xxhash.Sum64String(normalized))
}
