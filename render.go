package eduformat

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/studycraft/go-eduformat/heuristic"
	"github.com/studycraft/go-eduformat/internal"
)

// Renderer renders validated content blocks with fixed per-kind templates.
// It holds only immutable templates, so the shared instance is safe for
// concurrent renders; per-request styling travels in Options, never in the
// renderer.
type Renderer struct {
	table *template.Template
}

var defaultRenderer = NewRenderer()

// NewRenderer compiles the block templates.
func NewRenderer() *Renderer {
	return &Renderer{
		table: template.Must(template.New("table").Parse(
			`<table class="content-table">` +
				`{{if .Headers}}<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>{{end}}` +
				`<tbody>{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}</tbody>` +
				`</table>`)),
	}
}

// RenderBlocks derives the document summary for a block sequence and renders
// the resulting content. The caller is expected to have validated the
// sequence; an unknown kind still renders as a plain paragraph so the output
// stays total.
func (r *Renderer) RenderBlocks(blocks []ContentBlock, opts Options) string {
	return r.RenderContent(StructuredContent{
		Blocks:  blocks,
		Summary: Summarize(blocks),
	}, opts)
}

// RenderContent renders structured content into a single markup string. The
// summary feeds the wrapper's data attributes.
func (r *Renderer) RenderContent(content StructuredContent, opts Options) string {
	scheme := opts.ColorScheme
	if scheme == "" {
		scheme = defaultScheme(opts.ageOrDefault())
	}

	var body strings.Builder
	for _, block := range content.Blocks {
		fragment := r.renderBlock(block, opts)
		if fragment == "" {
			continue
		}
		if body.Len() > 0 {
			body.WriteByte('\n')
		}
		body.WriteString(fragment)
	}

	return fmt.Sprintf(
		`<div class="doc doc-age-%s doc-scheme-%s" data-blocks="%d" data-read-minutes="%d">`+"\n%s\n</div>",
		opts.ageOrDefault(), scheme, len(content.Blocks), content.Summary.ReadMinutes, body.String())
}

// defaultScheme picks vibrant styling for younger readers unless the caller
// overrides it.
func defaultScheme(age AgeGroup) ColorScheme {
	if age == AgeElementary {
		return SchemeVibrant
	}
	return SchemeSubtle
}

func (r *Renderer) renderBlock(block ContentBlock, opts Options) string {
	icons := !opts.DisableIcons

	switch block.Type {
	case BlockMetadata:
		key, value := block.Key, block.Value
		if key == "" {
			key, value = block.Title, block.Content
		}
		return fmt.Sprintf(`<p class="doc-meta"><span class="meta-field">%s:</span> %s</p>`,
			internal.FormatInline(key), internal.FormatInline(value))

	case BlockHeader:
		level := block.Level
		if level < 2 || level > 4 {
			level = 2
		}
		text := block.Title
		if text == "" {
			text = block.Content
		}
		return fmt.Sprintf(`<h%d id="%s">%s</h%d>`,
			level, heuristic.HeadingAnchor(text), internal.FormatInline(text), level)

	case BlockParagraph:
		return r.renderParagraphs(block.Content, opts)

	case BlockExplanation:
		return `<div class="explanation">` + "\n" +
			r.renderParagraphs(block.Content, opts) + "\n</div>"

	case BlockExample:
		return r.callout("example", "✏️", "Example", r.titledBody(block), icons)

	case BlockKeyConceptBox:
		return r.callout("key-concept", "🔑", "Key Concept", r.titledBody(block), icons)

	case BlockRule:
		return r.callout("rule", "📏", "Rule", r.titledBody(block), icons)

	case BlockFormula:
		body := `<code class="formula">` +
			internal.Math.Format(internal.EscapeHTML(block.Content)) + `</code>`
		return r.callout("formula", "🧮", "Formula", body, icons)

	case BlockWordProblem:
		return r.callout("word-problem", "🧩", "Word Problem", r.titledBody(block), icons)

	case BlockBulletList:
		return renderList(`<ul class="content-list">`, "</ul>", block.Items)

	case BlockNumberedList:
		return renderList(`<ol class="content-list">`, "</ol>", block.Items)

	case BlockStepByStep:
		return renderList(`<ol class="steps">`, "</ol>", block.Items)

	case BlockTip:
		return r.callout("tip", "💡", "Tip", internal.FormatInline(block.Content), icons)

	case BlockNote:
		return r.callout("note", "📝", "Note", internal.FormatInline(block.Content), icons)

	case BlockWarning:
		return r.callout("warning", "⚠️", "Warning", internal.FormatInline(block.Content), icons)

	case BlockQuestion:
		text := block.Question
		if text == "" {
			text = block.Content
		}
		return `<p class="question"><strong>` + internal.FormatInline(text) + `</strong></p>`

	case BlockAnswer:
		text := block.Answer
		if text == "" {
			text = block.Content
		}
		return `<div class="answer"><span class="answer-label">Answer</span> ` +
			internal.FormatInline(text) + `</div>`

	case BlockDefinition:
		body := `<dfn class="definition-term">` + internal.FormatInline(block.Term) + `</dfn> — ` +
			internal.FormatInline(block.Definition)
		return r.callout("definition", "📖", "Definition", body, icons)

	case BlockVocabulary:
		return fmt.Sprintf(`<div class="vocab-entry"><span class="vocab-word">%s</span> %s</div>`,
			internal.FormatInline(block.Term), internal.FormatInline(block.Definition))

	case BlockTable:
		return r.renderTable(block)

	case BlockDivider:
		return `<hr class="section-break"/>`

	default:
		return r.renderParagraphs(block.Content, opts)
	}
}

// renderParagraphs chunks long content through the shared paragraph chunker
// before emitting one paragraph per chunk.
func (r *Renderer) renderParagraphs(content string, opts Options) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	var b strings.Builder
	for _, chunk := range heuristic.ChunkParagraph(content, opts.MaxSentencesPerParagraph) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("<p>" + internal.FormatInline(chunk) + "</p>")
	}
	return b.String()
}

func (r *Renderer) titledBody(block ContentBlock) string {
	body := internal.FormatInline(block.Content)
	if block.Title != "" {
		body = "<strong>" + internal.FormatInline(block.Title) + "</strong> " + body
	}
	return body
}

func (r *Renderer) callout(kind, icon, label, body string, includeIcons bool) string {
	if !includeIcons {
		icon = ""
	}
	return internal.RenderCallout(internal.Callout{Kind: kind, Icon: icon, Label: label, Body: body})
}

func renderList(openTag, closeTag string, items []string) string {
	var b strings.Builder
	b.WriteString(openTag)
	for _, item := range items {
		b.WriteString("\n<li>" + internal.FormatInline(item) + "</li>")
	}
	b.WriteString("\n" + closeTag)
	return b.String()
}

func (r *Renderer) renderTable(block ContentBlock) string {
	headers := make([]string, len(block.Headers))
	for i, h := range block.Headers {
		headers[i] = internal.FormatInline(h)
	}
	rows := make([][]string, len(block.Rows))
	for i, row := range block.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = internal.FormatInline(cell)
		}
		rows[i] = cells
	}

	buf := strings.Builder{}
	err := r.table.Execute(&buf, struct {
		Headers []string
		Rows    [][]string
	}{headers, rows})
	if err != nil {
		return ""
	}
	return buf.String()
}
