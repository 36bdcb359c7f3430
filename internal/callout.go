package internal

import (
	"strings"
	"text/template"
)

// Callout describes a labeled box fragment (tip, note, warning, rule and
// friends). Body must already be rendered markup.
type Callout struct {
	Kind  string
	Icon  string
	Label string
	Body  string
}

// Callout markup is produced through a template rather than string
// concatenation so the heuristic classifier and the structured renderer emit
// the exact same shape.
var calloutTemplate = template.Must(template.New("callout").Parse(
	`<div class="callout callout-{{.Kind}}">` +
		`{{if .Icon}}<span class="callout-icon">{{.Icon}}</span>{{end}}` +
		`<span class="callout-label">{{.Label}}</span>` +
		`<div class="callout-body">{{.Body}}</div>` +
		`</div>`))

// RenderCallout renders a callout fragment. Template execution over a plain
// struct cannot fail here, so the error is swallowed into an empty string to
// keep every rendering path total.
func RenderCallout(c Callout) string {
	buf := strings.Builder{}
	if err := calloutTemplate.Execute(&buf, c); err != nil {
		return ""
	}
	return buf.String()
}
