package view

import (
	"bytes"
	"html/template"
	"io"
)

const nodeTemplate = `{{define "node"}}
{{- if eq .Kind "section"}}<section class="form-section" id="{{.ID}}">{{range .Children}}{{template "node" .}}{{end}}</section>
{{- else if eq .Kind "heading"}}<h3>{{.Text}}</h3>
{{- else if eq .Kind "grid"}}<div class="form-grid">{{range .Children}}{{template "node" .}}{{end}}</div>
{{- else if eq .Kind "field"}}<div class="form-group"><label for="{{.ID}}">{{.Label}}</label><input type="{{.InputType}}" id="{{.ID}}" value="{{.Value}}" placeholder="{{.Placeholder}}"{{template "binding" .}}></div>
{{- else if eq .Kind "textarea"}}<div class="form-group"><label for="{{.ID}}">{{.Label}}</label><textarea id="{{.ID}}" rows="{{.Rows}}" placeholder="{{.Placeholder}}"{{template "binding" .}}>{{.Value}}</textarea></div>
{{- else if eq .Kind "button"}}<button type="button" class="btn"{{with .ID}} id="{{.}}"{{end}}{{template "binding" .}}>{{.Text}}</button>
{{- else if eq .Kind "list"}}<div class="entry-list" id="{{.ID}}">{{range .Children}}{{template "node" .}}{{end}}</div>
{{- else if eq .Kind "item"}}<div class="entry-item" id="{{.ID}}">{{range .Children}}{{template "node" .}}{{end}}</div>
{{- else if eq .Kind "chip"}}<span class="skill-tag" id="{{.ID}}">{{.Text}}{{range .Children}}{{template "node" .}}{{end}}</span>
{{- else if eq .Kind "tip"}}<div class="ai-suggestion"><p>{{.Text}}</p></div>
{{- else}}<p{{with .ID}} id="{{.}}"{{end}}>{{.Text}}</p>
{{- end}}{{end}}
{{define "binding"}}{{with .Action}} data-action="{{.}}"{{end}}{{with .Event}} data-event="{{.}}"{{end}}{{end}}
{{template "node" .}}`

var tmpl = template.Must(template.New("view").Parse(nodeTemplate))

// RenderHTML writes n as HTML. Event bindings are emitted as data attributes
// for a client script to forward; no inline handlers are generated.
func RenderHTML(w io.Writer, n *Node) error {
	return tmpl.Execute(w, n)
}

// HTML renders n to a string.
func HTML(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
