package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/sigdiff/compare"
	"github.com/wippyai/sigdiff/errors"
)

// HTMLMarker wraps shared alternatives in a neutral span and added ones
// in a positive span, for use with status.css. Type names are escaped.
type HTMLMarker struct{}

func (HTMLMarker) Escape(text string) string { return template.HTMLEscapeString(text) }

func (HTMLMarker) Shared(text string) string { return `<span class="neutral">` + text + `</span>` }
func (HTMLMarker) Added(text string) string  { return `<span class="positive">` + text + `</span>` }

var toneClass = map[tone]string{
	toneNeutral:  "",
	tonePositive: "positive",
	toneNegative: "negative",
}

type htmlCell struct {
	Text  string
	Class string
}

type htmlModule struct {
	Name   string
	Status htmlCell
}

type htmlFunc struct {
	Name    string
	Status  htmlCell
	RefType template.HTML
	TgtType template.HTML
	ArgRows []htmlArg
	Linked  bool
}

type htmlArg struct {
	Kind    string
	Keyword template.HTML
	RefType template.HTML
	TgtType template.HTML
}

type htmlPage struct {
	Ref      string
	Tgt      string
	Modules  []htmlModule
	Funcs    []htmlFunc
	Sections []htmlFunc
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html><head>
<link rel="stylesheet" href="status.css" />
<title>{{.Ref}} implementation status</title>
<link rel="icon" type="image/svg+xml" href="{{.Ref}}_logo.svg">
</head><body><div class="wrapper">
<div class="item">
<h1>Modules</h1>
<table><thead><tr><td>module</td><td>status</td></tr></thead><tbody>
{{- range .Modules}}<tr><td>{{.Name}}</td><td>{{template "cell" .Status}}</td></tr>{{end -}}
</tbody></table>
<h1>Functions and methods</h1>
<table><thead><tr><td>function</td><td>status</td><td>{{.Ref}} return</td><td>{{.Tgt}} return</td></tr></thead><tbody>
{{- range .Funcs}}<tr><td>{{if .Linked}}<a href="#{{.Name}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</td><td>{{template "cell" .Status}}</td><td>{{.RefType}}</td><td>{{.TgtType}}</td></tr>{{end -}}
</tbody></table>
</div>
{{- range .Sections}}
<hr>
<div class="item">
<h1 id="{{.Name}}">{{.Name}}</h1>
{{if .ArgRows}}<table><thead><tr><td>kind</td><td>keyword</td><td>{{$.Ref}} type</td><td>{{$.Tgt}} type</td></tr></thead><tbody>
{{- range .ArgRows}}<tr><td>{{.Kind}}</td><td>{{.Keyword}}</td><td>{{.RefType}}</td><td>{{.TgtType}}</td></tr>{{end -}}
</tbody></table>{{else}}no arguments{{end}}
</div>
{{- end}}
</div></body>
{{define "cell"}}{{if .Class}}<span class="{{.Class}}">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}`))

// HTML writes p as a standalone status page.
//
// Keyword names are emitted as given; the signature parser has already
// escaped them. Type diffs are marked up with HTMLMarker.
func HTML(w io.Writer, p Page) error {
	var m HTMLMarker
	hp := htmlPage{Ref: p.ReferenceLabel, Tgt: p.TargetLabel}

	for _, mod := range p.Modules {
		hp.Modules = append(hp.Modules, htmlModule{
			Name:   mod.Name,
			Status: htmlCell{Text: string(mod.Status), Class: toneClass[moduleTone(mod.Status)]},
		})
	}

	for _, e := range p.Entries {
		label, t := statusLabel(e.Status, p.ReferenceLabel)
		f := htmlFunc{
			Name:    e.Name,
			Linked:  e.InReference,
			Status:  htmlCell{Text: label, Class: toneClass[t]},
			RefType: template.HTML(e.Return.AtoB.Render(m)),
			TgtType: template.HTML(e.Return.BtoA.Render(m)),
		}
		if e.InReference {
			f.ArgRows = htmlArgs(e.Args, m)
			hp.Sections = append(hp.Sections, f)
		}
		hp.Funcs = append(hp.Funcs, f)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, hp); err != nil {
		return errors.Wrap(errors.PhaseRender, errors.KindIO, err, "execute html template")
	}
	n, err := w.Write(buf.Bytes())
	if err != nil {
		return errors.Wrap(errors.PhaseRender, errors.KindIO, err, fmt.Sprintf("write html (%d bytes written)", n))
	}
	Logger().Debug("rendered html report",
		zap.Int("bytes", n),
		zap.Int("entries", len(p.Entries)),
		zap.Int("sections", len(hp.Sections)))
	return nil
}

func htmlArgs(args []compare.Arg, m HTMLMarker) []htmlArg {
	rows := make([]htmlArg, len(args))
	for i, a := range args {
		rows[i] = htmlArg{
			Kind:    string(a.Category),
			Keyword: template.HTML(a.Keyword),
			RefType: template.HTML(a.Diff.AtoB.Render(m)),
			TgtType: template.HTML(a.Diff.BtoA.Render(m)),
		}
	}
	return rows
}
