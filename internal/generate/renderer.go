// Package generate renders docs pages from the manifest: question pages,
// best practice pages, and pillar index pages.
package generate

import (
	"bytes"
	"embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/wafdocs/wafctl/internal/manifest"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// QuestionData is the template context for a question page.
type QuestionData struct {
	Pillar   manifest.Pillar
	Question manifest.Question
	NavOrder int
}

// BestPracticeData is the template context for a best practice page.
type BestPracticeData struct {
	Pillar   manifest.Pillar
	Question manifest.Question
	BP       manifest.BestPractice
	NavOrder int
}

// PillarIndexData is the template context for a pillar index page.
type PillarIndexData struct {
	Pillar manifest.Pillar
}

// RenderQuestion renders the page for one question. navOrder is the
// question's 1-based position within its pillar.
func RenderQuestion(p manifest.Pillar, q manifest.Question, navOrder int) (string, error) {
	return renderTemplate("question.md.tmpl", QuestionData{Pillar: p, Question: q, NavOrder: navOrder})
}

// RenderBestPractice renders the page for one best practice. navOrder is
// the practice's 1-based position within its question.
func RenderBestPractice(p manifest.Pillar, q manifest.Question, bp manifest.BestPractice, navOrder int) (string, error) {
	return renderTemplate("bestpractice.md.tmpl", BestPracticeData{Pillar: p, Question: q, BP: bp, NavOrder: navOrder})
}

// RenderPillarIndex renders a pillar's index page with its question list.
func RenderPillarIndex(p manifest.Pillar) (string, error) {
	return renderTemplate("pillar_index.md.tmpl", PillarIndexData{Pillar: p})
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
