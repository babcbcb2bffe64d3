// Package view renders the HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/i18n"
	"github.com/sendou-ink/sendou-pages/internal/meta"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Breadcrumb is one step of the page header trail.
type Breadcrumb struct {
	Label   string
	Href    string
	ImgPath string
}

// NavItem is one link of a page's sub navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// Page is the data every template receives. Data holds the page specific
// loader data.
type Page struct {
	Lang        string
	Meta        []meta.Tag
	Breadcrumbs []Breadcrumb
	SubNav      []NavItem
	Viewer      *domain.Viewer
	T           *i18n.Translator
	Data        any
}

// NewPage creates a page for the translator's language.
func NewPage(t *i18n.Translator, viewer *domain.Viewer, tags []meta.Tag, data any) *Page {
	return &Page{
		Lang:   t.Lang(),
		Meta:   tags,
		Viewer: viewer,
		T:      t,
		Data:   data,
	}
}

// Templates parses every page template. Pages are named after their file,
// e.g. "user.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

var (
	markdown  = goldmark.New()
	ugcPolicy = bluemonday.UGCPolicy()
)

// RenderBio converts a markdown bio to sanitized HTML.
func RenderBio(bio string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(bio), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(bio))
	}
	return template.HTML(ugcPolicy.SanitizeBytes(buf.Bytes()))
}
