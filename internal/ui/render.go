// Package ui renders the dashboard page and the fragments pushed to live
// clients.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"opencog_dashboard/internal/models"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Element ids of the parts of the page that change at runtime.
const (
	FragmentStatus    = "connection-status"
	FragmentOutput    = "command-output"
	FragmentAtomSpace = "atomspace-content"
)

const clockLayout = "15:04:05"

var funcs = template.FuncMap{
	"clock": func(t time.Time) string { return t.Local().Format(clockLayout) },
	"count": func(n int) string { return humanize.Comma(int64(n)) },
}

// Renderer turns a models.DashboardView into HTML.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("dashboard").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: t}, nil
}

// Page writes the whole dashboard document.
func (r *Renderer) Page(w io.Writer, v models.DashboardView) error {
	return r.tmpl.ExecuteTemplate(w, "page", v)
}

// Fragments renders the inner HTML of every dynamic element, keyed by
// element id.
func (r *Renderer) Fragments(v models.DashboardView) (map[string]string, error) {
	parts := []struct {
		id   string
		name string
		data any
	}{
		{FragmentStatus, "status", v},
		{FragmentOutput, "output", v},
		{FragmentAtomSpace, "atomspace", v.AtomPanel},
	}
	out := make(map[string]string, len(parts))
	var buf bytes.Buffer
	for _, p := range parts {
		buf.Reset()
		if err := r.tmpl.ExecuteTemplate(&buf, p.name, p.data); err != nil {
			return nil, fmt.Errorf("render %s: %w", p.id, err)
		}
		out[p.id] = buf.String()
	}
	return out, nil
}

// Static returns the stylesheet and script served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// MustRenderer is NewRenderer for the embedded templates, which are known
// to parse.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}
