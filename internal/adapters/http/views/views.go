// Package views renders the HTML pages. Templates are pongo2 (Django
// syntax) files embedded in the binary and parsed once at startup;
// autoescaping is on, so every value coming from the API is escaped.
package views

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.html
var templateFS embed.FS

// AppName is shown in the page header and title.
const AppName = "Alerta Cidadão"

// Page names a top-level template.
type Page string

const (
	PageDashboard Page = "dashboard.html"
	PageList      Page = "list.html"
	PageForm      Page = "form.html"
	PageError     Page = "error.html"
	PageTeam      Page = "team.html"
)

var pages = []Page{PageDashboard, PageList, PageForm, PageError, PageTeam}

// Renderer executes the page templates.
type Renderer struct {
	templates map[Page]*pongo2.Template
}

// New parses every page template. A template error fails here rather than
// on the first request.
func New() (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("views: opening templates: %w", err)
	}

	set := pongo2.NewSet("pages", pongo2.NewFSLoader(sub))
	set.Globals = pongo2.Context{"app_name": AppName}

	r := &Renderer{templates: make(map[Page]*pongo2.Template, len(pages))}
	for _, p := range pages {
		tpl, err := set.FromFile(string(p))
		if err != nil {
			return nil, fmt.Errorf("views: parsing %s: %w", p, err)
		}
		r.templates[p] = tpl
	}
	return r, nil
}

// Render writes page to w with data bound to the "page" variable. Nothing is
// written when execution fails.
func (r *Renderer) Render(w io.Writer, page Page, data any) error {
	tpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("views: unknown page %q", page)
	}
	if err := tpl.ExecuteWriter(pongo2.Context{"page": data}, w); err != nil {
		return fmt.Errorf("views: rendering %s: %w", page, err)
	}
	return nil
}
