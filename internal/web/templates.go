// Package web renders the HTML surface: embedded templates, flash
// messages, and the HTTP middleware around them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"gigbook/internal/logger"
	"gigbook/internal/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"datetime": utils.FormatDateTime,
}

var templates = template.Must(
	template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"),
)

// Page is the envelope every template receives.
type Page struct {
	Flash      string
	SearchTerm string
	Data       any
}

type Renderer struct {
	Logger *logger.Logger
}

func NewRenderer(log *logger.Logger) *Renderer {
	return &Renderer{Logger: log}
}

// Render writes the named page with a 200 status.
func (rd *Renderer) Render(w http.ResponseWriter, name string, page Page) {
	rd.render(w, http.StatusOK, name, page)
}

// RenderNotFound writes the 404 page.
func (rd *Renderer) RenderNotFound(w http.ResponseWriter) {
	rd.render(w, http.StatusNotFound, "404.html", Page{})
}

// RenderServerError writes the 500 page. The cause is logged, never
// shown.
func (rd *Renderer) RenderServerError(w http.ResponseWriter) {
	rd.render(w, http.StatusInternalServerError, "500.html", Page{})
}

func (rd *Renderer) render(w http.ResponseWriter, status int, name string, page Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, page); err != nil {
		rd.Logger.Error("RENDER", fmt.Sprintf("failed to render %s: %v", name, err))
	}
}
