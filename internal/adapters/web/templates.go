package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"formatSize": render.FormatSize,
	"formatDate": render.FormatDate,
	"contrast":   render.ContrastColor,
	"iconLabel": func(icon domain.Icon) string {
		return domain.ResolveIcon(string(icon)).Label()
	},
}).ParseFS(templateFS, "templates/*.html"))

func (rt *Router) renderPage(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		rt.logger.Error("template_render_failed", "template", name, "error", err)
	}
}

type errorPage struct {
	Status  int
	Message string
}

func (rt *Router) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToHTTPStatus(err)
	message := "Something went wrong talking to the document service."
	switch {
	case status == http.StatusNotFound:
		message = "That document does not exist. It may have been deleted."
	case status == http.StatusBadRequest:
		message = err.Error()
	case domain.IsConnectivity(err):
		message = "The document service is unreachable. Check your connection and reload."
	}

	rt.logger.Warn("page_error",
		"request_id", requestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
	rt.renderPage(w, status, "error.html", errorPage{Status: status, Message: message})
}
