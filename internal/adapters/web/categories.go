package web

import (
	"net/http"
	"strings"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/infrastructure/validate"
)

type categoriesPage struct {
	Categories []domain.Category
	Icons      []domain.Icon
	Flash      string
}

// categoriesIndex serves GET /categories (management page) and
// POST /categories (create form).
func (rt *Router) categoriesIndex(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		categories, err := rt.categories.List(r.Context())
		if err != nil {
			rt.renderError(w, r, err)
			return
		}
		rt.renderPage(w, http.StatusOK, "categories.html", categoriesPage{
			Categories: categories,
			Icons:      domain.Icons(),
			Flash:      r.URL.Query().Get("flash"),
		})
	case http.MethodPost:
		input, err := categoryForm(r)
		if err != nil {
			rt.renderError(w, r, err)
			return
		}
		if _, err := rt.categories.Create(r.Context(), input); err != nil {
			rt.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, "/categories?flash=Category+created", http.StatusSeeOther)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

// categoryByID dispatches POST /categories/{id}[/delete].
func (rt *Router) categoryByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/categories/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category id is required"})
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	switch action {
	case "":
		input, err := categoryForm(r)
		if err != nil {
			rt.renderError(w, r, err)
			return
		}
		input.ID = id
		if _, err := rt.categories.Update(r.Context(), input); err != nil {
			rt.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, "/categories?flash=Category+updated", http.StatusSeeOther)
	case "delete":
		if err := rt.categories.Delete(r.Context(), id); err != nil {
			rt.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, "/categories?flash=Category+deleted", http.StatusSeeOther)
	default:
		http.NotFound(w, r)
	}
}

func categoryForm(r *http.Request) (domain.Category, error) {
	input := validate.CategoryInput{
		Name:  strings.TrimSpace(r.FormValue("name")),
		Color: strings.TrimSpace(r.FormValue("color")),
		Icon:  strings.TrimSpace(r.FormValue("icon")),
	}
	if err := validate.Category(input); err != nil {
		return domain.Category{}, err
	}
	return domain.Category{
		Name:  input.Name,
		Color: input.Color,
		Icon:  domain.ResolveIcon(input.Icon),
	}, nil
}
