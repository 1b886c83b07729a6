package web

import (
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/core/ports"
	"github.com/docbridge/docbridge/internal/infrastructure/validate"
)

// maxUploadBytes bounds in-memory multipart parsing on the gateway.
const maxUploadBytes = 64 << 20

type indexPage struct {
	Documents  []domain.DocumentSummary
	Categories []domain.Category
	Query      string
	Selected   map[string]bool
	Icons      []domain.Icon
	Flash      string
}

type detailPage struct {
	Document *domain.DocumentDetail
	Watching bool
}

func (rt *Router) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	selected := r.URL.Query()["categories"]

	// Categories load concurrently with the document fetch; both feed the
	// same page.
	categoryCh := make(chan domain.Result[[]domain.Category], 1)
	go func() {
		categoryCh <- domain.Collect(rt.categories.List(r.Context()))
	}()

	var docs []domain.DocumentSummary
	var err error
	if query == "" && len(selected) == 0 {
		docs, err = rt.documents.List(r.Context())
	} else {
		docs, err = rt.documents.Search(r.Context(), query, selected)
	}
	if err != nil {
		<-categoryCh
		rt.renderError(w, r, err)
		return
	}

	categories, err := (<-categoryCh).Unpack()
	if err != nil {
		rt.renderError(w, r, err)
		return
	}

	selectedSet := make(map[string]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}

	rt.renderPage(w, http.StatusOK, "index.html", indexPage{
		Documents:  docs,
		Categories: categories,
		Query:      query,
		Selected:   selectedSet,
		Icons:      domain.Icons(),
		Flash:      r.URL.Query().Get("flash"),
	})
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		rt.renderError(w, r, &domain.ValidationError{Messages: []string{"upload form could not be parsed"}})
		return
	}
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		rt.renderError(w, r, &domain.ValidationError{Messages: []string{"a file is required"}})
		return
	}
	defer file.Close()

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = strings.TrimSuffix(fileHeader.Filename, pathExt(fileHeader.Filename))
	}
	contentType := fileHeader.Header.Get("Content-Type")

	input := validate.UploadInput{
		Title:       title,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
	}
	if err := validate.Upload(input); err != nil {
		rt.renderError(w, r, err)
		return
	}
	if contentType == "application/pdf" {
		if err := validate.SniffPDF(file, fileHeader.Size); err != nil {
			rt.renderError(w, r, err)
			return
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			rt.renderError(w, r, err)
			return
		}
	}

	doc, err := rt.documents.Create(r.Context(), ports.CreateDocumentInput{
		Title:       title,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Body:        file,
		CategoryIDs: r.Form["categories"],
	})
	if err != nil {
		rt.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/documents/"+doc.ID, http.StatusSeeOther)
}

// documentByID dispatches /documents/{id}[/action].
func (rt *Router) documentByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/documents/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	switch action {
	case "":
		rt.documentDetail(w, r, id)
	case "status":
		rt.documentStatus(w, r, id)
	case "download":
		rt.documentDownload(w, r, id)
	case "delete":
		rt.documentDelete(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (rt *Router) documentDetail(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	doc, err := rt.documents.Get(r.Context(), id)
	if err != nil {
		rt.renderError(w, r, err)
		return
	}

	rt.renderPage(w, http.StatusOK, "detail.html", detailPage{
		Document: doc,
		Watching: !doc.ProcessingStatus.Terminal(),
	})
}

// documentStatus is the JSON endpoint the detail page polls every few
// seconds while the pipeline runs.
func (rt *Router) documentStatus(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	report, err := rt.documents.Status(r.Context(), id)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":               report.ID,
		"processingStatus": report.ProcessingStatus,
		"processingError":  report.ProcessingError,
		"terminal":         report.ProcessingStatus.Terminal(),
	})
}

func (rt *Router) documentDownload(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	download, err := rt.downloader.Download(r.Context(), id)
	if err != nil {
		rt.renderError(w, r, err)
		return
	}
	defer download.Body.Close()

	contentType := download.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if download.Filename != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
			"filename": download.Filename,
		}))
	}
	if _, err := io.Copy(w, download.Body); err != nil {
		rt.logger.Warn("download_stream_interrupted", "document_id", id, "error", err)
	}
}

func (rt *Router) documentDelete(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	if err := rt.documents.Delete(r.Context(), id); err != nil {
		rt.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/?flash=Document+deleted", http.StatusSeeOther)
}

func pathExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}
