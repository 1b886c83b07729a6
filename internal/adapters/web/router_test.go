package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/core/ports"
)

type documentsFake struct {
	docs    []domain.DocumentSummary
	detail  *domain.DocumentDetail
	status  domain.StatusReport
	err     error
	deleted []string

	lastQuery      string
	lastCategories []string
}

func (f *documentsFake) List(context.Context) ([]domain.DocumentSummary, error) {
	return f.docs, f.err
}

func (f *documentsFake) Search(_ context.Context, query string, categoryIDs []string) ([]domain.DocumentSummary, error) {
	f.lastQuery = query
	f.lastCategories = categoryIDs
	return f.docs, f.err
}

func (f *documentsFake) Get(_ context.Context, id string) (*domain.DocumentDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *documentsFake) Create(_ context.Context, input ports.CreateDocumentInput) (*domain.DocumentSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.DocumentSummary{ID: "new-doc", Title: input.Title}, nil
}

func (f *documentsFake) Update(_ context.Context, id string, _ domain.DocumentUpdate) (*domain.DocumentSummary, error) {
	return &domain.DocumentSummary{ID: id}, f.err
}

func (f *documentsFake) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *documentsFake) Status(context.Context, string) (domain.StatusReport, error) {
	return f.status, f.err
}

type categoriesFake struct {
	categories []domain.Category
	err        error
}

func (f *categoriesFake) List(context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

func (f *categoriesFake) Get(_ context.Context, id string) (*domain.Category, error) {
	return &domain.Category{ID: id}, f.err
}

func (f *categoriesFake) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	return &c, f.err
}

func (f *categoriesFake) Update(_ context.Context, c domain.Category) (*domain.Category, error) {
	return &c, f.err
}

func (f *categoriesFake) Delete(context.Context, string) error { return f.err }

type downloaderFake struct {
	download *ports.Download
	err      error
}

func (f *downloaderFake) Download(context.Context, string) (*ports.Download, error) {
	return f.download, f.err
}

func newTestRouter(docs *documentsFake, cats *categoriesFake, dl *downloaderFake) http.Handler {
	if cats == nil {
		cats = &categoriesFake{}
	}
	if dl == nil {
		dl = &downloaderFake{}
	}
	return NewRouter(docs, cats, dl, nil).Handler()
}

func TestIndexRendersDocuments(t *testing.T) {
	docs := &documentsFake{docs: []domain.DocumentSummary{{
		ID:               "doc-1",
		Title:            "Tax Return",
		OriginalFilename: "return.pdf",
		FileSize:         1536,
		ProcessingStatus: domain.StatusCompleted,
		CreatedAt:        time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
	}}}
	handler := newTestRouter(docs, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Tax Return") {
		t.Fatal("document title missing from page")
	}
	if !strings.Contains(body, "1.5 KB") {
		t.Fatal("formatted size missing from page")
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("request id header missing")
	}
}

func TestIndexSearchPassesFilters(t *testing.T) {
	docs := &documentsFake{}
	handler := newTestRouter(docs, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?q=tax&categories=c1&categories=c2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if docs.lastQuery != "tax" {
		t.Fatalf("query not forwarded: %q", docs.lastQuery)
	}
	if len(docs.lastCategories) != 2 {
		t.Fatalf("category filters not forwarded: %v", docs.lastCategories)
	}
}

func TestDetailPageShowsStatus(t *testing.T) {
	docs := &documentsFake{detail: &domain.DocumentDetail{
		DocumentSummary: domain.DocumentSummary{
			ID:               "doc-1",
			Title:            "Scan",
			ProcessingStatus: domain.StatusOCRProcessing,
		},
	}}
	handler := newTestRouter(docs, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/doc-1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "OCR_PROCESSING") {
		t.Fatal("status missing from page")
	}
	// Non-terminal pages embed the polling script.
	if !strings.Contains(body, "/documents/doc-1/status") {
		t.Fatal("poll endpoint missing from non-terminal page")
	}
}

func TestDetailPageTerminalDoesNotPoll(t *testing.T) {
	docs := &documentsFake{detail: &domain.DocumentDetail{
		DocumentSummary: domain.DocumentSummary{
			ID:               "doc-1",
			Title:            "Scan",
			ProcessingStatus: domain.StatusCompleted,
		},
		SummaryText: "A short summary.",
	}}
	handler := newTestRouter(docs, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/doc-1", nil))

	body := rec.Body.String()
	if strings.Contains(body, "setInterval") {
		t.Fatal("terminal page must not embed the polling script")
	}
	if !strings.Contains(body, "A short summary.") {
		t.Fatal("summary text missing")
	}
}

func TestStatusEndpointReturnsJSON(t *testing.T) {
	docs := &documentsFake{status: domain.StatusReport{
		ID:               "doc-1",
		ProcessingStatus: domain.StatusOCRFailed,
		ProcessingError:  "unreadable scan",
	}}
	handler := newTestRouter(docs, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/doc-1/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var payload struct {
		ProcessingStatus string `json:"processingStatus"`
		Terminal         bool   `json:"terminal"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload.ProcessingStatus != "OCR_FAILED" || !payload.Terminal {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDetailNotFoundRendersErrorPage(t *testing.T) {
	docs := &documentsFake{err: &domain.TransportError{Operation: "get document", StatusCode: 404, Status: "404 Not Found"}}
	handler := newTestRouter(docs, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "does not exist") {
		t.Fatal("error page message missing")
	}
}

func TestDeleteRedirects(t *testing.T) {
	docs := &documentsFake{}
	handler := newTestRouter(docs, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/documents/doc-1/delete", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if len(docs.deleted) != 1 || docs.deleted[0] != "doc-1" {
		t.Fatalf("delete not forwarded: %v", docs.deleted)
	}
}

func TestDownloadStreamsBody(t *testing.T) {
	dl := &downloaderFake{download: &ports.Download{
		Filename:    "return.pdf",
		ContentType: "application/pdf",
		Body:        io.NopCloser(strings.NewReader("%PDF-...")),
	}}
	handler := newTestRouter(&documentsFake{}, nil, dl)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/doc-1/download", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "return.pdf") {
		t.Fatalf("unexpected disposition: %q", got)
	}
	if rec.Body.String() != "%PDF-..." {
		t.Fatal("body not streamed")
	}
}

func TestCategoryCreateValidatesInput(t *testing.T) {
	handler := newTestRouter(&documentsFake{}, &categoriesFake{}, nil)

	form := strings.NewReader("name=&color=red&icon=tag")
	req := httptest.NewRequest(http.MethodPost, "/categories", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	handler := newTestRouter(&documentsFake{}, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	handler := newTestRouter(&documentsFake{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/documents", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
