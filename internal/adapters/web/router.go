// Package web is the server-rendered gateway in front of the backend API:
// document list, detail with live status, uploads, downloads and category
// management.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/docbridge/docbridge/internal/core/ports"
	"github.com/docbridge/docbridge/internal/observability/metrics"
)

type Router struct {
	documents  ports.DocumentService
	categories ports.CategoryService
	downloader ports.DocumentDownloader
	logger     *slog.Logger
	metrics    *metrics.GatewayMetrics
}

func NewRouter(
	documents ports.DocumentService,
	categories ports.CategoryService,
	downloader ports.DocumentDownloader,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		documents:  documents,
		categories: categories,
		downloader: downloader,
		logger:     logger,
	}
}

// WithMetrics attaches gateway metrics. Returns the router for chaining.
func (rt *Router) WithMetrics(m *metrics.GatewayMetrics) *Router {
	rt.metrics = m
	return rt
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/", rt.index)
	mux.HandleFunc("/documents", rt.uploadDocument)
	mux.HandleFunc("/documents/", rt.documentByID)
	mux.HandleFunc("/categories", rt.categoriesIndex)
	mux.HandleFunc("/categories/", rt.categoryByID)

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware("web", handler)
	}
	return requestIDMiddleware(accessLogMiddleware(handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
