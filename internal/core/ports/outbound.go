package ports

import (
	"context"
	"io"

	"github.com/docbridge/docbridge/internal/core/domain"
)

// CreateDocumentInput is the multipart payload for a new document.
type CreateDocumentInput struct {
	Title       string
	Filename    string
	ContentType string
	Body        io.Reader
	CategoryIDs []string
}

// DocumentService is the backend document API. Implementations normalize
// every failure into the domain error taxonomy and never retry.
type DocumentService interface {
	List(ctx context.Context) ([]domain.DocumentSummary, error)
	Search(ctx context.Context, query string, categoryIDs []string) ([]domain.DocumentSummary, error)
	Get(ctx context.Context, id string) (*domain.DocumentDetail, error)
	Create(ctx context.Context, input CreateDocumentInput) (*domain.DocumentSummary, error)
	Update(ctx context.Context, id string, update domain.DocumentUpdate) (*domain.DocumentSummary, error)
	Delete(ctx context.Context, id string) error
	Status(ctx context.Context, id string) (domain.StatusReport, error)
}

// StatusSource is the lightweight polling projection, cheaper than Get.
type StatusSource interface {
	Status(ctx context.Context, id string) (domain.StatusReport, error)
}

// DetailFetcher reads the full document representation.
type DetailFetcher interface {
	Get(ctx context.Context, id string) (*domain.DocumentDetail, error)
}

// Download is a resolved file download. Body streams the file content; the
// caller owns closing it. Presigned is set when the backend answered with a
// URL indirection instead of the bytes.
type Download struct {
	Filename    string
	ContentType string
	Presigned   bool
	Body        io.ReadCloser
}

// DocumentDownloader resolves a document's file content, following the
// backend's dual-mode contract (bytes or presigned-URL JSON).
type DocumentDownloader interface {
	Download(ctx context.Context, id string) (*Download, error)
}

// CategoryService is the backend category API.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// FileSink persists downloaded content locally.
type FileSink interface {
	Save(filename string, body io.Reader) (string, error)
}
