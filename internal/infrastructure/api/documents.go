package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/core/ports"
)

// List fetches all document summaries.
func (c *Client) List(ctx context.Context) ([]domain.DocumentSummary, error) {
	var docs []domain.DocumentSummary
	if err := c.getJSON(ctx, "/documents", nil, &docs, "list documents"); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []domain.DocumentSummary{}
	}
	return docs, nil
}

// Search runs a filtered query. An empty query is legal and equivalent to the
// full collection; no matches yields an empty list, not an error.
func (c *Client) Search(ctx context.Context, query string, categoryIDs []string) ([]domain.DocumentSummary, error) {
	params := url.Values{}
	params.Set("q", query)
	for _, id := range categoryIDs {
		params.Add("categories", id)
	}

	var docs []domain.DocumentSummary
	if err := c.getJSON(ctx, "/documents/search", params, &docs, "search documents"); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []domain.DocumentSummary{}
	}
	return docs, nil
}

// Get fetches the full detail representation. A 404 surfaces as
// domain.ErrNotFound, distinct from other transport failures.
func (c *Client) Get(ctx context.Context, id string) (*domain.DocumentDetail, error) {
	var doc domain.DocumentDetail
	if err := c.getJSON(ctx, "/documents/"+url.PathEscape(id), nil, &doc, "get document"); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create submits a new document as multipart form data: the file, its title
// and the optional repeated category identifiers.
func (c *Client) Create(ctx context.Context, input ports.CreateDocumentInput) (*domain.DocumentSummary, error) {
	const operation = "create document"

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, input.Filename))
	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	if _, err := io.Copy(part, input.Body); err != nil {
		return nil, fmt.Errorf("read upload body: %w", err)
	}

	if err := writer.WriteField("title", input.Title); err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	for _, categoryID := range input.CategoryIDs {
		if err := writer.WriteField("categoryIds", categoryID); err != nil {
			return nil, fmt.Errorf("build %s request: %w", operation, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents", &body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.do(req, operation)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, operation); err != nil {
		return nil, err
	}

	var created domain.DocumentSummary
	if err := decodeBody(resp.Body, &created, operation); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update is fetch-merge-put: the backend's update endpoint expects a complete
// representation, so the current detail is fetched, only the supplied fields
// are merged, and the whole summary is PUT back. Partial bodies are never
// sent.
func (c *Client) Update(ctx context.Context, id string, update domain.DocumentUpdate) (*domain.DocumentSummary, error) {
	current, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := current.DocumentSummary
	if update.Title != nil {
		merged.Title = *update.Title
	}
	if update.CategoryIDs != nil {
		categories := make([]domain.Category, 0, len(update.CategoryIDs))
		for _, categoryID := range update.CategoryIDs {
			categories = append(categories, domain.Category{ID: categoryID})
		}
		merged.Categories = categories
	}

	var updated domain.DocumentSummary
	if err := c.sendJSON(ctx, http.MethodPut, "/documents/"+url.PathEscape(id), merged, &updated, "update document"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a document. A 404 counts as success: the client cannot tell
// a first attempt from a retry after a timed-out delete that went through.
func (c *Client) Delete(ctx context.Context, id string) error {
	err := c.deleteResource(ctx, "/documents/"+url.PathEscape(id), "delete document")
	if te, ok := domain.IsTransport(err); ok && te.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}

// Status fetches the lightweight polling projection.
func (c *Client) Status(ctx context.Context, id string) (domain.StatusReport, error) {
	var report domain.StatusReport
	if err := c.getJSON(ctx, "/documents/"+url.PathEscape(id)+"/status", nil, &report, "get processing status"); err != nil {
		return domain.StatusReport{}, err
	}
	return report, nil
}
