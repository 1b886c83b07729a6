package api

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/core/ports"
)

// Download resolves a document's file content. The backend picks the mode per
// file size: a JSON body carries a presigned URL to fetch from storage
// directly, any other content type is the file itself. The caller owns
// closing Body.
func (c *Client) Download(ctx context.Context, id string) (*ports.Download, error) {
	const operation = "download document"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/documents/"+url.PathEscape(id)+"/download", nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", operation, err)
	}

	resp, err := c.do(req, operation)
	if err != nil {
		return nil, err
	}

	if err := checkStatus(resp, operation); err != nil {
		resp.Body.Close()
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if isJSON(contentType) {
		defer resp.Body.Close()

		var indirection struct {
			URL string `json:"url"`
		}
		if err := decodeBody(resp.Body, &indirection, operation); err != nil {
			return nil, err
		}
		if indirection.URL == "" {
			return nil, &domain.DecodeError{Operation: operation, Err: fmt.Errorf("presigned payload missing url")}
		}
		return c.fetchPresigned(ctx, indirection.URL)
	}

	return &ports.Download{
		Filename:    filenameFromHeader(resp.Header.Get("Content-Disposition")),
		ContentType: contentType,
		Body:        resp.Body,
	}, nil
}

// fetchPresigned follows the backend-issued URL. The URL points at object
// storage, not the API, so it goes through the bare HTTP client without the
// API base path.
func (c *Client) fetchPresigned(ctx context.Context, presignedURL string) (*ports.Download, error) {
	const operation = "download presigned"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, presignedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", operation, err)
	}

	resp, err := c.do(req, operation)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, operation); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return &ports.Download{
		Filename:    filenameFromHeader(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Presigned:   true,
		Body:        resp.Body,
	}, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func filenameFromHeader(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
