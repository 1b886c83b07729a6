package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/docbridge/docbridge/internal/core/domain"
)

// Categories exposes the category API, a parallel resource path with the same
// normalization rules as the document wrappers.
type Categories struct {
	client *Client
}

// NewCategories wraps a client for the /categories resource.
func NewCategories(client *Client) *Categories {
	return &Categories{client: client}
}

func (c *Categories) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.client.getJSON(ctx, "/categories", nil, &categories, "list categories"); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (c *Categories) Get(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	if err := c.client.getJSON(ctx, "/categories/"+url.PathEscape(id), nil, &category, "get category"); err != nil {
		return nil, err
	}
	return &category, nil
}

// Create persists a new category. The backend enforces name uniqueness; a
// duplicate comes back as a plain non-2xx without a distinguishing code.
func (c *Categories) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	category.ID = ""
	var created domain.Category
	if err := c.client.sendJSON(ctx, http.MethodPost, "/categories", category, &created, "create category"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Categories) Update(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var updated domain.Category
	if err := c.client.sendJSON(ctx, http.MethodPut, "/categories/"+url.PathEscape(category.ID), category, &updated, "update category"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Categories) Delete(ctx context.Context, id string) error {
	err := c.client.deleteResource(ctx, "/categories/"+url.PathEscape(id), "delete category")
	if te, ok := domain.IsTransport(err); ok && te.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}
