package api

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
)

// The client is hand-written against api/openapi.yaml. This test keeps the
// two from drifting: every path and method the wrappers call must exist in
// the contract, and the contract itself must be valid.
func TestClientMatchesOpenAPIContract(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "..", "api", "openapi.yaml"))
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("contract is not a valid OpenAPI document: %v", err)
	}

	operations := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/documents"},
		{http.MethodPost, "/documents"},
		{http.MethodGet, "/documents/search"},
		{http.MethodGet, "/documents/{id}"},
		{http.MethodPut, "/documents/{id}"},
		{http.MethodDelete, "/documents/{id}"},
		{http.MethodGet, "/documents/{id}/status"},
		{http.MethodGet, "/documents/{id}/download"},
		{http.MethodGet, "/categories"},
		{http.MethodPost, "/categories"},
		{http.MethodGet, "/categories/{id}"},
		{http.MethodPut, "/categories/{id}"},
		{http.MethodDelete, "/categories/{id}"},
	}

	for _, op := range operations {
		item := doc.Paths.Find(op.path)
		if item == nil {
			t.Errorf("contract is missing path %s", op.path)
			continue
		}
		if item.GetOperation(op.method) == nil {
			t.Errorf("contract is missing %s %s", op.method, op.path)
		}
	}

	status := doc.Components.Schemas["ProcessingStatus"]
	if status == nil || status.Value == nil {
		t.Fatal("contract is missing the ProcessingStatus schema")
	}
	if got := len(status.Value.Enum); got != 7 {
		t.Fatalf("ProcessingStatus enum has %d values, want 7", got)
	}
}
