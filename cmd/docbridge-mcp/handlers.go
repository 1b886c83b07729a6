package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docbridge/docbridge/internal/core/ports"
)

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(fmt.Sprintf(format, args...)),
		},
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func handleListDocuments(documents ports.DocumentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := request.GetInt("limit", 20)

		docs, err := documents.List(ctx)
		if err != nil {
			return errorResult("List error: %v", err), nil
		}
		if limit > 0 && len(docs) > limit {
			docs = docs[:limit]
		}
		return textResult(formatDocumentList("Documents", docs)), nil
	}
}

func handleSearchDocuments(documents ports.DocumentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || query == "" {
			return errorResult("Error: query parameter is required"), nil
		}
		categoryIDs := request.GetStringSlice("category_ids", nil)

		docs, err := documents.Search(ctx, query, categoryIDs)
		if err != nil {
			return errorResult("Search error: %v", err), nil
		}
		return textResult(formatDocumentList(fmt.Sprintf("Results for %q", query), docs)), nil
	}
}

func handleGetDocument(documents ports.DocumentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("document_id")
		if err != nil || id == "" {
			return errorResult("Error: document_id parameter is required"), nil
		}

		doc, err := documents.Get(ctx, id)
		if err != nil {
			return errorResult("Document not found: %v", err), nil
		}
		return textResult(formatDocument(doc)), nil
	}
}

func handleGetProcessingStatus(documents ports.DocumentService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("document_id")
		if err != nil || id == "" {
			return errorResult("Error: document_id parameter is required"), nil
		}

		report, err := documents.Status(ctx, id)
		if err != nil {
			return errorResult("Status error: %v", err), nil
		}
		return textResult(formatStatus(report)), nil
	}
}

func handleListCategories(categories ports.CategoryService) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := categories.List(ctx)
		if err != nil {
			return errorResult("List error: %v", err), nil
		}
		return textResult(formatCategories(list)), nil
	}
}
