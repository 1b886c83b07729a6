package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func createListDocumentsTool() mcp.Tool {
	return mcp.NewTool("list_documents",
		mcp.WithDescription("List all documents in the document management service"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results to return (default: 20)"),
		),
	)
}

func createSearchDocumentsTool() mcp.Tool {
	return mcp.NewTool("search_documents",
		mcp.WithDescription("Search documents by title, extracted text and summary"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to search for"),
		),
		mcp.WithArray("category_ids",
			mcp.WithStringItems(),
			mcp.Description("Restrict results to these category ids"),
		),
	)
}

func createGetDocumentTool() mcp.Tool {
	return mcp.NewTool("get_document",
		mcp.WithDescription("Retrieve one document with its extracted text and summary"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Document ID"),
		),
	)
}

func createGetProcessingStatusTool() mcp.Tool {
	return mcp.NewTool("get_processing_status",
		mcp.WithDescription("Check where a document is in the OCR and summarization pipeline"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Document ID"),
		),
	)
}

func createListCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List the categories documents can be filed under"),
	)
}
