// docbridge-mcp exposes the document service to MCP clients over stdio:
// search, retrieval and pipeline status as tools an assistant can call.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/docbridge/docbridge/internal/bootstrap"
	"github.com/docbridge/docbridge/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	// Keep stdio clean for the protocol; log only warnings and errors.
	if cfg.LogLevel == "" || cfg.LogLevel == "info" {
		cfg.LogLevel = "warn"
	}

	app, err := bootstrap.New(cfg, "docbridge-mcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap error: %v\n", err)
		os.Exit(1)
	}

	mcpServer := server.NewMCPServer(
		"docbridge",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createListDocumentsTool(), handleListDocuments(app.Client))
	mcpServer.AddTool(createSearchDocumentsTool(), handleSearchDocuments(app.Client))
	mcpServer.AddTool(createGetDocumentTool(), handleGetDocument(app.Client))
	mcpServer.AddTool(createGetProcessingStatusTool(), handleGetProcessingStatus(app.Client))
	mcpServer.AddTool(createListCategoriesTool(), handleListCategories(app.Categories))

	if err := server.ServeStdio(mcpServer); err != nil {
		fmt.Fprintf(os.Stderr, "mcp server failed: %v\n", err)
		os.Exit(1)
	}
}
