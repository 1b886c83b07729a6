// Package cli implements the docbridge command-line surface. Each
// subcommand talks to the backend through the same ports the web gateway
// uses.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/docbridge/docbridge/internal/core/ports"
)

type App struct {
	documents  ports.DocumentService
	downloader ports.DocumentDownloader
	categories ports.CategoryService
	watcher    ports.StatusWatcher
	exporter   ports.InventoryExporter
	sink       ports.FileSink
	out        io.Writer
	logger     *slog.Logger
}

func New(
	documents ports.DocumentService,
	downloader ports.DocumentDownloader,
	categories ports.CategoryService,
	watcher ports.StatusWatcher,
	exporter ports.InventoryExporter,
	sink ports.FileSink,
	out io.Writer,
	logger *slog.Logger,
) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		documents:  documents,
		downloader: downloader,
		categories: categories,
		watcher:    watcher,
		exporter:   exporter,
		sink:       sink,
		out:        out,
		logger:     logger,
	}
}

const usage = `Usage: docbridge <command> [flags]

Commands:
  list                    List all documents
  search                  Search documents by text and category
  get <id>                Show one document
  upload <file>           Upload a document
  edit <id>               Change a document's title or categories
  rm <id>                 Delete a document
  download <id>           Download a document's file
  watch <id>              Follow a document through the processing pipeline
  export <path.xlsx>      Write the document inventory to an XLSX file
  category <subcommand>   Manage categories (list, add, edit, rm)
`

// Run dispatches a subcommand. args excludes the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("a command is required")
	}

	command, rest := args[0], args[1:]
	switch command {
	case "list":
		return a.list(ctx, rest)
	case "search":
		return a.search(ctx, rest)
	case "get":
		return a.get(ctx, rest)
	case "upload":
		return a.upload(ctx, rest)
	case "edit":
		return a.edit(ctx, rest)
	case "rm":
		return a.remove(ctx, rest)
	case "download":
		return a.download(ctx, rest)
	case "watch":
		return a.watch(ctx, rest)
	case "export":
		return a.export(ctx, rest)
	case "category":
		return a.category(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
