package cli

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/core/ports"
	"github.com/docbridge/docbridge/internal/core/usecase"
	"github.com/docbridge/docbridge/internal/infrastructure/validate"
	"github.com/docbridge/docbridge/internal/render"
)

func (a *App) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	docs, err := a.documents.List(ctx)
	if err != nil {
		return err
	}
	a.printDocuments(docs)
	return nil
}

func (a *App) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(a.out)
	query := fs.String("q", "", "text to search for")
	categories := fs.String("categories", "", "comma-separated category ids")
	if err := fs.Parse(args); err != nil {
		return err
	}

	docs, err := a.documents.Search(ctx, *query, splitList(*categories))
	if err != nil {
		return err
	}
	a.printDocuments(docs)
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := requireID("get", args)
	if err != nil {
		return err
	}

	doc, err := a.documents.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printDetail(doc)
	return nil
}

func (a *App) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "document title (defaults to the filename)")
	categories := fs.String("categories", "", "comma-separated category ids")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("upload needs exactly one file path")
	}
	path := fs.Arg(0)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	filename := filepath.Base(path)
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	if *title == "" {
		*title = strings.TrimSuffix(filename, filepath.Ext(filename))
	}

	if err := validate.Upload(validate.UploadInput{
		Title:       *title,
		Filename:    filename,
		ContentType: contentType,
	}); err != nil {
		return err
	}
	if contentType == "application/pdf" {
		info, err := file.Stat()
		if err != nil {
			return err
		}
		if err := validate.SniffPDF(file, info.Size()); err != nil {
			return err
		}
		if _, err := file.Seek(0, 0); err != nil {
			return err
		}
	}

	doc, err := a.documents.Create(ctx, ports.CreateDocumentInput{
		Title:       *title,
		Filename:    filename,
		ContentType: contentType,
		Body:        file,
		CategoryIDs: splitList(*categories),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %s (%s)\n", doc.Title, doc.ID)
	fmt.Fprintf(a.out, "Run `docbridge watch %s` to follow processing.\n", doc.ID)
	return nil
}

func (a *App) edit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "new title")
	categories := fs.String("categories", "", "comma-separated category ids (replaces the current set)")
	clearCategories := fs.Bool("clear-categories", false, "remove all categories")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("edit needs exactly one document id")
	}

	var update domain.DocumentUpdate
	if *title != "" {
		update.Title = title
	}
	switch {
	case *clearCategories:
		update.CategoryIDs = []string{}
	case *categories != "":
		update.CategoryIDs = splitList(*categories)
	}
	if update.Empty() {
		return fmt.Errorf("nothing to change: pass -title, -categories or -clear-categories")
	}

	doc, err := a.documents.Update(ctx, fs.Arg(0), update)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s (%s)\n", doc.Title, doc.ID)
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	id, err := requireID("rm", args)
	if err != nil {
		return err
	}
	if err := a.documents.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}

func (a *App) download(ctx context.Context, args []string) error {
	id, err := requireID("download", args)
	if err != nil {
		return err
	}

	download, err := a.downloader.Download(ctx, id)
	if err != nil {
		return err
	}
	defer download.Body.Close()

	filename := download.Filename
	if filename == "" {
		filename = id
	}
	path, err := a.sink.Save(filename, download.Body)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s\n", path)
	return nil
}

func (a *App) watch(ctx context.Context, args []string) error {
	id, err := requireID("watch", args)
	if err != nil {
		return err
	}

	// The detail view is last-write-wins: the terminal refetch must not be
	// clobbered by a slower earlier load.
	var detailView usecase.Loader[*domain.DocumentDetail]

	doc, err := a.documents.Get(ctx, id)
	if err != nil {
		return err
	}
	_ = detailView.Reload(ctx, func(context.Context) (*domain.DocumentDetail, error) {
		return doc, nil
	}, func(*domain.DocumentDetail) {})

	fmt.Fprintf(a.out, "Watching %s (%s)\n", doc.Title, doc.ID)
	fmt.Fprintf(a.out, "  %s\n", doc.ProcessingStatus)
	if doc.ProcessingStatus.Terminal() {
		a.printOutcome(doc)
		return nil
	}

	var final *domain.DocumentDetail
	last, err := a.watcher.Watch(ctx, id, doc.ProcessingStatus, ports.WatchEvents{
		OnStatus: func(report domain.StatusReport) {
			fmt.Fprintf(a.out, "  %s\n", report.ProcessingStatus)
		},
		OnDetail: func(detail *domain.DocumentDetail) {
			_ = detailView.Reload(ctx, func(context.Context) (*domain.DocumentDetail, error) {
				return detail, nil
			}, func(d *domain.DocumentDetail) { final = d })
		},
	})
	if err != nil {
		return err
	}

	if final != nil {
		a.printOutcome(final)
	} else {
		fmt.Fprintf(a.out, "Finished in state %s\n", last)
	}
	return nil
}

func (a *App) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	path := fs.Arg(0)
	if path == "" {
		path = "documents.xlsx"
	}

	count, err := a.exporter.Export(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported %d documents to %s\n", count, path)
	return nil
}

func (a *App) printDocuments(docs []domain.DocumentSummary) {
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "No documents.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSIZE\tSTATUS\tCREATED\tCATEGORIES")
	for _, doc := range docs {
		names := make([]string, 0, len(doc.Categories))
		for _, c := range doc.Categories {
			names = append(names, c.Name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			doc.ID,
			doc.Title,
			render.FormatSize(doc.FileSize),
			doc.ProcessingStatus,
			render.FormatDate(doc.CreatedAt),
			strings.Join(names, ","),
		)
	}
	_ = w.Flush()
}

func (a *App) printDetail(doc *domain.DocumentDetail) {
	fmt.Fprintf(a.out, "%s (%s)\n", doc.Title, doc.ID)
	fmt.Fprintf(a.out, "  File:    %s (%s, %s)\n", doc.OriginalFilename, doc.ContentType, render.FormatSize(doc.FileSize))
	fmt.Fprintf(a.out, "  Status:  %s\n", doc.ProcessingStatus)
	fmt.Fprintf(a.out, "  Created: %s\n", render.FormatDate(doc.CreatedAt))
	if len(doc.Categories) > 0 {
		names := make([]string, 0, len(doc.Categories))
		for _, c := range doc.Categories {
			names = append(names, c.Name)
		}
		fmt.Fprintf(a.out, "  Categories: %s\n", strings.Join(names, ", "))
	}
	a.printOutcome(doc)
}

func (a *App) printOutcome(doc *domain.DocumentDetail) {
	if doc.ProcessingStatus.Failed() && doc.ProcessingError != "" {
		fmt.Fprintf(a.out, "  Error: %s\n", doc.ProcessingError)
	}
	if doc.SummaryText != "" {
		fmt.Fprintf(a.out, "  Summary: %s\n", doc.SummaryText)
	}
}

func requireID(command string, args []string) (string, error) {
	if len(args) != 1 || args[0] == "" || strings.HasPrefix(args[0], "-") {
		return "", fmt.Errorf("%s needs exactly one id", command)
	}
	return args[0], nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
