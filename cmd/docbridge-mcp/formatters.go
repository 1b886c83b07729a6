package main

import (
	"fmt"
	"strings"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/render"
)

func formatDocumentList(heading string, docs []domain.DocumentSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", heading)
	if len(docs) == 0 {
		b.WriteString("No documents found.\n")
		return b.String()
	}

	for _, doc := range docs {
		fmt.Fprintf(&b, "- **%s** (`%s`)\n", doc.Title, doc.ID)
		fmt.Fprintf(&b, "  %s, %s, status %s",
			doc.OriginalFilename, render.FormatSize(doc.FileSize), doc.ProcessingStatus)
		if len(doc.Categories) > 0 {
			names := make([]string, 0, len(doc.Categories))
			for _, c := range doc.Categories {
				names = append(names, c.Name)
			}
			fmt.Fprintf(&b, ", categories: %s", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatDocument(doc *domain.DocumentDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "- ID: `%s`\n", doc.ID)
	fmt.Fprintf(&b, "- File: %s (%s, %s)\n", doc.OriginalFilename, doc.ContentType, render.FormatSize(doc.FileSize))
	fmt.Fprintf(&b, "- Status: %s\n", doc.ProcessingStatus)
	fmt.Fprintf(&b, "- Created: %s\n", render.FormatDate(doc.CreatedAt))
	if doc.ProcessingError != "" {
		fmt.Fprintf(&b, "- Processing error: %s\n", doc.ProcessingError)
	}
	if doc.SummaryText != "" {
		fmt.Fprintf(&b, "\n## Summary\n\n%s\n", doc.SummaryText)
	}
	if doc.OCRText != "" {
		fmt.Fprintf(&b, "\n## Extracted text\n\n%s\n", doc.OCRText)
	}
	return b.String()
}

func formatStatus(report domain.StatusReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Document `%s` is in state **%s**.\n", report.ID, report.ProcessingStatus)
	switch {
	case report.ProcessingStatus.Failed():
		if report.ProcessingError != "" {
			fmt.Fprintf(&b, "Failure reason: %s\n", report.ProcessingError)
		}
	case report.ProcessingStatus.Terminal():
		b.WriteString("Processing is complete.\n")
	default:
		b.WriteString("Processing is still running; check again shortly.\n")
	}
	return b.String()
}

func formatCategories(categories []domain.Category) string {
	if len(categories) == 0 {
		return "No categories defined.\n"
	}
	var b strings.Builder
	b.WriteString("# Categories\n\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "- **%s** (`%s`), color %s, icon %s\n", c.Name, c.ID, c.Color, c.Icon)
	}
	return b.String()
}
