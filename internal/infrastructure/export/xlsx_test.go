package export

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/core/ports"
)

type documentServiceFake struct {
	ports.DocumentService

	docs []domain.DocumentSummary
	err  error
}

func (f *documentServiceFake) List(context.Context) ([]domain.DocumentSummary, error) {
	return f.docs, f.err
}

func TestExportWritesInventory(t *testing.T) {
	docs := []domain.DocumentSummary{
		{
			ID:               "doc-1",
			Title:            "Tax Return",
			OriginalFilename: "return.pdf",
			FileSize:         1536,
			ContentType:      "application/pdf",
			ProcessingStatus: domain.StatusCompleted,
			CreatedAt:        time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC),
			Categories: []domain.Category{
				{ID: "c1", Name: "Taxes"},
				{ID: "c2", Name: "2026"},
			},
		},
		{
			ID:               "doc-2",
			Title:            "Scan",
			OriginalFilename: "scan.png",
			FileSize:         500,
			ContentType:      "image/png",
			ProcessingStatus: domain.StatusOCRProcessing,
		},
	}

	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	exporter := NewXLSXExporter(&documentServiceFake{docs: docs}, nil)

	count, err := exporter.Export(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Documents")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "ID", rows[0][0])
	require.Equal(t, "doc-1", rows[1][0])
	require.Equal(t, "1.5 KB", rows[1][3])
	require.Equal(t, "COMPLETED", rows[1][5])
	require.Equal(t, "Mar 7, 2026", rows[1][6])
	require.Equal(t, "Taxes, 2026", rows[1][7])
	require.Equal(t, "500 B", rows[2][3])
}

func TestExportPropagatesListError(t *testing.T) {
	boom := errors.New("boom")
	exporter := NewXLSXExporter(&documentServiceFake{err: boom}, nil)

	_, err := exporter.Export(context.Background(), filepath.Join(t.TempDir(), "x.xlsx"))
	require.ErrorIs(t, err, boom)
}
