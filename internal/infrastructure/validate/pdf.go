package validate

import (
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/docbridge/docbridge/internal/core/domain"
)

// SniffPDF checks that content claiming to be a PDF actually parses as one.
// A corrupt upload fails here instead of in the OCR stage, where the failure
// would only surface minutes later as a failed pipeline.
func SniffPDF(content io.ReaderAt, size int64) error {
	reader, err := pdf.NewReader(content, size)
	if err != nil {
		return &domain.ValidationError{Messages: []string{"file is not a readable PDF"}}
	}
	if reader.NumPage() < 1 {
		return &domain.ValidationError{Messages: []string{"PDF has no pages"}}
	}
	return nil
}
