package domain

import "time"

// ProcessingStatus is the backend pipeline state of a document. The client
// never infers or mutates it; it only reflects what the backend reports.
type ProcessingStatus string

const (
	StatusPending         ProcessingStatus = "PENDING"
	StatusOCRProcessing   ProcessingStatus = "OCR_PROCESSING"
	StatusOCRCompleted    ProcessingStatus = "OCR_COMPLETED"
	StatusGenAIProcessing ProcessingStatus = "GENAI_PROCESSING"
	StatusCompleted       ProcessingStatus = "COMPLETED"
	StatusOCRFailed       ProcessingStatus = "OCR_FAILED"
	StatusGenAIFailed     ProcessingStatus = "GENAI_FAILED"
)

// Terminal reports whether no further automatic transition occurs.
func (s ProcessingStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusOCRFailed, StatusGenAIFailed:
		return true
	}
	return false
}

// Failed reports whether the pipeline ended in a failure branch.
func (s ProcessingStatus) Failed() bool {
	return s == StatusOCRFailed || s == StatusGenAIFailed
}

// Known reports whether the value is one of the enumerated pipeline states.
func (s ProcessingStatus) Known() bool {
	switch s {
	case StatusPending, StatusOCRProcessing, StatusOCRCompleted,
		StatusGenAIProcessing, StatusCompleted, StatusOCRFailed, StatusGenAIFailed:
		return true
	}
	return false
}

// stageOrder places each state on the forward axis of the pipeline. Failure
// branches sit at the stage they abort from.
var stageOrder = map[ProcessingStatus]int{
	StatusPending:         0,
	StatusOCRProcessing:   1,
	StatusOCRFailed:       2,
	StatusOCRCompleted:    2,
	StatusGenAIProcessing: 3,
	StatusGenAIFailed:     4,
	StatusCompleted:       4,
}

// Advances reports whether moving from s to next is a forward pipeline
// transition. Unknown states never advance.
func (s ProcessingStatus) Advances(next ProcessingStatus) bool {
	from, ok := stageOrder[s]
	if !ok {
		return false
	}
	to, ok := stageOrder[next]
	if !ok {
		return false
	}
	return to > from
}

// DocumentSummary is the list-level projection of a backend document.
type DocumentSummary struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	OriginalFilename string           `json:"originalFilename"`
	FileSize         int64            `json:"fileSize"`
	ContentType      string           `json:"contentType"`
	ProcessingStatus ProcessingStatus `json:"processingStatus"`
	CreatedAt        time.Time        `json:"createdAt"`
	Categories       []Category       `json:"categories"`
}

// CategoryIDs returns the ids of the document's categories in order.
func (d DocumentSummary) CategoryIDs() []string {
	ids := make([]string, 0, len(d.Categories))
	for _, c := range d.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// DocumentDetail is the full representation. OCRText and SummaryText are only
// trustworthy once the corresponding pipeline stage has completed.
type DocumentDetail struct {
	DocumentSummary

	DownloadURL      string     `json:"downloadUrl,omitempty"`
	OCRText          string     `json:"ocrText,omitempty"`
	SummaryText      string     `json:"summaryText,omitempty"`
	ProcessingError  string     `json:"processingError,omitempty"`
	OCRProcessedAt   *time.Time `json:"ocrProcessedAt,omitempty"`
	GenAIProcessedAt *time.Time `json:"genaiProcessedAt,omitempty"`
}

// StatusReport is the lightweight polling projection of a document.
type StatusReport struct {
	ID               string           `json:"id"`
	ProcessingStatus ProcessingStatus `json:"processingStatus"`
	ProcessingError  string           `json:"processingError,omitempty"`
}

// DocumentUpdate carries the fields a client may change. Nil means "leave as
// is"; the merged full representation is what goes over the wire.
type DocumentUpdate struct {
	Title       *string
	CategoryIDs []string
}

// Empty reports whether the update would change nothing.
func (u DocumentUpdate) Empty() bool {
	return u.Title == nil && u.CategoryIDs == nil
}
