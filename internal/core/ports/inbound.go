package ports

import (
	"context"

	"github.com/docbridge/docbridge/internal/core/domain"
)

// WatchEvents receives watcher callbacks. Callbacks run on the watcher's
// goroutine and never after Watch has returned.
type WatchEvents struct {
	// OnStatus fires whenever the backend reports a different status than the
	// one currently held.
	OnStatus func(report domain.StatusReport)
	// OnDetail fires once, after a terminal status, with the refetched full
	// representation.
	OnDetail func(detail *domain.DocumentDetail)
}

// StatusWatcher is the inbound contract for following a document through the
// processing pipeline until it reaches a terminal state.
type StatusWatcher interface {
	Watch(ctx context.Context, id string, initial domain.ProcessingStatus, events WatchEvents) (domain.ProcessingStatus, error)
}

// InventoryExporter writes the document inventory to a local file.
type InventoryExporter interface {
	Export(ctx context.Context, path string) (int, error)
}
