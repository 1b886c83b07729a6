package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/docbridge/docbridge/internal/core/domain"
	"github.com/docbridge/docbridge/internal/core/ports"
)

// DefaultPollInterval matches the backend's human-paced pipeline: bounded
// staleness of one interval is acceptable for status display.
const DefaultPollInterval = 3 * time.Second

// PollObserver counts poll ticks for the metrics surface.
type PollObserver interface {
	ObservePoll(ok bool)
}

// StatusWatchUseCase follows one document through the processing pipeline.
// It re-checks the lightweight status projection at a fixed interval until a
// terminal state appears, then refetches the full detail once and stops. A
// failed tick is logged and skipped, never fatal. Cancelling the context
// stops the loop before the next tick; no callback runs after Watch returns.
type StatusWatchUseCase struct {
	source   ports.StatusSource
	details  ports.DetailFetcher
	interval time.Duration
	logger   *slog.Logger
	observer PollObserver
}

func NewStatusWatchUseCase(
	source ports.StatusSource,
	details ports.DetailFetcher,
	interval time.Duration,
	logger *slog.Logger,
) *StatusWatchUseCase {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusWatchUseCase{
		source:   source,
		details:  details,
		interval: interval,
		logger:   logger,
	}
}

// WithObserver attaches a poll observer. Returns the use case for chaining.
func (uc *StatusWatchUseCase) WithObserver(observer PollObserver) *StatusWatchUseCase {
	uc.observer = observer
	return uc
}

// Watch blocks until the document reaches a terminal state or ctx is
// cancelled. The returned status is the last one the backend reported.
func (uc *StatusWatchUseCase) Watch(
	ctx context.Context,
	id string,
	initial domain.ProcessingStatus,
	events ports.WatchEvents,
) (domain.ProcessingStatus, error) {
	current := initial
	if current.Terminal() {
		return current, nil
	}

	for {
		timer := time.NewTimer(uc.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return current, ctx.Err()
		case <-timer.C:
		}

		report, err := uc.source.Status(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return current, ctxErr
			}
			// A single failed poll is not fatal: keep the last-known status
			// and try again at the next interval.
			uc.observePoll(false)
			uc.logger.Warn("status_poll_failed", "document_id", id, "error", err)
			continue
		}
		uc.observePoll(true)

		if report.ProcessingStatus != current {
			current = report.ProcessingStatus
			if events.OnStatus != nil {
				events.OnStatus(report)
			}
		}

		if !current.Terminal() {
			continue
		}

		// One full refetch so the caller gets summaryText/ocrText and the
		// stage timestamps, then stop scheduling.
		detail, err := uc.details.Get(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return current, ctxErr
			}
			uc.logger.Warn("terminal_detail_refetch_failed", "document_id", id, "error", err)
			return current, err
		}
		if events.OnDetail != nil {
			events.OnDetail(detail)
		}
		return current, nil
	}
}

func (uc *StatusWatchUseCase) observePoll(ok bool) {
	if uc.observer != nil {
		uc.observer.ObservePoll(ok)
	}
}
