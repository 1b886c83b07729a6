package usecase

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded reports that a newer reload was issued while this one was in
// flight; its result was discarded and nothing was committed.
var ErrSuperseded = errors.New("reload superseded")

// Loader serializes reloads of one piece of view state so the last-issued
// reload always wins. An older, slower-resolving fetch must never overwrite
// the result of a newer one.
type Loader[T any] struct {
	mu  sync.Mutex
	gen uint64
}

// Reload runs fetch and, if no newer reload has started since, hands the
// value to commit. Fetch errors are returned as-is; a superseded result
// returns ErrSuperseded without committing.
func (l *Loader[T]) Reload(ctx context.Context, fetch func(context.Context) (T, error), commit func(T)) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	value, err := fetch(ctx)

	l.mu.Lock()
	latest := gen == l.gen
	l.mu.Unlock()

	if !latest {
		return ErrSuperseded
	}
	if err != nil {
		return err
	}
	commit(value)
	return nil
}
