// Package cache keeps periodically refreshed snapshots of remote
// collections. The remote side offers no change notifications, so each
// collection polls on a fixed interval and writes invalidate the whole
// group, trading speculative local edits for eventual consistency with the
// system of record.
package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the baseline freshness bound between polls.
const DefaultInterval = 15 * time.Second

// State is one snapshot of a collection. IsLoading is true only while no
// data has ever been loaded; during a refetch the previous data stays
// visible.
type State[T any] struct {
	Data      []T
	IsLoading bool
	Err       error
}

// Fetch loads and maps the current remote contents of a collection.
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Collection polls one (database, filter) key.
type Collection[T any] struct {
	fetch    Fetch[T]
	enabled  func() bool
	interval time.Duration
	kick     chan struct{}

	// fetchMu serializes refreshes so a forced post-write fetch and an
	// in-flight poll cannot apply their snapshots out of order.
	fetchMu sync.Mutex

	mu     sync.Mutex
	data   []T
	loaded bool
	err    error
}

// Option configures a Collection.
type Option[T any] func(*Collection[T])

// WithInterval overrides the polling interval.
func WithInterval[T any](d time.Duration) Option[T] {
	return func(c *Collection[T]) { c.interval = d }
}

// WithEnabled gates polling and refresh. A disabled collection issues no
// queries at all, which keeps setup from causing request storms.
func WithEnabled[T any](enabled func() bool) Option[T] {
	return func(c *Collection[T]) { c.enabled = enabled }
}

// NewCollection creates a collection around a fetch function.
func NewCollection[T any](fetch Fetch[T], opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		fetch:    fetch,
		enabled:  func() bool { return true },
		interval: DefaultInterval,
		kick:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current state. Callers must treat Data as read-only.
func (c *Collection[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State[T]{
		Data:      c.data,
		IsLoading: !c.loaded && c.enabled(),
		Err:       c.err,
	}
}

// Refresh fetches once, synchronously. On success the cached slice is
// replaced wholesale; on failure the error is recorded and the previous
// data stays intact, stale but valid.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()
	data, err := c.fetch(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.err = err
		return err
	}
	c.data = data
	c.loaded = true
	c.err = nil
	return nil
}

// Invalidate requests an immediate refetch from the polling loop without
// blocking the caller.
func (c *Collection[T]) Invalidate() {
	select {
	case c.kick <- struct{}{}:
	default:
	}
}

// Start runs the polling loop until ctx is done: one immediate fetch, then
// one per interval, plus any invalidations in between.
func (c *Collection[T]) Start(ctx context.Context) {
	go func() {
		_ = c.Refresh(ctx)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = c.Refresh(ctx)
			case <-c.kick:
				_ = c.Refresh(ctx)
			}
		}
	}()
}
