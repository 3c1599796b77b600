// Package datasetcache memoizes named datasets fetched from a data source
// for a fixed timeout.
package datasetcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"li-dashboard-service/internal/dataset"
	"li-dashboard-service/internal/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Fetcher loads a named dataset from the backing store.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (*dataset.Dataset, error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc func(ctx context.Context, name string) (*dataset.Dataset, error)

func (f FetchFunc) Fetch(ctx context.Context, name string) (*dataset.Dataset, error) {
	return f(ctx, name)
}

// Clock supplies the current time for expiry checks.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type entry struct {
	ds        *dataset.Dataset
	fetchedAt time.Time
}

// Cache maps dataset names to their last fetched value. An entry is served
// only while now - fetchedAt <= timeout; afterwards the next Get refetches.
type Cache struct {
	name    string
	fetcher Fetcher
	timeout time.Duration
	// bounds a shared fetch once detached from its callers' contexts
	fetchTimeout time.Duration
	clock        Clock
	log          zerolog.Logger

	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
}

// DefaultFetchTimeout bounds a single fetch when no WithFetchTimeout is given.
const DefaultFetchTimeout = 30 * time.Second

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the wall clock used for expiry.
func WithClock(c Clock) Option {
	return func(cache *Cache) { cache.clock = c }
}

// WithFetchTimeout bounds how long one fetch may run.
func WithFetchTimeout(d time.Duration) Option {
	return func(cache *Cache) { cache.fetchTimeout = d }
}

// WithLogger sets the logger for fetch and flush events.
func WithLogger(l zerolog.Logger) Option {
	return func(cache *Cache) { cache.log = l }
}

// WithName labels the cache in logs and metrics.
func WithName(name string) Option {
	return func(cache *Cache) { cache.name = name }
}

// New builds a Cache over fetcher whose entries live for timeout.
func New(fetcher Fetcher, timeout time.Duration, opts ...Option) *Cache {
	c := &Cache{
		name:         "default",
		fetcher:      fetcher,
		timeout:      timeout,
		fetchTimeout: DefaultFetchTimeout,
		clock:        systemClock{},
		log:          zerolog.Nop(),
		entries:      make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the label given by WithName.
func (c *Cache) Name() string { return c.name }

func (c *Cache) Timeout() time.Duration { return c.timeout }

func (c *Cache) lookup(name string) (*dataset.Dataset, bool) {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok || c.clock.Now().Sub(e.fetchedAt) > c.timeout {
		return nil, false
	}
	return e.ds, true
}

// Get returns the cached dataset for name, fetching it when absent or
// expired. Failed fetches are never stored. Errors other than an unknown
// dataset name are wrapped in dataset.ErrDataSource.
//
// Concurrent misses share one fetch. That fetch does not inherit any
// caller's cancellation; a caller whose ctx ends stops waiting with an
// ErrDataSource error while the others keep waiting.
func (c *Cache) Get(ctx context.Context, name string) (*dataset.Dataset, error) {
	if ds, ok := c.lookup(name); ok {
		metrics.CacheHits.WithLabelValues(c.name, name).Inc()
		return ds, nil
	}
	metrics.CacheMisses.WithLabelValues(c.name, name).Inc()

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(name, func() (any, error) {
		// Another caller may have refreshed the entry while we waited.
		if ds, ok := c.lookup(name); ok {
			return ds, nil
		}
		return c.fetch(fetchCtx, name)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: fetch %q: %v", dataset.ErrDataSource, name, ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*dataset.Dataset), nil
	}
}

// Refresh fetches name unconditionally and replaces the entry on success.
// A failed refresh leaves any existing entry in place.
func (c *Cache) Refresh(ctx context.Context, name string) (*dataset.Dataset, error) {
	return c.fetch(ctx, name)
}

func (c *Cache) fetch(ctx context.Context, name string) (*dataset.Dataset, error) {
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	start := time.Now()
	ds, err := c.fetcher.Fetch(ctx, name)
	metrics.CacheFetchDuration.WithLabelValues(c.name, name).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.CacheFetchErrors.WithLabelValues(c.name, name).Inc()
		c.log.Error().Err(err).Str("cache", c.name).Str("dataset", name).Msg("dataset fetch failed")
		if errors.Is(err, dataset.ErrUnknownField) || errors.Is(err, dataset.ErrDataSource) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: fetch %q: %v", dataset.ErrDataSource, name, err)
	}
	if ds == nil {
		return nil, fmt.Errorf("%w: fetch %q returned no dataset", dataset.ErrDataSource, name)
	}

	c.mu.Lock()
	c.entries[name] = entry{ds: ds, fetchedAt: c.clock.Now()}
	size := len(c.entries)
	c.mu.Unlock()
	metrics.CacheEntries.WithLabelValues(c.name).Set(float64(size))

	c.log.Debug().Str("cache", c.name).Str("dataset", name).Int("rows", ds.Len()).
		Dur("took", time.Since(start)).Msg("dataset fetched")
	return ds, nil
}

// Flush drops every entry and reports how many were held.
func (c *Cache) Flush() int {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	metrics.CacheEntries.WithLabelValues(c.name).Set(0)
	c.log.Info().Str("cache", c.name).Int("entries", n).Msg("cache flushed")
	return n
}
