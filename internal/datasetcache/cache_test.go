package datasetcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"li-dashboard-service/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------
// FAKES
// ------------------------------------------------------------

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeFetcher struct {
	calls   atomic.Int64
	FetchFn func(ctx context.Context, name string) (*dataset.Dataset, error)
}

func (f *fakeFetcher) Fetch(ctx context.Context, name string) (*dataset.Dataset, error) {
	f.calls.Add(1)
	if f.FetchFn != nil {
		return f.FetchFn(ctx, name)
	}
	return dataset.New(name, []string{"v"}, [][]any{{f.calls.Load()}})
}

func version(t *testing.T, ds *dataset.Dataset) any {
	t.Helper()
	v, err := ds.Value(0, "v")
	require.NoError(t, err)
	return v
}

// ------------------------------------------------------------
// FRESHNESS
// ------------------------------------------------------------

func TestGet_FetchesOnceWithinTimeout(t *testing.T) {
	clock := newFakeClock()
	f := &fakeFetcher{}
	c := New(f, 600*time.Second, WithClock(clock))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ds, err := c.Get(ctx, "df_counts")
		require.NoError(t, err)
		assert.Equal(t, int64(1), version(t, ds))
		clock.Advance(100 * time.Second)
	}

	assert.Equal(t, int64(1), f.calls.Load())
}

func TestGet_RefetchesAfterTimeout(t *testing.T) {
	clock := newFakeClock()
	f := &fakeFetcher{}
	c := New(f, 600*time.Second, WithClock(clock))
	ctx := context.Background()

	_, err := c.Get(ctx, "df_ind")
	require.NoError(t, err)

	clock.Advance(600 * time.Second)
	ds, err := c.Get(ctx, "df_ind")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version(t, ds), "entry exactly at the timeout is still fresh")

	clock.Advance(time.Second)
	ds, err = c.Get(ctx, "df_ind")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version(t, ds))
	assert.Equal(t, int64(2), f.calls.Load())
}

func TestGet_NamesAreIndependent(t *testing.T) {
	f := &fakeFetcher{}
	c := New(f, time.Minute, WithClock(newFakeClock()))
	ctx := context.Background()

	a, err := c.Get(ctx, "df_ind")
	require.NoError(t, err)
	b, err := c.Get(ctx, "df_counts")
	require.NoError(t, err)

	assert.Equal(t, "df_ind", a.Name())
	assert.Equal(t, "df_counts", b.Name())
	assert.Equal(t, int64(2), f.calls.Load())
}

// ------------------------------------------------------------
// FAILURES
// ------------------------------------------------------------

func TestGet_FailureIsNotCached(t *testing.T) {
	fail := true
	f := &fakeFetcher{}
	f.FetchFn = func(ctx context.Context, name string) (*dataset.Dataset, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return dataset.New(name, []string{"v"}, [][]any{{"ok"}})
	}
	c := New(f, time.Hour, WithClock(newFakeClock()))
	ctx := context.Background()

	_, err := c.Get(ctx, "df_ind")
	if !errors.Is(err, dataset.ErrDataSource) {
		t.Fatalf("expected ErrDataSource, got %v", err)
	}

	fail = false
	ds, err := c.Get(ctx, "df_ind")
	require.NoError(t, err)
	assert.Equal(t, "ok", version(t, ds))
	assert.Equal(t, int64(2), f.calls.Load())
}

func TestGet_ExpiredEntryFailureSurfaces(t *testing.T) {
	clock := newFakeClock()
	fail := false
	f := &fakeFetcher{}
	f.FetchFn = func(ctx context.Context, name string) (*dataset.Dataset, error) {
		if fail {
			return nil, errors.New("timeout")
		}
		return dataset.New(name, []string{"v"}, nil)
	}
	c := New(f, time.Minute, WithClock(clock))

	_, err := c.Get(context.Background(), "df_ind")
	require.NoError(t, err)

	fail = true
	clock.Advance(2 * time.Minute)
	_, err = c.Get(context.Background(), "df_ind")
	assert.ErrorIs(t, err, dataset.ErrDataSource)
}

func TestGet_UnknownNamePropagatesUnwrapped(t *testing.T) {
	f := &fakeFetcher{}
	f.FetchFn = func(ctx context.Context, name string) (*dataset.Dataset, error) {
		return nil, dataset.ErrUnknownField
	}
	c := New(f, time.Hour)

	_, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, dataset.ErrUnknownField)
	assert.NotErrorIs(t, err, dataset.ErrDataSource)
}

func TestGet_NilDatasetIsDataSourceError(t *testing.T) {
	f := &fakeFetcher{}
	f.FetchFn = func(ctx context.Context, name string) (*dataset.Dataset, error) {
		return nil, nil
	}
	c := New(f, time.Hour)

	_, err := c.Get(context.Background(), "df_ind")
	assert.ErrorIs(t, err, dataset.ErrDataSource)
}

// ------------------------------------------------------------
// INVALIDATION
// ------------------------------------------------------------

func TestFlush(t *testing.T) {
	f := &fakeFetcher{}
	c := New(f, time.Hour, WithClock(newFakeClock()), WithName("test"))
	ctx := context.Background()

	_, err := c.Get(ctx, "a")
	require.NoError(t, err)
	_, err = c.Get(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, 2, c.Flush())
	_, err = c.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.calls.Load())
	assert.Equal(t, 1, c.Flush())
}

func TestRefresh_ReplacesEntryOnSuccess(t *testing.T) {
	f := &fakeFetcher{}
	c := New(f, time.Hour, WithClock(newFakeClock()))
	ctx := context.Background()

	_, err := c.Get(ctx, "df_ind")
	require.NoError(t, err)

	ds, err := c.Refresh(ctx, "df_ind")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version(t, ds))

	ds, err = c.Get(ctx, "df_ind")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version(t, ds))
	assert.Equal(t, int64(2), f.calls.Load())
}

func TestRefresh_FailureKeepsPreviousEntry(t *testing.T) {
	f := &fakeFetcher{}
	c := New(f, time.Hour, WithClock(newFakeClock()))
	ctx := context.Background()

	_, err := c.Get(ctx, "df_ind")
	require.NoError(t, err)

	f.FetchFn = func(ctx context.Context, name string) (*dataset.Dataset, error) {
		return nil, errors.New("connection refused")
	}
	_, err = c.Refresh(ctx, "df_ind")
	require.ErrorIs(t, err, dataset.ErrDataSource)

	ds, err := c.Get(ctx, "df_ind")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version(t, ds))
	assert.Equal(t, int64(2), f.calls.Load())
}

// ------------------------------------------------------------
// CONCURRENCY
// ------------------------------------------------------------

func TestGet_ConcurrentMissesShareOneFetch(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	f := &fakeFetcher{}
	f.FetchFn = func(ctx context.Context, name string) (*dataset.Dataset, error) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return dataset.New(name, []string{"v"}, [][]any{{"shared"}})
	}
	c := New(f, time.Hour, WithClock(newFakeClock()))

	const n = 16
	var wg sync.WaitGroup
	results := make([]*dataset.Dataset, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Get(context.Background(), "df_ind")
		}(i)
	}

	<-started
	// Give the remaining goroutines a chance to join the in-flight call.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", version(t, results[i]))
	}
	assert.LessOrEqual(t, f.calls.Load(), int64(n))

	// Whatever happened during the race, the value is now cached.
	before := f.calls.Load()
	_, err := c.Get(context.Background(), "df_ind")
	require.NoError(t, err)
	assert.Equal(t, before, f.calls.Load())
}

func TestGet_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	fetchErr := make(chan error, 2)
	f := &fakeFetcher{}
	f.FetchFn = func(ctx context.Context, name string) (*dataset.Dataset, error) {
		once.Do(func() { close(started) })
		<-release
		fetchErr <- ctx.Err()
		return dataset.New(name, []string{"v"}, [][]any{{"shared"}})
	}
	c := New(f, time.Hour, WithClock(newFakeClock()))

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Get(firstCtx, "df_ind")
		firstErr <- err
	}()
	<-started

	type result struct {
		ds  *dataset.Dataset
		err error
	}
	second := make(chan result, 1)
	go func() {
		ds, err := c.Get(context.Background(), "df_ind")
		second <- result{ds, err}
	}()
	// Let the second caller join the in-flight call.
	time.Sleep(20 * time.Millisecond)

	cancel()
	err := <-firstErr
	require.ErrorIs(t, err, dataset.ErrDataSource)
	assert.ErrorContains(t, err, context.Canceled.Error())

	close(release)
	require.NoError(t, <-fetchErr)

	r := <-second
	require.NoError(t, r.err)
	assert.Equal(t, "shared", version(t, r.ds))
	assert.Equal(t, int64(1), f.calls.Load())
}
