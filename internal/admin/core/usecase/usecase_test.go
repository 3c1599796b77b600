package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"li-dashboard-service/internal/admin/core/domain"
	"li-dashboard-service/internal/dataset"
	"li-dashboard-service/internal/datasetcache"
)

// Fake cache
type fakeCache struct {
	name      string
	entries   int
	RefreshFn func(ctx context.Context, name string) (*dataset.Dataset, error)
	fetched   []string
}

func (f *fakeCache) Name() string { return f.name }

func (f *fakeCache) Refresh(ctx context.Context, name string) (*dataset.Dataset, error) {
	f.fetched = append(f.fetched, name)
	if f.RefreshFn != nil {
		return f.RefreshFn(ctx, name)
	}
	return dataset.New(name, []string{"v"}, nil)
}

func (f *fakeCache) Flush() int {
	n := f.entries
	f.entries = 0
	return n
}

type fakePinger struct {
	Err error
}

func (f *fakePinger) PingContext(ctx context.Context) error { return f.Err }

// ------------------------------------------------------------
// FLUSH
// ------------------------------------------------------------

func TestFlushCaches_ReportsPerCache(t *testing.T) {
	a := &fakeCache{name: "active-processes", entries: 4}
	b := &fakeCache{name: "overdue-inspections", entries: 2}
	uc := NewFlushCachesUseCase(a, b)

	res, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 6 {
		t.Fatalf("expected total 6, got %d", res.Total)
	}
	if len(res.Caches) != 2 || res.Caches[1].Cache != "overdue-inspections" || res.Caches[1].Entries != 2 {
		t.Fatalf("unexpected caches: %+v", res.Caches)
	}
	if a.entries != 0 || b.entries != 0 {
		t.Fatalf("expected caches to be empty")
	}
}

// ------------------------------------------------------------
// REFRESH
// ------------------------------------------------------------

func TestRefreshDatasets_RefetchesEachDataset(t *testing.T) {
	c := &fakeCache{name: "overdue-inspections"}
	uc := NewRefreshDatasetsUseCase(c)

	res, err := uc.Execute(context.Background(), RefreshDatasetsInput{
		Cache:    "overdue-inspections",
		Datasets: []string{"df_ind", "last_ddl_time"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Refreshed) != 2 {
		t.Fatalf("expected 2 refreshed, got %v", res.Refreshed)
	}
	if len(c.fetched) != 2 || c.fetched[0] != "df_ind" {
		t.Fatalf("unexpected fetches: %v", c.fetched)
	}
}

func TestRefreshDatasets_ValidationErrors(t *testing.T) {
	uc := NewRefreshDatasetsUseCase(&fakeCache{name: "active-processes"})

	tests := []struct {
		name string
		in   RefreshDatasetsInput
		want error
	}{
		{"missing cache", RefreshDatasetsInput{Datasets: []string{"df_ind"}}, ErrInvalidRefresh},
		{"no datasets", RefreshDatasetsInput{Cache: "active-processes"}, ErrInvalidRefresh},
		{"empty dataset", RefreshDatasetsInput{Cache: "active-processes", Datasets: []string{""}}, ErrInvalidRefresh},
		{"unknown cache", RefreshDatasetsInput{Cache: "nope", Datasets: []string{"df_ind"}}, ErrUnknownCache},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRefreshDatasets_StopsAtFirstFailure(t *testing.T) {
	c := &fakeCache{
		name: "active-processes",
		RefreshFn: func(ctx context.Context, name string) (*dataset.Dataset, error) {
			if name == "df_counts" {
				return nil, dataset.ErrDataSource
			}
			return dataset.New(name, []string{"v"}, nil)
		},
	}
	uc := NewRefreshDatasetsUseCase(c)

	res, err := uc.Execute(context.Background(), RefreshDatasetsInput{
		Cache:    "active-processes",
		Datasets: []string{"df_ind", "df_counts", "ind_last_ddl_time"},
	})
	if !errors.Is(err, dataset.ErrDataSource) {
		t.Fatalf("expected ErrDataSource, got %v", err)
	}
	if len(res.Refreshed) != 1 || res.Refreshed[0] != "df_ind" {
		t.Fatalf("unexpected refreshed: %v", res.Refreshed)
	}
	if len(c.fetched) != 2 {
		t.Fatalf("expected 2 fetches, got %v", c.fetched)
	}
}

func TestRefreshDatasets_FailedRefetchKeepsCachedDataset(t *testing.T) {
	fail := false
	cache := datasetcache.New(datasetcache.FetchFunc(func(ctx context.Context, name string) (*dataset.Dataset, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return dataset.New(name, []string{"v"}, [][]any{{"first"}})
	}), time.Hour, datasetcache.WithName("overdue-inspections"))

	if _, err := cache.Get(context.Background(), "df_ind"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fail = true
	uc := NewRefreshDatasetsUseCase(cache)
	_, err := uc.Execute(context.Background(), RefreshDatasetsInput{
		Cache:    "overdue-inspections",
		Datasets: []string{"df_ind"},
	})
	if !errors.Is(err, dataset.ErrDataSource) {
		t.Fatalf("expected ErrDataSource, got %v", err)
	}

	ds, err := cache.Get(context.Background(), "df_ind")
	if err != nil {
		t.Fatalf("expected cached dataset to survive, got %v", err)
	}
	v, _ := ds.Value(0, "v")
	if v != "first" {
		t.Fatalf("expected previous value, got %v", v)
	}
}

// ------------------------------------------------------------
// HEALTH
// ------------------------------------------------------------

func TestCheckHealth(t *testing.T) {
	uc := NewCheckHealthUseCase(&fakePinger{})
	res, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.StatusOK {
		t.Fatalf("expected ok, got %+v", res)
	}

	uc = NewCheckHealthUseCase(&fakePinger{Err: errors.New("connection refused")})
	res, err = uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.StatusDegraded || res.Database != "connection refused" {
		t.Fatalf("expected degraded, got %+v", res)
	}
}
