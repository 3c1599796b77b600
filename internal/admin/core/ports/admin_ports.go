package ports

import (
	"context"

	"li-dashboard-service/internal/dataset"
)

// DatasetCachePort is the slice of a dataset cache the admin operations
// need.
type DatasetCachePort interface {
	Name() string
	Refresh(ctx context.Context, name string) (*dataset.Dataset, error)
	Flush() int
}

type DatabasePingerPort interface {
	PingContext(ctx context.Context) error
}
