package ports

import (
	"context"

	"li-dashboard-service/internal/dataset"
)

// DatasetReaderPort hands out named datasets, typically through a cache.
type DatasetReaderPort interface {
	Get(ctx context.Context, name string) (*dataset.Dataset, error)
}
