package ports

import (
	"context"

	"li-dashboard-service/internal/dataset"
)

type DatasetReaderPort interface {
	Get(ctx context.Context, name string) (*dataset.Dataset, error)
}
