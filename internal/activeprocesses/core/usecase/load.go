package usecase

import (
	"context"
	"time"

	"li-dashboard-service/internal/activeprocesses/core/domain"
	"li-dashboard-service/internal/activeprocesses/core/ports"
	"li-dashboard-service/internal/dataset"

	"golang.org/x/sync/errgroup"
)

var filterFields = []string{domain.ColProcessType, domain.ColLicenseType}

// loadWithFreshness reads a dataset and its freshness marker concurrently.
func loadWithFreshness(
	ctx context.Context,
	reader ports.DatasetReaderPort,
	name, marker string,
	loc *time.Location,
) (*dataset.Dataset, domain.Freshness, error) {
	var (
		ds  *dataset.Dataset
		mds *dataset.Dataset
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ds, err = reader.Get(gctx, name)
		return err
	})
	g.Go(func() (err error) {
		mds, err = reader.Get(gctx, marker)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.Freshness{}, err
	}

	fresh, err := freshness(mds, loc)
	if err != nil {
		return nil, domain.Freshness{}, err
	}
	return ds, fresh, nil
}

func freshness(ds *dataset.Dataset, loc *time.Location) (domain.Freshness, error) {
	at, ok, err := dataset.LastUpdated(ds)
	if err != nil || !ok {
		return domain.Freshness{}, err
	}
	if loc != nil {
		at = at.In(loc)
	}
	return domain.Freshness{At: at, Known: true}, nil
}
