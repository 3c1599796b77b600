package usecase

import (
	"context"
	"time"

	"li-dashboard-service/internal/dataset"
	"li-dashboard-service/internal/overdueinspections/core/domain"
	"li-dashboard-service/internal/overdueinspections/core/ports"

	"golang.org/x/sync/errgroup"
)

var filterFields = []string{domain.ColLicenseType, domain.ColJobType, domain.ColInspector}

func loadInspections(ctx context.Context, reader ports.DatasetReaderPort, loc *time.Location) (*dataset.Dataset, domain.Freshness, error) {
	var ds, marker *dataset.Dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ds, err = reader.Get(gctx, domain.DatasetInspections)
		return err
	})
	g.Go(func() (err error) {
		marker, err = reader.Get(gctx, domain.DatasetUpdate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.Freshness{}, err
	}

	at, ok, err := dataset.LastUpdated(marker)
	if err != nil {
		return nil, domain.Freshness{}, err
	}
	fresh := domain.Freshness{}
	if ok {
		if loc != nil {
			at = at.In(loc)
		}
		fresh = domain.Freshness{At: at, Known: true}
	}
	return ds, fresh, nil
}

// selectInspections applies the scheduled date range and the dropdowns.
func selectInspections(ds *dataset.Dataset, f domain.Filters) (*dataset.Dataset, error) {
	inRange, err := dataset.ApplyRangeFilter(ds, domain.ColScheduledDate, f.Start, f.End)
	if err != nil {
		return nil, err
	}
	return dataset.ApplyEqualityFilters(inRange, f.Selection(), filterFields)
}
