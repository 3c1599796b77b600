package usecase

import (
	"context"
	"fmt"
	"time"

	"li-dashboard-service/internal/activeprocesses/core/domain"
	"li-dashboard-service/internal/activeprocesses/core/ports"
	"li-dashboard-service/internal/dataset"
)

type GetChartUseCase struct {
	reader ports.DatasetReaderPort
	loc    *time.Location
}

func NewGetChartUseCase(reader ports.DatasetReaderPort, loc *time.Location) *GetChartUseCase {
	return &GetChartUseCase{reader: reader, loc: loc}
}

// Execute sums process counts per (job type, time bucket) over the filtered
// counts dataset. Every series has a value for every category; pairs with
// no data are zero. Buckets outside TimeCategories are not plotted.
func (uc *GetChartUseCase) Execute(ctx context.Context, f domain.Filters) (*domain.Chart, error) {
	counts, updated, err := loadWithFreshness(ctx, uc.reader, domain.DatasetCounts, domain.DatasetCountsUpdate, uc.loc)
	if err != nil {
		return nil, err
	}

	selected, err := dataset.ApplyEqualityFilters(counts, f.Selection(), filterFields)
	if err != nil {
		return nil, err
	}

	jobTypes := make([]string, len(domain.ChartSeries))
	for i, s := range domain.ChartSeries {
		jobTypes[i] = s.JobType
	}

	grouped, err := dataset.GroupAndSumCounts(
		selected,
		[]string{domain.ColJobType, domain.ColTimeSinceStart},
		domain.ColProcessCounts,
		dataset.Enumeration{Field: domain.ColJobType, Values: jobTypes},
		dataset.Enumeration{Field: domain.ColTimeSinceStart, Values: domain.TimeCategories},
	)
	if err != nil {
		return nil, err
	}

	sums := make(map[[2]string]float64, grouped.Len())
	for _, row := range grouped.Values() {
		v, err := toFloat(row[2])
		if err != nil {
			return nil, err
		}
		sums[[2]string{dataset.FormatValue(row[0]), dataset.FormatValue(row[1])}] = v
	}

	chart := &domain.Chart{
		Categories: append([]string(nil), domain.TimeCategories...),
		Series:     make([]domain.Series, 0, len(domain.ChartSeries)),
		Updated:    updated,
	}
	for _, def := range domain.ChartSeries {
		values := make([]float64, len(domain.TimeCategories))
		for i, cat := range domain.TimeCategories {
			values[i] = sums[[2]string{def.JobType, cat}]
		}
		chart.Series = append(chart.Series, domain.Series{
			Name:    def.Name,
			JobType: def.JobType,
			Values:  values,
		})
	}

	return chart, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("%w: sum holds %T", dataset.ErrInvalidFilter, v)
	}
}
