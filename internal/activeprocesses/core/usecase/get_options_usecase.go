package usecase

import (
	"context"
	"time"

	"li-dashboard-service/internal/activeprocesses/core/domain"
	"li-dashboard-service/internal/activeprocesses/core/ports"
	"li-dashboard-service/internal/dataset"
)

type GetOptionsUseCase struct {
	reader ports.DatasetReaderPort
	loc    *time.Location
}

func NewGetOptionsUseCase(reader ports.DatasetReaderPort, loc *time.Location) *GetOptionsUseCase {
	return &GetOptionsUseCase{reader: reader, loc: loc}
}

// Execute lists the dropdown entries, both taken from the counts dataset.
// License types start with "All"; process types are a plain multi-select.
func (uc *GetOptionsUseCase) Execute(ctx context.Context) (*domain.Options, error) {
	counts, updated, err := loadWithFreshness(ctx, uc.reader, domain.DatasetCounts, domain.DatasetCountsUpdate, uc.loc)
	if err != nil {
		return nil, err
	}

	processTypes, err := dataset.DistinctOptions(counts, domain.ColProcessType, false)
	if err != nil {
		return nil, err
	}
	licenseTypes, err := dataset.DistinctOptions(counts, domain.ColLicenseType, true)
	if err != nil {
		return nil, err
	}

	return &domain.Options{
		ProcessTypes: processTypes,
		LicenseTypes: licenseTypes,
		Updated:      updated,
	}, nil
}
