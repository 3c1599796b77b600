package usecase

import (
	"context"
	"time"

	"li-dashboard-service/internal/dataset"
	"li-dashboard-service/internal/overdueinspections/core/domain"
	"li-dashboard-service/internal/overdueinspections/core/ports"
)

type GetOptionsUseCase struct {
	reader ports.DatasetReaderPort
	loc    *time.Location
}

func NewGetOptionsUseCase(reader ports.DatasetReaderPort, loc *time.Location) *GetOptionsUseCase {
	return &GetOptionsUseCase{reader: reader, loc: loc}
}

// Execute lists license types, job types and inspectors found in the
// detail dataset. None of the dropdowns offers "All".
func (uc *GetOptionsUseCase) Execute(ctx context.Context) (*domain.Options, error) {
	ds, updated, err := loadInspections(ctx, uc.reader, uc.loc)
	if err != nil {
		return nil, err
	}

	licenseTypes, err := dataset.DistinctOptions(ds, domain.ColLicenseType, false)
	if err != nil {
		return nil, err
	}
	jobTypes, err := dataset.DistinctOptions(ds, domain.ColJobType, false)
	if err != nil {
		return nil, err
	}
	inspectors, err := dataset.DistinctOptions(ds, domain.ColInspector, false)
	if err != nil {
		return nil, err
	}

	return &domain.Options{
		LicenseTypes: licenseTypes,
		JobTypes:     jobTypes,
		Inspectors:   inspectors,
		Updated:      updated,
	}, nil
}
