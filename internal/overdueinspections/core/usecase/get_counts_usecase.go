package usecase

import (
	"context"
	"time"

	"li-dashboard-service/internal/dataset"
	"li-dashboard-service/internal/overdueinspections/core/domain"
	"li-dashboard-service/internal/overdueinspections/core/ports"
)

type GetCountsUseCase struct {
	reader ports.DatasetReaderPort
	loc    *time.Location
	now    func() time.Time
}

func NewGetCountsUseCase(reader ports.DatasetReaderPort, loc *time.Location) *GetCountsUseCase {
	return &GetCountsUseCase{reader: reader, loc: loc, now: time.Now}
}

// Execute counts distinct overdue inspections per (license type, inspection
// on) within the selection.
func (uc *GetCountsUseCase) Execute(ctx context.Context, f domain.Filters) (*domain.Counts, error) {
	ds, updated, err := loadInspections(ctx, uc.reader, uc.loc)
	if err != nil {
		return nil, err
	}

	selected, err := selectInspections(ds, f.WithDefaults(localNow(uc.now, uc.loc)))
	if err != nil {
		return nil, err
	}

	counts, err := dataset.GroupAndCountDistinct(
		selected,
		[]string{domain.ColLicenseType, domain.ColInspectionOn},
		domain.ColInspectionID,
		domain.ColInspectionID,
	)
	if err != nil {
		return nil, err
	}

	counts, err = counts.Rename(map[string]string{
		domain.ColLicenseType:  domain.LabelLicenseType,
		domain.ColInspectionOn: domain.LabelInspectionOn,
		domain.ColInspectionID: domain.LabelCount,
	})
	if err != nil {
		return nil, err
	}

	counts, err = counts.MapColumn(domain.LabelCount, withThousands)
	if err != nil {
		return nil, err
	}

	return &domain.Counts{Rows: counts, Updated: updated}, nil
}

func localNow(now func() time.Time, loc *time.Location) time.Time {
	t := now()
	if loc != nil {
		t = t.In(loc)
	}
	return t
}
