package usecase

import (
	"context"
	"time"

	"li-dashboard-service/internal/overdueinspections/core/domain"
	"li-dashboard-service/internal/overdueinspections/core/ports"
)

type GetTableUseCase struct {
	reader ports.DatasetReaderPort
	loc    *time.Location
	now    func() time.Time
}

func NewGetTableUseCase(reader ports.DatasetReaderPort, loc *time.Location) *GetTableUseCase {
	return &GetTableUseCase{reader: reader, loc: loc, now: time.Now}
}

// Execute returns the selected inspections with days-since-created grouped
// by thousands and the scheduled date column removed.
func (uc *GetTableUseCase) Execute(ctx context.Context, f domain.Filters) (*domain.Table, error) {
	ds, updated, err := loadInspections(ctx, uc.reader, uc.loc)
	if err != nil {
		return nil, err
	}

	selected, err := selectInspections(ds, f.WithDefaults(localNow(uc.now, uc.loc)))
	if err != nil {
		return nil, err
	}

	formatted, err := selected.MapColumn(domain.ColDaysSinceCreated, withThousands)
	if err != nil {
		return nil, err
	}

	rows, err := formatted.Drop(domain.ColScheduledDate)
	if err != nil {
		return nil, err
	}

	return &domain.Table{Rows: rows, Updated: updated}, nil
}
