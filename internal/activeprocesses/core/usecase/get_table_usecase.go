package usecase

import (
	"context"
	"time"

	"li-dashboard-service/internal/activeprocesses/core/domain"
	"li-dashboard-service/internal/activeprocesses/core/ports"
	"li-dashboard-service/internal/dataset"
)

type GetTableUseCase struct {
	reader ports.DatasetReaderPort
	loc    *time.Location
}

func NewGetTableUseCase(reader ports.DatasetReaderPort, loc *time.Location) *GetTableUseCase {
	return &GetTableUseCase{reader: reader, loc: loc}
}

// Execute returns the filtered process rows without the internal process id.
func (uc *GetTableUseCase) Execute(ctx context.Context, f domain.Filters) (*domain.Table, error) {
	processes, updated, err := loadWithFreshness(ctx, uc.reader, domain.DatasetProcesses, domain.DatasetProcessesUpdate, uc.loc)
	if err != nil {
		return nil, err
	}

	selected, err := dataset.ApplyEqualityFilters(processes, f.Selection(), filterFields)
	if err != nil {
		return nil, err
	}

	rows, err := selected.Drop(domain.ColProcessID)
	if err != nil {
		return nil, err
	}

	return &domain.Table{Rows: rows, Updated: updated}, nil
}
