package usecase

import (
	"context"
	"time"

	"li-dashboard-service/internal/admin/core/domain"
	"li-dashboard-service/internal/admin/core/ports"
	"li-dashboard-service/internal/logging"
)

const pingTimeout = 2 * time.Second

type CheckHealthUseCase struct {
	db ports.DatabasePingerPort
}

func NewCheckHealthUseCase(db ports.DatabasePingerPort) *CheckHealthUseCase {
	return &CheckHealthUseCase{db: db}
}

// Execute pings the database. A failed ping reports degraded, not an error.
func (uc *CheckHealthUseCase) Execute(ctx context.Context) (*domain.Health, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := uc.db.PingContext(ctx); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("database ping failed")
		return &domain.Health{Status: domain.StatusDegraded, Database: err.Error()}, nil
	}
	return &domain.Health{Status: domain.StatusOK, Database: domain.StatusOK}, nil
}
