package usecase

import (
	"context"

	"li-dashboard-service/internal/admin/core/domain"
	"li-dashboard-service/internal/admin/core/ports"
	"li-dashboard-service/internal/logging"
)

type FlushCachesUseCase struct {
	caches []ports.DatasetCachePort
}

func NewFlushCachesUseCase(caches ...ports.DatasetCachePort) *FlushCachesUseCase {
	return &FlushCachesUseCase{caches: caches}
}

// Execute empties every cache so the next page request refetches.
func (uc *FlushCachesUseCase) Execute(ctx context.Context) (*domain.FlushResult, error) {
	res := &domain.FlushResult{Caches: make([]domain.CacheFlush, 0, len(uc.caches))}
	for _, c := range uc.caches {
		n := c.Flush()
		res.Caches = append(res.Caches, domain.CacheFlush{Cache: c.Name(), Entries: n})
		res.Total += n
	}

	logging.Ctx(ctx).Info().Int("entries", res.Total).Int("caches", len(uc.caches)).Msg("dataset caches flushed")
	return res, nil
}
