package usecase

import (
	"context"
	"errors"
	"fmt"

	"li-dashboard-service/internal/admin/core/domain"
	"li-dashboard-service/internal/admin/core/ports"
)

var (
	ErrInvalidRefresh = errors.New("invalid refresh request")
	ErrUnknownCache   = errors.New("unknown cache")
)

type RefreshDatasetsInput struct {
	Cache    string
	Datasets []string
}

type RefreshDatasetsUseCase struct {
	caches map[string]ports.DatasetCachePort
}

func NewRefreshDatasetsUseCase(caches ...ports.DatasetCachePort) *RefreshDatasetsUseCase {
	byName := make(map[string]ports.DatasetCachePort, len(caches))
	for _, c := range caches {
		byName[c.Name()] = c
	}
	return &RefreshDatasetsUseCase{caches: byName}
}

// Execute refetches the named datasets in one cache. It stops at the first
// failure. A dataset whose refetch fails keeps its previous entry.
func (uc *RefreshDatasetsUseCase) Execute(ctx context.Context, in RefreshDatasetsInput) (*domain.RefreshResult, error) {
	c, err := uc.validateInput(in)
	if err != nil {
		return nil, err
	}

	res := &domain.RefreshResult{Cache: in.Cache, Refreshed: make([]string, 0, len(in.Datasets))}
	for _, name := range in.Datasets {
		if _, err := c.Refresh(ctx, name); err != nil {
			return res, err
		}
		res.Refreshed = append(res.Refreshed, name)
	}
	return res, nil
}

func (uc *RefreshDatasetsUseCase) validateInput(in RefreshDatasetsInput) (ports.DatasetCachePort, error) {
	if in.Cache == "" || len(in.Datasets) == 0 {
		return nil, ErrInvalidRefresh
	}
	for _, name := range in.Datasets {
		if name == "" {
			return nil, fmt.Errorf("%w: empty dataset name", ErrInvalidRefresh)
		}
	}

	c, ok := uc.caches[in.Cache]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCache, in.Cache)
	}
	return c, nil
}
