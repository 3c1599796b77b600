package fiber

import (
	"context"
	"errors"
	"net/http"

	"li-dashboard-service/internal/admin/core/domain"
	"li-dashboard-service/internal/admin/core/usecase"
	"li-dashboard-service/internal/dataset"
	"li-dashboard-service/internal/logging"

	"github.com/gofiber/fiber/v2"
)

type FlushCachesUseCase interface {
	Execute(ctx context.Context) (*domain.FlushResult, error)
}

type RefreshDatasetsUseCase interface {
	Execute(ctx context.Context, in usecase.RefreshDatasetsInput) (*domain.RefreshResult, error)
}

type CheckHealthUseCase interface {
	Execute(ctx context.Context) (*domain.Health, error)
}

type AdminHandler struct {
	flush   FlushCachesUseCase
	refresh RefreshDatasetsUseCase
	health  CheckHealthUseCase
}

func NewAdminHandler(flush FlushCachesUseCase, refresh RefreshDatasetsUseCase, health CheckHealthUseCase) *AdminHandler {
	return &AdminHandler{flush: flush, refresh: refresh, health: health}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/healthz", h.GetHealth)
	g := r.Group("/admin/cache")
	g.Post("/flush", h.FlushCaches)
	g.Post("/refresh", h.RefreshDatasets)
}

// GetHealth godoc
// @Summary Health check
// @Description Reports whether the database answers a ping
// @Tags Admin
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (h *AdminHandler) GetHealth(c *fiber.Ctx) error {
	res, err := h.health.Execute(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	status := http.StatusOK
	if res.Status != domain.StatusOK {
		status = http.StatusServiceUnavailable
	}
	return c.Status(status).JSON(HealthResponse{Status: res.Status, Database: res.Database})
}

// FlushCaches godoc
// @Summary Flush dataset caches
// @Description Drops every cached dataset so the next request refetches from the database
// @Tags Admin
// @Produce json
// @Success 200 {object} FlushResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/cache/flush [post]
func (h *AdminHandler) FlushCaches(c *fiber.Ctx) error {
	res, err := h.flush.Execute(c.UserContext())
	if err != nil {
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("cache flush failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := FlushResponse{
		Caches: make([]CacheFlushResponse, 0, len(res.Caches)),
		Total:  res.Total,
	}
	for _, cf := range res.Caches {
		resp.Caches = append(resp.Caches, CacheFlushResponse{Cache: cf.Cache, Entries: cf.Entries})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// RefreshDatasets godoc
// @Summary Refresh datasets
// @Description Refetches the listed datasets of one cache
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Cache and dataset names"
// @Success 200 {object} RefreshResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/cache/refresh [post]
func (h *AdminHandler) RefreshDatasets(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	res, err := h.refresh.Execute(c.UserContext(), usecase.RefreshDatasetsInput{
		Cache:    req.Cache,
		Datasets: req.Datasets,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRefresh):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_refresh",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrUnknownCache):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "unknown_cache",
				Message: err.Error(),
			})
		case errors.Is(err, dataset.ErrUnknownField):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "unknown_field",
				Message: err.Error(),
			})
		case errors.Is(err, dataset.ErrDataSource):
			logging.Ctx(c.UserContext()).Error().Err(err).Msg("dataset refresh failed")
			return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
				Error:   "data_source_unavailable",
				Message: "data source is unavailable, try again later",
			})
		default:
			logging.Ctx(c.UserContext()).Error().Err(err).Msg("dataset refresh failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(RefreshResponse{Cache: res.Cache, Refreshed: res.Refreshed})
}
