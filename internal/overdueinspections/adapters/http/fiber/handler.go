package fiber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"li-dashboard-service/internal/dataset"
	"li-dashboard-service/internal/logging"
	"li-dashboard-service/internal/overdueinspections/core/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	CountsCSVFilename = "Man006BL-counts.csv"
	TableCSVFilename  = "Man006BL.csv"
	DateLayout        = "2006-01-02"
)

type GetOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.Options, error)
}

type GetCountsUseCase interface {
	Execute(ctx context.Context, f domain.Filters) (*domain.Counts, error)
}

type GetTableUseCase interface {
	Execute(ctx context.Context, f domain.Filters) (*domain.Table, error)
}

type OverdueInspectionsHandler struct {
	options GetOptionsUseCase
	counts  GetCountsUseCase
	table   GetTableUseCase
}

func NewOverdueInspectionsHandler(options GetOptionsUseCase, counts GetCountsUseCase, table GetTableUseCase) *OverdueInspectionsHandler {
	return &OverdueInspectionsHandler{options: options, counts: counts, table: table}
}

func (h *OverdueInspectionsHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/overdue-inspections")
	g.Get("/options", h.GetOptions)
	g.Get("/counts", h.GetCounts)
	g.Get("/counts.csv", h.GetCountsCSV)
	g.Get("/table", h.GetTable)
	g.Get("/table.csv", h.GetTableCSV)
}

// filtersFromQuery reads the scheduled date range and the three
// multi-selects. Missing dates are left zero so the use case applies its
// defaults.
func filtersFromQuery(c *fiber.Ctx) (domain.Filters, error) {
	start, err := parseDate(c.Query("start_date"), "start_date")
	if err != nil {
		return domain.Filters{}, err
	}
	end, err := parseDate(c.Query("end_date"), "end_date")
	if err != nil {
		return domain.Filters{}, err
	}

	return domain.Filters{
		Start:       start,
		End:         end,
		LicenseType: dataset.ResolveFilter(queryMulti(c, "license_type")),
		JobType:     dataset.ResolveFilter(queryMulti(c, "job_type")),
		Inspector:   dataset.ResolveFilter(queryMulti(c, "inspector")),
	}, nil
}

func parseDate(raw, param string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: expected YYYY-MM-DD, got %q", dataset.ErrInvalidFilter, param, raw)
	}
	return t, nil
}

func queryMulti(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if len(v) > 0 {
			out = append(out, string(v))
		}
	}
	return out
}

func freshness(f domain.Freshness) FreshnessResponse {
	if !f.Known {
		return FreshnessResponse{}
	}
	at := f.At
	return FreshnessResponse{
		LastUpdated:        &at,
		LastUpdatedMessage: "Data last updated " + at.Format("2006-01-02 15:04:05"),
	}
}

func options(in []dataset.Option) []OptionResponse {
	out := make([]OptionResponse, 0, len(in))
	for _, o := range in {
		out = append(out, OptionResponse{Label: o.Label, Value: o.Value})
	}
	return out
}

func tableResponse(ds *dataset.Dataset, updated domain.Freshness) TableResponse {
	records := ds.Records()
	rows := make([]map[string]any, len(records))
	for i, r := range records {
		rows[i] = r
	}
	return TableResponse{
		Columns:           ds.Columns(),
		Rows:              rows,
		Count:             ds.Len(),
		FreshnessResponse: freshness(updated),
	}
}

func sendCSV(c *fiber.Ctx, filename string, ds *dataset.Dataset) error {
	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, ds); err != nil {
		return writeError(c, err)
	}

	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, dataset.ErrInvalidFilter):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
	case errors.Is(err, dataset.ErrUnknownField):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "unknown_field",
			Message: err.Error(),
		})
	case errors.Is(err, dataset.ErrDataSource):
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("data source unavailable")
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "data_source_unavailable",
			Message: "data source is unavailable, try again later",
		})
	default:
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("overdue inspections request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

// GetOptions godoc
// @Summary Filter options
// @Description License types, job types and inspectors found in the inspections dataset
// @Tags OverdueInspections
// @Produce json
// @Success 200 {object} OptionsResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /overdue-inspections/options [get]
func (h *OverdueInspectionsHandler) GetOptions(c *fiber.Ctx) error {
	res, err := h.options.Execute(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(OptionsResponse{
		LicenseTypes:      options(res.LicenseTypes),
		JobTypes:          options(res.JobTypes),
		Inspectors:        options(res.Inspectors),
		FreshnessResponse: freshness(res.Updated),
	})
}

// GetCounts godoc
// @Summary Overdue inspection counts
// @Description Distinct overdue inspections per license type and inspection target
// @Tags OverdueInspections
// @Produce json
// @Param start_date query string false "First scheduled date (YYYY-MM-DD), default 2018-01-01"
// @Param end_date query string false "Last scheduled date (YYYY-MM-DD), default now"
// @Param license_type query []string false "License type (repeatable)" collectionFormat(multi)
// @Param job_type query []string false "Job type (repeatable)" collectionFormat(multi)
// @Param inspector query []string false "Inspector (repeatable)" collectionFormat(multi)
// @Success 200 {object} TableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /overdue-inspections/counts [get]
func (h *OverdueInspectionsHandler) GetCounts(c *fiber.Ctx) error {
	f, err := filtersFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.counts.Execute(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(tableResponse(res.Rows, res.Updated))
}

// GetCountsCSV godoc
// @Summary Overdue inspection counts as CSV
// @Tags OverdueInspections
// @Produce text/csv
// @Param start_date query string false "First scheduled date (YYYY-MM-DD)"
// @Param end_date query string false "Last scheduled date (YYYY-MM-DD)"
// @Param license_type query []string false "License type (repeatable)" collectionFormat(multi)
// @Param job_type query []string false "Job type (repeatable)" collectionFormat(multi)
// @Param inspector query []string false "Inspector (repeatable)" collectionFormat(multi)
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /overdue-inspections/counts.csv [get]
func (h *OverdueInspectionsHandler) GetCountsCSV(c *fiber.Ctx) error {
	f, err := filtersFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.counts.Execute(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}

	return sendCSV(c, CountsCSVFilename, res.Rows)
}

// GetTable godoc
// @Summary Overdue inspections
// @Description Filtered overdue inspections with days since creation grouped by thousands
// @Tags OverdueInspections
// @Produce json
// @Param start_date query string false "First scheduled date (YYYY-MM-DD), default 2018-01-01"
// @Param end_date query string false "Last scheduled date (YYYY-MM-DD), default now"
// @Param license_type query []string false "License type (repeatable)" collectionFormat(multi)
// @Param job_type query []string false "Job type (repeatable)" collectionFormat(multi)
// @Param inspector query []string false "Inspector (repeatable)" collectionFormat(multi)
// @Success 200 {object} TableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /overdue-inspections/table [get]
func (h *OverdueInspectionsHandler) GetTable(c *fiber.Ctx) error {
	f, err := filtersFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.table.Execute(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(tableResponse(res.Rows, res.Updated))
}

// GetTableCSV godoc
// @Summary Overdue inspections as CSV
// @Tags OverdueInspections
// @Produce text/csv
// @Param start_date query string false "First scheduled date (YYYY-MM-DD)"
// @Param end_date query string false "Last scheduled date (YYYY-MM-DD)"
// @Param license_type query []string false "License type (repeatable)" collectionFormat(multi)
// @Param job_type query []string false "Job type (repeatable)" collectionFormat(multi)
// @Param inspector query []string false "Inspector (repeatable)" collectionFormat(multi)
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /overdue-inspections/table.csv [get]
func (h *OverdueInspectionsHandler) GetTableCSV(c *fiber.Ctx) error {
	f, err := filtersFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.table.Execute(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}

	return sendCSV(c, TableCSVFilename, res.Rows)
}
