package fiber

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"li-dashboard-service/internal/activeprocesses/core/domain"
	"li-dashboard-service/internal/chart"
	"li-dashboard-service/internal/dataset"
	"li-dashboard-service/internal/logging"

	"github.com/gofiber/fiber/v2"
)

const (
	CSVFilename = "Man002ActiveProcessesTL.csv"
	chartTitle  = "Active Processes by Time Since Scheduled Start"
	chartYLabel = "Active Processes"
)

type GetOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.Options, error)
}

type GetChartUseCase interface {
	Execute(ctx context.Context, f domain.Filters) (*domain.Chart, error)
}

type GetTableUseCase interface {
	Execute(ctx context.Context, f domain.Filters) (*domain.Table, error)
}

type ActiveProcessesHandler struct {
	options GetOptionsUseCase
	chart   GetChartUseCase
	table   GetTableUseCase
}

func NewActiveProcessesHandler(options GetOptionsUseCase, chart GetChartUseCase, table GetTableUseCase) *ActiveProcessesHandler {
	return &ActiveProcessesHandler{options: options, chart: chart, table: table}
}

func (h *ActiveProcessesHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/active-processes")
	g.Get("/options", h.GetOptions)
	g.Get("/chart", h.GetChart)
	g.Get("/chart.png", h.GetChartPNG)
	g.Get("/table", h.GetTable)
	g.Get("/table.csv", h.GetTableCSV)
}

// filtersFromQuery resolves the dropdown query parameters. process_type may
// repeat; a missing license_type means "All".
func filtersFromQuery(c *fiber.Ctx) domain.Filters {
	return domain.Filters{
		ProcessType: dataset.ResolveFilter(queryMulti(c, "process_type")),
		LicenseType: dataset.ResolveFilter(queryMulti(c, "license_type")),
	}
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
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("active processes request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

// GetOptions godoc
// @Summary Filter options
// @Description Process types and license types (with "All") taken from the counts dataset
// @Tags ActiveProcesses
// @Produce json
// @Success 200 {object} OptionsResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /active-processes/options [get]
func (h *ActiveProcessesHandler) GetOptions(c *fiber.Ctx) error {
	res, err := h.options.Execute(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	resp := OptionsResponse{
		ProcessTypes:      make([]OptionResponse, 0, len(res.ProcessTypes)),
		LicenseTypes:      make([]OptionResponse, 0, len(res.LicenseTypes)),
		FreshnessResponse: freshness(res.Updated),
	}
	for _, o := range res.ProcessTypes {
		resp.ProcessTypes = append(resp.ProcessTypes, OptionResponse{Label: o.Label, Value: o.Value})
	}
	for _, o := range res.LicenseTypes {
		resp.LicenseTypes = append(resp.LicenseTypes, OptionResponse{Label: o.Label, Value: o.Value})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetChart godoc
// @Summary Chart series
// @Description Process counts per time bucket, one series per job type
// @Tags ActiveProcesses
// @Produce json
// @Param process_type query []string false "Process type (repeatable)" collectionFormat(multi)
// @Param license_type query string false "License type or All"
// @Success 200 {object} ChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /active-processes/chart [get]
func (h *ActiveProcessesHandler) GetChart(c *fiber.Ctx) error {
	res, err := h.chart.Execute(c.UserContext(), filtersFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	resp := ChartResponse{
		Categories:        res.Categories,
		Series:            make([]SeriesResponse, 0, len(res.Series)),
		FreshnessResponse: freshness(res.Updated),
	}
	for _, s := range res.Series {
		resp.Series = append(resp.Series, SeriesResponse{Name: s.Name, JobType: s.JobType, Values: s.Values})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetChartPNG godoc
// @Summary Chart image
// @Description Grouped bar chart of process counts per time bucket
// @Tags ActiveProcesses
// @Produce png
// @Param process_type query []string false "Process type (repeatable)" collectionFormat(multi)
// @Param license_type query string false "License type or All"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /active-processes/chart.png [get]
func (h *ActiveProcessesHandler) GetChartPNG(c *fiber.Ctx) error {
	res, err := h.chart.Execute(c.UserContext(), filtersFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	series := make([]chart.Series, 0, len(res.Series))
	for _, s := range res.Series {
		series = append(series, chart.Series{Name: s.Name, Values: s.Values})
	}

	var buf bytes.Buffer
	if err := chart.RenderGroupedBars(&buf, chartTitle, chartYLabel, res.Categories, series); err != nil {
		return writeError(c, err)
	}

	c.Type("png")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// GetTable godoc
// @Summary Process table
// @Description Filtered active processes without the process id
// @Tags ActiveProcesses
// @Produce json
// @Param process_type query []string false "Process type (repeatable)" collectionFormat(multi)
// @Param license_type query string false "License type or All"
// @Success 200 {object} TableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /active-processes/table [get]
func (h *ActiveProcessesHandler) GetTable(c *fiber.Ctx) error {
	res, err := h.table.Execute(c.UserContext(), filtersFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	records := res.Rows.Records()
	rows := make([]map[string]any, len(records))
	for i, r := range records {
		rows[i] = r
	}

	return c.Status(http.StatusOK).JSON(TableResponse{
		Columns:           res.Rows.Columns(),
		Rows:              rows,
		Count:             res.Rows.Len(),
		FreshnessResponse: freshness(res.Updated),
	})
}

// GetTableCSV godoc
// @Summary Process table as CSV
// @Description Same rows as /active-processes/table as a CSV download
// @Tags ActiveProcesses
// @Produce text/csv
// @Param process_type query []string false "Process type (repeatable)" collectionFormat(multi)
// @Param license_type query string false "License type or All"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /active-processes/table.csv [get]
func (h *ActiveProcessesHandler) GetTableCSV(c *fiber.Ctx) error {
	res, err := h.table.Execute(c.UserContext(), filtersFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, res.Rows); err != nil {
		return writeError(c, err)
	}

	c.Attachment(CSVFilename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}
