package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "li-dashboard-service/internal/activeprocesses/adapters/http/fiber"
	"li-dashboard-service/internal/activeprocesses/core/domain"
	"li-dashboard-service/internal/dataset"

	"github.com/gofiber/fiber/v2"
)

// Fakes implementing the interfaces the handler depends on.
type fakeOptionsUseCase struct {
	ExecuteFn func(ctx context.Context) (*domain.Options, error)
	called    bool
}

func (f *fakeOptionsUseCase) Execute(ctx context.Context) (*domain.Options, error) {
	f.called = true
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx)
	}
	return &domain.Options{}, nil
}

type fakeChartUseCase struct {
	ExecuteFn   func(ctx context.Context, f domain.Filters) (*domain.Chart, error)
	lastFilters domain.Filters
	called      bool
}

func (f *fakeChartUseCase) Execute(ctx context.Context, flt domain.Filters) (*domain.Chart, error) {
	f.called = true
	f.lastFilters = flt
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, flt)
	}
	return &domain.Chart{}, nil
}

type fakeTableUseCase struct {
	ExecuteFn   func(ctx context.Context, f domain.Filters) (*domain.Table, error)
	lastFilters domain.Filters
	called      bool
}

func (f *fakeTableUseCase) Execute(ctx context.Context, flt domain.Filters) (*domain.Table, error) {
	f.called = true
	f.lastFilters = flt
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, flt)
	}
	return nil, nil
}

func setupApp(t *testing.T, o *fakeOptionsUseCase, c *fakeChartUseCase, tb *fakeTableUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewActiveProcessesHandler(o, c, tb)
	h.RegisterRoutes(app)
	return app
}

func sampleChart() *domain.Chart {
	return &domain.Chart{
		Categories: domain.TimeCategories,
		Series: []domain.Series{
			{Name: "Applications", JobType: "Application", Values: []float64{1, 2, 3, 4, 5}},
			{Name: "Renewals/Amendments", JobType: "Amend/Renew", Values: []float64{0, 0, 0, 0, 1}},
		},
		Updated: domain.Freshness{At: time.Date(2019, 2, 1, 6, 30, 0, 0, time.UTC), Known: true},
	}
}

func sampleTable(t *testing.T) *domain.Table {
	t.Helper()
	ds, err := dataset.New("df_ind", []string{"processtype", "licensetype"}, [][]any{
		{"Review", "Food, Retail"},
		{"Payment", nil},
	})
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	return &domain.Table{Rows: ds}
}

// ------------------------------------------------------------
// OPTIONS
// ------------------------------------------------------------

func TestGetOptions_Success(t *testing.T) {
	o := &fakeOptionsUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.Options, error) {
			return &domain.Options{
				ProcessTypes: []dataset.Option{{Label: "Review", Value: "Review"}},
				LicenseTypes: []dataset.Option{{Label: "All", Value: "All"}, {Label: "Food", Value: "Food"}},
			}, nil
		},
	}
	app := setupApp(t, o, &fakeChartUseCase{}, &fakeTableUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/active-processes/options", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.OptionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.LicenseTypes) != 2 || body.LicenseTypes[0].Label != "All" {
		t.Fatalf("unexpected license types: %+v", body.LicenseTypes)
	}
	if body.LastUpdated != nil {
		t.Fatalf("expected no freshness when unknown")
	}
}

// ------------------------------------------------------------
// CHART
// ------------------------------------------------------------

func TestGetChart_ParsesMultiSelect(t *testing.T) {
	c := &fakeChartUseCase{
		ExecuteFn: func(ctx context.Context, f domain.Filters) (*domain.Chart, error) {
			return sampleChart(), nil
		},
	}
	app := setupApp(t, &fakeOptionsUseCase{}, c, &fakeTableUseCase{})

	req := httptest.NewRequest(http.MethodGet,
		"/active-processes/chart?process_type=Review&process_type=Payment&license_type=Food", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	got := c.lastFilters.ProcessType.Values()
	if len(got) != 2 || got[0] != "Review" || got[1] != "Payment" {
		t.Fatalf("unexpected process types: %v", got)
	}
	lt := c.lastFilters.LicenseType.Values()
	if len(lt) != 1 || lt[0] != "Food" {
		t.Fatalf("unexpected license type: %v", lt)
	}

	var body httpadapter.ChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Series) != 2 || body.Series[0].Name != "Applications" {
		t.Fatalf("unexpected series: %+v", body.Series)
	}
	if body.LastUpdatedMessage != "Data last updated 2019-02-01 06:30:00" {
		t.Fatalf("unexpected freshness message: %q", body.LastUpdatedMessage)
	}
}

func TestGetChart_AllLicenseTypeIsNoRestriction(t *testing.T) {
	c := &fakeChartUseCase{
		ExecuteFn: func(ctx context.Context, f domain.Filters) (*domain.Chart, error) {
			return sampleChart(), nil
		},
	}
	app := setupApp(t, &fakeOptionsUseCase{}, c, &fakeTableUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/active-processes/chart?license_type=All", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if c.lastFilters.LicenseType.Restricts() || c.lastFilters.ProcessType.Restricts() {
		t.Fatalf("expected no restriction, got %+v", c.lastFilters)
	}
}

func TestGetChartPNG_Success(t *testing.T) {
	c := &fakeChartUseCase{
		ExecuteFn: func(ctx context.Context, f domain.Filters) (*domain.Chart, error) {
			return sampleChart(), nil
		},
	}
	app := setupApp(t, &fakeOptionsUseCase{}, c, &fakeTableUseCase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/active-processes/chart.png", nil), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %s", ct)
	}
}

// ------------------------------------------------------------
// TABLE
// ------------------------------------------------------------

func TestGetTable_Success(t *testing.T) {
	tb := &fakeTableUseCase{
		ExecuteFn: func(ctx context.Context, f domain.Filters) (*domain.Table, error) {
			return sampleTable(t), nil
		},
	}
	app := setupApp(t, &fakeOptionsUseCase{}, &fakeChartUseCase{}, tb)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/active-processes/table", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.TableResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 2 || len(body.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", body)
	}
	if body.Columns[0] != "processtype" || body.Columns[1] != "licensetype" {
		t.Fatalf("unexpected columns: %v", body.Columns)
	}
}

func TestGetTableCSV_Download(t *testing.T) {
	tb := &fakeTableUseCase{
		ExecuteFn: func(ctx context.Context, f domain.Filters) (*domain.Table, error) {
			return sampleTable(t), nil
		},
	}
	app := setupApp(t, &fakeOptionsUseCase{}, &fakeChartUseCase{}, tb)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/active-processes/table.csv", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, httpadapter.CSVFilename) {
		t.Fatalf("expected attachment filename, got %q", cd)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv, got %q", ct)
	}

	raw, _ := io.ReadAll(resp.Body)
	want := "processtype,licensetype\nReview,\"Food, Retail\"\nPayment,\n"
	if string(raw) != want {
		t.Fatalf("unexpected csv:\n%s", raw)
	}
}

// ------------------------------------------------------------
// ERROR MAPPING
// ------------------------------------------------------------

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: bad", dataset.ErrInvalidFilter), http.StatusBadRequest, "invalid_filter"},
		{fmt.Errorf("%w: nope", dataset.ErrUnknownField), http.StatusBadRequest, "unknown_field"},
		{fmt.Errorf("%w: down", dataset.ErrDataSource), http.StatusServiceUnavailable, "data_source_unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		tb := &fakeTableUseCase{
			ExecuteFn: func(ctx context.Context, f domain.Filters) (*domain.Table, error) {
				return nil, tt.err
			},
		}
		app := setupApp(t, &fakeOptionsUseCase{}, &fakeChartUseCase{}, tb)

		for _, path := range []string{"/active-processes/table", "/active-processes/table.csv"} {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("%s with %v: expected status %d, got %d", path, tt.err, tt.status, resp.StatusCode)
			}

			var body httpadapter.ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.code {
				t.Fatalf("%s with %v: expected error %q, got %q", path, tt.err, tt.code, body.Error)
			}
		}
	}
}
