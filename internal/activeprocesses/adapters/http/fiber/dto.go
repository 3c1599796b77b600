package fiber

import "time"

type OptionResponse struct {
	Label string `json:"label" example:"Food"`
	Value any    `json:"value"`
}

type OptionsResponse struct {
	ProcessTypes []OptionResponse `json:"process_types"`
	LicenseTypes []OptionResponse `json:"license_types"`
	FreshnessResponse
}

type SeriesResponse struct {
	Name    string    `json:"name" example:"Applications"`
	JobType string    `json:"job_type" example:"Application"`
	Values  []float64 `json:"values"`
}

type ChartResponse struct {
	Categories []string         `json:"categories"`
	Series     []SeriesResponse `json:"series"`
	FreshnessResponse
}

type TableResponse struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
	Count   int              `json:"count"`
	FreshnessResponse
}

type FreshnessResponse struct {
	LastUpdated        *time.Time `json:"last_updated,omitempty"`
	LastUpdatedMessage string     `json:"last_updated_message,omitempty" example:"Data last updated 2019-02-01 06:30:00"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_filter"`
	Message string `json:"message" example:"unknown field: \"licensetype\""`
}
