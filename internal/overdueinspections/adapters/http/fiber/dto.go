package fiber

import "time"

type OptionResponse struct {
	Label string `json:"label" example:"Food"`
	Value any    `json:"value"`
}

type OptionsResponse struct {
	LicenseTypes []OptionResponse `json:"license_types"`
	JobTypes     []OptionResponse `json:"job_types"`
	Inspectors   []OptionResponse `json:"inspectors"`
	FreshnessResponse
}

// TableResponse is shared by the counts and detail tables.
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
	Message string `json:"message" example:"start_date: expected YYYY-MM-DD"`
}
