package fiber

type CacheFlushResponse struct {
	Cache   string `json:"cache" example:"active-processes"`
	Entries int    `json:"entries" example:"4"`
}

type FlushResponse struct {
	Caches []CacheFlushResponse `json:"caches"`
	Total  int                  `json:"total" example:"6"`
}

type RefreshRequest struct {
	Cache    string   `json:"cache" example:"overdue-inspections"`
	Datasets []string `json:"datasets" example:"df_ind"`
}

type RefreshResponse struct {
	Cache     string   `json:"cache"`
	Refreshed []string `json:"refreshed"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_refresh"`
	Message string `json:"message" example:"invalid refresh request"`
}
