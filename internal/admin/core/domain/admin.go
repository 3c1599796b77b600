package domain

// CacheFlush reports how many entries one cache dropped.
type CacheFlush struct {
	Cache   string
	Entries int
}

type FlushResult struct {
	Caches []CacheFlush
	Total  int
}

type RefreshResult struct {
	Cache     string
	Refreshed []string
}

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

type Health struct {
	Status   string
	Database string
}
