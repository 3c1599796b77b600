package postgres

import (
	"li-dashboard-service/internal/activeprocesses/core/domain"
	datasource "li-dashboard-service/internal/datasource/postgres"
)

const (
	ProcessesTable = "li_dash_activeproc_tl_ind"
	CountsTable    = "li_dash_activeproc_tl_counts"
)

// Queries registers the SQL behind every dataset the page reads.
func Queries() datasource.Queries {
	return datasource.Queries{
		domain.DatasetProcesses:       datasource.SelectAll(ProcessesTable),
		domain.DatasetCounts:          datasource.SelectAll(CountsTable, domain.ColProcessCounts),
		domain.DatasetProcessesUpdate: datasource.LastRefresh(ProcessesTable),
		domain.DatasetCountsUpdate:    datasource.LastRefresh(CountsTable),
	}
}
