package postgres

import (
	datasource "li-dashboard-service/internal/datasource/postgres"
	"li-dashboard-service/internal/overdueinspections/core/domain"
)

const InspectionsTable = "li_dash_overdueinsp_bl"

// Queries registers the SQL behind the inspections dataset and its refresh
// marker.
func Queries() datasource.Queries {
	return datasource.Queries{
		domain.DatasetInspections: datasource.SelectAll(InspectionsTable, domain.ColDaysSinceCreated),
		domain.DatasetUpdate:      datasource.LastRefresh(InspectionsTable),
	}
}
