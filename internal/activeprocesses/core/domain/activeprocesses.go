package domain

import (
	"time"

	"li-dashboard-service/internal/dataset"
)

// Dataset names served by the data source.
const (
	DatasetProcesses       = "df_ind"
	DatasetCounts          = "df_counts"
	DatasetProcessesUpdate = "ind_last_ddl_time"
	DatasetCountsUpdate    = "counts_last_ddl_time"
)

const (
	ColProcessID      = "processid"
	ColProcessType    = "processtype"
	ColLicenseType    = "licensetype"
	ColJobType        = "jobtype"
	ColTimeSinceStart = "timesincescheduledstartdate"
	ColProcessCounts  = "processcounts"
)

const (
	JobTypeApplication = "Application"
	JobTypeAmendRenew  = "Amend/Renew"
)

// TimeCategories is the fixed, ordered bucket axis of the chart.
var TimeCategories = []string{"0-1 Day", "2-5 Days", "6-10 Days", "11 Days-1 Year", "Over 1 Year"}

// SeriesDef names one chart series and the job type it plots.
type SeriesDef struct {
	JobType string
	Name    string
}

var ChartSeries = []SeriesDef{
	{JobType: JobTypeApplication, Name: "Applications"},
	{JobType: JobTypeAmendRenew, Name: "Renewals/Amendments"},
}

// Filters is the page selection: process type is a multi-select, license
// type a single select with an "All" entry.
type Filters struct {
	ProcessType dataset.FilterValue
	LicenseType dataset.FilterValue
}

func (f Filters) Selection() dataset.Selection {
	return dataset.Selection{
		ColProcessType: f.ProcessType,
		ColLicenseType: f.LicenseType,
	}
}

// Freshness is when the backing table was last rebuilt. Known is false when
// the refresh log has no entry.
type Freshness struct {
	At    time.Time
	Known bool
}

type Options struct {
	ProcessTypes []dataset.Option
	LicenseTypes []dataset.Option
	Updated      Freshness
}

type Series struct {
	Name    string
	JobType string
	Values  []float64
}

// Chart holds one value per category for each series, aligned on Categories.
type Chart struct {
	Categories []string
	Series     []Series
	Updated    Freshness
}

type Table struct {
	Rows    *dataset.Dataset
	Updated Freshness
}
