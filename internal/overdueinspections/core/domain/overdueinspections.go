package domain

import (
	"time"

	"li-dashboard-service/internal/dataset"
)

const (
	DatasetInspections = "df_ind"
	DatasetUpdate      = "last_ddl_time"
)

const (
	ColScheduledDate    = "scheduledinspectiondatefield"
	ColLicenseType      = "licensetype"
	ColJobType          = "jobtype"
	ColInspector        = "inspector"
	ColInspectionOn     = "inspectionon"
	ColInspectionID     = "inspectionobjectid"
	ColDaysSinceCreated = "dayssinceinspectioncreated"
)

// Column headers of the counts table.
const (
	LabelLicenseType  = "License Type"
	LabelInspectionOn = "Inspection On"
	LabelCount        = "Count of Overdue Inspections"
)

// DefaultStart is the first scheduled date shown when no range is chosen.
var DefaultStart = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

// Filters is the page selection. Start and End bound the scheduled
// inspection date inclusively; the three dropdowns are multi-selects.
type Filters struct {
	Start       time.Time
	End         time.Time
	LicenseType dataset.FilterValue
	JobType     dataset.FilterValue
	Inspector   dataset.FilterValue
}

// WithDefaults fills a missing Start with DefaultStart and a missing End
// with now. Timestamps in the table carry no zone, so now is taken as its
// wall clock reading in UTC.
func (f Filters) WithDefaults(now time.Time) Filters {
	if f.Start.IsZero() {
		f.Start = DefaultStart
	}
	if f.End.IsZero() {
		y, m, d := now.Date()
		f.End = time.Date(y, m, d, now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
	}
	return f
}

func (f Filters) Selection() dataset.Selection {
	return dataset.Selection{
		ColLicenseType: f.LicenseType,
		ColJobType:     f.JobType,
		ColInspector:   f.Inspector,
	}
}

type Freshness struct {
	At    time.Time
	Known bool
}

type Options struct {
	LicenseTypes []dataset.Option
	JobTypes     []dataset.Option
	Inspectors   []dataset.Option
	Updated      Freshness
}

// Counts has the columns License Type, Inspection On and Count of Overdue
// Inspections, with counts rendered using thousands separators.
type Counts struct {
	Rows    *dataset.Dataset
	Updated Freshness
}

type Table struct {
	Rows    *dataset.Dataset
	Updated Freshness
}
