package dataset

import (
	"fmt"
	"time"
)

// FreshnessColumn is the single column of a freshness marker dataset.
const FreshnessColumn = "last_ddl_time"

// LastUpdated reads the timestamp held by a freshness marker. ok is false
// when the marker has no rows or a null value.
func LastUpdated(ds *Dataset) (t time.Time, ok bool, err error) {
	ci, err := ds.columnIndex(FreshnessColumn)
	if err != nil {
		return time.Time{}, false, err
	}
	if len(ds.rows) == 0 || IsNull(ds.rows[0][ci]) {
		return time.Time{}, false, nil
	}
	t, isTime := ds.rows[0][ci].(time.Time)
	if !isTime {
		return time.Time{}, false, fmt.Errorf("%w: %q holds %T, not a timestamp", ErrInvalidFilter, FreshnessColumn, ds.rows[0][ci])
	}
	return t, true, nil
}
