package dataset

import (
	"fmt"
	"time"
)

// ApplyEqualityFilters keeps rows matching every restricted field in fields.
// Fields absent from sel, or resolved to NoRestriction, keep all rows.
// Surviving rows keep their input order.
func ApplyEqualityFilters(ds *Dataset, sel Selection, fields []string) (*Dataset, error) {
	type check struct {
		col int
		fv  FilterValue
	}

	checks := make([]check, 0, len(fields))
	for _, f := range fields {
		ci, err := ds.columnIndex(f)
		if err != nil {
			return nil, err
		}
		fv, ok := sel[f]
		if !ok || !fv.Restricts() {
			continue
		}
		checks = append(checks, check{col: ci, fv: fv})
	}

	if len(checks) == 0 {
		return ds.derive(ds.rows), nil
	}

	rows := make([][]any, 0, len(ds.rows))
	for _, r := range ds.rows {
		keep := true
		for _, c := range checks {
			if !c.fv.matches(r[c.col]) {
				keep = false
				break
			}
		}
		if keep {
			rows = append(rows, r)
		}
	}
	return ds.derive(rows), nil
}

// ApplyRangeFilter keeps rows where low <= row[field] <= high. Null cells
// are dropped; any other non-time cell is an ErrInvalidFilter.
func ApplyRangeFilter(ds *Dataset, field string, low, high time.Time) (*Dataset, error) {
	ci, err := ds.columnIndex(field)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(ds.rows))
	for i, r := range ds.rows {
		v := r[ci]
		if IsNull(v) {
			continue
		}
		t, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("%w: column %q row %d holds %T, not a timestamp", ErrInvalidFilter, field, i, v)
		}
		if t.Before(low) || t.After(high) {
			continue
		}
		rows = append(rows, r)
	}
	return ds.derive(rows), nil
}
