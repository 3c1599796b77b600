package dataset

import (
	"slices"
	"strings"
)

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// DistinctOptions lists the distinct non-null values of field sorted by
// label. With includeAll the "All" sentinel is prepended ahead of the
// sorted values.
func DistinctOptions(ds *Dataset, field string, includeAll bool) ([]Option, error) {
	ci, err := ds.columnIndex(field)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	opts := make([]Option, 0)
	for _, r := range ds.rows {
		v := r[ci]
		if IsNull(v) {
			continue
		}
		label := FormatValue(v)
		if strings.EqualFold(label, "nan") {
			continue
		}
		k := valueKey(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		opts = append(opts, Option{Label: label, Value: v})
	}

	slices.SortStableFunc(opts, func(a, b Option) int {
		return strings.Compare(a.Label, b.Label)
	})

	if includeAll {
		opts = append([]Option{{Label: AllSentinel, Value: AllSentinel}}, opts...)
	}
	return opts, nil
}
