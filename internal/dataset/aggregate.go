package dataset

import (
	"fmt"
	"slices"
)

// Enumeration is a column whose values come from a fixed, ordered set.
type Enumeration struct {
	Field  string
	Values []string
}

func (e Enumeration) rank(v any) int {
	s := FormatValue(v)
	for i, want := range e.Values {
		if want == s {
			return i
		}
	}
	return len(e.Values)
}

func (d *Dataset) columnIndexes(fields []string) ([]int, error) {
	idx := make([]int, len(fields))
	for i, f := range fields {
		ci, err := d.columnIndex(f)
		if err != nil {
			return nil, err
		}
		idx[i] = ci
	}
	return idx, nil
}

func pick(row []any, idx []int) ([]any, bool) {
	vals := make([]any, len(idx))
	for i, ci := range idx {
		v := row[ci]
		if IsNull(v) {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// GroupAndCountDistinct counts distinct non-null values of distinctField per
// tuple of groupFields. Rows with a null group key are skipped. Output rows
// are sorted by group key and carry groupFields followed by countField.
func GroupAndCountDistinct(ds *Dataset, groupFields []string, distinctField, countField string) (*Dataset, error) {
	gidx, err := ds.columnIndexes(groupFields)
	if err != nil {
		return nil, err
	}
	didx, err := ds.columnIndex(distinctField)
	if err != nil {
		return nil, err
	}
	if slices.Contains(groupFields, countField) {
		return nil, fmt.Errorf("count column %q collides with a group column", countField)
	}

	type group struct {
		key  []any
		seen map[string]struct{}
	}
	groups := make(map[string]*group)
	order := make([]*group, 0)

	for _, r := range ds.rows {
		key, ok := pick(r, gidx)
		if !ok {
			continue
		}
		k := tupleKey(key)
		g, exists := groups[k]
		if !exists {
			g = &group{key: key, seen: make(map[string]struct{})}
			groups[k] = g
			order = append(order, g)
		}
		if v := r[didx]; !IsNull(v) {
			g.seen[valueKey(v)] = struct{}{}
		}
	}

	slices.SortStableFunc(order, func(a, b *group) int {
		return compareTuples(a.key, b.key)
	})

	columns := append(slices.Clone(groupFields), countField)
	rows := make([][]any, len(order))
	for i, g := range order {
		row := append(slices.Clone(g.key), int64(len(g.seen)))
		rows[i] = row
	}
	return newUnchecked(ds.name, columns, rows), nil
}

// GroupAndSumCounts sums valueField per tuple of groupFields, then completes
// the result so every (series, bucket) pair from the two enumerations has a
// row, synthesizing zero sums where the data has none. Output is ordered by
// bucket enumeration order, then series order. Both enumeration fields must
// be among groupFields.
func GroupAndSumCounts(ds *Dataset, groupFields []string, valueField string, series, buckets Enumeration) (*Dataset, error) {
	gidx, err := ds.columnIndexes(groupFields)
	if err != nil {
		return nil, err
	}
	vidx, err := ds.columnIndex(valueField)
	if err != nil {
		return nil, err
	}
	spos := slices.Index(groupFields, series.Field)
	bpos := slices.Index(groupFields, buckets.Field)
	if spos < 0 {
		return nil, fmt.Errorf("%w: series field %q is not grouped", ErrUnknownField, series.Field)
	}
	if bpos < 0 {
		return nil, fmt.Errorf("%w: bucket field %q is not grouped", ErrUnknownField, buckets.Field)
	}
	if slices.Contains(groupFields, valueField) {
		return nil, fmt.Errorf("value column %q collides with a group column", valueField)
	}

	type group struct {
		key      []any
		intSum   int64
		floatSum float64
	}
	groups := make(map[string]*group)
	order := make([]*group, 0)
	useFloat := false

	for i, r := range ds.rows {
		key, ok := pick(r, gidx)
		if !ok {
			continue
		}
		k := tupleKey(key)
		g, exists := groups[k]
		if !exists {
			g = &group{key: key}
			groups[k] = g
			order = append(order, g)
		}
		switch v := r[vidx].(type) {
		case nil:
		case int64:
			g.intSum += v
			g.floatSum += float64(v)
		case float64:
			if IsNull(v) {
				continue
			}
			useFloat = true
			g.floatSum += v
		default:
			return nil, fmt.Errorf("%w: column %q row %d holds %T, not a number", ErrInvalidFilter, valueField, i, v)
		}
	}

	present := make(map[string]bool, len(order))
	for _, g := range order {
		present[FormatValue(g.key[spos])+"\x1f"+FormatValue(g.key[bpos])] = true
	}
	for _, s := range series.Values {
		for _, b := range buckets.Values {
			if present[s+"\x1f"+b] {
				continue
			}
			key := make([]any, len(groupFields))
			key[spos] = s
			key[bpos] = b
			order = append(order, &group{key: key})
		}
	}

	slices.SortStableFunc(order, func(a, b *group) int {
		if c := buckets.rank(a.key[bpos]) - buckets.rank(b.key[bpos]); c != 0 {
			return c
		}
		if c := series.rank(a.key[spos]) - series.rank(b.key[spos]); c != 0 {
			return c
		}
		return compareTuples(a.key, b.key)
	})

	columns := append(slices.Clone(groupFields), valueField)
	rows := make([][]any, len(order))
	for i, g := range order {
		var sum any = g.intSum
		if useFloat {
			sum = g.floatSum
		}
		rows[i] = append(slices.Clone(g.key), sum)
	}
	return newUnchecked(ds.name, columns, rows), nil
}
