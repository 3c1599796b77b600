// Package dataset holds the immutable tabular datasets served to the
// dashboard pages and the pure filter/aggregation pipeline run over them.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Row is a single record keyed by column name.
type Row map[string]any

// Dataset is an ordered, immutable table. Every operation returns a new
// *Dataset; row slices may be shared between datasets because they are
// never written after construction.
type Dataset struct {
	name    string
	columns []string
	index   map[string]int
	rows    [][]any
}

// New builds a dataset from ordered column names and positional rows.
// Cell values are normalized to nil, string, int64, float64 or time.Time.
func New(name string, columns []string, rows [][]any) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("dataset %q: duplicate column %q", name, c)
		}
		index[c] = i
	}

	out := make([][]any, len(rows))
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("dataset %q: row %d has %d values, want %d", name, i, len(r), len(columns))
		}
		row := make([]any, len(r))
		for j, v := range r {
			nv, err := Normalize(v)
			if err != nil {
				return nil, fmt.Errorf("dataset %q: row %d column %q: %w", name, i, columns[j], err)
			}
			row[j] = nv
		}
		out[i] = row
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Dataset{name: name, columns: cols, index: index, rows: out}, nil
}

// FromRecords builds a dataset from row maps using the given column order.
// Missing keys become nulls.
func FromRecords(name string, columns []string, records []Row) (*Dataset, error) {
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(columns))
		for j, c := range columns {
			row[j] = rec[c]
		}
		rows[i] = row
	}
	return New(name, columns, rows)
}

// derive shares the column layout of d with a new row set.
func (d *Dataset) derive(rows [][]any) *Dataset {
	return &Dataset{name: d.name, columns: d.columns, index: d.index, rows: rows}
}

// Name returns the dataset name it was fetched under.
func (d *Dataset) Name() string { return d.name }

// Len returns the row count.
func (d *Dataset) Len() int { return len(d.rows) }

// Columns returns a copy of the column names in order.
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

// HasColumn reports whether name is one of the columns.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

func (d *Dataset) columnIndex(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q not in dataset %q", ErrUnknownField, name, d.name)
	}
	return i, nil
}

// Value returns the cell at row i, column name.
func (d *Dataset) Value(i int, column string) (any, error) {
	ci, err := d.columnIndex(column)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(d.rows) {
		return nil, fmt.Errorf("dataset %q: row %d out of range", d.name, i)
	}
	return d.rows[i][ci], nil
}

// Column returns a copy of all values of one column.
func (d *Dataset) Column(name string) ([]any, error) {
	ci, err := d.columnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(d.rows))
	for i, r := range d.rows {
		out[i] = r[ci]
	}
	return out, nil
}

// Values returns a copy of the positional rows.
func (d *Dataset) Values() [][]any {
	out := make([][]any, len(d.rows))
	for i, r := range d.rows {
		row := make([]any, len(r))
		copy(row, r)
		out[i] = row
	}
	return out
}

// Records returns the rows as fresh maps, suitable for JSON encoding.
func (d *Dataset) Records() []Row {
	out := make([]Row, len(d.rows))
	for i, r := range d.rows {
		rec := make(Row, len(d.columns))
		for j, c := range d.columns {
			rec[c] = r[j]
		}
		out[i] = rec
	}
	return out
}

// Drop returns a view without the given columns.
func (d *Dataset) Drop(columns ...string) (*Dataset, error) {
	drop := make(map[string]bool, len(columns))
	for _, c := range columns {
		if _, err := d.columnIndex(c); err != nil {
			return nil, err
		}
		drop[c] = true
	}

	keep := make([]int, 0, len(d.columns))
	cols := make([]string, 0, len(d.columns))
	for i, c := range d.columns {
		if !drop[c] {
			keep = append(keep, i)
			cols = append(cols, c)
		}
	}

	rows := make([][]any, len(d.rows))
	for i, r := range d.rows {
		row := make([]any, len(keep))
		for j, k := range keep {
			row[j] = r[k]
		}
		rows[i] = row
	}
	return newUnchecked(d.name, cols, rows), nil
}

// Rename returns a view with columns renamed according to mapping.
func (d *Dataset) Rename(mapping map[string]string) (*Dataset, error) {
	cols := d.Columns()
	for from, to := range mapping {
		ci, err := d.columnIndex(from)
		if err != nil {
			return nil, err
		}
		cols[ci] = to
	}

	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("dataset %q: rename produces duplicate column %q", d.name, c)
		}
		index[c] = i
	}
	return &Dataset{name: d.name, columns: cols, index: index, rows: d.rows}, nil
}

// MapColumn returns a view where every cell of column is replaced by fn(cell).
// fn must return a supported value type.
func (d *Dataset) MapColumn(column string, fn func(any) any) (*Dataset, error) {
	ci, err := d.columnIndex(column)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, len(d.rows))
	for i, r := range d.rows {
		row := make([]any, len(r))
		copy(row, r)
		v, err := Normalize(fn(r[ci]))
		if err != nil {
			return nil, fmt.Errorf("dataset %q: column %q: %w", d.name, column, err)
		}
		row[ci] = v
		rows[i] = row
	}
	return d.derive(rows), nil
}

func newUnchecked(name string, columns []string, rows [][]any) *Dataset {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	return &Dataset{name: name, columns: columns, index: index, rows: rows}
}

// Normalize converts driver and Go scalar values into the dataset value set.
func Normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return nil, nil
		}
		return *x, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// IsNull reports whether v is a null or NaN-like cell.
func IsNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	default:
		return false
	}
}

// FormatValue renders a cell the way labels and CSV fields show it.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
