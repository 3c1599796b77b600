package postgres

import (
	"sort"

	"github.com/lib/pq"
)

// RefreshLogTable records when each dashboard table was last rebuilt.
const RefreshLogTable = "li_dash_refresh_log"

// Query is the fixed SQL behind one named dataset.
type Query struct {
	SQL  string
	Args []any
	// Numeric lists columns the driver returns as text (NUMERIC) that must
	// be read back as numbers.
	Numeric []string
}

// Queries maps dataset names to their SQL.
type Queries map[string]Query

func (q Queries) Names() []string {
	names := make([]string, 0, len(q))
	for n := range q {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SelectAll reads every column of table.
func SelectAll(table string, numeric ...string) Query {
	return Query{
		SQL:     "SELECT * FROM " + pq.QuoteIdentifier(table),
		Numeric: numeric,
	}
}

// LastRefresh reads the single-row freshness marker of table from the
// refresh log.
func LastRefresh(table string) Query {
	return Query{
		SQL:  "SELECT last_ddl_time FROM " + pq.QuoteIdentifier(RefreshLogTable) + " WHERE table_name = $1 ORDER BY last_ddl_time DESC LIMIT 1",
		Args: []any{table},
	}
}
