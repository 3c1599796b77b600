package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"li-dashboard-service/internal/dataset"
	"li-dashboard-service/internal/logging"
	"li-dashboard-service/internal/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerConfig tunes the circuit breaker guarding the database.
type BreakerConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// Source runs the registered query for a dataset name and returns the
// result set as a dataset. Column names are lower-cased.
type Source struct {
	name    string
	db      DB
	queries Queries
	cb      *gobreaker.CircuitBreaker[*dataset.Dataset]
}

func NewSource(name string, db DB, queries Queries, cfg BreakerConfig) *Source {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*dataset.Dataset](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		// A caller going away says nothing about database health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &Source{name: name, db: db, queries: queries, cb: cb}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Fetch implements datasetcache.Fetcher. Unknown names fail with
// dataset.ErrUnknownField without touching the database; every database
// failure is wrapped in dataset.ErrDataSource.
func (s *Source) Fetch(ctx context.Context, name string) (*dataset.Dataset, error) {
	q, ok := s.queries[name]
	if !ok {
		return nil, fmt.Errorf("%w: no query registered for dataset %q", dataset.ErrUnknownField, name)
	}

	ds, err := s.cb.Execute(func() (*dataset.Dataset, error) {
		return s.load(ctx, name, q)
	})
	if err != nil {
		result := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, result).Inc()
		return nil, fmt.Errorf("%w: dataset %q: %v", dataset.ErrDataSource, name, err)
	}
	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	return ds, nil
}

func (s *Source) load(ctx context.Context, name string, q Query) (*dataset.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	for i, c := range cols {
		cols[i] = strings.ToLower(c)
	}

	numeric := make(map[int]bool, len(q.Numeric))
	for _, n := range q.Numeric {
		for i, c := range cols {
			if c == strings.ToLower(n) {
				numeric[i] = true
			}
		}
	}

	var out [][]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i := range vals {
			if !numeric[i] {
				continue
			}
			n, err := parseNumber(vals[i])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", cols[i], err)
			}
			vals[i] = n
		}
		out = append(out, vals)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dataset.New(name, cols, out)
}

func parseNumber(v any) (any, error) {
	var s string
	switch x := v.(type) {
	case []byte:
		s = string(x)
	case string:
		s = x
	default:
		return v, nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return f, nil
}
