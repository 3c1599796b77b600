package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

func equalValues(a, b any) bool {
	b, err := Normalize(b)
	if err != nil {
		return false
	}
	if IsNull(a) || IsNull(b) {
		return false
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return x == y
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Equal(y)
		}
	case int64, float64:
		fx, _ := asFloat(x)
		if fy, ok := asFloat(b); ok {
			return fx == fy
		}
	}
	// Dropdown values arrive as strings; compare on the rendered form.
	return FormatValue(a) == FormatValue(b)
}

func typeRank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case int64, float64:
		return 1
	case string:
		return 2
	case time.Time:
		return 3
	default:
		return 4
	}
}

// compareValues orders cells: nulls first, then numbers, strings and times.
func compareValues(a, b any) int {
	if IsNull(a) {
		a = nil
	}
	if IsNull(b) {
		b = nil
	}
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case nil:
		return 0
	case int64, float64:
		fx, _ := asFloat(x)
		fy, _ := asFloat(b)
		switch {
		case fx < fy:
			return -1
		case fx > fy:
			return 1
		}
		return 0
	case string:
		return strings.Compare(x, b.(string))
	case time.Time:
		return x.Compare(b.(time.Time))
	}
	return strings.Compare(FormatValue(a), FormatValue(b))
}

func compareTuples(a, b []any) int {
	for i := range a {
		if c := compareValues(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// valueKey is a hashable identity for a cell, equal for equal values.
func valueKey(v any) string {
	switch x := v.(type) {
	case nil:
		return "0:"
	case string:
		return "s:" + x
	case int64:
		return "n:" + strconv.FormatInt(x, 10)
	case float64:
		if math.IsNaN(x) {
			return "0:"
		}
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return "n:" + strconv.FormatInt(int64(x), 10)
		}
		return "n:" + strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return "t:" + strconv.FormatInt(x.UnixNano(), 10)
	default:
		return "?:" + FormatValue(x)
	}
}

func tupleKey(vs []any) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		b.WriteString(valueKey(v))
	}
	return b.String()
}
