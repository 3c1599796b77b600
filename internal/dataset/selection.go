package dataset

// AllSentinel is the dropdown value meaning "no restriction".
const AllSentinel = "All"

type filterKind int

const (
	kindNone filterKind = iota
	kindSingle
	kindMany
)

// FilterValue is one field's resolved selection: no restriction, a single
// value, or a set of values matched with OR.
type FilterValue struct {
	kind   filterKind
	values []any
}

func NoRestriction() FilterValue {
	return FilterValue{kind: kindNone}
}

// Single restricts to one value. The "All" sentinel imposes no restriction.
func Single(v any) FilterValue {
	if isAll(v) {
		return NoRestriction()
	}
	return FilterValue{kind: kindSingle, values: []any{v}}
}

// Many collapses to NoRestriction for zero values or any "All" sentinel,
// and to Single for one value.
func Many(vs ...any) FilterValue {
	for _, v := range vs {
		if isAll(v) {
			return NoRestriction()
		}
	}
	switch len(vs) {
	case 0:
		return NoRestriction()
	case 1:
		return Single(vs[0])
	}
	values := make([]any, len(vs))
	copy(values, vs)
	return FilterValue{kind: kindMany, values: values}
}

func isAll(v any) bool {
	s, ok := v.(string)
	return ok && s == AllSentinel
}

// ResolveFilter maps raw dropdown values onto a FilterValue. Nil, empty and
// any occurrence of the "All" sentinel impose no restriction.
func ResolveFilter(raw []string) FilterValue {
	vs := make([]any, len(raw))
	for i, r := range raw {
		vs[i] = r
	}
	return Many(vs...)
}

func (f FilterValue) Restricts() bool { return f.kind != kindNone }

// Values returns a copy of the selected values.
func (f FilterValue) Values() []any {
	out := make([]any, len(f.values))
	copy(out, f.values)
	return out
}

func (f FilterValue) matches(v any) bool {
	if f.kind == kindNone {
		return true
	}
	if IsNull(v) {
		return false
	}
	for _, want := range f.values {
		if equalValues(v, want) {
			return true
		}
	}
	return false
}

// Selection maps field names to their resolved filter values. Missing
// fields impose no restriction.
type Selection map[string]FilterValue
