package store

// Op is a filter comparison operator.
type Op int

const (
	// OpEq matches a field exactly.
	OpEq Op = iota
	// OpMatch matches a case-insensitive substring of a string field.
	OpMatch
	// OpHas matches when an array field contains the value exactly.
	OpHas
)

// Cond is a single field constraint.
type Cond struct {
	Field string
	Op    Op
	Value string
}

// Filter is an ordered set of field constraints, combined with AND. The
// zero value matches everything.
type Filter struct {
	Conds []Cond
}

func (f Filter) Eq(field, value string) Filter {
	f.Conds = append(f.Conds, Cond{Field: field, Op: OpEq, Value: value})
	return f
}

func (f Filter) Match(field, substr string) Filter {
	f.Conds = append(f.Conds, Cond{Field: field, Op: OpMatch, Value: substr})
	return f
}

func (f Filter) Has(field, member string) Filter {
	f.Conds = append(f.Conds, Cond{Field: field, Op: OpHas, Value: member})
	return f
}
