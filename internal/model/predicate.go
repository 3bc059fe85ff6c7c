package model

// YearRange is an inclusive [Min, Max] constraint on adoption year.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether a year falls inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// PredicateSet is a conjunction of per-field constraints. An empty slice or a
// nil year range means "no restriction on that field", never "no rows pass".
type PredicateSet struct {
	Industries []string   `json:"industries,omitempty"`
	Countries  []string   `json:"countries,omitempty"`
	Tools      []string   `json:"tools,omitempty"`
	Years      *YearRange `json:"years,omitempty"`
}

// IsEmpty reports whether no constraint is active.
func (p PredicateSet) IsEmpty() bool {
	return len(p.Industries) == 0 &&
		len(p.Countries) == 0 &&
		len(p.Tools) == 0 &&
		p.Years == nil
}

// HasConstraints reports whether at least one constraint is active.
func (p PredicateSet) HasConstraints() bool {
	return !p.IsEmpty()
}
