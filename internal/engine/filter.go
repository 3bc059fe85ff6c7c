// Package engine implements the filter-and-aggregate core: pure functions
// over an immutable record table. The engine holds no session state; every
// call recomputes its result from its inputs.
package engine

import (
	"github.com/mkravets/adoptlens/internal/model"
)

// Apply returns the subsequence of table satisfying every active predicate,
// preserving original order. Constraints are AND-combined across fields and
// OR-combined within a set; an empty set leaves its field unrestricted.
//
// An empty result under at least one active constraint returns ErrNoMatches
// so callers can distinguish "constraints yield nothing" from "no constraints
// yet". Apply never mutates its inputs.
func Apply(table model.Table, p model.PredicateSet) (model.View, error) {
	if p.IsEmpty() {
		return model.View(table), nil
	}

	industries := toSet(p.Industries)
	countries := toSet(p.Countries)
	tools := toSet(p.Tools)

	view := make(model.View, 0, len(table))
	for _, rec := range table {
		if industries != nil && !industries[rec.Industry] {
			continue
		}
		if countries != nil && !countries[rec.Country] {
			continue
		}
		if tools != nil && !tools[rec.Tool] {
			continue
		}
		if p.Years != nil && !p.Years.Contains(rec.AdoptionYear) {
			continue
		}
		view = append(view, rec)
	}

	if len(view) == 0 {
		return nil, ErrNoMatches
	}
	return view, nil
}

// toSet builds a membership set, or nil when the constraint is inactive.
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
