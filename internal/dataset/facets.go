package dataset

import (
	"sort"

	"github.com/mkravets/adoptlens/internal/model"
)

// Facets lists the selectable values of each filterable field, the way a
// sidebar would present them: sorted distinct categories plus the year span.
type Facets struct {
	Industries []string `json:"industries"`
	Countries  []string `json:"countries"`
	Tools      []string `json:"tools"`
	MinYear    int      `json:"min_year"`
	MaxYear    int      `json:"max_year"`
}

// CollectFacets scans a table once and returns its facets.
func CollectFacets(table model.Table) Facets {
	f := Facets{}
	if len(table) == 0 {
		return f
	}

	industries := make(map[string]bool)
	countries := make(map[string]bool)
	tools := make(map[string]bool)
	f.MinYear = table[0].AdoptionYear
	f.MaxYear = table[0].AdoptionYear

	for _, rec := range table {
		industries[rec.Industry] = true
		countries[rec.Country] = true
		tools[rec.Tool] = true
		if rec.AdoptionYear < f.MinYear {
			f.MinYear = rec.AdoptionYear
		}
		if rec.AdoptionYear > f.MaxYear {
			f.MaxYear = rec.AdoptionYear
		}
	}

	f.Industries = sortedKeys(industries)
	f.Countries = sortedKeys(countries)
	f.Tools = sortedKeys(tools)
	return f
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
