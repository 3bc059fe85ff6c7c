package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mkravets/adoptlens/internal/model"
)

// Filter flags shared by report, recommend, export and batch.
var (
	filterIndustries []string
	filterCountries  []string
	filterTools      []string
	yearFrom         int
	yearTo           int
)

// addFilterFlags registers the sidebar-equivalent filter flags on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&filterIndustries, "industry", nil, "restrict to these industries (repeatable)")
	cmd.Flags().StringSliceVar(&filterCountries, "country", nil, "restrict to these countries (repeatable)")
	cmd.Flags().StringSliceVar(&filterTools, "tool", nil, "restrict to these GenAI tools (repeatable)")
	cmd.Flags().IntVar(&yearFrom, "year-from", 0, "earliest adoption year (inclusive)")
	cmd.Flags().IntVar(&yearTo, "year-to", 0, "latest adoption year (inclusive)")
}

// buildPredicates assembles the predicate set from the filter flags.
func buildPredicates() (model.PredicateSet, error) {
	p := model.PredicateSet{
		Industries: filterIndustries,
		Countries:  filterCountries,
		Tools:      filterTools,
	}

	switch {
	case yearFrom == 0 && yearTo == 0:
		// No year constraint
	case yearFrom == 0 || yearTo == 0:
		return p, errors.New("--year-from and --year-to must be given together")
	case yearFrom > yearTo:
		return p, errors.New("--year-from must not exceed --year-to")
	default:
		p.Years = &model.YearRange{Min: yearFrom, Max: yearTo}
	}

	return p, nil
}
