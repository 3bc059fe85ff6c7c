package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravets/adoptlens/internal/engine"
	"github.com/mkravets/adoptlens/internal/model"
	"github.com/mkravets/adoptlens/internal/pipeline"
	"github.com/mkravets/adoptlens/internal/recommend"
)

var recommendHours float64

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend <csv>",
	Short: "Recommend the best-performing GenAI tool for a selection",
	Long: `Recommend answers two questions for the filtered selection:
- Which GenAI tool shows the highest average productivity change?
- What productivity change should I expect at my planned training investment?

The estimate averages companies whose training hours fall inside a tolerance
window around your plan; if no company trained that much (or that little),
it falls back to the selection-wide average and says so.

Example:
  adoptlens recommend adoption.csv --hours 150
  adoptlens recommend adoption.csv --hours 80 --industry Healthcare --country Germany`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	addFilterFlags(recommendCmd)
	recommendCmd.Flags().Float64Var(&recommendHours, "hours", 100, "planned training hours")
	recommendCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable dataset cache (force fresh parse)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	path := args[0]

	predicates, err := buildPredicates()
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	cfg.Dataset.CacheEnabled = !noCache
	cfg.Output.Verbose = verbose

	p := pipeline.NewPipeline(cfg)

	table, err := p.LoadTable(path)
	if err != nil {
		return err
	}

	view, err := engine.Apply(table, predicates)
	if errors.Is(err, engine.ErrNoMatches) {
		return fmt.Errorf("no data matches your filters - try relaxing one of them")
	}
	if err != nil {
		return err
	}

	rec, err := recommend.NewRecommender().Recommend(view, model.MetricProductivityChange, recommendHours)
	if err != nil {
		return err
	}

	printRecommendation(rec)
	return nil
}

func printRecommendation(rec *model.Recommendation) {
	if rec.NoData {
		fmt.Println("No data in the current selection.")
		return
	}

	fmt.Printf("Best tool: %s (avg %.1f%% productivity change across %d companies)\n",
		rec.BestTool, rec.BestToolMean, rec.BestToolCount)

	switch rec.EstimateKind {
	case model.EstimateWindowed:
		fmt.Printf("At %.0f training hours expect about %.1f%% productivity change\n",
			rec.PlannedHours, rec.EstimateValue)
		fmt.Printf("(based on companies within ±%.0f hours of your plan)\n", rec.WindowSize)
	case model.EstimateFallback:
		fmt.Printf("At %.0f training hours expect about %.1f%% productivity change\n",
			rec.PlannedHours, rec.EstimateValue)
		fmt.Println("(fallback: no company trained within the comparison window; this is the selection-wide average)")
	}
}
