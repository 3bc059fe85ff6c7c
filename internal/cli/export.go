package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravets/adoptlens/internal/engine"
	"github.com/mkravets/adoptlens/internal/model"
	"github.com/mkravets/adoptlens/internal/pipeline"
)

var (
	exportOut   string
	exportHours float64
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <csv>",
	Short: "Export a filtered selection and its tool statistics",
	Long: `Export applies the given filters and writes the selection to a downstream
artifact. The target format follows the output extension:
- .csv          filtered rows
- .json         full report (rows, statistics, recommendation)
- .db/.sqlite   SQLite database (adopt_records and tool_stats tables)

Example:
  adoptlens export adoption.csv --out finance.csv --industry Finance
  adoptlens export adoption.csv --out adoption.db --year-from 2022 --year-to 2024`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addFilterFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (.csv, .json, .db or .sqlite)")
	exportCmd.Flags().Float64Var(&exportHours, "hours", 100, "planned training hours for the embedded recommendation")
	exportCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable dataset cache (force fresh parse)")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := context.Background()

	predicates, err := buildPredicates()
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	cfg.Dataset.CacheEnabled = !noCache
	cfg.Output.Verbose = verbose

	p := pipeline.NewPipeline(cfg)

	result, err := p.Export(ctx, path, predicates, exportHours, exportOut)
	if errors.Is(err, engine.ErrNoMatches) {
		return fmt.Errorf("no data matches your filters - nothing to export")
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("✓ Exported %d records to %s (%s)\n", result.RecordCount, result.Path, result.Type)
	return nil
}
