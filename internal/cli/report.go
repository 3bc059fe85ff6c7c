package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkravets/adoptlens/internal/engine"
	"github.com/mkravets/adoptlens/internal/llm"
	"github.com/mkravets/adoptlens/internal/model"
	"github.com/mkravets/adoptlens/internal/pipeline"
)

var (
	outJSON      string
	outMD        string
	plannedHours float64
	noCache      bool
	noFooter     bool
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <csv>",
	Short: "Analyze an adoption dataset and generate a full report",
	Long: `Report loads an enterprise GenAI adoption CSV, applies the given filters,
and generates a full analysis report:
- Headline KPIs (companies, average productivity change, average training hours)
- Companies using each GenAI tool
- Average productivity change by tool
- Best-tool recommendation with a productivity estimate for your planned
  training-hours investment

Example:
  adoptlens report adoption.csv
  adoptlens report adoption.csv --industry Finance --year-from 2022 --year-to 2023
  adoptlens report adoption.csv --hours 120 --json report.json --md report.md
  adoptlens report adoption.csv --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	addFilterFlags(reportCmd)

	// Output flags
	reportCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	reportCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	reportCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Analysis flags
	reportCmd.Flags().Float64Var(&plannedHours, "hours", 100, "planned training hours for the productivity estimate")
	reportCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable dataset cache (force fresh parse)")

	// LLM flags
	reportCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative generation")
	reportCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	reportCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runReport(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := context.Background()

	predicates, err := buildPredicates()
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Filters active: %v\n", predicates.HasConstraints())
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Dataset.CacheEnabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	report, err := p.Analyze(ctx, path, predicates, plannedHours)
	if errors.Is(err, engine.ErrNoMatches) {
		return fmt.Errorf("no data matches your filters - try relaxing one of them")
	}
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d rows in selection\n", report.Summary.Rows)
		fmt.Fprintf(os.Stderr, "✓ %d tools compared\n", len(report.ToolUsage))
		if report.LLM != nil && report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated narrative using %s/%s\n", report.LLM.Provider, report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the configuration from defaults, viper, and flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if viper.IsSet("dataset.cache_ttl") {
		cfg.Dataset.CacheTTL = viper.GetDuration("dataset.cache_ttl")
	}
	if noCache {
		cfg.Dataset.CacheEnabled = false
	}
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		default:
			return nil, fmt.Errorf("unknown LLM provider: %s", llmProvider)
		}

		// Fail early on an unusable provider configuration
		if _, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
