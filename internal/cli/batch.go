package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravets/adoptlens/internal/pipeline"
	"github.com/mkravets/adoptlens/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchHours   float64
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Analyze multiple adoption datasets in parallel",
	Long: `Batch analyzes several dataset files concurrently:
- Read dataset paths from a manifest file (one per line, # for comments)
- Apply the same filters and planned hours to every dataset
- Write one JSON and one Markdown report per dataset

Example:
  adoptlens batch datasets.txt
  adoptlens batch datasets.txt --concurrency 4 --output-dir ./reports
  adoptlens batch datasets.txt --industry Retail --hours 120`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	addFilterFlags(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./adoptlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Analysis flags
	batchCmd.Flags().Float64Var(&batchHours, "hours", 100, "planned training hours for the productivity estimate")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable dataset cache (force fresh parse)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative generation")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	predicates, err := buildPredicates()
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)

	results, err := processor.ProcessManifest(ctx, manifest, predicates, batchHours)
	if err != nil {
		return err
	}

	succeeded, failed := 0, 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(result.Path), filepath.Ext(result.Path))
		jsonPath := filepath.Join(outputDir, base+".json")
		mdPath := filepath.Join(outputDir, base+".md")

		renderer := pipeline.NewRenderer(!noFooter)
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: write report: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: write markdown: %v\n", result.Path, err)
			continue
		}

		succeeded++
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s\n", result.Path, jsonPath)
		}
	}

	fmt.Printf("Batch complete: %d succeeded, %d failed (reports in %s)\n", succeeded, failed, outputDir)
	if failed > 0 {
		return fmt.Errorf("%d of %d datasets failed", failed, len(results))
	}
	return nil
}
