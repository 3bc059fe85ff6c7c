// Package pipeline orchestrates the full analysis: load → filter → aggregate
// → recommend → render. The pipeline owns the collaborators; the core stays
// a pure function of (table, predicates) on every call.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/mkravets/adoptlens/internal/dataset"
	"github.com/mkravets/adoptlens/internal/engine"
	"github.com/mkravets/adoptlens/internal/export"
	"github.com/mkravets/adoptlens/internal/llm"
	"github.com/mkravets/adoptlens/internal/model"
	"github.com/mkravets/adoptlens/internal/recommend"
)

// Pipeline orchestrates the complete analysis process
type Pipeline struct {
	loader      *dataset.Loader
	recommender *recommend.Recommender
	renderer    *Renderer
	summarizer  *llm.Summarizer // Optional LLM narrator (nil if disabled)
	config      *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	// Create LLM summarizer if configured
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		loader:      dataset.NewLoader(cfg.Dataset),
		recommender: recommend.NewRecommender(),
		renderer:    NewRenderer(cfg.Output.IncludeFooter),
		summarizer:  summarizer,
		config:      cfg,
	}
}

// Analyze loads the dataset at path, applies the predicate set, and builds
// the full report including the recommendation for plannedHours.
func (p *Pipeline) Analyze(ctx context.Context, path string, predicates model.PredicateSet, plannedHours float64) (*model.Report, error) {
	table, err := p.loader.Load(path)
	if err != nil {
		return nil, err
	}

	view, err := engine.Apply(table, predicates)
	if err != nil {
		// ErrNoMatches passes through so the caller can prompt the user
		// to relax filters instead of showing an empty report.
		return nil, err
	}

	rec, err := p.recommender.Recommend(view, model.MetricProductivityChange, plannedHours)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	report := BuildReport(path, predicates, view, rec)

	// Generate LLM narrative if enabled (AFTER all statistics, never affects them)
	if p.summarizer.IsEnabled() {
		narrative, err := p.summarizer.GenerateNarrative(ctx, *report)
		if err != nil {
			// Don't fail the analysis, just warn
			fmt.Fprintf(os.Stderr, "Warning: LLM narrative generation failed: %v\n", err)
		} else if narrative != nil {
			report.LLM = narrative
		}
	}

	return report, nil
}

// LoadTable exposes cached loading for callers that drive the core directly
// (recommend-only runs, exporters).
func (p *Pipeline) LoadTable(path string) (model.Table, error) {
	return p.loader.Load(path)
}

// Export analyzes the dataset and writes the filtered rows plus tool
// statistics to outPath (.csv, .json, .db or .sqlite).
func (p *Pipeline) Export(ctx context.Context, path string, predicates model.PredicateSet, plannedHours float64, outPath string) (*export.Result, error) {
	table, err := p.loader.Load(path)
	if err != nil {
		return nil, err
	}

	view, err := engine.Apply(table, predicates)
	if err != nil {
		return nil, err
	}

	rec, err := p.recommender.Recommend(view, model.MetricProductivityChange, plannedHours)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	report := BuildReport(path, predicates, view, rec)
	return export.Export(outPath, view, report)
}

// RenderReport renders the report to the configured outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
