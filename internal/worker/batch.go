package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mkravets/adoptlens/internal/model"
)

// Analyzer runs the analysis pipeline for one dataset file.
type Analyzer interface {
	Analyze(ctx context.Context, path string, predicates model.PredicateSet, plannedHours float64) (*model.Report, error)
}

// RunJob analyzes one dataset file.
type RunJob struct {
	Path         string
	Predicates   model.PredicateSet
	PlannedHours float64
	Analyzer     Analyzer
}

// Execute runs the analysis for the job's dataset.
func (j *RunJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.Analyze(ctx, j.Path, j.Predicates, j.PlannedHours)
	return &RunResult{Path: j.Path, Report: report, Error: err}
}

// RunResult is the outcome of analyzing one dataset file.
type RunResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// Err returns the analysis error, if any.
func (r *RunResult) Err() error { return r.Error }

// BatchProcessor analyzes multiple dataset files concurrently. Each job owns
// its own table, so no state is shared across workers.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessPaths analyzes the given dataset files concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, predicates model.PredicateSet, plannedHours float64) []*RunResult {
	if len(paths) == 0 {
		return []*RunResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&RunJob{
			Path:         path,
			Predicates:   predicates,
			PlannedHours: plannedHours,
			Analyzer:     b.analyzer,
		})
	}

	results := pool.Wait()

	runResults := make([]*RunResult, 0, len(results))
	for _, result := range results {
		runResults = append(runResults, result.(*RunResult))
	}
	return runResults
}

// ProcessManifest reads dataset paths from a manifest file and analyzes them.
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath string, predicates model.PredicateSet, plannedHours float64) ([]*RunResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return b.ProcessPaths(ctx, paths, predicates, plannedHours), nil
}

// ReadPathsFromFile reads dataset paths from a file (one per line), skipping
// blank lines and # comments, and deduplicating.
func ReadPathsFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}
