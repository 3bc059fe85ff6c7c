package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mkravets/adoptlens/internal/model"
)

type mockAnalyzer struct {
	mu     sync.Mutex
	calls  []string
	failOn string
}

func (m *mockAnalyzer) Analyze(ctx context.Context, path string, predicates model.PredicateSet, plannedHours float64) (*model.Report, error) {
	m.mu.Lock()
	m.calls = append(m.calls, path)
	m.mu.Unlock()

	if path == m.failOn {
		return nil, errors.New("bad dataset")
	}
	return &model.Report{Source: path}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	analyzer := &mockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 3)

	paths := []string{"a.csv", "b.csv", "c.csv"}
	results := processor.ProcessPaths(context.Background(), paths, model.PredicateSet{}, 100)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	seen := make(map[string]bool)
	for _, result := range results {
		if result.Err() != nil {
			t.Errorf("Expected no error for %s, got %v", result.Path, result.Err())
		}
		if result.Report == nil || result.Report.Source != result.Path {
			t.Errorf("Expected report for %s", result.Path)
		}
		seen[result.Path] = true
	}
	for _, path := range paths {
		if !seen[path] {
			t.Errorf("Expected a result for %s", path)
		}
	}
}

func TestBatchProcessor_PartialFailure(t *testing.T) {
	analyzer := &mockAnalyzer{failOn: "b.csv"}
	processor := NewBatchProcessor(analyzer, 2)

	results := processor.ProcessPaths(context.Background(), []string{"a.csv", "b.csv"}, model.PredicateSet{}, 100)

	var failures int
	for _, result := range results {
		if result.Err() != nil {
			failures++
			if result.Path != "b.csv" {
				t.Errorf("Expected failure on b.csv, got %s", result.Path)
			}
		}
	}
	if failures != 1 {
		t.Errorf("Expected exactly 1 failure, got %d", failures)
	}
}

func TestBatchProcessor_ManyPathsSingleWorker(t *testing.T) {
	analyzer := &mockAnalyzer{}
	processor := NewBatchProcessor(analyzer, 1)

	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("dataset-%d.csv", i)
	}

	done := make(chan []*RunResult)
	go func() {
		done <- processor.ProcessPaths(context.Background(), paths, model.PredicateSet{}, 100)
	}()

	select {
	case results := <-done:
		if len(results) != len(paths) {
			t.Errorf("Expected %d results, got %d", len(paths), len(results))
		}
		for _, result := range results {
			if result.Err() != nil {
				t.Errorf("Expected no error for %s, got %v", result.Path, result.Err())
			}
		}
	case <-time.After(3 * time.Second):
		t.Fatal("ProcessPaths stalled with a manifest larger than the worker buffers")
	}
}

func TestBatchProcessor_EmptyPaths(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)

	results := processor.ProcessPaths(context.Background(), nil, model.PredicateSet{}, 100)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "datasets.txt")
	content := strings.Join([]string{
		"# quarterly datasets",
		"q1.csv",
		"",
		"q2.csv",
		"q1.csv",
	}, "\n")
	if err := os.WriteFile(manifest, []byte(content), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	paths, err := ReadPathsFromFile(manifest)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 deduplicated paths, got %d: %v", len(paths), paths)
	}
	if paths[0] != "q1.csv" || paths[1] != "q2.csv" {
		t.Errorf("Expected [q1.csv q2.csv], got %v", paths)
	}
}

func TestProcessManifest_MissingFile(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)

	_, err := processor.ProcessManifest(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), model.PredicateSet{}, 100)
	if err == nil {
		t.Error("Expected error for missing manifest")
	}
}
