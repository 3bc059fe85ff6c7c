// Package export writes filtered rows and grouped statistics to downstream
// artifacts: CSV, JSON, or a SQLite database.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mkravets/adoptlens/internal/model"
)

// Result describes one completed export.
type Result struct {
	Type        string    `json:"type"` // "csv", "json", "sqlite"
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	ExportedAt  time.Time `json:"exported_at"`
}

// Export writes the report's filtered rows and tool statistics to path,
// dispatching on the file extension (.csv, .json, .db/.sqlite).
func Export(path string, view model.View, report *model.Report) (*Result, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return toCSV(path, view)
	case ".json":
		return toJSON(path, report)
	case ".db", ".sqlite":
		return toSQLite(path, view, report)
	default:
		return nil, fmt.Errorf("unsupported export target %q (use .csv, .json, .db or .sqlite)", path)
	}
}

var csvHeader = []string{
	"company", "industry", "country", "tool", "adoption_year",
	"employees_impacted", "new_roles", "training_hours",
	"productivity_change", "sentiment",
}

func toCSV(path string, view model.View) (*Result, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, rec := range view {
		row := []string{
			rec.Company,
			rec.Industry,
			rec.Country,
			rec.Tool,
			strconv.Itoa(rec.AdoptionYear),
			strconv.Itoa(rec.EmployeesImpacted),
			strconv.Itoa(rec.NewRoles),
			strconv.FormatFloat(rec.TrainingHours, 'f', -1, 64),
			strconv.FormatFloat(rec.ProductivityChange, 'f', -1, 64),
			rec.Sentiment,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}

	return &Result{Type: "csv", Path: path, RecordCount: len(view), ExportedAt: time.Now().UTC()}, nil
}

func toJSON(path string, report *model.Report) (*Result, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	return &Result{Type: "json", Path: path, RecordCount: report.Summary.Rows, ExportedAt: time.Now().UTC()}, nil
}
