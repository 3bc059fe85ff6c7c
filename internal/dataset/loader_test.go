package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mkravets/adoptlens/internal/model"
)

const sampleCSV = `Company Name,Industry,Country,GenAI Tool,Adoption Year,Number of Employees Impacted,New Roles Created,Training Hours Provided,Productivity Change (%),Employee Sentiment
Acme,Retail,USA,ChatGPT,2022,120,3,40.5,7.2,Positive
Globex,Finance,UK,Copilot,2023,300,5,80,12.0,Neutral
`

func TestParseReader_ValidCSV(t *testing.T) {
	table, err := parseReader("test.csv", strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(table))
	}

	rec := table[0]
	if rec.Company != "Acme" {
		t.Errorf("Expected company Acme, got %s", rec.Company)
	}
	if rec.Tool != "ChatGPT" {
		t.Errorf("Expected tool ChatGPT, got %s", rec.Tool)
	}
	if rec.AdoptionYear != 2022 {
		t.Errorf("Expected year 2022, got %d", rec.AdoptionYear)
	}
	if rec.TrainingHours != 40.5 {
		t.Errorf("Expected 40.5 training hours, got %f", rec.TrainingHours)
	}
	if rec.ProductivityChange != 7.2 {
		t.Errorf("Expected productivity change 7.2, got %f", rec.ProductivityChange)
	}
	if rec.Sentiment != "Positive" {
		t.Errorf("Expected sentiment Positive, got %s", rec.Sentiment)
	}
}

func TestParseReader_MissingColumn(t *testing.T) {
	csv := "Company Name,Industry,Country\nAcme,Retail,USA\n"

	_, err := parseReader("test.csv", strings.NewReader(csv))
	if err == nil {
		t.Fatal("Expected error for missing columns")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %T", err)
	}
	if !strings.Contains(loadErr.Reason, "missing column") {
		t.Errorf("Expected missing column reason, got %q", loadErr.Reason)
	}
}

func TestParseReader_InvalidRow(t *testing.T) {
	csv := strings.Replace(sampleCSV, "2022", "not-a-year", 1)

	_, err := parseReader("test.csv", strings.NewReader(csv))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %v", err)
	}
	if loadErr.Row != 1 {
		t.Errorf("Expected row 1, got %d", loadErr.Row)
	}
	if !strings.Contains(loadErr.Reason, "invalid adoption year") {
		t.Errorf("Expected adoption year reason, got %q", loadErr.Reason)
	}
}

func TestParseReader_NegativeValueRejected(t *testing.T) {
	csv := strings.Replace(sampleCSV, "40.5", "-40.5", 1)

	_, err := parseReader("test.csv", strings.NewReader(csv))
	if err == nil {
		t.Fatal("Expected error for negative training hours")
	}
}

func TestParseReader_EmptyDataset(t *testing.T) {
	csv := sampleCSV[:strings.Index(sampleCSV, "\n")+1]

	_, err := parseReader("test.csv", strings.NewReader(csv))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %v", err)
	}
	if !strings.Contains(loadErr.Reason, "no rows") {
		t.Errorf("Expected no-rows reason, got %q", loadErr.Reason)
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"Company Name":            "company_name",
		"Productivity Change (%)": "productivity_change",
		"  GenAI Tool  ":          "genai_tool",
		"adoption-year":           "adoption_year",
		"EMPLOYEE_SENTIMENT":      "employee_sentiment",
	}

	for in, want := range cases {
		if got := normalizeHeader(in); got != want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoader_Load_CachesUnchangedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adoption.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := NewLoader(model.DatasetConfig{CacheEnabled: true, CacheTTL: time.Minute})

	first, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Corrupt the file without changing its mtime; a cache hit ignores it.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat fixture: %v", err)
	}
	if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	if err := os.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
		t.Fatalf("restore mtime: %v", err)
	}

	second, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Expected cached load to succeed, got %v", err)
	}
	if len(second) != len(first) {
		t.Errorf("Expected cached table with %d records, got %d", len(first), len(second))
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := NewLoader(model.DatasetConfig{CacheEnabled: false, CacheTTL: time.Minute})

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.csv"))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %v", err)
	}
}

func TestCollectFacets(t *testing.T) {
	table, err := parseReader("test.csv", strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	facets := CollectFacets(table)
	if len(facets.Industries) != 2 {
		t.Errorf("Expected 2 industries, got %v", facets.Industries)
	}
	if facets.MinYear != 2022 || facets.MaxYear != 2023 {
		t.Errorf("Expected year span [2022, 2023], got [%d, %d]", facets.MinYear, facets.MaxYear)
	}
	if len(facets.Tools) != 2 || facets.Tools[0] != "ChatGPT" {
		t.Errorf("Expected sorted tools starting with ChatGPT, got %v", facets.Tools)
	}
}
