// Package dataset turns the raw adoption CSV into a validated, normalized
// model.Table. Loading happens once per session; everything downstream treats
// the table as immutable.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mkravets/adoptlens/internal/cache"
	"github.com/mkravets/adoptlens/internal/model"
)

// Expected columns, after header normalization.
const (
	colCompany   = "company_name"
	colIndustry  = "industry"
	colCountry   = "country"
	colTool      = "genai_tool"
	colYear      = "adoption_year"
	colEmployees = "number_of_employees_impacted"
	colNewRoles  = "new_roles_created"
	colHours     = "training_hours_provided"
	colChange    = "productivity_change"
	colSentiment = "employee_sentiment"
)

var requiredColumns = []string{
	colCompany, colIndustry, colCountry, colTool, colYear,
	colEmployees, colNewRoles, colHours, colChange, colSentiment,
}

// LoadError is a fatal input problem: missing file, malformed header, or an
// invalid row. Rows failing validation never enter the table.
type LoadError struct {
	Path   string
	Row    int // 1-based data row index, 0 for file/header problems
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("load %s: row %d: %s", e.Path, e.Row, e.Reason)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader reads and caches parsed tables. The cache plays the role the
// original dashboard's cached data loader did: one parse per file state.
type Loader struct {
	cache   cache.Cache
	ttl     time.Duration
	enabled bool
}

// NewLoader creates a loader using the given dataset configuration.
func NewLoader(cfg model.DatasetConfig) *Loader {
	return &Loader{
		cache:   cache.NewMemoryCache(cfg.CacheTTL, 2*cfg.CacheTTL),
		ttl:     cfg.CacheTTL,
		enabled: cfg.CacheEnabled,
	}
}

// Load parses the CSV at path into a Table, serving repeat loads of an
// unchanged file from cache.
func (l *Loader) Load(path string) (model.Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	var key string
	if l.enabled {
		if info, err := os.Stat(abs); err == nil {
			key = cache.Key(abs, info.ModTime())
			if table, ok := l.cache.Get(key); ok {
				return table, nil
			}
		}
	}

	table, err := Parse(abs)
	if err != nil {
		return nil, err
	}

	if l.enabled && key != "" {
		l.cache.Set(key, table, l.ttl)
	}
	return table, nil
}

// Parse reads and validates the CSV at path without caching.
func Parse(path string) (model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot open dataset", Err: err}
	}
	defer func() { _ = f.Close() }()

	return parseReader(path, f)
}

func parseReader(path string, r io.Reader) (model.Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot read header", Err: err}
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[normalizeHeader(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("missing column %q", col)}
		}
	}

	var table model.Table
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &LoadError{Path: path, Row: row, Reason: "malformed row", Err: err}
		}

		rec, verr := buildRecord(fields, index)
		if verr != nil {
			return nil, &LoadError{Path: path, Row: row, Reason: verr.Error()}
		}
		table = append(table, rec)
	}

	if len(table) == 0 {
		return nil, &LoadError{Path: path, Reason: "dataset contains no rows"}
	}
	return table, nil
}

func buildRecord(fields []string, index map[string]int) (model.Record, error) {
	get := func(col string) string {
		i := index[col]
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	rec := model.Record{
		Company:   get(colCompany),
		Industry:  get(colIndustry),
		Country:   get(colCountry),
		Tool:      get(colTool),
		Sentiment: get(colSentiment),
	}

	year, err := strconv.Atoi(get(colYear))
	if err != nil {
		return rec, fmt.Errorf("invalid adoption year %q", get(colYear))
	}
	rec.AdoptionYear = year

	employees, err := strconv.Atoi(get(colEmployees))
	if err != nil {
		return rec, fmt.Errorf("invalid employees impacted %q", get(colEmployees))
	}
	rec.EmployeesImpacted = employees

	roles, err := strconv.Atoi(get(colNewRoles))
	if err != nil {
		return rec, fmt.Errorf("invalid new roles %q", get(colNewRoles))
	}
	rec.NewRoles = roles

	hours, err := strconv.ParseFloat(get(colHours), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid training hours %q", get(colHours))
	}
	rec.TrainingHours = hours

	change, err := strconv.ParseFloat(get(colChange), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid productivity change %q", get(colChange))
	}
	rec.ProductivityChange = change

	if err := validateRecord(rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// normalizeHeader converts "Productivity Change (%)" to "productivity_change":
// lowercase, drop quotes/parens/percent, collapse separators to underscores.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(`"`, "", "(", "", ")", "", "%", "").Replace(h)
	h = strings.TrimSpace(h)
	fields := strings.FieldsFunc(h, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	return strings.Join(fields, "_")
}
