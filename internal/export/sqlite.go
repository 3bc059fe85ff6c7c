package export

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mkravets/adoptlens/internal/model"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS adopt_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	report_id TEXT NOT NULL,
	company TEXT NOT NULL,
	industry TEXT NOT NULL,
	country TEXT NOT NULL,
	tool TEXT NOT NULL,
	adoption_year INTEGER NOT NULL,
	employees_impacted INTEGER NOT NULL,
	new_roles INTEGER NOT NULL,
	training_hours REAL NOT NULL,
	productivity_change REAL NOT NULL,
	sentiment TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tool_stats (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	report_id TEXT NOT NULL,
	tool TEXT NOT NULL,
	companies INTEGER NOT NULL,
	mean_productivity_change REAL NOT NULL,
	exported_at TIMESTAMP NOT NULL
);
`

// toSQLite writes the filtered rows and per-tool statistics into a SQLite
// database, tagged with the report ID so repeated exports stay queryable.
func toSQLite(path string, view model.View, report *model.Report) (*Result, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertRecord, err := tx.Prepare(`INSERT INTO adopt_records
		(report_id, company, industry, country, tool, adoption_year,
		 employees_impacted, new_roles, training_hours, productivity_change, sentiment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare record insert: %w", err)
	}
	defer func() { _ = insertRecord.Close() }()

	for _, rec := range view {
		if _, err := insertRecord.Exec(report.ID, rec.Company, rec.Industry, rec.Country,
			rec.Tool, rec.AdoptionYear, rec.EmployeesImpacted, rec.NewRoles,
			rec.TrainingHours, rec.ProductivityChange, rec.Sentiment); err != nil {
			return nil, fmt.Errorf("insert record: %w", err)
		}
	}

	now := time.Now().UTC()
	usage := make(map[string]int, len(report.ToolUsage))
	for _, tc := range report.ToolUsage {
		usage[tc.Tool] = tc.Count
	}
	for _, tm := range report.ToolProductivity {
		if _, err := tx.Exec(`INSERT INTO tool_stats
			(report_id, tool, companies, mean_productivity_change, exported_at)
			VALUES (?, ?, ?, ?, ?)`,
			report.ID, tm.Tool, usage[tm.Tool], tm.Mean, now); err != nil {
			return nil, fmt.Errorf("insert tool stats: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &Result{Type: "sqlite", Path: path, RecordCount: len(view), ExportedAt: now}, nil
}
