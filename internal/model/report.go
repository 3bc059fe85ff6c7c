package model

import "time"

// Report is the complete analysis output for one dataset + predicate set.
// Everything the presentation layer shows comes from this struct.
type Report struct {
	ID          string       `json:"id"`          // unique run identifier
	Source      string       `json:"source"`      // dataset path that was analyzed
	GeneratedAt time.Time    `json:"generated_at"`
	Predicates  PredicateSet `json:"predicates"`

	Summary Summary `json:"summary"` // headline KPIs over the filtered view

	ToolUsage        []ToolCount  `json:"tool_usage"`        // companies per tool
	ToolProductivity []ToolMean   `json:"tool_productivity"` // mean productivity change per tool
	Scatter          []ScatterDot `json:"scatter"`           // training hours vs productivity change

	Recommendation *Recommendation `json:"recommendation,omitempty"`

	LLM *LLMNarrative `json:"llm,omitempty"` // optional narrative, never affects numbers
}

// Summary holds the dashboard's three headline metrics.
type Summary struct {
	Rows                   int     `json:"rows"`
	Companies              int     `json:"companies"` // distinct company count
	MeanProductivityChange float64 `json:"mean_productivity_change"`
	MeanTrainingHours      float64 `json:"mean_training_hours"`
}

// ToolCount is one bar of the "companies using each tool" chart.
type ToolCount struct {
	Tool  string `json:"tool"`
	Count int    `json:"count"`
}

// ToolMean is one bar of the "average productivity change by tool" chart.
type ToolMean struct {
	Tool string  `json:"tool"`
	Mean float64 `json:"mean"`
}

// ScatterDot is one point of the training-hours vs productivity scatter.
type ScatterDot struct {
	Company            string  `json:"company"`
	Tool               string  `json:"tool"`
	TrainingHours      float64 `json:"training_hours"`
	ProductivityChange float64 `json:"productivity_change"`
}

// EstimateKind says how the productivity estimate was derived.
type EstimateKind string

const (
	// EstimateWindowed means the estimate averages rows whose training hours
	// fall inside the tolerance window around the planned investment.
	EstimateWindowed EstimateKind = "windowed"
	// EstimateFallback means no rows fell inside the window and the estimate
	// averages the entire view instead.
	EstimateFallback EstimateKind = "fallback"
)

// Recommendation answers "which tool performs best, and what productivity
// change should I expect at a given training-hour investment".
type Recommendation struct {
	NoData bool `json:"no_data"` // view was empty; nothing to recommend

	BestTool      string  `json:"best_tool,omitempty"`
	BestToolMean  float64 `json:"best_tool_mean,omitempty"`
	BestToolCount int     `json:"best_tool_count,omitempty"`

	PlannedHours  float64      `json:"planned_hours"`
	EstimateValue float64      `json:"estimate_value,omitempty"`
	EstimateKind  EstimateKind `json:"estimate_kind,omitempty"`
	WindowSize    float64      `json:"window_size,omitempty"`
}

// LLMNarrative contains the optional model-written prose summary.
// CRITICAL: this never affects computed statistics and is clearly separated.
type LLMNarrative struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Text     string   `json:"text,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
