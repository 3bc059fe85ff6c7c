package pipeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/adoptlens/internal/engine"
	"github.com/mkravets/adoptlens/internal/model"
)

// BuildReport assembles the render-ready report from a filtered view and a
// recommendation. All numbers are computed here; renderers only format.
func BuildReport(source string, predicates model.PredicateSet, view model.View, rec *model.Recommendation) *model.Report {
	report := &model.Report{
		ID:             uuid.NewString(),
		Source:         source,
		GeneratedAt:    time.Now().UTC(),
		Predicates:     predicates,
		Summary:        buildSummary(view),
		Recommendation: rec,
	}

	counts := engine.CountBy(view, model.FieldTool)
	means := engine.MeanBy(view, model.FieldTool, model.MetricProductivityChange)

	tools := make([]string, 0, len(counts))
	for tool := range counts {
		tools = append(tools, tool)
	}
	sort.Strings(tools)

	for _, tool := range tools {
		report.ToolUsage = append(report.ToolUsage, model.ToolCount{Tool: tool, Count: counts[tool]})
		report.ToolProductivity = append(report.ToolProductivity, model.ToolMean{Tool: tool, Mean: means[tool]})
	}

	report.Scatter = make([]model.ScatterDot, 0, len(view))
	for _, r := range view {
		report.Scatter = append(report.Scatter, model.ScatterDot{
			Company:            r.Company,
			Tool:               r.Tool,
			TrainingHours:      r.TrainingHours,
			ProductivityChange: r.ProductivityChange,
		})
	}

	return report
}

func buildSummary(view model.View) model.Summary {
	s := model.Summary{
		Rows:      len(view),
		Companies: engine.DistinctCount(view, model.FieldCompany),
	}
	if len(view) == 0 {
		return s
	}
	// View is non-empty here, so the means cannot fail.
	s.MeanProductivityChange, _ = engine.Mean(view, model.MetricProductivityChange)
	s.MeanTrainingHours, _ = engine.Mean(view, model.MetricTrainingHours)
	return s
}
