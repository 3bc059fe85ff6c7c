package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mkravets/adoptlens/internal/model"
)

// Renderer writes reports as JSON, Markdown, and a terminal digest.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to path.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown document to path, with
// sections mirroring the dashboard: KPIs, tool usage, tool productivity,
// and the recommendation.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	b.WriteString("# GenAI Adoption Impact Report\n\n")
	fmt.Fprintf(&b, "- Source: `%s`\n", report.Source)
	fmt.Fprintf(&b, "- Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Report ID: %s\n\n", report.ID)

	writeFilters(&b, report.Predicates)

	b.WriteString("## Key metrics\n\n")
	fmt.Fprintf(&b, "| Companies | Avg Productivity Change (%%) | Avg Training Hours |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %.1f | %.0f |\n\n",
		report.Summary.Companies,
		report.Summary.MeanProductivityChange,
		report.Summary.MeanTrainingHours)

	b.WriteString("## Companies using each GenAI tool\n\n")
	b.WriteString("| Tool | Companies |\n|---|---|\n")
	for _, tc := range report.ToolUsage {
		fmt.Fprintf(&b, "| %s | %d |\n", tc.Tool, tc.Count)
	}
	b.WriteString("\n")

	b.WriteString("## Average productivity change by GenAI tool\n\n")
	b.WriteString("| Tool | Avg Productivity Change (%) |\n|---|---|\n")
	for _, tm := range report.ToolProductivity {
		fmt.Fprintf(&b, "| %s | %.1f |\n", tm.Tool, tm.Mean)
	}
	b.WriteString("\n")

	writeRecommendation(&b, report.Recommendation)

	if report.LLM != nil && report.LLM.Enabled {
		b.WriteString("## Narrative (LLM-generated)\n\n")
		b.WriteString("> Generated by " + report.LLM.Provider + "/" + report.LLM.Model +
			". Prose only - every number above was computed deterministically.\n\n")
		b.WriteString(report.LLM.Text + "\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by AdoptLens\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a short digest to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("Rows: %d  Companies: %d\n", report.Summary.Rows, report.Summary.Companies)
	fmt.Printf("Avg productivity change: %.1f%%  Avg training hours: %.0f\n",
		report.Summary.MeanProductivityChange, report.Summary.MeanTrainingHours)

	rec := report.Recommendation
	if rec == nil {
		return
	}
	if rec.NoData {
		fmt.Println("Recommendation: no data for the current selection.")
		return
	}
	fmt.Printf("Recommendation: %s (avg %.1f%% across %d companies)\n",
		rec.BestTool, rec.BestToolMean, rec.BestToolCount)
	fmt.Printf("At %.0f training hours expect about %.1f%% productivity change (%s estimate)\n",
		rec.PlannedHours, rec.EstimateValue, rec.EstimateKind)
}

func writeFilters(b *strings.Builder, p model.PredicateSet) {
	b.WriteString("## Active filters\n\n")
	if p.IsEmpty() {
		b.WriteString("None - full dataset.\n\n")
		return
	}
	if len(p.Industries) > 0 {
		fmt.Fprintf(b, "- Industry: %s\n", strings.Join(p.Industries, ", "))
	}
	if len(p.Countries) > 0 {
		fmt.Fprintf(b, "- Country: %s\n", strings.Join(p.Countries, ", "))
	}
	if len(p.Tools) > 0 {
		fmt.Fprintf(b, "- Tool: %s\n", strings.Join(p.Tools, ", "))
	}
	if p.Years != nil {
		fmt.Fprintf(b, "- Adoption year: %d-%d\n", p.Years.Min, p.Years.Max)
	}
	b.WriteString("\n")
}

func writeRecommendation(b *strings.Builder, rec *model.Recommendation) {
	if rec == nil {
		return
	}
	b.WriteString("## Recommendation\n\n")
	if rec.NoData {
		b.WriteString("No data in the current selection - relax a filter to get a recommendation.\n\n")
		return
	}
	fmt.Fprintf(b, "**%s** shows the highest average productivity change (%.1f%% across %d companies).\n\n",
		rec.BestTool, rec.BestToolMean, rec.BestToolCount)
	fmt.Fprintf(b, "At a planned investment of %.0f training hours, expect a productivity change of about **%.1f%%** ",
		rec.PlannedHours, rec.EstimateValue)
	if rec.EstimateKind == model.EstimateWindowed {
		fmt.Fprintf(b, "(based on companies within ±%.0f training hours of your plan).\n\n", rec.WindowSize)
	} else {
		b.WriteString("(fallback estimate over the whole selection - no company trained within the comparison window).\n\n")
	}
}
