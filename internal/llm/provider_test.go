package llm

import (
	"strings"
	"testing"

	"github.com/mkravets/adoptlens/internal/model"
)

func TestBuildPrompt_EmbedsComputedFigures(t *testing.T) {
	report := model.Report{
		Summary: model.Summary{
			Rows:                   12,
			Companies:              9,
			MeanProductivityChange: 8.25,
			MeanTrainingHours:      55.5,
		},
		ToolUsage: []model.ToolCount{
			{Tool: "ChatGPT", Count: 7},
			{Tool: "Copilot", Count: 5},
		},
		ToolProductivity: []model.ToolMean{
			{Tool: "ChatGPT", Mean: 6.5},
			{Tool: "Copilot", Mean: 10.7},
		},
		Recommendation: &model.Recommendation{
			BestTool:      "Copilot",
			BestToolMean:  10.7,
			BestToolCount: 5,
			PlannedHours:  100,
			EstimateValue: 9.1,
			EstimateKind:  model.EstimateWindowed,
			WindowSize:    50,
		},
	}

	prompt := BuildPrompt(report)

	for _, want := range []string{
		"Rows in selection: 12",
		"Distinct companies: 9",
		"Mean productivity change: 8.25%",
		"ChatGPT: 7 companies",
		"Copilot mean productivity change: 10.70%",
		"Best tool: Copilot",
		"Planned training hours: 100",
		"windowed estimate, window 50 hours",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}

	if !strings.Contains(prompt, "DO NOT invent") {
		t.Error("Expected prompt to forbid invented numbers")
	}
}

func TestBuildPrompt_SkipsNoDataRecommendation(t *testing.T) {
	report := model.Report{
		Recommendation: &model.Recommendation{NoData: true, PlannedHours: 100},
	}

	prompt := BuildPrompt(report)
	if strings.Contains(prompt, "Best tool:") {
		t.Error("Expected no recommendation section for a no-data result")
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	_, err := NewProvider(Config{Provider: "mystery"})
	if err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNewProvider_DisabledReturnsNil(t *testing.T) {
	p, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p != nil {
		t.Error("Expected nil provider when disabled")
	}
}
