package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkravets/adoptlens/internal/model"
)

// Provider defines the interface for narrative LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Narrate generates a prose narrative of an analysis report
	Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// NarrateRequest contains the input for narrative generation
type NarrateRequest struct {
	// Report is the computed analysis to narrate. The narrative describes
	// these numbers; it never changes or extends them.
	Report model.Report

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// NarrateResponse contains the LLM's narrative output
type NarrateResponse struct {
	// Text is the generated narrative
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// RequestsPerMinute caps API calls across batch runs
	RequestsPerMinute float64

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:          c.Provider,
		Model:             c.Model,
		APIKey:            c.APIKey,
		BaseURL:           c.BaseURL,
		Timeout:           c.Timeout,
		MaxTokens:         c.MaxTokens,
		RequestsPerMinute: c.RequestsPerMinute,
		HTTPProxy:         c.HTTPProxy,
		HTTPSProxy:        c.HTTPSProxy,
	}
}

// BuildPrompt constructs the default narration prompt. The prompt embeds the
// computed figures and forbids the model from inventing statistics.
func BuildPrompt(report model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are narrating a GenAI adoption analysis report. The statistics below were
computed deterministically from the dataset - they are the only numbers you
may use.

CRITICAL RULES:
1. Use ONLY the figures listed below. DO NOT invent, extrapolate, or adjust numbers.
2. Describe observed averages, not causal claims. Say "companies in this
   selection averaged X" rather than "the tool causes X".
3. If a figure is absent, say so rather than estimating.

Computed figures:
- Rows in selection: %d
- Distinct companies: %d
- Mean productivity change: %.2f%%
- Mean training hours: %.2f
`, report.Summary.Rows, report.Summary.Companies,
		report.Summary.MeanProductivityChange, report.Summary.MeanTrainingHours)

	for _, tc := range report.ToolUsage {
		fmt.Fprintf(&b, "- %s: %d companies\n", tc.Tool, tc.Count)
	}
	for _, tm := range report.ToolProductivity {
		fmt.Fprintf(&b, "- %s mean productivity change: %.2f%%\n", tm.Tool, tm.Mean)
	}

	if rec := report.Recommendation; rec != nil && !rec.NoData {
		fmt.Fprintf(&b, `- Best tool: %s (mean %.2f%% over %d rows)
- Planned training hours: %.0f
- Estimated productivity change: %.2f%% (%s estimate, window %.0f hours)
`, rec.BestTool, rec.BestToolMean, rec.BestToolCount,
			rec.PlannedHours, rec.EstimateValue, rec.EstimateKind, rec.WindowSize)
	}

	b.WriteString("\nProvide a 3-4 sentence narrative of these findings.")
	return b.String()
}
