package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/mkravets/adoptlens/internal/model"
)

// Summarizer wraps a provider and produces the optional report narrative.
// API calls are rate limited so batch runs stay within provider quotas.
type Summarizer struct {
	provider Provider
	limiter  *rate.Limiter
	config   Config
}

// NewSummarizer creates a summarizer from configuration. Returns nil without
// error when no provider is configured.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	rpm := config.RequestsPerMinute
	if rpm <= 0 {
		rpm = 20
	}

	return &Summarizer{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rpm/60.0), 1),
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateNarrative produces the prose narrative for a report. The narrative
// is generated after all statistics are computed and never affects them.
func (s *Summarizer) GenerateNarrative(ctx context.Context, report model.Report) (*model.LLMNarrative, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.provider.Narrate(ctx, NarrateRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("narrate: %w", err)
	}

	narrative := &model.LLMNarrative{
		Enabled:  true,
		Provider: s.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}

	if resp.Text == "" {
		narrative.Warnings = append(narrative.Warnings, "provider returned an empty narrative")
	}

	return narrative, nil
}
