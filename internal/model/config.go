package model

import "time"

// Config holds the full application configuration.
// Hierarchy (highest to lowest priority): CLI flags, ADOPTLENS_* env vars,
// config file (~/.adoptlens/config.yaml), defaults.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" json:"dataset"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	LLM     LLMConfig     `yaml:"llm" json:"llm"`
}

// DatasetConfig controls loading and caching of parsed tables.
type DatasetConfig struct {
	CacheEnabled bool          `yaml:"cache_enabled" json:"cache_enabled"`
	CacheTTL     time.Duration `yaml:"cache_ttl" json:"cache_ttl"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig configures the optional narrative provider.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "openai", "ollama", "" (disabled)
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // from env only, never persisted
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`

	// RequestsPerMinute caps API calls across batch runs.
	RequestsPerMinute float64 `yaml:"requests_per_minute" json:"requests_per_minute"`

	HTTPProxy  string `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" json:"https_proxy"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			CacheEnabled: true,
			CacheTTL:     15 * time.Minute,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:          "", // disabled by default
			Timeout:           30,
			MaxTokens:         600,
			RequestsPerMinute: 20,
		},
	}
}
