package model

import "time"

// Config is the full clauselens configuration tree
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	History     HistoryConfig     `yaml:"history" mapstructure:"history"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls fetching documents from URLs
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls analysis result caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"` // Disk cache directory ("" = memory only)
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig bounds the worker pools
type ConcurrencyConfig struct {
	ScoreWorkers int `yaml:"score_workers" mapstructure:"score_workers"` // Per-document clause scoring
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"` // Concurrent documents in batch mode
}

// LLMConfig configures the optional summarization/chat provider
type LLMConfig struct {
	Provider  string  `yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model     string  `yaml:"model" mapstructure:"model"`
	APIKey    string  `yaml:"-" mapstructure:"api_key"` // Never serialized to config output
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int     `yaml:"timeout" mapstructure:"timeout"` // Seconds per request
	MaxTokens int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RateRPS   float64 `yaml:"rate_rps" mapstructure:"rate_rps"` // Requests per second across all calls
}

// HistoryConfig controls persisted analysis history
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Limit   int    `yaml:"limit" mapstructure:"limit"` // Default number of entries listed
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
	NoColor       bool `yaml:"no_color" mapstructure:"no_color"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       60 * time.Second,
			UserAgent:     "clauselens/0.1 (+https://github.com/clauselens/clauselens)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			ScoreWorkers: 4,
			BatchWorkers: 4,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 600,
			RateRPS:   1,
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   10,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
