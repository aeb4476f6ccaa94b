package model

import "time"

// Config is the full application configuration
type Config struct {
	LLM           LLMConfig         `yaml:"llm"`
	Cache         CacheConfig       `yaml:"cache"`
	Audit         AuditConfig       `yaml:"audit"`
	KnowledgeBase KBConfig          `yaml:"knowledge_base"`
	Concurrency   ConcurrencyConfig `yaml:"concurrency"`
	RateLimiting  RateLimitConfig   `yaml:"rate_limiting"`
	Output        OutputConfig      `yaml:"output"`
}

// LLMConfig configures the optional enrichment provider
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // openai, anthropic, "" = disabled
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Timeout     int     `yaml:"timeout"` // Seconds
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
}

// CacheConfig configures enrichment response caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// AuditConfig configures the analysis audit trail
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// KBConfig configures the knowledge base store
type KBConfig struct {
	Path string `yaml:"path"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig throttles LLM API calls
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "", // Disabled by default
			Timeout:     30,
			MaxTokens:   4096,
			Temperature: 0.2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".clauseguard-cache",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Audit: AuditConfig{
			Enabled: true,
			Dir:     "audit_logs",
		},
		KnowledgeBase: KBConfig{
			Path: "knowledge_base.json",
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
