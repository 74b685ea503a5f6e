package config

import (
	"fmt"
	"os"
	"slices"
	"time"
)

const (
	EnvAnalyzerMode    = "BRANDGUARD_ANALYZER_MODE"
	EnvAnalyzerModel   = "BRANDGUARD_ANALYZER_MODEL"
	EnvAnalyzerAPIKey  = "BRANDGUARD_ANALYZER_API_KEY"
	EnvAnalyzerBaseURL = "BRANDGUARD_ANALYZER_BASE_URL"
	EnvAnalyzerTimeout = "BRANDGUARD_ANALYZER_TIMEOUT"
)

// Analyzer modes. The openai mode performs real completion-API analysis;
// the stub mode synthesizes a deterministic placeholder result for demos and
// tests. Selection is explicit — the service never falls back from one mode
// to the other at runtime.
const (
	AnalyzerModeOpenAI = "openai"
	AnalyzerModeStub   = "stub"
)

var analyzerModes = []string{AnalyzerModeOpenAI, AnalyzerModeStub}

// AnalyzerConfig holds compliance analyzer parameters.
type AnalyzerConfig struct {
	Mode    string `toml:"mode"`
	Model   string `toml:"model"`
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *AnalyzerConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AnalyzerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AnalyzerConfig) Merge(overlay *AnalyzerConfig) {
	if overlay.Mode != "" {
		c.Mode = overlay.Mode
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *AnalyzerConfig) loadDefaults() {
	if c.Mode == "" {
		c.Mode = AnalyzerModeOpenAI
	}
	if c.Model == "" {
		c.Model = "gpt-4"
	}
	if c.Timeout == "" {
		c.Timeout = "2m"
	}
}

func (c *AnalyzerConfig) loadEnv() {
	if v := os.Getenv(EnvAnalyzerMode); v != "" {
		c.Mode = v
	}
	if v := os.Getenv(EnvAnalyzerModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvAnalyzerAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvAnalyzerBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAnalyzerTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *AnalyzerConfig) validate() error {
	if !slices.Contains(analyzerModes, c.Mode) {
		return fmt.Errorf("invalid mode: %q", c.Mode)
	}
	if c.Mode == AnalyzerModeOpenAI && c.APIKey == "" {
		return fmt.Errorf("api_key required in openai mode")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
