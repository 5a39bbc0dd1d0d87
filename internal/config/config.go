package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// HTTP server settings
	Port string

	// Gemini settings. An empty API key is a normal operating mode:
	// summaries degrade to deterministic truncation.
	GeminiAPIKey string
	GeminiModel  string

	// RSS settings
	FeedsConfigPath string
	FetchTimeout    time.Duration

	// Pipeline settings
	TopItems           int           // items enriched with AI summaries per run
	SummaryConcurrency int           // max in-flight Gemini calls
	CacheTTL           time.Duration // per-language news cache lifetime

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		Port:               "8080",
		GeminiModel:        "gemini-1.5-flash",
		FeedsConfigPath:    "configs/feeds.yaml",
		FetchTimeout:       30 * time.Second,
		TopItems:           20,
		SummaryConcurrency: 8,
		CacheTTL:           10 * time.Minute,
	}

	// Load from environment
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.GeminiModel = getEnvOrDefault("GEMINI_MODEL", cfg.GeminiModel)
	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)

	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("SUMMARY_CONCURRENCY"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.SummaryConcurrency = val
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.TopItems <= 0 {
		return fmt.Errorf("TopItems must be positive")
	}
	if c.SummaryConcurrency <= 0 {
		return fmt.Errorf("SummaryConcurrency must be positive")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CacheTTL must be positive")
	}
	return nil
}
