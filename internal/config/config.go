package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"tundeajayi/vendaterm/internal/api"
)

type APIConfig struct {
	BaseURL    string        `json:"base_url"`
	Timeout    time.Duration `json:"timeout"`
	RetryCount int           `json:"retry_count"`
	CacheTTL   time.Duration `json:"cache_ttl"`
}

func LoadAPIConfig() (*APIConfig, error) {
	config := &APIConfig{
		BaseURL:    getEnvOrDefault("VENDATERM_API_URL", api.DefaultBaseURL),
		Timeout:    parseDurationOrDefault("VENDATERM_TIMEOUT", 30*time.Second),
		RetryCount: parseIntOrDefault("VENDATERM_RETRY_COUNT", 3),
		CacheTTL:   parseDurationOrDefault("VENDATERM_CACHE_TTL", 30*time.Second),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *APIConfig) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid API URL: %s", c.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("API URL must be http or https, got: %s", parsed.Scheme)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	if c.RetryCount < 0 {
		return fmt.Errorf("retry count must be non-negative, got: %d", c.RetryCount)
	}

	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %v", c.CacheTTL)
	}

	return nil
}

func (c *APIConfig) ToClientConfig() api.Config {
	return api.Config{
		BaseURL:    c.BaseURL,
		Timeout:    c.Timeout,
		RetryCount: c.RetryCount,
		RetryDelay: 2 * time.Second,
		CacheTTL:   c.CacheTTL,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func IsDebugEnabled() bool {
	return os.Getenv("VENDATERM_DEBUG") == "true" || os.Getenv("VENDATERM_DEBUG") == "1"
}
