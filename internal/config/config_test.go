package config

import (
	"testing"
	"time"
)

func TestLoadAPIConfigDefaults(t *testing.T) {
	config, err := LoadAPIConfig()
	if err != nil {
		t.Fatalf("LoadAPIConfig: %v", err)
	}

	if config.BaseURL == "" {
		t.Error("BaseURL should have a default")
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", config.Timeout)
	}
	if config.RetryCount != 3 {
		t.Errorf("RetryCount = %d, want 3", config.RetryCount)
	}
}

func TestLoadAPIConfigFromEnv(t *testing.T) {
	t.Setenv("VENDATERM_API_URL", "https://staging.vendaterm.app")
	t.Setenv("VENDATERM_TIMEOUT", "10s")
	t.Setenv("VENDATERM_RETRY_COUNT", "5")

	config, err := LoadAPIConfig()
	if err != nil {
		t.Fatalf("LoadAPIConfig: %v", err)
	}

	if config.BaseURL != "https://staging.vendaterm.app" {
		t.Errorf("BaseURL = %q", config.BaseURL)
	}
	if config.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", config.Timeout)
	}
	if config.RetryCount != 5 {
		t.Errorf("RetryCount = %d", config.RetryCount)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  APIConfig
		wantErr bool
	}{
		{"valid", APIConfig{BaseURL: "https://api.example.com", Timeout: time.Second, RetryCount: 3, CacheTTL: time.Second}, false},
		{"bad url", APIConfig{BaseURL: "not a url", Timeout: time.Second, RetryCount: 3, CacheTTL: time.Second}, true},
		{"bad scheme", APIConfig{BaseURL: "ftp://api.example.com", Timeout: time.Second, RetryCount: 3, CacheTTL: time.Second}, true},
		{"zero timeout", APIConfig{BaseURL: "https://api.example.com", Timeout: 0, RetryCount: 3, CacheTTL: time.Second}, true},
		{"negative retries", APIConfig{BaseURL: "https://api.example.com", Timeout: time.Second, RetryCount: -1, CacheTTL: time.Second}, true},
	}

	for _, tt := range tests {
		err := tt.config.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestToClientConfig(t *testing.T) {
	config := &APIConfig{
		BaseURL:    "https://api.example.com",
		Timeout:    10 * time.Second,
		RetryCount: 2,
		CacheTTL:   time.Minute,
	}

	clientConfig := config.ToClientConfig()
	if clientConfig.BaseURL != config.BaseURL {
		t.Errorf("BaseURL = %q", clientConfig.BaseURL)
	}
	if clientConfig.Timeout != config.Timeout {
		t.Errorf("Timeout = %v", clientConfig.Timeout)
	}
	if clientConfig.RetryDelay <= 0 {
		t.Error("RetryDelay should default to a positive value")
	}
	if clientConfig.CacheTTL != config.CacheTTL {
		t.Errorf("CacheTTL = %v, want %v", clientConfig.CacheTTL, config.CacheTTL)
	}
}

func TestCacheTTLFromEnvReachesClientConfig(t *testing.T) {
	t.Setenv("VENDATERM_CACHE_TTL", "5s")

	config, err := LoadAPIConfig()
	if err != nil {
		t.Fatalf("LoadAPIConfig: %v", err)
	}

	if config.CacheTTL != 5*time.Second {
		t.Errorf("CacheTTL = %v, want 5s", config.CacheTTL)
	}
	if got := config.ToClientConfig().CacheTTL; got != 5*time.Second {
		t.Errorf("ToClientConfig().CacheTTL = %v, want 5s", got)
	}
}
