package llm

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "openai" {
		t.Errorf("default provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4.1-nano" {
		t.Errorf("default openai model = %q", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("default timeout = %s", cfg.Timeout)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CODEGENIO_LLM_PROVIDER", "anthropic")
	t.Setenv("CODEGENIO_ANTHROPIC_API_KEY", "test-key")
	t.Setenv("CODEGENIO_ANTHROPIC_MODEL", "claude-fast")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "test-key" || cfg.Anthropic.Model != "claude-fast" {
		t.Errorf("anthropic config = %+v", cfg.Anthropic)
	}
	// Untouched sections keep their defaults.
	if cfg.OpenAI.Model != "gpt-4.1-nano" {
		t.Errorf("openai model = %q", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "oa")
	t.Setenv("GEMINI_API_KEY", "gm")
	t.Setenv("ANTHROPIC_API_KEY", "an")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "openai" {
		t.Errorf("expected openai to win discovery, got %q (ok=%v)", cfg.Provider, ok)
	}
}

func TestDiscoverConfigNone(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"openai with key", func(c *Config) { c.OpenAI.APIKey = "k" }, false},
		{"openai without key", func(c *Config) {}, true},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"gemini without key", func(c *Config) { c.Provider = "gemini" }, true},
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "llama" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
