package content

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"anthropic with key", func(c *Config) {
			c.Provider = "anthropic"
			c.Anthropic.APIKey = "sk-test"
		}, false},
		{"anthropic without key", func(c *Config) {
			c.Provider = "anthropic"
		}, true},
		{"openai without key", func(c *Config) {
			c.Provider = "openai"
		}, true},
		{"gemini without key", func(c *Config) {
			c.Provider = "gemini"
		}, true},
		{"mock needs no key", func(c *Config) {
			c.Provider = "mock"
		}, false},
		{"unknown provider", func(c *Config) {
			c.Provider = "llama-on-a-thumbdrive"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PATHPREP_CONTENT_PROVIDER", "gemini")
	t.Setenv("PATHPREP_GEMINI_API_KEY", "g-test")
	t.Setenv("PATHPREP_GEMINI_MODEL", "gemini-2.5-flash")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-test" || cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
	// Untouched sections keep their defaults.
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q, want default", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "a")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini (highest priority)", cfg.Provider)
	}
}

func TestModelCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if got != 0.75 {
		t.Errorf("cost = %v, want 0.75", got)
	}
	if LookupCost("made-up-model") != nil {
		t.Error("expected nil for unknown model")
	}
}
