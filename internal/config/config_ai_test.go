package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func baseConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider:    "gemini",
			Model:       "gemini-2.5-flash",
			Timeout:     90 * time.Second,
			APIKey:      "global-key",
			MaxRetries:  3,
			Temperature: 0.2,
		},
	}
}

// TestGetAnalyzeConfigFallbacks tests that operation config inherits global defaults
func TestGetAnalyzeConfigFallbacks(t *testing.T) {
	cfg := baseConfig()

	opCfg := cfg.GetAnalyzeConfig()

	assert.Equal(t, "gemini", opCfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", opCfg.Model)
	assert.Equal(t, "global-key", opCfg.APIKey)
	if assert.NotNil(t, opCfg.Timeout) {
		assert.Equal(t, 90*time.Second, *opCfg.Timeout)
	}
	if assert.NotNil(t, opCfg.MaxRetries) {
		assert.Equal(t, 3, *opCfg.MaxRetries)
	}
	if assert.NotNil(t, opCfg.Temperature) {
		assert.Equal(t, float32(0.2), *opCfg.Temperature)
	}
	if assert.NotNil(t, opCfg.UseSystemPrompts) {
		assert.False(t, *opCfg.UseSystemPrompts)
	}
}

// TestGetAnalyzeConfigOverrides tests that operation-specific values win
func TestGetAnalyzeConfigOverrides(t *testing.T) {
	cfg := baseConfig()
	opTimeout := 30 * time.Second
	cfg.AI.Analyze = OperationAIConfig{
		Model:   "gemini-2.5-pro",
		APIKey:  "analyze-key",
		Timeout: &opTimeout,
	}

	opCfg := cfg.GetAnalyzeConfig()

	assert.Equal(t, "gemini-2.5-pro", opCfg.Model)
	assert.Equal(t, "analyze-key", opCfg.APIKey)
	assert.Equal(t, 30*time.Second, *opCfg.Timeout)
	// Provider was not overridden, so the global one applies.
	assert.Equal(t, "gemini", opCfg.Provider)
}

// TestGetResumeConfigPromptFallback tests prompt inheritance from global config
func TestGetResumeConfigPromptFallback(t *testing.T) {
	cfg := baseConfig()
	cfg.AI.CustomPrompts.SystemPrompts.GenerateResume = "global system prompt"
	cfg.AI.CustomPrompts.UserPrompts.GenerateResume = "global user prompt"

	opCfg := cfg.GetResumeConfig()
	assert.Equal(t, "global system prompt", opCfg.CustomPrompts.SystemPrompts.GenerateResume)
	assert.Equal(t, "global user prompt", opCfg.CustomPrompts.UserPrompts.GenerateResume)

	cfg.AI.Resume.CustomPrompts.SystemPrompts.GenerateResume = "resume system prompt"
	opCfg = cfg.GetResumeConfig()
	assert.Equal(t, "resume system prompt", opCfg.CustomPrompts.SystemPrompts.GenerateResume)
	assert.Equal(t, "global user prompt", opCfg.CustomPrompts.UserPrompts.GenerateResume)
}

// TestGetLetterConfigPromptFallback tests prompt inheritance for letters
func TestGetLetterConfigPromptFallback(t *testing.T) {
	cfg := baseConfig()
	cfg.AI.CustomPrompts.SystemPrompts.GenerateLetter = "global letter prompt"
	cfg.AI.Letter.APIKey = "letter-key"

	opCfg := cfg.GetLetterConfig()
	assert.Equal(t, "letter-key", opCfg.APIKey)
	assert.Equal(t, "global letter prompt", opCfg.CustomPrompts.SystemPrompts.GenerateLetter)
}

// TestValidate tests the top-level configuration validation
func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := baseConfig()
		cfg.Server.Port = "8080"
		cfg.Server.TLS.Mode = "disabled"
		cfg.App.DefaultFormat = "json"
		cfg.App.SupportedFormats = []string{"json", "text", "markdown"}
		return cfg
	}

	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:     "non-positive AI timeout",
			mutate:   func(c *Config) { c.AI.Timeout = 0 },
			errorMsg: "AI timeout must be positive",
		},
		{
			name:     "missing port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "server port is required",
		},
		{
			name:     "unsupported default format",
			mutate:   func(c *Config) { c.App.DefaultFormat = "xml" },
			errorMsg: "invalid default format: xml",
		},
		{
			name:     "store enabled without path",
			mutate:   func(c *Config) { c.Store.Enabled = true },
			errorMsg: "store path is required",
		},
		{
			name:     "invalid TLS mode",
			mutate:   func(c *Config) { c.Server.TLS.Mode = "bogus" },
			errorMsg: "TLS configuration error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.errorMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
