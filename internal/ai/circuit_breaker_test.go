package ai

import (
	"errors"
	"testing"
	"time"

	"jobcraft/internal/config"

	"google.golang.org/genai"
)

func breakerConfig(enabled bool) *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestIndependentBreakersPerOperation(t *testing.T) {
	analyzeCB := NewGenerateBreaker("analyze_job", breakerConfig(true), nil)
	resumeCB := NewGenerateBreaker("generate_resume", breakerConfig(true), nil)
	letterCB := NewGenerateBreaker("generate_letter", breakerConfig(true), nil)

	tests := []struct {
		name    string
		breaker *GenerateBreaker
		cbName  string
	}{
		{name: "analyze", breaker: analyzeCB, cbName: "AI-analyze_job"},
		{name: "resume", breaker: resumeCB, cbName: "AI-generate_resume"},
		{name: "letter", breaker: letterCB, cbName: "AI-generate_letter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := tt.breaker.Stats()

			if name, _ := stats["name"].(string); name != tt.cbName {
				t.Errorf("expected breaker name %q, got %q", tt.cbName, name)
			}
			if state, _ := stats["state"].(string); state != "closed" {
				t.Errorf("expected initial state closed, got %q", state)
			}
			if enabled, _ := stats["enabled"].(bool); !enabled {
				t.Error("breaker should report enabled")
			}
			if !tt.breaker.IsHealthy() {
				t.Error("breaker should be healthy initially")
			}
		})
	}

	if analyzeCB == resumeCB || analyzeCB == letterCB || resumeCB == letterCB {
		t.Error("each operation must get its own breaker instance")
	}
}

func TestDisabledBreakerIsNil(t *testing.T) {
	if cb := NewGenerateBreaker("analyze_job", breakerConfig(false), nil); cb != nil {
		t.Error("generate breaker should be nil when disabled")
	}
	if cb := NewModelBreaker("analyze_job", breakerConfig(false), nil); cb != nil {
		t.Error("model breaker should be nil when disabled")
	}
}

func TestNilBreakerPassesThrough(t *testing.T) {
	var cb *GenerateBreaker

	want := &genai.GenerateContentResponse{}
	got, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return want, nil
	})
	if err != nil || got != want {
		t.Errorf("nil breaker must execute directly, got (%v, %v)", got, err)
	}

	wantErr := errors.New("provider down")
	if _, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Errorf("nil breaker must return the callback error, got %v", err)
	}

	if !cb.IsHealthy() {
		t.Error("nil breaker reports healthy")
	}
	if enabled, _ := cb.Stats()["enabled"].(bool); enabled {
		t.Error("nil breaker stats report disabled")
	}
}
