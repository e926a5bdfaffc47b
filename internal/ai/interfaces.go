package ai

import "context"

// TokenUsage reports token consumption of one generation round trip.
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// GenerateOptions tune a single generation request. Zero values defer to
// the operation configuration.
type GenerateOptions struct {
	SystemPrompt string
	MaxTokens    int32
	Temperature  *float32
	// JSONResponse asks the model for a JSON-encoded reply. Callers parse
	// the content themselves and must treat parse failures as provider
	// failures (fallback path).
	JSONResponse bool
}

// Result is the outcome of one generation request.
type Result struct {
	Content string
	Usage   *TokenUsage
}

// Provider is the narrow collaborator interface for AI text generation:
// one fully-formed prompt in, free text (or JSON-encoded text) out. A real
// HTTP client can be substituted without touching any analysis component.
type Provider interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (Result, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
