package ai

import (
	"context"
	"crypto/rand"
	stderrors "errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"jobcraft/internal/config"
	"jobcraft/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google Gemini.
type GeminiProvider struct {
	client        *genai.Client
	config        *config.OperationAIConfig
	operationType string
	breaker       *GenerateBreaker
	modelBreaker  *ModelBreaker
	logger        *errors.Logger
}

var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a Gemini provider for one operation type.
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client:        client,
		config:        cfg,
		operationType: operationType,
		breaker:       NewGenerateBreaker(operationType, cfg, logger),
		modelBreaker:  NewModelBreaker(operationType, cfg, logger),
		logger:        logger,
	}, nil
}

// ModelInfo describes the configured model's availability.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

const modelCheckTimeout = 10 * time.Second

// GetModelInfo checks availability of the configured model.
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	info := &ModelInfo{Name: g.config.Model}

	checkCtx, cancel := context.WithTimeout(ctx, modelCheckTimeout)
	defer cancel()

	model, err := g.modelBreaker.Execute(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		info.Error = fmt.Sprintf("Failed to get model info: %v", err)
		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"operation_type", g.operationType,
			"error", err.Error())
		return info
	}

	info.Available = true
	info.DisplayName = model.DisplayName
	info.Version = model.Version
	return info
}

// Generate implements Provider. One protected round trip: circuit breaker
// around retry with exponential backoff. Callers treat any returned error
// as the trigger for their local fallback.
func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts GenerateOptions) (Result, error) {
	tracer := otel.Tracer("jobcraft.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini.generate")
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.String("ai.operation", g.operationType),
		attribute.Int("ai.prompt_length", len(prompt)),
	)

	genConfig := g.buildGenerateConfig(opts)

	result, err := g.breaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(prompt), genConfig)
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return Result{}, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to generate content for "+g.operationType, err)
	}

	usage := extractTokenUsage(result)
	if usage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", usage.InputTokens),
			attribute.Int64("ai.tokens.output", usage.OutputTokens),
			attribute.Int64("ai.tokens.total", usage.TotalTokens),
		)
	}
	span.SetAttributes(attribute.Bool("success", true))

	return Result{Content: result.Text(), Usage: usage}, nil
}

// buildGenerateConfig translates options into a genai request config.
func (g *GeminiProvider) buildGenerateConfig(opts GenerateOptions) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{}

	if opts.JSONResponse {
		genConfig.ResponseMIMEType = "application/json"
	}
	if opts.MaxTokens > 0 {
		genConfig.MaxOutputTokens = opts.MaxTokens
	}
	switch {
	case opts.Temperature != nil:
		genConfig.Temperature = opts.Temperature
	case *g.config.Temperature > 0:
		genConfig.Temperature = g.config.Temperature
	}
	if *g.config.UseSystemPrompts && opts.SystemPrompt != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(opts.SystemPrompt, genai.RoleUser)
	}

	return genConfig
}

// executeWithRetry retries transient failures with exponential backoff and
// jitter, capped at 30 seconds per wait.
func (g *GeminiProvider) executeWithRetry(ctx context.Context, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation_type", g.operationType,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			backoff := min(baseDelay+time.Duration(jitterBig.Int64()), 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation_type", g.operationType,
				"error", err.Error())
			break
		}
	}

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w",
		g.operationType, *g.config.MaxRetries, lastErr)
}

// isRetryableError reports whether an error is worth another attempt:
// network timeouts and 429/5xx API statuses are, auth and bad-input are not.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return true
	}

	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// extractTokenUsage reads usage metadata from a Gemini response.
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}
	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}

// Close implements Provider. The Gemini client has no teardown for
// single-shot usage.
func (g *GeminiProvider) Close() error {
	return nil
}
