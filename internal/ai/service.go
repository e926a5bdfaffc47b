package ai

import (
	"context"
	"fmt"

	"jobcraft/internal/config"
	"jobcraft/internal/errors"
)

// Service bundles a provider with its operation configuration. One service
// instance exists per operation type (analyze, resume, letter).
type Service struct {
	Provider Provider
	config   *config.OperationAIConfig
	logger   *errors.Logger
}

// NewService creates an AI service for a specific operation.
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"max_retries", *cfg.MaxRetries)

	var provider Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{Provider: provider, config: cfg, logger: logger}, nil
}

// Generate proxies to the underlying provider.
func (s *Service) Generate(ctx context.Context, prompt string, opts GenerateOptions) (Result, error) {
	return s.Provider.Generate(ctx, prompt, opts)
}

// GetModelInfo reports model availability for health checks.
func (s *Service) GetModelInfo(ctx context.Context) *ModelInfo {
	return s.Provider.GetModelInfo(ctx)
}

// Close releases provider resources.
func (s *Service) Close() error {
	return s.Provider.Close()
}
