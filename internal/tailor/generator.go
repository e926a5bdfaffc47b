package tailor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobcraft/internal/ai"
	"jobcraft/internal/config"
	"jobcraft/internal/errors"
	"jobcraft/internal/types"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Generator produces resume and cover letter text from candidate facts.
// Each document type has its own AI operation configuration; when no API key
// is configured the deterministic template renderer is used instead.
type Generator struct {
	resumeSvc *ai.Service
	letterSvc *ai.Service
	resumeCfg config.OperationAIConfig
	letterCfg config.OperationAIConfig
	logger    *errors.Logger
}

// NewGenerator creates a document generator.
func NewGenerator(resumeCfg, letterCfg config.OperationAIConfig, logger *errors.Logger) (*Generator, error) {
	g := &Generator{resumeCfg: resumeCfg, letterCfg: letterCfg, logger: logger}

	if resumeCfg.APIKey != "" {
		svc, err := ai.NewService(&resumeCfg, "generate_resume", logger)
		if err != nil {
			return nil, err
		}
		g.resumeSvc = svc
	}
	if letterCfg.APIKey != "" {
		svc, err := ai.NewService(&letterCfg, "generate_letter", logger)
		if err != nil {
			return nil, err
		}
		g.letterSvc = svc
	}

	if g.resumeSvc == nil && logger != nil {
		logger.Info("No AI API key configured, document generation will use templates")
	}

	return g, nil
}

// Close releases the underlying AI clients, if any.
func (g *Generator) Close() error {
	var firstErr error
	if g.resumeSvc != nil {
		firstErr = g.resumeSvc.Close()
	}
	if g.letterSvc != nil {
		if err := g.letterSvc.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Generate renders the requested document type and wraps it in a record
// ready for persistence.
func (g *Generator) Generate(ctx context.Context, input *types.GenerateDocumentInput) (*types.GeneratedDocument, error) {
	if input == nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidRequest, "generation input is required", nil)
	}
	if len(input.Responses) == 0 && input.Parsed == nil {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyContent, "no candidate facts available for generation", nil)
	}

	tracer := otel.Tracer("jobcraft.tailor")
	ctx, span := tracer.Start(ctx, "tailor.generate")
	defer span.End()
	span.SetAttributes(attribute.String("document.type", input.Type))

	var content string
	var err error

	switch input.Type {
	case types.DocumentTypeResume:
		content, err = g.generateResumeText(ctx, input)
	case types.DocumentTypeCoverLetter:
		content, err = g.generateLetterText(ctx, input)
	default:
		return nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported document type: %s", input.Type), nil)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	doc := &types.GeneratedDocument{
		ID:        uuid.NewString(),
		Type:      input.Type,
		Title:     documentTitle(input),
		Content:   content,
		ProfileID: input.ProfileID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if input.Job != nil {
		doc.JobTitle = input.Job.Title
		doc.Company = input.Job.Company
	}

	span.SetAttributes(attribute.Int("document.content_length", len(content)))
	return doc, nil
}

func (g *Generator) generateResumeText(ctx context.Context, input *types.GenerateDocumentInput) (string, error) {
	if g.resumeSvc != nil {
		content, err := g.runPrompt(ctx, g.resumeSvc,
			promptOrDefault(g.resumeCfg.CustomPrompts.SystemPrompts.GenerateResume, ai.DefaultSystemPrompts.GenerateResume),
			promptOrDefault(g.resumeCfg.CustomPrompts.UserPrompts.GenerateResume, ai.DefaultUserPrompts.GenerateResume),
			input)
		if err == nil {
			return content, nil
		}
		if g.logger != nil {
			g.logger.Warn("AI resume generation failed, using template", "error", err)
		}
	}
	return templateResume(input), nil
}

func (g *Generator) generateLetterText(ctx context.Context, input *types.GenerateDocumentInput) (string, error) {
	if input.Body != "" {
		return input.Body, nil
	}
	if g.letterSvc != nil {
		content, err := g.runPrompt(ctx, g.letterSvc,
			promptOrDefault(g.letterCfg.CustomPrompts.SystemPrompts.GenerateLetter, ai.DefaultSystemPrompts.GenerateLetter),
			promptOrDefault(g.letterCfg.CustomPrompts.UserPrompts.GenerateLetter, ai.DefaultUserPrompts.GenerateLetter),
			input)
		if err == nil {
			return content, nil
		}
		if g.logger != nil {
			g.logger.Warn("AI letter generation failed, using template", "error", err)
		}
	}
	return templateLetter(input), nil
}

// runPrompt executes one generation round trip and validates the response.
func (g *Generator) runPrompt(ctx context.Context, svc *ai.Service, systemPrompt, userTemplate string, input *types.GenerateDocumentInput) (string, error) {
	prompt := fmt.Sprintf(userTemplate, candidateFacts(input), positionFacts(input.Job))

	result, err := svc.Generate(ctx, prompt, ai.GenerateOptions{SystemPrompt: systemPrompt})
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(result.Content)
	if content == "" {
		return "", errors.NewAIError(errors.ErrCodeAIParseFailed, "empty generation response", nil)
	}
	return content, nil
}

func promptOrDefault(custom, fallback string) string {
	if custom != "" {
		return custom
	}
	return fallback
}

func documentTitle(input *types.GenerateDocumentInput) string {
	base := "Resume"
	if input.Type == types.DocumentTypeCoverLetter {
		base = "Cover Letter"
	}
	if input.Job != nil && input.Job.Title != "" {
		return fmt.Sprintf("%s - %s", base, input.Job.Title)
	}
	return base
}
