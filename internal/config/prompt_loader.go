package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles loads prompts referenced by *File fields into their
// inline counterparts. Inline prompts win over file-based ones.
func (c *Config) loadPromptsFromFiles() error {
	sets := []*PromptConfig{
		&c.AI.CustomPrompts,
		&c.AI.Analyze.CustomPrompts,
		&c.AI.Resume.CustomPrompts,
		&c.AI.Letter.CustomPrompts,
	}

	for _, set := range sets {
		pairs := []struct {
			target *string
			file   string
			label  string
		}{
			{&set.SystemPrompts.AnalyzeJob, set.SystemPrompts.AnalyzeJobFile, "system analyzeJob"},
			{&set.SystemPrompts.GenerateResume, set.SystemPrompts.GenerateResumeFile, "system generateResume"},
			{&set.SystemPrompts.GenerateLetter, set.SystemPrompts.GenerateLetterFile, "system generateLetter"},
			{&set.UserPrompts.AnalyzeJob, set.UserPrompts.AnalyzeJobFile, "user analyzeJob"},
			{&set.UserPrompts.GenerateResume, set.UserPrompts.GenerateResumeFile, "user generateResume"},
			{&set.UserPrompts.GenerateLetter, set.UserPrompts.GenerateLetterFile, "user generateLetter"},
		}
		for _, p := range pairs {
			if *p.target != "" || p.file == "" {
				continue
			}
			content, err := loadPromptFromFile(p.file, p.label)
			if err != nil {
				return err
			}
			*p.target = content
		}
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling
func loadPromptFromFile(filePath, label string) (string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s prompt file '%s': %w", label, filePath, err)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s prompt file '%s': %w", label, absPath, err)
	}

	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s prompt file '%s' is empty", label, absPath)
	}

	return trimmedContent, nil
}

// validatePromptFiles validates that prompt files exist before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	validateFile := func(filePath, label string) {
		if filePath == "" {
			return
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid path for %s prompt: %s", label, filePath))
			return
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s prompt file not found: %s", label, absPath))
		}
	}

	sets := []struct {
		prompts *PromptConfig
		prefix  string
	}{
		{&c.AI.CustomPrompts, "global"},
		{&c.AI.Analyze.CustomPrompts, "analyze"},
		{&c.AI.Resume.CustomPrompts, "resume"},
		{&c.AI.Letter.CustomPrompts, "letter"},
	}

	for _, set := range sets {
		validateFile(set.prompts.SystemPrompts.AnalyzeJobFile, set.prefix+" system analyzeJob")
		validateFile(set.prompts.SystemPrompts.GenerateResumeFile, set.prefix+" system generateResume")
		validateFile(set.prompts.SystemPrompts.GenerateLetterFile, set.prefix+" system generateLetter")
		validateFile(set.prompts.UserPrompts.AnalyzeJobFile, set.prefix+" user analyzeJob")
		validateFile(set.prompts.UserPrompts.GenerateResumeFile, set.prefix+" user generateResume")
		validateFile(set.prompts.UserPrompts.GenerateLetterFile, set.prefix+" user generateLetter")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}
