package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writePromptFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write prompt file: %v", err)
	}
	return path
}

// TestLoadPromptsFromFiles tests file-based prompt loading
func TestLoadPromptsFromFiles(t *testing.T) {
	path := writePromptFile(t, "  You are a job posting analyst.  \n")

	cfg := &Config{}
	cfg.AI.CustomPrompts.SystemPrompts.AnalyzeJobFile = path

	err := cfg.loadPromptsFromFiles()
	assert.NoError(t, err)
	assert.Equal(t, "You are a job posting analyst.", cfg.AI.CustomPrompts.SystemPrompts.AnalyzeJob)
}

// TestLoadPromptsInlineWins tests that inline prompts take precedence over files
func TestLoadPromptsInlineWins(t *testing.T) {
	path := writePromptFile(t, "file prompt")

	cfg := &Config{}
	cfg.AI.CustomPrompts.SystemPrompts.AnalyzeJob = "inline prompt"
	cfg.AI.CustomPrompts.SystemPrompts.AnalyzeJobFile = path

	err := cfg.loadPromptsFromFiles()
	assert.NoError(t, err)
	assert.Equal(t, "inline prompt", cfg.AI.CustomPrompts.SystemPrompts.AnalyzeJob)
}

// TestLoadPromptFromFileErrors tests error cases for prompt file loading
func TestLoadPromptFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadPromptFromFile(filepath.Join(t.TempDir(), "missing.txt"), "system analyzeJob")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read system analyzeJob prompt file")
	})

	t.Run("empty file", func(t *testing.T) {
		path := writePromptFile(t, "   \n\t")
		_, err := loadPromptFromFile(path, "user analyzeJob")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "is empty")
	})
}

// TestValidatePromptFiles tests existence validation before loading
func TestValidatePromptFiles(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.validatePromptFiles())

	cfg.AI.Resume.CustomPrompts.UserPrompts.GenerateResumeFile = "/nonexistent/prompt.txt"
	err := cfg.validatePromptFiles()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume user generateResume prompt file not found")
}
