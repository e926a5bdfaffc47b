package cli

import (
	"context"
	"fmt"

	"jobcraft/internal/common"
	"jobcraft/internal/jobposting"
	"jobcraft/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [job-description-file]",
	Short: "Analyze a job description into a structured posting",
	Long: `Analyze a job description and produce a structured posting: title,
company, location, requirements, and preferred skills. Uses the configured
AI backend when an API key is available and falls back to local keyword
analysis otherwise. The result reports which path produced it.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		analyzeConfig.OutputFormat = common.NormalizeFormat(analyzeConfig.OutputFormat)
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	analyzer, err := jobposting.NewAnalyzer(cfg.GetAnalyzeConfig(), logger)
	if err != nil {
		return fmt.Errorf("failed to create job posting analyzer: %w", err)
	}
	defer func() {
		if err := analyzer.Close(); err != nil {
			logger.Warn("Failed to close analyzer", "error", err)
		}
	}()

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(content string, cfg common.CommandConfig) {
		logger.Info("Starting job description analysis",
			"job_chars", len(content),
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, content string) (types.JobPostingAnalysis, error) {
		result, err := analyzer.Analyze(ctx, content)
		if err != nil {
			return types.JobPostingAnalysis{}, err
		}
		return *result, nil
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze job description: %w", err)
	}
	logger.Info("Job description analysis completed successfully")
	return nil
}
