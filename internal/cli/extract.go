package cli

import (
	"context"
	"fmt"

	"jobcraft/internal/common"
	"jobcraft/internal/extract"
	"jobcraft/internal/types"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [resume-file]",
	Short: "Extract structured profile data from a resume",
	Long: `Extract structured data from a plain text resume: contact details,
work experience, education, skills, projects, and achievements. The result
can be fed to the match and generate commands.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		extractConfig.OutputFormat = common.NormalizeFormat(extractConfig.OutputFormat)
		if extractConfig.OutputFormat == "" {
			extractConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(extractConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runExtract,
}

var extractConfig common.CommandConfig

func init() {
	extractCmd.Flags().StringVarP(&extractConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = extractCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())
	filename := args[0]

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(content string, cfg common.CommandConfig) {
		logger.Info("Starting resume extraction",
			"file", filename,
			"content_chars", len(content),
			"output_format", cfg.OutputFormat)
	}

	extractOperation := func(ctx context.Context, content string) (types.ParsedProfileData, error) {
		return extract.ParseDocument(filename, content)
	}

	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		extractConfig,
		args,
		createInput,
		extractOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract resume data: %w", err)
	}
	logger.Info("Resume extraction completed successfully")
	return nil
}
