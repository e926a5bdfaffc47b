package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"jobcraft/internal/common"
	"jobcraft/internal/psych"
	"jobcraft/internal/types"

	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess [responses-file]",
	Short: "Run the psychological assessment on questionnaire responses",
	Long: `Analyze answers to the fixed assessment questionnaire and derive a
trait summary: strengths, weaknesses, personality traits, and risk levels.
Use --questions to print the questionnaire itself, answer it, and feed the
responses back as a JSON file.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		assessConfig.OutputFormat = common.NormalizeFormat(assessConfig.OutputFormat)
		if assessConfig.OutputFormat == "" {
			assessConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(assessConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAssess,
}

var (
	assessConfig    common.CommandConfig
	assessQuestions bool
)

func init() {
	assessCmd.Flags().StringVarP(&assessConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	assessCmd.Flags().StringVar(&assessConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	assessCmd.Flags().BoolVar(&assessQuestions, "questions", false, "Print the assessment questionnaire and exit")

	_ = assessCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAssess(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	if assessQuestions {
		outputHandler := common.NewOutputHandler(logger)
		battery := psych.Battery
		// The questionnaire has no dedicated text renderer; always emit JSON.
		return outputHandler.HandleOutput(battery, common.CommandConfig{
			OutputFile:   assessConfig.OutputFile,
			OutputFormat: "json",
		})
	}

	if len(args) != 1 {
		return fmt.Errorf("a responses file is required (or use --questions)")
	}

	createInput := func(contents []string) ([]psych.Response, error) {
		if len(contents) != 1 {
			return nil, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		var responses []psych.Response
		if err := json.Unmarshal([]byte(contents[0]), &responses); err != nil {
			return nil, fmt.Errorf("invalid responses JSON in %s: %w", args[0], err)
		}
		return responses, nil
	}

	logDetails := func(responses []psych.Response, cfg common.CommandConfig) {
		logger.Info("Starting psychological assessment",
			"response_count", len(responses),
			"output_format", cfg.OutputFormat)
	}

	assessOperation := func(ctx context.Context, responses []psych.Response) (types.PsychologicalAnalysis, error) {
		return psych.Analyze(responses), nil
	}

	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		assessConfig,
		args,
		createInput,
		assessOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to run assessment: %w", err)
	}
	logger.Info("Psychological assessment completed successfully")
	return nil
}
