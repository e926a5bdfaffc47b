package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"jobcraft/internal/common"
	"jobcraft/internal/match"
	"jobcraft/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [profile-file] [job-file]",
	Short: "Score a candidate profile against a job posting",
	Long: `Score how well a candidate profile matches a job posting. The command
takes two JSON files: a profile (skills, experience, questionnaire responses,
and optionally a psychological assessment) and a job posting as produced by
the analyze command. Scoring is deterministic and runs entirely locally.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		matchConfig.OutputFormat = common.NormalizeFormat(matchConfig.OutputFormat)
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

// matchInput pairs the two parsed JSON documents for one scoring run
type matchInput struct {
	Profile types.UserProfile
	Job     types.JobPosting
}

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (matchInput, error) {
		if len(contents) != 2 {
			return matchInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}

		var input matchInput
		if err := json.Unmarshal([]byte(contents[0]), &input.Profile); err != nil {
			return matchInput{}, fmt.Errorf("invalid profile JSON in %s: %w", args[0], err)
		}
		if err := json.Unmarshal([]byte(contents[1]), &input.Job); err != nil {
			return matchInput{}, fmt.Errorf("invalid job posting JSON in %s: %w", args[1], err)
		}
		if input.Job.Title == "" {
			return matchInput{}, fmt.Errorf("job posting in %s has no title", args[1])
		}
		return input, nil
	}

	logDetails := func(input matchInput, cfg common.CommandConfig) {
		logger.Info("Starting match scoring",
			"profile_skills", len(input.Profile.Skills),
			"job_title", input.Job.Title,
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input matchInput) (types.JobMatchAnalysis, error) {
		return match.Score(input.Profile, input.Job), nil
	}

	err := common.RunFileCommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score match: %w", err)
	}
	logger.Info("Match scoring completed successfully")
	return nil
}
