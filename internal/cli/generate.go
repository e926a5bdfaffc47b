package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"jobcraft/internal/common"
	"jobcraft/internal/pdfgen"
	"jobcraft/internal/tailor"
	"jobcraft/internal/types"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [input-file]",
	Short: "Generate a tailored resume or cover letter",
	Long: `Generate a resume or cover letter from a JSON input file describing
the candidate (questionnaire responses and/or extracted profile data) and
optionally the target job posting. Uses the configured AI backend when an
API key is available and falls back to local templates otherwise.

Use --pdf to render the document as a paginated A4 PDF instead of JSON.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		generateConfig.OutputFormat = common.NormalizeFormat(generateConfig.OutputFormat)
		if generateConfig.OutputFormat == "" {
			generateConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(generateConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runGenerate,
}

var (
	generateConfig  common.CommandConfig
	generatePDFFile string
)

func init() {
	generateCmd.Flags().StringVarP(&generateConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	generateCmd.Flags().StringVar(&generateConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	generateCmd.Flags().StringVar(&generatePDFFile, "pdf", "", "Render the document to this PDF file instead of formatted output")

	_ = generateCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	generator, err := tailor.NewGenerator(cfg.GetResumeConfig(), cfg.GetLetterConfig(), logger)
	if err != nil {
		return fmt.Errorf("failed to create document generator: %w", err)
	}
	defer func() {
		if err := generator.Close(); err != nil {
			logger.Warn("Failed to close generator", "error", err)
		}
	}()

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args[0])
	if err != nil {
		return err
	}

	var input types.GenerateDocumentInput
	if err := json.Unmarshal([]byte(contents[0]), &input); err != nil {
		return fmt.Errorf("invalid generation input JSON in %s: %w", args[0], err)
	}

	logger.Info("Starting document generation",
		"type", input.Type,
		"response_count", len(input.Responses),
		"has_parsed_profile", input.Parsed != nil,
		"has_job", input.Job != nil)

	doc, err := generator.Generate(cmd.Context(), &input)
	if err != nil {
		return fmt.Errorf("failed to generate document: %w", err)
	}

	if generatePDFFile != "" {
		if err := writePDFFile(fileProcessor, doc, &input); err != nil {
			return err
		}
		logger.Info("Document rendered to PDF", "file", generatePDFFile)
		return nil
	}

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(*doc, generateConfig); err != nil {
		return err
	}
	logger.Info("Document generation completed successfully")
	return nil
}

// writePDFFile renders the generated document to a paginated PDF on disk
func writePDFFile(fileProcessor *common.FileProcessor, doc *types.GeneratedDocument, input *types.GenerateDocumentInput) error {
	var buf bytes.Buffer
	var err error

	if doc.Type == types.DocumentTypeCoverLetter {
		letter := pdfgen.Letter{
			Company:  doc.Company,
			JobTitle: doc.JobTitle,
			Date:     time.Now().Format("January 2, 2006"),
			Body:     doc.Content,
		}
		if input.Job != nil {
			letter.Location = input.Job.Location
		}
		if input.Parsed != nil {
			letter.Name = input.Parsed.PersonalInfo.Name
			for _, part := range []string{
				input.Parsed.PersonalInfo.Email,
				input.Parsed.PersonalInfo.Phone,
				input.Parsed.PersonalInfo.Location,
			} {
				if part != "" {
					letter.Contact = append(letter.Contact, part)
				}
			}
		}
		_, err = pdfgen.RenderCoverLetter(letter, &buf)
	} else {
		_, err = pdfgen.RenderResume(doc.Content, &buf)
	}
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	return fileProcessor.WriteFileBytes(generatePDFFile, buf.Bytes())
}
