package cli

import (
	"context"
	"fmt"

	"resumatch/internal/ai"
	"resumatch/internal/common"
	"resumatch/internal/pipeline"
	"resumatch/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-file]",
	Short: "Match a resume against a job posting",
	Long: `Match a resume against a job posting. The command extracts structured
records from both texts, computes a deterministic match score with gap
analysis, and produces a tailored resume. Both files should be in plain
text format.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var (
	matchConfig        common.CommandConfig
	matchATSValidation bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	matchCmd.Flags().BoolVar(&matchATSValidation, "ats", false, "Include ATS compliance validation of the tailored resume")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	extractAIConfig := cfg.GetExtractConfig()
	extractService, err := ai.NewService(&extractAIConfig, "extract", logger)
	if err != nil {
		return fmt.Errorf("failed to create extract service: %w", err)
	}

	tailorAIConfig := cfg.GetTailorConfig()
	tailorService, err := ai.NewService(&tailorAIConfig, "tailor", logger)
	if err != nil {
		return fmt.Errorf("failed to create tailor service: %w", err)
	}

	p := pipeline.New(extractService, tailorService, extractAIConfig.Model, logger)

	createInput := func(contents []string) (types.MatchInput, error) {
		if len(contents) != 2 {
			return types.MatchInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return types.MatchInput{
			ResumeText: contents[0],
			JobText:    contents[1],
		}, nil
	}

	logDetails := func(input types.MatchInput, cfg common.CommandConfig) {
		logger.Info("Starting resume matching",
			"resume_chars", len(input.ResumeText),
			"job_chars", len(input.JobText),
			"ats_validation", matchATSValidation,
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input types.MatchInput) (*types.MatchOutput, error) {
		return p.Run(ctx, input, pipeline.Options{IncludeATSValidation: matchATSValidation})
	}

	err = common.RunCommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		cfg.App.MaxFileSize,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to match resume: %w", err)
	}
	logger.Info("Resume matching completed successfully")
	return nil
}
