package cli

import (
	"context"
	"fmt"

	"resumatch/internal/common"
	"resumatch/internal/pipeline"
	"resumatch/internal/types"

	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats [resume-file]",
	Short: "Validate a resume for ATS compliance",
	Long: `Validate a resume for ATS (applicant tracking system) compliance.
The command checks formatting, section structure, and keyword density, and
reports a compliance level with concrete recommendations. Pass job keywords
with --keywords to include keyword density in the report.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if atsConfig.OutputFormat == "" {
			atsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(atsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runATSValidate,
}

var (
	atsConfig   common.CommandConfig
	atsKeywords []string
)

func init() {
	atsCmd.Flags().StringVarP(&atsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	atsCmd.Flags().StringVar(&atsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	atsCmd.Flags().StringSliceVar(&atsKeywords, "keywords", nil, "Job keywords to check density for (comma-separated)")

	_ = atsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runATSValidate(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	p := pipeline.New(nil, nil, "", logger)

	createInput := func(contents []string) (types.ATSInput, error) {
		if len(contents) != 1 {
			return types.ATSInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ATSInput{
			ResumeText:  contents[0],
			JobKeywords: atsKeywords,
		}, nil
	}

	logDetails := func(input types.ATSInput, cfg common.CommandConfig) {
		logger.Info("Starting ATS validation",
			"resume_chars", len(input.ResumeText),
			"keywords_count", len(input.JobKeywords),
			"output_format", cfg.OutputFormat)
	}

	validateOperation := func(ctx context.Context, input types.ATSInput) (*types.ATSReport, error) {
		return p.ValidateATS(input), nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		atsConfig,
		args,
		cfg.App.MaxFileSize,
		createInput,
		validateOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to validate resume: %w", err)
	}
	logger.Info("ATS validation completed successfully")
	return nil
}
