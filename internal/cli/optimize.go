package cli

import (
	"context"
	"fmt"

	"resumatch/internal/common"
	"resumatch/internal/pipeline"
	"resumatch/internal/types"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [resume-file]",
	Short: "Rewrite a resume for ATS compatibility",
	Long: `Rewrite a resume for ATS compatibility. The command normalizes section
headers, strips formatting that confuses parsers, and integrates the given
job keywords into the skills section where they are missing.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if optimizeConfig.OutputFormat == "" {
			optimizeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(optimizeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runOptimize,
}

var (
	optimizeConfig   common.CommandConfig
	optimizeKeywords []string
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	optimizeCmd.Flags().StringVar(&optimizeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	optimizeCmd.Flags().StringSliceVar(&optimizeKeywords, "keywords", nil, "Job keywords to integrate (comma-separated)")

	_ = optimizeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	p := pipeline.New(nil, nil, "", logger)

	createInput := func(contents []string) (types.ATSInput, error) {
		if len(contents) != 1 {
			return types.ATSInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ATSInput{
			ResumeText:  contents[0],
			JobKeywords: optimizeKeywords,
		}, nil
	}

	logDetails := func(input types.ATSInput, cfg common.CommandConfig) {
		logger.Info("Starting ATS optimization",
			"resume_chars", len(input.ResumeText),
			"keywords_count", len(input.JobKeywords),
			"output_format", cfg.OutputFormat)
	}

	optimizeOperation := func(ctx context.Context, input types.ATSInput) (types.OptimizeOutput, error) {
		return types.OptimizeOutput{OptimizedText: p.OptimizeATS(input)}, nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		optimizeConfig,
		args,
		cfg.App.MaxFileSize,
		createInput,
		optimizeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to optimize resume: %w", err)
	}
	logger.Info("ATS optimization completed successfully")
	return nil
}
