package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"resumatch/internal/common"
	"resumatch/internal/errors"
	"resumatch/internal/pipeline"
	"resumatch/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [records-file]",
	Short: "Score pre-extracted job and candidate records",
	Long: `Score pre-extracted job and candidate records without calling the AI.
The command takes a single JSON file holding the job record, the candidate
record, and optionally the raw resume text:

  {
    "job": {"title": "...", "seniority": "mid", "must_have_skills": [...]},
    "candidate": {"years_of_experience": 4, "tech_stack": [...]},
    "resume_text": "..."
  }

The records are canonicalized before scoring, so raw skill spellings and
aliases are accepted.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	p := pipeline.New(nil, nil, "", logger)

	createInput := func(contents []string) (types.ScoreInput, error) {
		if len(contents) != 1 {
			return types.ScoreInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		var input types.ScoreInput
		if err := json.Unmarshal([]byte(contents[0]), &input); err != nil {
			return types.ScoreInput{}, fmt.Errorf("failed to parse records file: %w", err)
		}
		if err := types.ValidateRecords(&input.Job, &input.Candidate); err != nil {
			return types.ScoreInput{}, errors.NewValidationError(
				errors.ErrCodeInvalidRecord, "records file failed validation", err)
		}
		return input, nil
	}

	logDetails := func(input types.ScoreInput, cfg common.CommandConfig) {
		logger.Info("Starting record scoring",
			"job_title", input.Job.Title,
			"must_have_count", len(input.Job.MustHaveSkills),
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, input types.ScoreInput) (types.ScoreResult, error) {
		return p.ScoreOnly(input), nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		cfg.App.MaxFileSize,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score records: %w", err)
	}
	logger.Info("Record scoring completed successfully")
	return nil
}
