package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"hirescreen/internal/ai"
	"hirescreen/internal/common"
	"hirescreen/internal/errors"
	"hirescreen/internal/screening"
	"hirescreen/internal/types"

	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen [resume-file] [job-requirements-file] [assignment-file] [answers-file]",
	Short: "Run the full screening pipeline for one candidate",
	Long: `Screen a candidate by running the four-stage evaluation pipeline:
assignment, interview answers, resume, and final recommendation.

The command takes four arguments: the candidate's resume (plain text, PDF, or
DOCX), the job requirements file, the take-home assignment response, and a
JSON file with the interview answers as an array of {"question", "answer"}
objects.`,
	Args: cobra.ExactArgs(4),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if screenConfig.OutputFormat == "" {
			screenConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(screenConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScreen,
}

var (
	screenConfig        common.CommandConfig
	screenCandidateName string
	screenJobTitle      string
)

func init() {
	screenCmd.Flags().StringVarP(&screenConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	screenCmd.Flags().StringVar(&screenConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	screenCmd.Flags().StringVar(&screenCandidateName, "name", "", "Candidate name")
	screenCmd.Flags().StringVar(&screenJobTitle, "job-title", "", "Job title the candidate is screened for")

	_ = screenCmd.MarkFlagRequired("job-title")

	// Add completion for format flag
	_ = screenCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	pipeline, err := screening.NewPipelineFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create screening pipeline: %w", err)
	}

	createInput := func(contents []string) (types.ScreenInput, error) {
		if len(contents) != 4 {
			return types.ScreenInput{}, fmt.Errorf("expected 4 file paths, got %d", len(contents))
		}

		var answers []types.InterviewQA
		if err := json.Unmarshal([]byte(contents[3]), &answers); err != nil {
			return types.ScreenInput{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
				"Answers file must be a JSON array of question/answer objects", err)
		}
		if len(answers) == 0 {
			return types.ScreenInput{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
				"Answers file must contain at least one question/answer pair", nil)
		}

		return types.ScreenInput{
			CandidateName:      screenCandidateName,
			JobTitle:           screenJobTitle,
			JobRequirements:    contents[1],
			ResumeText:         contents[0],
			AssignmentResponse: contents[2],
			InterviewAnswers:   answers,
		}, nil
	}

	logDetails := func(input types.ScreenInput, cfg common.CommandConfig) {
		logger.Info("Starting candidate screening",
			"candidate", input.CandidateName,
			"job_title", input.JobTitle,
			"resume_chars", len(input.ResumeText),
			"answer_count", len(input.InterviewAnswers),
			"output_format", cfg.OutputFormat)
	}

	screenOperation := func(ctx context.Context, input types.ScreenInput) (types.EvaluationSummary, *ai.TokenUsage, error) {
		record, usage, err := pipeline.Screen(ctx, input)
		if err != nil {
			return types.EvaluationSummary{}, nil, err
		}
		return screening.Summarize(record), usage, nil
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		screenConfig,
		args,
		createInput,
		screenOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to screen candidate: %w", err)
	}
	logger.Info("Candidate screening completed successfully")
	return nil
}
