package cli

import (
	"errors"
	"fmt"
	"strings"

	"hirescreen/internal/ai"
	"hirescreen/internal/common"
	"hirescreen/internal/interview"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const (
	actionAnswer = "Answer"
	actionSkip   = "Skip this question"
	actionStop   = "Stop the interview"
)

var interviewCmd = &cobra.Command{
	Use:   "interview [resume-file]",
	Short: "Run an interactive mock interview on the terminal",
	Long: `Conduct an interactive mock interview based on a candidate's resume.
Questions are generated from the resume profile (and the job description, if
provided); each answer is scored with immediate feedback. Stopping the
interview prints a final report with the per-question evaluations.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if interviewConfig.OutputFormat == "" {
			interviewConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(interviewConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runInterview,
}

var (
	interviewConfig  common.CommandConfig
	interviewJobFile string
	interviewAnchor  string
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewConfig.OutputFile, "output", "o", "", "Report output file path (default: stdout)")
	interviewCmd.Flags().StringVar(&interviewConfig.OutputFormat, "format", "", "Report format: json, text, or markdown")
	interviewCmd.Flags().StringVar(&interviewJobFile, "job-file", "", "Job description file used to steer questions")
	interviewCmd.Flags().StringVar(&interviewAnchor, "anchor", "", "Question anchor mode: resume, job-description, or balanced")
}

func runInterview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	sessionConfig := cfg.GetSessionConfig()
	aiService, err := ai.NewService(&sessionConfig, "session", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	fileProcessor := common.NewFileProcessor(logger)
	resumeText, err := fileProcessor.ReadDocument(args[0])
	if err != nil {
		return err
	}

	session := interview.NewSession(aiService.Provider, logger)
	if err := session.SetResume(ctx, resumeText); err != nil {
		return err
	}
	if session.SummaryDegraded() {
		fmt.Println("Note: resume profile extraction failed, questions will be generic.")
	}

	if interviewJobFile != "" {
		jobDescription, err := fileProcessor.ReadDocument(interviewJobFile)
		if err != nil {
			return err
		}
		if err := session.SetJobDescription(jobDescription); err != nil {
			return err
		}
	}

	question, err := session.Begin(ctx, interviewAnchor)
	if err != nil {
		return err
	}

	logger.Info("Interview session started",
		"session_id", session.ID(),
		"anchor_mode", interviewAnchor)

	for {
		fmt.Printf("\nQuestion %d: %s\n\n", session.QuestionCount(), question)

		actionPrompt := promptui.Select{
			Label: "What would you like to do",
			Items: []string{actionAnswer, actionSkip, actionStop},
		}
		_, action, err := actionPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				action = actionStop
			} else {
				return err
			}
		}

		switch action {
		case actionAnswer:
			answerPrompt := promptui.Prompt{
				Label: "Your answer",
				Validate: func(input string) error {
					if strings.TrimSpace(input) == "" {
						return fmt.Errorf("answer must not be empty")
					}
					return nil
				},
			}
			answer, err := answerPrompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) {
					continue
				}
				return err
			}

			record, err := session.SubmitAnswer(ctx, answer)
			if err != nil {
				return err
			}
			printFeedback(record)

		case actionSkip:
			if err := session.Skip(); err != nil {
				return err
			}
			fmt.Println("Question skipped.")
		}

		if action == actionStop {
			break
		}

		question, err = session.AskQuestion(ctx)
		if err != nil {
			return err
		}
	}

	finalScore, err := session.Stop()
	if err != nil {
		return err
	}
	fmt.Printf("\nInterview complete. Final score: %.1f\n\n", finalScore)

	report, err := session.Report()
	if err != nil {
		return err
	}

	logger.Info("Interview session completed",
		"session_id", session.ID(),
		"final_score", finalScore,
		"questions_asked", report.TotalQuestions,
		"answered", report.AnsweredCount)

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(report, interviewConfig)
}

func printFeedback(record interview.AnswerRecord) {
	fmt.Printf("\nScore: %d/100\n", record.Evaluation.Score)
	if record.Degraded {
		fmt.Println("(Evaluation service was unavailable, this is a fallback score.)")
	}
	if record.Evaluation.Feedback != "" {
		fmt.Printf("Feedback: %s\n", record.Evaluation.Feedback)
	}
	for _, strength := range record.Evaluation.Strengths {
		fmt.Printf("  + %s\n", strength)
	}
	for _, area := range record.Evaluation.AreasForImprovement {
		fmt.Printf("  - %s\n", area)
	}
}
