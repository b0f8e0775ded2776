package screening

import (
	"context"
	"fmt"
	"strings"

	"hirescreen/internal/ai"
	"hirescreen/internal/config"
	"hirescreen/internal/errors"
	"hirescreen/internal/types"
)

// Audit trail lines appended per completed stage, in execution order.
const (
	auditAssignment = "Technical assignment evaluated for correctness and approach"
	auditInterview  = "Interview responses evaluated for communication and fit"
	auditResume     = "Resume analyzed for fit with job requirements"
)

// Pipeline runs the four-stage candidate screening: assignment evaluation,
// interview evaluation, resume analysis, then the final recommendation.
// Any stage failure aborts the run; no partial record is returned.
type Pipeline struct {
	assignment ai.Provider
	interview  ai.Provider
	resume     ai.Provider
	recommend  ai.Provider
	logger     *errors.Logger
}

// NewPipeline creates a pipeline from explicit providers, one per stage.
func NewPipeline(assignment, interview, resume, recommend ai.Provider, logger *errors.Logger) *Pipeline {
	return &Pipeline{
		assignment: assignment,
		interview:  interview,
		resume:     resume,
		recommend:  recommend,
		logger:     logger,
	}
}

// NewPipelineFromConfig builds a pipeline with one AI service per stage so
// each stage keeps its own model, timeout, and circuit breaker settings.
func NewPipelineFromConfig(cfg *config.Config, logger *errors.Logger) (*Pipeline, error) {
	assignmentCfg := cfg.GetAssignmentConfig()
	assignmentSvc, err := ai.NewService(&assignmentCfg, "assignment", logger)
	if err != nil {
		return nil, err
	}

	interviewCfg := cfg.GetInterviewConfig()
	interviewSvc, err := ai.NewService(&interviewCfg, "interview", logger)
	if err != nil {
		return nil, err
	}

	resumeCfg := cfg.GetResumeConfig()
	resumeSvc, err := ai.NewService(&resumeCfg, "resume", logger)
	if err != nil {
		return nil, err
	}

	recommendCfg := cfg.GetRecommendConfig()
	recommendSvc, err := ai.NewService(&recommendCfg, "recommend", logger)
	if err != nil {
		return nil, err
	}

	return NewPipeline(
		assignmentSvc.Provider,
		interviewSvc.Provider,
		resumeSvc.Provider,
		recommendSvc.Provider,
		logger,
	), nil
}

// Screen runs all four stages for one candidate and returns the completed
// record together with the token usage summed across stages. Stage order is
// fixed; the final recommendation always runs last and observes the three
// prior results.
func (p *Pipeline) Screen(ctx context.Context, input types.ScreenInput) (*types.EvaluationRecord, *ai.TokenUsage, error) {
	record := &types.EvaluationRecord{
		CandidateName:      input.CandidateName,
		JobTitle:           input.JobTitle,
		JobRequirements:    input.JobRequirements,
		ResumeText:         input.ResumeText,
		AssignmentResponse: input.AssignmentResponse,
		InterviewAnswers:   input.InterviewAnswers,
		CriticalRedFlags:   []string{},
		FollowUpQuestions:  []string{},
		EvaluationPath:     []string{},
	}

	p.logger.Info("Starting candidate screening",
		"candidate", record.CandidateName,
		"job_title", record.JobTitle)

	var total *ai.TokenUsage
	stages := []func(context.Context, *types.EvaluationRecord) (*ai.TokenUsage, error){
		p.runAssignmentStage,
		p.runInterviewStage,
		p.runResumeStage,
		p.runRecommendStage,
	}
	for _, stage := range stages {
		usage, err := stage(ctx, record)
		if err != nil {
			return nil, nil, err
		}
		total = accumulateUsage(total, usage)
	}

	p.logger.Info("Candidate screening completed",
		"candidate", record.CandidateName,
		"recommendation", record.OverallRecommendation,
		"confidence", record.ConfidenceLevel)

	return record, total, nil
}

func (p *Pipeline) runAssignmentStage(ctx context.Context, record *types.EvaluationRecord) (*ai.TokenUsage, error) {
	eval, usage, err := p.assignment.EvaluateAssignment(ctx, types.AssignmentInput{
		JobTitle:           record.JobTitle,
		JobRequirements:    record.JobRequirements,
		AssignmentResponse: record.AssignmentResponse,
	})
	if err != nil {
		return nil, stageError("assignment", "Assignment evaluation failed", err)
	}

	record.AssignmentEval = &eval
	record.EvaluationPath = append(record.EvaluationPath, auditAssignment)
	p.logStage("assignment", eval.Score, usage)
	return usage, nil
}

func (p *Pipeline) runInterviewStage(ctx context.Context, record *types.EvaluationRecord) (*ai.TokenUsage, error) {
	eval, usage, err := p.interview.EvaluateInterview(ctx, types.InterviewInput{
		JobTitle:        record.JobTitle,
		JobRequirements: record.JobRequirements,
		Answers:         record.InterviewAnswers,
	})
	if err != nil {
		return nil, stageError("interview", "Interview evaluation failed", err)
	}

	record.InterviewEval = &eval
	record.EvaluationPath = append(record.EvaluationPath, auditInterview)
	p.logStage("interview", eval.Score, usage)
	return usage, nil
}

func (p *Pipeline) runResumeStage(ctx context.Context, record *types.EvaluationRecord) (*ai.TokenUsage, error) {
	analysis, usage, err := p.resume.AnalyzeResume(ctx, types.ResumeInput{
		JobTitle:        record.JobTitle,
		JobRequirements: record.JobRequirements,
		ResumeText:      record.ResumeText,
	})
	if err != nil {
		return nil, stageError("resume", "Resume analysis failed", err)
	}

	record.ResumeAnalysis = &analysis
	record.EvaluationPath = append(record.EvaluationPath, auditResume)
	p.logStage("resume", analysis.Score, usage)
	return usage, nil
}

func (p *Pipeline) runRecommendStage(ctx context.Context, record *types.EvaluationRecord) (*ai.TokenUsage, error) {
	rec, usage, err := p.recommend.RecommendHire(ctx, types.RecommendInput{
		ResumeAnalysis: record.ResumeAnalysis,
		AssignmentEval: record.AssignmentEval,
		InterviewEval:  record.InterviewEval,
	})
	if err != nil {
		return nil, stageError("recommend", "Final recommendation failed", err)
	}

	record.OverallRecommendation = normalizeRecommendation(rec.OverallRecommendation)
	record.ConfidenceLevel = clampConfidence(rec.ConfidenceLevel)
	record.FinalReasoning = rec.FinalReasoning
	if rec.CriticalRedFlags != nil {
		record.CriticalRedFlags = rec.CriticalRedFlags
	}
	if rec.FollowUpQuestions != nil {
		record.FollowUpQuestions = rec.FollowUpQuestions
	}

	record.EvaluationPath = append(record.EvaluationPath,
		fmt.Sprintf("Final recommendation: %s (Confidence: %d%%)", record.OverallRecommendation, record.ConfidenceLevel))
	p.logStage("recommend", record.ConfidenceLevel, usage)
	return usage, nil
}

// accumulateUsage sums stage token usage, staying nil until a stage reports
// usage at all.
func accumulateUsage(total, stage *ai.TokenUsage) *ai.TokenUsage {
	if stage == nil {
		return total
	}
	if total == nil {
		total = &ai.TokenUsage{}
	}
	total.InputTokens += stage.InputTokens
	total.OutputTokens += stage.OutputTokens
	total.TotalTokens += stage.TotalTokens
	return total
}

func (p *Pipeline) logStage(stage string, score int, usage *ai.TokenUsage) {
	args := []any{"stage", stage, "score", score}
	if usage != nil {
		args = append(args,
			"input_tokens", usage.InputTokens,
			"output_tokens", usage.OutputTokens,
			"total_tokens", usage.TotalTokens)
	}
	p.logger.Debug("Screening stage completed", args...)
}

// stageError wraps a stage failure with the stage name so callers can tell
// which stage aborted the run.
func stageError(stage, message string, cause error) error {
	return errors.NewAIError(errors.ErrCodeStageFailed, message, cause).
		WithContext("stage", stage)
}

// normalizeRecommendation coerces the model's decision to one of the three
// allowed literals, defaulting to CONSIDER.
func normalizeRecommendation(decision string) string {
	switch strings.ToUpper(strings.TrimSpace(decision)) {
	case types.RecommendHire:
		return types.RecommendHire
	case types.RecommendReject:
		return types.RecommendReject
	default:
		return types.RecommendConsider
	}
}

// clampConfidence forces the confidence level into [0, 100].
func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
