package ai

import (
	"context"

	"hirescreen/internal/types"
)

// Provider interface for different AI implementations
// All evaluation methods return token usage information - callers can ignore it if not needed
type Provider interface {
	EvaluateAssignment(ctx context.Context, input types.AssignmentInput) (types.AssignmentEvaluation, *TokenUsage, error)
	EvaluateInterview(ctx context.Context, input types.InterviewInput) (types.InterviewEvaluation, *TokenUsage, error)
	AnalyzeResume(ctx context.Context, input types.ResumeInput) (types.ResumeAnalysis, *TokenUsage, error)
	RecommendHire(ctx context.Context, input types.RecommendInput) (types.Recommendation, *TokenUsage, error)

	ExtractResumeSummary(ctx context.Context, resumeText string) (types.ResumeSummary, *TokenUsage, error)
	GenerateQuestion(ctx context.Context, input types.QuestionInput) (string, *TokenUsage, error)
	EvaluateAnswer(ctx context.Context, input types.AnswerInput) (types.AnswerEvaluation, *TokenUsage, error)

	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
