package screening

import (
	"time"

	"hirescreen/internal/types"
)

// Summarize projects a completed EvaluationRecord into the read-only report
// shape. Missing values degrade to neutral defaults rather than failing.
func Summarize(record *types.EvaluationRecord) types.EvaluationSummary {
	summary := types.EvaluationSummary{
		CandidateName:         valueOrUnknown(record.CandidateName),
		JobTitle:              valueOrUnknown(record.JobTitle),
		SubmissionDate:        time.Now(),
		OverallRecommendation: record.OverallRecommendation,
		ConfidenceLevel:       record.ConfidenceLevel,
		FinalReasoning:        record.FinalReasoning,
		ResumeAnalysis:        record.ResumeAnalysis,
		AssignmentEval:        record.AssignmentEval,
		InterviewEval:         record.InterviewEval,
		CriticalRedFlags:      record.CriticalRedFlags,
		FollowUpQuestions:     record.FollowUpQuestions,
		EvaluationPath:        record.EvaluationPath,
	}

	if summary.OverallRecommendation == "" {
		summary.OverallRecommendation = types.RecommendConsider
	}
	if summary.CriticalRedFlags == nil {
		summary.CriticalRedFlags = []string{}
	}
	if summary.FollowUpQuestions == nil {
		summary.FollowUpQuestions = []string{}
	}
	if summary.EvaluationPath == nil {
		summary.EvaluationPath = []string{}
	}

	if record.ResumeAnalysis != nil {
		summary.Scores.Resume = record.ResumeAnalysis.Score
	}
	if record.AssignmentEval != nil {
		summary.Scores.Assignment = record.AssignmentEval.Score
	}
	if record.InterviewEval != nil {
		summary.Scores.Interview = record.InterviewEval.Score
	}

	return summary
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
