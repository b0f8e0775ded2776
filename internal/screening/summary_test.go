package screening

import (
	"testing"
	"time"

	"hirescreen/internal/types"
)

func TestSummarize(t *testing.T) {
	record := &types.EvaluationRecord{
		CandidateName:         "Jane Doe",
		JobTitle:              "Backend Engineer",
		ResumeAnalysis:        &types.ResumeAnalysis{Score: 90},
		AssignmentEval:        &types.AssignmentEvaluation{Score: 82},
		InterviewEval:         &types.InterviewEvaluation{Score: 74},
		OverallRecommendation: types.RecommendHire,
		ConfidenceLevel:       85,
		FinalReasoning:        "strong candidate",
		CriticalRedFlags:      []string{},
		FollowUpQuestions:     []string{"salary expectations"},
		EvaluationPath:        []string{"a", "b", "c", "d"},
	}

	before := time.Now()
	summary := Summarize(record)

	if summary.CandidateName != "Jane Doe" {
		t.Errorf("Expected candidate name, got %q", summary.CandidateName)
	}
	if summary.Scores.Resume != 90 || summary.Scores.Assignment != 82 || summary.Scores.Interview != 74 {
		t.Errorf("Unexpected scores: %+v", summary.Scores)
	}
	if summary.OverallRecommendation != types.RecommendHire {
		t.Errorf("Expected HIRE, got %q", summary.OverallRecommendation)
	}
	if summary.SubmissionDate.Before(before) {
		t.Error("Expected submission date to be set at summarize time")
	}
	if len(summary.FollowUpQuestions) != 1 {
		t.Errorf("Expected follow-up questions to carry over, got %v", summary.FollowUpQuestions)
	}
}

func TestSummarizeDefaults(t *testing.T) {
	summary := Summarize(&types.EvaluationRecord{})

	if summary.CandidateName != "Unknown" {
		t.Errorf("Expected 'Unknown' candidate, got %q", summary.CandidateName)
	}
	if summary.JobTitle != "Unknown" {
		t.Errorf("Expected 'Unknown' job title, got %q", summary.JobTitle)
	}
	if summary.OverallRecommendation != types.RecommendConsider {
		t.Errorf("Expected CONSIDER default, got %q", summary.OverallRecommendation)
	}
	if summary.Scores.Resume != 0 || summary.Scores.Assignment != 0 || summary.Scores.Interview != 0 {
		t.Errorf("Expected zero scores for missing stages, got %+v", summary.Scores)
	}
	if summary.CriticalRedFlags == nil || summary.FollowUpQuestions == nil || summary.EvaluationPath == nil {
		t.Error("Expected empty slices, not nil")
	}
}
