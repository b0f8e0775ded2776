package ai

import (
	"strings"
	"testing"

	"hirescreen/internal/types"
)

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("hello", 10); got != "hello" {
		t.Errorf("Expected short string unchanged, got %q", got)
	}
	if got := truncateRunes("hello", 3); got != "hel" {
		t.Errorf("Expected 'hel', got %q", got)
	}
	// Multi-byte runes must not be split
	if got := truncateRunes("héllo", 2); got != "hé" {
		t.Errorf("Expected 'hé', got %q", got)
	}
}

func TestPreviousQuestionsBlock(t *testing.T) {
	if got := previousQuestionsBlock(nil); got != "None - this is the first question" {
		t.Errorf("Expected first-question placeholder, got %q", got)
	}

	questions := []string{"first", "second", "third", "fourth", "fifth"}
	block := previousQuestionsBlock(questions)

	// Only the last three questions appear
	if strings.Contains(block, "first") || strings.Contains(block, "second") {
		t.Errorf("Expected only the last three questions, got %q", block)
	}
	if !strings.Contains(block, "Q1: third") || !strings.Contains(block, "Q3: fifth") {
		t.Errorf("Expected renumbered recent questions, got %q", block)
	}
}

func TestCandidateInfoBlock(t *testing.T) {
	summary := types.ResumeSummary{
		Name:            "Jane Doe",
		ExperienceYears: 5,
		Skills:          []string{"Go", "Python", "SQL", "Docker", "Kubernetes", "Terraform"},
		Companies:       []string{"Acme", "Globex", "Initech", "Umbrella"},
		Roles:           []string{"Backend Engineer"},
	}

	block := candidateInfoBlock(summary)

	if !strings.Contains(block, "Name: Jane Doe") {
		t.Errorf("Expected candidate name, got %q", block)
	}
	if !strings.Contains(block, "Experience: 5 years") {
		t.Errorf("Expected experience years, got %q", block)
	}
	// Skills capped at five, companies at three
	if strings.Contains(block, "Terraform") {
		t.Errorf("Expected at most five skills, got %q", block)
	}
	if strings.Contains(block, "Umbrella") {
		t.Errorf("Expected at most three companies, got %q", block)
	}
}

func TestFormatInterviewAnswers(t *testing.T) {
	answers := []types.InterviewQA{
		{Question: "Tell me about a challenge", Answer: "We migrated a monolith"},
		{Question: "Why this role", Answer: "I like the domain"},
	}

	text := formatInterviewAnswers(answers)

	expected := "Q: Tell me about a challenge\nA: We migrated a monolith\nQ: Why this role\nA: I like the domain"
	if text != expected {
		t.Errorf("Expected %q, got %q", expected, text)
	}
}

func TestMarshalStageResult(t *testing.T) {
	var analysis *types.ResumeAnalysis
	if got := marshalStageResult(analysis); got != "null" {
		t.Errorf("Expected 'null' for missing stage result, got %q", got)
	}

	eval := &types.AssignmentEvaluation{Score: 85, Reasoning: "solid"}
	got := marshalStageResult(eval)
	if !strings.Contains(got, `"score": 85`) {
		t.Errorf("Expected marshalled score, got %q", got)
	}
}

func TestQuestionContextBlock(t *testing.T) {
	if got := questionContextBlock("", "balanced"); got != "" {
		t.Errorf("Expected empty block without job description, got %q", got)
	}

	block := questionContextBlock("Backend role with Go and SQL", "job-description")
	if !strings.Contains(block, "Backend role with Go and SQL") {
		t.Errorf("Expected job description excerpt, got %q", block)
	}
	if !strings.Contains(block, "Emphasize the job description") {
		t.Errorf("Expected anchor emphasis, got %q", block)
	}

	long := strings.Repeat("x", 2*maxQuestionJDExcerpt)
	block = questionContextBlock(long, "")
	if strings.Contains(block, strings.Repeat("x", maxQuestionJDExcerpt+1)) {
		t.Errorf("Expected job description excerpt to be truncated")
	}
}
