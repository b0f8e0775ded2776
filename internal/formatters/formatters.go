package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"hirescreen/internal/interview"
	"hirescreen/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "EvaluationSummary", &SummaryTextFormatter{})
	registry.RegisterFormatter("markdown", "EvaluationSummary", &SummaryMarkdownFormatter{})
	registry.RegisterFormatter("text", "InterviewReport", &InterviewTextFormatter{})
	registry.RegisterFormatter("markdown", "InterviewReport", &InterviewMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.EvaluationSummary:
		return "EvaluationSummary"
	case interview.Report:
		return "InterviewReport"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// SummaryTextFormatter handles text formatting for screening summaries
type SummaryTextFormatter struct{}

func (stf *SummaryTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.EvaluationSummary)
	if !ok {
		return "", fmt.Errorf("expected EvaluationSummary, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CANDIDATE SCREENING SUMMARY ===\n\n")
	output.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateName))
	output.WriteString(fmt.Sprintf("Job Title: %s\n", result.JobTitle))
	output.WriteString(fmt.Sprintf("Date: %s\n\n", result.SubmissionDate.Format("2006-01-02 15:04:05")))

	output.WriteString("=== SCORES ===\n")
	output.WriteString(fmt.Sprintf("Resume: %d/100\n", result.Scores.Resume))
	output.WriteString(fmt.Sprintf("Assignment: %d/100\n", result.Scores.Assignment))
	output.WriteString(fmt.Sprintf("Interview: %d/100\n\n", result.Scores.Interview))

	output.WriteString("=== RECOMMENDATION ===\n")
	output.WriteString(fmt.Sprintf("Decision: %s\n", result.OverallRecommendation))
	output.WriteString(fmt.Sprintf("Confidence: %d%%\n\n", result.ConfidenceLevel))
	output.WriteString("Reasoning:\n")
	output.WriteString(result.FinalReasoning)
	output.WriteString("\n\n")

	if len(result.CriticalRedFlags) > 0 {
		output.WriteString("=== CRITICAL RED FLAGS ===\n")
		for _, flag := range result.CriticalRedFlags {
			output.WriteString(fmt.Sprintf("- %s\n", flag))
		}
		output.WriteString("\n")
	}

	if len(result.FollowUpQuestions) > 0 {
		output.WriteString("=== FOLLOW-UP QUESTIONS ===\n")
		for i, question := range result.FollowUpQuestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, question))
		}
		output.WriteString("\n")
	}

	if len(result.EvaluationPath) > 0 {
		output.WriteString("=== EVALUATION PATH ===\n")
		for i, step := range result.EvaluationPath {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
	}

	return output.String(), nil
}

func (stf *SummaryTextFormatter) SupportedType() string {
	return "EvaluationSummary"
}

// SummaryMarkdownFormatter handles markdown formatting for screening summaries
type SummaryMarkdownFormatter struct{}

func (smf *SummaryMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.EvaluationSummary)
	if !ok {
		return "", fmt.Errorf("expected EvaluationSummary, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Candidate Screening Summary\n\n")
	output.WriteString(fmt.Sprintf("**Candidate:** %s\n\n", result.CandidateName))
	output.WriteString(fmt.Sprintf("**Job Title:** %s\n\n", result.JobTitle))
	output.WriteString(fmt.Sprintf("**Date:** %s\n\n", result.SubmissionDate.Format("2006-01-02 15:04:05")))

	output.WriteString("## Scores\n\n")
	output.WriteString(fmt.Sprintf("| Resume | Assignment | Interview |\n|---|---|---|\n| %d/100 | %d/100 | %d/100 |\n\n",
		result.Scores.Resume, result.Scores.Assignment, result.Scores.Interview))

	output.WriteString("## Recommendation\n\n")
	output.WriteString(fmt.Sprintf("**Decision:** %s\n\n", result.OverallRecommendation))
	output.WriteString(fmt.Sprintf("**Confidence:** %d%%\n\n", result.ConfidenceLevel))
	output.WriteString("### Reasoning\n")
	output.WriteString(result.FinalReasoning)
	output.WriteString("\n\n")

	if len(result.CriticalRedFlags) > 0 {
		output.WriteString("## Critical Red Flags\n")
		for _, flag := range result.CriticalRedFlags {
			output.WriteString(fmt.Sprintf("- %s\n", flag))
		}
		output.WriteString("\n")
	}

	if len(result.FollowUpQuestions) > 0 {
		output.WriteString("## Follow-Up Questions\n\n")
		for i, question := range result.FollowUpQuestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, question))
		}
		output.WriteString("\n")
	}

	if len(result.EvaluationPath) > 0 {
		output.WriteString("## Evaluation Path\n\n")
		for i, step := range result.EvaluationPath {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
	}

	return output.String(), nil
}

func (smf *SummaryMarkdownFormatter) SupportedType() string {
	return "EvaluationSummary"
}

// InterviewTextFormatter handles text formatting for interview reports
type InterviewTextFormatter struct{}

func (itf *InterviewTextFormatter) Format(data any) (string, error) {
	result, ok := data.(interview.Report)
	if !ok {
		return "", fmt.Errorf("expected interview.Report, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== INTERVIEW REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Final Score: %.1f/100\n", result.FinalScore))
	output.WriteString(fmt.Sprintf("Questions Asked: %d\n", result.TotalQuestions))
	output.WriteString(fmt.Sprintf("Questions Answered: %d\n", result.AnsweredCount))
	output.WriteString(fmt.Sprintf("Best Score: %d\n", result.BestScore))
	output.WriteString(fmt.Sprintf("Lowest Score: %d\n\n", result.LowestScore))

	if len(result.Evaluations) > 0 {
		output.WriteString("=== QUESTION-BY-QUESTION FEEDBACK ===\n\n")
		for i, record := range result.Evaluations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, record.Question))
			output.WriteString(fmt.Sprintf("   Score: %d/100\n", record.Evaluation.Score))
			output.WriteString(fmt.Sprintf("   Strengths: %s\n", strings.Join(record.Evaluation.Strengths, ", ")))
			output.WriteString(fmt.Sprintf("   Improve: %s\n", strings.Join(record.Evaluation.AreasForImprovement, ", ")))
			output.WriteString(fmt.Sprintf("   Feedback: %s\n\n", record.Evaluation.Feedback))
		}
	}

	return output.String(), nil
}

func (itf *InterviewTextFormatter) SupportedType() string {
	return "InterviewReport"
}

// InterviewMarkdownFormatter handles markdown formatting for interview reports
type InterviewMarkdownFormatter struct{}

func (imf *InterviewMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(interview.Report)
	if !ok {
		return "", fmt.Errorf("expected interview.Report, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Interview Report\n\n")
	output.WriteString(fmt.Sprintf("**Final Score:** %.1f/100\n\n", result.FinalScore))
	output.WriteString(fmt.Sprintf("**Questions Asked:** %d | **Answered:** %d\n\n", result.TotalQuestions, result.AnsweredCount))
	output.WriteString(fmt.Sprintf("**Best Score:** %d | **Lowest Score:** %d\n\n", result.BestScore, result.LowestScore))

	if len(result.Evaluations) > 0 {
		output.WriteString("## Question-by-Question Feedback\n\n")
		for i, record := range result.Evaluations {
			output.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, record.Question))
			output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", record.Evaluation.Score))
			output.WriteString(fmt.Sprintf("**Strengths:** %s\n\n", strings.Join(record.Evaluation.Strengths, ", ")))
			output.WriteString(fmt.Sprintf("**Improve:** %s\n\n", strings.Join(record.Evaluation.AreasForImprovement, ", ")))
			output.WriteString(fmt.Sprintf("**Feedback:** %s\n\n", record.Evaluation.Feedback))
		}
	}

	return output.String(), nil
}

func (imf *InterviewMarkdownFormatter) SupportedType() string {
	return "InterviewReport"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
