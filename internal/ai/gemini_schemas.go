package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"hirescreen/internal/types"

	"google.golang.org/genai"
)

// Excerpt limits keep interactive prompts small enough for fast turnaround.
const (
	maxResumeExcerpt     = 2000
	maxAnswerExcerpt     = 1000
	maxQuestionJDExcerpt = 1000
	maxAnswerJDExcerpt   = 500
)

// buildAssignmentSchema creates the schema for assignment evaluation requests
func (g *GeminiProvider) buildAssignmentSchema() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":               {Type: genai.TypeInteger},
				"correctnessScore":    {Type: genai.TypeInteger},
				"codeQualityScore":    {Type: genai.TypeInteger},
				"approachScore":       {Type: genai.TypeInteger},
				"problemSolvingScore": {Type: genai.TypeInteger},
				"technicalDepthScore": {Type: genai.TypeInteger},
				"strengths": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"weaknesses": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"redFlags": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"reasoning": {Type: genai.TypeString},
			},
			Required: []string{"score", "correctnessScore", "codeQualityScore", "approachScore", "problemSolvingScore", "technicalDepthScore", "strengths", "weaknesses", "redFlags", "reasoning"},
		},
	}

	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// buildInterviewSchema creates the schema for interview evaluation requests
func (g *GeminiProvider) buildInterviewSchema() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":               {Type: genai.TypeInteger},
				"communicationScore":  {Type: genai.TypeInteger},
				"culturalFitScore":    {Type: genai.TypeInteger},
				"technicalDepthScore": {Type: genai.TypeInteger},
				"problemSolvingScore": {Type: genai.TypeInteger},
				"leadershipScore":     {Type: genai.TypeInteger},
				"strengths": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"weaknesses": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"redFlags": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"reasoning": {Type: genai.TypeString},
			},
			Required: []string{"score", "communicationScore", "culturalFitScore", "technicalDepthScore", "problemSolvingScore", "leadershipScore", "strengths", "weaknesses", "redFlags", "reasoning"},
		},
	}

	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// buildResumeSchema creates the schema for resume analysis requests
func (g *GeminiProvider) buildResumeSchema() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":                    {Type: genai.TypeInteger},
				"experienceYears":          {Type: genai.TypeNumber},
				"educationLevel":           {Type: genai.TypeString},
				"meetsMinimumRequirements": {Type: genai.TypeBoolean},
				"skills": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"relevantExperience": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"gapsOrConcerns": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"reasoning": {Type: genai.TypeString},
			},
			Required: []string{"score", "experienceYears", "educationLevel", "meetsMinimumRequirements", "skills", "relevantExperience", "gapsOrConcerns", "reasoning"},
		},
	}

	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// buildRecommendSchema creates the schema for final recommendation requests
func (g *GeminiProvider) buildRecommendSchema() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"overallRecommendation": {
					Type: genai.TypeString,
					Enum: []string{types.RecommendHire, types.RecommendConsider, types.RecommendReject},
				},
				"confidenceLevel": {Type: genai.TypeInteger},
				"finalReasoning":  {Type: genai.TypeString},
				"criticalRedFlags": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"followUpQuestions": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"overallRecommendation", "confidenceLevel", "finalReasoning", "criticalRedFlags", "followUpQuestions"},
		},
	}

	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// buildSummarySchema creates the schema for resume summary extraction requests
func (g *GeminiProvider) buildSummarySchema() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":            {Type: genai.TypeString},
				"experienceYears": {Type: genai.TypeNumber},
				"skills": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"technologies": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"companies": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"roles": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"education": {Type: genai.TypeString},
				"keyAchievements": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"summary": {Type: genai.TypeString},
			},
			Required: []string{"name", "experienceYears", "skills", "technologies", "companies", "roles", "education", "keyAchievements", "summary"},
		},
	}

	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// buildAnswerSchema creates the schema for answer evaluation requests
func (g *GeminiProvider) buildAnswerSchema() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score": {Type: genai.TypeInteger},
				"strengths": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"areasForImprovement": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"feedback": {Type: genai.TypeString},
			},
			Required: []string{"score", "strengths", "areasForImprovement", "feedback"},
		},
	}

	if *g.config.Temperature > 0 {
		config.Temperature = g.config.Temperature
	}

	return config
}

// formatInterviewAnswers renders question/answer pairs as the prompt transcript
func formatInterviewAnswers(answers []types.InterviewQA) string {
	lines := make([]string, 0, len(answers))
	for _, qa := range answers {
		lines = append(lines, fmt.Sprintf("Q: %s\nA: %s", qa.Question, qa.Answer))
	}
	return strings.Join(lines, "\n")
}

// marshalStageResult renders a stage result for embedding in the recommendation prompt
func marshalStageResult(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(data)
}

// truncateRunes limits s to at most n runes
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// firstN returns at most the first n elements of items
func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// candidateInfoBlock renders the condensed candidate profile for question generation
func candidateInfoBlock(summary types.ResumeSummary) string {
	return fmt.Sprintf("Name: %s\nExperience: %g years\nSkills: %s\nCompanies: %s\nRoles: %s",
		summary.Name,
		summary.ExperienceYears,
		strings.Join(firstN(summary.Skills, 5), ", "),
		strings.Join(firstN(summary.Companies, 3), ", "),
		strings.Join(firstN(summary.Roles, 3), ", "))
}

// questionContextBlock renders the optional job description excerpt and anchor
// emphasis for question generation
func questionContextBlock(jobDescription, anchorMode string) string {
	var b strings.Builder
	if jobDescription != "" {
		b.WriteString("\n**Job Description:**\n")
		b.WriteString(truncateRunes(jobDescription, maxQuestionJDExcerpt))
		b.WriteString("\n")
	}
	switch anchorMode {
	case "resume":
		b.WriteString("\nEmphasize the candidate's resume and past work.\n")
	case "job-description":
		b.WriteString("\nEmphasize the job description's requirements.\n")
	}
	return b.String()
}

// previousQuestionsBlock renders the last three asked questions to discourage repetition
func previousQuestionsBlock(previous []string) string {
	if len(previous) == 0 {
		return "None - this is the first question"
	}
	recent := previous
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	lines := make([]string, 0, len(recent))
	for i, q := range recent {
		lines = append(lines, fmt.Sprintf("Q%d: %s", i+1, q))
	}
	return strings.Join(lines, "\n")
}

// answerContextBlock renders the optional job description excerpt for answer evaluation
func answerContextBlock(jobDescription string) string {
	if jobDescription == "" {
		return "\n"
	}
	return "\n**Job Description:**\n" + truncateRunes(jobDescription, maxAnswerJDExcerpt) + "\n"
}
