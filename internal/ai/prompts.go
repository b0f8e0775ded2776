package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	EvaluateAssignment string
	EvaluateInterview  string
	AnalyzeResume      string
	RecommendHire      string
	ExtractSummary     string
	GenerateQuestion   string
	EvaluateAnswer     string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	EvaluateAssignment string
	EvaluateInterview  string
	AnalyzeResume      string
	RecommendHire      string
	ExtractSummary     string
	GenerateQuestion   string
	EvaluateAnswer     string
}

const recruiterSystemPrompt = `You are an expert technical recruiter and hiring manager with deep experience in evaluating engineering talent. Provide thorough, fair, and constructive assessments.`

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	EvaluateAssignment: recruiterSystemPrompt,
	EvaluateInterview:  recruiterSystemPrompt,
	AnalyzeResume:      recruiterSystemPrompt,
	RecommendHire:      recruiterSystemPrompt,
	ExtractSummary:     `You are an experienced technical interviewer conducting a professional interview.`,
	GenerateQuestion:   `You are an expert technical recruiter and interviewer.`,
	EvaluateAnswer:     `You are an expert technical interviewer.`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	EvaluateAssignment: `Evaluate this technical assignment submission.

**Job Title:**
%s

**Job Requirements:**
-----
%s
-----

**Assignment Response:**
-----
%s
-----

Score the submission from 0 to 100 overall, and score each dimension from 0 to 100: correctness, code quality, approach, problem solving, and technical depth.
List the submission's strengths, weaknesses, and any red flags, and explain your reasoning in detail.`,

	EvaluateInterview: `Evaluate these interview responses.

**Job Title:**
%s

**Job Requirements:**
-----
%s
-----

**Interview Responses:**
-----
%s
-----

Score the responses from 0 to 100 overall, and score each dimension from 0 to 100: communication, cultural fit, technical depth, problem solving, and leadership.
List the candidate's strengths, weaknesses, and any red flags, and explain your reasoning in detail.`,

	AnalyzeResume: `Analyze this resume against the job requirements.

**Job Title:**
%s

**Job Requirements:**
-----
%s
-----

**Resume:**
-----
%s
-----

Score the resume's fit from 0 to 100. Estimate the candidate's years of experience and education level, and decide whether the resume meets the minimum requirements for the role.
List the identified skills, the relevant work experience, and any gaps or concerns, and explain your reasoning in detail.`,

	RecommendHire: `Make a final hiring recommendation based on all evaluation data.

**Resume Score:** %d/100
**Assignment Score:** %d/100
**Interview Score:** %d/100

**Resume Analysis:**
%s

**Assignment Evaluation:**
%s

**Interview Evaluation:**
%s

Recommend exactly one of HIRE, CONSIDER, or REJECT, with a confidence level from 0 to 100.
Explain your final reasoning in detail, list any critical red flags, and suggest follow-up questions to clarify weak areas.`,

	ExtractSummary: `Analyze this resume and extract key information about the candidate.

**Resume:**
-----
%s
-----

Extract the candidate's name (or "Unknown"), years of experience, skills, technologies, companies, roles, education details, key achievements, and a brief professional summary.`,

	GenerateQuestion: `Generate question #%d for a mock interview.

**Candidate Info From Resume:**
%s
%s
**Recent Questions (avoid repeating):**
%s

Guidelines:
1. Ask ONE clear, specific question
2. Base it on the candidate's actual experience, skills, and projects
3. Progress from general to specific
4. Keep it conversational and natural
5. Avoid repeating previous questions

Return ONLY the question, nothing else.`,

	EvaluateAnswer: `Evaluate this interview answer on a scale of 0 to 100.

**Question:**
%s

**Answer:**
-----
%s
-----
%s
Score the answer, list its strengths and areas for improvement, and give one or two sentences of direct feedback for the candidate.`,
}
