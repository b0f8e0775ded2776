package types

import "time"

// Recommendation decisions produced by the final pipeline stage.
const (
	RecommendHire     = "HIRE"
	RecommendConsider = "CONSIDER"
	RecommendReject   = "REJECT"
)

// InterviewQA is a single interview question and the candidate's answer.
type InterviewQA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ScreenInput holds everything the evaluation pipeline needs for one candidate.
type ScreenInput struct {
	CandidateName      string        `json:"candidateName"`
	JobTitle           string        `json:"jobTitle"`
	JobRequirements    string        `json:"jobRequirements"`
	ResumeText         string        `json:"resumeText"`
	AssignmentResponse string        `json:"assignmentResponse"`
	InterviewAnswers   []InterviewQA `json:"interviewAnswers"`
}

// AssignmentInput parameterizes assignment evaluation.
type AssignmentInput struct {
	JobTitle           string
	JobRequirements    string
	AssignmentResponse string
}

// InterviewInput parameterizes interview evaluation.
type InterviewInput struct {
	JobTitle        string
	JobRequirements string
	Answers         []InterviewQA
}

// ResumeInput parameterizes resume analysis.
type ResumeInput struct {
	JobTitle        string
	JobRequirements string
	ResumeText      string
}

// RecommendInput carries the three stage results into the final recommendation.
// Missing stages are treated as scoring zero.
type RecommendInput struct {
	ResumeAnalysis *ResumeAnalysis
	AssignmentEval *AssignmentEvaluation
	InterviewEval  *InterviewEvaluation
}

// AssignmentEvaluation is the structured result of the assignment stage.
type AssignmentEvaluation struct {
	Score               int      `json:"score"`
	CorrectnessScore    int      `json:"correctnessScore"`
	CodeQualityScore    int      `json:"codeQualityScore"`
	ApproachScore       int      `json:"approachScore"`
	ProblemSolvingScore int      `json:"problemSolvingScore"`
	TechnicalDepthScore int      `json:"technicalDepthScore"`
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	RedFlags            []string `json:"redFlags"`
	Reasoning           string   `json:"reasoning"`
}

// InterviewEvaluation is the structured result of the interview stage.
type InterviewEvaluation struct {
	Score               int      `json:"score"`
	CommunicationScore  int      `json:"communicationScore"`
	CulturalFitScore    int      `json:"culturalFitScore"`
	TechnicalDepthScore int      `json:"technicalDepthScore"`
	ProblemSolvingScore int      `json:"problemSolvingScore"`
	LeadershipScore     int      `json:"leadershipScore"`
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	RedFlags            []string `json:"redFlags"`
	Reasoning           string   `json:"reasoning"`
}

// ResumeAnalysis is the structured result of the resume stage.
type ResumeAnalysis struct {
	Score                    int      `json:"score"`
	ExperienceYears          float64  `json:"experienceYears"`
	EducationLevel           string   `json:"educationLevel"`
	MeetsMinimumRequirements bool     `json:"meetsMinimumRequirements"`
	Skills                   []string `json:"skills"`
	RelevantExperience       []string `json:"relevantExperience"`
	GapsOrConcerns           []string `json:"gapsOrConcerns"`
	Reasoning                string   `json:"reasoning"`
}

// Recommendation is the structured result of the final pipeline stage.
type Recommendation struct {
	OverallRecommendation string   `json:"overallRecommendation"`
	ConfidenceLevel       int      `json:"confidenceLevel"`
	FinalReasoning        string   `json:"finalReasoning"`
	CriticalRedFlags      []string `json:"criticalRedFlags"`
	FollowUpQuestions     []string `json:"followUpQuestions"`
}

// EvaluationRecord accumulates all inputs and stage results for one candidate.
// Result pointers stay nil until their stage has run; the record is complete
// only after all four stages succeed.
type EvaluationRecord struct {
	CandidateName      string        `json:"candidateName"`
	JobTitle           string        `json:"jobTitle"`
	JobRequirements    string        `json:"jobRequirements"`
	ResumeText         string        `json:"resumeText"`
	AssignmentResponse string        `json:"assignmentResponse"`
	InterviewAnswers   []InterviewQA `json:"interviewAnswers"`

	ResumeAnalysis *ResumeAnalysis       `json:"resumeAnalysis,omitempty"`
	AssignmentEval *AssignmentEvaluation `json:"assignmentEval,omitempty"`
	InterviewEval  *InterviewEvaluation  `json:"interviewEval,omitempty"`

	OverallRecommendation string   `json:"overallRecommendation,omitempty"`
	ConfidenceLevel       int      `json:"confidenceLevel"`
	FinalReasoning        string   `json:"finalReasoning,omitempty"`
	CriticalRedFlags      []string `json:"criticalRedFlags"`
	FollowUpQuestions     []string `json:"followUpQuestions"`

	// EvaluationPath is the audit trail: one line appended per completed stage.
	EvaluationPath []string `json:"evaluationPath"`
}

// ScoreSummary groups the three stage scores for reporting.
type ScoreSummary struct {
	Resume     int `json:"resume"`
	Assignment int `json:"assignment"`
	Interview  int `json:"interview"`
}

// EvaluationSummary is a read-only projection of a completed EvaluationRecord,
// intended for reporting and external consumption.
type EvaluationSummary struct {
	CandidateName         string                `json:"candidateName"`
	JobTitle              string                `json:"jobTitle"`
	SubmissionDate        time.Time             `json:"submissionDate"`
	Scores                ScoreSummary          `json:"scores"`
	OverallRecommendation string                `json:"overallRecommendation"`
	ConfidenceLevel       int                   `json:"confidenceLevel"`
	FinalReasoning        string                `json:"finalReasoning"`
	ResumeAnalysis        *ResumeAnalysis       `json:"resumeAnalysis,omitempty"`
	AssignmentEval        *AssignmentEvaluation `json:"assignmentEval,omitempty"`
	InterviewEval         *InterviewEvaluation  `json:"interviewEval,omitempty"`
	CriticalRedFlags      []string              `json:"criticalRedFlags"`
	FollowUpQuestions     []string              `json:"followUpQuestions"`
	EvaluationPath        []string              `json:"evaluationPath"`
}

// ResumeSummary is the condensed resume profile used to steer interview
// question generation. Extraction is best-effort: on parse failure the
// session substitutes FallbackResumeSummary instead of aborting.
type ResumeSummary struct {
	Name            string   `json:"name"`
	ExperienceYears float64  `json:"experienceYears"`
	Skills          []string `json:"skills"`
	Technologies    []string `json:"technologies"`
	Companies       []string `json:"companies"`
	Roles           []string `json:"roles"`
	Education       string   `json:"education"`
	KeyAchievements []string `json:"keyAchievements"`
	Summary         string   `json:"summary"`
}

// FallbackResumeSummary returns the placeholder profile substituted when
// resume extraction cannot be parsed.
func FallbackResumeSummary() ResumeSummary {
	return ResumeSummary{
		Name:            "Candidate",
		ExperienceYears: 0,
		Skills:          []string{},
		Technologies:    []string{},
		Companies:       []string{},
		Roles:           []string{},
		Education:       "",
		KeyAchievements: []string{},
		Summary:         "Resume provided",
	}
}

// AnswerEvaluation scores a single interview answer.
type AnswerEvaluation struct {
	Score               int      `json:"score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Feedback            string   `json:"feedback"`
}

// FallbackAnswerEvaluation returns the fixed evaluation substituted when
// answer scoring fails; the interactive flow degrades instead of aborting.
func FallbackAnswerEvaluation() AnswerEvaluation {
	return AnswerEvaluation{
		Score:               70,
		Strengths:           []string{"Good effort"},
		AreasForImprovement: []string{"Provide more detail"},
		Feedback:            "Your answer shows understanding.",
	}
}

// QuestionInput parameterizes interview question generation.
type QuestionInput struct {
	Summary           ResumeSummary
	JobDescription    string
	QuestionNumber    int
	PreviousQuestions []string
	AnchorMode        string
}

// AnswerInput parameterizes interview answer evaluation.
type AnswerInput struct {
	Question       string
	Answer         string
	Summary        ResumeSummary
	JobDescription string
}
