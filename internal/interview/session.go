package interview

import (
	"context"
	"strings"
	"sync"
	"time"

	"hirescreen/internal/ai"
	"hirescreen/internal/errors"
	"hirescreen/internal/types"

	"github.com/google/uuid"
)

// State names for the session lifecycle.
type State string

const (
	StateSetup        State = "setup"
	StateInterviewing State = "interviewing"
	StateCompleted    State = "completed"
)

// Anchor modes choosing the interview's starting emphasis.
const (
	AnchorResume         = "resume"
	AnchorJobDescription = "job-description"
	AnchorBalanced       = "balanced"
)

// fallbackQuestion is substituted when question generation fails. The
// interactive flow degrades instead of aborting.
const fallbackQuestion = "Tell me about your most recent project and what technologies you used."

// TranscriptEntry is one chat line in the running interview transcript.
type TranscriptEntry struct {
	Kind    string `json:"kind"` // question, answer, feedback
	Content string `json:"content"`
	Score   int    `json:"score,omitempty"`
}

// AnswerRecord pairs an asked question with its answer and evaluation.
// Degraded marks evaluations that fell back after an AI failure.
type AnswerRecord struct {
	Question   string                 `json:"question"`
	Answer     string                 `json:"answer"`
	Evaluation types.AnswerEvaluation `json:"evaluation"`
	Degraded   bool                   `json:"degraded,omitempty"`
}

// Session drives one mock interview through setup, interviewing, and
// completed. All methods are safe for concurrent use; the server may field
// overlapping requests for the same session.
type Session struct {
	id       string
	provider ai.Provider
	logger   *errors.Logger

	mu              sync.Mutex
	state           State
	anchorMode      string
	resumeText      string
	jobDescription  string
	summary         *types.ResumeSummary
	summaryDegraded bool
	currentQuestion string
	questionCount   int
	askedQuestions  []string
	evaluations     []AnswerRecord
	transcript      []TranscriptEntry
	finalScore      float64
	createdAt       time.Time
	lastActivity    time.Time
}

// NewSession creates a session in the setup state.
func NewSession(provider ai.Provider, logger *errors.Logger) *Session {
	now := time.Now()
	return &Session{
		id:             uuid.NewString(),
		provider:       provider,
		logger:         logger,
		state:          StateSetup,
		askedQuestions: []string{},
		evaluations:    []AnswerRecord{},
		transcript:     []TranscriptEntry{},
		createdAt:      now,
		lastActivity:   now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastActivity returns the time of the most recent session mutation.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// SummaryDegraded reports whether resume extraction fell back to the
// placeholder profile.
func (s *Session) SummaryDegraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryDegraded
}

// Summary returns the extracted resume profile, if available.
func (s *Session) Summary() *types.ResumeSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return nil
	}
	copied := *s.summary
	return &copied
}

func (s *Session) touch() {
	s.lastActivity = time.Now()
}

func (s *Session) invalidTransition(action string) error {
	return errors.NewValidationError(errors.ErrCodeInvalidTransition,
		"Cannot "+action+" in the "+string(s.state)+" state", nil).
		WithContext("state", string(s.state))
}

// SetResume stores the resume text and derives the structured profile used to
// steer question generation. Extraction is best-effort: a failed AI call
// substitutes the placeholder profile instead of failing setup.
func (s *Session) SetResume(ctx context.Context, resumeText string) error {
	if strings.TrimSpace(resumeText) == "" {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Resume text must not be empty", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSetup {
		return s.invalidTransition("set the resume")
	}

	summary, _, err := s.provider.ExtractResumeSummary(ctx, resumeText)
	degraded := false
	if err != nil {
		s.logger.Warn("Resume summary extraction failed, using fallback profile",
			"session_id", s.id,
			"error", err.Error())
		summary = types.FallbackResumeSummary()
		degraded = true
	}

	s.resumeText = resumeText
	s.summary = &summary
	s.summaryDegraded = degraded
	s.touch()
	return nil
}

// SetJobDescription stores the optional job description text.
func (s *Session) SetJobDescription(jobDescription string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSetup {
		return s.invalidTransition("set the job description")
	}

	s.jobDescription = jobDescription
	s.touch()
	return nil
}

// Begin transitions from setup to interviewing and generates the first
// question. A resume and its summary must be present; the anchor mode
// defaults to balanced.
func (s *Session) Begin(ctx context.Context, anchorMode string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSetup {
		return "", s.invalidTransition("begin the interview")
	}
	if s.resumeText == "" || s.summary == nil {
		return "", errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"A resume must be provided before the interview can begin", nil)
	}

	switch anchorMode {
	case "":
		anchorMode = AnchorBalanced
	case AnchorResume, AnchorJobDescription, AnchorBalanced:
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Unknown anchor mode: "+anchorMode, nil)
	}

	s.anchorMode = anchorMode
	s.state = StateInterviewing
	question := s.nextQuestion(ctx)
	s.touch()
	return question, nil
}

// AskQuestion returns the current question, generating one if none is
// pending. Generation failures yield the fixed fallback question.
func (s *Session) AskQuestion(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInterviewing {
		return "", s.invalidTransition("ask a question")
	}

	if s.currentQuestion == "" {
		s.nextQuestion(ctx)
	}
	s.touch()
	return s.currentQuestion, nil
}

// nextQuestion generates and records the next question. Caller holds the lock.
func (s *Session) nextQuestion(ctx context.Context) string {
	question, _, err := s.provider.GenerateQuestion(ctx, types.QuestionInput{
		Summary:           *s.summary,
		JobDescription:    s.jobDescription,
		QuestionNumber:    s.questionCount + 1,
		PreviousQuestions: s.askedQuestions,
		AnchorMode:        s.anchorMode,
	})
	if err != nil {
		s.logger.Warn("Question generation failed, using fallback question",
			"session_id", s.id,
			"question_number", s.questionCount+1,
			"error", err.Error())
		question = fallbackQuestion
	}

	s.currentQuestion = question
	s.questionCount++
	s.transcript = append(s.transcript, TranscriptEntry{Kind: "question", Content: question})
	return question
}

// SubmitAnswer evaluates the answer to the current question, records the
// result, and clears the current question. Evaluation failures substitute the
// fixed fallback evaluation; the returned record's Degraded flag marks that.
func (s *Session) SubmitAnswer(ctx context.Context, answer string) (AnswerRecord, error) {
	if strings.TrimSpace(answer) == "" {
		return AnswerRecord{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Answer must not be empty", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInterviewing {
		return AnswerRecord{}, s.invalidTransition("submit an answer")
	}
	if s.currentQuestion == "" {
		return AnswerRecord{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"No question is pending an answer", nil)
	}

	evaluation, _, err := s.provider.EvaluateAnswer(ctx, types.AnswerInput{
		Question:       s.currentQuestion,
		Answer:         answer,
		Summary:        *s.summary,
		JobDescription: s.jobDescription,
	})
	degraded := false
	if err != nil {
		s.logger.Warn("Answer evaluation failed, using fallback evaluation",
			"session_id", s.id,
			"error", err.Error())
		evaluation = types.FallbackAnswerEvaluation()
		degraded = true
	}

	record := AnswerRecord{
		Question:   s.currentQuestion,
		Answer:     answer,
		Evaluation: evaluation,
		Degraded:   degraded,
	}

	s.evaluations = append(s.evaluations, record)
	s.askedQuestions = append(s.askedQuestions, s.currentQuestion)
	s.transcript = append(s.transcript,
		TranscriptEntry{Kind: "answer", Content: answer},
		TranscriptEntry{Kind: "feedback", Content: formatFeedback(evaluation), Score: evaluation.Score})
	s.currentQuestion = ""
	s.touch()

	return record, nil
}

// Skip discards the current question without evaluating it. The question
// still counts as asked so generation will not repeat it.
func (s *Session) Skip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInterviewing {
		return s.invalidTransition("skip a question")
	}
	if s.currentQuestion == "" {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"No question is pending to skip", nil)
	}

	s.askedQuestions = append(s.askedQuestions, s.currentQuestion)
	s.currentQuestion = ""
	s.touch()
	return nil
}

// Stop ends the interview and computes the final score.
func (s *Session) Stop() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInterviewing {
		return 0, s.invalidTransition("stop the interview")
	}

	s.state = StateCompleted
	s.finalScore = CalculateFinalScore(s.evaluations)
	s.touch()
	return s.finalScore, nil
}

// Restart clears all session state and returns to setup. Allowed from any
// state; the session keeps its identifier.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateSetup
	s.anchorMode = ""
	s.resumeText = ""
	s.jobDescription = ""
	s.summary = nil
	s.summaryDegraded = false
	s.currentQuestion = ""
	s.questionCount = 0
	s.askedQuestions = []string{}
	s.evaluations = []AnswerRecord{}
	s.transcript = []TranscriptEntry{}
	s.finalScore = 0
	s.touch()
}

// QuestionCount returns how many questions have been generated so far.
func (s *Session) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questionCount
}

// CurrentQuestion returns the pending question, if any.
func (s *Session) CurrentQuestion() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentQuestion, s.currentQuestion != ""
}

// Transcript returns a copy of the running transcript.
func (s *Session) Transcript() []TranscriptEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TranscriptEntry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Evaluations returns a copy of all recorded answer evaluations.
func (s *Session) Evaluations() []AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AnswerRecord, len(s.evaluations))
	copy(out, s.evaluations)
	return out
}

func formatFeedback(evaluation types.AnswerEvaluation) string {
	return "Strengths: " + strings.Join(evaluation.Strengths, ", ") +
		"\nImprovements: " + strings.Join(evaluation.AreasForImprovement, ", ") +
		"\nFeedback: " + evaluation.Feedback
}
