package server

import (
	"context"
	"time"

	"hirescreen/internal/ai"
	"hirescreen/internal/config"
	hirescreenErrors "hirescreen/internal/errors"
	"hirescreen/internal/interview"
	"hirescreen/internal/types"
)

// ScreenRequest represents the request body for the screen endpoint
type ScreenRequest struct {
	CandidateName      string              `json:"candidateName"`
	JobTitle           string              `json:"jobTitle"`
	JobRequirements    string              `json:"jobRequirements"`
	ResumeText         string              `json:"resumeText"`
	AssignmentResponse string              `json:"assignmentResponse"`
	InterviewAnswers   []types.InterviewQA `json:"interviewAnswers"`
}

// StartInterviewRequest represents the request body for starting an interview session
type StartInterviewRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription,omitempty"`
	AnchorMode     string `json:"anchorMode,omitempty"`
}

// AnswerRequest represents the request body for submitting an interview answer
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// SessionResponse describes the state of an interview session
type SessionResponse struct {
	SessionID       string  `json:"sessionId"`
	State           string  `json:"state"`
	CurrentQuestion string  `json:"currentQuestion,omitempty"`
	QuestionsAsked  int     `json:"questionsAsked"`
	AnswersScored   int     `json:"answersScored"`
	SummaryDegraded bool    `json:"summaryDegraded"`
	FinalScore      float64 `json:"finalScore,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Screener runs the full candidate screening pipeline.
type Screener interface {
	Screen(ctx context.Context, input types.ScreenInput) (*types.EvaluationRecord, *ai.TokenUsage, error)
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Screening pipeline, created lazily unless injected
	Screener Screener

	// Session factory, overridable for testing
	NewSession func() (*interview.Session, error)

	// Interview session management
	Sessions *SessionStore

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Prompt hot-reload
	promptWatcher *config.PromptWatcher

	// Logger
	Logger *hirescreenErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
	Session        config.SessionConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *hirescreenErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		Sessions:       NewSessionStore(cfg.Session, logger),
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}

// sessionResponse builds the wire representation of a session
func sessionResponse(s *interview.Session) SessionResponse {
	resp := SessionResponse{
		SessionID:       s.ID(),
		State:           string(s.State()),
		AnswersScored:   len(s.Evaluations()),
		SummaryDegraded: s.SummaryDegraded(),
	}

	if question, ok := s.CurrentQuestion(); ok {
		resp.CurrentQuestion = question
	}

	questionsAsked := 0
	for _, entry := range s.Transcript() {
		if entry.Kind == "question" {
			questionsAsked++
		}
	}
	resp.QuestionsAsked = questionsAsked

	return resp
}
