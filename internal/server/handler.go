package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hirescreen/internal/ai"
	hirescreenErrors "hirescreen/internal/errors"
	"hirescreen/internal/interview"
	"hirescreen/internal/observability"
	"hirescreen/internal/screening"
	"hirescreen/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// screener returns the injected pipeline or builds one from configuration.
func (s *Server) screener() (Screener, error) {
	if s.Screener != nil {
		return s.Screener, nil
	}

	pipeline, err := screening.NewPipelineFromConfig(s.AppConfig, s.Logger)
	if err != nil {
		return nil, err
	}
	s.Screener = pipeline
	return pipeline, nil
}

// newInterviewSession creates a session backed by the session AI provider.
func (s *Server) newInterviewSession() (*interview.Session, error) {
	if s.NewSession != nil {
		return s.NewSession()
	}

	sessionCfg := s.AppConfig.GetSessionConfig()
	aiService, err := ai.NewService(&sessionCfg, "session", s.Logger)
	if err != nil {
		return nil, err
	}
	return interview.NewSession(aiService.Provider, s.Logger), nil
}

// createScreenHandler wraps the screening pipeline with observability
func (s *Server) createScreenHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("hirescreen.api")
		ctx, span := tracer.Start(ctx, "api.screen")
		defer span.End()

		var req ScreenRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if msg := validateScreenRequest(req); msg != "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid screening request", msg, http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.job_title", req.JobTitle),
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.answer_count", len(req.InterviewAnswers)),
			attribute.String("operation", "screen"),
		)

		pipeline, err := s.screener()
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create screening pipeline", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var record *types.EvaluationRecord
		err = metrics.TrackAIOperationWithTokens(ctx, "screen", func(ctx context.Context) *observability.AIOperationResult {
			var usage *ai.TokenUsage
			var screenErr error
			record, usage, screenErr = pipeline.Screen(ctx, types.ScreenInput{
				CandidateName:      req.CandidateName,
				JobTitle:           req.JobTitle,
				JobRequirements:    req.JobRequirements,
				ResumeText:         req.ResumeText,
				AssignmentResponse: req.AssignmentResponse,
				InterviewAnswers:   req.InterviewAnswers,
			})
			return &observability.AIOperationResult{Error: screenErr, TokenUsage: observabilityTokens(usage)}
		}, om)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "candidate_screened", false, om,
				attribute.String("error", err.Error()))
			writeAppError(w, err)
			return
		}

		summary := screening.Summarize(record)

		metrics.RecordBusinessMetric(ctx, "candidate_screened", true, om,
			attribute.String("recommendation", summary.OverallRecommendation),
			attribute.Int("confidence", summary.ConfidenceLevel))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("recommendation", summary.OverallRecommendation),
			attribute.Int("confidence", summary.ConfidenceLevel),
		)

		writeJSONResponse(w, summary)
	}
}

// validateScreenRequest checks the required screening inputs.
// Returns an empty string when the request is valid.
func validateScreenRequest(req ScreenRequest) string {
	switch {
	case strings.TrimSpace(req.JobTitle) == "":
		return "jobTitle field is required"
	case strings.TrimSpace(req.JobRequirements) == "":
		return "jobRequirements field is required"
	case strings.TrimSpace(req.ResumeText) == "":
		return "resumeText field is required"
	case strings.TrimSpace(req.AssignmentResponse) == "":
		return "assignmentResponse field is required"
	case len(req.InterviewAnswers) == 0:
		return "interviewAnswers must contain at least one entry"
	}
	return ""
}

// createStartInterviewHandler creates a session and begins the interview
func (s *Server) createStartInterviewHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("hirescreen.api")
		ctx, span := tracer.Start(ctx, "api.interview.start")
		defer span.End()

		var req StartInterviewRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			writeErrorResponse(w, "Missing resume", "resumeText field is required", http.StatusBadRequest)
			return
		}

		session, err := s.newInterviewSession()
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create interview session", err.Error(), http.StatusInternalServerError)
			return
		}

		if err := s.Sessions.Add(session); err != nil {
			span.RecordError(err)
			writeAppError(w, err)
			return
		}

		metrics := om.GetMetrics()
		if err := session.SetResume(ctx, req.ResumeText); err != nil {
			s.Sessions.Remove(session.ID())
			span.RecordError(err)
			writeAppError(w, err)
			return
		}

		if req.JobDescription != "" {
			if err := session.SetJobDescription(req.JobDescription); err != nil {
				s.Sessions.Remove(session.ID())
				span.RecordError(err)
				writeAppError(w, err)
				return
			}
		}

		question, err := session.Begin(ctx, req.AnchorMode)
		if err != nil {
			s.Sessions.Remove(session.ID())
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "session_started", false, om)
			writeAppError(w, err)
			return
		}

		metrics.RecordBusinessMetric(ctx, "session_started", true, om,
			attribute.Bool("summary_degraded", session.SummaryDegraded()))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("session.id", session.ID()),
		)

		resp := sessionResponse(session)
		resp.CurrentQuestion = question
		w.WriteHeader(http.StatusCreated)
		writeJSONResponse(w, resp)
	}
}

// getInterviewHandler returns the current session state
func (s *Server) getInterviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.lookupSession(w, r)
		if !ok {
			return
		}

		resp := sessionResponse(session)
		if session.State() == interview.StateCompleted {
			resp.FinalScore = interview.CalculateFinalScore(session.Evaluations())
		}
		writeJSONResponse(w, resp)
	}
}

// createAskQuestionHandler generates or returns the pending question
func (s *Server) createAskQuestionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.lookupSession(w, r)
		if !ok {
			return
		}

		question, err := session.AskQuestion(r.Context())
		if err != nil {
			writeAppError(w, err)
			return
		}

		resp := sessionResponse(session)
		resp.CurrentQuestion = question
		writeJSONResponse(w, resp)
	}
}

// createAnswerHandler scores an answer to the pending question
func (s *Server) createAnswerHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.lookupSession(w, r)
		if !ok {
			return
		}

		var req AnswerRequest
		if err := parseJSONRequest(r, &req); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		metrics := om.GetMetrics()
		var record interview.AnswerRecord
		err := metrics.TrackAIOperationWithTokens(r.Context(), "evaluate_answer", func(ctx context.Context) *observability.AIOperationResult {
			var submitErr error
			record, submitErr = session.SubmitAnswer(ctx, req.Answer)
			return &observability.AIOperationResult{Error: submitErr}
		}, om)
		if err != nil {
			writeAppError(w, err)
			return
		}

		metrics.RecordBusinessMetric(r.Context(), "answer_evaluated", true, om,
			attribute.Int("score", record.Evaluation.Score),
			attribute.Bool("degraded", record.Degraded))

		writeJSONResponse(w, record)
	}
}

// createSkipHandler discards the pending question without scoring
func (s *Server) createSkipHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.lookupSession(w, r)
		if !ok {
			return
		}

		if err := session.Skip(); err != nil {
			writeAppError(w, err)
			return
		}

		writeJSONResponse(w, sessionResponse(session))
	}
}

// createStopHandler ends the interview and returns the final report
func (s *Server) createStopHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.lookupSession(w, r)
		if !ok {
			return
		}

		if _, err := session.Stop(); err != nil {
			writeAppError(w, err)
			return
		}

		report, err := session.Report()
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSONResponse(w, report)
	}
}

// getReportHandler returns the report for a completed session
func (s *Server) getReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.lookupSession(w, r)
		if !ok {
			return
		}

		report, err := session.Report()
		if err != nil {
			writeAppError(w, err)
			return
		}

		writeJSONResponse(w, report)
	}
}

// lookupSession resolves the {id} path parameter. Writes a 404 when unknown.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*interview.Session, bool) {
	id := r.PathValue("id")
	session := s.Sessions.Get(id)
	if session == nil {
		writeAppError(w, hirescreenErrors.NewValidationError(hirescreenErrors.ErrCodeSessionNotFound,
			"Session not found", nil).WithContext("session_id", id))
		return nil, false
	}
	return session, true
}

// observabilityTokens converts provider token usage for metric recording.
func observabilityTokens(usage *ai.TokenUsage) *observability.TokenUsage {
	if usage == nil {
		return nil
	}
	return &observability.TokenUsage{
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		TotalTokens:  usage.TotalTokens,
	}
}

// writeAppError maps an application error to an HTTP status code
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *hirescreenErrors.AppError
	if !errors.As(err, &appErr) {
		writeErrorResponse(w, "Internal error", err.Error(), http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case hirescreenErrors.ErrCodeInvalidRequest:
		status = http.StatusBadRequest
	case hirescreenErrors.ErrCodeInvalidTransition:
		status = http.StatusConflict
	case hirescreenErrors.ErrCodeSessionLimit:
		status = http.StatusTooManyRequests
	case hirescreenErrors.ErrCodeSessionNotFound:
		status = http.StatusNotFound
	case hirescreenErrors.ErrCodeStageFailed:
		status = http.StatusBadGateway
	}

	writeErrorResponse(w, appErr.Message, appErr.Error(), status)
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
