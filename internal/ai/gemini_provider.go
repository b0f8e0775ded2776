package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"hirescreen/internal/config"
	hirescreenErrors "hirescreen/internal/errors"
	"hirescreen/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	operation      string
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *hirescreenErrors.Logger
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *hirescreenErrors.Logger) (*GeminiProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, hirescreenErrors.NewConfigError(hirescreenErrors.ErrCodeMissingAPIKey,
			"Gemini API key is not configured for operation "+operationType, nil)
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, hirescreenErrors.NewAIError(hirescreenErrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	// Initialize circuit breaker with operation-specific configuration
	circuitBreaker := NewAICircuitBreaker(operationType, cfg, logger)
	modelBreaker := NewModelCircuitBreaker(operationType, cfg, logger)

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: *cfg.Timeout,
		},
		config:         cfg,
		operation:      operationType,
		circuitBreaker: circuitBreaker,
		modelBreaker:   modelBreaker,
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, modelCheckTimeout)
	defer cancel()

	// Get model information from Gemini API with circuit breaker
	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)

		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

// executeWithRetry executes an AI operation with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			// Cap maximum backoff at 30 seconds
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1,
					"total_attempts", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Network errors (timeouts, connection issues) are retryable
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Check for Google API errors (HTTP status codes)
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// wrapGenerateError classifies a failed model call so callers can tell a
// deadline or network timeout apart from a plain service failure.
func wrapGenerateError(operationName string, err error) *hirescreenErrors.AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return hirescreenErrors.NewAIError(hirescreenErrors.ErrCodeAITimeout,
			"AI operation timed out for "+operationName, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return hirescreenErrors.NewNetworkError(hirescreenErrors.ErrCodeNetworkTimeout,
			"Network timeout during "+operationName, err)
	}

	return hirescreenErrors.NewAIError(hirescreenErrors.ErrCodeAIServiceFailed,
		"Failed to generate content for "+operationName, err)
}

// generate runs one model call through the circuit breaker and retry stack.
func (g *GeminiProvider) generate(ctx context.Context, operationName, userPrompt string, genaiConfig *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})
}

// executeAIOperation is a generic helper to run structured AI operations with common tracing, circuit breaker, and parsing logic.
func executeAIOperation[Out any](
	g *GeminiProvider,
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (Out, *TokenUsage, error) {
	var output Out
	tracer := otel.Tracer("hirescreen.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.generate(ctx, operationName, userPrompt, genaiConfig)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, wrapGenerateError(operationName, err)
	}

	// Models occasionally fence the payload despite the JSON response MIME type
	payload := CleanJSON(result.Text())
	if !IsValidJSON(payload) {
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, hirescreenErrors.NewAIError(hirescreenErrors.ErrCodeAIResponseInvalid,
			"Model returned malformed JSON for "+operationName, nil)
	}
	if err := json.Unmarshal([]byte(payload), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, hirescreenErrors.NewAIError(hirescreenErrors.ErrCodeAIResponseInvalid, "Failed to parse AI response for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return output, tokenUsage, nil
}

// executeTextOperation runs a free-text AI operation (no response schema) with the same tracing and resilience stack.
func (g *GeminiProvider) executeTextOperation(
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	spanAttributes ...attribute.KeyValue,
) (string, *TokenUsage, error) {
	tracer := otel.Tracer("hirescreen.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	genaiConfig := &genai.GenerateContentConfig{}
	if *g.config.Temperature > 0 {
		genaiConfig.Temperature = g.config.Temperature
	}
	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.generate(ctx, operationName, userPrompt, genaiConfig)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return "", nil, wrapGenerateError(operationName, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		span.SetAttributes(attribute.Bool("success", false))
		return "", nil, hirescreenErrors.NewAIError(hirescreenErrors.ErrCodeAIResponseInvalid,
			"Model returned an empty response for "+operationName, nil)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return text, tokenUsage, nil
}

// EvaluateAssignment implements Provider for technical assignment scoring
func (g *GeminiProvider) EvaluateAssignment(ctx context.Context, input types.AssignmentInput) (types.AssignmentEvaluation, *TokenUsage, error) {
	systemPrompt := g.getSystemPrompt("assignment")
	userPrompt := fmt.Sprintf(g.getUserPrompt("assignment"), input.JobTitle, input.JobRequirements, input.AssignmentResponse)
	config := g.buildAssignmentSchema()

	output, tokenUsage, err := executeAIOperation[types.AssignmentEvaluation](
		g,
		ctx,
		"evaluate_assignment",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.assignment_length", len(input.AssignmentResponse)),
	)

	if err != nil {
		return types.AssignmentEvaluation{}, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("assignment.score", output.Score),
			attribute.Int("assignment.red_flags", len(output.RedFlags)),
		)
	}

	return output, tokenUsage, nil
}

// EvaluateInterview implements Provider for interview response scoring
func (g *GeminiProvider) EvaluateInterview(ctx context.Context, input types.InterviewInput) (types.InterviewEvaluation, *TokenUsage, error) {
	interviewText := formatInterviewAnswers(input.Answers)
	systemPrompt := g.getSystemPrompt("interview")
	userPrompt := fmt.Sprintf(g.getUserPrompt("interview"), input.JobTitle, input.JobRequirements, interviewText)
	config := g.buildInterviewSchema()

	output, tokenUsage, err := executeAIOperation[types.InterviewEvaluation](
		g,
		ctx,
		"evaluate_interview",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.answer_count", len(input.Answers)),
	)

	if err != nil {
		return types.InterviewEvaluation{}, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("interview.score", output.Score),
			attribute.Int("interview.red_flags", len(output.RedFlags)),
		)
	}

	return output, tokenUsage, nil
}

// AnalyzeResume implements Provider for resume fit analysis
func (g *GeminiProvider) AnalyzeResume(ctx context.Context, input types.ResumeInput) (types.ResumeAnalysis, *TokenUsage, error) {
	systemPrompt := g.getSystemPrompt("resume")
	userPrompt := fmt.Sprintf(g.getUserPrompt("resume"), input.JobTitle, input.JobRequirements, input.ResumeText)
	config := g.buildResumeSchema()

	output, tokenUsage, err := executeAIOperation[types.ResumeAnalysis](
		g,
		ctx,
		"analyze_resume",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.resume_length", len(input.ResumeText)),
	)

	if err != nil {
		return types.ResumeAnalysis{}, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("resume.score", output.Score),
			attribute.Bool("resume.meets_minimum", output.MeetsMinimumRequirements),
		)
	}

	return output, tokenUsage, nil
}

// RecommendHire implements Provider for the final hiring recommendation
func (g *GeminiProvider) RecommendHire(ctx context.Context, input types.RecommendInput) (types.Recommendation, *TokenUsage, error) {
	var resumeScore, assignmentScore, interviewScore int
	if input.ResumeAnalysis != nil {
		resumeScore = input.ResumeAnalysis.Score
	}
	if input.AssignmentEval != nil {
		assignmentScore = input.AssignmentEval.Score
	}
	if input.InterviewEval != nil {
		interviewScore = input.InterviewEval.Score
	}

	systemPrompt := g.getSystemPrompt("recommend")
	userPrompt := fmt.Sprintf(g.getUserPrompt("recommend"),
		resumeScore, assignmentScore, interviewScore,
		marshalStageResult(input.ResumeAnalysis),
		marshalStageResult(input.AssignmentEval),
		marshalStageResult(input.InterviewEval))
	config := g.buildRecommendSchema()

	output, tokenUsage, err := executeAIOperation[types.Recommendation](
		g,
		ctx,
		"recommend_hire",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.resume_score", resumeScore),
		attribute.Int("input.assignment_score", assignmentScore),
		attribute.Int("input.interview_score", interviewScore),
	)

	if err != nil {
		return types.Recommendation{}, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.String("recommendation.decision", output.OverallRecommendation),
			attribute.Int("recommendation.confidence", output.ConfidenceLevel),
		)
	}

	return output, tokenUsage, nil
}

// ExtractResumeSummary implements Provider for resume profile extraction
func (g *GeminiProvider) ExtractResumeSummary(ctx context.Context, resumeText string) (types.ResumeSummary, *TokenUsage, error) {
	systemPrompt := g.getSystemPrompt("summary")
	userPrompt := fmt.Sprintf(g.getUserPrompt("summary"), truncateRunes(resumeText, maxResumeExcerpt))
	config := g.buildSummarySchema()

	output, tokenUsage, err := executeAIOperation[types.ResumeSummary](
		g,
		ctx,
		"extract_summary",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.resume_length", len(resumeText)),
	)

	if err != nil {
		return types.ResumeSummary{}, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("summary.skills", len(output.Skills)),
		)
	}

	return output, tokenUsage, nil
}

// GenerateQuestion implements Provider for interview question generation.
// The response is free text, not JSON.
func (g *GeminiProvider) GenerateQuestion(ctx context.Context, input types.QuestionInput) (string, *TokenUsage, error) {
	systemPrompt := g.getSystemPrompt("question")
	userPrompt := fmt.Sprintf(g.getUserPrompt("question"),
		input.QuestionNumber,
		candidateInfoBlock(input.Summary),
		questionContextBlock(input.JobDescription, input.AnchorMode),
		previousQuestionsBlock(input.PreviousQuestions))

	question, tokenUsage, err := g.executeTextOperation(
		ctx,
		"generate_question",
		userPrompt,
		systemPrompt,
		attribute.Int("question.number", input.QuestionNumber),
	)
	if err != nil {
		return "", nil, err
	}

	return question, tokenUsage, nil
}

// EvaluateAnswer implements Provider for single-answer scoring
func (g *GeminiProvider) EvaluateAnswer(ctx context.Context, input types.AnswerInput) (types.AnswerEvaluation, *TokenUsage, error) {
	systemPrompt := g.getSystemPrompt("answer")
	userPrompt := fmt.Sprintf(g.getUserPrompt("answer"),
		input.Question,
		truncateRunes(input.Answer, maxAnswerExcerpt),
		answerContextBlock(input.JobDescription))
	config := g.buildAnswerSchema()

	output, tokenUsage, err := executeAIOperation[types.AnswerEvaluation](
		g,
		ctx,
		"evaluate_answer",
		userPrompt,
		systemPrompt,
		config,
		attribute.Int("input.answer_length", len(input.Answer)),
	)

	if err != nil {
		return types.AnswerEvaluation{}, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("answer.score", output.Score),
		)
	}

	return output, tokenUsage, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
	}

	// Overall health - both breakers must be healthy
	aiHealthy := g.circuitBreaker.IsHealthy()
	modelHealthy := g.modelBreaker.IsModelHealthy()
	stats["overall_healthy"] = aiHealthy && modelHealthy

	return stats
}

// Close implements Provider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}

const modelCheckTimeout = 10 * time.Second

// getPrompts returns the loaded and configured prompts for this provider's operation
func (g *GeminiProvider) getPrompts() (config.OperationLoadedPrompts, *config.PromptConfig) {
	loadedPrompts := config.GetPromptsForOperation(g.operation)
	configPrompts := &g.config.CustomPrompts
	return loadedPrompts, configPrompts
}

// getSystemPrompt returns the appropriate system prompt
func (g *GeminiProvider) getSystemPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts()
	var configSystemPrompts *config.SystemPrompts
	if configPrompts != nil {
		configSystemPrompts = &configPrompts.SystemPrompts
	} else {
		configSystemPrompts = &config.SystemPrompts{}
	}

	switch promptType {
	case "assignment":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.EvaluateAssignment,
			configSystemPrompts.EvaluateAssignment,
			DefaultSystemPrompts.EvaluateAssignment,
		)
	case "interview":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.EvaluateInterview,
			configSystemPrompts.EvaluateInterview,
			DefaultSystemPrompts.EvaluateInterview,
		)
	case "resume":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.AnalyzeResume,
			configSystemPrompts.AnalyzeResume,
			DefaultSystemPrompts.AnalyzeResume,
		)
	case "recommend":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.RecommendHire,
			configSystemPrompts.RecommendHire,
			DefaultSystemPrompts.RecommendHire,
		)
	case "summary":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.ExtractSummary,
			configSystemPrompts.ExtractSummary,
			DefaultSystemPrompts.ExtractSummary,
		)
	case "question":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.GenerateQuestion,
			configSystemPrompts.GenerateQuestion,
			DefaultSystemPrompts.GenerateQuestion,
		)
	case "answer":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.EvaluateAnswer,
			configSystemPrompts.EvaluateAnswer,
			DefaultSystemPrompts.EvaluateAnswer,
		)
	default:
		return ""
	}
}

// getUserPrompt returns the appropriate user prompt template
func (g *GeminiProvider) getUserPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts()
	var configUserPrompts *config.UserPrompts
	if configPrompts != nil {
		configUserPrompts = &configPrompts.UserPrompts
	} else {
		configUserPrompts = &config.UserPrompts{}
	}

	switch promptType {
	case "assignment":
		return resolvePrompt(
			loadedPrompts.UserPrompts.EvaluateAssignment,
			configUserPrompts.EvaluateAssignment,
			DefaultUserPrompts.EvaluateAssignment,
		)
	case "interview":
		return resolvePrompt(
			loadedPrompts.UserPrompts.EvaluateInterview,
			configUserPrompts.EvaluateInterview,
			DefaultUserPrompts.EvaluateInterview,
		)
	case "resume":
		return resolvePrompt(
			loadedPrompts.UserPrompts.AnalyzeResume,
			configUserPrompts.AnalyzeResume,
			DefaultUserPrompts.AnalyzeResume,
		)
	case "recommend":
		return resolvePrompt(
			loadedPrompts.UserPrompts.RecommendHire,
			configUserPrompts.RecommendHire,
			DefaultUserPrompts.RecommendHire,
		)
	case "summary":
		return resolvePrompt(
			loadedPrompts.UserPrompts.ExtractSummary,
			configUserPrompts.ExtractSummary,
			DefaultUserPrompts.ExtractSummary,
		)
	case "question":
		return resolvePrompt(
			loadedPrompts.UserPrompts.GenerateQuestion,
			configUserPrompts.GenerateQuestion,
			DefaultUserPrompts.GenerateQuestion,
		)
	case "answer":
		return resolvePrompt(
			loadedPrompts.UserPrompts.EvaluateAnswer,
			configUserPrompts.EvaluateAnswer,
			DefaultUserPrompts.EvaluateAnswer,
		)
	default:
		return ""
	}
}

// resolvePrompt selects the correct prompt string based on a clear priority order:
// 1. A prompt loaded from a file.
// 2. A prompt defined directly in the configuration.
// 3. A hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
