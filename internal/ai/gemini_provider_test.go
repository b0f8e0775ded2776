package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hirescreen/internal/config"
	hirescreenErrors "hirescreen/internal/errors"
)

// timeoutNetError fakes a net.Error with Timeout() == true
type timeoutNetError struct{}

func (timeoutNetError) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutNetError) Timeout() bool   { return true }
func (timeoutNetError) Temporary() bool { return true }

func TestWrapGenerateError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectedType hirescreenErrors.ErrorType
	}{
		{
			name:         "deadline exceeded maps to AI timeout",
			err:          fmt.Errorf("operation failed: %w", context.DeadlineExceeded),
			expectedCode: hirescreenErrors.ErrCodeAITimeout,
			expectedType: hirescreenErrors.ErrorTypeAI,
		},
		{
			name:         "network timeout maps to network timeout",
			err:          fmt.Errorf("operation failed: %w", timeoutNetError{}),
			expectedCode: hirescreenErrors.ErrCodeNetworkTimeout,
			expectedType: hirescreenErrors.ErrorTypeNetwork,
		},
		{
			name:         "other errors map to service failure",
			err:          errors.New("model exploded"),
			expectedCode: hirescreenErrors.ErrCodeAIServiceFailed,
			expectedType: hirescreenErrors.ErrorTypeAI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := wrapGenerateError("evaluate_assignment", tt.err)
			if appErr.Code != tt.expectedCode {
				t.Errorf("code = %q, want %q", appErr.Code, tt.expectedCode)
			}
			if appErr.Type != tt.expectedType {
				t.Errorf("type = %q, want %q", appErr.Type, tt.expectedType)
			}
			if appErr.Cause == nil {
				t.Error("expected wrapped cause, got nil")
			}
		})
	}
}

func TestNewGeminiProviderRequiresAPIKey(t *testing.T) {
	timeout := 30 * time.Second
	maxRetries := 1
	temperature := float32(0.2)
	useSystemPrompts := true

	cfg := &config.OperationAIConfig{
		Provider:         "gemini",
		Model:            "gemini-2.0-flash",
		APIKey:           "   ",
		Timeout:          &timeout,
		MaxRetries:       &maxRetries,
		Temperature:      &temperature,
		UseSystemPrompts: &useSystemPrompts,
	}

	_, err := NewGeminiProvider(cfg, "assignment", testLogger)
	if err == nil {
		t.Fatal("expected error for blank API key, got nil")
	}

	var appErr *hirescreenErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != hirescreenErrors.ErrCodeMissingAPIKey {
		t.Errorf("code = %q, want %q", appErr.Code, hirescreenErrors.ErrCodeMissingAPIKey)
	}
}
