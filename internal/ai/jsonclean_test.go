package ai

import "testing"

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json untouched",
			input:    `{"score": 80}`,
			expected: `{"score": 80}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"score\": 80}\n  ",
			expected: `{"score": 80}`,
		},
		{
			name:     "fence with windows newlines",
			input:    "```json\r\n{\"score\": 80}\r\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanJSON(tt.input); got != tt.expected {
				t.Errorf("CleanJSON(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidJSON(t *testing.T) {
	if !IsValidJSON(`{"score": 80, "strengths": []}`) {
		t.Error("Expected object to be valid JSON")
	}
	if IsValidJSON("I would recommend hiring this candidate.") {
		t.Error("Expected prose to be invalid JSON")
	}
	if IsValidJSON(`{"score": 80`) {
		t.Error("Expected truncated payload to be invalid JSON")
	}
}
