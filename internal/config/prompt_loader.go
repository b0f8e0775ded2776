package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// PromptSource represents where a prompt was loaded from
type PromptSource struct {
	Source    string // "file", "operation-config", "global-config", or "default"
	FilePath  string // Set if Source is "file"
	Operation string // The operation this prompt is for
	Type      string // "system" or "user"
}

// GetLoadedPrompts returns the loaded prompt content in a thread-safe way
func GetLoadedPrompts() AllLoadedPrompts {
	loadedPromptsMu.RLock()
	defer loadedPromptsMu.RUnlock()
	return loadedPrompts
}

// loadPromptsFromFiles loads custom prompts from external files if file paths are specified
func (c *Config) loadPromptsFromFiles() error {
	log.Println("[CONFIG] Starting custom prompt loading from files")

	var next AllLoadedPrompts

	// Load global prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.CustomPrompts.SystemPrompts, &next.Global.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load global system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.CustomPrompts.UserPrompts, &next.Global.UserPrompts); err != nil {
		return fmt.Errorf("failed to load global user prompts: %w", err)
	}

	// Load operation-specific prompts
	operations := []struct {
		name   string
		cfg    *PromptConfig
		target *OperationLoadedPrompts
	}{
		{"assignment", &c.AI.Assignment.CustomPrompts, &next.Assignment},
		{"interview", &c.AI.Interview.CustomPrompts, &next.Interview},
		{"resume", &c.AI.Resume.CustomPrompts, &next.Resume},
		{"recommend", &c.AI.Recommend.CustomPrompts, &next.Recommend},
		{"session", &c.AI.Session.CustomPrompts, &next.Session},
	}
	for _, op := range operations {
		if err := c.loadSystemPromptsFromFiles(&op.cfg.SystemPrompts, &op.target.SystemPrompts); err != nil {
			return fmt.Errorf("failed to load %s system prompts: %w", op.name, err)
		}
		if err := c.loadUserPromptsFromFiles(&op.cfg.UserPrompts, &op.target.UserPrompts); err != nil {
			return fmt.Errorf("failed to load %s user prompts: %w", op.name, err)
		}
	}

	loadedPromptsMu.Lock()
	loadedPrompts = next
	loadedPromptsMu.Unlock()

	// Log summary of prompt sources after loading
	c.logPromptLoadingSummary()

	return nil
}

// loadSystemPromptsFromFiles loads system prompts from files if file paths are specified
func (c *Config) loadSystemPromptsFromFiles(prompts *SystemPrompts, target *LoadedSystemPrompts) error {
	files := []struct {
		path      string
		operation string
		target    *string
	}{
		{prompts.EvaluateAssignmentFile, "evaluateAssignment", &target.EvaluateAssignment},
		{prompts.EvaluateInterviewFile, "evaluateInterview", &target.EvaluateInterview},
		{prompts.AnalyzeResumeFile, "analyzeResume", &target.AnalyzeResume},
		{prompts.RecommendHireFile, "recommendHire", &target.RecommendHire},
		{prompts.ExtractSummaryFile, "extractSummary", &target.ExtractSummary},
		{prompts.GenerateQuestionFile, "generateQuestion", &target.GenerateQuestion},
		{prompts.EvaluateAnswerFile, "evaluateAnswer", &target.EvaluateAnswer},
	}

	for _, f := range files {
		if f.path == "" {
			continue
		}
		content, err := c.loadPromptFromFile(f.path, "system", f.operation)
		if err != nil {
			return err
		}
		*f.target = content
	}

	return nil
}

// loadUserPromptsFromFiles loads user prompts from files if file paths are specified
func (c *Config) loadUserPromptsFromFiles(prompts *UserPrompts, target *LoadedUserPrompts) error {
	files := []struct {
		path      string
		operation string
		target    *string
	}{
		{prompts.EvaluateAssignmentFile, "evaluateAssignment", &target.EvaluateAssignment},
		{prompts.EvaluateInterviewFile, "evaluateInterview", &target.EvaluateInterview},
		{prompts.AnalyzeResumeFile, "analyzeResume", &target.AnalyzeResume},
		{prompts.RecommendHireFile, "recommendHire", &target.RecommendHire},
		{prompts.ExtractSummaryFile, "extractSummary", &target.ExtractSummary},
		{prompts.GenerateQuestionFile, "generateQuestion", &target.GenerateQuestion},
		{prompts.EvaluateAnswerFile, "evaluateAnswer", &target.EvaluateAnswer},
	}

	for _, f := range files {
		if f.path == "" {
			continue
		}
		content, err := c.loadPromptFromFile(f.path, "user", f.operation)
		if err != nil {
			return err
		}
		*f.target = content
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	// Resolve relative paths
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	// Read file content
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	// Validate content is not empty
	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	// Log successful loading
	log.Printf("[CONFIG] Successfully loaded %s %s prompt from file: %s (%d characters)",
		promptType, operation, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// promptFilePaths returns every configured prompt file path across global and
// operation-specific configs.
func (c *Config) promptFilePaths() []string {
	var paths []string
	collect := func(pc *PromptConfig) {
		for _, p := range []string{
			pc.SystemPrompts.EvaluateAssignmentFile,
			pc.SystemPrompts.EvaluateInterviewFile,
			pc.SystemPrompts.AnalyzeResumeFile,
			pc.SystemPrompts.RecommendHireFile,
			pc.SystemPrompts.ExtractSummaryFile,
			pc.SystemPrompts.GenerateQuestionFile,
			pc.SystemPrompts.EvaluateAnswerFile,
			pc.UserPrompts.EvaluateAssignmentFile,
			pc.UserPrompts.EvaluateInterviewFile,
			pc.UserPrompts.AnalyzeResumeFile,
			pc.UserPrompts.RecommendHireFile,
			pc.UserPrompts.ExtractSummaryFile,
			pc.UserPrompts.GenerateQuestionFile,
			pc.UserPrompts.EvaluateAnswerFile,
		} {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}

	collect(&c.AI.CustomPrompts)
	collect(&c.AI.Assignment.CustomPrompts)
	collect(&c.AI.Interview.CustomPrompts)
	collect(&c.AI.Resume.CustomPrompts)
	collect(&c.AI.Recommend.CustomPrompts)
	collect(&c.AI.Session.CustomPrompts)

	return paths
}

// validatePromptFiles validates that prompt files exist and are readable before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	for _, filePath := range c.promptFilePaths() {
		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid prompt file path: %s", filePath))
			continue
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("prompt file not found: %s", absPath))
		}
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}

// logPromptLoadingSummary logs a summary of loaded prompts
func (c *Config) logPromptLoadingSummary() {
	log.Println("[CONFIG] === Custom Prompt Loading Summary ===")

	promptCount := len(c.promptFilePaths())
	if promptCount == 0 {
		log.Println("[CONFIG] No custom prompts loaded - using built-in defaults")
	} else {
		log.Printf("[CONFIG] Total custom prompt files loaded: %d", promptCount)
	}

	log.Println("[CONFIG] ==========================================")
}
