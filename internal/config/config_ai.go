package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetAssignmentConfig returns the AI configuration for assignment evaluation with fallback to global config
func (c *Config) GetAssignmentConfig() OperationAIConfig {
	config := c.AI.Assignment

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply assignment-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.EvaluateAssignment == "" {
		config.CustomPrompts.SystemPrompts.EvaluateAssignment = c.AI.CustomPrompts.SystemPrompts.EvaluateAssignment
	}
	if config.CustomPrompts.UserPrompts.EvaluateAssignment == "" {
		config.CustomPrompts.UserPrompts.EvaluateAssignment = c.AI.CustomPrompts.UserPrompts.EvaluateAssignment
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.EvaluateAssignmentFile == "" {
		config.CustomPrompts.SystemPrompts.EvaluateAssignmentFile = c.AI.CustomPrompts.SystemPrompts.EvaluateAssignmentFile
	}
	if config.CustomPrompts.UserPrompts.EvaluateAssignmentFile == "" {
		config.CustomPrompts.UserPrompts.EvaluateAssignmentFile = c.AI.CustomPrompts.UserPrompts.EvaluateAssignmentFile
	}

	return config
}

// GetInterviewConfig returns the AI configuration for interview evaluation with fallback to global config
func (c *Config) GetInterviewConfig() OperationAIConfig {
	config := c.AI.Interview

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply interview-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.EvaluateInterview == "" {
		config.CustomPrompts.SystemPrompts.EvaluateInterview = c.AI.CustomPrompts.SystemPrompts.EvaluateInterview
	}
	if config.CustomPrompts.UserPrompts.EvaluateInterview == "" {
		config.CustomPrompts.UserPrompts.EvaluateInterview = c.AI.CustomPrompts.UserPrompts.EvaluateInterview
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.EvaluateInterviewFile == "" {
		config.CustomPrompts.SystemPrompts.EvaluateInterviewFile = c.AI.CustomPrompts.SystemPrompts.EvaluateInterviewFile
	}
	if config.CustomPrompts.UserPrompts.EvaluateInterviewFile == "" {
		config.CustomPrompts.UserPrompts.EvaluateInterviewFile = c.AI.CustomPrompts.UserPrompts.EvaluateInterviewFile
	}

	return config
}

// GetResumeConfig returns the AI configuration for resume analysis with fallback to global config
func (c *Config) GetResumeConfig() OperationAIConfig {
	config := c.AI.Resume

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply resume-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.AnalyzeResume == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeResume = c.AI.CustomPrompts.SystemPrompts.AnalyzeResume
	}
	if config.CustomPrompts.UserPrompts.AnalyzeResume == "" {
		config.CustomPrompts.UserPrompts.AnalyzeResume = c.AI.CustomPrompts.UserPrompts.AnalyzeResume
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.AnalyzeResumeFile == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeResumeFile = c.AI.CustomPrompts.SystemPrompts.AnalyzeResumeFile
	}
	if config.CustomPrompts.UserPrompts.AnalyzeResumeFile == "" {
		config.CustomPrompts.UserPrompts.AnalyzeResumeFile = c.AI.CustomPrompts.UserPrompts.AnalyzeResumeFile
	}

	return config
}

// GetRecommendConfig returns the AI configuration for final recommendations with fallback to global config
func (c *Config) GetRecommendConfig() OperationAIConfig {
	config := c.AI.Recommend

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply recommend-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.RecommendHire == "" {
		config.CustomPrompts.SystemPrompts.RecommendHire = c.AI.CustomPrompts.SystemPrompts.RecommendHire
	}
	if config.CustomPrompts.UserPrompts.RecommendHire == "" {
		config.CustomPrompts.UserPrompts.RecommendHire = c.AI.CustomPrompts.UserPrompts.RecommendHire
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.RecommendHireFile == "" {
		config.CustomPrompts.SystemPrompts.RecommendHireFile = c.AI.CustomPrompts.SystemPrompts.RecommendHireFile
	}
	if config.CustomPrompts.UserPrompts.RecommendHireFile == "" {
		config.CustomPrompts.UserPrompts.RecommendHireFile = c.AI.CustomPrompts.UserPrompts.RecommendHireFile
	}

	return config
}

// GetSessionConfig returns the AI configuration for interactive interview sessions with fallback to global config.
// The session config covers summary extraction, question generation, and answer evaluation.
func (c *Config) GetSessionConfig() OperationAIConfig {
	config := c.AI.Session

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply session-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.ExtractSummary == "" {
		config.CustomPrompts.SystemPrompts.ExtractSummary = c.AI.CustomPrompts.SystemPrompts.ExtractSummary
	}
	if config.CustomPrompts.SystemPrompts.GenerateQuestion == "" {
		config.CustomPrompts.SystemPrompts.GenerateQuestion = c.AI.CustomPrompts.SystemPrompts.GenerateQuestion
	}
	if config.CustomPrompts.SystemPrompts.EvaluateAnswer == "" {
		config.CustomPrompts.SystemPrompts.EvaluateAnswer = c.AI.CustomPrompts.SystemPrompts.EvaluateAnswer
	}
	if config.CustomPrompts.UserPrompts.ExtractSummary == "" {
		config.CustomPrompts.UserPrompts.ExtractSummary = c.AI.CustomPrompts.UserPrompts.ExtractSummary
	}
	if config.CustomPrompts.UserPrompts.GenerateQuestion == "" {
		config.CustomPrompts.UserPrompts.GenerateQuestion = c.AI.CustomPrompts.UserPrompts.GenerateQuestion
	}
	if config.CustomPrompts.UserPrompts.EvaluateAnswer == "" {
		config.CustomPrompts.UserPrompts.EvaluateAnswer = c.AI.CustomPrompts.UserPrompts.EvaluateAnswer
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.ExtractSummaryFile == "" {
		config.CustomPrompts.SystemPrompts.ExtractSummaryFile = c.AI.CustomPrompts.SystemPrompts.ExtractSummaryFile
	}
	if config.CustomPrompts.SystemPrompts.GenerateQuestionFile == "" {
		config.CustomPrompts.SystemPrompts.GenerateQuestionFile = c.AI.CustomPrompts.SystemPrompts.GenerateQuestionFile
	}
	if config.CustomPrompts.SystemPrompts.EvaluateAnswerFile == "" {
		config.CustomPrompts.SystemPrompts.EvaluateAnswerFile = c.AI.CustomPrompts.SystemPrompts.EvaluateAnswerFile
	}
	if config.CustomPrompts.UserPrompts.ExtractSummaryFile == "" {
		config.CustomPrompts.UserPrompts.ExtractSummaryFile = c.AI.CustomPrompts.UserPrompts.ExtractSummaryFile
	}
	if config.CustomPrompts.UserPrompts.GenerateQuestionFile == "" {
		config.CustomPrompts.UserPrompts.GenerateQuestionFile = c.AI.CustomPrompts.UserPrompts.GenerateQuestionFile
	}
	if config.CustomPrompts.UserPrompts.EvaluateAnswerFile == "" {
		config.CustomPrompts.UserPrompts.EvaluateAnswerFile = c.AI.CustomPrompts.UserPrompts.EvaluateAnswerFile
	}

	return config
}

// GetOperationConfig returns the AI configuration for a named operation.
// Unknown operations fall back to the global configuration.
func (c *Config) GetOperationConfig(operation string) OperationAIConfig {
	switch operation {
	case "assignment":
		return c.GetAssignmentConfig()
	case "interview":
		return c.GetInterviewConfig()
	case "resume":
		return c.GetResumeConfig()
	case "recommend":
		return c.GetRecommendConfig()
	case "session":
		return c.GetSessionConfig()
	}

	config := OperationAIConfig{}
	c.applyOperationDefaults(&config)
	return config
}

// GetLoadedAssignmentPrompts returns a copy of the loaded prompts for assignment evaluation
func (c *Config) GetLoadedAssignmentPrompts() OperationLoadedPrompts {
	return loadedPrompts.Assignment
}

// GetLoadedInterviewPrompts returns a copy of the loaded prompts for interview evaluation
func (c *Config) GetLoadedInterviewPrompts() OperationLoadedPrompts {
	return loadedPrompts.Interview
}

// GetLoadedResumePrompts returns a copy of the loaded prompts for resume analysis
func (c *Config) GetLoadedResumePrompts() OperationLoadedPrompts {
	return loadedPrompts.Resume
}

// GetLoadedRecommendPrompts returns a copy of the loaded prompts for final recommendations
func (c *Config) GetLoadedRecommendPrompts() OperationLoadedPrompts {
	return loadedPrompts.Recommend
}

// GetLoadedSessionPrompts returns a copy of the loaded prompts for interactive sessions
func (c *Config) GetLoadedSessionPrompts() OperationLoadedPrompts {
	return loadedPrompts.Session
}

// GetLoadedGlobalPrompts returns a copy of the loaded global prompts
func (c *Config) GetLoadedGlobalPrompts() LoadedPrompts {
	return loadedPrompts.Global
}
