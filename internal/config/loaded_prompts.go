package config

import (
	"sync"
)

var (
	loadedPrompts   AllLoadedPrompts
	loadedPromptsMu sync.RWMutex
)

// LoadedPrompts holds the content of prompts loaded from files
type LoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// LoadedSystemPrompts contains loaded system-level instructions
type LoadedSystemPrompts struct {
	EvaluateAssignment string
	EvaluateInterview  string
	AnalyzeResume      string
	RecommendHire      string
	ExtractSummary     string
	GenerateQuestion   string
	EvaluateAnswer     string
}

// LoadedUserPrompts contains loaded user-level prompt templates
type LoadedUserPrompts struct {
	EvaluateAssignment string
	EvaluateInterview  string
	AnalyzeResume      string
	RecommendHire      string
	ExtractSummary     string
	GenerateQuestion   string
	EvaluateAnswer     string
}

// OperationLoadedPrompts holds loaded prompts for a specific operation
type OperationLoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// AllLoadedPrompts holds all loaded prompts for all operations
type AllLoadedPrompts struct {
	Global     LoadedPrompts
	Assignment OperationLoadedPrompts
	Interview  OperationLoadedPrompts
	Resume     OperationLoadedPrompts
	Recommend  OperationLoadedPrompts
	Session    OperationLoadedPrompts
}

// GetPromptsForOperation returns a copy of the loaded prompts for an operation type
func GetPromptsForOperation(operationType string) OperationLoadedPrompts {
	loadedPromptsMu.RLock()
	defer loadedPromptsMu.RUnlock()

	switch operationType {
	case "assignment":
		return loadedPrompts.Assignment
	case "interview":
		return loadedPrompts.Interview
	case "resume":
		return loadedPrompts.Resume
	case "recommend":
		return loadedPrompts.Recommend
	case "session":
		return loadedPrompts.Session
	default:
		return OperationLoadedPrompts{
			SystemPrompts: loadedPrompts.Global.SystemPrompts,
			UserPrompts:   loadedPrompts.Global.UserPrompts,
		}
	}
}
