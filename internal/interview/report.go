package interview

// Report is the per-question detail exposed once an interview completes.
type Report struct {
	SessionID       string            `json:"sessionId"`
	FinalScore      float64           `json:"finalScore"`
	TotalQuestions  int               `json:"totalQuestions"`
	AnsweredCount   int               `json:"answeredCount"`
	BestScore       int               `json:"bestScore"`
	LowestScore     int               `json:"lowestScore"`
	AnchorMode      string            `json:"anchorMode"`
	SummaryDegraded bool              `json:"summaryDegraded,omitempty"`
	Evaluations     []AnswerRecord    `json:"evaluations"`
	Transcript      []TranscriptEntry `json:"transcript"`
}

// Report builds the completed-interview report. Only valid once the session
// has stopped.
func (s *Session) Report() (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCompleted {
		return Report{}, s.invalidTransition("build the report")
	}

	best, lowest := scoreRange(s.evaluations)

	evaluations := make([]AnswerRecord, len(s.evaluations))
	copy(evaluations, s.evaluations)
	transcript := make([]TranscriptEntry, len(s.transcript))
	copy(transcript, s.transcript)

	return Report{
		SessionID:       s.id,
		FinalScore:      s.finalScore,
		TotalQuestions:  len(s.askedQuestions),
		AnsweredCount:   len(s.evaluations),
		BestScore:       best,
		LowestScore:     lowest,
		AnchorMode:      s.anchorMode,
		SummaryDegraded: s.summaryDegraded,
		Evaluations:     evaluations,
		Transcript:      transcript,
	}, nil
}
