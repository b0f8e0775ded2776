package interview

import "math"

// CalculateFinalScore returns the arithmetic mean of all recorded answer
// scores, rounded to one decimal place. An interview with no answers scores 0.
func CalculateFinalScore(evaluations []AnswerRecord) float64 {
	if len(evaluations) == 0 {
		return 0
	}

	total := 0
	for _, record := range evaluations {
		total += record.Evaluation.Score
	}
	average := float64(total) / float64(len(evaluations))
	return math.Round(average*10) / 10
}

// scoreRange returns the best and lowest recorded answer scores, both 0 when
// no answers were recorded.
func scoreRange(evaluations []AnswerRecord) (best, lowest int) {
	if len(evaluations) == 0 {
		return 0, 0
	}

	best = evaluations[0].Evaluation.Score
	lowest = evaluations[0].Evaluation.Score
	for _, record := range evaluations[1:] {
		if record.Evaluation.Score > best {
			best = record.Evaluation.Score
		}
		if record.Evaluation.Score < lowest {
			lowest = record.Evaluation.Score
		}
	}
	return best, lowest
}
