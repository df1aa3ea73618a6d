package engine

import "thozhahub/internal/model"

// Config holds the engine-wide tuning constants. The defaults are the values
// the questionnaire has been calibrated against; tests assert behavior at
// their boundaries.
type Config struct {
	// MinQuestions is the floor before a confident early exit is allowed.
	MinQuestions int
	// MaxQuestions is the hard ceiling on questionnaire length.
	MaxQuestions int
	// ConfidenceThreshold is the gap between the top two category scores
	// required for an early exit.
	ConfidenceThreshold int
}

// DefaultConfig returns the calibrated questionnaire constants.
func DefaultConfig() Config {
	return Config{
		MinQuestions:        10,
		MaxQuestions:        18,
		ConfidenceThreshold: 3,
	}
}

// Confidence returns the gap between the two highest category scores,
// scanning categories in their fixed order.
func Confidence(scores map[model.Category]int) int {
	top, second := 0, 0
	first := true
	for _, cat := range model.AllCategories {
		v := scores[cat]
		switch {
		case first:
			top = v
			first = false
		case v > top:
			second = top
			top = v
		case v > second:
			second = v
		}
	}
	return top - second
}

// ShouldStop decides whether the questionnaire is done. The rules apply in
// order: the hard ceiling, the confident early exit, then bank exhaustion.
func (c Config) ShouldStop(answered int, scores map[model.Category]int, remaining int) bool {
	if answered >= c.MaxQuestions {
		return true
	}
	if answered >= c.MinQuestions && Confidence(scores) >= c.ConfidenceThreshold {
		return true
	}
	if remaining == 0 {
		return true
	}
	return false
}
