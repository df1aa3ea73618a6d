package engine

import (
	"testing"

	"thozhahub/internal/model"
)

func scoresOf(explorer, achiever, strategist, practitioner int) map[model.Category]int {
	return map[model.Category]int{
		model.CategoryExplorer:     explorer,
		model.CategoryAchiever:     achiever,
		model.CategoryStrategist:   strategist,
		model.CategoryPractitioner: practitioner,
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name   string
		scores map[model.Category]int
		want   int
	}{
		{"empty", scoresOf(0, 0, 0, 0), 0},
		{"clear leader", scoresOf(10, 4, 2, 1), 6},
		{"two-way tie", scoresOf(7, 7, 3, 0), 0},
		{"leader not first", scoresOf(1, 2, 9, 5), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confidence(tt.scores); got != tt.want {
				t.Errorf("Confidence() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShouldStop(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		answered  int
		scores    map[model.Category]int
		remaining int
		want      bool
	}{
		{"ceiling reached", 18, scoresOf(5, 5, 5, 5), 3, true},
		{"past ceiling", 20, scoresOf(5, 5, 5, 5), 3, true},
		{"confident at floor", 10, scoresOf(12, 9, 2, 0), 5, true},
		{"gap below threshold at floor", 10, scoresOf(11, 9, 2, 0), 5, false},
		{"confident before floor", 9, scoresOf(20, 2, 1, 0), 5, false},
		{"bank exhausted", 5, scoresOf(3, 2, 1, 0), 0, true},
		{"mid flow", 12, scoresOf(8, 7, 5, 3), 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.ShouldStop(tt.answered, tt.scores, tt.remaining); got != tt.want {
				t.Errorf("ShouldStop(%d, _, %d) = %v, want %v", tt.answered, tt.remaining, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinQuestions != 10 || cfg.MaxQuestions != 18 || cfg.ConfidenceThreshold != 3 {
		t.Errorf("DefaultConfig() = %+v, want {10 18 3}", cfg)
	}
}
