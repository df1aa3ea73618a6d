// Package engine implements the adaptive questionnaire: response
// accumulation, the stop/continue policy, next-question selection, and final
// classification. The engine is stateless; every call recomputes its state
// from the response history the client submits.
package engine

import (
	"fmt"

	"thozhahub/internal/bank"
	"thozhahub/internal/model"
)

// ValidationError reports a response that does not match the question bank.
// It maps to a client error at the transport layer; the whole submission is
// rejected so client and server state cannot drift apart.
type ValidationError struct {
	QuestionID  string
	OptionIndex int
	Reason      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid response for question %q: %s", e.QuestionID, e.Reason)
}

// Tally is the state derived from a response history.
type Tally struct {
	Scores     map[model.Category]int
	Traits     map[model.Trait]int
	DomainAsks map[model.Domain]int
	TraitAsks  map[model.Trait]int
	Asked      map[string]bool
	Answered   int
}

// Accumulate folds an ordered response history into a Tally. It is a pure
// function of the bank and the history: the same inputs always produce the
// same tally. Any response that fails to resolve against the bank aborts the
// whole accumulation with a ValidationError.
func Accumulate(b *bank.Bank, history []model.Response) (*Tally, error) {
	t := &Tally{
		Scores:     make(map[model.Category]int, len(model.AllCategories)),
		Traits:     make(map[model.Trait]int, len(model.AllTraits)),
		DomainAsks: make(map[model.Domain]int),
		TraitAsks:  make(map[model.Trait]int),
		Asked:      make(map[string]bool, len(history)),
		Answered:   len(history),
	}
	for _, cat := range model.AllCategories {
		t.Scores[cat] = 0
	}
	for _, trait := range model.AllTraits {
		t.Traits[trait] = 0
	}

	for _, resp := range history {
		q, ok := b.Get(resp.QuestionID)
		if !ok {
			return nil, &ValidationError{QuestionID: resp.QuestionID, OptionIndex: resp.OptionIndex, Reason: "unknown question id"}
		}
		if resp.OptionIndex < 0 || resp.OptionIndex >= len(q.Options) {
			return nil, &ValidationError{QuestionID: resp.QuestionID, OptionIndex: resp.OptionIndex, Reason: "option index out of range"}
		}
		opt := q.Options[resp.OptionIndex]

		for cat, v := range opt.Scores {
			t.Scores[cat] += v
		}
		for trait, v := range opt.Traits {
			t.Traits[trait] += v
			t.TraitAsks[trait]++
		}
		t.DomainAsks[q.Domain]++
		t.Asked[q.ID] = true
	}
	return t, nil
}
