package engine

import (
	"errors"
	"math/rand"

	"thozhahub/internal/bank"
	"thozhahub/internal/model"
)

// ErrBankExhausted is returned when every question has already been asked.
// The termination policy stops before this in normal flow; callers that still
// hit it should treat it as an implicit stop, not a failure.
var ErrBankExhausted = errors.New("engine: no unasked questions remain")

// Selection bonus weights. The exact values are tunable; what matters is the
// ordering: domain coverage outweighs the continuity hint, which outweighs
// trait coverage, and the jitter never outweighs any structural bonus.
const (
	bonusUncoveredDomain = 3.0
	bonusBalancedDomain  = 2.0
	bonusUnderTrait      = 1.5
	bonusContinuityHint  = 2.0

	// lowTraitWaterMark marks a trait as under-represented while its
	// accumulated value is at or below this.
	lowTraitWaterMark = 1
)

// Select scores every unasked question and returns the best one. hintID is
// the continuity hint from the just-answered option (empty for none). rng
// supplies the tie-break jitter in [0,1); ties that survive the jitter keep
// the earlier question in bank declaration order.
func Select(b *bank.Bank, t *Tally, hintID string, rng *rand.Rand) (*model.QuestionNode, error) {
	minAsk := minDomainAsk(t.DomainAsks)
	lowTraits := make(map[model.Trait]bool, len(t.Traits))
	for trait, v := range t.Traits {
		if v <= lowTraitWaterMark {
			lowTraits[trait] = true
		}
	}

	var best *model.QuestionNode
	bestScore := 0.0
	for _, q := range b.All() {
		if t.Asked[q.ID] {
			continue
		}
		score := 0.0
		if t.DomainAsks[q.Domain] == 0 {
			score += bonusUncoveredDomain
		}
		if t.DomainAsks[q.Domain] == minAsk {
			score += bonusBalancedDomain
		}
		for _, trait := range bank.TraitCoverage(q) {
			if lowTraits[trait] {
				score += bonusUnderTrait
			}
		}
		if q.ID == hintID {
			score += bonusContinuityHint
		}
		score += rng.Float64()

		if best == nil || score > bestScore {
			best = q
			bestScore = score
		}
	}
	if best == nil {
		return nil, ErrBankExhausted
	}
	return best, nil
}

// minDomainAsk is the smallest ask count among domains asked so far, zero
// when nothing has been asked yet.
func minDomainAsk(asks map[model.Domain]int) int {
	min := 0
	first := true
	for _, n := range asks {
		if first || n < min {
			min = n
			first = false
		}
	}
	return min
}
