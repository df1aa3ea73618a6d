package engine

import (
	"errors"
	"math/rand"
	"testing"

	"thozhahub/internal/bank"
	"thozhahub/internal/model"
)

func selectorBank(t *testing.T, nodes []model.QuestionNode) *bank.Bank {
	t.Helper()
	b, err := bank.New(nodes, nodes[0].ID)
	if err != nil {
		t.Fatalf("bank.New() error = %v", err)
	}
	return b
}

func opts() []model.Option {
	return []model.Option{{Text: "one"}, {Text: "two"}}
}

func TestSelectSkipsAsked(t *testing.T) {
	b := selectorBank(t, []model.QuestionNode{
		{ID: "a", Domain: model.DomainLearningStyle, Options: opts()},
		{ID: "b", Domain: model.DomainMotivation, Options: opts()},
	})

	tally, err := Accumulate(b, []model.Response{{QuestionID: "a", OptionIndex: 0}})
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	got, err := Select(b, tally, "", rng)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got.ID != "b" {
		t.Errorf("Select() = %q, want %q", got.ID, "b")
	}
}

func TestSelectPrefersUncoveredDomain(t *testing.T) {
	// One behavior question answered; the remaining candidates are a second
	// behavior question and a motivation question. The uncovered-domain bonus
	// exceeds the balanced-domain bonus plus any jitter, so motivation must
	// win for every seed.
	b := selectorBank(t, []model.QuestionNode{
		{ID: "b1", Domain: model.DomainBehavior, Options: opts()},
		{ID: "b2", Domain: model.DomainBehavior, Options: opts()},
		{ID: "m1", Domain: model.DomainMotivation, Options: opts()},
	})

	tally, err := Accumulate(b, []model.Response{{QuestionID: "b1", OptionIndex: 0}})
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, err := Select(b, tally, "", rng)
		if err != nil {
			t.Fatalf("seed %d: Select() error = %v", seed, err)
		}
		if got.ID != "m1" {
			t.Errorf("seed %d: Select() = %q, want %q", seed, got.ID, "m1")
		}
	}
}

func TestSelectHintBreaksEvenCandidates(t *testing.T) {
	// Both candidates sit in uncovered domains with identical structure; only
	// the continuity hint separates them, and it outweighs the jitter.
	b := selectorBank(t, []model.QuestionNode{
		{ID: "start", Domain: model.DomainLearningStyle, Options: []model.Option{
			{Text: "one", NextID: "m1"},
			{Text: "two", NextID: "p1"},
		}},
		{ID: "m1", Domain: model.DomainMotivation, Options: opts()},
		{ID: "p1", Domain: model.DomainPersonality, Options: opts()},
	})

	tally, err := Accumulate(b, []model.Response{{QuestionID: "start", OptionIndex: 1}})
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, err := Select(b, tally, "p1", rng)
		if err != nil {
			t.Fatalf("seed %d: Select() error = %v", seed, err)
		}
		if got.ID != "p1" {
			t.Errorf("seed %d: Select() = %q, want %q", seed, got.ID, "p1")
		}
	}
}

func TestSelectPrefersUnderRepresentedTraits(t *testing.T) {
	// Same domain situation for both candidates; one covers two starved
	// traits (+1.5 each), which beats the jitter.
	b := selectorBank(t, []model.QuestionNode{
		{ID: "a", Domain: model.DomainBehavior, Options: opts()},
		{ID: "plain", Domain: model.DomainMotivation, Options: opts()},
		{ID: "traity", Domain: model.DomainMotivation, Options: []model.Option{
			{Text: "one", Traits: map[model.Trait]int{model.TraitSocial: 2}},
			{Text: "two", Traits: map[model.Trait]int{model.TraitCreative: 1}},
		}},
	})

	tally, err := Accumulate(b, []model.Response{{QuestionID: "a", OptionIndex: 0}})
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, err := Select(b, tally, "", rng)
		if err != nil {
			t.Fatalf("seed %d: Select() error = %v", seed, err)
		}
		if got.ID != "traity" {
			t.Errorf("seed %d: Select() = %q, want %q", seed, got.ID, "traity")
		}
	}
}

func TestSelectExhausted(t *testing.T) {
	b := selectorBank(t, []model.QuestionNode{
		{ID: "a", Domain: model.DomainBehavior, Options: opts()},
	})

	tally, err := Accumulate(b, []model.Response{{QuestionID: "a", OptionIndex: 0}})
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}

	_, err = Select(b, tally, "", rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrBankExhausted) {
		t.Errorf("Select() error = %v, want ErrBankExhausted", err)
	}
}

func TestSelectDeterministicWithFixedSeed(t *testing.T) {
	b := selectorBank(t, []model.QuestionNode{
		{ID: "a", Domain: model.DomainBehavior, Options: opts()},
		{ID: "b", Domain: model.DomainBehavior, Options: opts()},
		{ID: "c", Domain: model.DomainBehavior, Options: opts()},
	})

	tally, err := Accumulate(b, nil)
	if err != nil {
		t.Fatalf("Accumulate() error = %v", err)
	}

	first, err := Select(b, tally, "", rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Select(b, tally, "", rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("run %d: Select() = %q, want %q", i, again.ID, first.ID)
		}
	}
}
