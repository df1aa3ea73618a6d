package bank

import (
	"testing"

	"thozhahub/internal/model"
)

func validNodes() []model.QuestionNode {
	return []model.QuestionNode{
		{
			ID:     "a",
			Domain: model.DomainLearningStyle,
			Options: []model.Option{
				{Text: "one", Scores: cs{explorer: 1}, NextID: "b"},
				{Text: "two", Scores: cs{achiever: 2}},
			},
		},
		{
			ID:     "b",
			Domain: model.DomainMotivation,
			Options: []model.Option{
				{Text: "one", Traits: ts{social: 1}},
				{Text: "two", Traits: ts{practical: 2}},
			},
		},
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(nodes []model.QuestionNode) []model.QuestionNode
		startID string
		wantErr bool
	}{
		{
			name:    "valid bank",
			mutate:  func(n []model.QuestionNode) []model.QuestionNode { return n },
			startID: "a",
		},
		{
			name: "empty id",
			mutate: func(n []model.QuestionNode) []model.QuestionNode {
				n[0].ID = ""
				return n
			},
			startID: "a",
			wantErr: true,
		},
		{
			name: "duplicate id",
			mutate: func(n []model.QuestionNode) []model.QuestionNode {
				n[1].ID = "a"
				return n
			},
			startID: "a",
			wantErr: true,
		},
		{
			name:    "missing start",
			mutate:  func(n []model.QuestionNode) []model.QuestionNode { return n },
			startID: "nope",
			wantErr: true,
		},
		{
			name: "single option",
			mutate: func(n []model.QuestionNode) []model.QuestionNode {
				n[0].Options = n[0].Options[:1]
				return n
			},
			startID: "a",
			wantErr: true,
		},
		{
			name: "dangling hint",
			mutate: func(n []model.QuestionNode) []model.QuestionNode {
				n[0].Options[0].NextID = "ghost"
				return n
			},
			startID: "a",
			wantErr: true,
		},
		{
			name: "negative score delta",
			mutate: func(n []model.QuestionNode) []model.QuestionNode {
				n[0].Options[0].Scores = cs{explorer: -1}
				return n
			},
			startID: "a",
			wantErr: true,
		},
		{
			name: "negative trait delta",
			mutate: func(n []model.QuestionNode) []model.QuestionNode {
				n[1].Options[0].Traits = ts{social: -2}
				return n
			},
			startID: "a",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(validNodes()), tt.startID)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBankAccessors(t *testing.T) {
	b, err := New(validNodes(), "a")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := b.Start().ID; got != "a" {
		t.Errorf("Start() = %q, want %q", got, "a")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	if _, ok := b.Get("b"); !ok {
		t.Error("Get(b) not found")
	}
	if _, ok := b.Get("ghost"); ok {
		t.Error("Get(ghost) unexpectedly found")
	}

	all := b.All()
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("All() order = %v, want [a b]", []string{all[0].ID, all[1].ID})
	}
}

func TestTraitCoverage(t *testing.T) {
	q := &model.QuestionNode{
		ID: "x",
		Options: []model.Option{
			{Text: "one", Traits: ts{practical: 1, analytical: 2}},
			{Text: "two", Traits: ts{creative: 1}},
		},
	}

	got := TraitCoverage(q)
	want := []model.Trait{model.TraitAnalytical, model.TraitCreative, model.TraitPractical}
	if len(got) != len(want) {
		t.Fatalf("TraitCoverage() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TraitCoverage()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAdaptiveBank(t *testing.T) {
	b, err := Adaptive()
	if err != nil {
		t.Fatalf("Adaptive() error = %v", err)
	}

	if b.Len() != 14 {
		t.Errorf("Len() = %d, want 14", b.Len())
	}

	start := b.Start()
	if start.ID != AdaptiveStartID {
		t.Fatalf("Start().ID = %q, want %q", start.ID, AdaptiveStartID)
	}
	if start.Domain != model.DomainLearningStyle {
		t.Errorf("start domain = %v, want %v", start.Domain, model.DomainLearningStyle)
	}
	if len(start.Options) != 4 {
		t.Fatalf("start options = %d, want 4", len(start.Options))
	}

	// Picking the project-building answer should score Practitioner and hint
	// at the hands-on follow-up.
	opt := start.Options[2]
	if opt.Scores[model.CategoryPractitioner] != 3 {
		t.Errorf("option score = %d, want 3", opt.Scores[model.CategoryPractitioner])
	}
	if opt.NextID != "hands_on" {
		t.Errorf("option NextID = %q, want %q", opt.NextID, "hands_on")
	}

	// The final question closes the graph: no hints forward.
	final, ok := b.Get("final_goal")
	if !ok {
		t.Fatal("final_goal not found")
	}
	for i, o := range final.Options {
		if o.NextID != "" {
			t.Errorf("final_goal option %d has hint %q, want none", i, o.NextID)
		}
	}
}

func TestLegacyBank(t *testing.T) {
	b, err := Legacy()
	if err != nil {
		t.Fatalf("Legacy() error = %v", err)
	}

	if b.Len() != 8 {
		t.Errorf("Len() = %d, want 8", b.Len())
	}
	if b.Start().ID != LegacyStartID {
		t.Errorf("Start().ID = %q, want %q", b.Start().ID, LegacyStartID)
	}

	// Every legacy option scores exactly one category and carries no traits.
	for _, q := range b.All() {
		if len(q.Options) != 4 {
			t.Errorf("question %q has %d options, want 4", q.ID, len(q.Options))
		}
		for i, o := range q.Options {
			if len(o.Scores) != 1 {
				t.Errorf("question %q option %d scores %d categories, want 1", q.ID, i, len(o.Scores))
			}
			if len(o.Traits) != 0 {
				t.Errorf("question %q option %d has traits, want none", q.ID, i)
			}
		}
	}
}
