package engine

import (
	"testing"

	"thozhahub/internal/model"
)

func TestClassifyWinner(t *testing.T) {
	tests := []struct {
		name   string
		scores map[model.Category]int
		want   model.Category
	}{
		{"clear winner", scoresOf(2, 9, 3, 1), model.CategoryAchiever},
		{"all zero ties to first", scoresOf(0, 0, 0, 0), model.CategoryExplorer},
		{"two-way tie keeps earlier", scoresOf(1, 5, 5, 2), model.CategoryAchiever},
		{"last category wins", scoresOf(1, 2, 3, 8), model.CategoryPractitioner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(tt.scores, nil)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyTieStability(t *testing.T) {
	scores := scoresOf(4, 4, 4, 4)
	first, _ := Classify(scores, nil)
	for i := 0; i < 50; i++ {
		got, _ := Classify(scores, nil)
		if got != first {
			t.Fatalf("run %d: Classify() = %v, want %v", i, got, first)
		}
	}
}

func TestClassifyTraitRanking(t *testing.T) {
	traits := map[model.Trait]int{
		model.TraitPractical:  5,
		model.TraitAnalytical: 3,
		model.TraitCreative:   3,
		model.TraitSocial:     1,
	}

	_, ranked := Classify(scoresOf(1, 0, 0, 0), traits)
	if len(ranked) != len(model.AllTraits) {
		t.Fatalf("ranked length = %d, want %d", len(ranked), len(model.AllTraits))
	}

	// practical leads; the analytical/creative tie keeps declaration order.
	want := []model.Trait{model.TraitPractical, model.TraitAnalytical, model.TraitCreative}
	for i, tr := range want {
		if ranked[i] != tr {
			t.Errorf("ranked[%d] = %v, want %v", i, ranked[i], tr)
		}
	}

	top := TopTraits(ranked)
	if len(top) != DominantTraitCount {
		t.Errorf("TopTraits() length = %d, want %d", len(top), DominantTraitCount)
	}
}

func TestTopTraitsShortList(t *testing.T) {
	ranked := []model.Trait{model.TraitSocial}
	top := TopTraits(ranked)
	if len(top) != 1 || top[0] != model.TraitSocial {
		t.Errorf("TopTraits() = %v, want [social]", top)
	}
}
