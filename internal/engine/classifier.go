package engine

import (
	"sort"

	"thozhahub/internal/model"
)

// DominantTraitCount is how many top traits are reported as dominant.
const DominantTraitCount = 3

// Classify maps final scores to the winning category and a ranked trait
// list. The winner is the strictly highest score; ties resolve to the
// earliest category in the fixed declaration order, never map iteration
// order. Traits are ranked by descending value with the same stable
// declaration-order tie-break.
func Classify(scores map[model.Category]int, traits map[model.Trait]int) (model.Category, []model.Trait) {
	winner := model.AllCategories[0]
	for _, cat := range model.AllCategories[1:] {
		if scores[cat] > scores[winner] {
			winner = cat
		}
	}

	ranked := make([]model.Trait, len(model.AllTraits))
	copy(ranked, model.AllTraits)
	sort.SliceStable(ranked, func(i, j int) bool {
		return traits[ranked[i]] > traits[ranked[j]]
	})
	return winner, ranked
}

// TopTraits returns the dominant prefix of a ranked trait list.
func TopTraits(ranked []model.Trait) []model.Trait {
	if len(ranked) <= DominantTraitCount {
		return ranked
	}
	return ranked[:DominantTraitCount]
}
