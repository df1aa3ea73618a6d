package model

// Category is a top-level learner archetype the questionnaire classifies a
// user into. The declaration order below is the fixed tie-break order used by
// the classifier; never rely on map iteration order for ranking.
type Category string

const (
	CategoryExplorer     Category = "Explorer"
	CategoryAchiever     Category = "Achiever"
	CategoryStrategist   Category = "Strategist"
	CategoryPractitioner Category = "Practitioner"
)

// AllCategories lists every category in tie-break order.
var AllCategories = []Category{
	CategoryExplorer,
	CategoryAchiever,
	CategoryStrategist,
	CategoryPractitioner,
}

// Trait is a finer-grained behavioral dimension, used for question selection
// and narrative insights rather than for the primary classification.
// Declaration order is the tie-break order for trait ranking.
type Trait string

const (
	TraitAnalytical     Trait = "analytical"
	TraitCreative       Trait = "creative"
	TraitSocial         Trait = "social"
	TraitPractical      Trait = "practical"
	TraitDetailOriented Trait = "detail_oriented"
	TraitBigPicture     Trait = "big_picture"
	TraitIndependent    Trait = "independent"
	TraitCollaborative  Trait = "collaborative"
	TraitTheoretical    Trait = "theoretical"
	TraitExperimental   Trait = "experimental"
)

// AllTraits lists every trait in tie-break order.
var AllTraits = []Trait{
	TraitAnalytical,
	TraitCreative,
	TraitSocial,
	TraitPractical,
	TraitDetailOriented,
	TraitBigPicture,
	TraitIndependent,
	TraitCollaborative,
	TraitTheoretical,
	TraitExperimental,
}

// Domain is the subject area a question probes. Distinct from Category: a
// behavior question can score any archetype.
type Domain string

const (
	DomainLearningStyle   Domain = "learning_style"
	DomainMotivation      Domain = "motivation"
	DomainBehavior        Domain = "behavior"
	DomainTimeManagement  Domain = "time_management"
	DomainSkillPreference Domain = "skill_preference"
	DomainPersonality     Domain = "personality"

	// Domains used only by the fixed-length legacy questionnaire.
	DomainLearning  Domain = "learning"
	DomainInterests Domain = "interests"
	DomainGoals     Domain = "goals"
)

// QuestionNode is one node of the question bank. Nodes are defined at build
// time and never mutated.
type QuestionNode struct {
	ID          string
	Domain      Domain
	Text        string
	Description string
	Options     []Option
}

// Option is one possible answer. Options are referenced by their index within
// the node's option list, so the order is part of the contract.
type Option struct {
	Text string

	// Scores and Traits are the deltas this answer contributes.
	Scores map[Category]int
	Traits map[Trait]int

	// NextID is a soft continuity hint toward a natural follow-up question.
	// Empty means no hint.
	NextID string
}

// ScoreTotal is the combined category score value of picking this option.
func (o Option) ScoreTotal() int {
	total := 0
	for _, v := range o.Scores {
		total += v
	}
	return total
}

// QuestionView is the client-facing shape of a question. It deliberately
// omits score and trait deltas so clients cannot see how answers are
// weighted.
type QuestionView struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Category    Domain       `json:"category"`
	Description string       `json:"description,omitempty"`
	Options     []OptionView `json:"options"`
}

// OptionView exposes only the answer text.
type OptionView struct {
	Text string `json:"text"`
}

// View returns the sanitized client-facing shape of the question.
func (q *QuestionNode) View() QuestionView {
	opts := make([]OptionView, len(q.Options))
	for i, opt := range q.Options {
		opts[i] = OptionView{Text: opt.Text}
	}
	return QuestionView{
		ID:          q.ID,
		Text:        q.Text,
		Category:    q.Domain,
		Description: q.Description,
		Options:     opts,
	}
}
