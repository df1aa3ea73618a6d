package model

import "time"

// QuestionnaireKind distinguishes the fixed-length questionnaire from the
// adaptive one.
type QuestionnaireKind string

const (
	KindLegacy   QuestionnaireKind = "legacy"
	KindAdaptive QuestionnaireKind = "adaptive"
)

// AnsweredQuestion is one processed response stored with a result.
type AnsweredQuestion struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	Answer     string `json:"answer" bson:"answer"`
	Score      int    `json:"score" bson:"score"`
}

// Analysis summarizes the classification outcome.
type Analysis struct {
	PrimaryCategory Category `json:"primaryCategory" bson:"primaryCategory"`
	TopTraits       []Trait  `json:"topTraits" bson:"topTraits"`
}

// QuestionnaireResult is a completed questionnaire stored per user.
type QuestionnaireResult struct {
	ID          string             `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	Kind        QuestionnaireKind  `json:"kind" bson:"kind"`
	Category    Category           `json:"category" bson:"category"`
	Responses   []AnsweredQuestion `json:"responses" bson:"responses"`
	Scores      map[Category]int   `json:"scores" bson:"scores"`
	Traits      map[Trait]int      `json:"traits,omitempty" bson:"traits,omitempty"`
	Analysis    *Analysis          `json:"analysis,omitempty" bson:"analysis,omitempty"`
	Insights    *Insight           `json:"aiInsights,omitempty" bson:"aiInsights,omitempty"`
	CompletedAt time.Time          `json:"completedAt" bson:"completedAt"`
}
