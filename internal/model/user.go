package model

import "time"

// User is a platform member. Only the profile fields the questionnaire flow
// touches live here; the wider platform owns the rest of the account.
type User struct {
	ID               string        `json:"id" bson:"_id,omitempty"`
	Name             string        `json:"name" bson:"name"`
	Email            string        `json:"email" bson:"email"`
	Bio              string        `json:"bio,omitempty" bson:"bio,omitempty"`
	Category         Category      `json:"category,omitempty" bson:"category,omitempty"`
	Traits           map[Trait]int `json:"traits,omitempty" bson:"traits,omitempty"`
	AIInsights       string        `json:"aiInsights,omitempty" bson:"aiInsights,omitempty"`
	ProfileCompleted bool          `json:"profileCompleted" bson:"profileCompleted"`
	CreatedAt        time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt" bson:"updatedAt"`
}
