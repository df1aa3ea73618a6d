package model

// Insight is the narrative learning-profile analysis produced for a completed
// adaptive questionnaire. Every field is required: the deterministic fallback
// generator fills all of them when the AI service is unavailable.
type Insight struct {
	PersonalityProfile string   `json:"personalityProfile" bson:"personalityProfile"`
	LearningPath       string   `json:"learningPath" bson:"learningPath"`
	Strengths          []string `json:"strengths" bson:"strengths"`
	GrowthAreas        []string `json:"growthAreas" bson:"growthAreas"`
	StudyStrategies    []string `json:"studyStrategies" bson:"studyStrategies"`
	ProjectSuggestions []string `json:"projectSuggestions" bson:"projectSuggestions"`
	CareerPath         string   `json:"careerPath" bson:"careerPath"`
	MotivationalTips   []string `json:"motivationalTips" bson:"motivationalTips"`
}

// Complete reports whether every required field is populated. Partial objects
// from a malformed AI response are rejected in favor of the fallback.
func (i *Insight) Complete() bool {
	if i == nil {
		return false
	}
	return i.PersonalityProfile != "" &&
		i.LearningPath != "" &&
		len(i.Strengths) > 0 &&
		len(i.GrowthAreas) > 0 &&
		len(i.StudyStrategies) > 0 &&
		len(i.ProjectSuggestions) > 0 &&
		i.CareerPath != "" &&
		len(i.MotivationalTips) > 0
}
