package model

// Response is one answered question in the adaptive flow. An ordered list of
// responses is the entire questionnaire state; the client resubmits the full
// history on every turn and the server recomputes from scratch.
type Response struct {
	QuestionID  string `json:"questionId" bson:"questionId"`
	OptionIndex int    `json:"selectedOptionIndex" bson:"selectedOptionIndex"`
}

// LegacyResponse is one answered question in the fixed-length questionnaire,
// where answers are matched by option text rather than index.
type LegacyResponse struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}
