package bank

import "thozhahub/internal/model"

// LegacyStartID is the first question of the fixed-length questionnaire.
const LegacyStartID = "q1"

// Legacy builds the original fixed-length questionnaire: eight questions,
// always asked in order, one category delta per option and no traits.
func Legacy() (*Bank, error) {
	return New(legacyNodes, LegacyStartID)
}

var legacyNodes = []model.QuestionNode{
	{
		ID:     "q1",
		Domain: model.DomainLearning,
		Text:   "When learning something new, I prefer to:",
		Options: []model.Option{
			{Text: "Try different approaches and experiment", Scores: cs{explorer: 3}},
			{Text: "Set clear goals and track my progress", Scores: cs{achiever: 3}},
			{Text: "Plan everything step-by-step first", Scores: cs{strategist: 3}},
			{Text: "Jump in and learn by doing", Scores: cs{practitioner: 3}},
		},
	},
	{
		ID:     "q2",
		Domain: model.DomainBehavior,
		Text:   "How do you handle challenges?",
		Options: []model.Option{
			{Text: "Try creative solutions and new methods", Scores: cs{explorer: 3}},
			{Text: "Push through until I succeed", Scores: cs{achiever: 3}},
			{Text: "Analyze the problem and create a strategy", Scores: cs{strategist: 3}},
			{Text: "Apply what I know and adapt as I go", Scores: cs{practitioner: 3}},
		},
	},
	{
		ID:     "q3",
		Domain: model.DomainGoals,
		Text:   "What motivates you most in learning?",
		Options: []model.Option{
			{Text: "Discovering new ideas and possibilities", Scores: cs{explorer: 3}},
			{Text: "Reaching milestones and achieving results", Scores: cs{achiever: 3}},
			{Text: "Understanding systems and finding optimal solutions", Scores: cs{strategist: 3}},
			{Text: "Building real things and solving practical problems", Scores: cs{practitioner: 3}},
		},
	},
	{
		ID:     "q4",
		Domain: model.DomainInterests,
		Text:   "Your ideal project would involve:",
		Options: []model.Option{
			{Text: "Research and innovation", Scores: cs{explorer: 3}},
			{Text: "Competition and measurable outcomes", Scores: cs{achiever: 3}},
			{Text: "Planning and optimization", Scores: cs{strategist: 3}},
			{Text: "Hands-on development and implementation", Scores: cs{practitioner: 3}},
		},
	},
	{
		ID:     "q5",
		Domain: model.DomainBehavior,
		Text:   "When working in a team, you usually:",
		Options: []model.Option{
			{Text: "Generate new ideas and explore alternatives", Scores: cs{explorer: 3}},
			{Text: "Drive the team toward goals and deadlines", Scores: cs{achiever: 3}},
			{Text: "Organize tasks and coordinate efforts", Scores: cs{strategist: 3}},
			{Text: "Execute tasks and deliver working solutions", Scores: cs{practitioner: 3}},
		},
	},
	{
		ID:     "q6",
		Domain: model.DomainInterests,
		Text:   "How do you prefer to spend your free time?",
		Options: []model.Option{
			{Text: "Exploring new hobbies and interests", Scores: cs{explorer: 2}},
			{Text: "Completing personal projects and goals", Scores: cs{achiever: 2}},
			{Text: "Learning about complex topics in depth", Scores: cs{strategist: 2}},
			{Text: "Building or creating something useful", Scores: cs{practitioner: 2}},
		},
	},
	{
		ID:     "q7",
		Domain: model.DomainLearning,
		Text:   "Your approach to problem-solving is:",
		Options: []model.Option{
			{Text: "Brainstorm many possible solutions", Scores: cs{explorer: 3}},
			{Text: "Focus on what will work fastest", Scores: cs{achiever: 3}},
			{Text: "Analyze root causes and patterns", Scores: cs{strategist: 3}},
			{Text: "Try solutions and iterate based on results", Scores: cs{practitioner: 3}},
		},
	},
	{
		ID:     "q8",
		Domain: model.DomainLearning,
		Text:   "What describes your learning style best?",
		Options: []model.Option{
			{Text: "Curious and open to new methods", Scores: cs{explorer: 3}},
			{Text: "Goal-oriented and focused on results", Scores: cs{achiever: 3}},
			{Text: "Systematic and methodical", Scores: cs{strategist: 3}},
			{Text: "Practical and application-focused", Scores: cs{practitioner: 3}},
		},
	},
}
