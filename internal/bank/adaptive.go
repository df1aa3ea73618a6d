package bank

import "thozhahub/internal/model"

// Shorthand for the data tables below.
type cs = map[model.Category]int
type ts = map[model.Trait]int

const (
	explorer     = model.CategoryExplorer
	achiever     = model.CategoryAchiever
	strategist   = model.CategoryStrategist
	practitioner = model.CategoryPractitioner

	analytical     = model.TraitAnalytical
	creative       = model.TraitCreative
	social         = model.TraitSocial
	practical      = model.TraitPractical
	detailOriented = model.TraitDetailOriented
	bigPicture     = model.TraitBigPicture
)

// AdaptiveStartID is the entry node of the adaptive questionnaire.
const AdaptiveStartID = "start"

// Adaptive builds the branching adaptive questionnaire bank. The graph is a
// DAG by construction: hints only point forward toward the shared tail
// questions, and the final question carries no hints.
func Adaptive() (*Bank, error) {
	return New(adaptiveNodes, AdaptiveStartID)
}

var adaptiveNodes = []model.QuestionNode{
	{
		ID:          "start",
		Domain:      model.DomainLearningStyle,
		Text:        "How do you prefer to learn new technical concepts?",
		Description: "This helps us understand your primary learning style",
		Options: []model.Option{
			{
				Text:   "Reading documentation and articles",
				NextID: "deep_reading",
				Scores: cs{explorer: 2, achiever: 1},
				Traits: ts{analytical: 2, detailOriented: 1},
			},
			{
				Text:   "Watching video tutorials",
				NextID: "visual_learning",
				Scores: cs{explorer: 1, practitioner: 1},
				Traits: ts{creative: 1, practical: 1},
			},
			{
				Text:   "Building projects immediately",
				NextID: "hands_on",
				Scores: cs{practitioner: 3},
				Traits: ts{practical: 3, bigPicture: 1},
			},
			{
				Text:   "Learning with peers and mentors",
				NextID: "social_learning",
				Scores: cs{strategist: 2},
				Traits: ts{social: 3, creative: 1},
			},
		},
	},
	{
		ID:     "deep_reading",
		Domain: model.DomainBehavior,
		Text:   "When reading technical content, you tend to...",
		Options: []model.Option{
			{
				Text:   "Read everything thoroughly, take detailed notes",
				NextID: "perfectionist_check",
				Scores: cs{achiever: 2, strategist: 1},
				Traits: ts{analytical: 2, detailOriented: 3},
			},
			{
				Text:   "Skim for key concepts, then deep-dive on important parts",
				NextID: "time_management",
				Scores: cs{strategist: 2, explorer: 1},
				Traits: ts{bigPicture: 2, analytical: 1},
			},
			{
				Text:   "Read multiple sources to compare approaches",
				NextID: "research_depth",
				Scores: cs{explorer: 3},
				Traits: ts{analytical: 2, creative: 1},
			},
		},
	},
	{
		ID:     "perfectionist_check",
		Domain: model.DomainBehavior,
		Text:   "Before starting a project, you need to...",
		Options: []model.Option{
			{
				Text:   "Understand every detail and edge case",
				NextID: "motivation_type",
				Scores: cs{achiever: 3},
				Traits: ts{detailOriented: 3, analytical: 2},
			},
			{
				Text:   "Have a solid plan but be flexible",
				NextID: "motivation_type",
				Scores: cs{strategist: 2, achiever: 1},
				Traits: ts{bigPicture: 2, detailOriented: 1},
			},
			{
				Text:   "Just enough to get started",
				NextID: "motivation_type",
				Scores: cs{practitioner: 2},
				Traits: ts{practical: 2, bigPicture: 1},
			},
		},
	},
	{
		ID:     "research_depth",
		Domain: model.DomainBehavior,
		Text:   "When exploring a new technology, you usually...",
		Options: []model.Option{
			{
				Text:   "Try to understand the underlying concepts first",
				NextID: "motivation_type",
				Scores: cs{explorer: 2, achiever: 1},
				Traits: ts{analytical: 3, detailOriented: 1},
			},
			{
				Text:   "Look for real-world use cases and examples",
				NextID: "motivation_type",
				Scores: cs{strategist: 2},
				Traits: ts{practical: 2, bigPicture: 2},
			},
			{
				Text:   "Explore alternative solutions and compare",
				NextID: "motivation_type",
				Scores: cs{explorer: 3},
				Traits: ts{creative: 2, analytical: 2},
			},
		},
	},
	{
		ID:     "visual_learning",
		Domain: model.DomainBehavior,
		Text:   "After watching a tutorial, you typically...",
		Options: []model.Option{
			{
				Text:   "Pause and code along step-by-step",
				NextID: "practice_approach",
				Scores: cs{practitioner: 2, achiever: 1},
				Traits: ts{practical: 2, detailOriented: 1},
			},
			{
				Text:   "Watch completely, then build from scratch",
				NextID: "practice_approach",
				Scores: cs{strategist: 2, practitioner: 1},
				Traits: ts{bigPicture: 2, practical: 1},
			},
			{
				Text:   "Take notes and create your own version",
				NextID: "practice_approach",
				Scores: cs{explorer: 2, achiever: 1},
				Traits: ts{creative: 2, analytical: 1},
			},
		},
	},
	{
		ID:     "practice_approach",
		Domain: model.DomainSkillPreference,
		Text:   "When practicing coding, you prefer...",
		Options: []model.Option{
			{
				Text:   "Solving structured problems (LeetCode, HackerRank)",
				NextID: "challenge_response",
				Scores: cs{achiever: 3},
				Traits: ts{analytical: 2, detailOriented: 2},
			},
			{
				Text:   "Building real projects",
				NextID: "challenge_response",
				Scores: cs{practitioner: 3},
				Traits: ts{practical: 3, creative: 1},
			},
			{
				Text:   "Contributing to open source",
				NextID: "challenge_response",
				Scores: cs{strategist: 2, explorer: 1},
				Traits: ts{social: 2, creative: 1},
			},
			{
				Text:   "Experimenting with new libraries and frameworks",
				NextID: "challenge_response",
				Scores: cs{explorer: 3},
				Traits: ts{creative: 2, practical: 1},
			},
		},
	},
	{
		ID:     "hands_on",
		Domain: model.DomainBehavior,
		Text:   "When starting a new project, you...",
		Options: []model.Option{
			{
				Text:   "Jump in and figure it out as I go",
				NextID: "problem_solving",
				Scores: cs{practitioner: 3},
				Traits: ts{practical: 3, bigPicture: 1},
			},
			{
				Text:   "Make a quick plan, then start building",
				NextID: "problem_solving",
				Scores: cs{strategist: 2, practitioner: 1},
				Traits: ts{bigPicture: 2, practical: 2},
			},
			{
				Text:   "Research similar projects first",
				NextID: "problem_solving",
				Scores: cs{explorer: 2, achiever: 1},
				Traits: ts{analytical: 2, creative: 1},
			},
		},
	},
	{
		ID:     "problem_solving",
		Domain: model.DomainBehavior,
		Text:   "When you encounter a bug, your first instinct is to...",
		Options: []model.Option{
			{
				Text:   "Debug systematically line by line",
				NextID: "time_management",
				Scores: cs{achiever: 2, strategist: 1},
				Traits: ts{analytical: 3, detailOriented: 2},
			},
			{
				Text:   "Google the error message",
				NextID: "time_management",
				Scores: cs{practitioner: 2},
				Traits: ts{practical: 3},
			},
			{
				Text:   "Reproduce it and understand why it happens",
				NextID: "time_management",
				Scores: cs{explorer: 2, achiever: 1},
				Traits: ts{analytical: 2, detailOriented: 1},
			},
			{
				Text:   "Ask for help from community or peers",
				NextID: "time_management",
				Scores: cs{strategist: 2},
				Traits: ts{social: 3, practical: 1},
			},
		},
	},
	{
		ID:     "social_learning",
		Domain: model.DomainPersonality,
		Text:   "In group learning settings, you usually...",
		Options: []model.Option{
			{
				Text:   "Lead discussions and explain concepts",
				NextID: "collaboration_style",
				Scores: cs{strategist: 3},
				Traits: ts{social: 3, bigPicture: 2},
			},
			{
				Text:   "Listen and ask clarifying questions",
				NextID: "collaboration_style",
				Scores: cs{explorer: 2, achiever: 1},
				Traits: ts{analytical: 2, detailOriented: 1},
			},
			{
				Text:   "Work on code together",
				NextID: "collaboration_style",
				Scores: cs{practitioner: 2, strategist: 1},
				Traits: ts{practical: 2, social: 2},
			},
		},
	},
	{
		ID:     "collaboration_style",
		Domain: model.DomainPersonality,
		Text:   "In team projects, you enjoy...",
		Options: []model.Option{
			{
				Text:   "Planning architecture and coordinating",
				NextID: "challenge_response",
				Scores: cs{strategist: 3},
				Traits: ts{bigPicture: 3, social: 2},
			},
			{
				Text:   "Implementing core features",
				NextID: "challenge_response",
				Scores: cs{achiever: 2, practitioner: 1},
				Traits: ts{practical: 2, detailOriented: 2},
			},
			{
				Text:   "Exploring new technologies to integrate",
				NextID: "challenge_response",
				Scores: cs{explorer: 3},
				Traits: ts{creative: 3, analytical: 1},
			},
		},
	},
	{
		ID:     "time_management",
		Domain: model.DomainTimeManagement,
		Text:   "How do you typically manage your learning time?",
		Options: []model.Option{
			{
				Text:   "Fixed schedule, same time every day",
				NextID: "challenge_response",
				Scores: cs{achiever: 2, strategist: 1},
				Traits: ts{detailOriented: 2},
			},
			{
				Text:   "Flexible, whenever I feel motivated",
				NextID: "challenge_response",
				Scores: cs{explorer: 2, practitioner: 1},
				Traits: ts{creative: 1, practical: 1},
			},
			{
				Text:   "Intensive bursts when I have deadlines",
				NextID: "challenge_response",
				Scores: cs{practitioner: 2},
				Traits: ts{practical: 2},
			},
			{
				Text:   "Planned weekly goals",
				NextID: "challenge_response",
				Scores: cs{strategist: 3},
				Traits: ts{bigPicture: 2, detailOriented: 1},
			},
		},
	},
	{
		ID:     "challenge_response",
		Domain: model.DomainBehavior,
		Text:   "When facing a difficult concept, you...",
		Options: []model.Option{
			{
				Text:   "Keep trying until I master it completely",
				NextID: "motivation_type",
				Scores: cs{achiever: 3},
				Traits: ts{detailOriented: 2, analytical: 1},
			},
			{
				Text:   "Break it down into smaller parts",
				NextID: "motivation_type",
				Scores: cs{strategist: 3},
				Traits: ts{bigPicture: 2, analytical: 2},
			},
			{
				Text:   "Build something simple to understand it",
				NextID: "motivation_type",
				Scores: cs{practitioner: 3},
				Traits: ts{practical: 3},
			},
			{
				Text:   "Explore different explanations and approaches",
				NextID: "motivation_type",
				Scores: cs{explorer: 3},
				Traits: ts{creative: 2, analytical: 1},
			},
		},
	},
	{
		ID:     "motivation_type",
		Domain: model.DomainMotivation,
		Text:   "What motivates you most to learn?",
		Options: []model.Option{
			{
				Text:   "Building something useful and innovative",
				NextID: "final_goal",
				Scores: cs{practitioner: 2, explorer: 1},
				Traits: ts{practical: 2, creative: 2},
			},
			{
				Text:   "Mastering complex concepts",
				NextID: "final_goal",
				Scores: cs{achiever: 3},
				Traits: ts{analytical: 3, detailOriented: 2},
			},
			{
				Text:   "Solving real-world problems",
				NextID: "final_goal",
				Scores: cs{strategist: 3},
				Traits: ts{bigPicture: 3, practical: 1},
			},
			{
				Text:   "Discovering new technologies",
				NextID: "final_goal",
				Scores: cs{explorer: 3},
				Traits: ts{creative: 3, analytical: 1},
			},
		},
	},
	{
		ID:          "final_goal",
		Domain:      model.DomainMotivation,
		Text:        "What is your primary goal for the next 6 months?",
		Description: "This is the last question!",
		Options: []model.Option{
			{
				Text:   "Get a job or internship",
				Scores: cs{achiever: 2, practitioner: 1},
				Traits: ts{practical: 2, detailOriented: 1},
			},
			{
				Text:   "Build a portfolio project",
				Scores: cs{practitioner: 2, strategist: 1},
				Traits: ts{practical: 3, creative: 1},
			},
			{
				Text:   "Master a specific technology or framework",
				Scores: cs{achiever: 3},
				Traits: ts{analytical: 2, detailOriented: 2},
			},
			{
				Text:   "Explore multiple tech stacks",
				Scores: cs{explorer: 3},
				Traits: ts{creative: 2, bigPicture: 1},
			},
			{
				Text:   "Contribute to open source and community",
				Scores: cs{strategist: 2, explorer: 1},
				Traits: ts{social: 3, creative: 1},
			},
		},
	},
}
