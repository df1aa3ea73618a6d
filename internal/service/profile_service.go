package service

import (
	"context"
	"log"
	"strings"
	"time"

	"thozhahub/internal/bank"
	"thozhahub/internal/cache"
	"thozhahub/internal/engine"
	"thozhahub/internal/event"
	"thozhahub/internal/model"
	"thozhahub/internal/repository"
)

// MsgProfileCompleted is pushed over websocket when a questionnaire finishes.
const MsgProfileCompleted = "profile_completed"

// ProfileService orchestrates both questionnaire flows: the fixed-length
// questionnaire and the adaptive one. Results are persisted per user, cached,
// and fanned out as notifications and platform events.
type ProfileService struct {
	engine       *engine.Engine
	adaptiveBank *bank.Bank
	legacyBank   *bank.Bank

	users    repository.UserRepo
	results  repository.ResultRepo
	cache    cache.ResultCache
	insights *InsightService

	notifier Notifier
	events   *event.Publisher
}

// NewProfileService creates the service, building both question banks.
func NewProfileService(users repository.UserRepo, results repository.ResultRepo, resultCache cache.ResultCache, insights *InsightService) (*ProfileService, error) {
	adaptive, err := bank.Adaptive()
	if err != nil {
		return nil, err
	}
	legacy, err := bank.Legacy()
	if err != nil {
		return nil, err
	}

	return &ProfileService{
		engine:       engine.New(adaptive, engine.DefaultConfig()),
		adaptiveBank: adaptive,
		legacyBank:   legacy,
		users:        users,
		results:      results,
		cache:        resultCache,
		insights:     insights,
	}, nil
}

// SetNotifier wires the websocket hub. Optional; nil means no push.
func (s *ProfileService) SetNotifier(n Notifier) {
	s.notifier = n
}

// SetEvents wires the platform event publisher. Optional.
func (s *ProfileService) SetEvents(p *event.Publisher) {
	s.events = p
}

// Questions returns the fixed questionnaire in order.
func (s *ProfileService) Questions() []model.QuestionView {
	nodes := s.legacyBank.All()
	views := make([]model.QuestionView, len(nodes))
	for i, q := range nodes {
		views[i] = q.View()
	}
	return views
}

// SubmitLegacy scores a fixed questionnaire submission. Answers are matched
// against option text, the way the original web form sends them.
func (s *ProfileService) SubmitLegacy(ctx context.Context, userID string, responses []model.LegacyResponse) (*model.QuestionnaireResult, error) {
	scores := make(map[model.Category]int, len(model.AllCategories))
	for _, cat := range model.AllCategories {
		scores[cat] = 0
	}

	answered := make([]model.AnsweredQuestion, 0, len(responses))
	for _, resp := range responses {
		q, ok := s.legacyBank.Get(resp.QuestionID)
		if !ok {
			return nil, &engine.ValidationError{QuestionID: resp.QuestionID, OptionIndex: -1, Reason: "unknown question id"}
		}
		var matched *model.Option
		for i := range q.Options {
			if q.Options[i].Text == resp.Answer {
				matched = &q.Options[i]
				break
			}
		}
		if matched == nil {
			return nil, &engine.ValidationError{QuestionID: resp.QuestionID, OptionIndex: -1, Reason: "answer does not match any option"}
		}
		for cat, v := range matched.Scores {
			scores[cat] += v
		}
		answered = append(answered, model.AnsweredQuestion{
			QuestionID: resp.QuestionID,
			Answer:     matched.Text,
			Score:      matched.ScoreTotal(),
		})
	}

	category, _ := engine.Classify(scores, nil)

	result := &model.QuestionnaireResult{
		UserID:      userID,
		Kind:        model.KindLegacy,
		Category:    category,
		Responses:   answered,
		Scores:      scores,
		CompletedAt: time.Now(),
	}
	if _, err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, userID, category, nil, ""); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, result); err != nil {
		log.Printf("[CACHE] failed to store result for user %s: %v", userID, err)
	}

	return result, nil
}

// StartAdaptive returns the entry question and initial progress meta.
func (s *ProfileService) StartAdaptive() (*engine.NextResult, error) {
	view := s.engine.StartQuestion()
	cfg := s.engine.Config()
	return &engine.NextResult{
		Question: &view,
		Meta: engine.Meta{
			AnsweredCount: 0,
			MinQuestions:  cfg.MinQuestions,
			MaxQuestions:  cfg.MaxQuestions,
		},
	}, nil
}

// NextAdaptive evaluates one adaptive turn.
func (s *ProfileService) NextAdaptive(req engine.NextRequest) (*engine.NextResult, error) {
	return s.engine.NextQuestion(req)
}

// SubmitAdaptive scores a completed adaptive history, generates insights,
// persists the result, and updates the user's profile. Insight generation
// cannot fail the submission: it degrades to the deterministic fallback.
func (s *ProfileService) SubmitAdaptive(ctx context.Context, userID string, history []model.Response) (*model.QuestionnaireResult, error) {
	summary, err := s.engine.Score(history)
	if err != nil {
		return nil, err
	}
	topTraits := engine.TopTraits(summary.Ranked)

	questionText := make(map[string]string, len(history))
	for _, resp := range history {
		if q, ok := s.adaptiveBank.Get(resp.QuestionID); ok {
			questionText[q.ID] = q.Text
		}
	}

	insight := s.insights.Generate(ctx, summary.Answered, questionText, summary.Scores, summary.Traits, summary.Category, topTraits)

	result := &model.QuestionnaireResult{
		UserID:    userID,
		Kind:      model.KindAdaptive,
		Category:  summary.Category,
		Responses: summary.Answered,
		Scores:    summary.Scores,
		Traits:    summary.Traits,
		Analysis: &model.Analysis{
			PrimaryCategory: summary.Category,
			TopTraits:       topTraits,
		},
		Insights:    insight,
		CompletedAt: time.Now(),
	}
	if _, err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}

	summaryParts := []string{insight.PersonalityProfile, "Learning Path: " + insight.LearningPath}
	aiSummary := strings.Join(summaryParts, "\n\n")

	if err := s.users.UpdateProfile(ctx, userID, summary.Category, summary.Traits, aiSummary); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, result); err != nil {
		log.Printf("[CACHE] failed to store result for user %s: %v", userID, err)
	}

	if s.notifier != nil {
		s.notifier.NotifyUser(userID, MsgProfileCompleted, map[string]interface{}{
			"category":  summary.Category,
			"topTraits": topTraits,
		})
	}
	if err := s.events.Publish(event.ProfileCompleted, map[string]interface{}{
		"userId":   userID,
		"category": summary.Category,
	}); err != nil {
		log.Printf("[EVENT] publish failed for user %s: %v", userID, err)
	}

	return result, nil
}

// Results returns the user's latest result of the given kind, reading through
// the cache. An empty kind matches either questionnaire. Returns (nil, nil)
// when the user has no completed questionnaire.
func (s *ProfileService) Results(ctx context.Context, userID string, kind model.QuestionnaireKind) (*model.QuestionnaireResult, error) {
	if kind != "" {
		cached, err := s.cache.Get(ctx, userID, kind)
		if err != nil {
			log.Printf("[CACHE] read failed for user %s: %v", userID, err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	result, err := s.results.GetLatest(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	if err := s.cache.Set(ctx, result); err != nil {
		log.Printf("[CACHE] failed to store result for user %s: %v", userID, err)
	}
	return result, nil
}
