package engine

import (
	"errors"
	"math/rand"
	"time"

	"thozhahub/internal/bank"
	"thozhahub/internal/model"
)

// Engine runs the adaptive questionnaire flow against an immutable bank. It
// holds no per-user state: concurrent requests share only the read-only bank
// and config, and each call gets its own jitter source.
type Engine struct {
	bank *bank.Bank
	cfg  Config
	seed func() int64
}

// New creates an engine over the given bank.
func New(b *bank.Bank, cfg Config) *Engine {
	return &Engine{
		bank: b,
		cfg:  cfg,
		seed: func() int64 { return time.Now().UnixNano() },
	}
}

// WithSeed fixes the jitter seed source, making selection fully
// deterministic for a given history.
func (e *Engine) WithSeed(seed func() int64) *Engine {
	e.seed = seed
	return e
}

// Config returns the engine constants.
func (e *Engine) Config() Config {
	return e.cfg
}

// StartQuestion returns the bank's designated entry question.
func (e *Engine) StartQuestion() model.QuestionView {
	return e.bank.Start().View()
}

// NextRequest is one turn of the adaptive flow.
type NextRequest struct {
	CurrentQuestionID string
	OptionIndex       int
	History           []model.Response
}

// Meta describes questionnaire progress, echoed to the client each turn.
type Meta struct {
	AnsweredCount int `json:"answeredCount"`
	MinQuestions  int `json:"minQuestions"`
	MaxQuestions  int `json:"maxQuestions"`
	Confidence    int `json:"confidence"`
}

// NextResult is the outcome of one turn: either the flow completed or the
// next question to ask.
type NextResult struct {
	Completed bool
	Question  *model.QuestionView
	Meta      Meta
}

// NextQuestion evaluates one turn. The just-answered response is appended to
// the history if the client has not already included it, the full history is
// re-accumulated, the termination policy runs, and if the questionnaire
// continues a next question is selected. The returned question is never one
// already in the history.
func (e *Engine) NextQuestion(req NextRequest) (*NextResult, error) {
	current, ok := e.bank.Get(req.CurrentQuestionID)
	if !ok {
		return nil, &ValidationError{QuestionID: req.CurrentQuestionID, OptionIndex: req.OptionIndex, Reason: "unknown question id"}
	}
	if req.OptionIndex < 0 || req.OptionIndex >= len(current.Options) {
		return nil, &ValidationError{QuestionID: req.CurrentQuestionID, OptionIndex: req.OptionIndex, Reason: "option index out of range"}
	}

	history := appendIfMissing(req.History, model.Response{
		QuestionID:  req.CurrentQuestionID,
		OptionIndex: req.OptionIndex,
	})

	tally, err := Accumulate(e.bank, history)
	if err != nil {
		return nil, err
	}

	meta := Meta{
		AnsweredCount: tally.Answered,
		MinQuestions:  e.cfg.MinQuestions,
		MaxQuestions:  e.cfg.MaxQuestions,
		Confidence:    Confidence(tally.Scores),
	}

	remaining := e.bank.Len() - len(tally.Asked)
	if e.cfg.ShouldStop(tally.Answered, tally.Scores, remaining) {
		return &NextResult{Completed: true, Meta: meta}, nil
	}

	hint := current.Options[req.OptionIndex].NextID
	rng := rand.New(rand.NewSource(e.seed()))
	next, err := Select(e.bank, tally, hint, rng)
	if err != nil {
		if errors.Is(err, ErrBankExhausted) {
			// The policy normally stops first; degrade to completion
			// rather than failing the flow.
			return &NextResult{Completed: true, Meta: meta}, nil
		}
		return nil, err
	}

	view := next.View()
	return &NextResult{Question: &view, Meta: meta}, nil
}

// Summary is the final scoring of a full response history.
type Summary struct {
	Category   model.Category
	Scores     map[model.Category]int
	Traits     map[model.Trait]int
	Ranked     []model.Trait
	Answered   []model.AnsweredQuestion
	Confidence int
}

// Score computes the final summary for a submitted history. Unlike
// NextQuestion it never selects anything; it validates, accumulates,
// and classifies.
func (e *Engine) Score(history []model.Response) (*Summary, error) {
	tally, err := Accumulate(e.bank, history)
	if err != nil {
		return nil, err
	}

	answered := make([]model.AnsweredQuestion, len(history))
	for i, resp := range history {
		q, _ := e.bank.Get(resp.QuestionID)
		opt := q.Options[resp.OptionIndex]
		answered[i] = model.AnsweredQuestion{
			QuestionID: resp.QuestionID,
			Answer:     opt.Text,
			Score:      opt.ScoreTotal(),
		}
	}

	category, ranked := Classify(tally.Scores, tally.Traits)
	return &Summary{
		Category:   category,
		Scores:     tally.Scores,
		Traits:     tally.Traits,
		Ranked:     ranked,
		Answered:   answered,
		Confidence: Confidence(tally.Scores),
	}, nil
}

// appendIfMissing adds the current response unless the client already
// included the exact same (question, option) pair in the history it sent.
func appendIfMissing(history []model.Response, resp model.Response) []model.Response {
	for _, r := range history {
		if r.QuestionID == resp.QuestionID && r.OptionIndex == resp.OptionIndex {
			return history
		}
	}
	out := make([]model.Response, 0, len(history)+1)
	out = append(out, history...)
	return append(out, resp)
}
