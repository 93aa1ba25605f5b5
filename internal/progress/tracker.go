package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	q "github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/types"
	"go.uber.org/zap"
)

// Tracker is the questionnaire session service. It validates answers
// against the question set, persists every change through its Store and
// notifies subscribers. It is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	store     Store
	questions *q.Set
	state     *State
	logger    *zap.Logger
	now       func() time.Time
	listeners []func(types.Responses)
}

// Option configures a Tracker
type Option func(*Tracker)

// WithLogger sets the tracker's logger
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// New loads the stored session or starts a new one. A nil set uses the
// default questions.
func New(ctx context.Context, store Store, set *q.Set, opts ...Option) (*Tracker, error) {
	if store == nil {
		return nil, fmt.Errorf("progress store is nil")
	}
	if set == nil {
		set = q.Default()
	}

	t := &Tracker{
		store:     store,
		questions: set,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if state == nil {
		state = t.newState()
		if err := store.Save(ctx, state); err != nil {
			return nil, fmt.Errorf("failed to start session: %w", err)
		}
		t.logger.Info("started questionnaire session", zap.String("session_id", state.SessionID.String()))
	} else {
		if state.Responses == nil {
			state.Responses = types.Responses{}
		}
		t.logger.Debug("resumed questionnaire session",
			zap.String("session_id", state.SessionID.String()),
			zap.Int("answered", q.AnsweredCount(state.Responses)))
	}
	t.state = state
	return t, nil
}

func (t *Tracker) newState() *State {
	now := t.now().UTC()
	return &State{
		SessionID: uuid.New(),
		Responses: types.Responses{},
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Answer validates and records an answer, then persists the session.
// Unknown questions and empty answers are rejected. On a store failure the
// session is left unchanged.
func (t *Tracker) Answer(ctx context.Context, questionID string, answer types.Answer) error {
	question, ok := t.questions.Get(questionID)
	if !ok {
		return &q.AnswerError{QuestionID: questionID, Message: "unknown question"}
	}
	if !answer.IsAnswered() {
		return &q.AnswerError{QuestionID: questionID, Message: "answer is empty"}
	}
	normalized, err := q.ValidateAnswer(question, answer)
	if err != nil {
		return err
	}

	t.mu.Lock()
	next := t.state.clone()
	next.Responses[questionID] = normalized
	next.UpdatedAt = t.now().UTC()
	if next.UpdatedAt.Before(next.StartedAt) {
		next.UpdatedAt = next.StartedAt
	}
	if err := t.store.Save(ctx, next); err != nil {
		t.mu.Unlock()
		return fmt.Errorf("failed to save answer: %w", err)
	}
	t.state = next
	snapshot := next.Responses.Clone()
	listeners := append([]func(types.Responses){}, t.listeners...)
	t.mu.Unlock()

	t.logger.Debug("answer recorded",
		zap.String("question_id", questionID),
		zap.Int("answered", q.AnsweredCount(snapshot)))
	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
	return nil
}

// Reset discards every answer and starts a new session
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	next := t.newState()
	if err := t.store.Save(ctx, next); err != nil {
		t.mu.Unlock()
		return fmt.Errorf("failed to reset session: %w", err)
	}
	t.state = next
	listeners := append([]func(types.Responses){}, t.listeners...)
	t.mu.Unlock()

	t.logger.Info("questionnaire session reset", zap.String("session_id", next.SessionID.String()))
	for _, fn := range listeners {
		fn(types.Responses{})
	}
	return nil
}

// OnChange registers fn to receive a copy of the responses after every
// answer or reset
func (t *Tracker) OnChange(fn func(types.Responses)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// Responses returns a copy of the current responses
func (t *Tracker) Responses() types.Responses {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Responses.Clone()
}

// SessionID returns the current session's id
func (t *Tracker) SessionID() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.SessionID
}

// State returns a copy of the current session
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return *t.state.clone()
}

// CategoryProgress returns the percentage of required questions answered in
// category
func (t *Tracker) CategoryProgress(category types.QuestionCategory) float64 {
	return t.questions.CategoryProgress(t.Responses(), category)
}

// OverallProgress returns the percentage of all required questions answered
func (t *Tracker) OverallProgress() float64 {
	return t.questions.OverallProgress(t.Responses())
}

// AnsweredCount returns the number of valid answers in the session
func (t *Tracker) AnsweredCount() int {
	return t.questions.AnsweredCount(t.Responses())
}

// NextQuestion returns the first required question still unanswered
func (t *Tracker) NextQuestion() (types.Question, bool) {
	return t.questions.NextUnanswered(t.Responses())
}
