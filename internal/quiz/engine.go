package quiz

import (
	"context"
	"fmt"
	"math/rand"
)

// AnswerResult is the outcome of submitting an answer: whether it was
// correct, and either the next question or a completion signal.
type AnswerResult struct {
	Correct   bool
	Completed bool

	// Next is the question to show when Completed is false.
	Next Question
}

// Engine drives the per-user question flow. It holds no state of its own:
// every decision is derived from the current store snapshot, so a restarted
// process resumes exactly where the user left off.
type Engine struct {
	catalog *Catalog
	store   ProgressStore
}

func NewEngine(catalog *Catalog, store ProgressStore) *Engine {
	return &Engine{catalog: catalog, store: store}
}

// Start begins a session by picking a uniformly random question from the
// full catalog. Existing progress is intentionally left in place; a user
// who already answered questions keeps those answers and only Restart
// wipes them.
func (e *Engine) Start(ctx context.Context, userID int64) (Question, error) {
	ids := e.catalog.IDs()
	if len(ids) == 0 {
		return Question{}, ErrCatalogEmpty
	}

	questionID := ids[rand.Intn(len(ids))]
	if err := e.store.SetCurrentQuestion(ctx, userID, questionID); err != nil {
		return Question{}, fmt.Errorf("start: %w", err)
	}

	question, _ := e.catalog.ByID(questionID)
	return question, nil
}

// Resume re-displays the user's current question without touching stored
// state, so calling it repeatedly yields the same question. Users with no
// record get the first catalog question.
func (e *Engine) Resume(ctx context.Context, userID int64) (Question, error) {
	progress, err := e.store.Get(ctx, userID)
	if err != nil {
		return Question{}, fmt.Errorf("resume: %w", err)
	}

	questionID := progress.CurrentQuestionID
	if questionID == 0 {
		questionID = e.catalog.FirstID()
	}

	question, ok := e.catalog.ByID(questionID)
	if !ok {
		return Question{}, fmt.Errorf("resume question %d: %w", questionID, ErrQuestionNotFound)
	}
	return question, nil
}

// SubmitAnswer grades the user's choice, records it, and selects the next
// question uniformly at random from the questions not yet answered. When
// none remain the result signals completion instead.
//
// questionID is taken at face value: a stale client may answer a question
// that is no longer the stored current one, and the answer still counts.
func (e *Engine) SubmitAnswer(ctx context.Context, userID int64, questionID, optionIndex int) (AnswerResult, error) {
	question, ok := e.catalog.ByID(questionID)
	if !ok {
		return AnswerResult{}, fmt.Errorf("submit question %d: %w", questionID, ErrQuestionNotFound)
	}
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return AnswerResult{}, fmt.Errorf("submit question %d option %d: %w", questionID, optionIndex, ErrInvalidOption)
	}

	if err := e.store.MarkAnswered(ctx, userID, questionID); err != nil {
		return AnswerResult{}, fmt.Errorf("submit: %w", err)
	}

	correct := optionIndex == question.CorrectOption
	if err := e.store.MarkOutcome(ctx, userID, questionID, correct); err != nil {
		return AnswerResult{}, fmt.Errorf("submit: %w", err)
	}

	progress, err := e.store.Get(ctx, userID)
	if err != nil {
		return AnswerResult{}, fmt.Errorf("submit: %w", err)
	}

	remaining := progress.Unanswered(e.catalog.IDs())
	if len(remaining) == 0 {
		return AnswerResult{Correct: correct, Completed: true}, nil
	}

	nextID := remaining[rand.Intn(len(remaining))]
	if err := e.store.SetCurrentQuestion(ctx, userID, nextID); err != nil {
		return AnswerResult{}, fmt.Errorf("submit: %w", err)
	}

	next, _ := e.catalog.ByID(nextID)
	return AnswerResult{Correct: correct, Next: next}, nil
}

// Restart wipes the user's progress and starts over. Confirmation is the
// caller's concern; by the time this runs the user has already said yes.
func (e *Engine) Restart(ctx context.Context, userID int64) (Question, error) {
	if err := e.store.Clear(ctx, userID); err != nil {
		return Question{}, fmt.Errorf("restart: %w", err)
	}
	return e.Start(ctx, userID)
}

// Question exposes catalog lookup for callers that render questions.
func (e *Engine) Question(id int) (Question, bool) {
	return e.catalog.ByID(id)
}

// HasProgress reports whether the user has any persisted record, which
// drives the "welcome back" greeting.
func (e *Engine) HasProgress(ctx context.Context, userID int64) (bool, error) {
	exists, err := e.store.Exists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("has progress: %w", err)
	}
	return exists, nil
}
