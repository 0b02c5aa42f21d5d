package quiz

import (
	"context"
	"errors"
)

var (
	// ErrCatalogUnavailable marks a missing or malformed question source.
	// Startup degrades to an empty catalog instead of failing.
	ErrCatalogUnavailable = errors.New("question catalog unavailable")

	// ErrStoreUnavailable marks any persistence-layer fault. The operation
	// that hit it is aborted with prior state intact, so retrying is safe.
	ErrStoreUnavailable = errors.New("progress store unavailable")

	// ErrQuestionNotFound is returned when a referenced question id is not
	// in the catalog.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrInvalidOption is returned for an option index outside the
	// question's option list.
	ErrInvalidOption = errors.New("invalid option index")

	// ErrCatalogEmpty is returned when a session is started against an
	// empty catalog.
	ErrCatalogEmpty = errors.New("question catalog is empty")
)

// Progress is one user's durable quiz state. A user with no persisted
// record is indistinguishable from one holding an empty Progress.
type Progress struct {
	UserID int64

	// CurrentQuestionID is the question awaiting an answer, 0 when none.
	CurrentQuestionID int

	Answered map[int]struct{}
	Correct  map[int]struct{}
	Wrong    map[int]struct{}
}

// NewProgress returns the empty-record shape for a user.
func NewProgress(userID int64) Progress {
	return Progress{
		UserID:   userID,
		Answered: make(map[int]struct{}),
		Correct:  make(map[int]struct{}),
		Wrong:    make(map[int]struct{}),
	}
}

// Unanswered filters ids down to those the user has not answered yet,
// preserving the input order.
func (p Progress) Unanswered(ids []int) []int {
	remaining := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, done := p.Answered[id]; !done {
			remaining = append(remaining, id)
		}
	}
	return remaining
}

// ProgressStore is the durable per-user progress record. Each user id is
// one row; writes to the same row are serialized by the implementation,
// and every mutation is persisted before the call returns.
//
// A missing record reads back as NewProgress(userID); mutating calls
// create the record if absent.
type ProgressStore interface {
	Exists(ctx context.Context, userID int64) (bool, error)
	Get(ctx context.Context, userID int64) (Progress, error)

	// SetCurrentQuestion upserts the question awaiting an answer.
	SetCurrentQuestion(ctx context.Context, userID int64, questionID int) error

	// MarkAnswered adds questionID to the answered set. Re-adding an
	// already-answered id is a no-op.
	MarkAnswered(ctx context.Context, userID int64, questionID int) error

	// MarkOutcome records the question's outcome. The first recorded
	// outcome wins: a later call with the opposite value is a no-op, so
	// the correct and wrong sets stay disjoint.
	MarkOutcome(ctx context.Context, userID int64, questionID int, correct bool) error

	// Clear deletes the record entirely.
	Clear(ctx context.Context, userID int64) error
}
