package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"quiz-bot/internal/quiz"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store, path
}

func TestGetMissingUserReadsAsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	progress, err := store.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if progress.UserID != 1 || progress.CurrentQuestionID != 0 {
		t.Fatalf("progress = %+v, want empty record for user 1", progress)
	}
	if len(progress.Answered) != 0 || len(progress.Correct) != 0 || len(progress.Wrong) != 0 {
		t.Fatalf("sets not empty: %+v", progress)
	}
}

func TestExistsAfterFirstWrite(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	exists, err := store.Exists(ctx, 1)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Fatal("user should not exist before any write")
	}

	if err := store.SetCurrentQuestion(ctx, 1, 5); err != nil {
		t.Fatalf("SetCurrentQuestion failed: %v", err)
	}
	if exists, _ = store.Exists(ctx, 1); !exists {
		t.Fatal("user should exist after SetCurrentQuestion")
	}

	// An answer alone also creates the record.
	if err := store.MarkAnswered(ctx, 2, 5); err != nil {
		t.Fatalf("MarkAnswered failed: %v", err)
	}
	if exists, _ = store.Exists(ctx, 2); !exists {
		t.Fatal("user should exist after MarkAnswered")
	}
}

func TestSetCurrentQuestionUpserts(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SetCurrentQuestion(ctx, 1, 5); err != nil {
		t.Fatalf("SetCurrentQuestion failed: %v", err)
	}
	if err := store.SetCurrentQuestion(ctx, 1, 9); err != nil {
		t.Fatalf("SetCurrentQuestion failed: %v", err)
	}

	progress, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if progress.CurrentQuestionID != 9 {
		t.Fatalf("current question = %d, want 9", progress.CurrentQuestionID)
	}
}

func TestMarkAnsweredIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.MarkAnswered(ctx, 1, 5); err != nil {
			t.Fatalf("MarkAnswered failed: %v", err)
		}
	}

	progress, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(progress.Answered) != 1 {
		t.Fatalf("answered = %v, want exactly one entry", progress.Answered)
	}
}

func TestMarkOutcomeFirstWriteWins(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.MarkAnswered(ctx, 1, 5); err != nil {
		t.Fatalf("MarkAnswered failed: %v", err)
	}
	if err := store.MarkOutcome(ctx, 1, 5, true); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}
	// The opposite outcome afterwards is a no-op.
	if err := store.MarkOutcome(ctx, 1, 5, false); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}

	progress, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if _, ok := progress.Correct[5]; !ok {
		t.Fatal("question 5 should stay in the correct set")
	}
	if _, ok := progress.Wrong[5]; ok {
		t.Fatal("question 5 must not also appear in the wrong set")
	}
}

func TestMarkOutcomeWithoutPriorAnswerAddsToAnswered(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.MarkOutcome(ctx, 1, 7, false); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}

	progress, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if _, ok := progress.Answered[7]; !ok {
		t.Fatal("an outcome implies membership in answered")
	}
	if _, ok := progress.Wrong[7]; !ok {
		t.Fatal("question 7 should be in the wrong set")
	}
}

func TestOutcomeSetsPartitionAnswered(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.MarkOutcome(ctx, 1, 1, true); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}
	if err := store.MarkOutcome(ctx, 1, 2, false); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}
	if err := store.MarkOutcome(ctx, 1, 2, true); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}

	progress, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	for id := range progress.Correct {
		if _, ok := progress.Wrong[id]; ok {
			t.Fatalf("question %d appears in both outcome sets", id)
		}
	}
	if len(progress.Correct)+len(progress.Wrong) != len(progress.Answered) {
		t.Fatalf("correct(%d) + wrong(%d) != answered(%d)",
			len(progress.Correct), len(progress.Wrong), len(progress.Answered))
	}
}

func TestClearDeletesRecord(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SetCurrentQuestion(ctx, 1, 5); err != nil {
		t.Fatalf("SetCurrentQuestion failed: %v", err)
	}
	if err := store.MarkOutcome(ctx, 1, 5, true); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}

	if err := store.Clear(ctx, 1); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	exists, err := store.Exists(ctx, 1)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Fatal("record should be gone after Clear")
	}

	progress, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if progress.CurrentQuestionID != 0 || len(progress.Answered) != 0 {
		t.Fatalf("progress after Clear = %+v, want empty", progress)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.MarkOutcome(ctx, 1, 5, true); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}
	if err := store.SetCurrentQuestion(ctx, 2, 9); err != nil {
		t.Fatalf("SetCurrentQuestion failed: %v", err)
	}
	if err := store.Clear(ctx, 2); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	progress, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, ok := progress.Correct[5]; !ok {
		t.Fatal("clearing user 2 must not touch user 1")
	}
}

func TestProgressSurvivesReopen(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	if err := store.SetCurrentQuestion(ctx, 1, 5); err != nil {
		t.Fatalf("SetCurrentQuestion failed: %v", err)
	}
	if err := store.MarkOutcome(ctx, 1, 3, false); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	progress, err := reopened.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if progress.CurrentQuestionID != 5 {
		t.Fatalf("current question = %d, want 5", progress.CurrentQuestionID)
	}
	if _, ok := progress.Wrong[3]; !ok {
		t.Fatal("outcome lost across reopen")
	}
}

var _ quiz.ProgressStore = (*SQLiteStore)(nil)
