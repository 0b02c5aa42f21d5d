package quiz

import (
	"context"
	"errors"
	"testing"
)

func TestSummarizeEmptyProgress(t *testing.T) {
	reporter := NewReporter(testCatalog(), newFakeProgressStore())

	summary, err := reporter.Summarize(context.Background(), testUser)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	want := Summary{Total: 3}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}
}

func TestSummarizeCountsOutcomes(t *testing.T) {
	store := newFakeProgressStore()
	reporter := NewReporter(testCatalog(), store)
	ctx := context.Background()

	if err := store.MarkOutcome(ctx, testUser, 1, true); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}
	if err := store.MarkOutcome(ctx, testUser, 2, false); err != nil {
		t.Fatalf("MarkOutcome failed: %v", err)
	}

	summary, err := reporter.Summarize(ctx, testUser)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	want := Summary{Total: 3, Answered: 2, Correct: 1, Wrong: 1}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}
}

func TestSummarizeStoreFailure(t *testing.T) {
	store := newFakeProgressStore()
	store.failWith = ErrStoreUnavailable
	reporter := NewReporter(testCatalog(), store)

	if _, err := reporter.Summarize(context.Background(), testUser); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v, want ErrStoreUnavailable", err)
	}
}
