package quiz

import (
	"context"
	"fmt"
)

// Summary is a user's aggregate result: how many questions exist, how many
// they answered, and how those answers split.
type Summary struct {
	Total    int
	Answered int
	Correct  int
	Wrong    int
}

// Reporter derives summaries from stored progress and the catalog size.
// Pure read; it never mutates anything.
type Reporter struct {
	catalog *Catalog
	store   ProgressStore
}

func NewReporter(catalog *Catalog, store ProgressStore) *Reporter {
	return &Reporter{catalog: catalog, store: store}
}

func (r *Reporter) Summarize(ctx context.Context, userID int64) (Summary, error) {
	progress, err := r.store.Get(ctx, userID)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	return Summary{
		Total:    r.catalog.Size(),
		Answered: len(progress.Answered),
		Correct:  len(progress.Correct),
		Wrong:    len(progress.Wrong),
	}, nil
}
