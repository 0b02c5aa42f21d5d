package sqlite

import (
	"context"
)

// Outcome values stored per answered question. 'pending' means the question
// was marked answered but its outcome has not been recorded yet; the two
// terminal values never change once written.
const (
	outcomePending = "pending"
	outcomeCorrect = "correct"
	outcomeWrong   = "wrong"
)

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	// The answered/correct/wrong sets are normalized into one row per
	// (user, question) rather than packed into delimited text columns.
	// The primary key makes marking a question answered idempotent and
	// keeps a question from ever carrying two outcomes.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quiz_progress (
			user_id INTEGER PRIMARY KEY,
			current_question_id INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS quiz_answers (
			user_id INTEGER NOT NULL,
			question_id INTEGER NOT NULL,
			outcome TEXT NOT NULL DEFAULT 'pending'
				CHECK (outcome IN ('pending', 'correct', 'wrong')),
			answered_at_unix INTEGER NOT NULL,
			PRIMARY KEY (user_id, question_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_answers_user ON quiz_answers(user_id);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
