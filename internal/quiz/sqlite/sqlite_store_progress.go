package sqlite

import (
	"context"
	"time"

	"quiz-bot/internal/quiz"
)

func (s *SQLiteStore) Exists(ctx context.Context, userID int64) (bool, error) {
	// A record exists once any write touched the user, whether it set the
	// current question or only recorded an answer.
	var found bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM quiz_progress WHERE user_id = ?)
			OR EXISTS(SELECT 1 FROM quiz_answers WHERE user_id = ?)`,
		userID,
		userID,
	).Scan(&found)
	if err != nil {
		return false, storeErr("exists", err)
	}
	return found, nil
}

func (s *SQLiteStore) Get(ctx context.Context, userID int64) (quiz.Progress, error) {
	progress := quiz.NewProgress(userID)

	err := s.db.QueryRowContext(
		ctx,
		`SELECT current_question_id FROM quiz_progress WHERE user_id = ?`,
		userID,
	).Scan(&progress.CurrentQuestionID)
	if err != nil && !isNoRows(err) {
		return quiz.Progress{}, storeErr("get progress", err)
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT question_id, outcome FROM quiz_answers WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return quiz.Progress{}, storeErr("get answers", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			questionID int
			outcome    string
		)
		if err := rows.Scan(&questionID, &outcome); err != nil {
			return quiz.Progress{}, storeErr("get answers", err)
		}

		progress.Answered[questionID] = struct{}{}
		switch outcome {
		case outcomeCorrect:
			progress.Correct[questionID] = struct{}{}
		case outcomeWrong:
			progress.Wrong[questionID] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return quiz.Progress{}, storeErr("get answers", err)
	}

	return progress, nil
}

func (s *SQLiteStore) SetCurrentQuestion(ctx context.Context, userID int64, questionID int) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO quiz_progress (user_id, current_question_id) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET current_question_id = excluded.current_question_id`,
		userID,
		questionID,
	)
	if err != nil {
		return storeErr("set current question", err)
	}
	return nil
}

func (s *SQLiteStore) MarkAnswered(ctx context.Context, userID int64, questionID int) error {
	// The primary key makes a repeat call a no-op, and OR IGNORE keeps an
	// already-recorded outcome from being reset to pending.
	_, err := s.db.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO quiz_answers (user_id, question_id, outcome, answered_at_unix)
		 VALUES (?, ?, ?, ?)`,
		userID,
		questionID,
		outcomePending,
		time.Now().UTC().Unix(),
	)
	if err != nil {
		return storeErr("mark answered", err)
	}
	return nil
}

func (s *SQLiteStore) MarkOutcome(ctx context.Context, userID int64, questionID int, correct bool) error {
	outcome := outcomeWrong
	if correct {
		outcome = outcomeCorrect
	}

	// First write wins: the conflict branch only replaces a pending
	// outcome, never a terminal one, so correct and wrong stay disjoint.
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO quiz_answers (user_id, question_id, outcome, answered_at_unix)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, question_id) DO UPDATE SET outcome = excluded.outcome
		 WHERE quiz_answers.outcome = 'pending'`,
		userID,
		questionID,
		outcome,
		time.Now().UTC().Unix(),
	)
	if err != nil {
		return storeErr("mark outcome", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context, userID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("clear", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM quiz_answers WHERE user_id = ?`, userID); err != nil {
		return storeErr("clear answers", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM quiz_progress WHERE user_id = ?`, userID); err != nil {
		return storeErr("clear progress", err)
	}

	if err := tx.Commit(); err != nil {
		return storeErr("clear", err)
	}
	return nil
}
