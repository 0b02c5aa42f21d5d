package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"quiz-bot/internal/quiz"
)

// SQLiteStore persists per-user quiz progress in a local SQLite database.
// It implements quiz.ProgressStore.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "quiz_bot.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// A single connection serializes all row writes, which is the only
	// isolation the progress contract needs (one writer per user row).
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// storeErr maps a driver fault onto the domain's ErrStoreUnavailable so
// callers can branch with errors.Is while the message keeps the detail.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, quiz.ErrStoreUnavailable, err)
}

// isNoRows distinguishes "user has no record yet", which reads back as an
// empty progress, from real driver faults.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
