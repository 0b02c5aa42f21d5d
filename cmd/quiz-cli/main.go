package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"quiz-bot/internal/cli"
	"quiz-bot/internal/config"
	"quiz-bot/internal/quiz"
	"quiz-bot/internal/quiz/sqlite"
)

func main() {
	cfg := config.Load()

	questionsPath := flag.String("questions", cfg.QuestionsPath, "path to the question catalog JSON")
	dbPath := flag.String("db", cfg.DBPath, "path to the progress database")
	userID := flag.Int64("user", 1, "user id to play as")
	flag.Parse()

	catalog, err := quiz.LoadCatalog(*questionsPath)
	if err != nil {
		if !errors.Is(err, quiz.ErrCatalogUnavailable) {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "warning:", err)
		catalog = quiz.EmptyCatalog()
	}

	store, err := sqlite.NewSQLiteStore(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer store.Close()

	engine := quiz.NewEngine(catalog, store)
	reporter := quiz.NewReporter(catalog, store)

	if err := cli.Run(context.Background(), engine, reporter, *userID, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
