package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"quiz-bot/internal/config"
	"quiz-bot/internal/quiz"
	"quiz-bot/internal/quiz/sqlite"
	"quiz-bot/internal/telegram"
)

func main() {
	logger := log.New(os.Stderr, "quiz-bot: ", log.LstdFlags)

	cfg := config.Load()
	if cfg.TelegramToken == "" {
		logger.Fatal("TELEGRAM_TOKEN is required")
	}

	// A broken question source degrades to an empty catalog: the bot still
	// answers commands, it just has nothing to ask.
	catalog, err := quiz.LoadCatalog(cfg.QuestionsPath)
	if err != nil {
		logger.Printf("warning: %v; continuing with empty catalog", err)
		catalog = quiz.EmptyCatalog()
	}
	logger.Printf("loaded %d questions from %s", catalog.Size(), cfg.QuestionsPath)

	store, err := sqlite.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Fatalf("open progress store: %v", err)
	}
	defer store.Close()

	engine := quiz.NewEngine(catalog, store)
	reporter := quiz.NewReporter(catalog, store)

	bot, err := telegram.NewBot(cfg.TelegramToken, engine, reporter, logger)
	if err != nil {
		logger.Fatalf("create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Println("starting bot...")
	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("bot stopped: %v", err)
	}
}
