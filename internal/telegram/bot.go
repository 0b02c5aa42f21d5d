package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quiz-bot/internal/quiz"
)

// Bot is the Telegram front end over the quiz engine. It owns no quiz
// state: every update is handled against the engine's stored progress, so
// the bot can be restarted at any point without losing a user's session.
type Bot struct {
	api      *tgbotapi.BotAPI
	engine   *quiz.Engine
	reporter *quiz.Reporter
	logger   *log.Logger
}

func NewBot(token string, engine *quiz.Engine, reporter *quiz.Reporter, logger *log.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:      api,
		engine:   engine,
		reporter: reporter,
		logger:   logger,
	}, nil
}

// Run polls Telegram for updates until ctx is cancelled. Updates are
// handled sequentially, which keeps per-user operations in arrival order.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Printf("authorized on account %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	switch message.Command() {
	case "start":
		b.handleStart(ctx, message)
		return
	case "quiz":
		b.handleNewQuiz(ctx, message.Chat.ID, message.From.ID)
		return
	case "resume":
		b.handleResume(ctx, message.Chat.ID, message.From.ID)
		return
	case "restart":
		b.handleRestartConfirm(message.Chat.ID)
		return
	case "results":
		b.handleResults(ctx, message.Chat.ID, message.From.ID)
		return
	}

	switch message.Text {
	case btnStartQuiz:
		b.handleNewQuiz(ctx, message.Chat.ID, message.From.ID)
	case btnResume:
		b.handleResume(ctx, message.Chat.ID, message.From.ID)
	case btnRestart:
		b.handleRestartConfirm(message.Chat.ID)
	case btnResults:
		b.handleResults(ctx, message.Chat.ID, message.From.ID)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Try /quiz, /resume, /restart or /results.")
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Printf("send message to %d: %v", chatID, err)
	}
}

// sendFailure is the generic user-facing error path. Progress is never
// partially written, so telling the user to retry is always honest.
func (b *Bot) sendFailure(chatID int64, op string, err error) {
	b.logger.Printf("%s for chat %d: %v", op, chatID, err)
	b.sendMessage(chatID, "Something went wrong. Your progress is safe, please try again.")
}
