package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quiz-bot/internal/quiz"
)

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	hasProgress, err := b.engine.HasProgress(ctx, userID)
	if err != nil {
		b.sendFailure(chatID, "start", err)
		return
	}

	text := "Welcome to the quiz!"
	if hasProgress {
		text = "Welcome back!"
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = welcomeKeyboard(hasProgress)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Printf("send welcome to %d: %v", chatID, err)
	}
}

func (b *Bot) handleNewQuiz(ctx context.Context, chatID, userID int64) {
	question, err := b.engine.Start(ctx, userID)
	if err != nil {
		b.sendFailure(chatID, "new quiz", err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Here we go. First question...")
	msg.ReplyMarkup = quizKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Printf("send quiz intro to %d: %v", chatID, err)
	}

	b.sendQuestion(chatID, question)
}

func (b *Bot) handleResume(ctx context.Context, chatID, userID int64) {
	question, err := b.engine.Resume(ctx, userID)
	if err != nil {
		b.sendFailure(chatID, "resume", err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Great, let's continue.")
	msg.ReplyMarkup = quizKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Printf("send resume intro to %d: %v", chatID, err)
	}

	b.sendQuestion(chatID, question)
}

// handleRestartConfirm asks before wiping progress; the engine only clears
// once the user presses Yes.
func (b *Bot) handleRestartConfirm(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Are you sure you want to restart the quiz?")
	msg.ReplyMarkup = restartConfirmKeyboard()
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Printf("send restart confirm to %d: %v", chatID, err)
	}
}

func (b *Bot) handleResults(ctx context.Context, chatID, userID int64) {
	summary, err := b.reporter.Summarize(ctx, userID)
	if err != nil {
		b.sendFailure(chatID, "results", err)
		return
	}

	b.sendMessage(chatID, "Your results:")
	b.sendMessage(chatID, fmt.Sprintf("You answered %d of %d questions", summary.Answered, summary.Total))
	b.sendMessage(chatID, fmt.Sprintf("Correct answers: %d", summary.Correct))
	b.sendMessage(chatID, fmt.Sprintf("Wrong answers: %d", summary.Wrong))
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.logger.Printf("answer callback: %v", err)
	}

	if callback.Message == nil {
		return
	}

	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	// Strip the pressed keyboard so a double tap cannot submit twice
	// from the same message.
	b.removeKeyboard(chatID, callback.Message.MessageID)

	if questionID, optionIndex, ok := parseAnswerCallback(callback.Data); ok {
		b.handleAnswer(ctx, chatID, userID, questionID, optionIndex)
		return
	}

	switch callback.Data {
	case callbackRestartYes:
		b.handleRestart(ctx, chatID, userID)
	case callbackRestartNo:
		b.handleResume(ctx, chatID, userID)
	}
}

func (b *Bot) handleAnswer(ctx context.Context, chatID, userID int64, questionID, optionIndex int) {
	question, ok := b.engine.Question(questionID)
	if ok && optionIndex >= 0 && optionIndex < len(question.Options) {
		b.sendMessage(chatID, fmt.Sprintf("Your answer: '%s'", question.Options[optionIndex]))
	}

	result, err := b.engine.SubmitAnswer(ctx, userID, questionID, optionIndex)
	if err != nil {
		b.sendFailure(chatID, "submit answer", err)
		return
	}

	if result.Correct {
		b.sendMessage(chatID, "Correct! 👍")
	} else {
		b.sendMessage(chatID, "Wrong! 😭")
	}

	if result.Completed {
		b.sendMessage(chatID, "That was the last question. Quiz finished!")
		b.handleResults(ctx, chatID, userID)
		return
	}

	b.sendQuestion(chatID, result.Next)
}

func (b *Bot) handleRestart(ctx context.Context, chatID, userID int64) {
	question, err := b.engine.Restart(ctx, userID)
	if err != nil {
		b.sendFailure(chatID, "restart", err)
		return
	}

	b.sendMessage(chatID, "Quiz restarted. Starting over...")
	b.sendQuestion(chatID, question)
}

func (b *Bot) sendQuestion(chatID int64, question quiz.Question) {
	msg := tgbotapi.NewMessage(chatID, question.Text)
	msg.ReplyMarkup = optionsKeyboard(question)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Printf("send question %d to %d: %v", question.ID, chatID, err)
	}
}

func (b *Bot) removeKeyboard(chatID int64, messageID int) {
	// An explicit empty (non-nil) keyboard clears the markup; a nil one is
	// rejected by the API.
	empty := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, empty)
	if _, err := b.api.Request(edit); err != nil {
		b.logger.Printf("remove keyboard in chat %d: %v", chatID, err)
	}
}
