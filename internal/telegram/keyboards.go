package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quiz-bot/internal/quiz"
)

// Reply-keyboard button labels. Messages carrying these texts are treated
// like their command counterparts.
const (
	btnStartQuiz = "Start quiz"
	btnResume    = "Resume quiz"
	btnRestart   = "Restart"
	btnResults   = "Results"
)

const (
	answerCallbackPrefix = "ans"
	callbackRestartYes   = "restart:yes"
	callbackRestartNo    = "restart:no"
)

// answerCallbackData encodes an option button as "ans:<questionID>:<optionIndex>".
// Telegram caps callback data at 64 bytes, which two small ints never hit.
func answerCallbackData(questionID, optionIndex int) string {
	return fmt.Sprintf("%s:%d:%d", answerCallbackPrefix, questionID, optionIndex)
}

func parseAnswerCallback(data string) (questionID, optionIndex int, ok bool) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != answerCallbackPrefix {
		return 0, 0, false
	}

	questionID, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	optionIndex, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, false
	}
	return questionID, optionIndex, true
}

// welcomeKeyboard offers a single entry button: resume for returning users,
// start for new ones.
func welcomeKeyboard(hasProgress bool) tgbotapi.ReplyKeyboardMarkup {
	label := btnStartQuiz
	if hasProgress {
		label = btnResume
	}
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(label)),
	)
}

// quizKeyboard is shown while a quiz is in progress.
func quizKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnRestart),
			tgbotapi.NewKeyboardButton(btnResults),
		),
	)
}

// optionsKeyboard renders one inline button per answer option, stacked
// vertically the way the original bot laid them out.
func optionsKeyboard(question quiz.Question) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(question.Options))
	for idx, option := range question.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, answerCallbackData(question.ID, idx)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func restartConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes", callbackRestartYes),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("No", callbackRestartNo),
		),
	)
}
