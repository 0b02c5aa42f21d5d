package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quiz-bot/internal/quiz"
)

const maxAttempts = 3

// Run plays the quiz in a terminal against the same engine and store the
// Telegram bot uses. An existing session is resumed; a fresh user starts a
// new one. The loop ends on completion or when input runs out.
func Run(ctx context.Context, engine *quiz.Engine, reporter *quiz.Reporter, userID int64, in io.Reader, out io.Writer) error {
	hasProgress, err := engine.HasProgress(ctx, userID)
	if err != nil {
		return err
	}

	var question quiz.Question
	if hasProgress {
		fmt.Fprintln(out, "Welcome back! Resuming your quiz.")
		question, err = engine.Resume(ctx, userID)
	} else {
		fmt.Fprintln(out, "Welcome to the quiz!")
		question, err = engine.Start(ctx, userID)
	}
	if err != nil {
		if errors.Is(err, quiz.ErrCatalogEmpty) {
			fmt.Fprintln(out, "No questions are available.")
			return nil
		}
		return err
	}

	reader := bufio.NewReader(in)
	answered := 0

	for {
		printQuestion(out, answered+1, question)

		chosenIndex, ok := getAnswer(reader, out, len(question.Options))
		if !ok {
			fmt.Fprintln(out, "\nStopping here. Your progress is saved; run again to resume.")
			return nil
		}

		result, err := engine.SubmitAnswer(ctx, userID, question.ID, chosenIndex)
		if err != nil {
			return err
		}
		answered++

		if result.Correct {
			fmt.Fprintln(out, "\nCorrect!")
		} else {
			fmt.Fprintf(out, "\nWrong. Correct answer was %s\n", optionTextForIndex(question.Options, question.CorrectOption))
		}

		if result.Completed {
			fmt.Fprintln(out, "\nThat was the last question. Quiz finished!")
			break
		}
		question = result.Next
	}

	summary, err := reporter.Summarize(ctx, userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nYou answered %d of %d questions\n", summary.Answered, summary.Total)
	fmt.Fprintf(out, "Correct: %d, wrong: %d\n", summary.Correct, summary.Wrong)
	return nil
}

func printQuestion(out io.Writer, number int, question quiz.Question) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d: %s\n\n", number, question.Text)
	for idx, option := range question.Options {
		fmt.Fprintf(out, "%d. %s\n", idx+1, option)
	}
	fmt.Fprintln(out)
}

func getAnswer(reader *bufio.Reader, out io.Writer, optionCount int) (int, bool) {
	if optionCount < 1 {
		return -1, false
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		userAnswer, err := reader.ReadString('\n')
		if err != nil {
			return -1, false
		}

		number, convErr := strconv.Atoi(strings.TrimSpace(userAnswer))
		if convErr == nil && number >= 1 && number <= optionCount {
			return number - 1, true
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "\nInvalid input. Please enter a number 1-%d.\n", optionCount)
		}
	}

	return -1, false
}

func optionTextForIndex(options []string, index int) string {
	if index < 0 || index >= len(options) {
		return ""
	}
	return options[index]
}
