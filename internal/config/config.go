package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// TelegramToken authorizes the bot against the Telegram API. Only the
	// bot binary needs it; the local CLI runs without one.
	TelegramToken string

	// DBPath is the SQLite file holding per-user progress.
	DBPath string

	// QuestionsPath is the JSON question catalog.
	QuestionsPath string
}

// Load reads an optional .env file and then the environment. Missing
// optional values fall back to the defaults the original deployment used.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBPath:        getEnvOrDefault("QUIZ_DB_PATH", "quiz_bot.db"),
		QuestionsPath: getEnvOrDefault("QUESTIONS_PATH", "questions.json"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
