package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port                  int
	DatabaseURL           string
	NatsURL               string
	NatsToken             string
	LogLevel              string
	OpenAIAPIKey          string
	OpenAIBaseURL         string
	Model                 string
	CompletionTimeoutSecs int
	SlackBotToken         string
	SlackChannel          string
}

func Load() Config {
	return Config{
		Port:                  envInt("PULSE_PORT", 8460),
		DatabaseURL:           envStr("DATABASE_URL", ""),
		NatsURL:               envStr("NATS_URL", ""),
		NatsToken:             envStr("NATS_TOKEN", ""),
		LogLevel:              envStr("LOG_LEVEL", "info"),
		OpenAIAPIKey:          envStr("OPENAI_API_KEY", ""),
		OpenAIBaseURL:         envStr("OPENAI_BASE_URL", ""),
		Model:                 envStr("PULSE_MODEL", "gpt-4o-mini"),
		CompletionTimeoutSecs: envInt("PULSE_COMPLETION_TIMEOUT_SECS", 30),
		SlackBotToken:         envStr("SLACK_BOT_TOKEN", ""),
		SlackChannel:          envStr("SLACK_INSIGHTS_CHANNEL", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
