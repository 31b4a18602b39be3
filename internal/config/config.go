// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
)

// Mode selects the persistence backend. It is resolved exactly once at
// startup; the backend never re-checks it.
type Mode string

const (
	// ModeRemote uses the shared Postgres store.
	ModeRemote Mode = "remote"
	// ModeLocal uses the on-device sqlite document store.
	ModeLocal Mode = "local"
)

// Config holds all externally supplied settings.
type Config struct {
	HTTPAddr string

	PersistMode Mode
	DatabaseURL string
	DatabaseKey string
	LocalDBPath string

	AnthropicAPIKey string

	TelegramToken  string
	TelegramChatID int64

	ReminderStartHour int
	ReminderEndHour   int
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DatabaseKey:       os.Getenv("DATABASE_KEY"),
		LocalDBPath:       getEnv("LOCAL_DB_PATH", "data/nchub.db"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:    getEnvInt64("TELEGRAM_CHAT_ID", 0),
		ReminderStartHour: getEnvInt("REMINDER_START_HOUR", 8),
		ReminderEndHour:   getEnvInt("REMINDER_END_HOUR", 22),
	}
	cfg.PersistMode = resolveMode(os.Getenv("PERSIST_MODE"), cfg.DatabaseURL, cfg.DatabaseKey)
	return cfg
}

// resolveMode prefers an explicit PERSIST_MODE value; otherwise remote mode
// requires both the endpoint and the access key. Absence of either is not an
// error, it selects local mode for the process lifetime.
func resolveMode(explicit, url, key string) Mode {
	switch Mode(explicit) {
	case ModeRemote, ModeLocal:
		return Mode(explicit)
	}
	if url != "" && key != "" {
		return ModeRemote
	}
	return ModeLocal
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
