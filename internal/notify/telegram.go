// Package notify delivers study reminders over Telegram.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Telegram sends reminders to a single configured chat.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *zap.Logger
}

// NewTelegram connects to the bot API with the given token.
func NewTelegram(token string, chatID int64, log *zap.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	log.Info("telegram notifier connected", zap.String("account", api.Self.UserName))
	return &Telegram{api: api, chatID: chatID, log: log}, nil
}

// SendStudyReminder sends one message describing what needs attention.
func (t *Telegram) SendStudyReminder(streakAtRisk bool, reviewCount int) error {
	var text string
	switch {
	case streakAtRisk && reviewCount > 0:
		text = fmt.Sprintf("You haven't studied today and have %d terms marked for review. A short session keeps your streak alive.", reviewCount)
	case streakAtRisk:
		text = "You haven't studied today. A short session keeps your streak alive."
	default:
		text = fmt.Sprintf("You have %d terms marked for review.", reviewCount)
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	return nil
}
