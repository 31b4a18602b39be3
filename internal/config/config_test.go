package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		url      string
		key      string
		want     Mode
	}{
		{name: "explicit remote wins", explicit: "remote", want: ModeRemote},
		{name: "explicit local wins over credentials", explicit: "local", url: "postgres://h/db", key: "k", want: ModeLocal},
		{name: "both credentials select remote", url: "postgres://h/db", key: "k", want: ModeRemote},
		{name: "url alone selects local", url: "postgres://h/db", want: ModeLocal},
		{name: "key alone selects local", key: "k", want: ModeLocal},
		{name: "nothing selects local", want: ModeLocal},
		{name: "garbage explicit falls through", explicit: "supabase", url: "postgres://h/db", key: "k", want: ModeRemote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveMode(tt.explicit, tt.url, tt.key))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOCAL_DB_PATH", "")
	t.Setenv("REMINDER_START_HOUR", "")
	t.Setenv("REMINDER_END_HOUR", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "data/nchub.db", cfg.LocalDBPath)
	assert.Equal(t, 8, cfg.ReminderStartHour)
	assert.Equal(t, 22, cfg.ReminderEndHour)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REMINDER_START_HOUR", "10")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 10, cfg.ReminderStartHour)
	assert.Equal(t, int64(42), cfg.TelegramChatID)
}
