package alert

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/daypulse/daypulse/internal/models"
)

// Telegram sends each firing as a Telegram message to the user's chat,
// decorated for the selected alarm sound.
type Telegram struct {
	api *tgbotapi.BotAPI
}

func NewTelegram(api *tgbotapi.BotAPI) *Telegram {
	return &Telegram{api: api}
}

func (t *Telegram) PlayAlert(ctx context.Context, userID int64, sound models.AlarmSound, message string) {
	msg := tgbotapi.NewMessage(userID, soundPrefix(sound)+" "+message)
	if _, err := t.api.Send(msg); err != nil {
		log.Printf("Failed to send alert to user %d: %v", userID, err)
	}
}

func soundPrefix(sound models.AlarmSound) string {
	switch sound {
	case models.SoundChime:
		return "🎵"
	case models.SoundDigital:
		return "⏰"
	default:
		return "🔔"
	}
}
