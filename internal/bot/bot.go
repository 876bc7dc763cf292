package bot

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/daypulse/daypulse/internal/ai"
	"github.com/daypulse/daypulse/internal/bot/handlers"
	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/engine"
	"github.com/daypulse/daypulse/internal/repository"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	handlers *handlers.Handlers
}

func New(api *tgbotapi.BotAPI, db *database.DB, aiClient *ai.Client, eng *engine.Engine, adminUserID int64) *Bot {
	repos := &handlers.Repositories{
		User:        repository.NewUserRepository(db),
		Settings:    repository.NewUserSettingsRepository(db),
		Schedule:    repository.NewScheduleRepository(db),
		Event:       repository.NewEventRepository(db),
		Habit:       repository.NewHabitRepository(db),
		Note:        repository.NewNoteRepository(db),
		Dream:       repository.NewDreamRepository(db),
		Achievement: repository.NewAchievementRepository(db),
	}

	return &Bot{
		api:      api,
		handlers: handlers.New(api, repos, aiClient, eng, adminUserID),
	}
}

func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	if update.Message.IsCommand() {
		b.handlers.HandleCommand(ctx, update.Message)
		return
	}

	b.handlers.HandleMessage(ctx, update.Message)
}
