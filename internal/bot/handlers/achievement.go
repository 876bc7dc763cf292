package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/daypulse/daypulse/internal/calendar"
	"github.com/daypulse/daypulse/internal/models"
)

func (h *Handlers) handleAchievements(ctx context.Context, msg *tgbotapi.Message) {
	achievements, err := h.repos.Achievement.ListByUser(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to load achievements: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not load your achievements.")
		return
	}
	if len(achievements) == 0 {
		h.sendMessage(msg.Chat.ID, "No achievements yet. Finish a habit mission or achieve a dream!")
		return
	}

	var b strings.Builder
	b.WriteString("🏆 Achievements\n\n")
	for _, a := range achievements {
		icon := "🏆"
		if a.Kind == models.AchievementDream {
			icon = "⭐"
		}
		fmt.Fprintf(&b, "%s %s (%s)\n", icon, a.Title, a.AchievedAt.Format("2006-01-02"))
		if a.Kind == models.AchievementDream && a.StartedAt != nil {
			fmt.Fprintf(&b, "   Mission duration: %s\n", calendar.Elapsed(*a.StartedAt, a.AchievedAt))
		}
	}
	h.sendMessage(msg.Chat.ID, b.String())
}
