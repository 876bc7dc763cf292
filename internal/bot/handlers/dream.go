package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/daypulse/daypulse/internal/calendar"
	"github.com/daypulse/daypulse/internal/models"
)

func (h *Handlers) handleDream(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.CommandArguments())
	if text == "" {
		h.sendMessage(msg.Chat.ID, "Usage: /dream text of your dream")
		return
	}

	dream := &models.Dream{UserID: msg.From.ID, Text: text}
	if err := h.repos.Dream.Create(ctx, dream); err != nil {
		log.Printf("Failed to create dream: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not save the dream.")
		return
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("🌠 Dream recorded: %s", dream.Text))
}

func (h *Handlers) handleDreamList(ctx context.Context, msg *tgbotapi.Message) {
	dreams, err := h.repos.Dream.ListByUser(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to load dreams: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not load your dreams.")
		return
	}
	if len(dreams) == 0 {
		h.sendMessage(msg.Chat.ID, "No dreams yet. Record one with /dream")
		return
	}

	var b strings.Builder
	b.WriteString("🌠 Dreams\n")
	for i, dream := range dreams {
		mark := "○"
		if dream.AchievedAt != nil {
			mark = "⭐"
		}
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, mark, dream.Text)
	}
	b.WriteString("\nMark one achieved with /dreamdone N")
	h.sendMessage(msg.Chat.ID, b.String())
}

func (h *Handlers) handleDreamDone(ctx context.Context, msg *tgbotapi.Message) {
	index, err := strconv.Atoi(strings.TrimSpace(msg.CommandArguments()))
	if err != nil || index < 1 {
		h.sendMessage(msg.Chat.ID, "Usage: /dreamdone N (number from /dreams)")
		return
	}

	dreams, err := h.repos.Dream.ListByUser(ctx, msg.From.ID)
	if err != nil || index > len(dreams) {
		h.sendMessage(msg.Chat.ID, "No such dream, check /dreams")
		return
	}

	now := time.Now()
	dream, err := h.repos.Dream.MarkAchieved(ctx, dreams[index-1].DreamID, msg.From.ID, now)
	if err != nil {
		log.Printf("Failed to mark dream achieved: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not update the dream.")
		return
	}
	if dream == nil {
		h.sendMessage(msg.Chat.ID, "That dream is already achieved.")
		return
	}

	startedAt := dream.CreatedAt
	achievement := &models.Achievement{
		UserID:     msg.From.ID,
		Kind:       models.AchievementDream,
		Title:      dream.Text,
		AchievedAt: now,
		StartedAt:  &startedAt,
	}
	if err := h.repos.Achievement.Create(ctx, achievement); err != nil {
		log.Printf("Failed to create achievement: %v", err)
	}

	elapsed := calendar.Elapsed(dream.CreatedAt, now)
	h.sendMessage(msg.Chat.ID, fmt.Sprintf(
		"⭐ Dream achieved! ⭐\n\n%s\nMission duration: %s", dream.Text, elapsed))
}
