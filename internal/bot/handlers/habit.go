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
	"github.com/daypulse/daypulse/internal/streak"
)

func (h *Handlers) handleHabit(ctx context.Context, msg *tgbotapi.Message) {
	habit, err := h.repos.Habit.Get(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to load habit: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not load your habit.")
		return
	}
	if habit == nil {
		h.sendMessage(msg.Chat.ID, "No habit mission yet. Start one with /habitstart N name")
		return
	}

	current := streak.Current(habit.CompletedDays)
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 %s\n", habit.Name)
	fmt.Fprintf(&b, "Progress: %d/%d days\n", len(habit.CompletedDays), habit.Goal)
	fmt.Fprintf(&b, "Current streak: %d 🔥\n", current)
	if habit.GoalReached() {
		b.WriteString("\nGoal reached! See /achievements for your certificate.")
	}
	h.sendMessage(msg.Chat.ID, b.String())
}

func (h *Handlers) handleHabitStart(ctx context.Context, msg *tgbotapi.Message) {
	parts := strings.SplitN(strings.TrimSpace(msg.CommandArguments()), " ", 2)
	if len(parts) != 2 {
		h.sendMessage(msg.Chat.ID, "Usage: /habitstart N name (e.g. /habitstart 30 Meditate)")
		return
	}
	goal, err := strconv.Atoi(parts[0])
	if err != nil || goal < 1 {
		h.sendMessage(msg.Chat.ID, "The goal must be a positive number of days.")
		return
	}

	habit := &models.Habit{
		UserID: msg.From.ID,
		Name:   strings.TrimSpace(parts[1]),
		Goal:   goal,
	}
	if err := h.repos.Habit.Create(ctx, habit); err != nil {
		log.Printf("Failed to create habit: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not start the mission.")
		return
	}
	h.sendMessage(msg.Chat.ID,
		fmt.Sprintf("Mission started: %s for %d days. Mark each day with /habitdone.", habit.Name, goal))
}

func (h *Handlers) handleHabitDone(ctx context.Context, msg *tgbotapi.Message) {
	habit, err := h.repos.Habit.Get(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to load habit: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not load your habit.")
		return
	}
	if habit == nil {
		h.sendMessage(msg.Chat.ID, "No habit mission yet. Start one with /habitstart N name")
		return
	}

	alreadyDone := habit.GoalReached()
	todayKey := calendar.DayKey(time.Now())
	if err := h.repos.Habit.MarkDay(ctx, habit.HabitID, todayKey); err != nil {
		log.Printf("Failed to mark habit day: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not record today.")
		return
	}

	// Re-read so a repeated /habitdone on the same day does not inflate
	// progress past the distinct-day count.
	habit, err = h.repos.Habit.Get(ctx, msg.From.ID)
	if err != nil || habit == nil {
		log.Printf("Failed to reload habit: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not record today.")
		return
	}

	if habit.GoalReached() && !alreadyDone {
		achievement := &models.Achievement{
			UserID:     msg.From.ID,
			Kind:       models.AchievementHabit,
			Title:      fmt.Sprintf("%s (%d days)", habit.Name, habit.Goal),
			AchievedAt: time.Now(),
		}
		if err := h.repos.Achievement.Create(ctx, achievement); err != nil {
			log.Printf("Failed to create achievement: %v", err)
		}
		h.sendMessage(msg.Chat.ID, fmt.Sprintf(
			"🏆 Certificate of Completion 🏆\n\n%s\n%d days, done.\n\nStart the next one with /habitstart.",
			habit.Name, habit.Goal))
		return
	}

	h.sendMessage(msg.Chat.ID, fmt.Sprintf(
		"Day recorded! %d/%d, streak %d 🔥",
		len(habit.CompletedDays), habit.Goal, streak.Current(habit.CompletedDays)))
}

func (h *Handlers) handleHabitReset(ctx context.Context, msg *tgbotapi.Message) {
	if err := h.repos.Habit.Delete(ctx, msg.From.ID); err != nil {
		log.Printf("Failed to delete habit: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not reset the mission.")
		return
	}
	h.sendMessage(msg.Chat.ID, "Mission abandoned. Start fresh with /habitstart whenever you're ready.")
}
