package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/daypulse/daypulse/internal/calendar"
	"github.com/daypulse/daypulse/internal/models"
)

// handleQuickAdd turns a plain-text message into a schedule task for today.
func (h *Handlers) handleQuickAdd(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}
	if h.ai == nil {
		h.sendMessage(msg.Chat.ID, "Quick-add needs the AI backend, which is not configured. Use /add HH:MM text instead.")
		return
	}

	parsed, err := h.ai.ParseQuickAdd(ctx, text)
	if err != nil {
		log.Printf("Quick-add parse failed: %v", err)
		h.sendMessage(msg.Chat.ID, "I couldn't read a task out of that. Try /add HH:MM text.")
		return
	}

	priority := models.Priority(parsed.Priority)
	if !priority.Valid() {
		priority = models.PriorityMedium
	}

	task := &models.ScheduleTask{
		UserID:      msg.From.ID,
		DayKey:      calendar.DayKey(time.Now()),
		TimeOfDay:   parsed.Time,
		Task:        parsed.Task,
		Priority:    priority,
		HasReminder: parsed.HasReminder,
	}
	if sound := models.AlarmSound(parsed.AlarmSound); sound.Valid() {
		task.AlarmSound = &sound
	}
	if err := h.repos.Schedule.Create(ctx, task); err != nil {
		log.Printf("Failed to create quick-add task: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not save the task.")
		return
	}
	h.engine.Notify()

	bell := ""
	if task.HasReminder {
		bell = " 🔔"
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("Added: %s at %s%s", task.Task, task.TimeOfDay, bell))
}
