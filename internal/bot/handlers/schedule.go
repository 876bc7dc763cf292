package handlers

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/daypulse/daypulse/internal/calendar"
	"github.com/daypulse/daypulse/internal/models"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func (h *Handlers) handleToday(ctx context.Context, msg *tgbotapi.Message) {
	todayKey := calendar.DayKey(time.Now())

	tasks, err := h.repos.Schedule.EnsureDay(ctx, msg.From.ID, todayKey)
	if err != nil {
		log.Printf("Failed to load schedule: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not load today's schedule.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s\n\n", todayKey)
	for i, task := range tasks {
		check := "☐"
		if task.Completed {
			check = "✅"
		}
		bell := ""
		if task.HasReminder {
			bell = " 🔔"
		}
		fmt.Fprintf(&b, "%d. %s %s %s%s\n", i+1, check, task.TimeOfDay, task.Task, bell)
	}

	events, err := h.repos.Event.ListForDay(ctx, msg.From.ID, todayKey)
	if err != nil {
		log.Printf("Failed to load events: %v", err)
		events = nil
	}
	if len(events) > 0 {
		b.WriteString("\nEvents\n")
		for _, event := range events {
			fmt.Fprintf(&b, "• %s %s\n", event.TimeOfDay, event.Text)
		}
	}

	h.sendMessage(msg.Chat.ID, b.String())
}

func (h *Handlers) handleAdd(ctx context.Context, msg *tgbotapi.Message) {
	parts := strings.SplitN(strings.TrimSpace(msg.CommandArguments()), " ", 2)
	if len(parts) != 2 || !hhmmPattern.MatchString(parts[0]) {
		h.sendMessage(msg.Chat.ID, "Usage: /add HH:MM task description")
		return
	}

	task := &models.ScheduleTask{
		UserID:      msg.From.ID,
		DayKey:      calendar.DayKey(time.Now()),
		TimeOfDay:   parts[0],
		Task:        strings.TrimSpace(parts[1]),
		Priority:    models.PriorityMedium,
		HasReminder: true,
	}
	if err := h.repos.Schedule.Create(ctx, task); err != nil {
		log.Printf("Failed to create task: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not add the task.")
		return
	}

	// The new task may be due this very minute.
	h.engine.Notify()
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("Added: %s at %s 🔔", task.Task, task.TimeOfDay))
}

func (h *Handlers) handleDone(ctx context.Context, msg *tgbotapi.Message) {
	index, err := strconv.Atoi(strings.TrimSpace(msg.CommandArguments()))
	if err != nil || index < 1 {
		h.sendMessage(msg.Chat.ID, "Usage: /done N (task number from /today)")
		return
	}

	todayKey := calendar.DayKey(time.Now())
	tasks, err := h.repos.Schedule.ListForDay(ctx, msg.From.ID, todayKey)
	if err != nil || index > len(tasks) {
		h.sendMessage(msg.Chat.ID, "No such task, check /today")
		return
	}

	task := tasks[index-1]
	if err := h.repos.Schedule.SetCompleted(ctx, task.TaskID, msg.From.ID, true); err != nil {
		log.Printf("Failed to complete task: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not update the task.")
		return
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("✅ %s", task.Task))
}

func (h *Handlers) handleClearDay(ctx context.Context, msg *tgbotapi.Message) {
	todayKey := calendar.DayKey(time.Now())
	if err := h.repos.Schedule.ClearDay(ctx, msg.From.ID, todayKey); err != nil {
		log.Printf("Failed to clear day: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not clear today's schedule.")
		return
	}
	h.sendMessage(msg.Chat.ID, "Today's schedule reset. /today will show the default template.")
}

func (h *Handlers) handleEvent(ctx context.Context, msg *tgbotapi.Message) {
	parts := strings.SplitN(strings.TrimSpace(msg.CommandArguments()), " ", 2)
	if len(parts) != 2 || !hhmmPattern.MatchString(parts[0]) {
		h.sendMessage(msg.Chat.ID, "Usage: /event HH:MM event description")
		return
	}

	event := &models.CalendarEvent{
		UserID:      msg.From.ID,
		DayKey:      calendar.DayKey(time.Now()),
		TimeOfDay:   parts[0],
		Text:        strings.TrimSpace(parts[1]),
		HasReminder: true,
	}
	if err := h.repos.Event.Create(ctx, event); err != nil {
		log.Printf("Failed to create event: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not add the event.")
		return
	}

	h.engine.Notify()
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("Added event: %s at %s 🔔", event.Text, event.TimeOfDay))
}

func (h *Handlers) handleEventList(ctx context.Context, msg *tgbotapi.Message) {
	todayKey := calendar.DayKey(time.Now())
	events, err := h.repos.Event.ListForDay(ctx, msg.From.ID, todayKey)
	if err != nil {
		log.Printf("Failed to load events: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not load today's events.")
		return
	}
	if len(events) == 0 {
		h.sendMessage(msg.Chat.ID, "No events today.")
		return
	}

	var b strings.Builder
	b.WriteString("Today's events\n")
	for _, event := range events {
		fmt.Fprintf(&b, "• %s %s\n", event.TimeOfDay, event.Text)
	}
	h.sendMessage(msg.Chat.ID, b.String())
}

func (h *Handlers) handleSound(ctx context.Context, msg *tgbotapi.Message) {
	sound := models.AlarmSound(strings.TrimSpace(msg.CommandArguments()))
	if !sound.Valid() {
		h.sendMessage(msg.Chat.ID, "Usage: /sound bell|chime|digital")
		return
	}
	if err := h.repos.Settings.SetDefaultAlarmSound(ctx, msg.From.ID, sound); err != nil {
		log.Printf("Failed to set alarm sound: %v", err)
		h.sendMessage(msg.Chat.ID, "Could not save the setting.")
		return
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("Default alarm sound set to %s.", sound))
}
