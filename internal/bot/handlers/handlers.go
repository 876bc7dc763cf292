package handlers

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/daypulse/daypulse/internal/ai"
	"github.com/daypulse/daypulse/internal/engine"
	"github.com/daypulse/daypulse/internal/models"
	"github.com/daypulse/daypulse/internal/repository"
)

type Repositories struct {
	User        *repository.UserRepository
	Settings    *repository.UserSettingsRepository
	Schedule    *repository.ScheduleRepository
	Event       *repository.EventRepository
	Habit       *repository.HabitRepository
	Note        *repository.NoteRepository
	Dream       *repository.DreamRepository
	Achievement *repository.AchievementRepository
}

type Handlers struct {
	api         *tgbotapi.BotAPI
	repos       *Repositories
	ai          *ai.Client
	engine      *engine.Engine
	adminUserID int64
}

func New(api *tgbotapi.BotAPI, repos *Repositories, aiClient *ai.Client, eng *engine.Engine, adminUserID int64) *Handlers {
	return &Handlers{
		api:         api,
		repos:       repos,
		ai:          aiClient,
		engine:      eng,
		adminUserID: adminUserID,
	}
}

func (h *Handlers) HandleCommand(ctx context.Context, msg *tgbotapi.Message) {
	user, ok := h.ensureUser(ctx, msg)
	if !ok {
		return
	}

	switch msg.Command() {
	case "start":
		h.handleStart(ctx, msg)
	case "help":
		h.handleHelp(ctx, msg)
	case "today":
		h.handleToday(ctx, msg)
	case "add":
		h.handleAdd(ctx, msg)
	case "done":
		h.handleDone(ctx, msg)
	case "clearday":
		h.handleClearDay(ctx, msg)
	case "event":
		h.handleEvent(ctx, msg)
	case "events":
		h.handleEventList(ctx, msg)
	case "sound":
		h.handleSound(ctx, msg)
	case "habit":
		h.handleHabit(ctx, msg)
	case "habitstart":
		h.handleHabitStart(ctx, msg)
	case "habitdone":
		h.handleHabitDone(ctx, msg)
	case "habitreset":
		h.handleHabitReset(ctx, msg)
	case "dream":
		h.handleDream(ctx, msg)
	case "dreams":
		h.handleDreamList(ctx, msg)
	case "dreamdone":
		h.handleDreamDone(ctx, msg)
	case "note":
		h.handleNote(ctx, msg)
	case "notes":
		h.handleNoteList(ctx, msg)
	case "delnote":
		h.handleNoteDelete(ctx, msg)
	case "achievements":
		h.handleAchievements(ctx, msg)
	case "notifications":
		h.handleNotifications(ctx, msg)
	case "export":
		h.handleExport(ctx, msg, user)
	case "ban":
		h.handleBan(ctx, msg, user, true)
	case "unban":
		h.handleBan(ctx, msg, user, false)
	default:
		h.sendMessage(msg.Chat.ID, "Unknown command, see /help for the full list")
	}
}

func (h *Handlers) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := h.ensureUser(ctx, msg); !ok {
		return
	}
	h.handleQuickAdd(ctx, msg)
}

// ensureUser registers the sender on first contact and refuses banned users.
func (h *Handlers) ensureUser(ctx context.Context, msg *tgbotapi.Message) (*models.User, bool) {
	fullName := msg.From.FirstName
	if msg.From.LastName != "" {
		fullName += " " + msg.From.LastName
	}
	user, err := h.repos.User.GetOrCreate(ctx, msg.From.ID, fullName)
	if err != nil {
		log.Printf("Failed to get/create user: %v", err)
		return nil, false
	}
	if user.Banned {
		h.sendMessage(msg.Chat.ID, "Your account has been suspended.")
		return nil, false
	}
	return user, true
}

func (h *Handlers) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handlers) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	h.sendMessage(msg.Chat.ID,
		"Welcome to DayPulse! I track your daily schedule, habit streaks, dreams and notes, "+
			"and ping you when a reminder is due.\n\n"+
			"Type any task in plain words (\"remind me to stretch at 15:00\") or use /help for commands.")
}

func (h *Handlers) handleHelp(ctx context.Context, msg *tgbotapi.Message) {
	h.sendMessage(msg.Chat.ID, `Schedule
/today - today's schedule and events
/add HH:MM text - add a task with a reminder
/done N - mark task N complete
/clearday - reset today to the default template
/event HH:MM text - add a calendar event with a reminder
/events - today's events
/sound bell|chime|digital - default alarm sound

Habit
/habitstart N name - start an N-day habit mission
/habit - progress and current streak
/habitdone - mark today complete
/habitreset - abandon the mission

Dreams & notes
/dream text - record a dream
/dreams - list dreams
/dreamdone N - mark dream N achieved
/note title | content - save a note
/notes - list notes
/delnote N - delete note N

/achievements - earned certificates
/notifications - reminder history`)
}
