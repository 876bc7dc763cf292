// Package engine implements the temporal core of DayPulse: a minute-aligned
// tick loop that matches due reminders exactly once per occurrence, plus the
// bounded notification log the firings feed.
package engine

import (
	"context"
	"log"
	"time"

	"github.com/daypulse/daypulse/internal/alert"
	"github.com/daypulse/daypulse/internal/calendar"
	"github.com/daypulse/daypulse/internal/models"
)

// Sources are read fresh on every tick; the engine never caches day
// collections, so edits made between ticks are always observed.
type UserSource interface {
	ListActive(ctx context.Context) ([]*models.User, error)
}

type SettingsSource interface {
	Get(ctx context.Context, userID int64) (*models.UserSettings, error)
}

type ScheduleSource interface {
	ListForDay(ctx context.Context, userID int64, dayKey string) ([]*models.ScheduleTask, error)
}

type EventSource interface {
	ListForDay(ctx context.Context, userID int64, dayKey string) ([]*models.CalendarEvent, error)
}

type Engine struct {
	users     UserSource
	settings  SettingsSource
	schedules ScheduleSource
	events    EventSource
	alerter   alert.Alerter
	notifyLog *NotificationLog
	dedup     *Dedup
	ticker    *Ticker
}

func New(users UserSource, settings SettingsSource, schedules ScheduleSource, events EventSource, alerter alert.Alerter, notifyLog *NotificationLog) *Engine {
	return &Engine{
		users:     users,
		settings:  settings,
		schedules: schedules,
		events:    events,
		alerter:   alerter,
		notifyLog: notifyLog,
		dedup:     NewDedup(),
	}
}

// Start arms the minute tick. Minutes that pass while the process is down
// or suspended are not replayed on resume; the loop only ever evaluates the
// current minute.
func (e *Engine) Start(ctx context.Context) {
	log.Println("Reminder engine started")
	e.ticker = StartTicker(ctx, func(now time.Time) {
		e.check(ctx, now)
	})
}

// Stop cancels the pending tick before any caller teardown, so a stale
// callback can never fire against released state. Safe to call twice.
func (e *Engine) Stop() {
	if e.ticker != nil {
		e.ticker.Stop()
		log.Println("Reminder engine stopped")
	}
}

// Notify triggers an immediate check outside the minute cadence, e.g. right
// after a quick-add for the current minute.
func (e *Engine) Notify() {
	if e.ticker != nil {
		e.ticker.Notify()
	}
}

// Log exposes the notification log for read surfaces.
func (e *Engine) Log() *NotificationLog {
	return e.notifyLog
}

// check matches and fires everything due at the given instant. All failures
// degrade to "no reminder fired" for the affected user; the loop itself
// never stops.
func (e *Engine) check(ctx context.Context, now time.Time) {
	dayKey := calendar.DayKey(now)
	nowHHMM := now.Format("15:04")

	users, err := e.users.ListActive(ctx)
	if err != nil {
		log.Printf("Failed to list users for reminder check: %v", err)
		return
	}

	for _, user := range users {
		e.checkUser(ctx, user.UserID, dayKey, nowHHMM)
	}
}

func (e *Engine) checkUser(ctx context.Context, userID int64, dayKey, nowHHMM string) {
	defaultSound := models.SoundBell
	if settings, err := e.settings.Get(ctx, userID); err != nil {
		log.Printf("Failed to load settings for user %d: %v", userID, err)
	} else if settings.DefaultAlarmSound.Valid() {
		defaultSound = settings.DefaultAlarmSound
	}

	tasks, err := e.schedules.ListForDay(ctx, userID, dayKey)
	if err != nil {
		log.Printf("Failed to load schedule for user %d: %v", userID, err)
		tasks = nil
	}
	events, err := e.events.ListForDay(ctx, userID, dayKey)
	if err != nil {
		log.Printf("Failed to load events for user %d: %v", userID, err)
		events = nil
	}

	for _, due := range DueNow(dayKey, nowHHMM, tasks, events, e.dedup, defaultSound) {
		e.dedup.Record(dayKey, due.Key)
		e.notifyLog.Append(ctx, userID, due.Message)
		e.alerter.PlayAlert(ctx, userID, due.Sound, due.Message)
	}
}
