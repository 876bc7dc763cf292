package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daypulse/daypulse/internal/models"
)

type fakeUsers struct {
	users []*models.User
	err   error
}

func (f *fakeUsers) ListActive(ctx context.Context) ([]*models.User, error) {
	return f.users, f.err
}

type fakeSettings struct {
	sound models.AlarmSound
	err   error
}

func (f *fakeSettings) Get(ctx context.Context, userID int64) (*models.UserSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserSettings{UserID: userID, DefaultAlarmSound: f.sound}, nil
}

type fakeSchedules struct {
	byDay map[string][]*models.ScheduleTask
	err   error
}

func (f *fakeSchedules) ListForDay(ctx context.Context, userID int64, dayKey string) ([]*models.ScheduleTask, error) {
	return f.byDay[dayKey], f.err
}

type fakeEvents struct {
	byDay map[string][]*models.CalendarEvent
	err   error
}

func (f *fakeEvents) ListForDay(ctx context.Context, userID int64, dayKey string) ([]*models.CalendarEvent, error) {
	return f.byDay[dayKey], f.err
}

type firing struct {
	userID  int64
	sound   models.AlarmSound
	message string
}

type fakeAlerter struct {
	firings []firing
}

func (f *fakeAlerter) PlayAlert(ctx context.Context, userID int64, sound models.AlarmSound, message string) {
	f.firings = append(f.firings, firing{userID, sound, message})
}

func newTestEngine(tasks []*models.ScheduleTask, events []*models.CalendarEvent, now time.Time) (*Engine, *fakeAlerter) {
	dayKey := now.Format("2006-01-02")
	alerter := &fakeAlerter{}
	e := New(
		&fakeUsers{users: []*models.User{{UserID: 1}}},
		&fakeSettings{sound: models.SoundBell},
		&fakeSchedules{byDay: map[string][]*models.ScheduleTask{dayKey: tasks}},
		&fakeEvents{byDay: map[string][]*models.CalendarEvent{dayKey: events}},
		alerter,
		NewNotificationLog(nil),
	)
	return e, alerter
}

func TestCheckFiresDueReminderOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 4, 9, 0, 0, 0, time.Local)
	tasks := []*models.ScheduleTask{
		{TaskID: 1, UserID: 1, TimeOfDay: "09:00", Task: "Workout", HasReminder: true},
		{TaskID: 2, UserID: 1, TimeOfDay: "10:00", Task: "Later", HasReminder: true},
	}
	events := []*models.CalendarEvent{
		{EventID: 1, UserID: 1, TimeOfDay: "09:00", Text: "Standup", HasReminder: true},
	}
	e, alerter := newTestEngine(tasks, events, now)

	e.check(ctx, now)

	if len(alerter.firings) != 2 {
		t.Fatalf("fired %d alerts, want 2", len(alerter.firings))
	}
	if alerter.firings[0].message != "It's time for: Workout" {
		t.Fatalf("unexpected task message: %q", alerter.firings[0].message)
	}
	if alerter.firings[1].message != "Event Reminder: Standup" {
		t.Fatalf("unexpected event message: %q", alerter.firings[1].message)
	}
	if got := e.Log().UnreadCount(ctx, 1); got != 2 {
		t.Fatalf("unread notifications = %d, want 2", got)
	}

	// The same minute re-delivered by a duplicate timer fires nothing new.
	e.check(ctx, now)
	e.check(ctx, now.Add(30*time.Second))
	if len(alerter.firings) != 2 {
		t.Fatalf("duplicate tick refired: %d alerts", len(alerter.firings))
	}
}

func TestCheckSkipsCompletedTasks(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 4, 9, 0, 0, 0, time.Local)
	tasks := []*models.ScheduleTask{
		{TaskID: 1, UserID: 1, TimeOfDay: "09:00", Task: "Done already", HasReminder: true, Completed: true},
	}
	e, alerter := newTestEngine(tasks, nil, now)

	e.check(ctx, now)
	if len(alerter.firings) != 0 {
		t.Fatalf("completed task fired: %+v", alerter.firings)
	}
}

func TestCheckReadsCollectionsFresh(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 4, 9, 0, 0, 0, time.Local)
	dayKey := now.Format("2006-01-02")

	schedules := &fakeSchedules{byDay: map[string][]*models.ScheduleTask{}}
	alerter := &fakeAlerter{}
	e := New(
		&fakeUsers{users: []*models.User{{UserID: 1}}},
		&fakeSettings{sound: models.SoundBell},
		schedules,
		&fakeEvents{byDay: map[string][]*models.CalendarEvent{}},
		alerter,
		NewNotificationLog(nil),
	)

	e.check(ctx, now)
	if len(alerter.firings) != 0 {
		t.Fatal("nothing should fire on an empty day")
	}

	// A task added between ticks is observed on the next tick.
	schedules.byDay[dayKey] = []*models.ScheduleTask{
		{TaskID: 1, UserID: 1, TimeOfDay: "09:01", Task: "Fresh", HasReminder: true},
	}
	e.check(ctx, now.Add(time.Minute))
	if len(alerter.firings) != 1 {
		t.Fatalf("mid-session edit not observed, fired %d", len(alerter.firings))
	}
}

func TestCheckDegradesOnStorageErrors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 4, 9, 0, 0, 0, time.Local)

	alerter := &fakeAlerter{}
	e := New(
		&fakeUsers{users: []*models.User{{UserID: 1}}},
		&fakeSettings{err: errors.New("settings down")},
		&fakeSchedules{err: errors.New("schedule down")},
		&fakeEvents{err: errors.New("events down")},
		alerter,
		NewNotificationLog(nil),
	)

	// Failures degrade to "no reminder fired", never a panic or abort.
	e.check(ctx, now)
	if len(alerter.firings) != 0 {
		t.Fatalf("fired despite storage errors: %+v", alerter.firings)
	}
}

func TestCheckResolvesSoundsPerUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 4, 9, 0, 0, 0, time.Local)
	chime := models.SoundChime
	tasks := []*models.ScheduleTask{
		{TaskID: 1, UserID: 1, TimeOfDay: "09:00", Task: "Override", HasReminder: true, AlarmSound: &chime},
		{TaskID: 2, UserID: 1, TimeOfDay: "09:00", Task: "Default", HasReminder: true},
	}
	e, alerter := newTestEngine(tasks, nil, now)

	e.check(ctx, now)
	if len(alerter.firings) != 2 {
		t.Fatalf("fired %d, want 2", len(alerter.firings))
	}
	if alerter.firings[0].sound != models.SoundChime || alerter.firings[1].sound != models.SoundBell {
		t.Fatalf("sound resolution wrong: %+v", alerter.firings)
	}
}
