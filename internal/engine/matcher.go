package engine

import (
	"fmt"

	"github.com/daypulse/daypulse/internal/models"
)

// Due is one reminder that should fire this minute.
type Due struct {
	// Key identifies the firing for deduplication. Task and event IDs come
	// from separate sequences, so the key carries the kind to keep the two
	// spaces disjoint.
	Key     string
	Message string
	Sound   models.AlarmSound
}

func taskKey(id int64) string  { return fmt.Sprintf("task:%d", id) }
func eventKey(id int64) string { return fmt.Sprintf("event:%d", id) }

// DueNow returns the reminders due at the given minute that have not fired
// yet today. A task is due when its time matches, it wants a reminder, and
// it is not completed; a completed task never re-alerts even if its time
// matches again after an edit. Events have no completion concept, so only
// the dedup tracker guards them against re-firing.
//
// The result is stable: tasks before events, each in input order. DueNow
// never mutates its inputs or the tracker; recording fired keys is the
// caller's job.
func DueNow(dayKey, nowHHMM string, tasks []*models.ScheduleTask, events []*models.CalendarEvent, fired *Dedup, defaultSound models.AlarmSound) []Due {
	var due []Due

	for _, task := range tasks {
		if task.TimeOfDay != nowHHMM || !task.HasReminder || task.Completed {
			continue
		}
		if fired.Has(dayKey, taskKey(task.TaskID)) {
			continue
		}
		sound := defaultSound
		if task.AlarmSound != nil && task.AlarmSound.Valid() {
			sound = *task.AlarmSound
		}
		due = append(due, Due{
			Key:     taskKey(task.TaskID),
			Message: "It's time for: " + task.Task,
			Sound:   sound,
		})
	}

	for _, event := range events {
		if event.TimeOfDay != nowHHMM || !event.HasReminder {
			continue
		}
		if fired.Has(dayKey, eventKey(event.EventID)) {
			continue
		}
		due = append(due, Due{
			Key:     eventKey(event.EventID),
			Message: "Event Reminder: " + event.Text,
			Sound:   defaultSound,
		})
	}

	return due
}
