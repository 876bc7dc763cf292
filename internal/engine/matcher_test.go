package engine

import (
	"testing"

	"github.com/daypulse/daypulse/internal/models"
)

const testDay = "2024-06-04"

func task(id int64, timeOfDay string, hasReminder, completed bool) *models.ScheduleTask {
	return &models.ScheduleTask{
		TaskID:      id,
		DayKey:      testDay,
		TimeOfDay:   timeOfDay,
		Task:        "Task",
		HasReminder: hasReminder,
		Completed:   completed,
		Priority:    models.PriorityMedium,
	}
}

func event(id int64, timeOfDay string, hasReminder bool) *models.CalendarEvent {
	return &models.CalendarEvent{
		EventID:     id,
		DayKey:      testDay,
		TimeOfDay:   timeOfDay,
		Text:        "Event",
		HasReminder: hasReminder,
	}
}

func TestDueNowGuards(t *testing.T) {
	fired := NewDedup()

	tests := []struct {
		name    string
		tasks   []*models.ScheduleTask
		events  []*models.CalendarEvent
		wantLen int
	}{
		{"time matches", []*models.ScheduleTask{task(1, "09:00", true, false)}, nil, 1},
		{"wrong minute", []*models.ScheduleTask{task(1, "09:01", true, false)}, nil, 0},
		{"reminder disabled", []*models.ScheduleTask{task(1, "09:00", false, false)}, nil, 0},
		{"completed task never alerts", []*models.ScheduleTask{task(1, "09:00", true, true)}, nil, 0},
		{"event matches", nil, []*models.CalendarEvent{event(1, "09:00", true)}, 1},
		{"event reminder disabled", nil, []*models.CalendarEvent{event(1, "09:00", false)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := DueNow(testDay, "09:00", tt.tasks, tt.events, fired, models.SoundBell)
			if len(due) != tt.wantLen {
				t.Fatalf("got %d due items, want %d", len(due), tt.wantLen)
			}
		})
	}
}

func TestDueNowOrderingTasksBeforeEvents(t *testing.T) {
	fired := NewDedup()
	tasks := []*models.ScheduleTask{task(2, "09:00", true, false), task(1, "09:00", true, false)}
	events := []*models.CalendarEvent{event(5, "09:00", true), event(3, "09:00", true)}

	due := DueNow(testDay, "09:00", tasks, events, fired, models.SoundBell)
	want := []string{"task:2", "task:1", "event:5", "event:3"}
	if len(due) != len(want) {
		t.Fatalf("got %d due items, want %d", len(due), len(want))
	}
	for i, key := range want {
		if due[i].Key != key {
			t.Fatalf("position %d: got %s, want %s", i, due[i].Key, key)
		}
	}
}

func TestDueNowAtMostOncePerKey(t *testing.T) {
	fired := NewDedup()
	tasks := []*models.ScheduleTask{task(1, "09:00", true, false)}

	due := DueNow(testDay, "09:00", tasks, nil, fired, models.SoundBell)
	if len(due) != 1 {
		t.Fatalf("expected first match, got %d", len(due))
	}
	fired.Record(testDay, due[0].Key)

	// A rescheduled duplicate timer re-supplies the identical minute.
	for i := 0; i < 3; i++ {
		if again := DueNow(testDay, "09:00", tasks, nil, fired, models.SoundBell); len(again) != 0 {
			t.Fatalf("call %d: item fired twice", i)
		}
	}
}

func TestDueNowIsPure(t *testing.T) {
	fired := NewDedup()
	tasks := []*models.ScheduleTask{task(1, "09:00", true, false)}

	DueNow(testDay, "09:00", tasks, nil, fired, models.SoundBell)
	if fired.Has(testDay, "task:1") {
		t.Fatal("matcher must not record into the tracker")
	}
}

func TestDueNowTaskAndEventKeysDisjoint(t *testing.T) {
	fired := NewDedup()
	tasks := []*models.ScheduleTask{task(7, "09:00", true, false)}
	events := []*models.CalendarEvent{event(7, "09:00", true)}

	due := DueNow(testDay, "09:00", tasks, events, fired, models.SoundBell)
	if len(due) != 2 {
		t.Fatalf("same numeric id must not collide across kinds, got %d", len(due))
	}
	fired.Record(testDay, due[0].Key)

	due = DueNow(testDay, "09:00", tasks, events, fired, models.SoundBell)
	if len(due) != 1 || due[0].Key != "event:7" {
		t.Fatalf("expected only the event to remain due, got %+v", due)
	}
}

func TestDueNowSoundResolution(t *testing.T) {
	fired := NewDedup()
	chime := models.SoundChime
	withOverride := task(1, "09:00", true, false)
	withOverride.AlarmSound = &chime
	plain := task(2, "09:00", true, false)

	due := DueNow(testDay, "09:00", []*models.ScheduleTask{withOverride, plain}, []*models.CalendarEvent{event(3, "09:00", true)}, fired, models.SoundDigital)
	if len(due) != 3 {
		t.Fatalf("got %d due items", len(due))
	}
	if due[0].Sound != models.SoundChime {
		t.Fatalf("per-task override ignored: %s", due[0].Sound)
	}
	if due[1].Sound != models.SoundDigital {
		t.Fatalf("task without override should use default: %s", due[1].Sound)
	}
	if due[2].Sound != models.SoundDigital {
		t.Fatalf("events should use the default sound: %s", due[2].Sound)
	}
}
