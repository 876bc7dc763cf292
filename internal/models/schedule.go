package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// AlarmSound identifies which alert sound the client plays for a reminder.
type AlarmSound string

const (
	SoundBell    AlarmSound = "bell"
	SoundChime   AlarmSound = "chime"
	SoundDigital AlarmSound = "digital"
)

func (s AlarmSound) Valid() bool {
	switch s {
	case SoundBell, SoundChime, SoundDigital:
		return true
	}
	return false
}

type SubTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ScheduleTask is one entry of a user's per-day schedule. Tasks are scoped to
// a single day key and are never recurring; a quick-add for "tomorrow"
// creates a fresh row under tomorrow's key.
type ScheduleTask struct {
	TaskID      int64       `json:"task_id"`
	UserID      int64       `json:"user_id"`
	DayKey      string      `json:"day_key"`     // YYYY-MM-DD, local
	TimeOfDay   string      `json:"time_of_day"` // HH:MM, local
	Task        string      `json:"task"`
	Completed   bool        `json:"completed"`
	Priority    Priority    `json:"priority"`
	HasReminder bool        `json:"has_reminder"`
	AlarmSound  *AlarmSound `json:"alarm_sound"` // nil means the user's default
	Notes       string      `json:"notes"`
	SubTasks    []SubTask   `json:"sub_tasks"`
	CreatedAt   time.Time   `json:"created_at"`
}

// DefaultDayTemplate is the schedule seeded for a day the user has not
// planned yet.
type TemplateTask struct {
	TimeOfDay string
	Task      string
	Priority  Priority
}

var DefaultDayTemplate = []TemplateTask{
	{"06:00", "Wake Up & Hydrate", PriorityMedium},
	{"06:15", "Meditation / Journaling", PriorityMedium},
	{"07:00", "Workout", PriorityHigh},
	{"08:00", "Breakfast & Plan Day", PriorityMedium},
	{"09:00", "Deep Work Block 1", PriorityHigh},
	{"11:00", "Short Break", PriorityLow},
	{"11:15", "Deep Work Block 2", PriorityHigh},
	{"13:00", "Lunch", PriorityMedium},
	{"14:00", "Shallow Work / Emails", PriorityMedium},
	{"15:00", "Deep Work Block 3", PriorityHigh},
	{"17:00", "Wrap up work", PriorityMedium},
	{"18:00", "Break / Relax", PriorityLow},
	{"19:00", "Dinner", PriorityMedium},
	{"20:00", "Skill Development / Reading", PriorityMedium},
	{"21:00", "Wind Down / Family Time", PriorityLow},
	{"22:00", "Prepare for Tomorrow", PriorityMedium},
	{"22:30", "Sleep", PriorityMedium},
}
