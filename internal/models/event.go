package models

import "time"

// CalendarEvent is a day-scoped calendar entry. Events carry no completion
// state; once fired, only the dedup tracker keeps them from re-alerting.
type CalendarEvent struct {
	EventID     int64     `json:"event_id"`
	UserID      int64     `json:"user_id"`
	DayKey      string    `json:"day_key"`     // YYYY-MM-DD, local
	TimeOfDay   string    `json:"time_of_day"` // HH:MM, local
	Text        string    `json:"text"`
	HasReminder bool      `json:"has_reminder"`
	CreatedAt   time.Time `json:"created_at"`
}
