package models

import "time"

// UserSettings holds per-user preferences read fresh by the reminder loop.
type UserSettings struct {
	UserID            int64      `json:"user_id"`
	DefaultAlarmSound AlarmSound `json:"default_alarm_sound"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// NewDefaultUserSettings creates settings with default values.
func NewDefaultUserSettings(userID int64) *UserSettings {
	return &UserSettings{
		UserID:            userID,
		DefaultAlarmSound: SoundBell,
		UpdatedAt:         time.Now(),
	}
}
