package models

import "time"

// Dream is a long-term goal. When achieved, the creation date is carried
// onto the resulting achievement so the mission duration can be rendered.
type Dream struct {
	DreamID    int64      `json:"dream_id"`
	UserID     int64      `json:"user_id"`
	Text       string     `json:"text"`
	TargetDate *time.Time `json:"target_date"`
	AchievedAt *time.Time `json:"achieved_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
