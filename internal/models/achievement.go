package models

import "time"

type AchievementKind string

const (
	AchievementHabit AchievementKind = "habit"
	AchievementDream AchievementKind = "dream"
)

type Achievement struct {
	AchievementID int64           `json:"achievement_id"`
	UserID        int64           `json:"user_id"`
	Kind          AchievementKind `json:"kind"`
	Title         string          `json:"title"`
	AchievedAt    time.Time       `json:"achieved_at"`
	StartedAt     *time.Time      `json:"started_at"` // set for dreams, drives the duration line
}
