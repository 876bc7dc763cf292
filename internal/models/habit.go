package models

import "time"

// Habit is a user's single active habit mission. CompletedDays holds
// distinct day keys; progress is the cardinality of that set, never a count
// of insertions.
type Habit struct {
	HabitID       int64     `json:"habit_id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Goal          int       `json:"goal"` // target count of distinct completed days, > 0
	CompletedDays []string  `json:"completed_days"`
	CreatedAt     time.Time `json:"created_at"`
}

// GoalReached reports whether the distinct-day count has hit the goal.
func (h *Habit) GoalReached() bool {
	return len(h.CompletedDays) >= h.Goal
}
