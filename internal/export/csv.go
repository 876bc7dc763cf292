// Package export renders the admin habit report. The streak column uses the
// same calculation as every user-facing streak display, so the report and
// the UI can never disagree for the same history.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/daypulse/daypulse/internal/models"
	"github.com/daypulse/daypulse/internal/streak"
)

type StreakRow struct {
	UserID        int64
	FullName      string
	Habit         string
	Goal          int
	DaysCompleted int
	CurrentStreak int
}

type userLister interface {
	ListAll(ctx context.Context) ([]*models.User, error)
}

type habitGetter interface {
	Get(ctx context.Context, userID int64) (*models.Habit, error)
}

// BuildStreakRows collects one row per user evaluated at now. Users without
// a habit get an empty habit column and zero counts.
func BuildStreakRows(ctx context.Context, users userLister, habits habitGetter, now time.Time) ([]StreakRow, error) {
	all, err := users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	rows := make([]StreakRow, 0, len(all))
	for _, user := range all {
		row := StreakRow{UserID: user.UserID, FullName: user.FullName}
		habit, err := habits.Get(ctx, user.UserID)
		if err != nil {
			return nil, fmt.Errorf("load habit for user %d: %w", user.UserID, err)
		}
		if habit != nil {
			row.Habit = habit.Name
			row.Goal = habit.Goal
			row.DaysCompleted = len(habit.CompletedDays)
			row.CurrentStreak = streak.At(habit.CompletedDays, now)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func WriteStreakCSV(w io.Writer, rows []StreakRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"user_id", "full_name", "habit", "goal", "days_completed", "current_streak"}); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.UserID),
			row.FullName,
			row.Habit,
			fmt.Sprintf("%d", row.Goal),
			fmt.Sprintf("%d", row.DaysCompleted),
			fmt.Sprintf("%d", row.CurrentStreak),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	return cw.Error()
}
