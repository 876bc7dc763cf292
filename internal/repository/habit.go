package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/models"
)

type HabitRepository struct {
	db *database.DB
}

func NewHabitRepository(db *database.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

// Get returns the user's habit with its full completion history, or nil if
// the user has not started one.
func (r *HabitRepository) Get(ctx context.Context, userID int64) (*models.Habit, error) {
	habit := &models.Habit{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT habit_id, user_id, name, goal, created_at FROM habits WHERE user_id = $1`,
		userID,
	).Scan(&habit.HabitID, &habit.UserID, &habit.Name, &habit.Goal, &habit.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx,
		`SELECT day_key FROM habit_days WHERE habit_id = $1 ORDER BY day_key`,
		habit.HabitID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		habit.CompletedDays = append(habit.CompletedDays, day)
	}
	return habit, rows.Err()
}

// Create starts a new habit mission, replacing any existing one along with
// its history.
func (r *HabitRepository) Create(ctx context.Context, habit *models.Habit) error {
	if _, err := r.db.Pool.Exec(ctx,
		`DELETE FROM habits WHERE user_id = $1`, habit.UserID,
	); err != nil {
		return err
	}
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO habits (user_id, name, goal) VALUES ($1, $2, $3)
		 RETURNING habit_id, created_at`,
		habit.UserID, habit.Name, habit.Goal,
	).Scan(&habit.HabitID, &habit.CreatedAt)
}

// MarkDay records a completed day. Duplicate marks for the same day collapse
// to one row, so the distinct-day invariant holds at the storage level.
func (r *HabitRepository) MarkDay(ctx context.Context, habitID int64, dayKey string) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO habit_days (habit_id, day_key) VALUES ($1, $2)
		 ON CONFLICT (habit_id, day_key) DO NOTHING`,
		habitID, dayKey,
	)
	return err
}

func (r *HabitRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM habits WHERE user_id = $1`,
		userID,
	)
	return err
}
