package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/models"
)

type DreamRepository struct {
	db *database.DB
}

func NewDreamRepository(db *database.DB) *DreamRepository {
	return &DreamRepository{db: db}
}

func (r *DreamRepository) Create(ctx context.Context, dream *models.Dream) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO dreams (user_id, text, target_date) VALUES ($1, $2, $3)
		 RETURNING dream_id, created_at`,
		dream.UserID, dream.Text, dream.TargetDate,
	).Scan(&dream.DreamID, &dream.CreatedAt)
}

func (r *DreamRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Dream, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT dream_id, user_id, text, target_date, achieved_at, created_at
		 FROM dreams WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dreams []*models.Dream
	for rows.Next() {
		dream := &models.Dream{}
		if err := rows.Scan(&dream.DreamID, &dream.UserID, &dream.Text, &dream.TargetDate,
			&dream.AchievedAt, &dream.CreatedAt); err != nil {
			return nil, err
		}
		dreams = append(dreams, dream)
	}
	return dreams, rows.Err()
}

// MarkAchieved stamps the dream and returns it, or nil if it does not exist
// or was already achieved.
func (r *DreamRepository) MarkAchieved(ctx context.Context, dreamID int64, userID int64, at time.Time) (*models.Dream, error) {
	dream := &models.Dream{}
	err := r.db.Pool.QueryRow(ctx,
		`UPDATE dreams SET achieved_at = $1
		 WHERE dream_id = $2 AND user_id = $3 AND achieved_at IS NULL
		 RETURNING dream_id, user_id, text, target_date, achieved_at, created_at`,
		at, dreamID, userID,
	).Scan(&dream.DreamID, &dream.UserID, &dream.Text, &dream.TargetDate,
		&dream.AchievedAt, &dream.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dream, nil
}

func (r *DreamRepository) Delete(ctx context.Context, dreamID int64, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM dreams WHERE dream_id = $1 AND user_id = $2`,
		dreamID, userID,
	)
	return err
}
