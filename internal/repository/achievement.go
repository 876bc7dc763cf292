package repository

import (
	"context"

	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/models"
)

type AchievementRepository struct {
	db *database.DB
}

func NewAchievementRepository(db *database.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func (r *AchievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO achievements (user_id, kind, title, achieved_at, started_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING achievement_id`,
		achievement.UserID, achievement.Kind, achievement.Title,
		achievement.AchievedAt, achievement.StartedAt,
	).Scan(&achievement.AchievementID)
}

func (r *AchievementRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Achievement, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT achievement_id, user_id, kind, title, achieved_at, started_at
		 FROM achievements WHERE user_id = $1 ORDER BY achieved_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []*models.Achievement
	for rows.Next() {
		a := &models.Achievement{}
		if err := rows.Scan(&a.AchievementID, &a.UserID, &a.Kind, &a.Title,
			&a.AchievedAt, &a.StartedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}
