package repository

import (
	"context"

	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/models"
)

type UserSettingsRepository struct {
	db *database.DB
}

func NewUserSettingsRepository(db *database.DB) *UserSettingsRepository {
	return &UserSettingsRepository{db: db}
}

// Get returns the user's settings, creating the default row on first use.
func (r *UserSettingsRepository) Get(ctx context.Context, userID int64) (*models.UserSettings, error) {
	settings := &models.UserSettings{}
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO user_settings (user_id) VALUES ($1)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING user_id, default_alarm_sound, updated_at`,
		userID,
	).Scan(&settings.UserID, &settings.DefaultAlarmSound, &settings.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *UserSettingsRepository) SetDefaultAlarmSound(ctx context.Context, userID int64, sound models.AlarmSound) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO user_settings (user_id, default_alarm_sound, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id) DO UPDATE SET default_alarm_sound = $2, updated_at = CURRENT_TIMESTAMP`,
		userID, sound,
	)
	return err
}
