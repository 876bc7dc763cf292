package repository

import (
	"context"

	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetOrCreate(ctx context.Context, userID int64, fullName string) (*models.User, error) {
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO users (user_id, full_name) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET full_name = EXCLUDED.full_name
		 RETURNING user_id, full_name, banned, created_at`,
		userID, fullName,
	).Scan(&user.UserID, &user.FullName, &user.Banned, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT user_id, full_name, banned, created_at FROM users WHERE user_id = $1`,
		userID,
	).Scan(&user.UserID, &user.FullName, &user.Banned, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListActive returns every user the reminder loop should consider. Banned
// users are excluded here so the tick never alerts them.
func (r *UserRepository) ListActive(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT user_id, full_name, banned, created_at FROM users WHERE banned = FALSE ORDER BY user_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.UserID, &user.FullName, &user.Banned, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT user_id, full_name, banned, created_at FROM users ORDER BY user_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.UserID, &user.FullName, &user.Banned, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) SetBanned(ctx context.Context, userID int64, banned bool) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE users SET banned = $1 WHERE user_id = $2`,
		banned, userID,
	)
	return err
}
