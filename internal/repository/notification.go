package repository

import (
	"context"

	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/models"
)

// notificationCap bounds the stored log per user; oldest rows are discarded
// on insert once the cap is reached.
const notificationCap = 50

type NotificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Insert appends a notification and trims the user's log back to the cap.
func (r *NotificationRepository) Insert(ctx context.Context, n *models.Notification) error {
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO notifications (user_id, message, read, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING notification_id`,
		n.UserID, n.Message, n.Read, n.CreatedAt,
	).Scan(&n.NotificationID)
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx,
		`DELETE FROM notifications WHERE user_id = $1 AND notification_id NOT IN (
			SELECT notification_id FROM notifications
			WHERE user_id = $1
			ORDER BY created_at DESC, notification_id DESC
			LIMIT $2
		)`,
		n.UserID, notificationCap,
	)
	return err
}

// ListRecent returns up to limit notifications, newest first.
func (r *NotificationRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]*models.Notification, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT notification_id, user_id, message, read, created_at
		 FROM notifications WHERE user_id = $1
		 ORDER BY created_at DESC, notification_id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.NotificationID, &n.UserID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`,
		userID,
	)
	return err
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`,
		userID,
	).Scan(&count)
	return count, err
}
