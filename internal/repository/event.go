package repository

import (
	"context"

	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/models"
)

type EventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *models.CalendarEvent) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO calendar_events (user_id, day_key, time_of_day, text, has_reminder)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING event_id, created_at`,
		event.UserID, event.DayKey, event.TimeOfDay, event.Text, event.HasReminder,
	).Scan(&event.EventID, &event.CreatedAt)
}

func (r *EventRepository) ListForDay(ctx context.Context, userID int64, dayKey string) ([]*models.CalendarEvent, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT event_id, user_id, day_key, time_of_day, text, has_reminder, created_at
		 FROM calendar_events WHERE user_id = $1 AND day_key = $2
		 ORDER BY time_of_day, event_id`,
		userID, dayKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.CalendarEvent
	for rows.Next() {
		event := &models.CalendarEvent{}
		if err := rows.Scan(&event.EventID, &event.UserID, &event.DayKey, &event.TimeOfDay,
			&event.Text, &event.HasReminder, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepository) Delete(ctx context.Context, eventID int64, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM calendar_events WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	)
	return err
}
