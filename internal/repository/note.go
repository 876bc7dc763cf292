package repository

import (
	"context"

	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/models"
)

type NoteRepository struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content, color) VALUES ($1, $2, $3, $4)
		 RETURNING note_id, created_at`,
		note.UserID, note.Title, note.Content, note.Color,
	).Scan(&note.NoteID, &note.CreatedAt)
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT note_id, user_id, title, content, color, created_at
		 FROM notes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content,
			&note.Color, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) Delete(ctx context.Context, noteID int64, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM notes WHERE note_id = $1 AND user_id = $2`,
		noteID, userID,
	)
	return err
}
