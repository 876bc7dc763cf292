package models

import "time"

type Note struct {
	NoteID    int64     `json:"note_id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"` // optional rainbow color tag, empty if unset
	CreatedAt time.Time `json:"created_at"`
}
