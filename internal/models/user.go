package models

import "time"

type User struct {
	UserID    int64     `json:"user_id"`
	FullName  string    `json:"full_name"`
	Banned    bool      `json:"banned"`
	CreatedAt time.Time `json:"created_at"`
}
