package domain

import "time"

type ChatMessage struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
