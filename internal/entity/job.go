package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job represents an expense report job for data transfer between layers.
// Status is intentionally absent: it is derived from receipt counts via
// DeriveJobStatus and must never be cached on the row.
type Job struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
