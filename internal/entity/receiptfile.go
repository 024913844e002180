package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/constants"
)

// ReceiptFile represents one uploaded receipt image for data transfer
// between layers.
type ReceiptFile struct {
	ID               uuid.UUID               `json:"id"`
	JobID            uuid.UUID               `json:"job_id"`
	StorageKey       string                  `json:"storage_key"`
	OriginalFilename string                  `json:"original_filename,omitempty"`
	Status           constants.ReceiptStatus `json:"status"`
	ErrorMessage     *string                 `json:"error_message,omitempty"`
	ProcessedAt      *time.Time              `json:"processed_at,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}
