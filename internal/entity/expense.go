package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/constants"
)

// TransportDetails is the transport sub-object, present only when the
// expense category is "transport".
type TransportDetails struct {
	Mode    *string  `json:"mode"`
	Mileage *float64 `json:"mileage"`
}

// ExtractedExpense represents the structured result of extracting one
// receipt, for data transfer between layers. Amount is decimal text.
type ExtractedExpense struct {
	ID           uuid.UUID          `json:"id"`
	ReceiptID    uuid.UUID          `json:"receipt_id"`
	Merchant     *string            `json:"merchant,omitempty"`
	Description  *string            `json:"description,omitempty"`
	Date         *time.Time         `json:"date,omitempty"`
	Amount       string             `json:"amount"`
	Category     constants.Category `json:"category"`
	Transport    *TransportDetails  `json:"transport_details,omitempty"`
	RawJSON      json.RawMessage    `json:"raw_json,omitempty"`
	ModelVersion string             `json:"model_version"`
	IsCurrent    bool               `json:"is_current"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
