package queue

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrPoison marks a message body that can never be processed: not JSON, or
// no usable receipt id. Poison messages are failed once, never retried.
var ErrPoison = errors.New("poison message")

// Message is the processing message body. Only ReceiptID is read; extra
// fields may be present and are ignored.
type Message struct {
	ReceiptID string `json:"receiptId"`
}

// EncodeMessage renders the queue body for a receipt.
func EncodeMessage(receiptID uuid.UUID) ([]byte, error) {
	return json.Marshal(Message{ReceiptID: receiptID.String()})
}

// ParseMessage extracts the receipt id from a message body.
func ParseMessage(body string) (uuid.UUID, error) {
	var m Message
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		return uuid.Nil, fmt.Errorf("%w: body is not JSON: %v", ErrPoison, err)
	}
	if m.ReceiptID == "" {
		return uuid.Nil, fmt.Errorf("%w: missing receiptId", ErrPoison)
	}
	id, err := uuid.Parse(m.ReceiptID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: receiptId is not a UUID: %v", ErrPoison, err)
	}
	return id, nil
}
