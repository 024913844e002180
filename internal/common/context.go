package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyMessageID contextKey = "message_id"
	ContextKeyReceiptID contextKey = "receipt_id"
)

// WithMessageID tags the context with the queue message being handled.
func WithMessageID(ctx context.Context, messageID string) context.Context {
	return context.WithValue(ctx, ContextKeyMessageID, messageID)
}

// MessageIDFromContext extracts the queue message ID from context
func MessageIDFromContext(ctx context.Context) string {
	if messageID, ok := ctx.Value(ContextKeyMessageID).(string); ok {
		return messageID
	}
	return ""
}

// WithReceiptID tags the context with the receipt being processed.
func WithReceiptID(ctx context.Context, receiptID string) context.Context {
	return context.WithValue(ctx, ContextKeyReceiptID, receiptID)
}

// ReceiptIDFromContext extracts the receipt ID from context
func ReceiptIDFromContext(ctx context.Context) string {
	if receiptID, ok := ctx.Value(ContextKeyReceiptID).(string); ok {
		return receiptID
	}
	return ""
}
