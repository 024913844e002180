package queue

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/internal/common"
)

// Enqueuer is the send-side capability the ingestion coordinator depends on.
// The dequeue side is driven by the queue runtime, not by this codebase.
type Enqueuer interface {
	Enqueue(ctx context.Context, receiptID uuid.UUID) error
}

// Client enqueues processing messages onto SQS.
type Client struct {
	sqs      *sqs.Client
	queueURL string
	group    string
	logger   *slog.Logger
}

func NewClient(sqsc *sqs.Client, queueURL, messageGroup string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		sqs:      sqsc,
		queueURL: queueURL,
		group:    messageGroup,
		logger:   logger,
	}
}

// Enqueue sends the processing message for a receipt. Callers must have
// persisted the receipt row first so delivery can always resolve to a row.
func (c *Client) Enqueue(ctx context.Context, receiptID uuid.UUID) error {
	body, err := EncodeMessage(receiptID)
	if err != nil {
		return common.WrapError(err, "encode message")
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(c.queueURL),
		MessageBody: aws.String(string(body)),
	}
	if c.group != "" {
		// FIFO queue: dedup on receipt id guards against double-submits
		// from the upload UI.
		input.MessageGroupId = aws.String(c.group)
		input.MessageDeduplicationId = aws.String(receiptID.String())
	}

	if _, err := c.sqs.SendMessage(ctx, input); err != nil {
		c.logger.Error("queue.enqueue failed", "receipt_id", receiptID, "error", err)
		return common.WrapError(err, "send message")
	}
	c.logger.Info("queue.enqueue ok", "receipt_id", receiptID)
	return nil
}
