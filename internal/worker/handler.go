package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/queue"
)

// Handler turns an SQS batch into Processor calls and reports per-record
// outcomes. Records that fail with retryable errors come back as batch item
// failures so only they are redelivered; the rest of the batch settles.
type Handler struct {
	proc    *Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

type Option func(*Handler)

func WithConcurrency(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.workers = n
		}
	}
}
func WithRecordTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

func NewHandler(proc *Processor, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

type recordResult struct {
	messageID string
	retry     bool
}

// HandleSQSEvent processes every record in the batch with bounded
// concurrency. Records are independent; one failure never fails the batch.
func (h *Handler) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	records := make(chan events.SQSMessage, len(event.Records))
	results := make(chan recordResult, len(event.Records))

	workers := h.workers
	if workers > len(event.Records) {
		workers = len(event.Records)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for record := range records {
				results <- recordResult{
					messageID: record.MessageId,
					retry:     h.handleRecord(ctx, workerID, record),
				}
			}
		}(i + 1)
	}

	for _, record := range event.Records {
		records <- record
	}
	close(records)
	wg.Wait()
	close(results)

	var resp events.SQSEventResponse
	for res := range results {
		if res.retry {
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: res.messageID,
			})
		}
	}
	return resp, nil
}

// handleRecord reports whether the record should be redelivered.
func (h *Handler) handleRecord(ctx context.Context, workerID int, record events.SQSMessage) (retry bool) {
	logger := h.logger.With("worker_id", workerID, "message_id", record.MessageId)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic while processing record", "panic", fmt.Sprintf("%v", r))
			retry = true
		}
	}()

	receiptID, err := queue.ParseMessage(record.Body)
	if err != nil {
		// Poison: the body can never parse, so redelivery is pure waste.
		logger.Error("dropping malformed message", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	ctx = common.WithMessageID(ctx, record.MessageId)
	ctx = common.WithReceiptID(ctx, receiptID.String())

	if err := h.proc.Process(ctx, receiptID); err != nil {
		logger.Error("processing failed, scheduling redelivery", "receipt_id", receiptID, "error", err)
		return true
	}
	return false
}

// ParseReceiptID is a convenience for one-off invocations outside SQS,
// such as a manual replay from the CLI.
func ParseReceiptID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, common.WrapError(err, "parse receipt id")
	}
	return id, nil
}
