package worker

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
	"github.com/expenseworks/receipts-pipeline/internal/extract"
	"github.com/expenseworks/receipts-pipeline/internal/queue"
)

func sqsRecord(t *testing.T, messageID string, receipt *entity.ReceiptFile) events.SQSMessage {
	t.Helper()
	body, err := queue.EncodeMessage(receipt.ID)
	require.NoError(t, err)
	return events.SQSMessage{MessageId: messageID, Body: string(body)}
}

func TestHandleSQSEvent_AllSucceed(t *testing.T) {
	files := newMemFiles()
	a := files.add(constants.ReceiptPending, time.Now())
	b := files.add(constants.ReceiptPending, time.Now())
	proc := newTestProcessor(files, newMemExpenses(), storeFor(files), &stubExtractor{fields: goodFields()})
	h := NewHandler(proc, slog.Default(), WithConcurrency(2))

	resp, err := h.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		sqsRecord(t, "m1", a),
		sqsRecord(t, "m2", b),
	}})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)
	assert.Equal(t, constants.ReceiptComplete, files.rows[a.ID].Status)
	assert.Equal(t, constants.ReceiptComplete, files.rows[b.ID].Status)
}

func TestHandleSQSEvent_PartialBatchFailure(t *testing.T) {
	files := newMemFiles()
	bad := files.add(constants.ReceiptPending, time.Now())
	done := files.add(constants.ReceiptComplete, time.Now())

	// every extraction fails transiently; the already-terminal record and the
	// poison record must settle anyway
	exFail := &stubExtractor{err: errors.New("openai status 503")}
	proc := newTestProcessor(files, newMemExpenses(), storeFor(files), exFail)
	h := NewHandler(proc, slog.Default())
	resp, err := h.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		sqsRecord(t, "m-done", done),
		{MessageId: "m-poison", Body: "not json at all"},
		sqsRecord(t, "m-retry", bad),
	}})
	require.NoError(t, err)

	require.Len(t, resp.BatchItemFailures, 1, "only the retryable record comes back")
	assert.Equal(t, "m-retry", resp.BatchItemFailures[0].ItemIdentifier)
}

func TestHandleSQSEvent_PoisonIsSettled(t *testing.T) {
	files := newMemFiles()
	proc := newTestProcessor(files, newMemExpenses(), &blobStore{}, &stubExtractor{})
	h := NewHandler(proc, slog.Default())

	resp, err := h.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "p1", Body: `{"receiptId":"not-a-uuid"}`},
		{MessageId: "p2", Body: ""},
	}})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures, "poison never redelivers")
}

func TestHandleSQSEvent_PanicBecomesItemFailure(t *testing.T) {
	files := newMemFiles()
	receipt := files.add(constants.ReceiptPending, time.Now())
	proc := newTestProcessor(files, newMemExpenses(), storeFor(files), panicExtractor{})
	h := NewHandler(proc, slog.Default())

	resp, err := h.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		sqsRecord(t, "m1", receipt),
	}})
	require.NoError(t, err, "a panic must not kill the whole batch")
	require.Len(t, resp.BatchItemFailures, 1)
	assert.Equal(t, "m1", resp.BatchItemFailures[0].ItemIdentifier)
}

func TestHandleSQSEvent_EmptyBatch(t *testing.T) {
	proc := newTestProcessor(newMemFiles(), newMemExpenses(), &blobStore{}, &stubExtractor{})
	h := NewHandler(proc, slog.Default())

	resp, err := h.HandleSQSEvent(context.Background(), events.SQSEvent{})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)
}

type panicExtractor struct{}

func (panicExtractor) Extract(context.Context, []byte) (extract.ReceiptFields, []byte, error) {
	panic("extractor blew up")
}
