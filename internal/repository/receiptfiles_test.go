package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/gen/ent"
	"github.com/expenseworks/receipts-pipeline/gen/ent/enttest"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedJob(t *testing.T, client *ent.Client) *entity.Job {
	t.Helper()
	job, err := NewJobRepository(client, slog.Default()).Create(context.Background(), uuid.New(), "Trip expenses")
	require.NoError(t, err)
	return job
}

func seedReceipt(t *testing.T, files ReceiptFileRepository, jobID uuid.UUID) *entity.ReceiptFile {
	t.Helper()
	r, err := files.Create(context.Background(), jobID, "receipt.jpg",
		fmt.Sprintf("receipts/%s/%s.jpg", jobID, uuid.New()))
	require.NoError(t, err)
	require.Equal(t, constants.ReceiptPending, r.Status)
	return r
}

func TestReceiptFile_ClaimLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	files := NewReceiptFileRepository(client, slog.Default())
	job := seedJob(t, client)
	receipt := seedReceipt(t, files, job.ID)
	staleBefore := time.Now().Add(-10 * time.Minute)

	outcome, claimed, err := files.ClaimProcessing(ctx, receipt.ID, staleBefore)
	require.NoError(t, err)
	assert.Equal(t, Claimed, outcome)
	assert.Equal(t, constants.ReceiptProcessing, claimed.Status)

	outcome, _, err = files.ClaimProcessing(ctx, receipt.ID, staleBefore)
	require.NoError(t, err)
	assert.Equal(t, SkippedInFlight, outcome, "a fresh claim must not be stolen")

	require.NoError(t, files.MarkComplete(ctx, receipt.ID))

	outcome, row, err := files.ClaimProcessing(ctx, receipt.ID, staleBefore)
	require.NoError(t, err)
	assert.Equal(t, SkippedTerminal, outcome)
	assert.Equal(t, constants.ReceiptComplete, row.Status)
	assert.NotNil(t, row.ProcessedAt)
}

func TestReceiptFile_StaleClaimIsReclaimed(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	files := NewReceiptFileRepository(client, slog.Default())
	job := seedJob(t, client)
	receipt := seedReceipt(t, files, job.ID)

	outcome, _, err := files.ClaimProcessing(ctx, receipt.ID, time.Now().Add(-10*time.Minute))
	require.NoError(t, err)
	require.Equal(t, Claimed, outcome)

	// a staleBefore in the future makes the fresh claim look abandoned
	outcome, row, err := files.ClaimProcessing(ctx, receipt.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, Claimed, outcome, "abandoned claims are taken over")
	assert.Equal(t, constants.ReceiptProcessing, row.Status)
}

func TestReceiptFile_MarkFailedRecordsMessage(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	files := NewReceiptFileRepository(client, slog.Default())
	job := seedJob(t, client)
	receipt := seedReceipt(t, files, job.ID)

	_, _, err := files.ClaimProcessing(ctx, receipt.ID, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, files.MarkFailed(ctx, receipt.ID, "schema validation failed"))

	row, err := files.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ReceiptFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "schema validation failed", *row.ErrorMessage)
	assert.NotNil(t, row.ProcessedAt)
}

func TestReceiptFile_TerminalFromPendingIsInvariant(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	files := NewReceiptFileRepository(client, slog.Default())
	job := seedJob(t, client)
	receipt := seedReceipt(t, files, job.ID)

	err := files.MarkComplete(ctx, receipt.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvariant))

	err = files.MarkComplete(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
}

func TestReceiptFile_TerminalStatesAreFinal(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	files := NewReceiptFileRepository(client, slog.Default())
	job := seedJob(t, client)
	receipt := seedReceipt(t, files, job.ID)

	_, _, err := files.ClaimProcessing(ctx, receipt.ID, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, files.MarkComplete(ctx, receipt.ID))

	err = files.MarkFailed(ctx, receipt.ID, "too late")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvariant), "complete never becomes failed")
}

func TestReceiptFile_JobProgress(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	files := NewReceiptFileRepository(client, slog.Default())
	job := seedJob(t, client)
	staleBefore := time.Now().Add(-time.Minute)

	// two complete, one failed, one still pending
	for i := 0; i < 2; i++ {
		r := seedReceipt(t, files, job.ID)
		_, _, err := files.ClaimProcessing(ctx, r.ID, staleBefore)
		require.NoError(t, err)
		require.NoError(t, files.MarkComplete(ctx, r.ID))
	}
	failed := seedReceipt(t, files, job.ID)
	_, _, err := files.ClaimProcessing(ctx, failed.ID, staleBefore)
	require.NoError(t, err)
	require.NoError(t, files.MarkFailed(ctx, failed.ID, "unreadable"))
	seedReceipt(t, files, job.ID)

	progress, err := files.JobProgress(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobProgress{Total: 4, Processed: 3, Failed: 1}, progress)
	assert.Equal(t, constants.JobProcessing, entity.DeriveJobStatus(progress))

	empty, err := files.JobProgress(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.JobProgress{}, empty)
}

func TestReceiptFile_ListByJob(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	files := NewReceiptFileRepository(client, slog.Default())
	jobA := seedJob(t, client)
	jobB := seedJob(t, client)

	seedReceipt(t, files, jobA.ID)
	seedReceipt(t, files, jobA.ID)
	seedReceipt(t, files, jobB.ID)

	rows, err := files.ListByJob(ctx, jobA.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestJob_DeleteCascadesToReceipts(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	jobs := NewJobRepository(client, slog.Default())
	files := NewReceiptFileRepository(client, slog.Default())
	job := seedJob(t, client)
	receipt := seedReceipt(t, files, job.ID)

	require.NoError(t, jobs.Delete(ctx, job.ID))

	_, err := files.GetByID(ctx, receipt.ID)
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
}
