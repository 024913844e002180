package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

// 1x1 transparent PNG
var tinyPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg==")

type fakeFiles struct {
	repository.ReceiptFileRepository
	receipts []*entity.ReceiptFile
}

func (f *fakeFiles) ListByJob(context.Context, uuid.UUID) ([]*entity.ReceiptFile, error) {
	return f.receipts, nil
}

type fakeExpenses struct {
	repository.ExpenseRepository
	byReceipt map[uuid.UUID]*entity.ExtractedExpense
}

func (f *fakeExpenses) GetCurrentByReceipt(_ context.Context, receiptID uuid.UUID) (*entity.ExtractedExpense, error) {
	e, ok := f.byReceipt[receiptID]
	if !ok {
		return nil, common.NewAppError("EXPENSE_NOT_FOUND", receiptID.String(), common.ErrNotFound)
	}
	return e, nil
}

type fakeStore struct {
	storage.Store
	blobs map[string][]byte
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := f.blobs[key]
	if !ok {
		return nil, common.NewAppError("OBJECT_NOT_FOUND", key, common.ErrNotFound)
	}
	return data, nil
}

func completedReceipt(jobID uuid.UUID, key string) *entity.ReceiptFile {
	return &entity.ReceiptFile{
		ID:               uuid.New(),
		JobID:            jobID,
		StorageKey:       key,
		OriginalFilename: "receipt.png",
		Status:           constants.ReceiptComplete,
	}
}

func TestExportJobXLSX(t *testing.T) {
	jobID := uuid.New()
	keyA := storage.BuildReceiptKey(jobID, constants.MIMEPNG)
	receiptA := completedReceipt(jobID, keyA)
	receiptB := &entity.ReceiptFile{
		ID:               uuid.New(),
		JobID:            jobID,
		StorageKey:       storage.BuildReceiptKey(jobID, constants.MIMEPNG),
		OriginalFilename: "blurry.png",
		Status:           constants.ReceiptFailed,
	}

	merchant := "Hotel Adler"
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	expenses := &fakeExpenses{byReceipt: map[uuid.UUID]*entity.ExtractedExpense{
		receiptA.ID: {
			ID:        uuid.New(),
			ReceiptID: receiptA.ID,
			Merchant:  &merchant,
			Date:      &date,
			Amount:    "248.50",
			Category:  constants.Hotel,
			IsCurrent: true,
		},
	}}
	files := &fakeFiles{receipts: []*entity.ReceiptFile{receiptA, receiptB}}
	store := &fakeStore{blobs: map[string][]byte{keyA: tinyPNG, receiptB.StorageKey: tinyPNG}}

	svc := NewService(files, expenses, store, false, slog.Default())
	out, err := svc.ExportJobXLSX(context.Background(), jobID)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per receipt")

	assert.Equal(t, []string{"Date", "Merchant", "Description", "Category", "Amount", "Status", "Receipt"}, rows[0])

	assert.Equal(t, "2025-03-14", rows[1][0])
	assert.Equal(t, "Hotel Adler", rows[1][1])
	assert.Equal(t, "hotel", rows[1][3])
	assert.Equal(t, "248.50", rows[1][4])
	assert.Equal(t, "complete", rows[1][5])

	assert.Equal(t, "failed", rows[2][5], "unprocessed receipts still appear with status")
}

func TestExportJobXLSX_EmbedsImages(t *testing.T) {
	jobID := uuid.New()
	key := storage.BuildReceiptKey(jobID, constants.MIMEPNG)
	receipt := completedReceipt(jobID, key)
	merchant := "Cafe"
	expenses := &fakeExpenses{byReceipt: map[uuid.UUID]*entity.ExtractedExpense{
		receipt.ID: {ID: uuid.New(), ReceiptID: receipt.ID, Merchant: &merchant, Amount: "9.50", Category: constants.Meals, IsCurrent: true},
	}}
	files := &fakeFiles{receipts: []*entity.ReceiptFile{receipt}}
	store := &fakeStore{blobs: map[string][]byte{key: tinyPNG}}

	svc := NewService(files, expenses, store, true, slog.Default())
	out, err := svc.ExportJobXLSX(context.Background(), jobID)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	pics, err := wb.GetPictures("Expenses", "G2")
	require.NoError(t, err)
	assert.NotEmpty(t, pics, "image anchored in the receipt column")
}

func TestExportJobXLSX_EmptyJob(t *testing.T) {
	svc := NewService(&fakeFiles{}, &fakeExpenses{}, &fakeStore{}, false, slog.Default())
	out, err := svc.ExportJobXLSX(context.Background(), uuid.New())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
