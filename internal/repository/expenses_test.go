package repository

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/gen/ent"
	"github.com/expenseworks/receipts-pipeline/gen/ent/extractedexpense"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/extract"
)

func expenseParams(receiptID uuid.UUID, amount string) CreateExpenseParams {
	merchant := "Hotel Adler"
	return CreateExpenseParams{
		ReceiptID: receiptID,
		Fields: extract.ReceiptFields{
			Merchant: &merchant,
			Date:     "2025-03-14",
			Amount:   amount,
			Category: constants.Hotel,
		},
		RawJSON:      []byte(`{"merchant":"Hotel Adler","amount":248.5}`),
		ModelVersion: "gpt-4o-mini",
	}
}

func seedProcessedReceipt(t *testing.T, client *ent.Client) uuid.UUID {
	t.Helper()
	job := seedJob(t, client)
	files := NewReceiptFileRepository(client, slog.Default())
	return seedReceipt(t, files, job.ID).ID
}

func TestExpense_CreateCurrent(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	expenses := NewExpenseRepository(client, slog.Default())
	receiptID := seedProcessedReceipt(t, client)

	created, err := expenses.CreateCurrent(ctx, expenseParams(receiptID, "248.50"))
	require.NoError(t, err)
	assert.True(t, created.IsCurrent)
	assert.Equal(t, "248.50", created.Amount)
	assert.Equal(t, constants.Hotel, created.Category)
	require.NotNil(t, created.Date)
	assert.Equal(t, "2025-03-14", created.Date.Format("2006-01-02"))
	assert.NotEmpty(t, created.RawJSON)

	got, err := expenses.GetCurrentByReceipt(ctx, receiptID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestExpense_DuplicateCurrentIsInvariant(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	expenses := NewExpenseRepository(client, slog.Default())
	receiptID := seedProcessedReceipt(t, client)

	_, err := expenses.CreateCurrent(ctx, expenseParams(receiptID, "10.00"))
	require.NoError(t, err)

	_, err = expenses.CreateCurrent(ctx, expenseParams(receiptID, "20.00"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvariant),
		"the partial unique index allows exactly one current row")
}

func TestExpense_GetCurrent_NotFound(t *testing.T) {
	client := newTestClient(t)
	expenses := NewExpenseRepository(client, slog.Default())

	_, err := expenses.GetCurrentByReceipt(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
}

func TestExpense_Supersede(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	expenses := NewExpenseRepository(client, slog.Default())
	receiptID := seedProcessedReceipt(t, client)

	first, err := expenses.CreateCurrent(ctx, expenseParams(receiptID, "10.00"))
	require.NoError(t, err)

	second, err := expenses.Supersede(ctx, expenseParams(receiptID, "12.00"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	current, err := expenses.GetCurrentByReceipt(ctx, receiptID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "12.00", current.Amount)

	// the old row survives as history, no longer current
	total, err := client.ExtractedExpense.Query().
		Where(extractedexpense.ReceiptID(receiptID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	currentCount, err := client.ExtractedExpense.Query().
		Where(extractedexpense.ReceiptID(receiptID), extractedexpense.IsCurrent(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, currentCount)
}

func TestExpense_UpdateCurrent(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	expenses := NewExpenseRepository(client, slog.Default())
	receiptID := seedProcessedReceipt(t, client)

	_, err := expenses.CreateCurrent(ctx, expenseParams(receiptID, "10.00"))
	require.NoError(t, err)

	merchant := "Corrected Merchant"
	amount := "15.75"
	category := string(constants.Meals)
	updated, err := expenses.UpdateCurrent(ctx, receiptID, ExpenseUpdate{
		Merchant: &merchant,
		Amount:   &amount,
		Category: &category,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Merchant)
	assert.Equal(t, merchant, *updated.Merchant)
	assert.Equal(t, "15.75", updated.Amount)
	assert.Equal(t, constants.Meals, updated.Category)
	assert.True(t, updated.IsCurrent)

	_, err = expenses.UpdateCurrent(ctx, uuid.New(), ExpenseUpdate{Merchant: &merchant})
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
}

func TestExpense_TransportDetailsRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	expenses := NewExpenseRepository(client, slog.Default())
	receiptID := seedProcessedReceipt(t, client)

	mode := "train"
	mileage := 120.0
	params := expenseParams(receiptID, "35.00")
	params.Fields.Category = constants.Transport
	params.Fields.Transport = &extract.TransportDetails{Mode: &mode, Mileage: &mileage}

	created, err := expenses.CreateCurrent(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, created.Transport)
	require.NotNil(t, created.Transport.Mode)
	assert.Equal(t, "train", *created.Transport.Mode)
	require.NotNil(t, created.Transport.Mileage)
	assert.Equal(t, 120.0, *created.Transport.Mileage)
}
