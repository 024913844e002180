package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/gen/ent"
	"github.com/expenseworks/receipts-pipeline/gen/ent/extractedexpense"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
	"github.com/expenseworks/receipts-pipeline/internal/extract"
)

// CreateExpenseParams wraps everything the worker persists on success.
type CreateExpenseParams struct {
	ReceiptID    uuid.UUID
	Fields       extract.ReceiptFields
	RawJSON      []byte
	ModelVersion string
}

// ExpenseUpdate carries user-driven corrections to the current row.
// Nil pointers leave the field untouched.
type ExpenseUpdate struct {
	Merchant    *string
	Description *string
	Date        *time.Time
	Amount      *string
	Category    *string
	Transport   *entity.TransportDetails
}

type ExpenseRepository interface {
	// CreateCurrent inserts the first (and, on the automated path, only)
	// current row for a receipt. A second current row trips the partial
	// unique index and is surfaced as an invariant violation.
	CreateCurrent(ctx context.Context, p CreateExpenseParams) (*entity.ExtractedExpense, error)
	GetCurrentByReceipt(ctx context.Context, receiptID uuid.UUID) (*entity.ExtractedExpense, error)
	// Supersede flips the old current row off and inserts the replacement
	// inside one transaction, keeping prior rows as immutable history.
	Supersede(ctx context.Context, p CreateExpenseParams) (*entity.ExtractedExpense, error)
	// UpdateCurrent mutates the current row in place (manual correction).
	UpdateCurrent(ctx context.Context, receiptID uuid.UUID, upd ExpenseUpdate) (*entity.ExtractedExpense, error)
}

type expenseRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExpenseRepository(client *ent.Client, logger *slog.Logger) ExpenseRepository {
	return &expenseRepo{client: client, logger: logger}
}

func (r *expenseRepo) CreateCurrent(ctx context.Context, p CreateExpenseParams) (*entity.ExtractedExpense, error) {
	row, err := r.buildCreate(r.client, p).Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			r.logger.Error("duplicate current expense", "receipt_id", p.ReceiptID, "error", err)
			return nil, common.NewAppError("EXPENSE_DUPLICATE_CURRENT",
				"a current expense already exists for receipt "+p.ReceiptID.String(), common.ErrInvariant)
		}
		r.logger.Error("expense create failed", "receipt_id", p.ReceiptID, "error", err)
		return nil, err
	}
	r.logger.Info("expense created", "expense_id", row.ID, "receipt_id", p.ReceiptID, "model", p.ModelVersion)
	return toExpense(row), nil
}

func (r *expenseRepo) GetCurrentByReceipt(ctx context.Context, receiptID uuid.UUID) (*entity.ExtractedExpense, error) {
	row, err := r.client.ExtractedExpense.Query().
		Where(
			extractedexpense.ReceiptID(receiptID),
			extractedexpense.IsCurrent(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("EXPENSE_NOT_FOUND", receiptID.String(), common.ErrNotFound)
		}
		if ent.IsNotSingular(err) {
			return nil, common.NewAppError("EXPENSE_MULTIPLE_CURRENT",
				"more than one current expense for receipt "+receiptID.String(), common.ErrInvariant)
		}
		return nil, err
	}
	return toExpense(row), nil
}

func (r *expenseRepo) Supersede(ctx context.Context, p CreateExpenseParams) (*entity.ExtractedExpense, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExtractedExpense.Update().
		Where(
			extractedexpense.ReceiptID(p.ReceiptID),
			extractedexpense.IsCurrent(true),
		).
		SetIsCurrent(false).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("expense supersede flip failed", "receipt_id", p.ReceiptID, "error", err)
		return nil, err
	}

	row, err := r.buildCreate(tx.Client(), p).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("expense supersede insert failed", "receipt_id", p.ReceiptID, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("expense superseded", "expense_id", row.ID, "receipt_id", p.ReceiptID)
	return toExpense(row), nil
}

func (r *expenseRepo) UpdateCurrent(ctx context.Context, receiptID uuid.UUID, upd ExpenseUpdate) (*entity.ExtractedExpense, error) {
	current, err := r.GetCurrentByReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	builder := r.client.ExtractedExpense.UpdateOneID(current.ID).
		SetNillableMerchant(upd.Merchant).
		SetNillableDescription(upd.Description).
		SetNillableDate(upd.Date)
	if upd.Amount != nil {
		builder = builder.SetAmount(*upd.Amount)
	}
	if upd.Category != nil {
		builder = builder.SetCategory(*upd.Category)
	}
	if upd.Transport != nil {
		b, mErr := json.Marshal(upd.Transport)
		if mErr != nil {
			return nil, mErr
		}
		builder = builder.SetTransportDetails(b)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("expense update failed", "receipt_id", receiptID, "error", err)
		return nil, err
	}
	return toExpense(row), nil
}

func (r *expenseRepo) buildCreate(client *ent.Client, p CreateExpenseParams) *ent.ExtractedExpenseCreate {
	f := p.Fields
	builder := client.ExtractedExpense.Create().
		SetReceiptID(p.ReceiptID).
		SetNillableMerchant(f.Merchant).
		SetNillableDescription(f.Description).
		SetAmount(f.Amount).
		SetCategory(string(f.Category)).
		SetModelVersion(p.ModelVersion).
		SetIsCurrent(true)

	// Date arrives normalized to calendar form or empty; empty stays null.
	if f.Date != "" {
		if d, err := time.Parse("2006-01-02", f.Date); err == nil {
			builder = builder.SetDate(d)
		}
	}
	if f.Transport != nil {
		if b, err := json.Marshal(f.Transport); err == nil {
			builder = builder.SetTransportDetails(b)
		}
	}
	if len(p.RawJSON) > 0 {
		builder = builder.SetRawJSON(p.RawJSON)
	}
	return builder
}
