package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/gen/ent"
	"github.com/expenseworks/receipts-pipeline/gen/ent/receiptfile"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
)

// ClaimOutcome is the result of the atomic pending->processing claim.
type ClaimOutcome int

const (
	// Claimed: this worker now owns the receipt and must process it.
	Claimed ClaimOutcome = iota
	// SkippedTerminal: the receipt already finished; redelivery is a no-op.
	SkippedTerminal
	// SkippedInFlight: another worker holds a fresh processing claim.
	SkippedInFlight
)

type ReceiptFileRepository interface {
	// Create persists the pending row. It runs during ingestion, before the
	// queue message is sent, so a delivery can always resolve to a row.
	Create(ctx context.Context, jobID uuid.UUID, filename, storageKey string) (*entity.ReceiptFile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptFile, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.ReceiptFile, error)
	// ClaimProcessing performs one conditional update: pending->processing,
	// or a re-claim of a processing row last touched before staleBefore
	// (a worker that died mid-flight). Exactly one concurrent caller wins.
	ClaimProcessing(ctx context.Context, id uuid.UUID, staleBefore time.Time) (ClaimOutcome, *entity.ReceiptFile, error)
	MarkComplete(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
	// JobProgress aggregates in the database so it stays correct under
	// concurrent writers.
	JobProgress(ctx context.Context, jobID uuid.UUID) (entity.JobProgress, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type receiptFileRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptFileRepository(client *ent.Client, logger *slog.Logger) ReceiptFileRepository {
	return &receiptFileRepo{client: client, logger: logger}
}

func (r *receiptFileRepo) Create(ctx context.Context, jobID uuid.UUID, filename, storageKey string) (*entity.ReceiptFile, error) {
	builder := r.client.ReceiptFile.Create().
		SetJobID(jobID).
		SetStorageKey(storageKey)
	if filename != "" {
		builder = builder.SetOriginalFilename(filename)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("receipt create failed", "job_id", jobID, "filename", filename, "error", err)
		return nil, err
	}
	r.logger.Info("receipt created", "receipt_id", row.ID, "job_id", jobID, "storage_key", storageKey)
	return toReceiptFile(row), nil
}

func (r *receiptFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptFile, error) {
	row, err := r.client.ReceiptFile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("RECEIPT_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toReceiptFile(row), nil
}

func (r *receiptFileRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.ReceiptFile, error) {
	rows, err := r.client.ReceiptFile.Query().
		Where(receiptfile.JobID(jobID)).
		Order(ent.Asc(receiptfile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ReceiptFile, len(rows))
	for i, row := range rows {
		out[i] = toReceiptFile(row)
	}
	return out, nil
}

func (r *receiptFileRepo) ClaimProcessing(ctx context.Context, id uuid.UUID, staleBefore time.Time) (ClaimOutcome, *entity.ReceiptFile, error) {
	n, err := r.client.ReceiptFile.Update().
		Where(
			receiptfile.ID(id),
			receiptfile.Or(
				receiptfile.StatusEQ(string(constants.ReceiptPending)),
				receiptfile.And(
					receiptfile.StatusEQ(string(constants.ReceiptProcessing)),
					receiptfile.UpdatedAtLT(staleBefore),
				),
			),
		).
		SetStatus(string(constants.ReceiptProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("receipt claim failed", "receipt_id", id, "error", err)
		return SkippedInFlight, nil, err
	}

	row, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return SkippedInFlight, nil, getErr
	}

	if n == 1 {
		r.logger.Info("receipt claimed for processing", "receipt_id", id)
		return Claimed, row, nil
	}
	if row.Status.Terminal() {
		return SkippedTerminal, row, nil
	}
	// pending here means we lost a race with another claimer mid-update;
	// either way someone else is on it.
	return SkippedInFlight, row, nil
}

func (r *receiptFileRepo) MarkComplete(ctx context.Context, id uuid.UUID) error {
	return r.markTerminal(ctx, id, constants.ReceiptComplete, "")
}

func (r *receiptFileRepo) MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error {
	return r.markTerminal(ctx, id, constants.ReceiptFailed, errorMessage)
}

// markTerminal leaves processing only; the state machine is monotonic and a
// transition from any other state indicates a bug elsewhere in the pipeline.
func (r *receiptFileRepo) markTerminal(ctx context.Context, id uuid.UUID, status constants.ReceiptStatus, errorMessage string) error {
	builder := r.client.ReceiptFile.Update().
		Where(
			receiptfile.ID(id),
			receiptfile.StatusEQ(string(constants.ReceiptProcessing)),
		).
		SetStatus(string(status)).
		SetProcessedAt(time.Now().UTC())
	if errorMessage != "" {
		builder = builder.SetErrorMessage(errorMessage)
	}
	n, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("receipt terminal transition failed", "receipt_id", id, "status", string(status), "error", err)
		return err
	}
	if n == 0 {
		exists, exErr := r.client.ReceiptFile.Query().Where(receiptfile.ID(id)).Exist(ctx)
		if exErr != nil {
			return exErr
		}
		if !exists {
			return common.NewAppError("RECEIPT_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return common.NewAppError("RECEIPT_BAD_TRANSITION",
			"terminal transition on a receipt not in processing: "+id.String(), common.ErrInvariant)
	}
	r.logger.Info("receipt transitioned", "receipt_id", id, "status", string(status))
	return nil
}

func (r *receiptFileRepo) JobProgress(ctx context.Context, jobID uuid.UUID) (entity.JobProgress, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.client.ReceiptFile.Query().
		Where(receiptfile.JobID(jobID)).
		GroupBy(receiptfile.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("job progress query failed", "job_id", jobID, "error", err)
		return entity.JobProgress{}, err
	}

	var p entity.JobProgress
	for _, row := range rows {
		p.Total += row.Count
		switch constants.ReceiptStatus(row.Status) {
		case constants.ReceiptComplete:
			p.Processed += row.Count
		case constants.ReceiptFailed:
			p.Processed += row.Count
			p.Failed += row.Count
		}
	}
	return p, nil
}

func (r *receiptFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.ReceiptFile.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("RECEIPT_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.logger.Error("receipt delete failed", "receipt_id", id, "error", err)
		return err
	}
	r.logger.Info("receipt deleted", "receipt_id", id)
	return nil
}
