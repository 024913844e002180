package receipts

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

// StatusView is the client-facing snapshot of one receipt.
type StatusView struct {
	ReceiptID    uuid.UUID               `json:"receipt_id"`
	Status       constants.ReceiptStatus `json:"status"`
	ErrorMessage *string                 `json:"error_message,omitempty"`
	ProcessedAt  *time.Time              `json:"processed_at,omitempty"`
}

// JobOverview rolls the per-receipt states up into one job-level answer.
type JobOverview struct {
	JobID    uuid.UUID           `json:"job_id"`
	Status   constants.JobStatus `json:"status"`
	Progress entity.JobProgress  `json:"progress"`
}

// Service covers the read and delete surface for receipts and jobs.
type Service struct {
	jobs   repository.JobRepository
	files  repository.ReceiptFileRepository
	store  storage.Store
	urlTTL time.Duration
	logger *slog.Logger
}

func NewService(
	jobs repository.JobRepository,
	files repository.ReceiptFileRepository,
	store storage.Store,
	urlTTL time.Duration,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if urlTTL <= 0 {
		urlTTL = 15 * time.Minute
	}
	return &Service{jobs: jobs, files: files, store: store, urlTTL: urlTTL, logger: logger}
}

// Status returns the current state of one receipt.
func (s *Service) Status(ctx context.Context, receiptID uuid.UUID) (*StatusView, error) {
	receipt, err := s.files.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	return &StatusView{
		ReceiptID:    receipt.ID,
		Status:       receipt.Status,
		ErrorMessage: receipt.ErrorMessage,
		ProcessedAt:  receipt.ProcessedAt,
	}, nil
}

// Overview derives the job-level status from the receipt counts. The job
// itself stores no status column, so this is always consistent with the rows.
func (s *Service) Overview(ctx context.Context, jobID uuid.UUID) (*JobOverview, error) {
	if exists, err := s.jobs.Exists(ctx, jobID); err != nil {
		return nil, err
	} else if !exists {
		return nil, common.NotFoundError("job not found: " + jobID.String())
	}

	progress, err := s.files.JobProgress(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &JobOverview{
		JobID:    jobID,
		Status:   entity.DeriveJobStatus(progress),
		Progress: progress,
	}, nil
}

// ImageURL returns a short-lived signed URL for the stored receipt image.
func (s *Service) ImageURL(ctx context.Context, receiptID uuid.UUID) (string, error) {
	receipt, err := s.files.GetByID(ctx, receiptID)
	if err != nil {
		return "", err
	}
	return s.store.SignedReadURL(ctx, receipt.StorageKey, s.urlTTL)
}

// Delete removes the receipt row and its expense history, and best-effort
// deletes the stored image. A storage failure is logged, not returned: the
// row deletion is the source of truth and the sweep collects leftovers.
func (s *Service) Delete(ctx context.Context, receiptID uuid.UUID) error {
	receipt, err := s.files.GetByID(ctx, receiptID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, receipt.StorageKey); err != nil {
		s.logger.Warn("failed to delete stored image, leaving for sweep",
			"receipt_id", receiptID, "storage_key", receipt.StorageKey, "error", err)
	}

	if err := s.files.Delete(ctx, receiptID); err != nil {
		return common.WrapError(err, "delete receipt row")
	}
	s.logger.Info("receipt deleted", "receipt_id", receiptID, "job_id", receipt.JobID)
	return nil
}
