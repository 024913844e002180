package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

// Sweeper removes stored objects that no receipt row references. Orphans
// appear when ingestion stores the blob but fails before the row commits,
// or when a row deletion loses its best-effort blob delete.
type Sweeper struct {
	jobs   repository.JobRepository
	files  repository.ReceiptFileRepository
	store  storage.Store
	grace  time.Duration
	dryRun bool
	logger *slog.Logger
}

// SweepReport totals one sweep run.
type SweepReport struct {
	Scanned int
	Orphans int
	Deleted int
}

func NewSweeper(
	jobs repository.JobRepository,
	files repository.ReceiptFileRepository,
	store storage.Store,
	grace time.Duration,
	dryRun bool,
	logger *slog.Logger,
) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	if grace <= 0 {
		grace = time.Hour
	}
	return &Sweeper{jobs: jobs, files: files, store: store, grace: grace, dryRun: dryRun, logger: logger}
}

// SweepJob compares stored objects under the job's prefix against the keys
// referenced by its receipt rows. Objects newer than the grace window stay:
// they may belong to an ingestion still in flight.
func (s *Sweeper) SweepJob(ctx context.Context, jobID uuid.UUID) (SweepReport, error) {
	var report SweepReport

	receipts, err := s.files.ListByJob(ctx, jobID)
	if err != nil {
		return report, err
	}
	referenced := make(map[string]struct{}, len(receipts))
	for _, r := range receipts {
		referenced[r.StorageKey] = struct{}{}
	}

	objects, err := s.store.ListKeys(ctx, storage.JobKeyPrefix(jobID))
	if err != nil {
		return report, err
	}

	cutoff := time.Now().Add(-s.grace)
	for _, obj := range objects {
		report.Scanned++
		if _, ok := referenced[obj.Key]; ok {
			continue
		}
		if obj.LastModified.After(cutoff) {
			continue
		}
		report.Orphans++
		if s.dryRun {
			s.logger.Info("orphaned object found (dry run)", "job_id", jobID, "key", obj.Key)
			continue
		}
		if err := s.store.Delete(ctx, obj.Key); err != nil {
			s.logger.Error("failed to delete orphaned object", "job_id", jobID, "key", obj.Key, "error", err)
			continue
		}
		report.Deleted++
		s.logger.Info("orphaned object deleted", "job_id", jobID, "key", obj.Key)
	}
	return report, nil
}

// SweepAll runs SweepJob for every job. Per-job failures are logged and
// skipped so one bad job never stalls the whole sweep.
func (s *Sweeper) SweepAll(ctx context.Context) (SweepReport, error) {
	var total SweepReport

	ids, err := s.jobs.ListIDs(ctx)
	if err != nil {
		return total, err
	}
	for _, id := range ids {
		report, err := s.SweepJob(ctx, id)
		if err != nil {
			s.logger.Error("job sweep failed", "job_id", id, "error", err)
			continue
		}
		total.Scanned += report.Scanned
		total.Orphans += report.Orphans
		total.Deleted += report.Deleted
	}
	s.logger.Info("sweep complete",
		"jobs", len(ids), "scanned", total.Scanned, "orphans", total.Orphans, "deleted", total.Deleted)
	return total, nil
}
