package ingest

import (
	"context"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
	"github.com/expenseworks/receipts-pipeline/internal/imaging"
	"github.com/expenseworks/receipts-pipeline/internal/queue"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

// Upload is one file submitted through the request path.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Result is the per-file outcome of a batch ingestion.
type Result struct {
	Filename string
	Receipt  *entity.ReceiptFile
	Err      error
}

// ImageNormalizer is the normalization capability the coordinator depends on.
type ImageNormalizer interface {
	Normalize(ctx context.Context, data []byte, contentType string) (imaging.NormalizedImage, error)
}

// Coordinator is the synchronous half of the pipeline: it validates, normalizes,
// stores, persists, and enqueues one uploaded file at a time.
type Coordinator struct {
	jobs       repository.JobRepository
	files      repository.ReceiptFileRepository
	store      storage.Store
	enqueuer   queue.Enqueuer
	normalizer ImageNormalizer
	logger     *slog.Logger
}

func NewCoordinator(
	jobs repository.JobRepository,
	files repository.ReceiptFileRepository,
	store storage.Store,
	enqueuer queue.Enqueuer,
	normalizer ImageNormalizer,
	logger *slog.Logger,
) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		jobs:       jobs,
		files:      files,
		store:      store,
		enqueuer:   enqueuer,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Ingest runs the full sequence for one file. Each step is a hard dependency
// on the previous one succeeding:
//
//	validate -> normalize -> store -> create row -> enqueue
//
// Content-type validation happens before any storage or normalization work.
// An upload that fails after the blob is stored but before the row commits
// leaves an orphaned object; the reconciliation sweep collects those.
func (c *Coordinator) Ingest(ctx context.Context, jobID uuid.UUID, up Upload) (*entity.ReceiptFile, error) {
	if err := c.validate(up); err != nil {
		c.logger.Warn("upload rejected", "job_id", jobID, "filename", up.Filename, "error", err)
		return nil, err
	}

	normalized, err := c.normalizer.Normalize(ctx, up.Data, up.ContentType)
	if err != nil {
		c.logger.Error("normalize failed", "job_id", jobID, "filename", up.Filename, "error", err)
		return nil, common.WrapError(err, "normalize image")
	}

	key := storage.BuildReceiptKey(jobID, normalized.ContentType)
	if err := c.store.Put(ctx, key, normalized.ContentType, normalized.Data); err != nil {
		return nil, common.WrapError(err, "store image")
	}

	receipt, err := c.files.Create(ctx, jobID, up.Filename, key)
	if err != nil {
		// The stored object is orphaned here; acceptable collateral, the
		// sweep reclaims it.
		return nil, common.WrapError(err, "create receipt row")
	}

	if err := c.enqueuer.Enqueue(ctx, receipt.ID); err != nil {
		c.logger.Error("enqueue failed after row creation; receipt stays pending",
			"receipt_id", receipt.ID, "job_id", jobID, "error", err)
		return receipt, common.WrapError(err, "enqueue processing message")
	}

	c.logger.Info("receipt ingested",
		"receipt_id", receipt.ID, "job_id", jobID,
		"filename", up.Filename, "storage_key", key,
	)
	return receipt, nil
}

// IngestBatch runs Ingest for each file independently: one file's failure
// never blocks or rolls back its siblings.
func (c *Coordinator) IngestBatch(ctx context.Context, jobID uuid.UUID, ups []Upload) ([]Result, error) {
	if exists, err := c.jobs.Exists(ctx, jobID); err != nil {
		return nil, err
	} else if !exists {
		return nil, common.NotFoundError("job not found: " + jobID.String())
	}

	results := make([]Result, 0, len(ups))
	for _, up := range ups {
		receipt, err := c.Ingest(ctx, jobID, up)
		results = append(results, Result{Filename: up.Filename, Receipt: receipt, Err: err})
	}
	return results, nil
}

// validate enforces the upload allow-list on both the declared content type
// and the sniffed bytes, before any I/O happens.
func (c *Coordinator) validate(up Upload) error {
	if len(up.Data) == 0 {
		return common.InvalidArgumentError("empty file")
	}
	if !constants.AllowedUpload(up.ContentType) {
		return common.InvalidArgumentErrorf("unsupported content type: %q", up.ContentType)
	}
	if sniffed := mimetype.Detect(up.Data); !constants.AllowedUpload(sniffed.String()) {
		return common.InvalidArgumentErrorf("file content is %s, not an accepted image type", sniffed.String())
	}
	return nil
}
