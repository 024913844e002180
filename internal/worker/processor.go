package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/extract"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

// Processor runs the asynchronous half of the pipeline for one receipt:
// claim, fetch blob, extract, persist, resolve status. It is safe to call
// any number of times for the same receipt; duplicate deliveries resolve
// to no-ops at the claim gate.
type Processor struct {
	files        repository.ReceiptFileRepository
	expenses     repository.ExpenseRepository
	store        storage.Store
	extractor    extract.Extractor
	staleAfter   time.Duration
	modelVersion string
	logger       *slog.Logger
}

func NewProcessor(
	files repository.ReceiptFileRepository,
	expenses repository.ExpenseRepository,
	store storage.Store,
	extractor extract.Extractor,
	staleAfter time.Duration,
	modelVersion string,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		files:        files,
		expenses:     expenses,
		store:        store,
		extractor:    extractor,
		staleAfter:   staleAfter,
		modelVersion: modelVersion,
		logger:       logger,
	}
}

// Process handles a single delivery. The error return decides redelivery:
// nil means the message is settled (including permanent failures, which are
// recorded on the row instead), non-nil means the delivery should retry.
func (p *Processor) Process(ctx context.Context, receiptID uuid.UUID) error {
	logger := p.logger.With("receipt_id", receiptID)

	if _, err := p.files.GetByID(ctx, receiptID); err != nil {
		if common.IsNotFound(err) {
			// The row was deleted after enqueue. Nothing to do, and
			// redelivering cannot help.
			logger.Warn("receipt row missing, dropping message")
			return nil
		}
		return common.WrapError(err, "load receipt")
	}

	outcome, receipt, err := p.files.ClaimProcessing(ctx, receiptID, time.Now().Add(-p.staleAfter))
	if err != nil {
		return common.WrapError(err, "claim receipt")
	}
	switch outcome {
	case repository.SkippedTerminal:
		logger.Info("receipt already settled, dropping duplicate delivery")
		return nil
	case repository.SkippedInFlight:
		logger.Info("receipt held by another worker, dropping delivery")
		return nil
	}

	image, err := p.store.Get(ctx, receipt.StorageKey)
	if err != nil {
		if common.IsNotFound(err) {
			// The blob is gone for good; retrying cannot recover it.
			return p.fail(ctx, logger, receiptID, "stored image missing: "+receipt.StorageKey)
		}
		return common.WrapError(err, "fetch stored image")
	}

	fields, raw, err := p.extractor.Extract(ctx, image)
	if err != nil {
		if extract.Classified(err) {
			var exErr *extract.Error
			errors.As(err, &exErr)
			logger.Warn("extraction rejected receipt", "kind", exErr.Kind, "error", err)
			return p.fail(ctx, logger, receiptID, exErr.Error())
		}
		// Transient (network, rate limit, 5xx): leave the row in processing
		// and let the redelivery re-claim it after the stale window.
		return common.WrapError(err, "extract receipt fields")
	}

	if _, err := p.expenses.CreateCurrent(ctx, repository.CreateExpenseParams{
		ReceiptID:    receiptID,
		Fields:       fields,
		RawJSON:      raw,
		ModelVersion: p.modelVersion,
	}); err != nil {
		if errors.Is(err, common.ErrInvariant) {
			// A current expense already exists; a previous attempt persisted
			// it but died before marking the row complete. Finish that work.
			logger.Warn("current expense already present, completing receipt")
			return common.WrapError(p.files.MarkComplete(ctx, receiptID), "mark complete")
		}
		return common.WrapError(err, "persist expense")
	}

	if err := p.files.MarkComplete(ctx, receiptID); err != nil {
		return common.WrapError(err, "mark complete")
	}
	logger.Info("receipt processed")
	return nil
}

// fail records a permanent failure on the row and settles the message.
func (p *Processor) fail(ctx context.Context, logger *slog.Logger, receiptID uuid.UUID, reason string) error {
	if err := p.files.MarkFailed(ctx, receiptID, reason); err != nil {
		return common.WrapError(err, "mark failed")
	}
	logger.Info("receipt marked failed", "reason", reason)
	return nil
}
