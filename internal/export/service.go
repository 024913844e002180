package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	// image decoders for embedded receipt pictures
	_ "image/jpeg"
	_ "image/png"

	"log/slog"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

// Service produces XLSX bytes for an expense job: one row per completed
// receipt, with the original image embedded next to its extracted fields.
type Service struct {
	files       repository.ReceiptFileRepository
	expenses    repository.ExpenseRepository
	store       storage.Store
	embedImages bool
	logger      *slog.Logger
}

func NewService(
	files repository.ReceiptFileRepository,
	expenses repository.ExpenseRepository,
	store storage.Store,
	embedImages bool,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		files:       files,
		expenses:    expenses,
		store:       store,
		embedImages: embedImages,
		logger:      logger,
	}
}

// ExportJobXLSX returns an XLSX workbook for the given job. Receipts that
// are not complete yet appear with their status instead of expense fields,
// so a partial export is still an honest snapshot.
func (s *Service) ExportJobXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	start := time.Now()

	receipts, err := s.files.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Expenses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Date",
		"Merchant",
		"Description",
		"Category",
		"Amount",
		"Status",
		"Receipt",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range receipts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(6, string(r.Status))

		if r.Status == constants.ReceiptComplete {
			expense, err := s.expenses.GetCurrentByReceipt(ctx, r.ID)
			switch {
			case common.IsNotFound(err):
				// Complete without a current expense should not happen;
				// export what exists rather than failing the workbook.
				s.logger.Warn("complete receipt has no current expense", "receipt_id", r.ID)
			case err != nil:
				return nil, fmt.Errorf("load expense for receipt %s: %w", r.ID, err)
			default:
				if expense.Date != nil {
					write(1, expense.Date.Format("2006-01-02"))
				}
				if expense.Merchant != nil {
					write(2, *expense.Merchant)
				}
				if expense.Description != nil {
					write(3, *expense.Description)
				}
				write(4, string(expense.Category))
				write(5, expense.Amount)
			}
		}

		if s.embedImages {
			if err := s.embedReceipt(ctx, f, sheet, row, r.StorageKey); err != nil {
				s.logger.Warn("skipping image embed", "receipt_id", r.ID, "error", err)
				write(7, r.OriginalFilename)
			}
		} else {
			write(7, r.OriginalFilename)
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 40)
	_ = f.SetColWidth(sheet, "D", "D", 16)
	_ = f.SetColWidth(sheet, "E", "F", 12)
	_ = f.SetColWidth(sheet, "G", "G", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"job_id", jobID.String(),
		"rows", len(receipts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// embedReceipt anchors the stored image into the Receipt column of the row.
func (s *Service) embedReceipt(ctx context.Context, f *excelize.File, sheet string, row int, key string) error {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}

	ext := filepath.Ext(key)
	if ext == "" {
		ext = ".jpeg"
	}
	cell, _ := excelize.CoordinatesToCellName(7, row)
	scale := 0.25
	return f.AddPictureFromBytes(sheet, cell, &excelize.Picture{
		Extension: ext,
		File:      data,
		Format: &excelize.GraphicOptions{
			ScaleX:          scale,
			ScaleY:          scale,
			LockAspectRatio: true,
			Positioning:     "oneCell",
		},
	})
}
