package repository

import (
	"encoding/json"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/gen/ent"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
)

func toJob(j *ent.Job) *entity.Job {
	return &entity.Job{
		ID:        j.ID,
		UserID:    j.UserID,
		Title:     j.Title,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

func toReceiptFile(r *ent.ReceiptFile) *entity.ReceiptFile {
	out := &entity.ReceiptFile{
		ID:           r.ID,
		JobID:        r.JobID,
		StorageKey:   r.StorageKey,
		Status:       constants.ReceiptStatus(r.Status),
		ErrorMessage: r.ErrorMessage,
		ProcessedAt:  r.ProcessedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.OriginalFilename != nil {
		out.OriginalFilename = *r.OriginalFilename
	}
	return out
}

func toExpense(e *ent.ExtractedExpense) *entity.ExtractedExpense {
	out := &entity.ExtractedExpense{
		ID:           e.ID,
		ReceiptID:    e.ReceiptID,
		Merchant:     e.Merchant,
		Description:  e.Description,
		Date:         e.Date,
		Amount:       e.Amount,
		Category:     constants.Category(e.Category),
		RawJSON:      e.RawJSON,
		ModelVersion: e.ModelVersion,
		IsCurrent:    e.IsCurrent,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if len(e.TransportDetails) > 0 {
		var t entity.TransportDetails
		if err := json.Unmarshal(e.TransportDetails, &t); err == nil {
			out.Transport = &t
		}
	}
	return out
}
