package entity

import (
	"github.com/expenseworks/receipts-pipeline/constants"
)

// JobProgress is the per-job aggregate over receipt statuses.
// Processed counts receipts in a terminal state (complete or failed).
type JobProgress struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// DeriveJobStatus computes the displayed job status from receipt counts.
// It is a pure function: job status is never persisted, so it can never
// drift from the receipts table.
func DeriveJobStatus(p JobProgress) constants.JobStatus {
	switch {
	case p.Total == 0:
		return constants.JobPending
	case p.Processed < p.Total:
		return constants.JobProcessing
	case p.Failed > 0:
		return constants.JobFailed
	default:
		return constants.JobComplete
	}
}
