package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/expenseworks/receipts-pipeline/constants"
)

func TestDeriveJobStatus(t *testing.T) {
	tests := []struct {
		name     string
		progress JobProgress
		want     constants.JobStatus
	}{
		{"no receipts yet", JobProgress{}, constants.JobPending},
		{"nothing processed", JobProgress{Total: 3, Processed: 0}, constants.JobProcessing},
		{"partially processed", JobProgress{Total: 3, Processed: 2, Failed: 1}, constants.JobProcessing},
		{"all complete", JobProgress{Total: 3, Processed: 3}, constants.JobComplete},
		{"all processed with one failure", JobProgress{Total: 3, Processed: 3, Failed: 1}, constants.JobFailed},
		{"all failed", JobProgress{Total: 2, Processed: 2, Failed: 2}, constants.JobFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveJobStatus(tc.progress))
		})
	}
}
