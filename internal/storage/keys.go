package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/constants"
)

// receiptKeyPrefix namespaces all receipt blobs in the bucket.
const receiptKeyPrefix = "receipts"

// BuildReceiptKey generates a fresh storage key for a normalized receipt
// image: receipts/<jobID>/<randomID>.<ext>. The random suffix decouples
// storage addressing from the relational id space and makes collisions
// across jobs and re-uploads impossible.
func BuildReceiptKey(jobID uuid.UUID, contentType string) string {
	ext := constants.ExtensionForMIME(contentType)
	return fmt.Sprintf("%s/%s/%s.%s", receiptKeyPrefix, jobID, uuid.New(), ext)
}

// JobKeyPrefix returns the listing prefix covering every blob stored for a
// job, for the reconciliation sweep.
func JobKeyPrefix(jobID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/", receiptKeyPrefix, jobID)
}

// KeyJobID recovers the job id segment from a receipt storage key.
func KeyJobID(key string) (uuid.UUID, bool) {
	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != receiptKeyPrefix {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
