package constants

// ReceiptStatus is the canonical lifecycle state for rows in receipt_files.
type ReceiptStatus string

// Stable values (store these exact strings in DB).
const (
	ReceiptPending    ReceiptStatus = "pending"    // row created during ingestion, awaiting a worker
	ReceiptProcessing ReceiptStatus = "processing" // claimed by a worker
	ReceiptComplete   ReceiptStatus = "complete"   // terminal: extracted expense persisted
	ReceiptFailed     ReceiptStatus = "failed"     // terminal: classified extraction failure
)

// Terminal reports whether no further transitions may leave the state.
func (s ReceiptStatus) Terminal() bool {
	return s == ReceiptComplete || s == ReceiptFailed
}

// ReceiptStatuses lists every allowed receipt status value.
func ReceiptStatuses() []string {
	return []string{
		string(ReceiptPending),
		string(ReceiptProcessing),
		string(ReceiptComplete),
		string(ReceiptFailed),
	}
}

// JobStatus is the displayed status of an expense report job. It is derived
// from receipt counts (see entity.DeriveJobStatus), never stored.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobComplete   JobStatus = "complete"
	JobFailed     JobStatus = "failed"
)
