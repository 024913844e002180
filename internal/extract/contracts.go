package extract

import (
	"context"

	"github.com/expenseworks/receipts-pipeline/constants"
)

// TransportDetails mirrors the wire sub-object. The worker persists it only
// when category is "transport"; NormalizeFields clamps it otherwise.
type TransportDetails struct {
	Mode    *string  `json:"mode"`
	Mileage *float64 `json:"mileage"`
}

// ReceiptFields is the normalized shape the pipeline persists.
// Absent model values stay nil; they are never guessed. The two exceptions
// are deliberate: Category defaults to misc, and an unparsable Date clamps
// to empty rather than failing the extraction.
type ReceiptFields struct {
	Merchant    *string            `json:"merchant"`
	Description *string            `json:"description"`
	Date        string             `json:"date"`   // YYYY-MM-DD, or "" when unparsable
	Amount      string             `json:"amount"` // decimal text, two places
	Category    constants.Category `json:"category"`
	Transport   *TransportDetails  `json:"transportDetails"`
}

// Extractor is the capability interface the worker depends on. Alternative
// extraction strategies (other models, test fakes) plug in here.
// The raw response bytes come back alongside the fields for audit storage.
type Extractor interface {
	Extract(ctx context.Context, image []byte) (ReceiptFields, []byte, error)
}
