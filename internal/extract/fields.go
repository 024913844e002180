package extract

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expenseworks/receipts-pipeline/constants"
)

// wireReceipt is the raw shape the model returns, before normalization.
type wireReceipt struct {
	Merchant    *string           `json:"merchant"`
	Description *string           `json:"description"`
	Date        *string           `json:"date"`
	Amount      json.Number       `json:"amount"`
	Category    string            `json:"category"`
	Transport   *TransportDetails `json:"transportDetails"`
}

// dateLayouts are tried in order when the model strays from calendar form.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
}

// NormalizeFields maps validated wire JSON into ReceiptFields, applying the
// clamp rules: transport details are dropped unless category is transport,
// unparsable dates become empty rather than an error, an absent category
// becomes misc, and the amount is normalized to two-place decimal text.
func NormalizeFields(raw []byte) (ReceiptFields, error) {
	var w wireReceipt
	if err := json.Unmarshal(raw, &w); err != nil {
		return ReceiptFields{}, newError(KindInvalidJSON, "unmarshal fields", err)
	}

	amount, err := normalizeAmount(w.Amount)
	if err != nil {
		return ReceiptFields{}, newError(KindSchemaViolation, "amount is not a decimal", err)
	}

	category, _ := constants.Canonicalize(w.Category)

	out := ReceiptFields{
		Merchant:    emptyToNil(w.Merchant),
		Description: emptyToNil(w.Description),
		Date:        normalizeDate(w.Date),
		Amount:      amount,
		Category:    category,
	}

	// Clamp against model noise: transport details only make sense for
	// transport expenses, whatever the raw output contained.
	if category == constants.Transport {
		out.Transport = normalizeTransport(w.Transport)
	}

	return out, nil
}

// normalizeDate clamps the model's date string to strict YYYY-MM-DD calendar
// form. Unparsable input yields "" — never an error and never a garbage
// passthrough.
func normalizeDate(raw *string) string {
	if raw == nil {
		return ""
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// normalizeAmount renders the wire number as exact two-place decimal text.
// Currency must never round-trip through a binary float.
func normalizeAmount(n json.Number) (string, error) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return "", fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", err
	}
	return d.Round(2).StringFixed(2), nil
}

func normalizeTransport(t *TransportDetails) *TransportDetails {
	if t == nil {
		return nil
	}
	out := &TransportDetails{Mileage: t.Mileage}
	if t.Mode != nil && constants.ValidTransportMode(*t.Mode) {
		out.Mode = t.Mode
	}
	return out
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
