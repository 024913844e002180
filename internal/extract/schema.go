package extract

import (
	"github.com/expenseworks/receipts-pipeline/constants"
)

// BuildReceiptJSONSchema returns the wire contract for the model's output as
// a JSON-Schema (draft 2020-12 subset) generic map.
//
// strictDate selects the strict wire variant sent to the model: the date
// carries the YYYY-MM-DD pattern, the category is pinned to the enum, and
// every property is listed as required, pushing the model toward complete,
// well-formed output. Local validation relaxes all of that so off-shape
// values clamp during normalization instead of failing the extraction.
func BuildReceiptJSONSchema(strictDate bool) map[string]any {
	dateProp := map[string]any{"type": []string{"string", "null"}}
	catProp := map[string]any{"type": []string{"string", "null"}}
	if strictDate {
		dateProp = map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
		catProp = map[string]any{"type": "string", "enum": constants.Categories()}
	}

	props := map[string]any{
		"merchant":    map[string]any{"type": []string{"string", "null"}},
		"description": map[string]any{"type": []string{"string", "null"}},
		"date":        dateProp,
		"amount":      map[string]any{"type": "number"},
		"category":    catProp,
		// required to be PRESENT (possibly null): the model must make an
		// explicit choice rather than silently omit transport data.
		"transportDetails": map[string]any{
			"type": []string{"object", "null"},
			"properties": map[string]any{
				"mode": map[string]any{
					"type": []string{"string", "null"},
					"enum": append(toAnySlice(constants.TransportModes()), nil),
				},
				"mileage": map[string]any{"type": []string{"number", "null"}},
			},
			"required":             []string{"mode", "mileage"},
			"additionalProperties": false,
		},
	}

	// The strict (wire) contract requires every property so the model commits
	// to an explicit value for each. Local validation only insists on the
	// amount and the transportDetails key: everything else clamps during
	// normalization (absent merchant/description map to null, off-shape dates
	// empty out, unknown categories default to misc), not by rejection.
	required := []string{"amount", "transportDetails"}
	if strictDate {
		required = append(required, "merchant", "description", "date", "category")
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
