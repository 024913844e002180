package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptSchema_RelaxedValidation(t *testing.T) {
	schema := BuildReceiptJSONSchema(false)

	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			"full well-formed output",
			`{"merchant":"Cafe","description":null,"date":"2025-01-01","amount":9.5,"category":"meals","transportDetails":null}`,
			true,
		},
		{
			"date and category may be absent locally",
			`{"merchant":"Cafe","description":null,"amount":9.5,"transportDetails":null}`,
			true,
		},
		{
			"merchant and description may be absent locally",
			`{"amount":9.5,"category":"meals","transportDetails":null}`,
			true,
		},
		{
			"non-enum category passes locally for canonicalization",
			`{"merchant":"City Cabs","description":null,"amount":18,"category":"taxi","transportDetails":null}`,
			true,
		},
		{
			"off-shape date passes locally and clamps later",
			`{"merchant":"Cafe","description":null,"date":"sometime in March","amount":9.5,"category":"meals","transportDetails":null}`,
			true,
		},
		{
			"missing amount fails",
			`{"merchant":"Cafe","description":null,"transportDetails":null}`,
			false,
		},
		{
			"non-numeric amount fails",
			`{"merchant":"Cafe","description":null,"amount":"9.50","transportDetails":null}`,
			false,
		},
		{
			"transportDetails must be present",
			`{"merchant":"Cafe","description":null,"amount":9.5}`,
			false,
		},
		{
			"unknown extra property fails",
			`{"merchant":"Cafe","description":null,"amount":9.5,"transportDetails":null,"tip":2}`,
			false,
		},
		{
			"transport object with both keys",
			`{"merchant":null,"description":null,"amount":30,"category":"transport","transportDetails":{"mode":"train","mileage":null}}`,
			true,
		},
		{
			"transport object missing mileage fails",
			`{"merchant":null,"description":null,"amount":30,"category":"transport","transportDetails":{"mode":"train"}}`,
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tc.payload))
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestReceiptSchema_StrictRequiresDateAndCategory(t *testing.T) {
	schema := BuildReceiptJSONSchema(true)

	missingDate := `{"merchant":"Cafe","description":null,"amount":9.5,"category":"meals","transportDetails":null}`
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(missingDate)))

	offShapeDate := `{"merchant":"Cafe","description":null,"date":"March 3rd","amount":9.5,"category":"meals","transportDetails":null}`
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(offShapeDate)))

	full := `{"merchant":"Cafe","description":null,"date":"2025-03-03","amount":9.5,"category":"meals","transportDetails":null}`
	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(full)))
}
