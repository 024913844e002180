package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseworks/receipts-pipeline/constants"
)

func strptr(s string) *string { return &s }

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestNormalizeFields_Amounts(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"integer gains decimals", `{"merchant":"A","amount":12,"category":"meals"}`, "12.00", false},
		{"one place padded", `{"merchant":"A","amount":12.5,"category":"meals"}`, "12.50", false},
		{"three places rounded", `{"merchant":"A","amount":12.505,"category":"meals"}`, "12.51", false},
		{"large totals unchanged", `{"merchant":"A","amount":1234.56,"category":"meals"}`, "1234.56", false},
		{"missing amount rejected", `{"merchant":"A","category":"meals"}`, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields, err := NormalizeFields([]byte(tc.raw))
			if tc.wantErr {
				require.Error(t, err)
				var exErr *Error
				require.True(t, errors.As(err, &exErr))
				assert.Equal(t, KindSchemaViolation, exErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, fields.Amount)
		})
	}
}

func TestNormalizeFields_Dates(t *testing.T) {
	tests := []struct {
		name string
		date *string
		want string
	}{
		{"canonical form kept", strptr("2025-03-14"), "2025-03-14"},
		{"slash form converted", strptr("2025/03/14"), "2025-03-14"},
		{"us form converted", strptr("03/14/2025"), "2025-03-14"},
		{"prose form converted", strptr("Mar 14, 2025"), "2025-03-14"},
		{"unparsable clamped to empty", strptr("not-a-date"), ""},
		{"garbage digits clamped", strptr("14-03"), ""},
		{"null stays empty", nil, ""},
		{"whitespace stays empty", strptr("   "), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := wireReceipt{Amount: "10", Category: "meals", Date: tc.date}
			raw := marshal(t, w)
			fields, err := NormalizeFields(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fields.Date)
		})
	}
}

func TestNormalizeFields_CategoryFallback(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  constants.Category
	}{
		{"exact enum value", "hotel", constants.Hotel},
		{"synonym mapped", "taxi", constants.Transport},
		{"case folded", "MEALS", constants.Meals},
		{"unknown label defaults", "spaceship rental", constants.Misc},
		{"empty defaults", "", constants.Misc},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := wireReceipt{Amount: "10", Category: tc.label}
			fields, err := NormalizeFields(marshal(t, w))
			require.NoError(t, err)
			assert.Equal(t, tc.want, fields.Category)
		})
	}
}

func TestNormalizeFields_TransportClamp(t *testing.T) {
	mode := "train"
	mileage := 42.5

	t.Run("details kept for transport category", func(t *testing.T) {
		w := wireReceipt{Amount: "10", Category: "transport", Transport: &TransportDetails{Mode: &mode, Mileage: &mileage}}
		fields, err := NormalizeFields(marshal(t, w))
		require.NoError(t, err)
		require.NotNil(t, fields.Transport)
		assert.Equal(t, "train", *fields.Transport.Mode)
		assert.Equal(t, 42.5, *fields.Transport.Mileage)
	})

	t.Run("details dropped for other categories", func(t *testing.T) {
		w := wireReceipt{Amount: "10", Category: "hotel", Transport: &TransportDetails{Mode: &mode}}
		fields, err := NormalizeFields(marshal(t, w))
		require.NoError(t, err)
		assert.Nil(t, fields.Transport)
	})

	t.Run("invalid mode dropped, mileage kept", func(t *testing.T) {
		bad := "rocket"
		w := wireReceipt{Amount: "10", Category: "transport", Transport: &TransportDetails{Mode: &bad, Mileage: &mileage}}
		fields, err := NormalizeFields(marshal(t, w))
		require.NoError(t, err)
		require.NotNil(t, fields.Transport)
		assert.Nil(t, fields.Transport.Mode)
		assert.Equal(t, 42.5, *fields.Transport.Mileage)
	})
}

func TestNormalizeFields_EmptyStringsBecomeNil(t *testing.T) {
	raw := `{"merchant":"","description":"  ","amount":5,"category":"meals"}`
	fields, err := NormalizeFields([]byte(raw))
	require.NoError(t, err)
	assert.Nil(t, fields.Merchant)
	assert.Nil(t, fields.Description)
}

func TestNormalizeFields_InvalidJSON(t *testing.T) {
	_, err := NormalizeFields([]byte("merchant: hotel"))
	require.Error(t, err)
	var exErr *Error
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, KindInvalidJSON, exErr.Kind)
	assert.True(t, Classified(err))
}
