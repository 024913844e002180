package queue

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRoundTrip(t *testing.T) {
	receiptID := uuid.New()

	body, err := EncodeMessage(receiptID)
	require.NoError(t, err)

	got, err := ParseMessage(string(body))
	require.NoError(t, err)
	assert.Equal(t, receiptID, got)
}

func TestParseMessage_IgnoresExtraFields(t *testing.T) {
	receiptID := uuid.New()
	body := `{"receiptId":"` + receiptID.String() + `","attempt":3,"source":"replay"}`

	got, err := ParseMessage(body)
	require.NoError(t, err)
	assert.Equal(t, receiptID, got)
}

func TestParseMessage_Poison(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "receipt 123"},
		{"empty body", ""},
		{"missing receipt id", `{"other":"field"}`},
		{"empty receipt id", `{"receiptId":""}`},
		{"receipt id not a uuid", `{"receiptId":"abc-123"}`},
		{"wrong type", `{"receiptId":42}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMessage(tc.body)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPoison))
		})
	}
}
