package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		exact bool
	}{
		{"meals", Meals, true},
		{"Meals", Meals, true},
		{"  HOTEL  ", Hotel, true},
		{"tolls/parking", TollsParking, true},
		{"parking", TollsParking, true},
		{"taxi", Transport, true},
		{"gas", Fuel, true},
		{"restaurant", Meals, true},
		{"stationery", Supplies, true},
		{"groceries", Misc, false},
		{"", Misc, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, exact := Canonicalize(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.exact, exact)
		})
	}
}

func TestReceiptStatusTerminal(t *testing.T) {
	assert.False(t, ReceiptPending.Terminal())
	assert.False(t, ReceiptProcessing.Terminal())
	assert.True(t, ReceiptComplete.Terminal())
	assert.True(t, ReceiptFailed.Terminal())
}

func TestAllowedUpload(t *testing.T) {
	for _, ct := range []string{MIMEJPEG, MIMEPNG, MIMEWebP, MIMEHEIC, MIMEHEIF} {
		assert.True(t, AllowedUpload(ct), ct)
	}
	for _, ct := range []string{"application/pdf", "image/gif", "text/plain", ""} {
		assert.False(t, AllowedUpload(ct), ct)
	}
}

func TestExtensionForMIME(t *testing.T) {
	assert.Equal(t, "jpg", ExtensionForMIME(MIMEJPEG))
	assert.Equal(t, "png", ExtensionForMIME(MIMEPNG))
	assert.Equal(t, "webp", ExtensionForMIME(MIMEWebP))
	assert.Equal(t, "img", ExtensionForMIME("application/octet-stream"))
}
