package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/internal/extract"
)

// tiny but valid JPEG header so mime sniffing resolves to image/jpeg
var fakeImage = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func completionResponse(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
	}, nil)
}

func TestExtract_Success(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		content := `{"merchant":"Hotel Adler","description":"2 nights","date":"2025-03-14","amount":248.5,"category":"hotel","transportDetails":null}`
		_, _ = w.Write([]byte(completionResponse(content)))
	})

	fields, raw, err := client.Extract(context.Background(), fakeImage)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])

	require.NotNil(t, fields.Merchant)
	assert.Equal(t, "Hotel Adler", *fields.Merchant)
	assert.Equal(t, "2025-03-14", fields.Date)
	assert.Equal(t, "248.50", fields.Amount)
	assert.Equal(t, constants.Hotel, fields.Category)
	assert.Nil(t, fields.Transport)
	assert.True(t, json.Valid(raw))
}

func TestExtract_InvalidJSONContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionResponse("the receipt shows a hotel stay")))
	})

	_, _, err := client.Extract(context.Background(), fakeImage)
	require.Error(t, err)
	require.True(t, extract.Classified(err))

	var exErr *extract.Error
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, extract.KindInvalidJSON, exErr.Kind)
}

func TestExtract_SchemaViolation(t *testing.T) {
	// transportDetails omitted entirely; the contract demands an explicit value
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		content := `{"merchant":"Cafe","description":null,"date":"2025-01-01","amount":9.5,"category":"meals"}`
		_, _ = w.Write([]byte(completionResponse(content)))
	})

	_, _, err := client.Extract(context.Background(), fakeImage)
	require.Error(t, err)
	require.True(t, extract.Classified(err))

	var exErr *extract.Error
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, extract.KindSchemaViolation, exErr.Kind)
}

func TestExtract_EmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionResponse("   ")))
	})

	_, _, err := client.Extract(context.Background(), fakeImage)
	require.Error(t, err)

	var exErr *extract.Error
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, extract.KindEmptyResponse, exErr.Kind)
}

func TestExtract_ServerErrorIsNotClassified(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, _, err := client.Extract(context.Background(), fakeImage)
	require.Error(t, err)
	assert.False(t, extract.Classified(err), "transport failures must stay retryable")
}

func TestExtract_NoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, _, err := client.Extract(context.Background(), fakeImage)
	require.Error(t, err)
	assert.False(t, extract.Classified(err))
}
