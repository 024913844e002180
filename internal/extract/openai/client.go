package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/internal/extract"
)

// Extract implements extract.Extractor over vision chat/completions.
// The image travels as a base64 data URL; the strict wire schema travels
// alongside the prompt so the model commits to the contract shape.
func (c *Client) Extract(ctx context.Context, image []byte) (extract.ReceiptFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	mime := mimetype.Detect(image).String()
	c.logger.Info("extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"image_bytes", len(image),
		"image_mime", mime,
	)

	wireSchema := extract.BuildReceiptJSONSchema(true)
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(image))

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt + "\n\nJSON Schema:\n" + mustJSON(wireSchema)},
			{"role": "user", "content": []map[string]any{
				{"type": "image_url", "image_url": map[string]any{
					"url":    dataURL,
					"detail": "auto",
				}},
			}},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.logger.Error("extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ReceiptFields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ReceiptFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ReceiptFields{}, raw, fmt.Errorf("no choices in openai response")
	}

	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))
	fields, err := c.classify(content)
	if err != nil {
		c.logger.Error("extract.rejected",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ReceiptFields{}, content, err
	}

	c.logger.Info("extract.ok",
		"req_id", rid,
		"date", fields.Date,
		"amount", fields.Amount,
		"category", string(fields.Category),
		"has_transport", fields.Transport != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, content, nil
}

// classify turns the model's content into ReceiptFields or a classified
// extraction error (invalid JSON, schema violation, empty response).
func (c *Client) classify(content []byte) (extract.ReceiptFields, error) {
	if len(content) == 0 {
		return extract.ReceiptFields{}, &extract.Error{Kind: extract.KindEmptyResponse, Msg: "model returned no content"}
	}
	if !json.Valid(content) {
		return extract.ReceiptFields{}, &extract.Error{Kind: extract.KindInvalidJSON, Msg: "model returned invalid JSON"}
	}
	// Relaxed local validation: date and category violations are handled by
	// normalization clamps, everything else is a terminal schema violation.
	if err := extract.ValidateJSONAgainstSchema(extract.BuildReceiptJSONSchema(false), content); err != nil {
		return extract.ReceiptFields{}, &extract.Error{Kind: extract.KindSchemaViolation, Msg: "schema validation failed", Cause: err}
	}
	return extract.NormalizeFields(content)
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

const systemPrompt = `Extract only structured JSON with: merchant (if present), description, date, amount, and category (if present). ` +
	`Date should be yyyy-mm-dd format. ` +
	`If category is "transport", include the "transportDetails" object in your output, and fill mode (if present) and mileage (if present); otherwise set transportDetails to null. ` +
	`Never hallucinate. Return null rather than guessing an output. ` +
	`Return ONLY JSON that matches the JSON Schema provided.`

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
