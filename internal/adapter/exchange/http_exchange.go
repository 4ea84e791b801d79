// Package exchange adapts an external conversion venue to the engine's
// AssetExchange port over HTTP.
package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client converts value between assets through an external exchange service.
// The conversion is opaque: the engine only trusts the amount reported back.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates an exchange client.
func NewClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type convertRequest struct {
	From   domain.AssetID   `json:"from"`
	To     domain.AssetID   `json:"to"`
	Amount int64            `json:"amount"`
	Path   []domain.AssetID `json:"path,omitempty"`
}

type convertResponse struct {
	Received int64 `json:"received"`
}

// Convert swaps amount of from into to along an optional routing path and
// returns the amount actually received.
func (c *Client) Convert(ctx context.Context, from, to domain.AssetID, amount int64, path []domain.AssetID) (int64, error) {
	body, err := json.Marshal(convertRequest{From: from, To: to, Amount: amount, Path: path})
	if err != nil {
		return 0, fmt.Errorf("marshal convert request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/convert", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build convert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("exchange convert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().Int("status", resp.StatusCode).
			Str("from", string(from)).Str("to", string(to)).
			Msg("exchange rejected conversion")
		return 0, fmt.Errorf("exchange convert: status %d: %s", resp.StatusCode, raw)
	}

	var out convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode convert response: %w", err)
	}
	if out.Received < 0 {
		return 0, fmt.Errorf("exchange reported negative received amount %d", out.Received)
	}
	return out.Received, nil
}
