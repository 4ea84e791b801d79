// Package callback isolates the execution of untrusted merchant callbacks.
// The executor holds no funds and has no access to custody state; everything
// it can do is bounded by the HTTP surface defined here.
package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"escrow-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Executor implements ports.CallbackExecutor over HTTP. Targets are base
// URLs; selectors name the entry point invoked under the target.
type Executor struct {
	httpClient       HTTPClient
	maxResponseBytes int64
	log              zerolog.Logger
}

// NewExecutor creates a callback executor. maxResponseBytes caps how much of
// an untrusted response is ever read.
func NewExecutor(httpClient HTTPClient, maxResponseBytes int64, log zerolog.Logger) *Executor {
	return &Executor{
		httpClient:       httpClient,
		maxResponseBytes: maxResponseBytes,
		log:              log,
	}
}

type merchantResponse struct {
	Merchant uuid.UUID `json:"merchant"`
}

// ResolveMerchant asks the target for its self-reported merchant identity.
func (e *Executor) ResolveMerchant(ctx context.Context, target string) (uuid.UUID, error) {
	base, err := validateTarget(target)
	if err != nil {
		return uuid.Nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/merchant", nil)
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidTarget(target)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return uuid.Nil, apperror.ErrCallFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return uuid.Nil, apperror.ErrCallFailed(fmt.Errorf("merchant lookup: status %d", resp.StatusCode))
	}

	var out merchantResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, e.maxResponseBytes)).Decode(&out); err != nil {
		return uuid.Nil, apperror.ErrCallFailed(fmt.Errorf("decode merchant response: %w", err))
	}
	if out.Merchant == uuid.Nil {
		return uuid.Nil, apperror.ErrCallFailed(fmt.Errorf("target reported no merchant identity"))
	}
	return out.Merchant, nil
}

// Execute performs the untrusted call and returns the raw response body. Any
// non-2xx status is a failure; the caller decides what a failure aborts.
func (e *Executor) Execute(ctx context.Context, target, selector string, payload []byte) ([]byte, error) {
	base, err := validateTarget(target)
	if err != nil {
		return nil, err
	}
	if selector == "" {
		return nil, apperror.ErrInvalidTarget(target)
	}

	callURL := base + "/call/" + url.PathEscape(selector)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callURL, bytes.NewReader(payload))
	if err != nil {
		return nil, apperror.ErrInvalidTarget(target)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.log.Warn().Err(err).Str("target", target).Str("selector", selector).Msg("callback transport failure")
		return nil, apperror.ErrCallFailed(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxResponseBytes))
	if err != nil {
		return nil, apperror.ErrCallFailed(fmt.Errorf("read callback response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperror.ErrCallFailed(fmt.Errorf("callback returned status %d", resp.StatusCode))
	}
	return body, nil
}

// validateTarget rejects targets that are not absolute http(s) URLs.
func validateTarget(target string) (string, error) {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperror.ErrInvalidTarget(target)
	}
	return u.String(), nil
}
