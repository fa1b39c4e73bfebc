// Package authority is the client side of the remote authority's HTTP JSON API.
//
// Every request goes through Transport, which maps responses onto the errs
// taxonomy. Calls made on behalf of a session go through Client, the single place
// where a 401 answer purges the session. Nothing here retries: a failed call is
// reported and a retry is a new user action.
package authority

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"parceltrack/internal/adapters/wire"
	"parceltrack/internal/pkg/errs"
)

const (
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 64 << 10
)

// Transport performs one HTTP exchange per call against BaseURL.
type Transport struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewTransport creates a transport for baseURL. A non-positive timeout falls back
// to DefaultTimeout; the timeout covers reading the whole response.
func NewTransport(baseURL string, timeout time.Duration, logger *slog.Logger) (*Transport, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Transport{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("component", "AuthorityTransport"),
	}, nil
}

// call sends in as the JSON body (when non-nil) and decodes a 2xx answer into out
// (when non-nil). token is sent as a bearer credential when not empty.
func (t *Transport) call(ctx context.Context, method, path, token string, in, out any) error {
	op := method + " " + path

	req, err := t.newRequest(ctx, method, path, token, in)
	if err != nil {
		return err
	}

	started := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.WarnContext(ctx, "request failed", "op", op, "error", err)
		return errs.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	t.logger.DebugContext(ctx, "response received",
		"op", op, "status", resp.StatusCode, "latency", time.Since(started))

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classify(op, resp.StatusCode, errorMessage(body))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// The body is read in full before decoding: a decoder reports a cut-off
	// stream as malformed JSON and the timeout behind it would be lost.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.logger.WarnContext(ctx, "response body interrupted", "op", op, "error", err)
		return errs.NewNetworkError(op, err)
	}
	if err = json.Unmarshal(body, out); err != nil {
		return errs.NewRemoteFailureErrorWithCause(resp.StatusCode, "undecodable response to "+op, err)
	}
	return nil
}

func (t *Transport) newRequest(ctx context.Context, method, path, token string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// classify maps a rejected call onto the error taxonomy.
func classify(op string, status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized:
		return errs.NewAuthenticationError(message)
	case status == http.StatusForbidden:
		return errs.NewAuthorizationErrorWithCause(op, errors.New(message))
	case status == http.StatusNotFound:
		return errs.NewObjectNotFoundErrorWithCause("request", op, errors.New(message))
	case status == http.StatusConflict:
		return errs.NewConflictError(op, message)
	case status < http.StatusInternalServerError:
		return errs.NewValidationErrorWithCause(message, fmt.Errorf("%s: status %d", op, status))
	default:
		return errs.NewRemoteFailureError(status, message)
	}
}

// errorMessage extracts the message of an error document, falling back to the
// raw body for plain-text answers.
func errorMessage(body []byte) string {
	var doc wire.ErrorResponse
	if err := json.Unmarshal(body, &doc); err == nil && doc.Message != "" {
		return doc.Message
	}
	return strings.TrimSpace(string(body))
}
