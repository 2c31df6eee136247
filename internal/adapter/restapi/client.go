// Package restapi is the HTTP client for the contacts backend.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/contactbook/internal/auth"
	"github.com/heartmarshall/contactbook/internal/domain"
	"github.com/heartmarshall/contactbook/pkg/ctxutil"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 4 << 20

	headerRequestID = "X-Request-ID"

	fallbackErrorMessage = "API request failed"
)

type tokenSource interface {
	Token() (string, error)
	SignOut(reason string)
}

// Client talks to the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	base       *http.Transport
	session    tokenSource
	log        *slog.Logger
}

// NewClient creates a Client. A zero timeout selects the default.
func NewClient(baseURL string, timeout time.Duration, session tokenSource, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log := logger.With("adapter", "restapi")
	base := http.DefaultTransport.(*http.Transport).Clone()
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: Chain(RequestID, Logger(log))(base),
		},
		base:    base,
		session: session,
		log:     log,
	}
}

// Close releases idle connections.
func (c *Client) Close() {
	c.base.CloseIdleConnections()
}

type request struct {
	method string
	path   string
	body   any
	authed bool
}

type response struct {
	status int
	body   []byte
}

// do executes one request and maps the outcome onto the domain error
// taxonomy. Only authenticated calls treat 401 as a session expiry.
func (c *Client) do(ctx context.Context, r request) (*response, error) {
	ctx, reqID := ctxutil.EnsureRequestID(ctx)
	attrs := []any{
		slog.String("method", r.method),
		slog.String("path", r.path),
		slog.String("request_id", reqID),
	}

	var token string
	if r.authed {
		var err error
		token, err = c.session.Token()
		if errors.Is(err, domain.ErrSessionExpired) {
			c.session.SignOut(auth.ReasonExpired)
		}
		if err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("restapi: encode body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, fmt.Errorf("restapi: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrUnreachable, err)
	}

	attrs = append(attrs, slog.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return &response{status: resp.StatusCode, body: data}, nil

	case resp.StatusCode == http.StatusUnauthorized && r.authed:
		c.log.WarnContext(ctx, "session rejected by backend", attrs...)
		c.session.SignOut(auth.ReasonRejected)
		return nil, domain.ErrSessionExpired

	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, domain.ErrNotFound)

	default:
		reqErr := &domain.RequestError{Status: resp.StatusCode, Message: errorMessage(data)}
		c.log.WarnContext(ctx, "request rejected", append(attrs, slog.String("error", reqErr.Message))...)
		return nil, reqErr
	}
}

// errorMessage extracts the backend's "error" field, falling back to a
// generic message.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || strings.TrimSpace(payload.Error) == "" {
		return fallbackErrorMessage
	}
	return payload.Error
}

// isAck interprets a 2xx body as an acknowledgement. Empty and non-JSON
// bodies are truthy; JSON null and false are not.
func isAck(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return true
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	default:
		return true
	}
}

// ack turns a falsy acknowledgement into a request error.
func ack(resp *response) error {
	if isAck(resp.body) {
		return nil
	}
	return &domain.RequestError{Status: resp.status, Message: "request was not acknowledged"}
}
