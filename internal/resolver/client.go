// Package resolver implements the client side of the remote flags:resolve
// call: the wire messages, a single-attempt HTTP client with a fixed per-call
// deadline, and the classification of transport failures into the error
// taxonomy surfaced to callers.
package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/TimurManjosov/flagresolve/internal/flagerr"
	"github.com/TimurManjosov/flagresolve/internal/telemetry"
)

// DeadlineAfter is the fixed resolution budget measured from call start.
const DeadlineAfter = 10 * time.Second

const resolvePath = "/v1/flags:resolve"

// API is the capability the evaluation pipeline needs from the remote
// resolver. The pipeline is tested against an in-process fake of this
// interface; production code uses Client.
type API interface {
	// ResolveFlags issues exactly one resolve attempt. Failures are
	// returned as coded errors; there are no retries.
	ResolveFlags(ctx context.Context, req *ResolveFlagsRequest) (*ResolveFlagsResponse, error)

	// Close releases the transport. The client must not be used afterwards.
	Close()
}

// Client is the HTTP client for the remote flag resolver API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// Deadline bounds each resolve call. Overridable for tests only.
	Deadline time.Duration

	log zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger; resolve attempts are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// NewClient creates a resolver client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	telemetry.Init()
	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		Deadline:   DeadlineAfter,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveFlags posts the resolve request and decodes the response. The call
// is bounded by the client's deadline; transport failures are classified
// into timeout, unavailable, unauthenticated or unknown.
func (c *Client) ResolveFlags(ctx context.Context, reqBody *ResolveFlagsRequest) (*ResolveFlagsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Deadline)
	defer cancel()

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, flagerr.General("Failed to encode resolve request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+resolvePath, bytes.NewReader(body))
	if err != nil {
		return nil, flagerr.General("Failed to create resolve request: %v", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		classified, outcome := classifyTransportError(err)
		c.observe(reqBody, requestID, outcome, start)
		return nil, classified
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		classified, outcome := classifyStatus(resp.StatusCode)
		c.observe(reqBody, requestID, outcome, start)
		return nil, classified
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var out ResolveFlagsResponse
	if err := dec.Decode(&out); err != nil {
		c.observe(reqBody, requestID, "error", start)
		return nil, flagerr.General("Unknown error occurred when calling the provider backend: malformed response: %v", err)
	}

	c.observe(reqBody, requestID, "ok", start)
	return &out, nil
}

// Close releases idle transport connections. Resolve calls must not be
// issued after Close.
func (c *Client) Close() {
	c.HTTPClient.CloseIdleConnections()
}

func (c *Client) observe(req *ResolveFlagsRequest, requestID, outcome string, start time.Time) {
	duration := time.Since(start)
	telemetry.ObserveResolve(outcome, duration)

	flag := ""
	if len(req.Flags) > 0 {
		flag = req.Flags[0]
	}
	c.log.Debug().
		Str("flag", flag).
		Str("request_id", requestID).
		Str("outcome", outcome).
		Dur("duration", duration).
		Msg("resolve flags")
}

// classifyTransportError maps connection-level failures: an expired deadline
// is a timeout, everything else means the backend could not be reached.
func classifyTransportError(err error) (error, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return flagerr.General("Deadline exceeded when calling provider backend"), "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return flagerr.General("Deadline exceeded when calling provider backend"), "timeout"
	}
	return flagerr.General("Provider backend is unavailable"), "unavailable"
}

// classifyStatus maps non-OK HTTP statuses onto the transport error taxonomy.
func classifyStatus(status int) (error, string) {
	switch status {
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return flagerr.General("Provider backend is unavailable"), "unavailable"
	case http.StatusUnauthorized, http.StatusForbidden:
		return flagerr.General("UNAUTHENTICATED"), "unauthenticated"
	default:
		return flagerr.General("Unknown error occurred when calling the provider backend. HTTP status code %d", status), "error"
	}
}
