// Package transport sends the JSON requests of the auth and token components and
// turns every non-2xx response into an *oauth2.Error.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/thalamus-go/internal/errors"
	"github.com/jrsteele09/thalamus-go/oauth2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	contentTypeJSON = "application/json"
	headerRequestID = "X-Request-ID"
)

// Client performs single request/response cycles. It holds no per-request state
// and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
	userAgent  string
	tracing    bool
}

type Option func(*Client)

// WithHTTPClient sets the underlying client. Timeouts, proxies and TLS settings
// belong there; the transport itself never times out a request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTracing instruments outgoing requests with OpenTelemetry using the global
// tracer and propagator.
func WithTracing() Option {
	return func(c *Client) {
		c.tracing = true
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracing {
		hc := *c.httpClient
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc.Transport = otelhttp.NewTransport(base)
		c.httpClient = &hc
	}
	return c
}

// Logger returns the configured logger.
func (c *Client) Logger() zerolog.Logger {
	return c.logger
}

// PostJSON sends body as JSON and decodes a successful response into out. A nil
// out discards the response body.
func (c *Client) PostJSON(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Mark(ErrEncodeRequest, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Mark(ErrBuildRequest, err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	return c.do(req, out)
}

// GetBearer sends a GET authorized with accessToken and decodes the response into out.
func (c *Client) GetBearer(ctx context.Context, url, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Mark(ErrBuildRequest, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set(headerRequestID, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_id", requestID).
			Msg("request failed")
		// Transport errors are returned as the http.Client reports them
		return err
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(resp.Body)

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return oauth2.NewError(resp.StatusCode, data)
	}
	if readErr != nil {
		return errors.Mark(ErrReadResponse, readErr)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Mark(ErrDecodeResponse, err)
	}
	return nil
}

// HTTPClient returns the client requests are sent with, including any tracing
// instrumentation.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}
