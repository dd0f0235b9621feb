package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jrsteele09/thalamus-go/oauth2"
	"github.com/jrsteele09/thalamus-go/transport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Method      string         `json:"method"`
	ContentType string         `json:"content_type"`
	Accept      string         `json:"accept"`
	Auth        string         `json:"auth"`
	RequestID   string         `json:"request_id"`
	UserAgent   string         `json:"user_agent"`
	Body        map[string]any `json:"body"`
}

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := echo{
			Method:      r.Method,
			ContentType: r.Header.Get("Content-Type"),
			Accept:      r.Header.Get("Accept"),
			Auth:        r.Header.Get("Authorization"),
			RequestID:   r.Header.Get("X-Request-ID"),
			UserAgent:   r.Header.Get("User-Agent"),
		}
		if r.Body != nil {
			data, _ := io.ReadAll(r.Body)
			if len(data) > 0 {
				require.NoError(t, json.Unmarshal(data, &e.Body))
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(e)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPostJSON(t *testing.T) {
	srv := echoServer(t)
	c := transport.New(transport.WithUserAgent("thalamus-go-test"))

	var got echo
	err := c.PostJSON(context.Background(), srv.URL, map[string]string{"token": "at_1"}, &got)
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, got.Method)
	require.Equal(t, "application/json", got.ContentType)
	require.Equal(t, "application/json", got.Accept)
	require.Equal(t, "thalamus-go-test", got.UserAgent)
	require.Equal(t, map[string]any{"token": "at_1"}, got.Body)

	_, err = uuid.Parse(got.RequestID)
	require.NoError(t, err)
}

func TestGetBearer(t *testing.T) {
	srv := echoServer(t)
	c := transport.New()

	var first, second echo
	require.NoError(t, c.GetBearer(context.Background(), srv.URL, "at_123", &first))
	require.NoError(t, c.GetBearer(context.Background(), srv.URL, "at_123", &second))

	require.Equal(t, http.MethodGet, first.Method)
	require.Equal(t, "Bearer at_123", first.Auth)
	require.Empty(t, first.ContentType)
	require.NotEqual(t, first.RequestID, second.RequestID)
}

func TestErrorResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"bad code"}`))
		case "/text":
			http.Error(w, "boom", http.StatusServiceUnavailable)
		case "/garbage":
			_, _ = w.Write([]byte(`not json`))
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := transport.New()
	ctx := context.Background()

	t.Run("json error body", func(t *testing.T) {
		err := c.PostJSON(ctx, srv.URL+"/json", struct{}{}, nil)
		var apiErr *oauth2.Error
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "bad code", apiErr.Message)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "invalid_grant", apiErr.Code)
	})

	t.Run("plain text error body", func(t *testing.T) {
		err := c.PostJSON(ctx, srv.URL+"/text", struct{}{}, nil)
		var apiErr *oauth2.Error
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "HTTP 503", apiErr.Error())
	})

	t.Run("undecodable success body", func(t *testing.T) {
		var out map[string]any
		err := c.PostJSON(ctx, srv.URL+"/garbage", struct{}{}, &out)
		require.ErrorIs(t, err, transport.ErrDecodeResponse)
		var apiErr *oauth2.Error
		require.False(t, errors.As(err, &apiErr))
	})

	t.Run("empty success body with nil out", func(t *testing.T) {
		require.NoError(t, c.PostJSON(ctx, srv.URL+"/empty", struct{}{}, nil))
	})

	t.Run("unencodable body", func(t *testing.T) {
		err := c.PostJSON(ctx, srv.URL+"/json", map[string]any{"ch": make(chan int)}, nil)
		require.ErrorIs(t, err, transport.ErrEncodeRequest)
	})
}

func TestTransportErrorIsReturnedAsIs(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := transport.New().PostJSON(context.Background(), url, struct{}{}, nil)
	require.Error(t, err)
	var apiErr *oauth2.Error
	require.False(t, errors.As(err, &apiErr))
}

func TestCanceledContext(t *testing.T) {
	srv := echoServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := transport.New().PostJSON(ctx, srv.URL, struct{}{}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLogger(t *testing.T) {
	srv := echoServer(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	c := transport.New(transport.WithLogger(logger), transport.WithTracing())
	require.NoError(t, c.GetBearer(context.Background(), srv.URL, "at", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "request completed", entry["message"])
	require.Equal(t, float64(http.StatusOK), entry["status"])
	require.Equal(t, http.MethodGet, entry["method"])
}

func TestWithHTTPClient(t *testing.T) {
	called := false
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"ok":true}`))),
			Header:     http.Header{},
			Request:    r,
		}, nil
	})}

	var out map[string]bool
	err := transport.New(transport.WithHTTPClient(hc)).PostJSON(context.Background(), "http://thalamus.invalid/oauth/token", struct{}{}, &out)
	require.NoError(t, err)
	require.True(t, called)
	require.True(t, out["ok"])
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
