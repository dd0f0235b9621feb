package thalamus_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrsteele09/thalamus-go"
	"github.com/jrsteele09/thalamus-go/auth"
	"github.com/jrsteele09/thalamus-go/config"
	"github.com/jrsteele09/thalamus-go/transport"
	"github.com/stretchr/testify/require"
)

func testOptions(baseURL string) config.Options {
	return config.Options{
		ClientID:     "test_client_id",
		ClientSecret: "test_client_secret",
		RedirectURI:  "http://localhost:3000/callback",
		BaseURL:      baseURL,
	}
}

func TestNew(t *testing.T) {
	client, err := thalamus.New(testOptions("http://localhost:4000/"))
	require.NoError(t, err)
	require.NotNil(t, client.Auth)
	require.NotNil(t, client.Tokens)
	require.Equal(t, "http://localhost:4000", client.Config().BaseURL)
}

func TestNew_InvalidConfig(t *testing.T) {
	for _, field := range []string{config.FieldClientID, config.FieldRedirectURI, config.FieldBaseURL} {
		t.Run(field, func(t *testing.T) {
			opts := testOptions("http://localhost:4000")
			switch field {
			case config.FieldClientID:
				opts.ClientID = ""
			case config.FieldRedirectURI:
				opts.RedirectURI = ""
			case config.FieldBaseURL:
				opts.BaseURL = ""
			}

			client, err := thalamus.New(opts)
			require.Nil(t, client)
			var cfgErr *config.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			require.Equal(t, field, cfgErr.Field)
		})
	}
}

func TestConfig_IsSnapshot(t *testing.T) {
	opts := testOptions("http://localhost:4000")
	opts.DefaultScopes = []string{"openid"}
	client, err := thalamus.New(opts)
	require.NoError(t, err)

	snap := client.Config()
	snap.BaseURL = "http://evil.example.com"
	snap.DefaultScopes[0] = "admin"

	require.Equal(t, "http://localhost:4000", client.Config().BaseURL)
	require.Equal(t, []string{"openid"}, client.Config().DefaultScopes)
	require.Contains(t, client.Auth.BuildAuthorizationURL(auth.AuthorizationURLOptions{}), "http://localhost:4000/oauth/authorize?")
	require.Contains(t, client.Auth.BuildAuthorizationURL(auth.AuthorizationURLOptions{}), "scope=openid&")
}

func TestSharedTransport(t *testing.T) {
	var userAgents []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgents = append(userAgents, r.Header.Get("User-Agent"))
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/token"):
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "at_1", "token_type": "Bearer", "expires_in": 60})
		case strings.HasSuffix(r.URL.Path, "/introspect"):
			_ = json.NewEncoder(w).Encode(map[string]any{"active": true})
		}
	}))
	defer srv.Close()

	client, err := thalamus.New(testOptions(srv.URL), transport.WithUserAgent("my-app/1.0"))
	require.NoError(t, err)

	ctx := context.Background()
	tok, err := client.Auth.GetClientCredentialsToken(ctx, auth.ClientCredentialsOptions{})
	require.NoError(t, err)
	require.True(t, client.Tokens.Validate(ctx, tok.AccessToken))

	require.Equal(t, []string{"my-app/1.0", "my-app/1.0"}, userAgents)
}

func TestNewWithConfig_NilConfigPanics(t *testing.T) {
	require.PanicsWithValue(t, "[thalamus NewWithConfig] config is required", func() {
		thalamus.NewWithConfig(nil)
	})
}
