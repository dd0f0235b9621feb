// Package thalamus is the Go client for the Thalamus OAuth2 and OpenID Connect server.
//
// Example:
//
//	client, err := thalamus.New(config.Options{
//		ClientID:     os.Getenv("THALAMUS_CLIENT_ID"),
//		ClientSecret: os.Getenv("THALAMUS_CLIENT_SECRET"),
//		RedirectURI:  "https://yourapp.com/auth/callback",
//		BaseURL:      "https://auth.example.com",
//	})
//	if err != nil {
//		return err
//	}
//
//	// Redirect the user
//	authURL := client.Auth.BuildAuthorizationURL(auth.AuthorizationURLOptions{State: state})
//
//	// Exchange the code from the callback
//	tokens, err := client.Auth.ExchangeCode(ctx, code)
//
//	// Introspect a token
//	info, err := client.Tokens.Introspect(ctx, tokens.AccessToken)
package thalamus

import (
	"github.com/jrsteele09/thalamus-go/auth"
	"github.com/jrsteele09/thalamus-go/config"
	"github.com/jrsteele09/thalamus-go/token"
	"github.com/jrsteele09/thalamus-go/transport"
)

// Client groups the authorization flow and token components around one
// configuration and one transport.
type Client struct {
	// Auth builds authorization URLs and performs the grant requests.
	Auth *auth.Client

	// Tokens introspects, validates and verifies tokens.
	Tokens *token.Manager

	config *config.Client
}

// New validates opts and builds both components. Transport options (http client,
// logger, tracing) apply to every request either component makes.
func New(opts config.Options, transportOptions ...transport.Option) (*Client, error) {
	cfg, err := config.New(opts)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, transportOptions...), nil
}

// NewWithConfig builds the components around an existing configuration. A nil cfg
// is a programming error and panics.
func NewWithConfig(cfg *config.Client, transportOptions ...transport.Option) *Client {
	if cfg == nil {
		panic("[thalamus NewWithConfig] config is required")
	}
	t := transport.New(transportOptions...)
	return &Client{
		Auth:   auth.NewClient(cfg, auth.WithTransport(t)),
		Tokens: token.NewManager(cfg, token.WithTransport(t)),
		config: cfg,
	}
}

// Config returns a copy of the normalized configuration.
func (c *Client) Config() config.Options {
	return c.config.Snapshot()
}
