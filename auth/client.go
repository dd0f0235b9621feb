// Package auth builds authorization URLs and performs the grant and revocation
// requests of the OAuth2 authorization code and client credentials flows.
package auth

import (
	"context"

	"github.com/jrsteele09/thalamus-go/config"
	"github.com/jrsteele09/thalamus-go/oauth2"
	"github.com/jrsteele09/thalamus-go/oauthmodel"
	"github.com/jrsteele09/thalamus-go/transport"
)

// Client performs the authorization flow operations for one configured client.
// It keeps no state between calls and is safe for concurrent use.
type Client struct {
	config    config.ClientConfig
	transport *transport.Client
}

// Option defines a function type to modify the Client instance.
type Option func(*Client)

// WithTransport sets the transport used for network calls.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// NewClient returns a Client for cfg. A nil cfg is a programming error and panics.
func NewClient(cfg config.ClientConfig, options ...Option) *Client {
	if cfg == nil {
		panic("[auth NewClient] config is required")
	}
	c := &Client{
		config:    cfg,
		transport: transport.New(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// AuthorizationURLOptions customise BuildAuthorizationURL. The zero value is valid.
type AuthorizationURLOptions struct {
	// Scope defaults to the configured default scopes, else openid profile email.
	Scope oauth2.Scopes

	// State defaults to a fresh GenerateState value.
	State string

	// ResponseType defaults to "code".
	ResponseType oauth2.ResponseType

	// CodeChallenge and CodeChallengeMethod are passed through when a challenge is set.
	CodeChallenge       string
	CodeChallengeMethod oauth2.CodeMethodType

	Nonce     string
	LoginHint string
}

// BuildAuthorizationURL returns the URL to redirect the user to. No request is made.
//
// Example:
//
//	url := client.BuildAuthorizationURL(auth.AuthorizationURLOptions{
//		Scope: oauth2.Scopes{"openid", "profile", "email"},
//		State: state,
//	})
func (c *Client) BuildAuthorizationURL(opts AuthorizationURLOptions) string {
	return c.AuthorizationURL(c.AuthorizationParameters(opts))
}

// AuthorizationURL returns the authorization endpoint URL for fully resolved params.
func (c *Client) AuthorizationURL(params *oauthmodel.AuthorizationParameters) string {
	return c.config.AuthorizeURL() + "?" + params.Encode()
}

// AuthorizationParameters resolves the defaults of opts. The State in the result
// is the value to compare against on the callback.
func (c *Client) AuthorizationParameters(opts AuthorizationURLOptions) *oauthmodel.AuthorizationParameters {
	scope := opts.Scope
	if scope == nil {
		scope = c.defaultScopes(oauth2.DefaultScopes)
	}
	state := opts.State
	if state == "" {
		state = GenerateState()
	}
	responseType := opts.ResponseType
	if responseType == "" {
		responseType = oauth2.CodeResponseType
	}

	return &oauthmodel.AuthorizationParameters{
		ResponseType:        responseType,
		ClientID:            c.config.GetClientID(),
		RedirectURI:         c.config.GetRedirectURI(),
		Scope:               scope,
		State:               state,
		CodeChallenge:       opts.CodeChallenge,
		CodeChallengeMethod: opts.CodeChallengeMethod,
		Nonce:               opts.Nonce,
		LoginHint:           opts.LoginHint,
	}
}

// ExchangeOption adds optional members to an authorization code exchange.
type ExchangeOption func(*oauthmodel.TokenRequest)

// WithCodeVerifier sends the PKCE code_verifier matching the challenge used in
// the authorization URL.
func WithCodeVerifier(verifier string) ExchangeOption {
	return func(r *oauthmodel.TokenRequest) {
		r.CodeVerifier = verifier
	}
}

// ExchangeCode exchanges an authorization code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, code string, options ...ExchangeOption) (*oauth2.TokenResponse, error) {
	req := oauthmodel.TokenRequest{
		GrantType:    oauth2.AuthorizationCodeGrant,
		Code:         code,
		ClientID:     c.config.GetClientID(),
		ClientSecret: c.config.GetClientSecret(),
		RedirectURI:  c.config.GetRedirectURI(),
	}
	for _, opt := range options {
		opt(&req)
	}
	return c.requestToken(ctx, req)
}

// ClientCredentialsOptions customise GetClientCredentialsToken.
type ClientCredentialsOptions struct {
	// Scope defaults to the configured default scopes when nil. A non-nil empty
	// slice requests no scope.
	Scope oauth2.Scopes
}

// GetClientCredentialsToken obtains a token for the client itself (machine to machine).
func (c *Client) GetClientCredentialsToken(ctx context.Context, opts ClientCredentialsOptions) (*oauth2.TokenResponse, error) {
	scope := opts.Scope
	if scope == nil {
		scope = c.defaultScopes(nil)
	}
	return c.requestToken(ctx, oauthmodel.TokenRequest{
		GrantType:    oauth2.ClientCredentialsGrant,
		ClientID:     c.config.GetClientID(),
		ClientSecret: c.config.GetClientSecret(),
		Scope:        scope.String(),
	})
}

// RefreshTokenOptions carries the refresh token to redeem.
type RefreshTokenOptions struct {
	RefreshToken string
}

// RefreshToken exchanges a refresh token for a new token set.
func (c *Client) RefreshToken(ctx context.Context, opts RefreshTokenOptions) (*oauth2.TokenResponse, error) {
	return c.requestToken(ctx, oauthmodel.TokenRequest{
		GrantType:    oauth2.RefreshTokenGrant,
		RefreshToken: opts.RefreshToken,
		ClientID:     c.config.GetClientID(),
		ClientSecret: c.config.GetClientSecret(),
	})
}

// RevokeToken revokes an access or refresh token. hint may be empty.
func (c *Client) RevokeToken(ctx context.Context, token string, hint oauth2.TokenTypeHint) error {
	req := oauthmodel.RevokeRequest{Token: token, TokenTypeHint: hint}
	if err := req.Validate(); err != nil {
		return err
	}
	return c.transport.PostJSON(ctx, c.config.RevokeURL(), req, nil)
}

func (c *Client) requestToken(ctx context.Context, req oauthmodel.TokenRequest) (*oauth2.TokenResponse, error) {
	var resp oauth2.TokenResponse
	if err := c.transport.PostJSON(ctx, c.config.TokenURL(), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) defaultScopes(fallback oauth2.Scopes) oauth2.Scopes {
	if scopes := c.config.GetDefaultScopes(); scopes != nil {
		return scopes
	}
	return append(oauth2.Scopes(nil), fallback...)
}
