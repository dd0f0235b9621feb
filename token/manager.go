// Package token queries the introspection and userinfo endpoints and verifies the
// tokens a Thalamus server issues.
package token

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/thalamus-go/config"
	"github.com/jrsteele09/thalamus-go/oauth2"
	"github.com/jrsteele09/thalamus-go/oauthmodel"
	"github.com/jrsteele09/thalamus-go/transport"
	"github.com/rs/zerolog"
)

// Manager handles token introspection and validation
type Manager struct {
	config    config.ClientConfig
	transport *transport.Client
	logger    zerolog.Logger
	issuer    string
	verifier  *oidc.IDTokenVerifier
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithTransport sets the transport used for network calls.
func WithTransport(t *transport.Client) ManagerOption {
	return func(m *Manager) {
		if t != nil {
			m.transport = t
		}
	}
}

// WithIssuer overrides the expected "iss" of ID tokens, which defaults to the base URL.
func WithIssuer(issuer string) ManagerOption {
	return func(m *Manager) {
		m.issuer = issuer
	}
}

// NewManager returns a Manager for cfg. A nil cfg is a programming error and panics.
func NewManager(cfg config.ClientConfig, options ...ManagerOption) *Manager {
	if cfg == nil {
		panic("[token NewManager] config is required")
	}
	m := &Manager{
		config:    cfg,
		transport: transport.New(),
		issuer:    cfg.GetBaseURL(),
	}
	for _, opt := range options {
		opt(m)
	}
	m.logger = m.transport.Logger()

	// Keys are fetched on first use with the transport's http client
	keysCtx := oidc.ClientContext(context.Background(), m.transport.HTTPClient())
	keySet := oidc.NewRemoteKeySet(keysCtx, cfg.JWKSURL())
	m.verifier = oidc.NewVerifier(m.issuer, keySet, &oidc.Config{ClientID: cfg.GetClientID()})
	return m
}

// Introspect returns the server's metadata for token. An inactive token is not an
// error; check Active.
func (m *Manager) Introspect(ctx context.Context, token string) (*oauth2.IntrospectionResponse, error) {
	var resp oauth2.IntrospectionResponse
	if err := m.transport.PostJSON(ctx, m.config.IntrospectURL(), oauthmodel.IntrospectRequest{Token: token}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetUserInfo returns the OpenID Connect profile of the user accessToken belongs to.
func (m *Manager) GetUserInfo(ctx context.Context, accessToken string) (*oauth2.UserInfo, error) {
	var info oauth2.UserInfo
	if err := m.transport.GetBearer(ctx, m.config.UserInfoURL(), accessToken, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Validate reports whether the server considers token active, meaning the response
// carried "active": true. Other members never affect the result. Any failure,
// including network and server errors, yields false.
func (m *Manager) Validate(ctx context.Context, token string) bool {
	resp, err := m.Introspect(ctx, token)
	if err != nil {
		m.logger.Debug().Err(err).Msg("token validation failed")
		return false
	}
	return resp.Active
}
