package oauth2

import (
	"time"

	"github.com/jrsteele09/thalamus-go/internal/utils"
	xoauth2 "golang.org/x/oauth2"
)

// TokenResponse represents the response from an OAuth2 token request.
// Returned from the /oauth/token endpoint for all grant types.
type TokenResponse struct {
	// AccessToken is the opaque token used to access protected resources.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken string `json:"access_token"`

	// TokenType indicates how to use the access token (always "Bearer").
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Example: 3600
	ExpiresIn int `json:"expires_in"`

	// RefreshToken is used to obtain new access tokens.
	// Only present: for grants that issue one (not client_credentials)
	RefreshToken *string `json:"refresh_token,omitempty"`

	// Scope is the space separated list of granted scopes.
	// Note: May be less than requested if some scopes were denied
	Scope string `json:"scope,omitempty"`

	// IDToken is the OpenID Connect ID token.
	// Only present: When "openid" scope was requested
	IDToken *string `json:"id_token,omitempty"`
}

// Scopes returns the granted scopes.
func (t *TokenResponse) Scopes() Scopes {
	return ParseScopes(t.Scope)
}

// Token converts the response to a golang.org/x/oauth2 token. issuedAt is the
// time the response was received and anchors the expiry.
func (t *TokenResponse) Token(issuedAt time.Time) *xoauth2.Token {
	tok := &xoauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: utils.Value(t.RefreshToken),
		ExpiresIn:    int64(t.ExpiresIn),
	}
	if t.ExpiresIn > 0 {
		tok.Expiry = issuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
	}

	extra := map[string]any{}
	if t.Scope != "" {
		extra["scope"] = t.Scope
	}
	if t.IDToken != nil {
		extra["id_token"] = *t.IDToken
	}
	if len(extra) > 0 {
		tok = tok.WithExtra(extra)
	}
	return tok
}
