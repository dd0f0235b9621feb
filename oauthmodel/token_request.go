package oauthmodel

import "github.com/jrsteele09/thalamus-go/oauth2"

// TokenRequest is the JSON body sent to the /oauth/token endpoint.
// Supports multiple grant types: authorization_code, refresh_token, client_credentials
type TokenRequest struct {
	GrantType oauth2.GrantType `json:"grant_type"`

	// Code is the authorization code received from the authorization endpoint.
	// Required: Yes (only for authorization_code grant)
	Code string `json:"code,omitempty"`

	// ClientID identifies the OAuth2 client making the request.
	// Required: Yes (for all grant types)
	ClientID string `json:"client_id"`

	// ClientSecret is the secret credential for confidential clients.
	// Required: Yes for confidential clients, omitted for public clients
	// Security: Never log or expose this value
	ClientSecret string `json:"client_secret,omitempty"`

	// RedirectURI must equal the one used in the authorization request.
	// Required: Yes (only for authorization_code grant)
	RedirectURI string `json:"redirect_uri,omitempty"`

	// CodeVerifier is the PKCE code verifier that matches the code_challenge.
	// Required: Yes (if PKCE was used in authorization request)
	CodeVerifier string `json:"code_verifier,omitempty"`

	// RefreshToken is used to obtain new access tokens without re-authentication.
	// Required: Yes (only for refresh_token grant)
	RefreshToken string `json:"refresh_token,omitempty"`

	// Scope is the space separated scope list.
	// Required: No (client_credentials only, omitted when empty)
	Scope string `json:"scope,omitempty"`
}

// RevokeRequest is the JSON body sent to the /oauth/revoke endpoint.
type RevokeRequest struct {
	Token         string               `json:"token"`
	TokenTypeHint oauth2.TokenTypeHint `json:"token_type_hint,omitempty"`
}

// Validate checks the hint before anything is sent.
func (r RevokeRequest) Validate() error {
	if !r.TokenTypeHint.Valid() {
		return ErrInvalidTokenTypeHint
	}
	return nil
}

// IntrospectRequest is the JSON body sent to the /oauth/introspect endpoint.
type IntrospectRequest struct {
	Token string `json:"token"`
}
