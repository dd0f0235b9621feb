package oauthmodel

import (
	"net/url"
	"strings"

	"github.com/jrsteele09/thalamus-go/oauth2"
)

// AuthorizationParameters holds the query parameters of an /oauth/authorize URL.
type AuthorizationParameters struct {
	// ResponseType specifies what the authorization endpoint should return.
	// Example: "code" (only supported value currently)
	ResponseType oauth2.ResponseType

	// ClientID identifies the application requesting authorization.
	ClientID string

	// RedirectURI is where the authorization response will be sent.
	// Security: Must exactly match a pre-registered URI to prevent open redirects
	RedirectURI string

	// Scope specifies the permissions being requested.
	// Example: "openid profile email"
	Scope oauth2.Scopes

	// State is echoed back on the callback.
	// Security: Client should validate this matches on callback to prevent CSRF attacks
	State string

	// CodeChallenge is the PKCE challenge derived from code_verifier.
	// Example: BASE64URL(SHA256(code_verifier))
	CodeChallenge string

	// CodeChallengeMethod specifies how code_challenge was derived.
	CodeChallengeMethod oauth2.CodeMethodType

	// Nonce binds the ID token to this request.
	// Token validation: Client must verify id_token.nonce matches this value
	Nonce string

	// LoginHint pre-fills the username/email on the login page.
	// Example: "user@example.com"
	LoginHint string
}

// Encode returns the query string in a fixed parameter order. Values use form
// encoding so spaces between scopes become "+".
func (p *AuthorizationParameters) Encode() string {
	var q query
	q.add("response_type", string(p.ResponseType))
	q.add("client_id", p.ClientID)
	q.add("redirect_uri", p.RedirectURI)
	q.add("scope", p.Scope.String())
	q.add("state", p.State)
	if p.CodeChallenge != "" {
		q.add("code_challenge", p.CodeChallenge)
	}
	if p.CodeChallengeMethod != "" {
		q.add("code_challenge_method", string(p.CodeChallengeMethod))
	}
	if p.Nonce != "" {
		q.add("nonce", p.Nonce)
	}
	if p.LoginHint != "" {
		q.add("login_hint", p.LoginHint)
	}
	return q.String()
}

// Validate reports values the server is known to reject.
func (p *AuthorizationParameters) Validate() error {
	if !responseTypeValid(p.ResponseType) {
		return ErrInvalidResponseType
	}
	if !codeChallengeMethodValid(p.CodeChallengeMethod) {
		return ErrInvalidCodeChallengeMethod
	}
	return nil
}

// query keeps insertion order, unlike url.Values.Encode which sorts by key.
type query struct {
	b strings.Builder
}

func (q *query) add(key, value string) {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	q.b.WriteString(url.QueryEscape(key))
	q.b.WriteByte('=')
	q.b.WriteString(url.QueryEscape(value))
}

func (q *query) String() string {
	return q.b.String()
}

func codeChallengeMethodValid(challengeMethod oauth2.CodeMethodType) bool {
	switch challengeMethod {
	case "", oauth2.CodeMethodTypeS256, oauth2.CodeMethodTypePlain:
		return true
	}
	return false
}

func responseTypeValid(responseType oauth2.ResponseType) bool {
	return responseType == "" || responseType == oauth2.CodeResponseType
}
