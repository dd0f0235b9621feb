package token

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/thalamus-go/internal/utils"
	"github.com/jrsteele09/thalamus-go/oauth2"
)

var ErrNotJWT = errors.New("token is not a JWT")

// Claims are the registered and common claims of a JWT access token.
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	ID        string
	Tenant    string
	Scope     oauth2.Scopes
	Roles     []string
	IssuedAt  *time.Time
	ExpiresAt *time.Time

	// Raw holds every claim as decoded
	Raw map[string]any
}

// Expired reports whether the token carried an exp claim that is before now.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// Decode reads the claims of a JWT without verifying its signature. Use it for
// display and debugging only; Introspect is the authority on validity.
// Opaque tokens fail with ErrNotJWT.
func Decode(rawToken string) (*Claims, error) {
	token, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("error extracting claims")
	}

	sub, _ := claims.GetSubject()
	iss, _ := claims.GetIssuer()
	aud, _ := claims.GetAudience()
	jti, _ := claims["jti"].(string)
	tenant, _ := claims["tenant"].(string)
	scope, _ := claims["scope"].(string)

	var roles []string
	if claimRoles, ok := claims["roles"].([]any); ok {
		roles = utils.ToStringSlice(claimRoles)
	}

	c := &Claims{
		Subject:  sub,
		Issuer:   iss,
		Audience: aud,
		ID:       jti,
		Tenant:   tenant,
		Scope:    oauth2.ParseScopes(scope),
		Roles:    roles,
		Raw:      claims,
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = utils.Ptr(iat.Time)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = utils.Ptr(exp.Time)
	}
	return c, nil
}
