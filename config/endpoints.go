package config

import (
	"golang.org/x/oauth2"
)

// Endpoint paths relative to the configured base URL.
const (
	PathAuthorize  = "/oauth/authorize"
	PathToken      = "/oauth/token"
	PathRevoke     = "/oauth/revoke"
	PathIntrospect = "/oauth/introspect"
	PathUserInfo   = "/oauth/userinfo"
	PathJWKS       = "/.well-known/jwks.json"
)

// EndpointConfig resolves the absolute URL of every server endpoint.
type EndpointConfig interface {
	AuthorizeURL() string
	TokenURL() string
	RevokeURL() string
	IntrospectURL() string
	UserInfoURL() string
	JWKSURL() string
}

func (c *Client) AuthorizeURL() string  { return c.baseURL + PathAuthorize }
func (c *Client) TokenURL() string      { return c.baseURL + PathToken }
func (c *Client) RevokeURL() string     { return c.baseURL + PathRevoke }
func (c *Client) IntrospectURL() string { return c.baseURL + PathIntrospect }
func (c *Client) UserInfoURL() string   { return c.baseURL + PathUserInfo }
func (c *Client) JWKSURL() string       { return c.baseURL + PathJWKS }

// OAuth2Config returns an equivalent golang.org/x/oauth2 configuration so the
// client can also be driven by code written against that package. Credentials are
// sent in the request body, as the Thalamus token endpoint expects.
func (c *Client) OAuth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  c.redirectURI,
		Scopes:       c.GetDefaultScopes(),
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.AuthorizeURL(),
			TokenURL:  c.TokenURL(),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}
