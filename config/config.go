// Package config holds the validated, immutable identity of an OAuth2 client and
// the location of the Thalamus server it talks to.
package config

import (
	"strings"

	"github.com/jrsteele09/thalamus-go/internal/utils"
)

// ClientConfig is the read-only view of the configuration that the auth and token
// components depend on.
type ClientConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetRedirectURI() string
	GetBaseURL() string
	GetDefaultScopes() []string
	EndpointConfig
}

// Options are the raw values a Client is constructed from.
type Options struct {
	// ClientID is the public client identifier. Required.
	ClientID string

	// ClientSecret is only needed by confidential clients.
	ClientSecret string

	// RedirectURI must match a URI registered with the server. Required.
	// Example: "https://yourapp.com/auth/callback"
	RedirectURI string

	// BaseURL is the server root, e.g. "https://auth.example.com". Required.
	BaseURL string

	// DefaultScopes are used when a call site does not pass explicit scopes.
	DefaultScopes []string
}

// Client is an immutable client configuration. Create it with New.
type Client struct {
	clientID      string
	clientSecret  string
	redirectURI   string
	baseURL       string
	defaultScopes []string
}

var _ ClientConfig = (*Client)(nil)

// New validates opts and returns the configuration. It fails with a
// *ConfigurationError naming the first missing required field.
func New(opts Options) (*Client, error) {
	if opts.ClientID == "" {
		return nil, &ConfigurationError{Field: FieldClientID}
	}
	if opts.RedirectURI == "" {
		return nil, &ConfigurationError{Field: FieldRedirectURI}
	}
	if opts.BaseURL == "" {
		return nil, &ConfigurationError{Field: FieldBaseURL}
	}

	return &Client{
		clientID:      opts.ClientID,
		clientSecret:  opts.ClientSecret,
		redirectURI:   opts.RedirectURI,
		baseURL:       strings.TrimSuffix(opts.BaseURL, "/"),
		defaultScopes: utils.CopyStrings(opts.DefaultScopes),
	}, nil
}

// MustNew is New for package level setup; it panics on an invalid configuration.
func MustNew(opts Options) *Client {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Client) GetClientID() string {
	return c.clientID
}

func (c *Client) GetClientSecret() string {
	return c.clientSecret
}

func (c *Client) GetRedirectURI() string {
	return c.redirectURI
}

// GetBaseURL returns the server root without a trailing slash.
func (c *Client) GetBaseURL() string {
	return c.baseURL
}

// GetDefaultScopes returns a copy of the configured default scopes, nil when unset.
func (c *Client) GetDefaultScopes() []string {
	return utils.CopyStrings(c.defaultScopes)
}

// Snapshot returns a copy of the normalized configuration. Changing the result
// has no effect on c or on any component built from it.
func (c *Client) Snapshot() Options {
	return Options{
		ClientID:      c.clientID,
		ClientSecret:  c.clientSecret,
		RedirectURI:   c.redirectURI,
		BaseURL:       c.baseURL,
		DefaultScopes: utils.CopyStrings(c.defaultScopes),
	}
}
