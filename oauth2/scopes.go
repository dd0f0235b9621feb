package oauth2

import "strings"

// DefaultScopes are requested by the authorization URL when neither the call
// nor the configuration names any.
var DefaultScopes = Scopes{"openid", "profile", "email"}

// Scopes is an ordered list of scope names. On the wire it is always a single
// space separated string.
type Scopes []string

// ParseScopes splits a space separated scope string.
func ParseScopes(s string) Scopes {
	return Scopes(strings.Fields(s))
}

func (s Scopes) String() string {
	return strings.Join(s, " ")
}
