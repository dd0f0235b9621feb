package oauth2

import "encoding/json"

// AgentType classifies a non-human actor. The values are defined by the server and
// forwarded as received.
type AgentType string

const (
	AgentTypeAutonomous AgentType = "autonomous"
	AgentTypeSupervised AgentType = "supervised"
	AgentTypeEphemeral  AgentType = "ephemeral"
)

// IntrospectionResponse is the metadata the server reports for a token (RFC 7662).
// Active is the only field callers should treat as authoritative; it is true only
// when the server sent the boolean true. A member that does not fit its field is
// kept in Extra with the members not declared here.
type IntrospectionResponse struct {
	Active         bool        `json:"active"`
	Scope          string      `json:"scope,omitempty"`
	ClientID       string      `json:"client_id,omitempty"`
	UserID         string      `json:"user_id,omitempty"`
	Username       string      `json:"username,omitempty"`
	Email          string      `json:"email,omitempty"`
	OrganizationID string      `json:"organization_id,omitempty"`
	TenantID       string      `json:"tenant_id,omitempty"`
	TokenType      string      `json:"token_type,omitempty"`
	Exp            json.Number `json:"exp,omitempty"` // Expiration
	Iat            json.Number `json:"iat,omitempty"` // Issued at time
	Sub            string      `json:"sub,omitempty"`

	// Agent and delegation metadata, passed through without interpretation
	AgentType           AgentType       `json:"agent_type,omitempty"`
	DelegatedBy         json.RawMessage `json:"delegated_by,omitempty"`
	DelegationChain     json.RawMessage `json:"delegation_chain,omitempty"`
	DelegationDepth     json.Number     `json:"delegation_depth,omitempty"`
	TaskID              string          `json:"task_id,omitempty"`
	MaxOperations       json.Number     `json:"max_operations,omitempty"`
	OperationsRemaining json.Number     `json:"operations_remaining,omitempty"`
	ExpiresOnCompletion *bool           `json:"expires_on_completion,omitempty"`
	IntentDescription   string          `json:"intent_description,omitempty"`

	// Extra holds any other members of the response verbatim (e.g. aud, iss, jti).
	Extra map[string]json.RawMessage `json:"-"`

	present map[string]struct{}
}

// Scopes returns the scopes associated with the token.
func (r *IntrospectionResponse) Scopes() Scopes {
	return ParseScopes(r.Scope)
}

func (r *IntrospectionResponse) UnmarshalJSON(data []byte) error {
	var fields IntrospectionResponse
	extra, present, err := decodeMembers(data, &fields)
	if err != nil {
		return err
	}
	fields.Extra = extra
	fields.present = present
	*r = fields
	return nil
}

func (r IntrospectionResponse) MarshalJSON() ([]byte, error) {
	return encodeMembers(r, r.Extra, r.present)
}
