package oauth2

import "encoding/json"

// UserInfo is the OpenID Connect profile returned by the userinfo endpoint.
// Claims not declared here, or not fitting their field, are kept in Extra.
type UserInfo struct {
	Sub            string `json:"sub"`
	Email          string `json:"email,omitempty"`
	EmailVerified  *bool  `json:"email_verified,omitempty"`
	Name           string `json:"name,omitempty"`
	GivenName      string `json:"given_name,omitempty"`
	FamilyName     string `json:"family_name,omitempty"`
	Picture        string `json:"picture,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`

	present map[string]struct{}
}

func (u *UserInfo) UnmarshalJSON(data []byte) error {
	var fields UserInfo
	extra, present, err := decodeMembers(data, &fields)
	if err != nil {
		return err
	}
	fields.Extra = extra
	fields.present = present
	*u = fields
	return nil
}

func (u UserInfo) MarshalJSON() ([]byte, error) {
	return encodeMembers(u, u.Extra, u.present)
}
