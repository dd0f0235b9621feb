package oauth2

import (
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/thalamus-go/internal/errors"
)

// Error codes the server reports in the "error" member (RFC 6749 section 5.2).
const (
	ErrorInvalidRequest       = "invalid_request"
	ErrorInvalidClient        = "invalid_client"
	ErrorInvalidGrant         = "invalid_grant"
	ErrorUnauthorizedClient   = "unauthorized_client"
	ErrorUnsupportedGrantType = "unsupported_grant_type"
	ErrorInvalidScope         = "invalid_scope"
	ErrorInvalidToken         = "invalid_token"
	ErrorServerError          = "server_error"
)

// Error is returned for every non-2xx response from the server.
type Error struct {
	// Message is error_description, else message, else "HTTP <status>".
	Message string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the server's "error" member, if any.
	Code string

	// Description is the server's "error_description" member, if any.
	Description string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds the Error for a failed response. A body that is not a JSON
// object is treated as empty, and members that are not strings are ignored.
func NewError(statusCode int, body []byte) *Error {
	var members map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &members); err != nil {
			members = nil
		}
	}
	str := func(name string) string {
		s, _ := members[name].(string)
		return s
	}

	msg := str("error_description")
	if msg == "" {
		msg = str("message")
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", statusCode)
	}

	return &Error{
		Message:     msg,
		StatusCode:  statusCode,
		Code:        str("error"),
		Description: str("error_description"),
	}
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
