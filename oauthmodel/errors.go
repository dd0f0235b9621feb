package oauthmodel

import "errors"

var (
	ErrInvalidTokenTypeHint       = errors.New("token type hint must be access_token or refresh_token")
	ErrInvalidCodeChallengeMethod = errors.New("invalid code challenge method")
	ErrInvalidResponseType        = errors.New("unsupported response type")
)
