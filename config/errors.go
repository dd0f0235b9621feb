package config

import (
	"errors"
	"fmt"
)

// Names of the required configuration fields as reported by ConfigurationError.
const (
	FieldClientID    = "clientId"
	FieldRedirectURI = "redirectUri"
	FieldBaseURL     = "baseUrl"
)

// ErrConfiguration matches every *ConfigurationError with errors.Is.
var ErrConfiguration = errors.New("invalid client configuration")

// ConfigurationError reports a missing required field at construction time.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
