package config

import (
	"os"

	"github.com/jrsteele09/thalamus-go/internal/utils"
)

const (
	clientIDEnvVar     = "THALAMUS_CLIENT_ID"
	clientSecretEnvVar = "THALAMUS_CLIENT_SECRET"
	redirectURIEnvVar  = "THALAMUS_REDIRECT_URI"
	baseURLEnvVar      = "THALAMUS_BASE_URL"
	scopesEnvVar       = "THALAMUS_SCOPES"
)

// FromEnv reads Options from the THALAMUS_* environment variables. The result is
// not validated; pass it to New.
// THALAMUS_SCOPES may be separated by spaces or commas.
func FromEnv() Options {
	var scopes []string
	if s := GetEnv(scopesEnvVar, ""); s != "" {
		scopes = utils.SplitList(s)
	}
	return Options{
		ClientID:      GetEnv(clientIDEnvVar, ""),
		ClientSecret:  GetEnv(clientSecretEnvVar, ""),
		RedirectURI:   GetEnv(redirectURIEnvVar, ""),
		BaseURL:       GetEnv(baseURLEnvVar, "http://localhost:4000"),
		DefaultScopes: scopes,
	}
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
