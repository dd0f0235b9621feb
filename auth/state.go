package auth

import (
	"crypto/rand"
	"encoding/hex"
)

const stateLength = 32

// GenerateState returns 32 random bytes from crypto/rand as 64 lowercase hex
// characters. Every call returns a new value.
func GenerateState() string {
	b := make([]byte, stateLength)
	// rand.Read never returns an error and always fills b
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
