package token

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/thalamus-go/internal/errors"
)

// VerifyIDToken checks the signature of an ID token against the server JWKS and
// validates its issuer, audience (the client ID) and expiry.
// The caller still has to compare the nonce claim with the one it sent.
func (m *Manager) VerifyIDToken(ctx context.Context, rawIDToken string) (*oidc.IDToken, error) {
	idToken, err := m.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.Wrapf(err, "[token VerifyIDToken]")
	}
	return idToken, nil
}
