package oauthmodel_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jrsteele09/thalamus-go/oauth2"
	"github.com/jrsteele09/thalamus-go/oauthmodel"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationParameters_Encode(t *testing.T) {
	p := oauthmodel.AuthorizationParameters{
		ResponseType: oauth2.CodeResponseType,
		ClientID:     "test_client_id",
		RedirectURI:  "http://localhost:3000/callback",
		Scope:        oauth2.Scopes{"openid", "profile", "email"},
		State:        "abc",
	}

	require.Equal(t,
		"response_type=code&client_id=test_client_id&redirect_uri=http%3A%2F%2Flocalhost%3A3000%2Fcallback&scope=openid+profile+email&state=abc",
		p.Encode())

	t.Run("pkce and oidc extras", func(t *testing.T) {
		p := p
		p.CodeChallenge = "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"
		p.CodeChallengeMethod = oauth2.CodeMethodTypeS256
		p.Nonce = "n-0S6"
		p.LoginHint = "user@example.com"

		require.Equal(t,
			"response_type=code&client_id=test_client_id&redirect_uri=http%3A%2F%2Flocalhost%3A3000%2Fcallback&scope=openid+profile+email&state=abc"+
				"&code_challenge=E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM&code_challenge_method=S256&nonce=n-0S6&login_hint=user%40example.com",
			p.Encode())
	})

	t.Run("challenge and method are independent", func(t *testing.T) {
		p := p
		p.CodeChallengeMethod = oauth2.CodeMethodTypePlain
		require.True(t, strings.HasSuffix(p.Encode(), "&state=abc&code_challenge_method=plain"))
		require.NotContains(t, p.Encode(), "code_challenge=")

		p.CodeChallengeMethod = ""
		p.CodeChallenge = "challenge"
		require.True(t, strings.HasSuffix(p.Encode(), "&state=abc&code_challenge=challenge"))
	})
}

func TestAuthorizationParameters_Validate(t *testing.T) {
	p := oauthmodel.AuthorizationParameters{ResponseType: oauth2.CodeResponseType}
	require.NoError(t, p.Validate())

	p.ResponseType = "token"
	require.ErrorIs(t, p.Validate(), oauthmodel.ErrInvalidResponseType)

	p.ResponseType = oauth2.CodeResponseType
	p.CodeChallenge = "challenge"
	p.CodeChallengeMethod = "md5"
	require.ErrorIs(t, p.Validate(), oauthmodel.ErrInvalidCodeChallengeMethod)

	p.CodeChallenge = ""
	require.ErrorIs(t, p.Validate(), oauthmodel.ErrInvalidCodeChallengeMethod)

	p.CodeChallengeMethod = oauth2.CodeMethodTypePlain
	require.NoError(t, p.Validate())
}

func TestTokenRequest_JSON(t *testing.T) {
	t.Run("authorization code", func(t *testing.T) {
		body, err := json.Marshal(oauthmodel.TokenRequest{
			GrantType:    oauth2.AuthorizationCodeGrant,
			Code:         "code123",
			ClientID:     "cid",
			ClientSecret: "secret",
			RedirectURI:  "http://localhost/cb",
		})
		require.NoError(t, err)
		require.JSONEq(t, `{"grant_type":"authorization_code","code":"code123","client_id":"cid","client_secret":"secret","redirect_uri":"http://localhost/cb"}`, string(body))
	})

	t.Run("public client omits secret", func(t *testing.T) {
		body, err := json.Marshal(oauthmodel.TokenRequest{
			GrantType:    oauth2.RefreshTokenGrant,
			ClientID:     "cid",
			RefreshToken: "rt",
		})
		require.NoError(t, err)
		require.JSONEq(t, `{"grant_type":"refresh_token","client_id":"cid","refresh_token":"rt"}`, string(body))
	})
}

func TestRevokeRequest(t *testing.T) {
	body, err := json.Marshal(oauthmodel.RevokeRequest{Token: "at_1"})
	require.NoError(t, err)
	require.JSONEq(t, `{"token":"at_1"}`, string(body))

	require.NoError(t, oauthmodel.RevokeRequest{Token: "t", TokenTypeHint: oauth2.RefreshTokenHint}.Validate())
	require.ErrorIs(t, oauthmodel.RevokeRequest{Token: "t", TokenTypeHint: "id_token"}.Validate(), oauthmodel.ErrInvalidTokenTypeHint)
}
