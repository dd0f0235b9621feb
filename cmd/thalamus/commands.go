package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jrsteele09/thalamus-go/auth"
	"github.com/jrsteele09/thalamus-go/internal/utils"
	"github.com/jrsteele09/thalamus-go/oauth2"
	"github.com/jrsteele09/thalamus-go/token"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errTokenInactive = errors.New("token is not active")

func newAuthorizeURLCommand(flags *globalFlags) *cobra.Command {
	var (
		scopes string
		opts   auth.AuthorizationURLOptions
		method string
	)
	cmd := &cobra.Command{
		Use:   "authorize-url",
		Short: "Print the URL to send a user to for login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			if scopes != "" {
				opts.Scope = utils.SplitList(scopes)
			}
			opts.CodeChallengeMethod = oauth2.CodeMethodType(method)

			params := client.Auth.AuthorizationParameters(opts)
			if err := params.Validate(); err != nil {
				return err
			}
			log.Debug().Str("state", params.State).Msg("authorization state")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), client.Auth.AuthorizationURL(params))
			return err
		},
	}
	cmd.Flags().StringVar(&scopes, "scopes", "", "requested scopes (default: configured scopes)")
	cmd.Flags().StringVar(&opts.State, "state", "", "state value (default: random)")
	cmd.Flags().StringVar(&opts.CodeChallenge, "code-challenge", "", "PKCE code challenge")
	cmd.Flags().StringVar(&method, "code-challenge-method", "", "PKCE code challenge method: S256 or plain")
	cmd.Flags().StringVar(&opts.Nonce, "nonce", "", "OpenID Connect nonce")
	cmd.Flags().StringVar(&opts.LoginHint, "login-hint", "", "pre-filled login name")
	return cmd
}

func newExchangeCommand(flags *globalFlags) *cobra.Command {
	var verifier string
	cmd := &cobra.Command{
		Use:   "exchange CODE",
		Short: "Exchange an authorization code for tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			var options []auth.ExchangeOption
			if verifier != "" {
				options = append(options, auth.WithCodeVerifier(verifier))
			}
			resp, err := client.Auth.ExchangeCode(cmd.Context(), args[0], options...)
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&verifier, "code-verifier", "", "PKCE code verifier")
	return cmd
}

func newClientCredentialsCommand(flags *globalFlags) *cobra.Command {
	var scopes string
	cmd := &cobra.Command{
		Use:   "client-credentials",
		Short: "Obtain a token for the client itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			var opts auth.ClientCredentialsOptions
			if scopes != "" {
				opts.Scope = utils.SplitList(scopes)
			}
			resp, err := client.Auth.GetClientCredentialsToken(cmd.Context(), opts)
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&scopes, "scopes", "", "requested scopes (default: configured scopes)")
	return cmd
}

func newRefreshCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh REFRESH_TOKEN",
		Short: "Exchange a refresh token for new tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			resp, err := client.Auth.RefreshToken(cmd.Context(), auth.RefreshTokenOptions{RefreshToken: args[0]})
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newRevokeCommand(flags *globalFlags) *cobra.Command {
	var hint string
	cmd := &cobra.Command{
		Use:   "revoke TOKEN",
		Short: "Revoke an access or refresh token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			if err := client.Auth.RevokeToken(cmd.Context(), args[0], oauth2.TokenTypeHint(hint)); err != nil {
				return describe(err)
			}
			log.Info().Msg("token revoked")
			return nil
		},
	}
	cmd.Flags().StringVar(&hint, "hint", "", "token type hint: access_token or refresh_token")
	return cmd
}

func newIntrospectCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "introspect TOKEN",
		Short: "Show the server's metadata for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			resp, err := client.Tokens.Introspect(cmd.Context(), args[0])
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func newUserInfoCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "userinfo ACCESS_TOKEN",
		Short: "Show the profile of the user an access token belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			info, err := client.Tokens.GetUserInfo(cmd.Context(), args[0])
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

func newValidateCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate TOKEN",
		Short: "Exit non-zero unless the token is active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			active := client.Tokens.Validate(cmd.Context(), args[0])
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), active); err != nil {
				return err
			}
			if !active {
				return errTokenInactive
			}
			return nil
		},
	}
}

func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode TOKEN",
		Short: "Print the claims of a JWT without verifying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			claims, err := token.Decode(args[0])
			if err != nil {
				return err
			}
			if claims.Expired(time.Now()) {
				log.Warn().Time("expired_at", *claims.ExpiresAt).Msg("token has expired")
			}
			return printJSON(cmd.OutOrStdout(), claims.Raw)
		},
	}
}

// describe adds the server's error code to API errors for the log line
func describe(err error) error {
	apiErr, ok := oauth2.AsError(err)
	if !ok {
		return err
	}
	if apiErr.Code == "" {
		return fmt.Errorf("server returned %d: %w", apiErr.StatusCode, err)
	}
	return fmt.Errorf("server returned %d %s: %w", apiErr.StatusCode, apiErr.Code, err)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
