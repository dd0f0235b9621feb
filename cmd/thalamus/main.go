package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/thalamus-go"
	"github.com/jrsteele09/thalamus-go/config"
	"github.com/jrsteele09/thalamus-go/internal/utils"
	"github.com/jrsteele09/thalamus-go/transport"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const appName = "Thalamus"

// globalFlags are shared by every command; empty values fall back to THALAMUS_* variables
type globalFlags struct {
	baseURL      string
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	timeout      time.Duration
	debug        bool
	trace        bool
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "thalamus",
		Short:         "Command line client for a Thalamus OAuth2 server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			displayAppname(appName)
			_ = cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.baseURL, "base-url", "", "server base URL (THALAMUS_BASE_URL)")
	pf.StringVar(&flags.clientID, "client-id", "", "client id (THALAMUS_CLIENT_ID)")
	pf.StringVar(&flags.clientSecret, "client-secret", "", "client secret (THALAMUS_CLIENT_SECRET)")
	pf.StringVar(&flags.redirectURI, "redirect-uri", "", "registered redirect URI (THALAMUS_REDIRECT_URI)")
	pf.StringVar(&flags.scopes, "scope", "", "default scopes, space or comma separated (THALAMUS_SCOPES)")
	pf.DurationVar(&flags.timeout, "timeout", 30*time.Second, "HTTP request timeout")
	pf.BoolVar(&flags.debug, "debug", false, "log every request")
	pf.BoolVar(&flags.trace, "trace", false, "instrument requests with OpenTelemetry")

	root.AddCommand(
		newAuthorizeURLCommand(flags),
		newExchangeCommand(flags),
		newClientCredentialsCommand(flags),
		newRefreshCommand(flags),
		newRevokeCommand(flags),
		newIntrospectCommand(flags),
		newUserInfoCommand(flags),
		newValidateCommand(flags),
		newDecodeCommand(),
	)
	return root
}

// options merges flags over the environment
func (f *globalFlags) options() config.Options {
	opts := config.FromEnv()
	if f.baseURL != "" {
		opts.BaseURL = f.baseURL
	}
	if f.clientID != "" {
		opts.ClientID = f.clientID
	}
	if f.clientSecret != "" {
		opts.ClientSecret = f.clientSecret
	}
	if f.redirectURI != "" {
		opts.RedirectURI = f.redirectURI
	}
	if f.scopes != "" {
		opts.DefaultScopes = utils.SplitList(f.scopes)
	}
	return opts
}

func (f *globalFlags) client() (*thalamus.Client, error) {
	transportOptions := []transport.Option{
		transport.WithHTTPClient(&http.Client{Timeout: f.timeout}),
		transport.WithLogger(log.Logger),
		transport.WithUserAgent("thalamus-cli"),
	}
	if f.trace {
		transportOptions = append(transportOptions, transport.WithTracing())
	}
	client, err := thalamus.New(f.options(), transportOptions...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return client, nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
