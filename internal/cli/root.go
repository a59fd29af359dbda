// Package cli wires the hover command tree.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoverctl/hover/hosting"
	"github.com/hoverctl/hover/internal/console"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// Environment variables consulted when the matching flags are absent.
const (
	envToken  = "HOVER_TOKEN"
	envAPIURL = "HOVER_API_URL"
)

// options carries global flag state shared by all subcommands.
type options struct {
	token    string
	apiURL   string
	logLevel string

	console *console.Console
}

// client builds an API client from flags and environment.
func (o *options) client() *hosting.Client {
	token := o.token
	if token == "" {
		token = os.Getenv(envToken)
	}

	var clientOpts []hosting.Option
	apiURL := o.apiURL
	if apiURL == "" {
		apiURL = os.Getenv(envAPIURL)
	}
	if apiURL != "" {
		clientOpts = append(clientOpts, hosting.WithBaseURL(apiURL))
	}
	return hosting.NewClient(token, clientOpts...)
}

// NewRootCommand creates and returns the root cobra command for hover.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hover",
		Short: "Client for the Hover hosting service",
		Long: `Hover manages applications deployed to the Hover hosting service.

It lists, scales, starts, stops, and deletes hosted apps, streams their
logs, and validates the cloud.yml deployment configuration.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.console = console.New(cmd.OutOrStdout(), opts.logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "authentication token (defaults to $HOVER_TOKEN)")
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "hosting API base URL (defaults to $HOVER_API_URL)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "loglevel", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(NewAppsCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// wrapAuthError swaps a raw authentication failure for an actionable hint.
func wrapAuthError(err error) error {
	if errors.Is(err, hosting.ErrNotAuthenticated) {
		return errors.New("you are not authenticated: pass --token or set HOVER_TOKEN")
	}
	return err
}

// resolveAppID picks the app ID from the positional argument or resolves the
// --app-name flag through the search API.
func resolveAppID(ctx context.Context, client *hosting.Client, args []string, appName string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if appName != "" {
		app, err := client.SearchApp(ctx, appName, "")
		if err != nil {
			return "", wrapAuthError(err)
		}
		if app != nil {
			return app.ID, nil
		}
	}
	return "", errors.New("no valid app id or app name provided")
}
