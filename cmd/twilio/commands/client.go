package commands

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
	"github.com/fivetwenty-io/twilio-client/pkg/twilio"
)

// ClientFactory builds the API client a command talks to.
type ClientFactory func(cmd *cobra.Command) (*twilio.Client, error)

// NewClientFromConfig builds a client from flags, environment and the
// config file. When no auth token is configured and stdin is a terminal the
// token is prompted for.
func NewClientFromConfig(cmd *cobra.Command) (*twilio.Client, error) {
	accountSID := viper.GetString("account_sid")
	if accountSID == "" {
		return nil, constants.ErrNoAccountSID
	}

	authToken := viper.GetString("auth_token")
	if authToken == "" {
		token, err := promptAuthToken(cmd)
		if err != nil {
			return nil, err
		}

		authToken = token
	}

	verbose := viper.GetBool("verbose")

	client, err := twilio.New(&twilio.Config{
		AccountSID: accountSID,
		AuthToken:  authToken,
		BaseURL:    viper.GetString("base_url"),
		APIVersion: viper.GetString("api_version"),
		UserAgent:  constants.DefaultUserAgent + "-cli",
		RetryMax:   viper.GetInt("retries"),
		Debug:      verbose,
		Logger:     NewZapLogger(verbose),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func promptAuthToken(cmd *cobra.Command) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", constants.ErrNoAuthToken
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Auth Token: ")

	tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read auth token: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if len(tokenBytes) == 0 {
		return "", constants.ErrNoAuthToken
	}

	return string(tokenBytes), nil
}
