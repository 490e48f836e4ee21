package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/twilio-client/internal/testutil"
	"github.com/fivetwenty-io/twilio-client/pkg/twilio"
)

const accountPath = "/2010-04-01/Accounts/AC123.json"

var testAccount = map[string]any{
	"sid":           "AC123",
	"friendly_name": "Robert Paulson",
	"status":        "active",
	"subresource_uris": map[string]any{
		"calls":        "/2010-04-01/Accounts/AC123/Calls.json",
		"sms_messages": "/2010-04-01/Accounts/AC123/SMS/Messages.json",
	},
}

// gatewayFactory returns a ClientFactory whose clients talk to gateway.
func gatewayFactory(gateway *testutil.Gateway) ClientFactory {
	return func(*cobra.Command) (*twilio.Client, error) {
		return twilio.New(&twilio.Config{
			AccountSID: "AC123",
			Gateway:    gateway,
		})
	}
}

// execute runs sub under a root carrying the global output flag and returns
// what it printed.
func execute(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "twilio", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("output", "o", "", "output format")
	root.AddCommand(sub)

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{sub.Name()}, args...))

	err := root.Execute()

	return out.String(), err
}

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func requireSubcommand(t *testing.T, cmd *cobra.Command, name string) *cobra.Command {
	t.Helper()

	sub := findSubcommand(cmd, name)
	require.NotNil(t, sub, "subcommand %s", name)

	return sub
}
