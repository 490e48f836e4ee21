package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// NewCallsCommand creates the calls command group.
func NewCallsCommand(newClient ClientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calls",
		Aliases: []string{"call"},
		Short:   "Place and control calls",
		Long:    "Place outgoing calls and modify calls in progress",
	}

	cmd.AddCommand(newCallsPlaceCommand(newClient))
	cmd.AddCommand(newCallsHangupCommand(newClient))
	cmd.AddCommand(newCallsRedirectCommand(newClient))

	return cmd
}

func newCallsPlaceCommand(newClient ClientFactory) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "place FROM TO URL",
		Short: "Place an outgoing call",
		Long:  "Call TO from FROM and run the TwiML document at URL once it connects",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parseParams(params)
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			calls, err := client.Account().Calls(ctx)
			if err != nil {
				return err
			}

			call, err := calls.CreateCall(ctx, args[0], args[1], args[2], extra)
			if err != nil {
				return err
			}

			attributes, err := call.Attributes(ctx)
			if err != nil {
				return err
			}

			return renderInstance(cmd, attributes)
		},
	}

	cmd.Flags().StringArrayVarP(&params, paramFlag, "p", nil, "additional parameter as KEY=VALUE (repeatable)")

	return cmd
}

func newCallsHangupCommand(newClient ClientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "hangup CALL_SID",
		Short: "Hang up a call",
		Long:  "End a call whatever state it is in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			calls, err := client.Account().Calls(ctx)
			if err != nil {
				return err
			}

			err = calls.Call(args[0]).Hangup(ctx)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Hung up call %s\n", args[0])

			return nil
		},
	}
}

func newCallsRedirectCommand(newClient ClientFactory) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "redirect CALL_SID URL",
		Short: "Redirect a call",
		Long:  "Move a call in progress to the TwiML document at URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			calls, err := client.Account().Calls(ctx)
			if err != nil {
				return err
			}

			var extra resource.Params
			if method != "" {
				extra = resource.NewParams("Method", method)
			}

			err = calls.Call(args[0]).Redirect(ctx, args[1], extra)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Redirected call %s to %s\n", args[0], args[1])

			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "HTTP method used to fetch URL (GET or POST)")

	return cmd
}
