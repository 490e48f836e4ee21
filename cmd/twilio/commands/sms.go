package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// NewSmsCommand creates the sms command group.
func NewSmsCommand(newClient ClientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sms",
		Short: "Send SMS messages",
	}

	cmd.AddCommand(newSmsSendCommand(newClient))

	return cmd
}

func newSmsSendCommand(newClient ClientFactory) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "send FROM TO BODY",
		Short: "Send an SMS message",
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

			messages, err := client.Account().SmsMessages(ctx)
			if err != nil {
				return err
			}

			message, err := messages.SendSms(ctx, args[0], args[1], args[2], extra)
			if err != nil {
				return err
			}

			attributes, err := message.Attributes(ctx)
			if err != nil {
				return err
			}

			return renderInstance(cmd, attributes)
		},
	}

	cmd.Flags().StringArrayVarP(&params, paramFlag, "p", nil, "additional parameter as KEY=VALUE (repeatable)")

	return cmd
}
