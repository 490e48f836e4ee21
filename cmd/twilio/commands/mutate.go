package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// NewCreateCommand creates the create command.
func NewCreateCommand(newClient ClientFactory) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "create PATH",
		Short: "Create a member of a collection",
		Long:  "POST the given parameters to the collection named by PATH and show the created resource",
		Example: `  twilio create calls -p From=+15005550006 -p To=+14155551212 -p Url=http://example.com/twiml
  twilio create incoming_phone_numbers -p PhoneNumber=+14155551234`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := requireParams(params)
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			collection, err := client.ResolveCollection(ctx, args[0])
			if err != nil {
				return err
			}

			instance, err := collection.Create(ctx, form)
			if err != nil {
				return err
			}

			attributes, err := instance.Attributes(ctx)
			if err != nil {
				return err
			}

			return renderInstance(cmd, attributes)
		},
	}

	cmd.Flags().StringArrayVarP(&params, paramFlag, "p", nil, "parameter as KEY=VALUE (repeatable)")

	return cmd
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(newClient ClientFactory) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "update PATH",
		Short: "Update a resource",
		Long: `POST the given parameters to the resource named by PATH. The server's
new state is not fetched; run get afterwards to see it.`,
		Example: `  twilio update calls/CA123 -p Status=completed
  twilio update -p FriendlyName=Production`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := requireParams(params)
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			ctx := context.Background()

			instance, err := client.ResolveInstance(ctx, path)
			if err != nil {
				return err
			}

			err = instance.Update(ctx, form)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", instance.Name(), instance.ID())

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&params, paramFlag, "p", nil, "parameter as KEY=VALUE (repeatable)")

	return cmd
}

func requireParams(pairs []string) (resource.Params, error) {
	if len(pairs) == 0 {
		return nil, constants.ErrNoParams
	}

	return parseParams(pairs)
}
