package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// NewGetCommand creates the get command.
func NewGetCommand(newClient ClientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "get [PATH] [FIELD...]",
		Short: "Show a resource",
		Long: `Show the attributes of a resource, addressed by a path of alternating
collection names and identifiers below the configured account.

With FIELD arguments only those attributes are shown. Absent attributes
are reported as missing rather than as an error.`,
		Example: `  twilio get
  twilio get calls/CA123
  twilio get calls/CA123/notifications/NO123 message_text
  twilio get accounts/AC456 friendly_name status`,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if len(args) > 1 {
				return renderFields(ctx, cmd, instance, args[1:])
			}

			attributes, err := instance.Attributes(ctx)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}

			return renderInstance(cmd, attributes)
		},
	}
}

func renderFields(ctx context.Context, cmd *cobra.Command, instance *resource.Instance, fields []string) error {
	values := make(map[string]any, len(fields))
	states := make([]resource.Lookup, len(fields))

	for i, field := range fields {
		lookup, err := instance.Get(ctx, field)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", field, err)
		}

		states[i] = lookup

		if collection, ok := lookup.Collection(); ok {
			values[field] = collection.Schema().PathName
		} else if lookup.Found() {
			values[field] = lookup.Value
		} else {
			values[field] = nil
		}
	}

	return render(cmd, values, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)
		table.Header("Field", "Value")

		for i, field := range fields {
			value := formatValue(values[field])
			if !states[i].Found() {
				value = "<" + states[i].State.String() + ">"
			}

			_ = table.Append([]string{field, value})
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	})
}
