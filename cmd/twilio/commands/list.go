package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(newClient ClientFactory) *cobra.Command {
	var (
		page     int
		pageSize int
		params   []string
		columns  []string
	)

	cmd := &cobra.Command{
		Use:     "list PATH",
		Aliases: []string{"ls"},
		Short:   "List one page of a collection",
		Long: `List one page of the collection named by PATH. Filters are passed to the
API as query parameters in the order given.`,
		Example: `  twilio list calls
  twilio list calls --param Status=completed --page-size 20
  twilio list sms_messages --columns sid,to,body
  twilio list calls/CA123/notifications`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseParams(params)
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

			result, err := collection.Page(ctx, page, pageSize, query)
			if err != nil {
				return err
			}

			return renderPage(cmd, result, listColumns(columns, collection.Schema().IDField, result.Items))
		},
	}

	cmd.Flags().IntVar(&page, pageFlag, 0, "page number, starting at 0")
	cmd.Flags().IntVar(&pageSize, pageSizeFlag, defaultPageSize, "entries per page")
	cmd.Flags().StringArrayVarP(&params, paramFlag, "p", nil, "filter as KEY=VALUE (repeatable)")
	cmd.Flags().StringSliceVar(&columns, columnsFlag, nil, "columns to show in table output")

	return cmd
}
