package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
	"github.com/fivetwenty-io/twilio-client/pkg/resource"
)

// Common string constants used throughout the commands package.
const (
	defaultJSONIndent = "  "

	paramFlag    = "param"
	pageFlag     = "page"
	pageSizeFlag = "page-size"
	columnsFlag  = "columns"

	defaultPageSize = 50
)

// defaultColumns are shown by list, when present, after the identifier.
var defaultColumns = []string{"friendly_name", "status", "date_created"}

// outputFormat returns the --output flag when given on the command line and
// the configured format otherwise.
func outputFormat(cmd *cobra.Command) string {
	if flag := cmd.Flags().Lookup("output"); flag != nil && flag.Changed {
		return flag.Value.String()
	}

	if format := viper.GetString("output"); format != "" {
		return format
	}

	return constants.FormatTable
}

// parseParams turns KEY=VALUE arguments into ordered parameters. A repeated
// key keeps its first position and takes the last value.
func parseParams(pairs []string) (resource.Params, error) {
	var params resource.Params

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParamFormat, pair)
		}

		params = params.Set(strings.TrimSpace(key), value)
	}

	return params, nil
}

// formatValue renders a decoded JSON value for a table cell.
func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}

		return string(data)
	}
}

func renderJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func renderYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// render writes data as JSON or YAML, or calls table for the table format.
func render(cmd *cobra.Command, data any, table func(w io.Writer) error) error {
	w := cmd.OutOrStdout()

	switch format := outputFormat(cmd); format {
	case constants.FormatJSON:
		return renderJSON(w, data)
	case constants.FormatYAML:
		return renderYAML(w, data)
	case constants.FormatTable:
		return table(w)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutputFormat, format)
	}
}

// renderInstance prints one representation as a Property/Value table,
// followed by its sub-resources.
func renderInstance(cmd *cobra.Command, rep resource.Representation) error {
	return render(cmd, rep, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")

		for _, key := range sortedKeys(rep) {
			if key == constants.SubresourceURIsField {
				continue
			}

			_ = table.Append([]string{key, formatValue(rep[key])})
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		subresources := rep.SubresourceURIs()
		if len(subresources) == 0 {
			return nil
		}

		_, _ = fmt.Fprintln(w, "\nSubresources:")

		children := tablewriter.NewWriter(w)
		children.Header("Name", "URI")

		for _, key := range sortedKeys(subresources) {
			_ = children.Append([]string{key, subresources[key]})
		}

		err = children.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	})
}

// renderPage prints the entries of a page with the given columns.
func renderPage(cmd *cobra.Command, page *resource.Page, columns []string) error {
	return render(cmd, page.Fields, func(w io.Writer) error {
		if len(page.Items) == 0 {
			_, _ = fmt.Fprintln(w, "No entries found")

			return nil
		}

		header := make([]any, len(columns))
		for i, column := range columns {
			header[i] = strings.ToUpper(column)
		}

		table := tablewriter.NewWriter(w)
		table.Header(header...)

		for _, item := range page.Items {
			row := make([]string, len(columns))
			for i, column := range columns {
				row[i] = formatValue(item[column])
			}

			_ = table.Append(row)
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		if total, ok := page.Total(); ok {
			_, _ = fmt.Fprintf(w, "\nPage %d, %d of %d entries\n", page.Number, len(page.Items), total)
		}

		return nil
	})
}

// listColumns picks the identifier plus the default columns present in the
// first entry, unless columns were requested explicitly.
func listColumns(requested []string, idField string, items []resource.Representation) []string {
	if len(requested) > 0 {
		return requested
	}

	columns := []string{idField}
	if len(items) == 0 {
		return columns
	}

	for _, column := range defaultColumns {
		if _, ok := items[0][column]; ok {
			columns = append(columns, column)
		}
	}

	return columns
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
