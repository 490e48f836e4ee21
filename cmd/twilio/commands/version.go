package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
)

// VersionInfo is the build metadata printed by the version command.
type VersionInfo struct {
	Version    string `json:"version"     yaml:"version"`
	Commit     string `json:"commit"      yaml:"commit"`
	Built      string `json:"built"       yaml:"built"`
	APIVersion string `json:"api_version" yaml:"api_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the Twilio CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:    version,
				Commit:     commit,
				Built:      date,
				APIVersion: constants.DefaultAPIVersion,
			}

			return render(cmd, info, func(w io.Writer) error {
				table := tablewriter.NewWriter(w)
				table.Header("Property", "Value")
				_ = table.Append("Version", info.Version)
				_ = table.Append("Commit", info.Commit)
				_ = table.Append("Built", info.Built)
				_ = table.Append("API Version", info.APIVersion)

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
