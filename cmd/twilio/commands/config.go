package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/twilio-client/internal/constants"
)

const (
	configDirName  = ".twilio"
	configFileName = "config.yml"
	masked         = "***"
)

// Config represents the CLI configuration file.
type Config struct {
	AccountSID string `json:"account_sid,omitempty" yaml:"account_sid,omitempty"`
	AuthToken  string `json:"auth_token,omitempty"  yaml:"auth_token,omitempty"`
	APIVersion string `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	BaseURL    string `json:"base_url,omitempty"    yaml:"base_url,omitempty"`
	Output     string `json:"output,omitempty"      yaml:"output,omitempty"`
	Retries    int    `json:"retries,omitempty"     yaml:"retries,omitempty"`
	NoColor    bool   `json:"no_color,omitempty"    yaml:"no_color,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.twilio/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment and config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.AuthToken != "" {
				config.AuthToken = masked
			}

			return render(cmd, config, func(w io.Writer) error {
				return displayConfigTable(w, config)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file. Keys: account_sid,
auth_token, api_version, base_url, output, retries, no_color.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := readConfigFile(path)
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config, path)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)

			return nil
		},
	}
}

// loadConfig returns the effective configuration as seen through viper.
func loadConfig() *Config {
	return &Config{
		AccountSID: viper.GetString("account_sid"),
		AuthToken:  viper.GetString("auth_token"),
		APIVersion: viper.GetString("api_version"),
		BaseURL:    viper.GetString("base_url"),
		Output:     viper.GetString("output"),
		Retries:    viper.GetInt("retries"),
		NoColor:    viper.GetBool("no_color"),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "account_sid":
		config.AccountSID = value
	case "auth_token":
		config.AuthToken = value
	case "api_version":
		config.APIVersion = value
	case "base_url":
		config.BaseURL = value
	case "output":
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutputFormat, value)
		}
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil || retries < 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidRetries, value)
		}

		config.Retries = retries
	case "no_color":
		noColor, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for no_color: %w", err)
		}

		config.NoColor = noColor
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath returns the file viper read, or ~/.twilio/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

// readConfigFile reads only the file, so flags and environment are never
// written back. A missing file is an empty configuration.
func readConfigFile(path string) (*Config, error) {
	config := &Config{}

	// path comes from the --config flag or the user's home directory
	// #nosec G304
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfig(config *Config, path string) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displayConfigTable(w io.Writer, config *Config) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append([]string{"Account SID", config.AccountSID})
	_ = table.Append([]string{"Auth Token", config.AuthToken})
	_ = table.Append([]string{"API Version", valueOrDefault(config.APIVersion, constants.DefaultAPIVersion)})
	_ = table.Append([]string{"Base URL", valueOrDefault(config.BaseURL, constants.DefaultBaseURL)})
	_ = table.Append([]string{"Output", valueOrDefault(config.Output, constants.FormatTable)})
	_ = table.Append([]string{"Retries", strconv.Itoa(config.Retries)})
	_ = table.Append([]string{"No Color", strconv.FormatBool(config.NoColor)})

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		_ = table.Append([]string{"Config File", configFile})
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
