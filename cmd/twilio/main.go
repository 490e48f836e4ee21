package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/twilio-client/cmd/twilio/commands"
	"github.com/fivetwenty-io/twilio-client/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "twilio",
	Short: "Twilio REST API CLI",
	Long: `A command-line interface for browsing the Twilio REST API.

Resources are addressed by paths below your account, such as
calls/CA123/notifications. Collections are discovered from the API, so
every resource the API exposes can be listed, shown, created and updated.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.twilio/config.yml)")
	rootCmd.PersistentFlags().String("account-sid", "", "account SID")
	rootCmd.PersistentFlags().String("auth-token", "", "auth token")
	rootCmd.PersistentFlags().String("api-version", "", "API version (default "+constants.DefaultAPIVersion+")")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (default "+constants.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().Int("retries", constants.DefaultRetryMax, "retries for connection errors, 429 and 5xx responses (POST only on connection errors and 429)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("account_sid", rootCmd.PersistentFlags().Lookup("account-sid"))
	_ = viper.BindPFlag("auth_token", rootCmd.PersistentFlags().Lookup("auth-token"))
	_ = viper.BindPFlag("api_version", rootCmd.PersistentFlags().Lookup("api-version"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("retries", rootCmd.PersistentFlags().Lookup("retries"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewGetCommand(commands.NewClientFromConfig))
	rootCmd.AddCommand(commands.NewListCommand(commands.NewClientFromConfig))
	rootCmd.AddCommand(commands.NewCreateCommand(commands.NewClientFromConfig))
	rootCmd.AddCommand(commands.NewUpdateCommand(commands.NewClientFromConfig))
	rootCmd.AddCommand(commands.NewCallsCommand(commands.NewClientFromConfig))
	rootCmd.AddCommand(commands.NewSmsCommand(commands.NewClientFromConfig))
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.twilio/config.yml
		viper.AddConfigPath(filepath.Join(home, ".twilio"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, ...
	viper.SetEnvPrefix("TWILIO")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(os.Stderr, err, viper.GetBool("no_color"))
		os.Exit(1)
	}
}
