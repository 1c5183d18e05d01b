package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	apiURL       string
	clientSecret string
	format       string
	quiet        bool
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flagresolve",
	Short: "CLI tool for resolving feature flags against a remote resolver",
	Long: `Flagresolve is a command-line tool for evaluating feature flags with the
flagresolve SDK against a live resolver backend.

Examples:
  flagresolve resolve my-flag --secret sec-123
  flagresolve resolve my-flag.color --targeting-key user-42 --set plan=premium
  flagresolve resolve my-flag --url http://localhost:8080 --format json`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", "", "Base URL of the flag resolver API")
	rootCmd.PersistentFlags().StringVar(&clientSecret, "secret", "", "Client secret for authentication")
	rootCmd.PersistentFlags().StringVar(&format, "format", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log resolve calls to stderr")
}
