// Package app contains the Cobra command tree for discordstats.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "discordstats [archive]",
	Short: "Message and call statistics for exported Discord chats",
	Long: `discordstats reads a Discord chat export (JSON) and reports the total
number of messages, messages per author, the total time spent in calls, and
the longest call.

The archive path defaults to the "archive" key in the config file.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagVerbose)
	},
	RunE: runReport,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/discordstats/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
