// Package cmd provides the CLI commands for dealdesk.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dealdesk",
	Short: "Cost and pricing estimates for enterprise video-learning deals",
	Long: `dealdesk computes operating costs, discounted pricing, revenue-share
schedules and margin-compliant price floors for a deal scenario.

Examples:
  dealdesk init > scenario.json
  dealdesk estimate scenario.json
  dealdesk estimate --format csv --output estimate.csv scenario.json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(initCmd)
}
