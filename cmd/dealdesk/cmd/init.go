// Package cmd - init command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaidy-in/dealdesk/internal/domain"
)

var initOutputPath string

// initCmd writes the default scenario as a starting point for editing.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default scenario document",
	Long: `Write the built-in default scenario as JSON, as a starting point
for editing deal-specific assumptions.

Examples:
  dealdesk init > scenario.json
  dealdesk init --output scenario.json`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", "", "write scenario to file instead of stdout")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if initOutputPath != "" {
		f, err := os.Create(initOutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(domain.DefaultScenario())
}
