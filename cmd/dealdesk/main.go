// Package main is the entry point for the dealdesk CLI.
package main

import (
	"os"

	"github.com/vaidy-in/dealdesk/cmd/dealdesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
