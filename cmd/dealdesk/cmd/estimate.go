// Package cmd - estimate command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaidy-in/dealdesk/internal/domain"
	"github.com/vaidy-in/dealdesk/internal/export"
)

var (
	outputFormat string
	outputPath   string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [scenario.json]",
	Short: "Estimate costs and pricing for a deal scenario",
	Long: `Run the cost and pricing engines over a scenario document.

Without an argument the built-in default scenario is used.

Examples:
  dealdesk estimate
  dealdesk estimate scenario.json
  dealdesk estimate --format json scenario.json
  dealdesk estimate --format csv --output estimate.csv scenario.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, csv)")
	estimateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	scenario := domain.DefaultScenario()
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read scenario: %w", err)
		}
		if err := json.Unmarshal(data, scenario); err != nil {
			return fmt.Errorf("failed to parse scenario: %w", err)
		}
	}

	estimator := domain.NewEstimatorService(nil)
	estimate, err := estimator.Estimate(context.Background(), scenario)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, createErr := os.Create(outputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer f.Close()
		out = f
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(estimate)
	case "csv":
		return export.WriteCSV(out, scenario, estimate)
	case "text":
		printEstimate(out, scenario, estimate)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}

func printEstimate(w io.Writer, scenario *domain.Scenario, estimate *domain.Estimate) {
	fmt.Fprintf(w, "Deal: %d seats, %d month term\n\n", scenario.Deal.Seats, scenario.Deal.TermMonths)

	for _, tier := range []domain.TierEstimate{estimate.Vanilla, estimate.Premium} {
		fmt.Fprintf(w, "%s\n", tier.Tier)
		for _, category := range domain.CostCategories {
			fmt.Fprintf(w, "  %-15s %14.2f\n", category, tier.Costs.Amounts[category])
		}
		fmt.Fprintf(w, "  %-15s %14.2f\n", "total cost", tier.Costs.Total)
		fmt.Fprintf(w, "  %-15s %14.2f\n", "launch cost", tier.LaunchCosts.Total)

		p := tier.Pricing
		fmt.Fprintf(w, "  list %.2f/seat/mo, net %.2f/seat/mo (%.0f%% discount)\n",
			p.ListPricePerSeatMonth, p.NetPricePerSeatMonth, p.TotalDiscountPct*100)
		fmt.Fprintf(w, "  TCV %.2f, partner %.2f, vendor net %.2f (margin %.1f%%)\n",
			p.TotalContractValue, p.PartnerAmount, p.VendorNet, p.MarginPct)
		fmt.Fprintf(w, "  price floor %.2f/seat/mo\n\n", tier.MinBasePricePerSeatMonth)
	}

	if len(estimate.Issues) > 0 {
		fmt.Fprintf(w, "Issues:\n")
		for _, issue := range estimate.Issues {
			fmt.Fprintf(w, "  [%s] %s\n", issue.Code, issue.Message)
		}
	}
}
