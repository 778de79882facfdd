// Package export renders estimates into shareable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vaidy-in/dealdesk/internal/domain"
)

// WriteCSV renders an estimate as CSV, one row per figure. Monetary rows
// carry both the primary-currency amount and its FX-converted equivalent
// (amount divided by the deal's FX rate). Ratios and counts leave the
// converted column empty.
func WriteCSV(w io.Writer, scenario *domain.Scenario, estimate *domain.Estimate) error {
	cw := csv.NewWriter(w)

	fx := scenario.Deal.FXRate

	if err := cw.Write([]string{"section", "tier", "item", "amount", "amount_fx"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	rows := make([][]string, 0, 64)
	rows = append(rows,
		plainRow("deal", "", "seats", float64(scenario.Deal.Seats)),
		plainRow("deal", "", "term_months", float64(scenario.Deal.TermMonths)),
		moneyRow("deal", "", "setup_fee", scenario.Deal.SetupFee, fx),
		plainRow("deal", "", "fx_rate", fx),
	)

	for _, tier := range []domain.TierEstimate{estimate.Vanilla, estimate.Premium} {
		rows = append(rows, tierRows(tier, fx)...)
	}

	for _, issue := range estimate.Issues {
		rows = append(rows, []string{"issue", string(issue.Tier), string(issue.Code), issue.Message, ""})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func tierRows(tier domain.TierEstimate, fx float64) [][]string {
	name := string(tier.Tier)
	rows := make([][]string, 0, 32)

	for _, category := range domain.CostCategories {
		rows = append(rows, moneyRow("costs", name, string(category), tier.Costs.Amounts[category], fx))
	}
	rows = append(rows,
		moneyRow("costs", name, "total", tier.Costs.Total, fx),
		plainRow("costs", name, "storage_gb", tier.Costs.StorageGB),
		moneyRow("launch_costs", name, "total", tier.LaunchCosts.Total, fx),
	)

	p := tier.Pricing
	rows = append(rows,
		moneyRow("pricing", name, "list_price_per_seat_month", p.ListPricePerSeatMonth, fx),
		moneyRow("pricing", name, "net_price_per_seat_month", p.NetPricePerSeatMonth, fx),
		plainRow("pricing", name, "total_discount_pct", p.TotalDiscountPct),
		moneyRow("pricing", name, "annual_contract_value", p.AnnualContractValue, fx),
		moneyRow("pricing", name, "total_contract_value", p.TotalContractValue, fx),
		moneyRow("pricing", name, "revenue", p.Revenue, fx),
		moneyRow("pricing", name, "partner_amount", p.PartnerAmount, fx),
		moneyRow("pricing", name, "vendor_net", p.VendorNet, fx),
		plainRow("pricing", name, "margin_pct", p.MarginPct),
		moneyRow("pricing", name, "min_base_price_per_seat_month", tier.MinBasePricePerSeatMonth, fx),
	)

	for _, year := range p.Schedule {
		item := fmt.Sprintf("year_%d_partner_amount", year.Year)
		rows = append(rows, moneyRow("revenue_share", name, item, year.PartnerAmount, fx))
	}

	return rows
}

func moneyRow(section, tier, item string, amount, fx float64) []string {
	converted := ""
	if fx > 0 {
		converted = formatAmount(amount / fx)
	}
	return []string{section, tier, item, formatAmount(amount), converted}
}

func plainRow(section, tier, item string, value float64) []string {
	return []string{section, tier, item, formatAmount(value), ""}
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
