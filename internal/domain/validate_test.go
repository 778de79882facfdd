package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateScenario_Defaults(t *testing.T) {
	require.Empty(t, ValidateScenario(DefaultScenario()))
}

func TestValidateScenario_CollectsEveryViolation(t *testing.T) {
	scenario := DefaultScenario()
	scenario.Deal.Seats = 0
	scenario.Deal.FXRate = 0.5
	scenario.Vanilla.HDFraction = 1.5
	scenario.Premium.VideosPerMonth = -3
	scenario.Rates.CostPerGBStorage = -1

	issues := ValidateScenario(scenario)

	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		require.Equal(t, IssueInvalidInput, issue.Code)
		fields = append(fields, issue.Field)
	}

	// Never fail-fast: all five violations come back in one pass.
	require.Len(t, issues, 5)
	require.Contains(t, fields, "deal.seats")
	require.Contains(t, fields, "deal.fx_rate")
	require.Contains(t, fields, "vanilla.hd_fraction")
	require.Contains(t, fields, "premium.videos_per_month")
	require.Contains(t, fields, "rates.cost_per_gb_storage")
}

func TestValidateScenario_NonFiniteValues(t *testing.T) {
	scenario := DefaultScenario()
	scenario.Deal.SetupFee = math.NaN()
	scenario.Vanilla.StreamingHoursPerSeat = math.Inf(1)

	issues := ValidateScenario(scenario)

	require.Len(t, issues, 2)
	for _, issue := range issues {
		require.Equal(t, "must be a finite number", issue.Message)
	}
}

func TestValidateScenario_Multipliers(t *testing.T) {
	scenario := DefaultScenario()
	scenario.Rates.HDCostMultiplier = 0.5
	scenario.Rates.CostSafetyMultiplier = 0.9

	issues := ValidateScenario(scenario)

	require.Len(t, issues, 2)
	require.Equal(t, "rates.hd_cost_multiplier", issues[0].Field)
	require.Equal(t, "rates.cost_safety_multiplier", issues[1].Field)
}

func TestValidateScenario_PolicyRates(t *testing.T) {
	scenario := DefaultScenario()
	scenario.Discounts.VolumeRates[2] = 1.2
	scenario.Discounts.TermRates[0] = -0.1
	scenario.RevenueShare.YearRates[4] = 2

	issues := ValidateScenario(scenario)

	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, issue.Field)
	}

	require.Len(t, issues, 3)
	require.Contains(t, fields, "discounts.volume_rates[2]")
	require.Contains(t, fields, "discounts.term_rates[0]")
	require.Contains(t, fields, "revenue_share.year_rates[4]")
}

func TestValidateScenario_EarlyDiscountBounds(t *testing.T) {
	scenario := DefaultScenario()
	scenario.Deal.EarlyCustomerDiscount = 1.01

	issues := ValidateScenario(scenario)

	require.Len(t, issues, 1)
	require.Equal(t, "deal.early_customer_discount", issues[0].Field)

	scenario.Deal.EarlyCustomerDiscount = 1.0
	require.Empty(t, ValidateScenario(scenario))
}
